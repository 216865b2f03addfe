// SPDX-License-Identifier: MIT

package monospline

import (
	"errors"

	"github.com/katalvlaran/demosplit/agegroup"
)

var (
	// ErrTooFewGroups is returned for fewer than two groups (the interpolant needs three knots).
	ErrTooFewGroups = errors.New("monospline: at least 2 age groups are required")

	// ErrLengthMismatch aliases agegroup.ErrLengthMismatch.
	ErrLengthMismatch = agegroup.ErrLengthMismatch

	// ErrAgesNotIncreasing aliases agegroup.ErrAgesNotIncreasing.
	ErrAgesNotIncreasing = agegroup.ErrAgesNotIncreasing

	// ErrUnevenStep aliases agegroup.ErrUnevenStep.
	ErrUnevenStep = agegroup.ErrUnevenStep

	// ErrNonFinite aliases agegroup.ErrNonFinite.
	ErrNonFinite = agegroup.ErrNonFinite
)
