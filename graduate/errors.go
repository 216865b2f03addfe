// SPDX-License-Identifier: MIT

package graduate

import (
	"errors"

	"github.com/katalvlaran/demosplit/coeffs"
	"github.com/katalvlaran/demosplit/matrix"
)

var (
	// ErrInsufficientGroups is returned for fewer than six 5-year groups.
	ErrInsufficientGroups = coeffs.ErrInsufficientGroups

	// ErrDimensionMismatch is returned when a coefficient or precomputed matrix
	// does not fit the input.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrInvalidPivotAge marks a pivot age below the first age (fatal) or one
	// that had to be clamped or abandoned (reported as a warning).
	ErrInvalidPivotAge = errors.New("graduate: invalid pivot age")

	// ErrNotGrouped is returned when a grouped engine receives rows that are
	// not 5 years apart.
	ErrNotGrouped = errors.New("graduate: input must be in 5-year age groups")

	// ErrNotSingleAges is returned when Oscillate receives ages that are not 1 year apart.
	ErrNotSingleAges = errors.New("graduate: input must be in single years of age")

	// ErrUncoveredAge is returned when no offset pass produced an estimate for an age.
	ErrUncoveredAge = errors.New("graduate: age not covered by any offset pass")
)
