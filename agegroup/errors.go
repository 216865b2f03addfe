// SPDX-License-Identifier: MIT

package agegroup

import "errors"

var (
	// ErrEmptySeries is returned when a series or matrix has no age entries.
	ErrEmptySeries = errors.New("agegroup: series is empty")

	// ErrLengthMismatch is returned when ages and values (or rows) differ in length.
	ErrLengthMismatch = errors.New("agegroup: ages and values differ in length")

	// ErrAgesNotIncreasing is returned when ages are negative or not strictly increasing.
	ErrAgesNotIncreasing = errors.New("agegroup: ages must be non-negative and strictly increasing")

	// ErrUnevenStep is returned when consecutive ages are not a uniform step apart,
	// or when a single-age series was required and the step is not 1.
	ErrUnevenStep = errors.New("agegroup: ages must use a uniform step")

	// ErrNonFinite is returned when a value is NaN or ±Inf.
	ErrNonFinite = errors.New("agegroup: value is NaN or Inf")

	// ErrInvalidWidth is returned for a group width < 1 or a shift outside [0, width).
	ErrInvalidWidth = errors.New("agegroup: invalid group width or shift")

	// ErrNoColumns is returned when a matrix has no period columns.
	ErrNoColumns = errors.New("agegroup: at least one period column is required")
)
