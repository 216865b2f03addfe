// SPDX-License-Identifier: MIT

package migration

import "errors"

var (
	// ErrEmptyObservations is returned when there is nothing to fit or evaluate.
	ErrEmptyObservations = errors.New("migration: no observations")

	// ErrLengthMismatch is returned when ages and rates differ in length.
	ErrLengthMismatch = errors.New("migration: ages and rates differ in length")

	// ErrNonFinite is returned for NaN or ±Inf ages, rates or parameters.
	ErrNonFinite = errors.New("migration: value is NaN or Inf")
)
