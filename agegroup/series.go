// SPDX-License-Identifier: MIT

package agegroup

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Series is an ordered sequence of (lower-bound age, count) pairs.
// When Open is true the last entry is the open-ended age group.
type Series struct {
	Ages   []int
	Values []float64
	Open   bool
}

// Validate checks the AgeSeries contract: equal non-zero lengths, strictly
// increasing non-negative ages with a uniform step, finite values.
func (s Series) Validate() error {
	if len(s.Ages) == 0 {
		return ErrEmptySeries
	}
	if len(s.Ages) != len(s.Values) {
		return fmt.Errorf("Series: %d ages, %d values: %w", len(s.Ages), len(s.Values), ErrLengthMismatch)
	}
	if _, err := validateAges(s.Ages); err != nil {
		return fmt.Errorf("Series: %w", err)
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("Series: value at age %d: %w", s.Ages[i], ErrNonFinite)
		}
	}

	return nil
}

// Len returns the number of entries, open group included.
func (s Series) Len() int { return len(s.Ages) }

// Step returns the uniform age step, or 0 for a single-entry series.
func (s Series) Step() int {
	if len(s.Ages) < 2 {
		return 0
	}

	return s.Ages[1] - s.Ages[0]
}

// Total returns the sum of all values, open group included.
func (s Series) Total() float64 { return floats.Sum(s.Values) }

// Closed returns the series without its open group (a copy).
// For a series without an open group it returns a plain copy.
func (s Series) Closed() Series {
	n := len(s.Ages)
	if s.Open && n > 0 {
		n--
	}

	return Series{
		Ages:   append([]int(nil), s.Ages[:n]...),
		Values: append([]float64(nil), s.Values[:n]...),
	}
}

// Clone returns a deep copy of s.
func (s Series) Clone() Series {
	return Series{
		Ages:   append([]int(nil), s.Ages...),
		Values: append([]float64(nil), s.Values...),
		Open:   s.Open,
	}
}

// validateAges enforces the shared age-axis rules and returns the step
// (0 for a single entry).
func validateAges(ages []int) (int, error) {
	if len(ages) == 0 {
		return 0, ErrEmptySeries
	}
	if ages[0] < 0 {
		return 0, fmt.Errorf("age %d: %w", ages[0], ErrAgesNotIncreasing)
	}
	if len(ages) == 1 {
		return 0, nil
	}
	step := ages[1] - ages[0]
	if step <= 0 {
		return 0, fmt.Errorf("ages %d,%d: %w", ages[0], ages[1], ErrAgesNotIncreasing)
	}
	for i := 2; i < len(ages); i++ {
		d := ages[i] - ages[i-1]
		if d <= 0 {
			return 0, fmt.Errorf("ages %d,%d: %w", ages[i-1], ages[i], ErrAgesNotIncreasing)
		}
		if d != step {
			return 0, fmt.Errorf("ages %d,%d (step %d, want %d): %w", ages[i-1], ages[i], d, step, ErrUnevenStep)
		}
	}

	return step, nil
}
