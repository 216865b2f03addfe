// SPDX-License-Identifier: MIT

package agegroup

import "fmt"

// Bin is one N-year group produced by GroupAges.
//   - Lower is the first single age in the bin.
//   - Size is the number of single ages it holds (< width for edge bins).
//   - Value is the summed count.
type Bin struct {
	Lower int
	Size  int
	Value float64
}

// Bins is an ordered list of groups.
type Bins []Bin

// GroupAges bins a contiguous single-age series into width-year groups.
//
// Group boundaries sit at ages a where (a+shift) % width == 0, so shift=0
// gives the conventional 0-4, 5-9, ... groups and shift=1 gives 4-8, 9-13, ...
// Partial bins at either edge are returned with their true Size; callers that
// need complete groups filter with Bins.Full.
//
// Errors: ErrEmptySeries, ErrLengthMismatch, ErrAgesNotIncreasing,
// ErrUnevenStep (ages not consecutive), ErrInvalidWidth.
func GroupAges(values []float64, ages []int, width, shift int) (Bins, error) {
	if width < 1 || shift < 0 || shift >= width {
		return nil, fmt.Errorf("GroupAges(width=%d, shift=%d): %w", width, shift, ErrInvalidWidth)
	}
	s := Series{Ages: ages, Values: values}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("GroupAges: %w", err)
	}
	if s.Step() > 1 {
		return nil, fmt.Errorf("GroupAges: step %d: %w", s.Step(), ErrUnevenStep)
	}

	var (
		out Bins
		key = -1
	)
	for i, a := range ages {
		k := (a + shift) / width
		if k != key {
			out = append(out, Bin{Lower: a})
			key = k
		}
		last := &out[len(out)-1]
		last.Size++
		last.Value += values[i]
	}

	return out, nil
}

// Full keeps only the bins holding exactly width single ages.
func (b Bins) Full(width int) Bins {
	out := make(Bins, 0, len(b))
	for _, bin := range b {
		if bin.Size == width {
			out = append(out, bin)
		}
	}

	return out
}

// Lowers returns the lower-bound ages of the bins.
func (b Bins) Lowers() []int {
	out := make([]int, len(b))
	for i, bin := range b {
		out[i] = bin.Lower
	}

	return out
}

// Values returns the summed counts of the bins.
func (b Bins) Values() []float64 {
	out := make([]float64, len(b))
	for i, bin := range b {
		out[i] = bin.Value
	}

	return out
}

// Series converts the bins into a Series (never open).
func (b Bins) Series() Series {
	return Series{Ages: b.Lowers(), Values: b.Values()}
}
