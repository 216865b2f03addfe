// SPDX-License-Identifier: MIT

package monospline

import (
	"fmt"

	"github.com/katalvlaran/demosplit/agegroup"
	"github.com/katalvlaran/demosplit/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// SplitMono splits one grouped column into single-age counts.
//
// values[k] is the count of the group starting at lowers[k]. The output runs
// from lowers[0] to the open lower bound (keepOpen) or to the last upper bound
// minus one (otherwise), one value per year.
//
// Algorithm Outline:
//  1. Knots at (lowers[0], 0) and (lowers[k]+step, cumulative count through k).
//     The open group gets a step-wide knot too; it only shapes the slope of
//     the last closed group.
//  2. Fit a Fritsch-Butland monotone cubic through the knots.
//  3. Each single age takes the difference of the fit at its bounds,
//     floored at zero; the open value, if kept, is copied verbatim.
//
// Complexity: O(n) in the number of single ages.
//
// Errors: ErrTooFewGroups, ErrLengthMismatch, ErrAgesNotIncreasing,
// ErrUnevenStep, ErrNonFinite.
func SplitMono(values []float64, lowers []int, keepOpen bool) ([]float64, error) {
	if len(values) != len(lowers) {
		return nil, fmt.Errorf("SplitMono: %d values, %d lowers: %w", len(values), len(lowers), ErrLengthMismatch)
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("SplitMono: %d groups: %w", len(values), ErrTooFewGroups)
	}
	s := agegroup.Series{Ages: lowers, Values: values, Open: keepOpen}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("SplitMono: %w", err)
	}
	step := s.Step()
	k := len(values)

	// Knots: (lower_0, 0), (upper_j, cumsum_j).
	xs := make([]float64, k+1)
	ys := make([]float64, k+1)
	xs[0] = float64(lowers[0])
	for j, lo := range lowers {
		xs[j+1] = float64(lo + step)
	}
	floats.CumSum(ys[1:], values)

	var fb interp.FritschButland
	if err := fb.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("SplitMono: fit: %w", err)
	}

	first, last := lowers[0], int(xs[k])
	if keepOpen {
		last = lowers[k-1] + 1
	}
	out := make([]float64, last-first)
	prev := fb.Predict(float64(first))
	for i := range out {
		next := fb.Predict(float64(first + i + 1))
		if d := next - prev; d > 0 {
			out[i] = d
		}
		prev = next
	}
	if keepOpen {
		out[len(out)-1] = values[k-1]
	}

	return out, nil
}

// SplitMonoMatrix applies SplitMono to every period column of m. The open
// flag of m decides keepOpen; the result carries single-age rows.
func SplitMonoMatrix(m *agegroup.Matrix) (*agegroup.Matrix, error) {
	if m == nil {
		return nil, fmt.Errorf("SplitMonoMatrix: %w", matrix.ErrNilMatrix)
	}
	ages := m.SingleAges()
	out, err := matrix.NewDense(len(ages), m.Cols())
	if err != nil {
		return nil, fmt.Errorf("SplitMonoMatrix: %w", err)
	}
	lowers := m.Ages()
	for j := 0; j < m.Cols(); j++ {
		col, err := m.Column(j)
		if err != nil {
			return nil, fmt.Errorf("SplitMonoMatrix: %w", err)
		}
		single, err := SplitMono(col, lowers, m.Open())
		if err != nil {
			return nil, fmt.Errorf("SplitMonoMatrix: period %q: %w", m.Periods()[j], err)
		}
		if err = out.SetCol(j, single); err != nil {
			return nil, fmt.Errorf("SplitMonoMatrix: %w", err)
		}
	}

	return agegroup.FromDense(ages, m.Periods(), m.Open(), out)
}
