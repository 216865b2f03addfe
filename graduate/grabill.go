// SPDX-License-Identifier: MIT

package graduate

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/demosplit/agegroup"
	"github.com/katalvlaran/demosplit/coeffs"
	"github.com/katalvlaran/demosplit/matrix"
)

// blendRows is the number of rows at each end blended from Grabill into Sprague.
const blendRows = 10

// Grabill splits every period column of pop with Grabill's coefficients.
//
// Algorithm Outline:
//  1. Split with Sprague (or take WithPrecomputed) and with the raw Grabill
//     coefficients. The raw split loses mass at the boundary columns.
//  2. Blend the ten closed ages at each end toward Sprague with weights
//     exp(k)/exp(10.1), k = 1..10 counted inward; interior rows keep the
//     Grabill value.
//  3. Spread the remaining difference to the Sprague column total over all
//     rows in proportion to their weighted mass.
//
// The open row is passed through and never receives redistributed mass.
//
// Complexity: two O(n·g·p) products plus O(n·p) for the blend, with n single
// ages, g groups and p periods.
//
// Errors:
//   - ErrNotGrouped, ErrInsufficientGroups: input shape.
//   - ErrDimensionMismatch: a precomputed split of the wrong shape.
func Grabill(pop *agegroup.Matrix, opts ...Option) (*agegroup.Matrix, error) {
	o := gatherOptions(opts...)
	if err := requireGrouped("Grabill", pop); err != nil {
		return nil, err
	}
	pops, err := spragueOrPrecomputed("Grabill", pop, &o)
	if err != nil {
		return nil, err
	}
	coef, err := coeffs.BuildGrabill(pop.Rows(), pop.Open())
	if err != nil {
		return nil, fmt.Errorf("Grabill: %w", err)
	}
	popg, err := Redistribute(coef, pop)
	if err != nil {
		return nil, fmt.Errorf("Grabill: %w", err)
	}

	blended, err := blend(popg.Dense(), pops.Dense(), pop.Open())
	if err != nil {
		return nil, fmt.Errorf("Grabill: %w", err)
	}
	o.logger.Debug("grabill split",
		zap.Int("groups", pop.Rows()),
		zap.Int("periods", pop.Cols()),
		zap.Bool("open", pop.Open()),
	)

	return agegroup.FromDense(pops.Ages(), pop.Periods(), pop.Open(), blended)
}

// blendWeights returns the per-row weight of the Grabill split. The first and
// last blendRows closed rows ramp up inward; the open row gets 0.
func blendWeights(n int, open bool) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}
	last := n - 1
	if open {
		w[last] = 0
		last--
	}
	for k := 0; k < blendRows; k++ {
		v := math.Exp(float64(k+1)) / math.Exp(10.1)
		w[k] = v
		w[last-k] = v
	}

	return w
}

// blend mixes popg into pops row-wise and restores the column totals of pops.
// popg is modified and returned.
func blend(popg, pops *matrix.Dense, open bool) (*matrix.Dense, error) {
	if err := matrix.ValidateSameShape(popg, pops); err != nil {
		return nil, err
	}
	n := popg.Rows()
	w := blendWeights(n, open)

	err := popg.Apply(func(i, j int, g float64) float64 {
		if w[i] == 1 || w[i] == 0 {
			return g
		}
		s, _ := pops.At(i, j)

		return w[i]*g + (1-w[i])*s
	})
	if err != nil {
		return nil, err
	}

	target, err := matrix.ColSums(pops)
	if err != nil {
		return nil, err
	}
	have, err := matrix.ColSums(popg)
	if err != nil {
		return nil, err
	}
	for j := range target {
		col, err := popg.Col(j)
		if err != nil {
			return nil, err
		}
		redist := target[j] - have[j]
		var mass float64
		for i, v := range col {
			mass += v * w[i]
		}
		if mass == 0 {
			continue
		}
		for i := range col {
			col[i] += col[i] * w[i] / mass * redist
		}
		if err = popg.SetCol(j, col); err != nil {
			return nil, err
		}
	}

	return popg, nil
}
