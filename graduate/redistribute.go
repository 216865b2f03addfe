// SPDX-License-Identifier: MIT

package graduate

import (
	"fmt"

	"github.com/katalvlaran/demosplit/agegroup"
	"github.com/katalvlaran/demosplit/matrix"
)

// Redistribute computes coef × pop. The result has one row per single age in
// the span of pop and keeps pop's period labels and open flag.
//
// Errors: matrix.ErrNilMatrix, ErrDimensionMismatch (coef.Cols() != pop.Rows(),
// or coef.Rows() does not match the single-age span).
func Redistribute(coef *matrix.Dense, pop *agegroup.Matrix) (*agegroup.Matrix, error) {
	if pop == nil {
		return nil, fmt.Errorf("Redistribute: %w", matrix.ErrNilMatrix)
	}
	prod, err := matrix.Mul(coef, pop.Dense())
	if err != nil {
		return nil, fmt.Errorf("Redistribute: %w", err)
	}
	ages := pop.SingleAges()
	if prod.Rows() != len(ages) {
		return nil, fmt.Errorf("Redistribute: %d rows for %d single ages: %w", prod.Rows(), len(ages), ErrDimensionMismatch)
	}

	return agegroup.FromDense(ages, pop.Periods(), pop.Open(), prod)
}

// requireGrouped checks that pop is a non-nil matrix of 5-year groups.
func requireGrouped(op string, pop *agegroup.Matrix) error {
	if pop == nil {
		return fmt.Errorf("%s: %w", op, matrix.ErrNilMatrix)
	}
	if pop.Rows() > 1 && pop.Step() != GroupWidth {
		return fmt.Errorf("%s: step %d: %w", op, pop.Step(), ErrNotGrouped)
	}

	return nil
}
