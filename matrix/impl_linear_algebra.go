// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, column marginals and column scaling. All functions
// perform strict fail-fast validation and return clear errors on dimension
// mismatches.
//
// Purpose:
//   - Canonical kernels used by linear redistribution (Mul) and by marginal
//     total bookkeeping (ColSums, ScaleCol).
//   - Operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - All kernels use central validators and wrap failures via matrixErrorf.

package matrix

import "fmt"

// ZeroSum is the initial sum value for accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul      = "Mul"
	opColSums  = "ColSums"
	opScaleCol = "ScaleCol"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C.
//   - Coefficient matrices are banded (each row touches at most 5 groups), so
//     the zero-skip removes most of the work.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense: new C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
		}
	}

	return res, nil
}

// ColSums returns the per-column totals Σ_i m[i,j].
// For an age-by-period matrix these are the period totals that every
// redistribution must conserve.
//
// Errors: ErrNilMatrix. Complexity: O(r*c).
func ColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		var i, j, base int
		for i = 0; i < rows; i++ {
			base = i * cols
			for j = 0; j < cols; j++ {
				out[j] += d.data[base+j]
			}
		}

		return out, nil
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// ScaleCol multiplies rows [from, to) of column j of m by alpha in place.
// Closeout uses it to bring its pivot window back to the group count.
//
// Errors: ErrNilMatrix, ErrOutOfRange (bad column or row span),
// ErrNaNInf (non-finite alpha).
// Complexity: O(to-from).
func ScaleCol(m *Dense, j, from, to int, alpha float64) error {
	if m == nil {
		return matrixErrorf(opScaleCol, ErrNilMatrix)
	}
	if j < 0 || j >= m.c || from < 0 || to > m.r || from > to {
		return matrixErrorf(opScaleCol, ErrOutOfRange)
	}
	if isNonFinite(alpha) {
		return matrixErrorf(opScaleCol, ErrNaNInf)
	}
	for i := from; i < to; i++ {
		m.data[i*m.c+j] *= alpha
	}

	return nil
}
