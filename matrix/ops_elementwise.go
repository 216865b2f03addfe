// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise helpers shared by the graduation engines: tolerance
//     comparison (AllClose) and non-negativity floors (ClampMin).
//
// Determinism & Performance:
//   - Fixed i→j traversal; Dense fast-paths operate on the flat buffer.

package matrix

import "math"

const (
	opAllClose = "AllClose"
	opClampMin = "ClampMin"
)

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds elementwise.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < r*c; idx++ {
				if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	var av, bv float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			av, _ = a.At(i, j) // shape validated above; At cannot fail
			bv, _ = b.At(i, j)
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// ClampMin floors every element of m at lo, in place, and returns how many
// elements were raised.
//
// Errors: ErrNilMatrix, ErrNaNInf (non-finite lo).
// Complexity: O(r*c).
func ClampMin(m *Dense, lo float64) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opClampMin, ErrNilMatrix)
	}
	if isNonFinite(lo) {
		return 0, matrixErrorf(opClampMin, ErrNaNInf)
	}
	var raised int
	for idx, v := range m.data {
		if v < lo {
			m.data[idx] = lo
			raised++
		}
	}

	return raised, nil
}
