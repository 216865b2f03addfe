// Package matrix offers the dense linear-algebra core used by the
// redistribution engines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors that
//     return errors instead of panicking.
//   - Mul, the product kernel behind every linear redistribution
//     (coefficient matrix × age-by-period counts).
//   - Column helpers (Col, SetCol, ColSums, ScaleCol) for the per-period
//     marginal totals that graduation methods must conserve.
//   - AllClose and ClampMin for tolerance checks and non-negativity floors.
//
// Matrices here are small (a few hundred rows at most: single ages × periods)
// so kernels favour fixed loop orders and determinism over blocking tricks.
//
// See the examples in this package for usage patterns.
package matrix
