// Package coeffs builds the fixed-coefficient matrices that split 5-year
// age groups into single years of age.
//
// Two families are provided:
//
//   - Sprague: fifth-difference osculatory interpolation. Every column sums
//     to exactly one, so totals per period are preserved by the product.
//   - Grabill: a smoother middle panel derived from Sprague. Its boundary
//     columns deliberately do not sum to one; callers blend it back toward
//     Sprague and rescale (see package graduate).
//
// A coefficient matrix depends only on the number of input groups m and on
// whether the last group is open:
//
//	rows = 5m-4 (open) or 5m (closed), cols = m, m ≥ 6.
//
// Layout:
//
//	rows 0..9            young block          cols 0..4
//	rows 10+5i..14+5i    middle panel i       cols i..i+4
//	last 10 rows         old block            last 5 cols
//	(n-1, m-1) = 1       open group pass-through (open only)
//
// Built matrices are cached per (method, m, open). Every call returns a fresh
// copy, so callers may mutate the result freely.
//
//	c, err := coeffs.BuildSprague(21, true) // ages 0,5,...,95 plus 100+
//	single, err := matrix.Mul(c, grouped)  // 101 × periods
package coeffs
