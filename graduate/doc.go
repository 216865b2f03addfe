// Package graduate turns 5-year age groups into single years of age.
//
// Engines:
//
//   - Sprague: the Sprague coefficient matrix applied to every period column.
//     Period totals are preserved; the oldest ages may come out slightly
//     negative for irregular input.
//   - Grabill: Grabill's smoother split, blended into Sprague over the ten
//     ages at each end and rescaled so period totals match Sprague again.
//   - Closeout: replaces the ages from the pivot (default 90) upward with a
//     monotone spline split, rescaled so the pivot group keeps its count, and
//     floors negatives at zero.
//   - Oscillate: for a single-age series with digit heaping, regroups the ages
//     under all five boundary offsets, splits each regrouping and averages the
//     results, keeping the original total and open group.
//
// Recoverable conditions (a pivot age that had to be moved or a closeout that
// had to be skipped) are reported at Warn level on the configured zap logger
// and to the optional warning handler; the call still succeeds.
//
//	single, err := graduate.Closeout(pop,
//		graduate.WithPivotAge(85),
//		graduate.WithLogger(logger),
//	)
package graduate
