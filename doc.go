// Package demosplit reconstructs single-year-of-age counts from data reported
// in 5-year age groups, and fits model migration schedules to age-specific
// rates.
//
// 🚀 What is in the box?
//
//	• Sprague and Grabill coefficient matrices, cached per shape
//	• Linear redistribution of age-by-period count matrices
//	• Monotone spline splitting of grouped counts
//	• Closeout of the oldest ages with a spline, anchored at a pivot age
//	• Multi-offset averaging that smooths digit heaping
//	• Rogers–Castro migration schedules and a least-squares fitter
//
// ✨ Guarantees:
//
//   - Period totals are preserved by Sprague exactly and by Grabill after
//     its rescaling step.
//   - An open age group is passed through unchanged.
//   - Inputs are never modified; every result is freshly allocated.
//
// Packages:
//
//	agegroup/    age series, age-by-period matrices, N-year grouping
//	coeffs/      Sprague and Grabill coefficient matrices
//	matrix/      dense row-major storage and the product kernel
//	monospline/  monotone cubic split of grouped counts
//	graduate/    Sprague, Grabill, Closeout and Oscillate engines
//	migration/   Rogers–Castro schedules and curve fitting
//
// Quick example:
//
//	pop, _ := agegroup.NewMatrix(ages, []string{"2020"}, true, rows)
//	single, err := graduate.Closeout(pop, graduate.WithPivotAge(85))
//
//	go get github.com/katalvlaran/demosplit
package demosplit
