// Package monospline splits grouped counts into single years of age with a
// monotone cubic Hermite interpolant through the cumulative counts.
//
// The cumulative curve starts at zero at the first lower bound and passes
// through the running total at every group's upper bound. Because the
// interpolant (Fritsch–Butland) never overshoots between knots, the first
// differences at integer ages are non-negative for non-negative input and
// each group's total is reproduced exactly.
//
// An open final group has no width. With keepOpen the split treats it as one
// year wide and then overwrites the last single age with the original count.
package monospline
