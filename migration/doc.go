// Package migration evaluates and fits Rogers–Castro model migration schedules.
//
// The full thirteen-parameter schedule is
//
//	m(x) = a1·exp(-α1·x)
//	     + a2·exp(-α2·(x-μ2) - exp(-λ2·(x-μ2)))
//	     + a3·exp(-α3·(x-μ3) - exp(-λ3·(x-μ3)))
//	     + a4·exp(λ4·x)
//	     + c
//
// with a pre-working-age, a labour-force, a retirement and a post-retirement
// component plus a constant. A component whose amplitude is zero is left out.
//
// Fitter is the contract for estimating Params from observed age-specific
// rates. LeastSquaresFitter is a deterministic implementation that minimises
// the residual sum of squares with Nelder–Mead; Bayesian samplers plug in
// behind the same interface.
package migration
