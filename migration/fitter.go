// SPDX-License-Identifier: MIT

package migration

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/optimize"
)

// Fitter estimates schedule parameters from observed rates.
type Fitter interface {
	Fit(ctx context.Context, obs Observations, init Params) (*FitResult, error)
}

// FitResult is the outcome of a Fit.
type FitResult struct {
	Params      Params
	Residual    float64 // sum of squared residuals at Params
	Evaluations int     // objective evaluations spent
	Converged   bool    // false when an evaluation or iteration limit stopped the run
}

// DefaultMaxEvaluations caps objective evaluations of LeastSquaresFitter.
const DefaultMaxEvaluations = 20000

const (
	panicNilLogger      = "migration: WithLogger: logger must be non-nil"
	panicBadEvaluations = "migration: WithMaxEvaluations: limit must be positive"
)

// Option configures a LeastSquaresFitter.
type Option func(*LeastSquaresFitter)

// WithLogger sets the logger. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(f *LeastSquaresFitter) { f.logger = l }
}

// WithMaxEvaluations caps objective evaluations. Default: DefaultMaxEvaluations.
func WithMaxEvaluations(n int) Option {
	if n <= 0 {
		panic(panicBadEvaluations)
	}

	return func(f *LeastSquaresFitter) { f.maxEvaluations = n }
}

// LeastSquaresFitter minimises the residual sum of squares over all thirteen
// parameters with Nelder–Mead. It never returns a worse fit than its start.
type LeastSquaresFitter struct {
	logger         *zap.Logger
	maxEvaluations int
}

var _ Fitter = (*LeastSquaresFitter)(nil)

// NewLeastSquaresFitter returns a fitter with the given options applied.
func NewLeastSquaresFitter(opts ...Option) *LeastSquaresFitter {
	f := &LeastSquaresFitter{logger: zap.NewNop(), maxEvaluations: DefaultMaxEvaluations}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	return f
}

// Fit implements Fitter. The context is checked before and after the run.
//
// Errors: ctx.Err(), ErrEmptyObservations, ErrLengthMismatch, ErrNonFinite.
func (f *LeastSquaresFitter) Fit(ctx context.Context, obs Observations, init Params) (*FitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	if err := obs.Validate(); err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	if err := init.Validate(); err != nil {
		return nil, fmt.Errorf("Fit: init: %w", err)
	}

	start := obs.residual(init)
	problem := optimize.Problem{
		Func: func(x []float64) float64 { return obs.residual(paramsFrom(x)) },
	}
	settings := &optimize.Settings{FuncEvaluations: f.maxEvaluations}

	res, err := optimize.Minimize(problem, init.vector(), settings, &optimize.NelderMead{})
	if res == nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}
	if err != nil {
		f.logger.Warn("nelder-mead stopped early", zap.Error(err), zap.String("status", res.Status.String()))
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Fit: %w", err)
	}

	out := &FitResult{
		Params:      paramsFrom(res.X),
		Residual:    res.F,
		Evaluations: res.Stats.FuncEvaluations,
		Converged:   converged(res.Status),
	}
	if bad(out.Residual) || out.Residual > start {
		out.Params, out.Residual = init, start
	}
	f.logger.Debug("rogers-castro fit",
		zap.Float64("initial_residual", start),
		zap.Float64("residual", out.Residual),
		zap.Int("evaluations", out.Evaluations),
		zap.String("status", res.Status.String()),
	)

	return out, nil
}

func converged(s optimize.Status) bool {
	switch s {
	case optimize.Failure, optimize.IterationLimit, optimize.RuntimeLimit, optimize.FunctionEvaluationLimit:
		return false
	default:
		return true
	}
}
