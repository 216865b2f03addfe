// SPDX-License-Identifier: MIT

package graduate

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/demosplit/agegroup"
)

// GroupWidth is the width in years of the input age groups.
const GroupWidth = 5

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotAge is the first age taken from the spline by Closeout.
	DefaultPivotAge = 90

	// DefaultMinPivotAge is the lowest pivot Closeout accepts after clamping;
	// below it the closeout is skipped.
	DefaultMinPivotAge = 80

	// DefaultCloseout applies Closeout inside each Oscillate pass.
	DefaultCloseout = true

	// DefaultParallel runs the five Oscillate passes concurrently.
	DefaultParallel = true
)

const (
	panicNilLogger      = "graduate: WithLogger: logger must be non-nil"
	panicNilHandler     = "graduate: WithWarningHandler: handler must be non-nil"
	panicNegativePivot  = "graduate: WithPivotAge: age must be non-negative"
	panicNilPrecomputed = "graduate: WithPrecomputed: matrix must be non-nil"
)

// Option configures an engine call.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration of one call.
type Options struct {
	logger      *zap.Logger
	onWarn      func(error)
	pivotAge    int
	precomputed *agegroup.Matrix
	closeout    bool
	parallel    bool
}

func defaultOptions() Options {
	return Options{
		logger:   zap.NewNop(),
		pivotAge: DefaultPivotAge,
		closeout: DefaultCloseout,
		parallel: DefaultParallel,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithLogger sets the logger for warnings and debug traces. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithWarningHandler registers fn to receive every recoverable condition
// (each wraps ErrInvalidPivotAge). In parallel Oscillate calls fn is never
// invoked concurrently.
func WithWarningHandler(fn func(error)) Option {
	if fn == nil {
		panic(panicNilHandler)
	}

	return func(o *Options) { o.onWarn = fn }
}

// WithPivotAge sets the Closeout pivot age. Default: DefaultPivotAge.
func WithPivotAge(age int) Option {
	if age < 0 {
		panic(panicNegativePivot)
	}

	return func(o *Options) { o.pivotAge = age }
}

// WithPrecomputed supplies an already computed Sprague split of the same
// input, so Closeout and Grabill do not recompute it.
func WithPrecomputed(m *agegroup.Matrix) Option {
	if m == nil {
		panic(panicNilPrecomputed)
	}

	return func(o *Options) { o.precomputed = m }
}

// WithCloseout toggles Closeout inside Oscillate passes. Default: DefaultCloseout.
func WithCloseout(on bool) Option {
	return func(o *Options) { o.closeout = on }
}

// WithParallel toggles concurrent Oscillate passes. Results do not depend on
// this setting. Default: DefaultParallel.
func WithParallel(on bool) Option {
	return func(o *Options) { o.parallel = on }
}

// warn reports a recoverable condition.
func (o *Options) warn(err error, fields ...zap.Field) {
	o.logger.Warn(err.Error(), fields...)
	if o.onWarn != nil {
		o.onWarn(err)
	}
}
