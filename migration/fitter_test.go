// SPDX-License-Identifier: MIT
package migration_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/demosplit/migration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var truth = migration.Params{
	A1: 0.02, Alpha1: 0.1,
	A2: 0.06, Alpha2: 0.1, Mu2: 20, Lambda2: 0.4,
	C: 0.003,
}

func synthetic(t *testing.T) migration.Observations {
	t.Helper()
	ages := make([]float64, 81)
	for i := range ages {
		ages[i] = float64(i)
	}
	rates, err := migration.Calculate(ages, truth)
	require.NoError(t, err)

	return migration.Observations{Ages: ages, Rates: rates}
}

func sse(obs migration.Observations, p migration.Params) float64 {
	var s float64
	for i, x := range obs.Ages {
		d := p.At(x) - obs.Rates[i]
		s += d * d
	}

	return s
}

func TestLeastSquaresFitter_NeverWorseThanStart(t *testing.T) {
	obs := synthetic(t)
	init := truth
	init.A2, init.Mu2, init.C = 0.04, 23, 0.005

	core, logs := observer.New(zapcore.DebugLevel)
	f := migration.NewLeastSquaresFitter(migration.WithLogger(zap.New(core)), migration.WithMaxEvaluations(3000))

	res, err := f.Fit(context.Background(), obs, init)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Residual, sse(obs, init))
	assert.InDelta(t, sse(obs, res.Params), res.Residual, 1e-12)
	assert.Positive(t, res.Evaluations)
	assert.Equal(t, 1, logs.FilterMessage("rogers-castro fit").Len())
}

func TestLeastSquaresFitter_ExactStartStays(t *testing.T) {
	obs := synthetic(t)
	res, err := migration.NewLeastSquaresFitter(migration.WithMaxEvaluations(500)).Fit(context.Background(), obs, truth)
	require.NoError(t, err)
	assert.InDelta(t, 0, res.Residual, 1e-20)
}

func TestLeastSquaresFitter_Errors(t *testing.T) {
	f := migration.NewLeastSquaresFitter()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := f.Fit(ctx, synthetic(t), truth)
	require.ErrorIs(t, err, context.Canceled)

	_, err = f.Fit(context.Background(), migration.Observations{}, truth)
	require.ErrorIs(t, err, migration.ErrEmptyObservations)

	assert.Panics(t, func() { migration.WithLogger(nil) })
	assert.Panics(t, func() { migration.WithMaxEvaluations(0) })
}
