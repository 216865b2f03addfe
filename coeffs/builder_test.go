// SPDX-License-Identifier: MIT
package coeffs_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/demosplit/coeffs"
	"github.com/katalvlaran/demosplit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func colSums(t *testing.T, d *matrix.Dense) []float64 {
	t.Helper()
	s, err := matrix.ColSums(d)
	require.NoError(t, err)

	return s
}

func TestRows(t *testing.T) {
	assert.Equal(t, 101, coeffs.Rows(21, true))
	assert.Equal(t, 105, coeffs.Rows(21, false))
	assert.Equal(t, 26, coeffs.Rows(6, true))
}

func TestBuildSprague_ColumnsSumToOne(t *testing.T) {
	for _, open := range []bool{true, false} {
		for _, m := range []int{6, 7, 12, 21} {
			c, err := coeffs.BuildSprague(m, open)
			require.NoError(t, err)
			require.Equal(t, coeffs.Rows(m, open), c.Rows())
			require.Equal(t, m, c.Cols())
			for j, s := range colSums(t, c) {
				assert.InDelta(t, 1.0, s, tol, "m=%d open=%v col=%d", m, open, j)
			}
		}
	}
}

func TestBuildSprague_OpenPassThrough(t *testing.T) {
	c, err := coeffs.BuildSprague(21, true)
	require.NoError(t, err)

	last, err := c.Row(100)
	require.NoError(t, err)
	want := make([]float64, 21)
	want[20] = 1
	assert.Equal(t, want, last)

	// Open column carries nothing but the pass-through cell.
	col, err := c.Col(20)
	require.NoError(t, err)
	for i, v := range col[:100] {
		assert.Zero(t, v, "row %d", i)
	}
}

func TestBuildSprague_Placement(t *testing.T) {
	c, err := coeffs.BuildSprague(6, true)
	require.NoError(t, err)

	// Single middle panel: rows 10..14, columns 0..4; centre row is symmetric.
	row, err := c.Row(12)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.0064, -0.0336, 0.2544, -0.0336, 0.0064, 0}, row)

	v, err := c.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.3616, v)

	// Old block ends one row above the open row, one column left of it.
	v, err = c.At(24, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.3616, v)
}

func TestBuildGrabill_BoundaryColumns(t *testing.T) {
	c, err := coeffs.BuildGrabill(21, true)
	require.NoError(t, err)
	s := colSums(t, c)

	assert.InDelta(t, 0.7195, s[0], tol)
	assert.InDelta(t, 0.9836, s[1], tol)
	assert.InDelta(t, 0.9836, s[18], tol)
	assert.InDelta(t, 0.7195, s[19], tol)
	assert.InDelta(t, 1.0, s[20], tol)
	for j := 2; j < 18; j++ {
		assert.InDelta(t, 1.0, s[j], tol, "col %d", j)
	}

	closed, err := coeffs.BuildGrabill(6, false)
	require.NoError(t, err)
	first, _ := closed.Row(0)
	lastRow, _ := closed.Row(29)
	assert.Equal(t, []float64{0.0826, 0.0256, -0.0009, 0, 0, 0}, first)
	assert.Equal(t, []float64{0, 0, 0, -0.0009, 0.0256, 0.0826}, lastRow)
}

func TestBuild_InsufficientGroups(t *testing.T) {
	_, err := coeffs.BuildSprague(5, true)
	require.ErrorIs(t, err, coeffs.ErrInsufficientGroups)
	_, err = coeffs.BuildGrabill(0, false)
	require.ErrorIs(t, err, coeffs.ErrInsufficientGroups)
}

func TestBuild_IdempotentAndIsolated(t *testing.T) {
	a, err := coeffs.BuildSprague(10, true)
	require.NoError(t, err)
	b, err := coeffs.BuildSprague(10, true)
	require.NoError(t, err)
	assert.Equal(t, a.RawData(), b.RawData())

	// Mutating a returned matrix must not leak into the cache.
	require.NoError(t, a.Set(0, 0, 42))
	c, err := coeffs.BuildSprague(10, true)
	require.NoError(t, err)
	assert.Equal(t, b.RawData(), c.RawData())
}

func TestBuild_Concurrent(t *testing.T) {
	ref, err := coeffs.BuildGrabill(15, false)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := coeffs.BuildGrabill(15, false)
			if err == nil {
				results[i] = c.RawData()
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, ref.RawData(), r)
	}
}

func TestMethod_String(t *testing.T) {
	assert.Equal(t, "sprague", coeffs.MethodSprague.String())
	assert.Equal(t, "grabill", coeffs.MethodGrabill.String())
	assert.Equal(t, "Method(7)", coeffs.Method(7).String())

	_, err := coeffs.Build(coeffs.Method(7), 8, true)
	require.Error(t, err)
}
