// SPDX-License-Identifier: MIT
package graduate_test

import (
	"testing"

	"github.com/katalvlaran/demosplit/agegroup"
	"github.com/katalvlaran/demosplit/coeffs"
	"github.com/katalvlaran/demosplit/graduate"
	"github.com/katalvlaran/demosplit/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSprague_TwentyOneGroupsFivePeriods: 21 groups (0..100, open) × 5 periods.
func TestSprague_TwentyOneGroupsFivePeriods(t *testing.T) {
	pop := groupedMatrix(t, 1, 1.1, 0.9, 1.25, 0.5)

	out, err := graduate.Sprague(pop)
	require.NoError(t, err)
	require.Equal(t, 101, out.Rows())
	require.Equal(t, 5, out.Cols())
	assert.Equal(t, 0, out.MinAge())
	assert.Equal(t, 100, out.MaxAge())
	assert.True(t, out.Open())
	assert.Equal(t, pop.Periods(), out.Periods())

	want := pop.ColSums()
	for j, got := range out.ColSums() {
		assert.InEpsilon(t, want[j], got, 1e-12, "period %d", j)

		// Open group passes through exactly.
		in, _ := pop.At(20, j)
		last, _ := out.At(100, j)
		assert.Equal(t, in, last)
	}
}

// TestSprague_NegativesAtOldestAges documents the known boundary artefact.
func TestSprague_NegativesAtOldestAges(t *testing.T) {
	bins, err := agegroup.GroupAges(heaped, steps(len(heaped), 1), 5, 0)
	require.NoError(t, err)
	require.Equal(t, grouped, bins.Values())

	pop, err := agegroup.FromSeries(agegroup.Series{Ages: bins.Lowers(), Values: bins.Values(), Open: true}, "2020")
	require.NoError(t, err)

	out, err := graduate.Sprague(pop)
	require.NoError(t, err)
	col := column(t, out, 0)

	var negatives int
	for _, v := range col[90:95] {
		if v < 0 {
			negatives++
		}
	}
	assert.Positive(t, negatives)
	assert.InDelta(t, -110.0, col[94], 1)

	closed, err := graduate.Closeout(pop)
	require.NoError(t, err)
	for age, v := range column(t, closed, 0) {
		assert.GreaterOrEqual(t, v, 0.0, "age %d", age)
	}
}

func TestSprague_Errors(t *testing.T) {
	_, err := graduate.Sprague(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	single, err := agegroup.NewMatrix([]int{0, 1, 2}, nil, false, [][]float64{{1}, {2}, {3}})
	require.NoError(t, err)
	_, err = graduate.Sprague(single)
	require.ErrorIs(t, err, graduate.ErrNotGrouped)

	short, err := agegroup.NewMatrix(steps(5, 5), nil, true, [][]float64{{1}, {2}, {3}, {4}, {5}})
	require.NoError(t, err)
	_, err = graduate.Sprague(short)
	require.ErrorIs(t, err, graduate.ErrInsufficientGroups)
	require.ErrorIs(t, err, coeffs.ErrInsufficientGroups)
}

func TestRedistribute_DimensionMismatch(t *testing.T) {
	pop := groupedMatrix(t, 1)

	coef, err := coeffs.BuildSprague(20, true)
	require.NoError(t, err)
	_, err = graduate.Redistribute(coef, pop)
	require.ErrorIs(t, err, graduate.ErrDimensionMismatch)

	// Right column count, wrong row count for the age span.
	closed, err := coeffs.BuildSprague(21, false)
	require.NoError(t, err)
	_, err = graduate.Redistribute(closed, pop)
	require.ErrorIs(t, err, graduate.ErrDimensionMismatch)

	_, err = graduate.Redistribute(nil, pop)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestRedistribute_MatchesSprague(t *testing.T) {
	pop := groupedMatrix(t, 1, 2)
	coef, err := coeffs.BuildSprague(pop.Rows(), pop.Open())
	require.NoError(t, err)

	a, err := graduate.Redistribute(coef, pop)
	require.NoError(t, err)
	b, err := graduate.Sprague(pop)
	require.NoError(t, err)
	assert.Equal(t, a.Dense().RawData(), b.Dense().RawData())
	assert.Equal(t, steps(101, 1), a.Ages())
}
