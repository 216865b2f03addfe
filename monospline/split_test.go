// SPDX-License-Identifier: MIT
package monospline_test

import (
	"testing"

	"github.com/katalvlaran/demosplit/agegroup"
	"github.com/katalvlaran/demosplit/monospline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// grouped: ages 0,5,...,95 plus open 100+.
var grouped = []float64{
	448200, 457065, 465660, 447795, 456120, 438525, 446580, 427518, 422209, 379677,
	349874, 293115, 252032, 196705, 157816, 114745, 85900, 58181, 12191, 7693, 1459,
}

func lowers(n, step int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i * step
	}

	return out
}

func TestSplitMono_OpenGroup(t *testing.T) {
	got, err := monospline.SplitMono(grouped, lowers(len(grouped), 5), true)
	require.NoError(t, err)
	require.Len(t, got, 101)

	for i, v := range got {
		assert.GreaterOrEqual(t, v, 0.0, "age %d", i)
	}
	// Open group copied verbatim.
	assert.Equal(t, 1459.0, got[100])
	// Each closed group's total is reproduced.
	for g := 0; g < len(grouped)-1; g++ {
		assert.InDelta(t, grouped[g], floats.Sum(got[5*g:5*g+5]), 1e-6, "group %d", g)
	}
	assert.InDelta(t, floats.Sum(grouped), floats.Sum(got), 1e-5)
}

// TestSplitMono_TailDeclinesIntoOpenGroup: the open group is knotted one step
// past its lower bound, so the last closed group keeps falling toward it.
func TestSplitMono_TailDeclinesIntoOpenGroup(t *testing.T) {
	got, err := monospline.SplitMono(grouped, lowers(len(grouped), 5), true)
	require.NoError(t, err)
	require.Len(t, got, 101)

	for age := 96; age < 100; age++ {
		assert.Less(t, got[age], got[age-1], "age %d", age)
	}
	assert.InDelta(t, grouped[19], floats.Sum(got[95:100]), 1e-6)
}

func TestSplitMono_Closed(t *testing.T) {
	vals := []float64{50, 40, 30}
	got, err := monospline.SplitMono(vals, []int{10, 15, 20}, false)
	require.NoError(t, err)
	require.Len(t, got, 15)
	assert.InDelta(t, 120, floats.Sum(got), 1e-9)
	assert.InDelta(t, 30, floats.Sum(got[10:]), 1e-9)
}

func TestSplitMono_ZeroGroupStaysFlat(t *testing.T) {
	vals := []float64{10, 0, 20, 5}
	got, err := monospline.SplitMono(vals, lowers(4, 5), false)
	require.NoError(t, err)
	for i := 5; i < 10; i++ {
		assert.InDelta(t, 0, got[i], 1e-9, "age %d", i)
	}
	for _, v := range got {
		assert.GreaterOrEqual(t, v, 0.0)
	}
}

func TestSplitMono_Errors(t *testing.T) {
	_, err := monospline.SplitMono([]float64{1}, []int{0}, false)
	require.ErrorIs(t, err, monospline.ErrTooFewGroups)

	_, err = monospline.SplitMono([]float64{1, 2}, []int{0}, false)
	require.ErrorIs(t, err, monospline.ErrLengthMismatch)

	_, err = monospline.SplitMono([]float64{1, 2, 3}, []int{0, 5, 5}, false)
	require.ErrorIs(t, err, monospline.ErrAgesNotIncreasing)

	_, err = monospline.SplitMono([]float64{1, 2, 3}, []int{0, 5, 15}, false)
	require.ErrorIs(t, err, monospline.ErrUnevenStep)
}

func TestSplitMonoMatrix(t *testing.T) {
	rows := make([][]float64, len(grouped))
	for i, v := range grouped {
		rows[i] = []float64{v, 2 * v}
	}
	m, err := agegroup.NewMatrix(lowers(len(grouped), 5), []string{"a", "b"}, true, rows)
	require.NoError(t, err)

	out, err := monospline.SplitMonoMatrix(m)
	require.NoError(t, err)
	assert.Equal(t, 101, out.Rows())
	assert.Equal(t, 1, out.Step())
	assert.Equal(t, []string{"a", "b"}, out.Periods())
	assert.True(t, out.Open())

	sums := out.ColSums()
	in := m.ColSums()
	assert.InDelta(t, in[0], sums[0], 1e-5)
	assert.InDelta(t, in[1], sums[1], 1e-5)

	_, err = monospline.SplitMonoMatrix(nil)
	require.Error(t, err)
}
