// SPDX-License-Identifier: MIT
package graduate_test

import (
	"testing"

	"github.com/katalvlaran/demosplit/agegroup"
	"github.com/stretchr/testify/require"
)

// heaped is a single-age population, ages 0..100 with 100+ open, with digit
// preference at ages ending in 0 and 5 and a sharp drop after 89.
var heaped = []float64{
	90000, 89820, 89640, 89460, 89280, 102465, 88920, 88740, 88560, 88380,
	114660, 88020, 87840, 87660, 87480, 100395, 87120, 86940, 86760, 86580,
	112320, 86220, 86040, 85860, 85680, 98325, 85320, 85140, 84960, 84780,
	109980, 84420, 84240, 84060, 83880, 96255, 83462, 83107, 82638, 82056,
	105773, 80564, 79660, 78656, 77556, 87818, 75083, 73721, 72283, 70772,
	89955, 67561, 65871, 64133, 62354, 69619, 58693, 56825, 54938, 53040,
	66476, 49230, 47329, 45437, 43560, 47957, 39867, 38059, 36282, 34540,
	42685, 31170, 29548, 27971, 26442, 28704, 23529, 22149, 20820, 19543,
	23815, 17148, 16029, 14962, 13946, 14928, 12066, 11199, 10380, 9608,
	3463, 2459, 2266, 2086, 1917, 2024, 1613, 1476, 1349, 1231,
	1459,
}

// grouped is heaped in 5-year groups, ages 0,5,...,95 plus 100+.
var grouped = []float64{
	448200, 457065, 465660, 447795, 456120, 438525, 446580, 427518, 422209, 379677,
	349874, 293115, 252032, 196705, 157816, 114745, 85900, 58181, 12191, 7693, 1459,
}

func steps(n, step int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i * step
	}

	return out
}

// groupedMatrix builds a matrix of grouped scaled per period.
func groupedMatrix(t testing.TB, scales ...float64) *agegroup.Matrix {
	t.Helper()
	rows := make([][]float64, len(grouped))
	for i, v := range grouped {
		rows[i] = make([]float64, len(scales))
		for j, s := range scales {
			rows[i][j] = v * s
		}
	}
	m, err := agegroup.NewMatrix(steps(len(grouped), 5), nil, true, rows)
	require.NoError(t, err)

	return m
}

func column(t testing.TB, m *agegroup.Matrix, j int) []float64 {
	t.Helper()
	c, err := m.Column(j)
	require.NoError(t, err)

	return c
}
