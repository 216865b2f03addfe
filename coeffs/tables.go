// SPDX-License-Identifier: MIT

package coeffs

// Published coefficient tables, row-major. Rows are output single ages,
// columns are input 5-year groups relative to the block origin.

// spragueYoung splits the first two groups (ages 0-9).
var spragueYoung = [10][5]float64{
	{0.3616, -0.2768, 0.1488, -0.0336, 0},
	{0.2640, -0.0960, 0.0400, -0.0080, 0},
	{0.1840, 0.0400, -0.0320, 0.0080, 0},
	{0.1200, 0.1360, -0.0720, 0.0160, 0},
	{0.0704, 0.1968, -0.0848, 0.0176, 0},
	{0.0336, 0.2272, -0.0752, 0.0144, 0},
	{0.0080, 0.2320, -0.0480, 0.0080, 0},
	{-0.0080, 0.2160, -0.0080, 0, 0},
	{-0.0160, 0.1840, 0.0400, -0.0080, 0},
	{-0.0176, 0.1408, 0.0912, -0.0144, 0},
}

// spragueMiddle splits the central group of a 5-group window.
var spragueMiddle = [5][5]float64{
	{-0.0128, 0.0848, 0.1504, -0.0240, 0.0016},
	{-0.0016, 0.0144, 0.2224, -0.0416, 0.0064},
	{0.0064, -0.0336, 0.2544, -0.0336, 0.0064},
	{0.0064, -0.0416, 0.2224, 0.0144, -0.0016},
	{0.0016, -0.0240, 0.1504, 0.0848, -0.0128},
}

// spragueOld splits the last two closed groups.
var spragueOld = [10][5]float64{
	{0, -0.0144, 0.0912, 0.1408, -0.0176},
	{0, -0.0080, 0.0400, 0.1840, -0.0160},
	{0, 0, -0.0080, 0.2160, -0.0080},
	{0, 0.0080, -0.0480, 0.2320, 0.0080},
	{0, 0.0144, -0.0752, 0.2272, 0.0336},
	{0, 0.0176, -0.0848, 0.1968, 0.0704},
	{0, 0.0160, -0.0720, 0.1360, 0.1200},
	{0, 0.0080, -0.0320, 0.0400, 0.1840},
	{0, -0.0080, 0.0400, -0.0960, 0.2640},
	{0, -0.0336, 0.1488, -0.2768, 0.3616},
}

// grabillMiddle is Grabill's smoothed middle panel. The boundary blocks are
// cut from its columns (see grabillYoung, grabillOld).
var grabillMiddle = [5][5]float64{
	{0.0111, 0.0816, 0.0826, 0.0256, -0.0009},
	{0.0049, 0.0673, 0.0903, 0.0377, -0.0002},
	{0.0015, 0.0519, 0.0932, 0.0519, 0.0015},
	{-0.0002, 0.0377, 0.0903, 0.0673, 0.0049},
	{-0.0009, 0.0256, 0.0826, 0.0816, 0.0111},
}

// block is a 10×5 boundary block.
type block [10][5]float64

var (
	grabillYoung = deriveGrabillYoung()
	grabillOld   = deriveGrabillOld()
)

// deriveGrabillYoung: first group from middle columns 2..4, second from 1..4.
func deriveGrabillYoung() block {
	var b block
	for r := 0; r < 5; r++ {
		for c := 0; c < 3; c++ {
			b[r][c] = grabillMiddle[r][c+2]
		}
		for c := 0; c < 4; c++ {
			b[5+r][c] = grabillMiddle[r][c+1]
		}
	}

	return b
}

// deriveGrabillOld mirrors deriveGrabillYoung onto the last two groups.
func deriveGrabillOld() block {
	var b block
	for r := 0; r < 5; r++ {
		for c := 0; c < 4; c++ {
			b[r][c+1] = grabillMiddle[r][c]
		}
		for c := 0; c < 3; c++ {
			b[5+r][c+2] = grabillMiddle[r][c]
		}
	}

	return b
}
