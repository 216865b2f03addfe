package matrix_test

import (
	"testing"

	"github.com/katalvlaran/demosplit/matrix"
)

// BenchmarkMul_Banded measures a 101×21 banded coefficient matrix times 21×10 counts,
// the shape of a single-age split over ten periods.
func BenchmarkMul_Banded(b *testing.B) {
	coef, _ := matrix.NewDense(101, 21)
	for i := 0; i < 101; i++ {
		for k := i / 5; k < i/5+3 && k < 21; k++ {
			_ = coef.Set(i, k, 0.1)
		}
	}
	counts, _ := matrix.NewDense(21, 10)
	_ = counts.Apply(func(i, j int, _ float64) float64 { return float64(1000 + i*10 + j) })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := matrix.Mul(coef, counts); err != nil {
			b.Fatalf("Mul failed: %v", err)
		}
	}
}
