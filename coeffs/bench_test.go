// SPDX-License-Identifier: MIT
package coeffs_test

import (
	"testing"

	"github.com/katalvlaran/demosplit/coeffs"
)

func BenchmarkBuildSprague_Cached(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := coeffs.BuildSprague(21, true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBuildGrabill_Cached(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := coeffs.BuildGrabill(21, true); err != nil {
			b.Fatal(err)
		}
	}
}
