// SPDX-License-Identifier: MIT

package migration

import (
	"fmt"
	"math"
)

// Observations are observed migration rates by age.
type Observations struct {
	Ages  []float64
	Rates []float64
}

// Validate checks that ages and rates are non-empty, equally long and finite.
func (o Observations) Validate() error {
	if len(o.Ages) == 0 {
		return ErrEmptyObservations
	}
	if len(o.Ages) != len(o.Rates) {
		return fmt.Errorf("Observations: %d ages, %d rates: %w", len(o.Ages), len(o.Rates), ErrLengthMismatch)
	}
	for i := range o.Ages {
		if bad(o.Ages[i]) || bad(o.Rates[i]) {
			return fmt.Errorf("Observations: entry %d: %w", i, ErrNonFinite)
		}
	}

	return nil
}

// residual returns the sum of squared differences between p and the rates.
// Non-finite sums are reported as math.MaxFloat64.
func (o Observations) residual(p Params) float64 {
	var s float64
	for i, x := range o.Ages {
		d := p.At(x) - o.Rates[i]
		s += d * d
	}
	if bad(s) {
		return math.MaxFloat64
	}

	return s
}

func bad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
