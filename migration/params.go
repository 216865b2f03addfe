// SPDX-License-Identifier: MIT

package migration

import (
	"fmt"
	"math"
)

// Params are the Rogers–Castro parameters. Zero amplitudes (A1..A4) switch
// the matching component off.
type Params struct {
	// Pre-working age.
	A1, Alpha1 float64
	// Labour force.
	A2, Alpha2, Mu2, Lambda2 float64
	// Retirement.
	A3, Alpha3, Mu3, Lambda3 float64
	// Post-retirement.
	A4, Lambda4 float64
	// Constant.
	C float64
}

// numParams is the length of Params.vector.
const numParams = 13

func (p Params) vector() []float64 {
	return []float64{
		p.A1, p.Alpha1,
		p.A2, p.Alpha2, p.Mu2, p.Lambda2,
		p.A3, p.Alpha3, p.Mu3, p.Lambda3,
		p.A4, p.Lambda4,
		p.C,
	}
}

func paramsFrom(x []float64) Params {
	return Params{
		A1: x[0], Alpha1: x[1],
		A2: x[2], Alpha2: x[3], Mu2: x[4], Lambda2: x[5],
		A3: x[6], Alpha3: x[7], Mu3: x[8], Lambda3: x[9],
		A4: x[10], Lambda4: x[11],
		C: x[12],
	}
}

// Validate reports ErrNonFinite for any NaN or ±Inf parameter.
func (p Params) Validate() error {
	for i, v := range p.vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("Params: parameter %d: %w", i, ErrNonFinite)
		}
	}

	return nil
}

// At evaluates the schedule at age x.
func (p Params) At(x float64) float64 {
	m := p.C
	if p.A1 != 0 {
		m += p.A1 * math.Exp(-p.Alpha1*x)
	}
	if p.A2 != 0 {
		d := x - p.Mu2
		m += p.A2 * math.Exp(-p.Alpha2*d-math.Exp(-p.Lambda2*d))
	}
	if p.A3 != 0 {
		d := x - p.Mu3
		m += p.A3 * math.Exp(-p.Alpha3*d-math.Exp(-p.Lambda3*d))
	}
	if p.A4 != 0 {
		m += p.A4 * math.Exp(p.Lambda4*x)
	}

	return m
}

// Calculate evaluates the schedule at every age.
//
// Errors: ErrEmptyObservations, ErrNonFinite.
func Calculate(ages []float64, p Params) ([]float64, error) {
	if len(ages) == 0 {
		return nil, fmt.Errorf("Calculate: %w", ErrEmptyObservations)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("Calculate: %w", err)
	}
	out := make([]float64, len(ages))
	for i, x := range ages {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("Calculate: age %d: %w", i, ErrNonFinite)
		}
		out[i] = p.At(x)
	}

	return out, nil
}
