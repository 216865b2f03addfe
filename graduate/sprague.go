// SPDX-License-Identifier: MIT

package graduate

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/demosplit/agegroup"
	"github.com/katalvlaran/demosplit/coeffs"
)

// Sprague splits every period column of pop with Sprague's coefficients.
//
// Column totals are preserved and an open last group is passed through.
// Irregular input can yield small negative counts at the oldest ages; use
// Closeout to remove them.
//
// Complexity: O(n·g·p) for n single ages, g groups and p periods; the banded
// coefficients make it O(n·p) in practice.
// Errors: ErrNotGrouped, ErrInsufficientGroups.
func Sprague(pop *agegroup.Matrix, opts ...Option) (*agegroup.Matrix, error) {
	o := gatherOptions(opts...)

	return sprague(pop, &o)
}

func sprague(pop *agegroup.Matrix, o *Options) (*agegroup.Matrix, error) {
	if err := requireGrouped("Sprague", pop); err != nil {
		return nil, err
	}
	coef, err := coeffs.BuildSprague(pop.Rows(), pop.Open())
	if err != nil {
		return nil, fmt.Errorf("Sprague: %w", err)
	}
	out, err := Redistribute(coef, pop)
	if err != nil {
		return nil, fmt.Errorf("Sprague: %w", err)
	}
	o.logger.Debug("sprague split",
		zap.Int("groups", pop.Rows()),
		zap.Int("periods", pop.Cols()),
		zap.Bool("open", pop.Open()),
	)

	return out, nil
}

// spragueOrPrecomputed returns the precomputed split when one was supplied
// and fits pop, otherwise computes it.
func spragueOrPrecomputed(op string, pop *agegroup.Matrix, o *Options) (*agegroup.Matrix, error) {
	if o.precomputed == nil {
		return sprague(pop, o)
	}
	p := o.precomputed
	if p.Rows() != coeffs.Rows(pop.Rows(), pop.Open()) || p.Cols() != pop.Cols() || p.MinAge() != pop.MinAge() {
		return nil, fmt.Errorf("%s: precomputed %dx%d from age %d does not fit input: %w",
			op, p.Rows(), p.Cols(), p.MinAge(), ErrDimensionMismatch)
	}

	return p, nil
}
