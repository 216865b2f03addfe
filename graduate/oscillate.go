// SPDX-License-Identifier: MIT

package graduate

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/demosplit/agegroup"
)

// Oscillate smooths digit heaping in a single-age series.
//
// Algorithm Outline:
//  1. Set the open value, if any, aside.
//  2. For each boundary offset 0..4, regroup the closed ages into 5-year
//     groups and drop the groups cut short by the offset.
//  3. Split each regrouping with Sprague, or with Closeout unless
//     WithCloseout(false), using the last group's count as a stand-in open
//     group that is discarded afterwards. The pivot age is aligned down to
//     the offset's own group boundaries without a warning.
//  4. Every age takes the mean of the estimates that cover it.
//  5. Rescale to the closed total and append the open value unchanged.
//
// WithParallel(false) runs the passes sequentially; the result is identical.
// Warnings raised by the passes reach the handler one at a time.
//
// Complexity: five graduation passes over n ages, plus O(5·n) to average.
//
// Errors:
//   - ErrNotSingleAges: a step other than 1.
//   - ErrInsufficientGroups: an offset yields too few complete groups.
//   - ErrUncoveredAge: an age no pass covers.
//   - agegroup validation errors for a malformed series.
func Oscillate(s agegroup.Series, opts ...Option) (agegroup.Series, error) {
	o := gatherOptions(opts...)
	if err := s.Validate(); err != nil {
		return agegroup.Series{}, fmt.Errorf("Oscillate: %w", err)
	}
	body := s.Closed()
	if body.Len() > 1 && body.Step() != 1 {
		return agegroup.Series{}, fmt.Errorf("Oscillate: step %d: %w", body.Step(), ErrNotSingleAges)
	}

	// Passes must not share a handler concurrently, nor reuse a precomputed split.
	inner := o
	inner.precomputed = nil
	if o.onWarn != nil {
		var mu sync.Mutex
		inner.onWarn = func(err error) {
			mu.Lock()
			defer mu.Unlock()
			o.onWarn(err)
		}
	}

	passes := make([][]float64, GroupWidth)
	if o.parallel {
		var g errgroup.Group
		for shift := 0; shift < GroupWidth; shift++ {
			shift := shift
			g.Go(func() error {
				est, err := oscillatePass(body, shift, &inner)
				passes[shift] = est

				return err
			})
		}
		if err := g.Wait(); err != nil {
			return agegroup.Series{}, err
		}
	} else {
		for shift := 0; shift < GroupWidth; shift++ {
			est, err := oscillatePass(body, shift, &inner)
			if err != nil {
				return agegroup.Series{}, err
			}
			passes[shift] = est
		}
	}

	avg, err := averagePasses(body.Ages, passes)
	if err != nil {
		return agegroup.Series{}, err
	}
	if sum := floats.Sum(avg); sum != 0 {
		floats.Scale(body.Total()/sum, avg)
	}
	o.logger.Debug("oscillate averaged",
		zap.Int("ages", len(avg)),
		zap.Bool("closeout", o.closeout),
		zap.Bool("parallel", o.parallel),
	)

	out := agegroup.Series{Ages: append([]int(nil), s.Ages...), Values: avg, Open: s.Open}
	if s.Open {
		out.Values = append(out.Values, s.Values[len(s.Values)-1])
	}

	return out, nil
}

// oscillatePass returns the single-age estimates of one offset, aligned with
// body.Ages; ages outside the full groups are NaN.
func oscillatePass(body agegroup.Series, shift int, o *Options) ([]float64, error) {
	bins, err := agegroup.GroupAges(body.Values, body.Ages, GroupWidth, shift)
	if err != nil {
		return nil, fmt.Errorf("Oscillate: shift %d: %w", shift, err)
	}
	full := bins.Full(GroupWidth)
	if len(full) == 0 {
		return nil, fmt.Errorf("Oscillate: shift %d: no complete group: %w", shift, ErrInsufficientGroups)
	}

	// Stand-in open group one step past the last full group.
	lowers := full.Lowers()
	values := full.Values()
	lowers = append(lowers, lowers[len(lowers)-1]+GroupWidth)
	values = append(values, values[len(values)-1])

	grouped, err := agegroup.FromSeries(agegroup.Series{Ages: lowers, Values: values, Open: true}, "")
	if err != nil {
		return nil, fmt.Errorf("Oscillate: shift %d: %w", shift, err)
	}
	var split *agegroup.Matrix
	if o.closeout {
		po := *o
		po.pivotAge = alignPivot(o.pivotAge, lowers[0])
		if po.pivotAge != o.pivotAge {
			o.logger.Debug("oscillate pivot aligned",
				zap.Int("shift", shift),
				zap.Int("pivot_age", o.pivotAge),
				zap.Int("aligned_to", po.pivotAge),
			)
		}
		split, err = closeout(grouped, &po)
	} else {
		split, err = sprague(grouped, o)
	}
	if err != nil {
		return nil, fmt.Errorf("Oscillate: shift %d: %w", shift, err)
	}
	col, err := split.Column(0)
	if err != nil {
		return nil, fmt.Errorf("Oscillate: shift %d: %w", shift, err)
	}
	col = col[:len(col)-1] // drop the stand-in

	est := make([]float64, len(body.Ages))
	for i := range est {
		est[i] = math.NaN()
	}
	copy(est[lowers[0]-body.Ages[0]:], col)

	return est, nil
}

// alignPivot moves pivot down onto a group boundary of a grouping that starts
// at first. Pivots below first are returned as is.
func alignPivot(pivot, first int) int {
	if pivot < first {
		return pivot
	}

	return pivot - (pivot-first)%GroupWidth
}

// averagePasses takes the per-age mean over passes, ignoring NaN.
func averagePasses(ages []int, passes [][]float64) ([]float64, error) {
	avg := make([]float64, len(ages))
	for i := range avg {
		var sum float64
		var n int
		for _, p := range passes {
			if !math.IsNaN(p[i]) {
				sum += p[i]
				n++
			}
		}
		if n == 0 {
			return nil, fmt.Errorf("Oscillate: age %d: %w", ages[i], ErrUncoveredAge)
		}
		avg[i] = sum / float64(n)
	}

	return avg, nil
}
