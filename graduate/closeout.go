// SPDX-License-Identifier: MIT

package graduate

import (
	"fmt"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/demosplit/agegroup"
	"github.com/katalvlaran/demosplit/matrix"
	"github.com/katalvlaran/demosplit/monospline"
)

// Closeout replaces the oldest single ages of a Sprague split with a
// monotone spline split.
//
// Algorithm Outline:
//  1. Resolve the pivot (WithPivotAge, default 90): move it down to a group
//     boundary when it falls inside a group, then clamp it to the last lower
//     bound minus 10 when it is too high. Both adjustments are warnings. If
//     the clamped pivot is below DefaultMinPivotAge the closeout is skipped
//     (another warning) and the Sprague split is returned.
//  2. Split every column with Sprague (or take WithPrecomputed) and with
//     monospline.SplitMonoMatrix.
//  3. Per period column:
//     - ages below the pivot keep the Sprague values;
//     - the five ages from the pivot take the spline values, the first one
//     keeping the Sprague value when that is larger, and are rescaled to
//     the pivot group's original count (skipped when they sum to zero);
//     - ages above that window, up to the open row or the last row of a
//     closed table, take the spline values.
//  4. The open row is left untouched and negatives are floored at zero.
//
// Complexity: O(n·g·p) for the Sprague product plus O(n·p) for the spline,
// with n single ages, g groups and p periods.
//
// Errors:
//   - ErrNotGrouped, ErrInsufficientGroups: input shape.
//   - ErrDimensionMismatch: a precomputed split of the wrong shape.
//   - ErrInvalidPivotAge: a pivot below the first age.
func Closeout(pop *agegroup.Matrix, opts ...Option) (*agegroup.Matrix, error) {
	o := gatherOptions(opts...)

	return closeout(pop, &o)
}

func closeout(pop *agegroup.Matrix, o *Options) (*agegroup.Matrix, error) {
	if err := requireGrouped("Closeout", pop); err != nil {
		return nil, err
	}
	pops, err := spragueOrPrecomputed("Closeout", pop, o)
	if err != nil {
		return nil, err
	}

	pivot, ok, err := resolvePivot(pop, o)
	if err != nil {
		return nil, err
	}
	if !ok {
		return pops, nil
	}

	spline, err := monospline.SplitMonoMatrix(pop)
	if err != nil {
		return nil, fmt.Errorf("Closeout: %w", err)
	}
	out := pops.Dense()
	split := spline.Dense()

	first := pivot - pop.MinAge()
	end := out.Rows()
	if pop.Open() {
		end--
	}
	groupRow, _ := pop.RowIndex(pivot)

	for j := 0; j < out.Cols(); j++ {
		sp, _ := split.Col(j)
		col, _ := out.Col(j)

		keep := col[first]
		copy(col[first:end], sp[first:end])
		if keep > col[first] {
			col[first] = keep
		}
		if err = out.SetCol(j, col); err != nil {
			return nil, fmt.Errorf("Closeout: %w", err)
		}

		target, _ := pop.At(groupRow, j)
		if s := floats.Sum(col[first : first+GroupWidth]); s != 0 {
			if err = matrix.ScaleCol(out, j, first, first+GroupWidth, target/s); err != nil {
				return nil, fmt.Errorf("Closeout: %w", err)
			}
		}
	}

	raised, err := matrix.ClampMin(out, 0)
	if err != nil {
		return nil, fmt.Errorf("Closeout: %w", err)
	}
	o.logger.Debug("closeout applied",
		zap.Int("pivot_age", pivot),
		zap.Int("negatives_floored", raised),
	)

	return agegroup.FromDense(pops.Ages(), pop.Periods(), pop.Open(), out)
}

// resolvePivot applies the pivot rules. ok is false when the closeout must be
// skipped.
func resolvePivot(pop *agegroup.Matrix, o *Options) (pivot int, ok bool, err error) {
	pivot = o.pivotAge
	minAge, maxAge := pop.MinAge(), pop.MaxAge()
	if pivot < minAge {
		return 0, false, fmt.Errorf("Closeout: pivot %d below first age %d: %w", pivot, minAge, ErrInvalidPivotAge)
	}

	if off := (pivot - minAge) % GroupWidth; off != 0 {
		snapped := pivot - off
		o.warn(fmt.Errorf("Closeout: pivot %d is not a group boundary, using %d: %w", pivot, snapped, ErrInvalidPivotAge),
			zap.Int("pivot_age", pivot), zap.Int("snapped_to", snapped))
		pivot = snapped
	}

	if limit := maxAge - 2*GroupWidth; pivot > limit {
		o.warn(fmt.Errorf("Closeout: pivot %d above max age %d minus 10, using %d: %w", pivot, maxAge, limit, ErrInvalidPivotAge),
			zap.Int("pivot_age", pivot), zap.Int("max_age", maxAge), zap.Int("clamped_to", limit))
		pivot = limit
		if pivot < DefaultMinPivotAge || pivot < minAge {
			o.warn(fmt.Errorf("Closeout: clamped pivot %d below %d, closeout skipped: %w", pivot, DefaultMinPivotAge, ErrInvalidPivotAge),
				zap.Int("clamped_to", pivot), zap.Int("max_age", maxAge))

			return 0, false, nil
		}
	}

	return pivot, true, nil
}
