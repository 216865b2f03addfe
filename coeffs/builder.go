// SPDX-License-Identifier: MIT

package coeffs

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/demosplit/matrix"
)

// Method selects a coefficient family.
type Method int

const (
	// MethodSprague is Sprague's fifth-difference osculatory interpolation.
	MethodSprague Method = iota
	// MethodGrabill is Grabill's smoothed variant of Sprague.
	MethodGrabill
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case MethodSprague:
		return "sprague"
	case MethodGrabill:
		return "grabill"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

type cacheKey struct {
	method Method
	groups int
	open   bool
}

// cache holds one immutable *matrix.Dense per key; it is never handed out.
var cache sync.Map

// Rows returns the number of single-age rows produced from groups 5-year
// groups: 5*groups-4 when the last group is open, 5*groups otherwise.
func Rows(groups int, open bool) int {
	if open {
		return 5*groups - 4
	}

	return 5 * groups
}

// BuildSprague returns the Sprague coefficient matrix for groups input groups.
// Every column sums to one.
//
// Errors: ErrInsufficientGroups.
func BuildSprague(groups int, open bool) (*matrix.Dense, error) {
	return Build(MethodSprague, groups, open)
}

// BuildGrabill returns the raw Grabill coefficient matrix for groups input groups.
// Boundary columns do not sum to one.
//
// Errors: ErrInsufficientGroups.
func BuildGrabill(groups int, open bool) (*matrix.Dense, error) {
	return Build(MethodGrabill, groups, open)
}

// Build returns a fresh copy of the coefficient matrix for method and shape.
// Repeated calls with the same arguments return bit-identical matrices.
func Build(method Method, groups int, open bool) (*matrix.Dense, error) {
	if groups < MinGroups {
		return nil, fmt.Errorf("Build(%s, %d): %w", method, groups, ErrInsufficientGroups)
	}
	key := cacheKey{method: method, groups: groups, open: open}
	if v, ok := cache.Load(key); ok {
		return v.(*matrix.Dense).CloneDense(), nil
	}

	var (
		young, old block
		middle     [5][5]float64
	)
	switch method {
	case MethodSprague:
		young, middle, old = spragueYoung, spragueMiddle, spragueOld
	case MethodGrabill:
		young, middle, old = grabillYoung, grabillMiddle, grabillOld
	default:
		return nil, fmt.Errorf("Build: unknown method %d", int(method))
	}

	built, err := place(young, middle, old, groups, open)
	if err != nil {
		return nil, fmt.Errorf("Build(%s, %d): %w", method, groups, err)
	}
	v, _ := cache.LoadOrStore(key, built)

	return v.(*matrix.Dense).CloneDense(), nil
}

// place assembles the blocks into an n×m matrix, n = Rows(m, open).
//
// Algorithm Outline:
//  1. The 10×5 young block sits at (0, 0).
//  2. Middle panels (5×5) follow on the diagonal: panel i at (10+5i, i),
//     for m-4 panels when closed and m-5 when open.
//  3. The 10×5 old block sits at (n-10, m-5), or (n-11, m-6) when open.
//  4. An open last group maps to itself with weight 1 at (n-1, m-1).
//
// Zero cells are skipped, so blocks never overwrite each other's non-zeros.
//
// Complexity: O(n·m) to allocate, O(n) to fill.
// Errors: only those of matrix.NewDense/Set, which cannot occur for m ≥ MinGroups.
func place(young block, middle [5][5]float64, old block, m int, open bool) (*matrix.Dense, error) {
	n := Rows(m, open)
	out, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, err
	}

	// Panels between the young and old blocks.
	panels := m - 4
	oldRow, oldCol := n-10, m-5
	if open {
		panels = m - 5
		oldRow, oldCol = n-11, m-6
	}

	put := func(r0, c0 int, rows [][5]float64) error {
		for r, row := range rows {
			for c, v := range row {
				if v == 0 {
					continue
				}
				if err := out.Set(r0+r, c0+c, v); err != nil {
					return err
				}
			}
		}

		return nil
	}

	if err = put(0, 0, young[:]); err != nil {
		return nil, err
	}
	for i := 0; i < panels; i++ {
		if err = put(10+5*i, i, middle[:]); err != nil {
			return nil, err
		}
	}
	if err = put(oldRow, oldCol, old[:]); err != nil {
		return nil, err
	}
	if open {
		if err = out.Set(n-1, m-1, 1); err != nil {
			return nil, err
		}
	}

	return out, nil
}
