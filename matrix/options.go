// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults.
//
// Design goals:
//   - Deterministic behavior: no global mutable state, no implicit randomness.
//   - Single source of truth: constructors read their policy from here.
//
// Notes:
//   - validateNaNInf controls whether Set()/Apply() reject NaN/±Inf.
//     Counts and coefficients are always finite, so the guard is always on.
package matrix

import "math"

// Numeric policy.
const (
	// DefaultEpsilon defines the non-negative tolerance used by AllClose-style checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true
)

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
