// SPDX-License-Identifier: MIT

package coeffs

import "errors"

// MinGroups is the smallest number of 5-year groups (open group included)
// for which both the young and the old blocks fit without overlap.
const MinGroups = 6

// ErrInsufficientGroups is returned when fewer than MinGroups groups are requested.
var ErrInsufficientGroups = errors.New("coeffs: at least 6 age groups are required")
