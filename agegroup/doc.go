// Package agegroup models population counts indexed by age.
//
// Two shapes are used throughout demosplit:
//
//	Series: one column of (lower-bound age, count) pairs, e.g. single
//	         ages 0..99 plus an open "100+" group.
//	Matrix: an age-by-period table (rows: age groups, columns: observation
//	         periods) backed by a matrix.Dense.
//
// Ages are non-negative integers, strictly increasing with a uniform step
// (1 for single ages, 5 for quinquennial groups). The last entry may be
// flagged as an open group: an unbounded bucket that has no implied width
// and is never split.
//
// GroupAges is the aggregation utility ("AgeGrouper"): it bins a contiguous
// single-age series into N-year groups, optionally shifting the group
// boundaries by a digit offset. The oscillating Sprague average in package
// graduate relies on the shift.
//
// Values handed to constructors are copied; accessors return copies.
package agegroup
