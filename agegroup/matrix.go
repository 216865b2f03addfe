// SPDX-License-Identifier: MIT

package agegroup

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/demosplit/matrix"
)

// Matrix is an age-by-period table of counts (the AgeCountMatrix).
//
//   - rows follow the Series age rules (uniform step, optional open last row);
//   - columns are observation periods, labelled by free-form strings;
//   - storage is a row-major matrix.Dense owned by the Matrix.
//
// A Matrix is immutable through its public API: every accessor returns a copy.
type Matrix struct {
	ages    []int
	periods []string
	open    bool
	step    int
	data    *matrix.Dense
}

// NewMatrix builds a Matrix from row slices (rows[i][j] = count at ages[i], period j).
// Nil periods are labelled "1".."k".
//
// Errors: ErrEmptySeries, ErrLengthMismatch, ErrNoColumns, ErrAgesNotIncreasing,
// ErrUnevenStep, ErrNonFinite.
func NewMatrix(ages []int, periods []string, open bool, rows [][]float64) (*Matrix, error) {
	if len(ages) == 0 {
		return nil, ErrEmptySeries
	}
	if len(rows) != len(ages) {
		return nil, fmt.Errorf("NewMatrix: %d ages, %d rows: %w", len(ages), len(rows), ErrLengthMismatch)
	}
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrNoColumns
	}
	flat := make([]float64, 0, len(ages)*cols)
	for i, r := range rows {
		if len(r) != cols {
			return nil, fmt.Errorf("NewMatrix: row %d has %d values, want %d: %w", i, len(r), cols, ErrLengthMismatch)
		}
		flat = append(flat, r...)
	}
	d, err := matrix.NewDenseFrom(len(ages), cols, flat)
	if err != nil {
		return nil, fmt.Errorf("NewMatrix: %v: %w", err, ErrNonFinite)
	}

	return build(ages, periods, open, d)
}

// FromDense wraps a copy of d with age and period labels.
func FromDense(ages []int, periods []string, open bool, d *matrix.Dense) (*Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("FromDense: %w", matrix.ErrNilMatrix)
	}
	if d.Rows() != len(ages) {
		return nil, fmt.Errorf("FromDense: %d ages, %d rows: %w", len(ages), d.Rows(), ErrLengthMismatch)
	}

	return build(ages, periods, open, d.CloneDense())
}

// FromSeries turns one Series into a single-column Matrix labelled period.
func FromSeries(s Series, period string) (*Matrix, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	d, err := matrix.NewDenseFrom(len(s.Values), 1, s.Values)
	if err != nil {
		return nil, fmt.Errorf("FromSeries: %v: %w", err, ErrNonFinite)
	}

	return build(s.Ages, []string{period}, s.Open, d)
}

// build validates labels and takes ownership of d.
func build(ages []int, periods []string, open bool, d *matrix.Dense) (*Matrix, error) {
	step, err := validateAges(ages)
	if err != nil {
		return nil, fmt.Errorf("Matrix: %w", err)
	}
	if periods == nil {
		periods = make([]string, d.Cols())
		for j := range periods {
			periods[j] = strconv.Itoa(j + 1)
		}
	}
	if len(periods) != d.Cols() {
		return nil, fmt.Errorf("Matrix: %d periods, %d columns: %w", len(periods), d.Cols(), ErrLengthMismatch)
	}

	return &Matrix{
		ages:    append([]int(nil), ages...),
		periods: append([]string(nil), periods...),
		open:    open,
		step:    step,
		data:    d,
	}, nil
}

// Ages returns the row lower-bound ages.
func (m *Matrix) Ages() []int { return append([]int(nil), m.ages...) }

// Periods returns the column labels.
func (m *Matrix) Periods() []string { return append([]string(nil), m.periods...) }

// Open reports whether the last row is an open age group.
func (m *Matrix) Open() bool { return m.open }

// Step returns the age step between rows (0 for a one-row matrix).
func (m *Matrix) Step() int { return m.step }

// Rows returns the number of age rows.
func (m *Matrix) Rows() int { return m.data.Rows() }

// Cols returns the number of period columns.
func (m *Matrix) Cols() int { return m.data.Cols() }

// MinAge returns the first row's age.
func (m *Matrix) MinAge() int { return m.ages[0] }

// MaxAge returns the last row's lower-bound age (the open group's lower bound when Open).
func (m *Matrix) MaxAge() int { return m.ages[len(m.ages)-1] }

// At returns the count at row i, column j.
func (m *Matrix) At(i, j int) (float64, error) { return m.data.At(i, j) }

// Column returns a copy of period column j.
func (m *Matrix) Column(j int) ([]float64, error) { return m.data.Col(j) }

// ColSums returns the per-period totals.
func (m *Matrix) ColSums() []float64 {
	sums, _ := matrix.ColSums(m.data) // data is never nil after build

	return sums
}

// Dense returns a copy of the backing storage.
func (m *Matrix) Dense() *matrix.Dense { return m.data.CloneDense() }

// RowIndex returns the row holding the given lower-bound age.
func (m *Matrix) RowIndex(age int) (int, bool) {
	if m.step == 0 {
		return 0, age == m.ages[0]
	}
	off := age - m.ages[0]
	if off < 0 || off%m.step != 0 || off/m.step >= len(m.ages) {
		return 0, false
	}

	return off / m.step, true
}

// SingleAges returns the single-year ages spanned by the matrix: min..MaxAge
// when the last row is open, min..MaxAge+step-1 otherwise.
func (m *Matrix) SingleAges() []int {
	last := m.MaxAge()
	if !m.open && m.step > 1 {
		last += m.step - 1
	}
	out := make([]int, 0, last-m.ages[0]+1)
	for a := m.ages[0]; a <= last; a++ {
		out = append(out, a)
	}

	return out
}

// Series returns period column j as a Series.
func (m *Matrix) Series(j int) (Series, error) {
	col, err := m.data.Col(j)
	if err != nil {
		return Series{}, err
	}

	return Series{Ages: m.Ages(), Values: col, Open: m.open}, nil
}
