// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package mat provides the matrix types persisted by the mlio data layer.
//
// Dense matrices are stored column-major, matching the in-memory convention
// of numerical libraries; most on-disk formats are row-major, so the data
// layer transposes at the boundary by default.
package mat

import (
	"fmt"
	"math"
)

// Dense is a column-major matrix of float64 values.
type Dense struct {
	rows, cols int
	data       []float64 // column-major, len == rows*cols
}

// NewDense creates a zero-filled rows×cols matrix.
func NewDense(rows, cols int) *Dense {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("mat: negative dimension %dx%d", rows, cols))
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// NewDenseData creates a matrix backed by data, which must be column-major
// with len == rows*cols. The matrix takes ownership of the slice.
func NewDenseData(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("invalid dimensions %dx%d", rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("data length %d does not match %dx%d", len(data), rows, cols)
	}
	return &Dense{rows: rows, cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at row i, column j.
func (m *Dense) At(i, j int) float64 {
	m.check(i, j)
	return m.data[j*m.rows+i]
}

// Set stores v at row i, column j.
func (m *Dense) Set(i, j int, v float64) {
	m.check(i, j)
	m.data[j*m.rows+i] = v
}

func (m *Dense) check(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("mat: index (%d,%d) out of bounds for %dx%d matrix", i, j, m.rows, m.cols))
	}
}

// Data returns the column-major backing slice. Mutating it mutates the matrix.
func (m *Dense) Data() []float64 { return m.data }

// Col returns a copy of column j.
func (m *Dense) Col(j int) []float64 {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("mat: column %d out of bounds for %dx%d matrix", j, m.rows, m.cols))
	}
	col := make([]float64, m.rows)
	copy(col, m.data[j*m.rows:(j+1)*m.rows])
	return col
}

// T returns the transpose as a new matrix.
func (m *Dense) T() *Dense {
	t := NewDense(m.cols, m.rows)
	for j := 0; j < m.cols; j++ {
		for i := 0; i < m.rows; i++ {
			t.data[i*t.rows+j] = m.data[j*m.rows+i]
		}
	}
	return t
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	c := NewDense(m.rows, m.cols)
	copy(c.data, m.data)
	return c
}

// Equal reports whether m and other have identical dimensions and elements.
func (m *Dense) Equal(other *Dense) bool {
	return m.EqualTol(other, 0)
}

// EqualTol reports whether m and other agree element-wise within tol.
func (m *Dense) EqualTol(other *Dense, tol float64) bool {
	if other == nil || m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i, v := range m.data {
		if math.Abs(v-other.data[i]) > tol {
			return false
		}
	}
	return true
}

// IsZeroCol reports whether column j is entirely zero.
func (m *Dense) IsZeroCol(j int) bool {
	for i := 0; i < m.rows; i++ {
		if m.data[j*m.rows+i] != 0 {
			return false
		}
	}
	return true
}

// IsZeroRow reports whether row i is entirely zero.
func (m *Dense) IsZeroRow(i int) bool {
	for j := 0; j < m.cols; j++ {
		if m.data[j*m.rows+i] != 0 {
			return false
		}
	}
	return true
}

// HStack concatenates a and b side by side. Both must have the same number
// of rows.
func HStack(a, b *Dense) (*Dense, error) {
	if a.rows != b.rows {
		return nil, fmt.Errorf("row count mismatch: %d vs %d", a.rows, b.rows)
	}
	out := NewDense(a.rows, a.cols+b.cols)
	copy(out.data, a.data)
	copy(out.data[len(a.data):], b.data)
	return out, nil
}

// VStack concatenates a on top of b. Both must have the same number of
// columns.
func VStack(a, b *Dense) (*Dense, error) {
	if a.cols != b.cols {
		return nil, fmt.Errorf("column count mismatch: %d vs %d", a.cols, b.cols)
	}
	out := NewDense(a.rows+b.rows, a.cols)
	for j := 0; j < a.cols; j++ {
		copy(out.data[j*out.rows:], a.data[j*a.rows:(j+1)*a.rows])
		copy(out.data[j*out.rows+a.rows:], b.data[j*b.rows:(j+1)*b.rows])
	}
	return out, nil
}

// String returns a compact description for diagnostics.
func (m *Dense) String() string {
	return fmt.Sprintf("Dense(%dx%d)", m.rows, m.cols)
}
