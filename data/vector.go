// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"fmt"

	"github.com/mlio-dev/mlio/format"
)

// LoadColumn loads filename as a column vector. The file may hold either a
// single column or a single row; anything wider fails with ErrNotVector.
func LoadColumn(filename string, opts *MatrixOptions) ([]float64, bool) {
	return loadVector("column", filename, opts)
}

// LoadRow loads filename as a row vector, with the same shape tolerance as
// LoadColumn.
func LoadRow(filename string, opts *MatrixOptions) ([]float64, bool) {
	return loadVector("row", filename, opts)
}

func loadVector(kind, filename string, opts *MatrixOptions) ([]float64, bool) {
	o, _ := matrixOptions(opts)
	// Vectors keep their on-disk orientation; the dense transpose policy
	// is about observations vs. variables and does not apply.
	o.NoTranspose = true

	m, ok := LoadDense(filename, o)
	if !ok {
		return nil, false
	}
	switch {
	case m.Cols() == 1:
		return m.Col(0), true
	case m.Rows() == 1:
		return m.T().Col(0), true
	default:
		err := fmt.Errorf("%w: %dx%d matrix cannot be a %s vector", ErrNotVector, m.Rows(), m.Cols(), kind)
		report("load", filename, format.Dense, format.AutoDetect, err, &o.DataOptions)
		return nil, false
	}
}
