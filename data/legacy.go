// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"github.com/mlio-dev/mlio/format"
	"github.com/mlio-dev/mlio/mat"
)

// Positional entry points kept for callers predating the options bundles.
// Each one only builds the options struct and delegates; resolution logic
// lives in one place.

// SaveDenseAs saves m with positional flags instead of a MatrixOptions.
func SaveDenseAs(filename string, m *mat.Dense, fatal, transpose bool, f format.FileFormat) bool {
	return SaveDense(filename, m, &MatrixOptions{
		DataOptions: DataOptions{Format: f, Fatal: fatal, NoTranspose: !transpose},
	})
}

// LoadDenseAs loads a dense matrix with positional flags.
func LoadDenseAs(filename string, fatal, transpose bool, f format.FileFormat) (*mat.Dense, bool) {
	return LoadDense(filename, &MatrixOptions{
		DataOptions: DataOptions{Format: f, Fatal: fatal, NoTranspose: !transpose},
	})
}

// SaveSparseAs saves m with positional flags.
func SaveSparseAs(filename string, m *mat.Sparse, fatal, transpose bool) bool {
	return SaveSparse(filename, m, &MatrixOptions{
		DataOptions: DataOptions{Fatal: fatal, NoTranspose: !transpose},
	})
}

// LoadSparseAs loads a sparse matrix with positional flags.
func LoadSparseAs(filename string, fatal, transpose bool) (*mat.Sparse, bool) {
	return LoadSparse(filename, &MatrixOptions{
		DataOptions: DataOptions{Fatal: fatal, NoTranspose: !transpose},
	})
}

// SaveModelAs saves model under the given archive entry name with positional
// flags.
func SaveModelAs(filename, name string, model any, fatal bool, f format.FileFormat) bool {
	return SaveModel(filename, model, &ModelOptions{
		DataOptions: DataOptions{Format: f, Fatal: fatal},
		Name:        name,
	})
}

// LoadModelAs loads model saved under the given archive entry name with
// positional flags.
func LoadModelAs(filename, name string, model any, fatal bool, f format.FileFormat) bool {
	return LoadModel(filename, model, &ModelOptions{
		DataOptions: DataOptions{Format: f, Fatal: fatal},
		Name:        name,
	})
}
