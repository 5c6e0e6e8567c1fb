// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"github.com/mlio-dev/mlio/format"
	"github.com/mlio-dev/mlio/internal/codec"
	"github.com/mlio-dev/mlio/mat"
)

// SaveSparse writes m to filename as a coordinate list or Armadillo sparse
// binary, detected from the extension unless opts requests a format
// explicitly. Dense-only formats are rejected. A nil opts means defaults.
//
// Coordinate-list text carries no explicit dimensions, so trailing rows or
// columns that are entirely zero are not restored on reload; the Armadillo
// binary format preserves them.
func SaveSparse(filename string, m *mat.Sparse, opts *MatrixOptions) bool {
	o, topts := matrixOptions(opts)

	det, err := resolveSave(filename, format.Sparse, &o.DataOptions)
	if err != nil {
		return report("save", filename, format.Sparse, format.AutoDetect, err, &o.DataOptions)
	}

	err = func() error {
		w, closeW, err := openWrite(filename)
		if err != nil {
			return err
		}
		if err := codec.Sparse(det.Format).Encode(w, sparseToDisk(m, &o.DataOptions), topts); err != nil {
			_ = closeW()
			return err
		}
		return closeW()
	}()
	return report("save", filename, format.Sparse, det.Format, err, &o.DataOptions)
}

// LoadSparse reads a sparse matrix from filename. Text input may be a
// coordinate list or a delimited grid; the codec converts either. A .bin
// file sniffed as raw binary is rejected: that format is dense-only.
func LoadSparse(filename string, opts *MatrixOptions) (*mat.Sparse, bool) {
	o, topts := matrixOptions(opts)

	var det format.Detection
	m, err := func() (*mat.Sparse, error) {
		r, closeR, err := openRead(filename)
		if err != nil {
			return nil, err
		}
		defer func() { _ = closeR() }()

		det, err = resolveLoad(filename, format.Sparse, &o.DataOptions, r)
		if err != nil {
			return nil, err
		}

		m, err := codec.Sparse(det.Format).Decode(r, topts)
		if err != nil {
			return nil, err
		}
		return sparseFromDisk(m, &o.DataOptions), nil
	}()

	if !report("load", filename, format.Sparse, det.Format, err, &o.DataOptions) {
		return nil, false
	}
	o.logger().Info("loaded sparse matrix",
		"file", filename,
		"format", det.Format.String(),
		"rows", m.Rows(),
		"cols", m.Cols(),
		"nnz", m.NNZ())
	return m, true
}
