// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"github.com/mlio-dev/mlio/format"
	"github.com/mlio-dev/mlio/internal/codec"
	"github.com/mlio-dev/mlio/mat"
)

// SaveDense writes m to filename, detecting the format from the extension
// unless opts requests one explicitly. By default the matrix is transposed
// so columns in memory become rows on disk. Returns false (or panics, with
// opts.Fatal) on failure. A nil opts means defaults.
func SaveDense(filename string, m *mat.Dense, opts *MatrixOptions) bool {
	o, topts := matrixOptions(opts)

	det, err := resolveSave(filename, format.Dense, &o.DataOptions)
	if err != nil {
		return report("save", filename, format.Dense, format.AutoDetect, err, &o.DataOptions)
	}

	err = func() error {
		w, closeW, err := openWrite(filename)
		if err != nil {
			return err
		}
		if err := codec.Dense(det.Format).Encode(w, denseToDisk(m, &o.DataOptions), topts); err != nil {
			_ = closeW()
			return err
		}
		return closeW()
	}()
	return report("save", filename, format.Dense, det.Format, err, &o.DataOptions)
}

// LoadDense reads a dense matrix from filename. The format comes from the
// extension, content sniffing for ambiguous extensions, or an explicit
// request in opts. By default rows on disk become columns in memory. On
// failure the matrix is nil and the flag false (or the call panics, with
// opts.Fatal).
func LoadDense(filename string, opts *MatrixOptions) (*mat.Dense, bool) {
	o, topts := matrixOptions(opts)

	var det format.Detection
	m, err := func() (*mat.Dense, error) {
		r, closeR, err := openRead(filename)
		if err != nil {
			return nil, err
		}
		defer func() { _ = closeR() }()

		det, err = resolveLoad(filename, format.Dense, &o.DataOptions, r)
		if err != nil {
			return nil, err
		}
		if det.Format == format.RawBinary && det.Confidence != format.ByOverride {
			o.logger().Warn("loading as raw binary; this may not be the actual filetype",
				"file", filename)
		}

		m, err := codec.Dense(det.Format).Decode(r, topts)
		if err != nil {
			return nil, err
		}
		if det.Format == format.CSV && !o.HasHeaders && m.Rows() > 0 && m.IsZeroRow(0) {
			o.logger().Warn("first line loaded as all zeros; if it holds headers, set HasHeaders",
				"file", filename)
		}
		return denseFromDisk(m, &o.DataOptions), nil
	}()

	if opts != nil {
		opts.Headers = topts.Headers
	}
	if !report("load", filename, format.Dense, det.Format, err, &o.DataOptions) {
		return nil, false
	}
	o.logger().Info("loaded dense matrix",
		"file", filename,
		"format", det.Format.String(),
		"rows", m.Rows(),
		"cols", m.Cols())
	return m, true
}
