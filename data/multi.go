// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"fmt"

	"github.com/mlio-dev/mlio/format"
	"github.com/mlio-dev/mlio/mat"
)

// ErrEmptyFileSet is returned by LoadDenseAll for an empty filename list.
var ErrEmptyFileSet = errors.New("given set of filenames is empty")

// LoadDenseAll loads several files into one dense matrix. With the default
// transpose every file contributes observations (columns) and all files must
// agree on the number of rows; with NoTranspose files are stacked by rows
// and must agree on columns. When HasHeaders is set, every file's header row
// must match the first file's.
func LoadDenseAll(filenames []string, opts *MatrixOptions) (*mat.Dense, bool) {
	o, _ := matrixOptions(opts)
	if len(filenames) == 0 {
		report("load", "", format.Dense, format.AutoDetect, ErrEmptyFileSet, &o.DataOptions)
		return nil, false
	}

	var total *mat.Dense
	var firstHeaders []string
	for i, filename := range filenames {
		part, ok := LoadDense(filename, o)
		if !ok {
			return nil, false
		}

		if o.HasHeaders {
			if i == 0 {
				firstHeaders = o.Headers
			} else if err := matchHeaders(firstHeaders, o.Headers, filenames[0], filename); err != nil {
				report("load", filename, format.Dense, format.AutoDetect, err, &o.DataOptions)
				return nil, false
			}
		}

		if i == 0 {
			total = part
			continue
		}

		var err error
		if !o.NoTranspose {
			if total.Rows() != part.Rows() {
				err = fmt.Errorf("dimension mismatch: %q has %d dimensions, first file %q has %d",
					filename, part.Rows(), filenames[0], total.Rows())
			} else {
				total, err = mat.HStack(total, part)
			}
		} else {
			if total.Cols() != part.Cols() {
				err = fmt.Errorf("dimension mismatch: %q has %d dimensions, first file %q has %d",
					filename, part.Cols(), filenames[0], total.Cols())
			} else {
				total, err = mat.VStack(total, part)
			}
		}
		if err != nil {
			report("load", filename, format.Dense, format.AutoDetect, err, &o.DataOptions)
			return nil, false
		}
	}

	if opts != nil {
		opts.Headers = firstHeaders
	}
	return total, true
}

func matchHeaders(want, got []string, wantFile, gotFile string) error {
	if len(want) != len(got) {
		return fmt.Errorf("header count in %q (%d) does not match %q (%d)",
			gotFile, len(got), wantFile, len(want))
	}
	for j := range want {
		if want[j] != got[j] {
			return fmt.Errorf("header column %d in %q (%q) does not match %q (%q)",
				j, gotFile, got[j], wantFile, want[j])
		}
	}
	return nil
}
