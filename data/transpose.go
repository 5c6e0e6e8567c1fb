// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import "github.com/mlio-dev/mlio/mat"

// The transpose adapter. In-memory matrices are column-major (observations
// are columns); most on-disk formats are row-major (observations are rows),
// so by default matrices are transposed on the way to and from disk. Codecs
// stay oblivious to this policy. Model and image categories never transpose.

func denseToDisk(m *mat.Dense, o *DataOptions) *mat.Dense {
	if o.NoTranspose {
		return m
	}
	return m.T()
}

func denseFromDisk(m *mat.Dense, o *DataOptions) *mat.Dense {
	if o.NoTranspose {
		return m
	}
	return m.T()
}

func sparseToDisk(m *mat.Sparse, o *DataOptions) *mat.Sparse {
	if o.NoTranspose {
		return m
	}
	return m.T()
}

func sparseFromDisk(m *mat.Sparse, o *DataOptions) *mat.Sparse {
	if o.NoTranspose {
		return m
	}
	return m.T()
}
