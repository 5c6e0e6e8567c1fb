// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package data is the unified persistence surface of mlio: one Save/Load
// pair per value category (dense matrix, sparse matrix, model, image) that
// detects the on-disk format and routes to the right codec.
//
// Format detection is layered. An explicit format in the options always
// wins. Otherwise the filename extension is classified into candidate
// formats; a single candidate is used directly, and ambiguous extensions
// (.txt and .bin map to more than one format) are disambiguated by sniffing
// the file content on load, or by a fixed category default on save. A
// trailing .gz wraps any format in gzip transparently.
//
// Matrices are column-major in memory while most formats are row-major on
// disk, so matrix Save/Load transposes at the boundary by default; set
// NoTranspose to keep the on-disk orientation.
//
// Failures follow one contract everywhere: a false return plus a warning on
// the configured logger, or, when the Fatal option is set, a panic carrying
// a *data.Error with the full diagnostic.
//
//	m, ok := data.LoadDense("dataset.csv", nil)
//	if !ok {
//	    // detection or decode failed; the warning names the cause
//	}
//	data.SaveDense("dataset.bin", m, nil) // Armadillo binary by default
package data
