// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"fmt"

	"github.com/mlio-dev/mlio/format"
)

// Detection and configuration failures. These originate before any codec
// runs; codec failures carry their own format-local messages.
var (
	// ErrUnknownExtension means the filename's extension maps to no
	// format for the value category.
	ErrUnknownExtension = errors.New("unable to detect format from extension")

	// ErrNoSaveDefault means the extension is ambiguous and the category
	// has no documented default to save with.
	ErrNoSaveDefault = errors.New("no default save format for ambiguous extension")

	// ErrInvalidOptions means an option or explicit format is illegal for
	// the value category.
	ErrInvalidOptions = errors.New("options invalid for value category")

	// ErrSparseUnsupported means a dense-only format was requested or
	// detected for a sparse matrix.
	ErrSparseUnsupported = errors.New("format is only supported for dense matrices")

	// ErrNotVector means a file loaded as a vector holds a full matrix.
	ErrNotVector = errors.New("file does not contain a vector")
)

// Error is the uniform diagnostic for failed Save/Load calls: it names the
// operation, the file, the value category, and the format that was resolved
// (or AutoDetect when detection itself failed). Fatal calls panic with it;
// soft calls log it and return false.
type Error struct {
	Op       string // "load" or "save"
	Filename string
	Category format.Category
	Format   format.FileFormat
	Err      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %q as %s (%s): %v", e.Op, e.Filename, e.Category, e.Format, e.Err)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }
