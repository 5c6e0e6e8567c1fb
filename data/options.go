// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"log/slog"

	"github.com/mlio-dev/mlio/format"
	"github.com/mlio-dev/mlio/internal/codec"
)

// DataOptions is the configuration shared by every Save/Load call. The zero
// value is the default: auto-detect the format, soft failures, transpose
// matrices at the disk boundary, warnings to slog.Default().
type DataOptions struct {
	// Format requests a concrete file format, bypassing extension
	// classification and content sniffing entirely.
	Format format.FileFormat

	// Fatal turns failures into panics carrying a *data.Error instead of
	// a logged warning and a false return.
	Fatal bool

	// NoTranspose disables the column-major/row-major conversion at the
	// disk boundary. Matrix categories only; ignored elsewhere.
	NoTranspose bool

	// Logger receives warnings and progress messages. Nil means
	// slog.Default().
	Logger *slog.Logger
}

func (o *DataOptions) logger() *slog.Logger {
	if o != nil && o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// MatrixOptions configures dense and sparse matrix Save/Load calls.
type MatrixOptions struct {
	DataOptions

	// HasHeaders marks the first row of delimited text as column names.
	HasHeaders bool

	// Delimiter overrides the CSV field separator, e.g. ';' or '\t'.
	// Zero means comma.
	Delimiter rune

	// Headers holds the column names: consumed on save (when HasHeaders
	// is set), populated on load.
	Headers []string
}

// ModelOptions configures model Save/Load calls.
type ModelOptions struct {
	DataOptions

	// Name is the archive entry name. Loading must use the name that was
	// used for saving. Empty means "model".
	Name string
}

// DefaultModelName is the archive entry name used when ModelOptions.Name is
// empty.
const DefaultModelName = "model"

func (o *ModelOptions) name() string {
	if o != nil && o.Name != "" {
		return o.Name
	}
	return DefaultModelName
}

// ImageOptions configures image Save/Load calls.
type ImageOptions struct {
	DataOptions

	// Channels selects the pixel depth: 1 (grayscale), 3 (RGB) or
	// 4 (RGBA). Zero means 3.
	Channels int
}

func (o *ImageOptions) channels() int {
	if o == nil || o.Channels == 0 {
		return 3
	}
	return o.Channels
}

// matrixOptions returns a defensive copy so a single call never mutates the
// caller's bundle, plus the text-codec view of it.
func matrixOptions(opts *MatrixOptions) (*MatrixOptions, *codec.TextOptions) {
	o := &MatrixOptions{}
	if opts != nil {
		*o = *opts
	}
	return o, &codec.TextOptions{
		Delimiter:  o.Delimiter,
		HasHeaders: o.HasHeaders,
		Headers:    o.Headers,
	}
}

func modelOptions(opts *ModelOptions) *ModelOptions {
	o := &ModelOptions{}
	if opts != nil {
		*o = *opts
	}
	return o
}

func imageOptions(opts *ImageOptions) (*ImageOptions, error) {
	o := &ImageOptions{}
	if opts != nil {
		*o = *opts
	}
	switch o.Channels {
	case 0, 1, 3, 4:
		return o, nil
	default:
		return o, fmt.Errorf("%w: %d channels (want 1, 3, or 4)", ErrInvalidOptions, o.Channels)
	}
}
