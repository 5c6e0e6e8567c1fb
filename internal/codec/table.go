// Package codec implements the on-disk encodings behind the mlio data layer
// and the closed dispatch table that routes (category, format) pairs to them.
//
// Codecs are oblivious to detection policy and matrix orientation: they
// encode and decode exactly what is on disk. Extension handling, sniffing,
// defaulting, and transposition are upstream responsibilities.
package codec

import (
	"fmt"
	"image"
	"io"

	"github.com/mlio-dev/mlio/format"
	"github.com/mlio-dev/mlio/mat"
)

// TextOptions carries the text-codec knobs resolved upstream. Binary codecs
// ignore it.
type TextOptions struct {
	// Delimiter is the CSV field separator; zero means comma.
	Delimiter rune
	// HasHeaders marks the first row as a header line. On decode the
	// header fields are written back to Headers.
	HasHeaders bool
	// Headers holds column names: consumed on encode, produced on decode.
	Headers []string
}

func (o *TextOptions) delimiter() rune {
	if o == nil || o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// DenseCodec encodes and decodes dense matrices in one concrete format.
type DenseCodec interface {
	Encode(w io.Writer, m *mat.Dense, opts *TextOptions) error
	Decode(r io.Reader, opts *TextOptions) (*mat.Dense, error)
}

// SparseCodec encodes and decodes sparse matrices in one concrete format.
type SparseCodec interface {
	Encode(w io.Writer, m *mat.Sparse, opts *TextOptions) error
	Decode(r io.Reader, opts *TextOptions) (*mat.Sparse, error)
}

// ModelCodec encodes and decodes a serializable model wrapped in a named
// archive entry. The name given on decode must match the one used on encode.
type ModelCodec interface {
	Encode(w io.Writer, name string, model any) error
	Decode(r io.Reader, name string, model any) error
}

// ImageCodec encodes and decodes images in one concrete format.
type ImageCodec interface {
	Encode(w io.Writer, img image.Image) error
	Decode(r io.Reader) (image.Image, error)
}

// The dispatch table. Fixed at init; safe for concurrent use. Adding a
// format means adding one codec and one entry here.
var (
	denseCodecs = map[format.FileFormat]DenseCodec{
		format.CSV:        csvCodec{},
		format.RawASCII:   rawASCIICodec{},
		format.ArmaASCII:  armaASCIICodec{},
		format.PGM:        pgmCodec{},
		format.PPM:        ppmCodec{},
		format.RawBinary:  rawBinaryCodec{},
		format.ArmaBinary: armaBinaryCodec{},
		format.HDF5:       hdf5Codec{},
	}

	sparseCodecs = map[format.FileFormat]SparseCodec{
		format.CoordASCII: coordCodec{},
		format.ArmaBinary: spArmaBinaryCodec{},
	}

	modelCodecs = map[format.FileFormat]ModelCodec{
		format.JSON: jsonArchive{},
		format.XML:  xmlArchive{},
		format.BIN:  binArchive{},
	}

	imageCodecs = map[format.FileFormat]ImageCodec{
		format.PNG:  pngCodec{},
		format.JPEG: jpegCodec{},
		format.BMP:  bmpCodec{},
		format.TGA:  tgaCodec{},
	}
)

// Dense returns the codec for a dense matrix format. The options resolver
// guarantees only legal pairs reach the table, so a miss is an internal
// invariant violation and panics regardless of the caller's fatal flag.
func Dense(f format.FileFormat) DenseCodec {
	c, ok := denseCodecs[f]
	if !ok {
		panic(fmt.Sprintf("codec: no dense matrix codec for %s", f))
	}
	return c
}

// Sparse returns the codec for a sparse matrix format. A miss panics.
func Sparse(f format.FileFormat) SparseCodec {
	c, ok := sparseCodecs[f]
	if !ok {
		panic(fmt.Sprintf("codec: no sparse matrix codec for %s", f))
	}
	return c
}

// Model returns the codec for a model archive format. A miss panics.
func Model(f format.FileFormat) ModelCodec {
	c, ok := modelCodecs[f]
	if !ok {
		panic(fmt.Sprintf("codec: no model codec for %s", f))
	}
	return c
}

// Image returns the codec for an image format. A miss panics.
func Image(f format.FileFormat) ImageCodec {
	c, ok := imageCodecs[f]
	if !ok {
		panic(fmt.Sprintf("codec: no image codec for %s", f))
	}
	return c
}
