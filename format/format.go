// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package format defines the value categories and file formats handled by the
// mlio data layer, and the detection logic that maps filenames and file
// content onto them.
//
// The extension tables in this package are a stable contract with calling
// code: existing mappings never change meaning, new mappings are additive.
package format

// Category is the kind of in-memory value being persisted. It selects which
// codec family and which options are legal.
type Category int

// Value categories.
const (
	Dense Category = iota
	Sparse
	Model
	Image
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Dense:
		return "dense matrix"
	case Sparse:
		return "sparse matrix"
	case Model:
		return "model"
	case Image:
		return "image"
	default:
		return "unknown"
	}
}

// FileFormat identifies an on-disk encoding. AutoDetect is a pseudo-value
// meaning "infer from extension or content"; it must be resolved to a
// concrete format before any codec runs.
type FileFormat int

// Supported file formats.
const (
	AutoDetect FileFormat = iota

	// Dense matrix formats.
	CSV
	RawASCII
	ArmaASCII
	PGM
	PPM
	RawBinary
	ArmaBinary
	HDF5

	// Sparse matrix formats (RawBinary and ArmaBinary are shared with dense).
	CoordASCII

	// Model archive formats.
	JSON
	XML
	BIN

	// Image formats.
	PNG
	JPEG
	BMP
	TGA
)

// String returns the format name used in diagnostics.
func (f FileFormat) String() string {
	switch f {
	case AutoDetect:
		return "auto-detect"
	case CSV:
		return "CSV (csv_ascii)"
	case RawASCII:
		return "raw ASCII (raw_ascii)"
	case ArmaASCII:
		return "Armadillo ASCII (arma_ascii)"
	case PGM:
		return "PGM (pgm_binary)"
	case PPM:
		return "PPM (ppm_binary)"
	case RawBinary:
		return "raw binary (raw_binary)"
	case ArmaBinary:
		return "Armadillo binary (arma_binary)"
	case HDF5:
		return "HDF5 (hdf5_binary)"
	case CoordASCII:
		return "coordinate list (coord_ascii)"
	case JSON:
		return "JSON archive"
	case XML:
		return "XML archive"
	case BIN:
		return "binary archive"
	case PNG:
		return "PNG"
	case JPEG:
		return "JPEG"
	case BMP:
		return "BMP"
	case TGA:
		return "TGA"
	default:
		return "unknown"
	}
}

// legalFormats lists, per category, every format that may reach the codec
// dispatch table. AutoDetect is deliberately absent.
var legalFormats = map[Category][]FileFormat{
	Dense:  {CSV, RawASCII, ArmaASCII, PGM, PPM, RawBinary, ArmaBinary, HDF5},
	Sparse: {CoordASCII, ArmaBinary},
	Model:  {JSON, XML, BIN},
	Image:  {PNG, JPEG, BMP, TGA},
}

// Legal reports whether f is a valid terminal format for category c.
func Legal(c Category, f FileFormat) bool {
	for _, lf := range legalFormats[c] {
		if lf == f {
			return true
		}
	}
	return false
}

// Confidence records how a detection result was obtained.
type Confidence int

// Detection confidence markers.
const (
	ByExtension Confidence = iota // single extension candidate
	ByContent                     // content sniffing among several candidates
	ByDefault                     // category default for an ambiguous save
	ByOverride                    // explicit caller-supplied format
)

// String returns the confidence marker name.
func (c Confidence) String() string {
	switch c {
	case ByExtension:
		return "extension"
	case ByContent:
		return "content"
	case ByDefault:
		return "default"
	case ByOverride:
		return "override"
	default:
		return "unknown"
	}
}

// Detection is the result of classification or sniffing: a concrete format
// and how it was chosen. It never holds AutoDetect.
type Detection struct {
	Format     FileFormat
	Confidence Confidence
}
