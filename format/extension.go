// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package format

import (
	"path/filepath"
	"strings"
)

// extension tables, keyed by lowercase extension without the dot. An
// extension mapping to more than one format is ambiguous and needs sniffing
// (load) or the category default (save).
var (
	denseExtensions = map[string][]FileFormat{
		"csv":  {CSV},
		"txt":  {RawASCII, ArmaASCII},
		"tsv":  {RawASCII},
		"pgm":  {PGM},
		"ppm":  {PPM},
		"bin":  {RawBinary, ArmaBinary},
		"h5":   {HDF5},
		"hdf5": {HDF5},
		"hdf":  {HDF5},
		"he5":  {HDF5},
	}

	sparseExtensions = map[string][]FileFormat{
		"csv": {CoordASCII},
		"txt": {CoordASCII},
		"tsv": {CoordASCII},
		"bin": {RawBinary, ArmaBinary},
	}

	modelExtensions = map[string][]FileFormat{
		"json": {JSON},
		"xml":  {XML},
		"bin":  {BIN},
	}

	imageExtensions = map[string][]FileFormat{
		"png":  {PNG},
		"jpg":  {JPEG},
		"jpeg": {JPEG},
		"bmp":  {BMP},
		"tga":  {TGA},
	}

	extensionTables = map[Category]map[string][]FileFormat{
		Dense:  denseExtensions,
		Sparse: sparseExtensions,
		Model:  modelExtensions,
		Image:  imageExtensions,
	}

	// saveDefaults picks the on-save format for extensions that are
	// ambiguous at load time. Saving cannot sniff a file that does not
	// exist yet.
	saveDefaults = map[Category]map[string]FileFormat{
		Dense:  {"txt": RawASCII, "bin": ArmaBinary},
		Sparse: {"bin": ArmaBinary},
	}
)

// SplitGz strips a trailing ".gz" from filename. It returns the base name
// used for classification and whether the file is gzip-wrapped.
func SplitGz(filename string) (string, bool) {
	if base, ok := strings.CutSuffix(filename, ".gz"); ok && base != "" {
		return base, true
	}
	return filename, false
}

// Extension returns the lowercase extension of filename's base name, without
// the dot and with any trailing ".gz" already stripped. An empty string means
// the name has no extension; dotfiles count as extensionless.
func Extension(filename string) string {
	base, _ := SplitGz(filepath.Base(filename))
	dot := strings.LastIndexByte(base, '.')
	if dot <= 0 || dot == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[dot+1:])
}

// Classify maps a filename's extension to the candidate formats for the
// given category. An empty result means the extension is not recognized for
// that category; this is a detection failure, not a codec failure. No file
// I/O occurs here.
func Classify(filename string, c Category) []FileFormat {
	candidates := extensionTables[c][Extension(filename)]
	out := make([]FileFormat, len(candidates))
	copy(out, candidates)
	return out
}

// SaveDefault returns the format to use when saving with an extension whose
// classification is ambiguous. ok is false when no safe default exists.
func SaveDefault(filename string, c Category) (FileFormat, bool) {
	f, ok := saveDefaults[c][Extension(filename)]
	return f, ok
}
