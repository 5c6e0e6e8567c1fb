// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"io"

	"github.com/mlio-dev/mlio/format"
)

// resolveSave decides the concrete format for a save. Saving cannot sniff a
// file that does not exist yet, so ambiguous extensions fall back to the
// category's documented default. Deterministic, no I/O.
func resolveSave(filename string, c format.Category, o *DataOptions) (format.Detection, error) {
	if o.Format != format.AutoDetect {
		if err := validateResolved(c, o.Format); err != nil {
			return format.Detection{}, err
		}
		return format.Detection{Format: o.Format, Confidence: format.ByOverride}, nil
	}

	candidates := format.Classify(filename, c)
	switch len(candidates) {
	case 0:
		return format.Detection{}, fmt.Errorf("%w: %q has no recognized extension for a %s",
			ErrUnknownExtension, filename, c)
	case 1:
		if err := validateResolved(c, candidates[0]); err != nil {
			return format.Detection{}, err
		}
		return format.Detection{Format: candidates[0], Confidence: format.ByExtension}, nil
	default:
		f, ok := format.SaveDefault(filename, c)
		if !ok {
			return format.Detection{}, fmt.Errorf("%w: %q", ErrNoSaveDefault, filename)
		}
		if err := validateResolved(c, f); err != nil {
			return format.Detection{}, err
		}
		return format.Detection{Format: f, Confidence: format.ByDefault}, nil
	}
}

// resolveLoad decides the concrete format for a load, sniffing r when the
// extension is ambiguous. r's position is restored after sniffing so the
// chosen codec reads from the start.
func resolveLoad(filename string, c format.Category, o *DataOptions, r io.ReadSeeker) (format.Detection, error) {
	if o.Format != format.AutoDetect {
		if err := validateResolved(c, o.Format); err != nil {
			return format.Detection{}, err
		}
		return format.Detection{Format: o.Format, Confidence: format.ByOverride}, nil
	}

	candidates := format.Classify(filename, c)
	switch len(candidates) {
	case 0:
		return format.Detection{}, fmt.Errorf("%w: %q has no recognized extension for a %s",
			ErrUnknownExtension, filename, c)
	case 1:
		if err := validateResolved(c, candidates[0]); err != nil {
			return format.Detection{}, err
		}
		return format.Detection{Format: candidates[0], Confidence: format.ByExtension}, nil
	default:
		f, err := format.Sniff(r, candidates)
		if err != nil {
			return format.Detection{}, err
		}
		if err := validateResolved(c, f); err != nil {
			return format.Detection{}, err
		}
		return format.Detection{Format: f, Confidence: format.ByContent}, nil
	}
}

// validateResolved rejects formats that are not terminal dispatch keys for
// the category. Sparse matrices get the dedicated dense-only diagnostic for
// formats that exist but cannot hold them.
func validateResolved(c format.Category, f format.FileFormat) error {
	if f == format.AutoDetect {
		return fmt.Errorf("%w: auto-detect is not a concrete format", ErrInvalidOptions)
	}
	if format.Legal(c, f) {
		return nil
	}
	if c == format.Sparse && format.Legal(format.Dense, f) {
		return fmt.Errorf("%w: %s", ErrSparseUnsupported, f)
	}
	return fmt.Errorf("%w: %s cannot be stored as %s", ErrInvalidOptions, c, f)
}
