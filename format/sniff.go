// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package format

import (
	"errors"
	"fmt"
	"io"
)

// ErrAmbiguous is returned when content sniffing cannot pick among the
// candidate formats.
var ErrAmbiguous = errors.New("ambiguous file content")

// Magic tokens of the Armadillo-tagged formats. Dense and sparse binary
// headers share a common "ARMA_" prefix but differ in the payload tag.
const (
	armaASCIIMagic     = "ARMA_MAT_TXT"
	armaBinaryMagic    = "ARMA_MAT_BIN"
	armaSpBinaryMagic  = "ARMA_SPM_BIN"
	sniffPrefixMaxSize = 16
)

// Sniff disambiguates among candidate formats by inspecting a bounded prefix
// of r. The stream position is restored before returning, so the chosen
// codec can re-read from the start. Sniffing happens only on load; callers
// must not invoke it with fewer than two candidates.
func Sniff(r io.ReadSeeker, candidates []FileFormat) (FileFormat, error) {
	pos, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return AutoDetect, fmt.Errorf("failed to record stream position: %w", err)
	}

	prefix := make([]byte, sniffPrefixMaxSize)
	n, err := io.ReadFull(r, prefix)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return AutoDetect, fmt.Errorf("failed to read sniff prefix: %w", err)
	}
	prefix = prefix[:n]

	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return AutoDetect, fmt.Errorf("failed to restore stream position: %w", err)
	}

	tagged, plain := AutoDetect, AutoDetect
	for _, cand := range candidates {
		switch cand {
		case ArmaASCII:
			if hasPrefix(prefix, armaASCIIMagic) {
				tagged = ArmaASCII
			}
		case ArmaBinary:
			if hasPrefix(prefix, armaBinaryMagic) || hasPrefix(prefix, armaSpBinaryMagic) {
				tagged = ArmaBinary
			}
		case RawASCII, RawBinary, CoordASCII:
			// Untagged formats match anything; they are the fallback
			// when no magic token is found.
			plain = cand
		}
	}

	if tagged != AutoDetect {
		return tagged, nil
	}
	if plain != AutoDetect {
		return plain, nil
	}
	return AutoDetect, fmt.Errorf("%w: no candidate matched (tried %s)",
		ErrAmbiguous, formatList(candidates))
}

func hasPrefix(b []byte, magic string) bool {
	return len(b) >= len(magic) && string(b[:len(magic)]) == magic
}

func formatList(formats []FileFormat) string {
	s := ""
	for i, f := range formats {
		if i > 0 {
			s += ", "
		}
		s += f.String()
	}
	return s
}
