// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"github.com/mlio-dev/mlio/format"
)

// openRead opens filename for loading. Gzip-wrapped files (trailing .gz) are
// decompressed up front so the result is seekable for sniffing. The closer
// must be called on every exit path.
func openRead(filename string) (io.ReadSeeker, func() error, error) {
	_, gzipped := format.SplitGz(filename)

	//nolint:gosec // G304: the path is caller input by design.
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	if !gzipped {
		return file, file.Close, nil
	}

	zr, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("failed to open gzip stream: %w", err)
	}
	raw, err := io.ReadAll(zr)
	if cerr := zr.Close(); err == nil {
		err = cerr
	}
	if ferr := file.Close(); err == nil {
		err = ferr
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decompress: %w", err)
	}
	return bytes.NewReader(raw), func() error { return nil }, nil
}

// openWrite opens filename for saving, wrapping the stream with gzip when
// the filename carries a trailing .gz. The returned close function flushes
// and must be called to complete the write.
func openWrite(filename string) (io.Writer, func() error, error) {
	_, gzipped := format.SplitGz(filename)

	//nolint:gosec // G304: the path is caller input by design.
	file, err := os.Create(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file: %w", err)
	}
	if !gzipped {
		return file, file.Close, nil
	}

	zw := gzip.NewWriter(file)
	closer := func() error {
		err := zw.Close()
		if ferr := file.Close(); err == nil {
			err = ferr
		}
		return err
	}
	return zw, closer, nil
}
