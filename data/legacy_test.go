// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlio-dev/mlio/format"
)

// The positional entry points delegate to the options-based API, so these
// tests only pin the flag translation.

func silenceDefault(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestDensePositionalRoundTrip(t *testing.T) {
	silenceDefault(t)
	m := sampleMatrix(t)
	path := filepath.Join(t.TempDir(), "m.csv")

	require.True(t, SaveDenseAs(path, m, false, true, format.AutoDetect))
	got, ok := LoadDenseAs(path, false, true, format.AutoDetect)
	require.True(t, ok)
	assert.True(t, m.Equal(got))
}

func TestDensePositionalNoTranspose(t *testing.T) {
	silenceDefault(t)
	m := sampleMatrix(t)
	path := filepath.Join(t.TempDir(), "m.csv")

	// transpose=true on save, transpose=false on load: the on-disk
	// orientation comes back unchanged.
	require.True(t, SaveDenseAs(path, m, false, true, format.AutoDetect))
	got, ok := LoadDenseAs(path, false, false, format.AutoDetect)
	require.True(t, ok)
	assert.True(t, m.T().Equal(got))
}

func TestDensePositionalExplicitFormat(t *testing.T) {
	silenceDefault(t)
	m := sampleMatrix(t)
	path := filepath.Join(t.TempDir(), "m.dat")

	require.True(t, SaveDenseAs(path, m, false, true, format.ArmaASCII))
	got, ok := LoadDenseAs(path, false, true, format.ArmaASCII)
	require.True(t, ok)
	assert.True(t, m.Equal(got))
}

func TestDensePositionalFatalPanics(t *testing.T) {
	m := sampleMatrix(t)
	assert.Panics(t, func() {
		SaveDenseAs(filepath.Join(t.TempDir(), "m.nope"), m, true, true, format.AutoDetect)
	})
}

func TestSparsePositionalRoundTrip(t *testing.T) {
	silenceDefault(t)
	s := sampleSparse(t)
	path := filepath.Join(t.TempDir(), "s.bin")

	require.True(t, SaveSparseAs(path, s, false, true))
	got, ok := LoadSparseAs(path, false, true)
	require.True(t, ok)
	assert.True(t, s.Equal(got))
}

func TestModelPositionalRoundTrip(t *testing.T) {
	silenceDefault(t)
	in := regressor{Lambda: 1.5, Weights: []float64{2, 4}}
	path := filepath.Join(t.TempDir(), "m.bin")

	require.True(t, SaveModelAs(path, "reg", in, false, format.AutoDetect))

	var out regressor
	require.True(t, LoadModelAs(path, "reg", &out, false, format.AutoDetect))
	assert.Equal(t, in, out)

	// Wrong entry name still fails through the positional path.
	assert.False(t, LoadModelAs(path, "model", &out, false, format.AutoDetect))
}
