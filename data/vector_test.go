// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadColumnFromColumnFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.csv")
	require.NoError(t, os.WriteFile(path, []byte("1\n2\n3\n"), 0o644))

	v, ok := LoadColumn(path, quietMatrixOpts())
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, v)
}

func TestLoadColumnFromRowFile(t *testing.T) {
	// A single row is accepted and reoriented.
	path := filepath.Join(t.TempDir(), "v.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2,3\n"), 0o644))

	v, ok := LoadColumn(path, quietMatrixOpts())
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3}, v)
}

func TestLoadRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "v.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 5 6\n"), 0o644))

	v, ok := LoadRow(path, quietMatrixOpts())
	require.True(t, ok)
	assert.Equal(t, []float64{4, 5, 6}, v)
}

func TestLoadColumnRejectsMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,4\n"), 0o644))

	_, ok := LoadColumn(path, quietMatrixOpts())
	assert.False(t, ok)
}

func TestLoadColumnMatrixFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.csv")
	require.NoError(t, os.WriteFile(path, []byte("1,2\n3,4\n"), 0o644))

	opts := quietMatrixOpts()
	opts.Fatal = true
	defer func() {
		r := recover()
		require.NotNil(t, r)
		derr, isDataErr := r.(*Error)
		require.True(t, isDataErr)
		assert.ErrorIs(t, derr, ErrNotVector)
	}()
	LoadColumn(path, opts)
}

func TestLoadColumnMissingFile(t *testing.T) {
	_, ok := LoadColumn(filepath.Join(t.TempDir(), "absent.csv"), quietMatrixOpts())
	assert.False(t, ok)
}
