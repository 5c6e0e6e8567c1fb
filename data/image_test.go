// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlio-dev/mlio/mat"
)

func quietImageOpts() *ImageOptions {
	return &ImageOptions{DataOptions: DataOptions{Logger: discard}}
}

// samplePixels builds a 4x3 RGB image in matrix form: one column, scanline
// order, channels interleaved.
func samplePixels(t *testing.T) (*mat.Dense, ImageInfo) {
	t.Helper()
	info := ImageInfo{Width: 4, Height: 3, Channels: 3}
	data := make([]float64, info.Elements())
	for k := range data {
		data[k] = float64((k * 7) % 256)
	}
	m, err := mat.NewDenseData(info.Elements(), 1, data)
	require.NoError(t, err)
	return m, info
}

func TestImageRoundTripPerFormat(t *testing.T) {
	// JPEG is lossy and excluded from exact comparison.
	for _, file := range []string{"img.png", "img.bmp", "img.tga"} {
		t.Run(file, func(t *testing.T) {
			m, info := samplePixels(t)
			path := filepath.Join(t.TempDir(), file)

			require.True(t, SaveImage(path, m, info, quietImageOpts()))
			got, gotInfo, ok := LoadImage(path, quietImageOpts())
			require.True(t, ok)
			assert.Equal(t, info, gotInfo)
			assert.True(t, m.Equal(got))
		})
	}
}

func TestImageJPEGGeometry(t *testing.T) {
	m, info := samplePixels(t)
	path := filepath.Join(t.TempDir(), "img.jpg")

	require.True(t, SaveImage(path, m, info, quietImageOpts()))
	got, gotInfo, ok := LoadImage(path, quietImageOpts())
	require.True(t, ok)
	assert.Equal(t, info, gotInfo)
	assert.Equal(t, info.Elements(), got.Rows())
}

func TestImageGrayscaleLoad(t *testing.T) {
	m, info := samplePixels(t)
	path := filepath.Join(t.TempDir(), "img.png")
	require.True(t, SaveImage(path, m, info, quietImageOpts()))

	opts := quietImageOpts()
	opts.Channels = 1
	got, gotInfo, ok := LoadImage(path, opts)
	require.True(t, ok)
	assert.Equal(t, 1, gotInfo.Channels)
	assert.Equal(t, info.Width*info.Height, got.Rows())
	assert.Equal(t, 1, got.Cols())
}

func TestImageRGBARoundTrip(t *testing.T) {
	info := ImageInfo{Width: 2, Height: 2, Channels: 4}
	data := []float64{
		10, 20, 30, 255, 40, 50, 60, 128,
		70, 80, 90, 0, 100, 110, 120, 200,
	}
	m, err := mat.NewDenseData(info.Elements(), 1, data)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "img.png")
	opts := quietImageOpts()
	opts.Channels = 4
	require.True(t, SaveImage(path, m, info, opts))

	got, gotInfo, ok := LoadImage(path, opts)
	require.True(t, ok)
	assert.Equal(t, info, gotInfo)
	assert.True(t, m.Equal(got))
}

func TestImageGeometryMismatch(t *testing.T) {
	m, info := samplePixels(t)
	info.Width++ // promises more pixels than the matrix holds
	assert.False(t, SaveImage(filepath.Join(t.TempDir(), "img.png"), m, info, quietImageOpts()))
}

func TestImageBadChannels(t *testing.T) {
	m, info := samplePixels(t)
	opts := quietImageOpts()
	opts.Channels = 2
	assert.False(t, SaveImage(filepath.Join(t.TempDir(), "img.png"), m, info, opts))
	_, _, ok := LoadImage(filepath.Join(t.TempDir(), "img.png"), opts)
	assert.False(t, ok)
}

func TestImageUnknownExtension(t *testing.T) {
	m, info := samplePixels(t)
	assert.False(t, SaveImage(filepath.Join(t.TempDir(), "img.csv"), m, info, quietImageOpts()))
}

func TestImageInfoElements(t *testing.T) {
	assert.Equal(t, 36, ImageInfo{Width: 4, Height: 3, Channels: 3}.Elements())
	assert.Equal(t, 0, ImageInfo{}.Elements())
}
