// Copyright 2026 The mlio Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/mlio-dev/mlio/format"
	"github.com/mlio-dev/mlio/internal/codec"
	"github.com/mlio-dev/mlio/mat"
)

// ImageInfo describes the pixel geometry of an image held in matrix form.
type ImageInfo struct {
	Width    int
	Height   int
	Channels int // 1 (grayscale), 3 (RGB), or 4 (RGBA)
}

// Elements returns the matrix length an image of this geometry occupies.
func (info ImageInfo) Elements() int {
	return info.Width * info.Height * info.Channels
}

// SaveImage encodes the image held in m to filename. The matrix must be a
// single column of Width*Height*Channels values in [0, 255], scanline order
// with interleaved channels. The transpose flag does not apply to images.
func SaveImage(filename string, m *mat.Dense, info ImageInfo, opts *ImageOptions) bool {
	o, err := imageOptions(opts)
	if err != nil {
		return report("save", filename, format.Image, format.AutoDetect, err, &o.DataOptions)
	}

	det, err := resolveSave(filename, format.Image, &o.DataOptions)
	if err != nil {
		return report("save", filename, format.Image, format.AutoDetect, err, &o.DataOptions)
	}

	err = func() error {
		img, err := matrixToImage(m, info)
		if err != nil {
			return err
		}
		w, closeW, err := openWrite(filename)
		if err != nil {
			return err
		}
		if err := codec.Image(det.Format).Encode(w, img); err != nil {
			_ = closeW()
			return err
		}
		return closeW()
	}()
	return report("save", filename, format.Image, det.Format, err, &o.DataOptions)
}

// LoadImage decodes filename into a single-column matrix of pixel values in
// [0, 255], scanline order with interleaved channels. opts.Channels selects
// the depth the pixels are converted to (3 by default); the returned
// ImageInfo records the resulting geometry.
func LoadImage(filename string, opts *ImageOptions) (*mat.Dense, ImageInfo, bool) {
	o, err := imageOptions(opts)
	if err != nil {
		report("load", filename, format.Image, format.AutoDetect, err, &o.DataOptions)
		return nil, ImageInfo{}, false
	}

	var det format.Detection
	var info ImageInfo
	m, err := func() (*mat.Dense, error) {
		r, closeR, err := openRead(filename)
		if err != nil {
			return nil, err
		}
		defer func() { _ = closeR() }()

		det, err = resolveLoad(filename, format.Image, &o.DataOptions, r)
		if err != nil {
			return nil, err
		}
		img, err := codec.Image(det.Format).Decode(r)
		if err != nil {
			return nil, err
		}
		var m *mat.Dense
		m, info = imageToMatrix(img, o.channels())
		return m, nil
	}()

	if !report("load", filename, format.Image, det.Format, err, &o.DataOptions) {
		return nil, ImageInfo{}, false
	}
	o.logger().Info("loaded image",
		"file", filename,
		"format", det.Format.String(),
		"width", info.Width,
		"height", info.Height,
		"channels", info.Channels)
	return m, info, true
}

// imageToMatrix flattens img into a single column: scanlines top to bottom,
// pixels left to right, channels interleaved.
func imageToMatrix(img image.Image, channels int) (*mat.Dense, ImageInfo) {
	bounds := img.Bounds()
	info := ImageInfo{Width: bounds.Dx(), Height: bounds.Dy(), Channels: channels}
	data := make([]float64, 0, info.Elements())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			switch channels {
			case 1:
				g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
				data = append(data, float64(g.Y))
			case 3:
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				data = append(data, float64(c.R), float64(c.G), float64(c.B))
			case 4:
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				data = append(data, float64(c.R), float64(c.G), float64(c.B), float64(c.A))
			}
		}
	}
	m, err := mat.NewDenseData(info.Elements(), 1, data)
	if err != nil {
		// Geometry came from the decoded image; a mismatch is impossible.
		panic(err)
	}
	return m, info
}

// matrixToImage rebuilds an image from its single-column matrix form.
func matrixToImage(m *mat.Dense, info ImageInfo) (image.Image, error) {
	switch info.Channels {
	case 1, 3, 4:
	default:
		return nil, fmt.Errorf("%w: %d channels (want 1, 3, or 4)", ErrInvalidOptions, info.Channels)
	}
	if m.Cols() != 1 {
		return nil, fmt.Errorf("matrix holds %d columns; exactly one image column expected", m.Cols())
	}
	if m.Rows() != info.Elements() {
		return nil, fmt.Errorf("matrix holds %d values; %dx%dx%d image needs %d",
			m.Rows(), info.Width, info.Height, info.Channels, info.Elements())
	}

	data := m.Data()
	at := func(k int) uint8 { return clampPixel(data[k]) }

	if info.Channels == 1 {
		img := image.NewGray(image.Rect(0, 0, info.Width, info.Height))
		for y := 0; y < info.Height; y++ {
			for x := 0; x < info.Width; x++ {
				img.SetGray(x, y, color.Gray{Y: at(y*info.Width + x)})
			}
		}
		return img, nil
	}

	img := image.NewNRGBA(image.Rect(0, 0, info.Width, info.Height))
	for y := 0; y < info.Height; y++ {
		for x := 0; x < info.Width; x++ {
			k := (y*info.Width + x) * info.Channels
			c := color.NRGBA{R: at(k), G: at(k + 1), B: at(k + 2), A: 255}
			if info.Channels == 4 {
				c.A = at(k + 3)
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}

func clampPixel(v float64) uint8 {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
