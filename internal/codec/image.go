package codec

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
)

// jpegQuality matches the common default of image tooling; JPEG round trips
// are lossy by nature.
const jpegQuality = 90

type pngCodec struct{}

func (pngCodec) Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("PNG encode failed: %w", err)
	}
	return nil
}

func (pngCodec) Decode(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("PNG decode failed: %w", err)
	}
	return img, nil
}

type jpegCodec struct{}

func (jpegCodec) Encode(w io.Writer, img image.Image) error {
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return fmt.Errorf("JPEG encode failed: %w", err)
	}
	return nil
}

func (jpegCodec) Decode(r io.Reader) (image.Image, error) {
	img, err := jpeg.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("JPEG decode failed: %w", err)
	}
	return img, nil
}

type bmpCodec struct{}

func (bmpCodec) Encode(w io.Writer, img image.Image) error {
	if err := bmp.Encode(w, img); err != nil {
		return fmt.Errorf("BMP encode failed: %w", err)
	}
	return nil
}

func (bmpCodec) Decode(r io.Reader) (image.Image, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("BMP decode failed: %w", err)
	}
	return img, nil
}

type tgaCodec struct{}

func (tgaCodec) Encode(w io.Writer, img image.Image) error {
	if err := tga.Encode(w, img); err != nil {
		return fmt.Errorf("TGA encode failed: %w", err)
	}
	return nil
}

func (tgaCodec) Decode(r io.Reader) (image.Image, error) {
	img, err := tga.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("TGA decode failed: %w", err)
	}
	return img, nil
}
