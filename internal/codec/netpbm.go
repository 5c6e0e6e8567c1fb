package codec

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/mlio-dev/mlio/mat"
)

// pgmCodec is binary PGM (P5): the matrix is a grayscale pixel grid with
// width = cols and height = rows. Values are clamped to [0, 255] on encode.
type pgmCodec struct{}

func (pgmCodec) Encode(w io.Writer, m *mat.Dense, _ *TextOptions) error {
	return encodeNetpbm(w, m, "P5", 1)
}

func (pgmCodec) Decode(r io.Reader, _ *TextOptions) (*mat.Dense, error) {
	return decodeNetpbm(r, "P5", 1)
}

// ppmCodec is binary PPM (P6). Matrices carry one value per pixel, so the
// gray value is replicated across the three channels on encode and the red
// channel is taken on decode.
type ppmCodec struct{}

func (ppmCodec) Encode(w io.Writer, m *mat.Dense, _ *TextOptions) error {
	return encodeNetpbm(w, m, "P6", 3)
}

func (ppmCodec) Decode(r io.Reader, _ *TextOptions) (*mat.Dense, error) {
	return decodeNetpbm(r, "P6", 3)
}

func encodeNetpbm(w io.Writer, m *mat.Dense, magic string, channels int) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n255\n", magic, m.Cols(), m.Rows()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	pixel := make([]byte, channels)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			b := clampByte(m.At(i, j))
			for c := range pixel {
				pixel[c] = b
			}
			if _, err := bw.Write(pixel); err != nil {
				return fmt.Errorf("failed to write pixel (%d,%d): %w", i, j, err)
			}
		}
	}
	return bw.Flush()
}

func decodeNetpbm(r io.Reader, magic string, channels int) (*mat.Dense, error) {
	br := bufio.NewReader(r)
	gotMagic, err := netpbmToken(br)
	if err != nil {
		return nil, err
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("corrupt header: expected %s, got %q", magic, gotMagic)
	}
	var dims [3]int // width, height, maxval
	for i := range dims {
		tok, err := netpbmToken(br)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(tok, "%d", &dims[i]); err != nil || dims[i] < 0 {
			return nil, fmt.Errorf("corrupt header token %q", tok)
		}
	}
	width, height, maxval := dims[0], dims[1], dims[2]
	if maxval > 255 {
		return nil, fmt.Errorf("unsupported maxval %d (only 8-bit supported)", maxval)
	}

	count, ok := mulCheck(width, height)
	if ok {
		count, ok = mulCheck(count, channels)
	}
	if !ok {
		return nil, fmt.Errorf("corrupt header: %dx%d pixel count overflows", width, height)
	}
	payload, err := readSlice[byte](br, count)
	if err != nil {
		return nil, fmt.Errorf("truncated pixel payload: %w", err)
	}
	m := mat.NewDense(height, width)
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			m.Set(i, j, float64(payload[(i*width+j)*channels]))
		}
	}
	return m, nil
}

// netpbmToken reads the next whitespace-delimited header token, skipping
// '#' comment lines.
func netpbmToken(br *bufio.Reader) (string, error) {
	tok := make([]byte, 0, 8)
	for {
		b, err := br.ReadByte()
		if err != nil {
			if len(tok) > 0 {
				return string(tok), nil
			}
			return "", fmt.Errorf("truncated header: %w", err)
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("truncated header comment: %w", err)
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func clampByte(v float64) byte {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	default:
		return byte(math.Round(v))
	}
}
