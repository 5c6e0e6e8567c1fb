package codec

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/mlio-dev/mlio/mat"
)

// rawBinaryCodec is a bare little-endian float64 stream with no header. The
// format carries no dimensions, so a decoded matrix is a single column; the
// caller is warned upstream that the detection is a guess.
type rawBinaryCodec struct{}

func (rawBinaryCodec) Encode(w io.Writer, m *mat.Dense, _ *TextOptions) error {
	if err := binary.Write(w, binary.LittleEndian, m.Data()); err != nil {
		return fmt.Errorf("failed to write elements: %w", err)
	}
	return nil
}

func (rawBinaryCodec) Decode(r io.Reader, _ *TextOptions) (*mat.Dense, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}
	if len(raw)%8 != 0 {
		return nil, fmt.Errorf("payload size %d is not a multiple of 8", len(raw))
	}
	data := make([]float64, len(raw)/8)
	for i := range data {
		data[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	return mat.NewDenseData(len(data), 1, data)
}
