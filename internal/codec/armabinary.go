package codec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mlio-dev/mlio/mat"
)

// Armadillo binary header tags. FN008 marks a float64 element type.
const (
	armaBinaryHeader   = "ARMA_MAT_BIN_FN008"
	armaSpBinaryHeader = "ARMA_SPM_BIN_FN008"
)

// armaBinaryCodec is the Armadillo dense binary format: a magic line, a
// dimensions line, then the element payload in column-major order,
// little-endian float64.
type armaBinaryCodec struct{}

func (armaBinaryCodec) Encode(w io.Writer, m *mat.Dense, _ *TextOptions) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", armaBinaryHeader, m.Rows(), m.Cols()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, m.Data()); err != nil {
		return fmt.Errorf("failed to write elements: %w", err)
	}
	return bw.Flush()
}

func (armaBinaryCodec) Decode(r io.Reader, _ *TextOptions) (*mat.Dense, error) {
	br := bufio.NewReader(r)
	if err := expectHeaderLine(br, "ARMA_MAT_BIN"); err != nil {
		return nil, err
	}
	dims, err := headerInts(br, 2)
	if err != nil {
		return nil, err
	}
	rows, cols := dims[0], dims[1]
	count, ok := mulCheck(rows, cols)
	if !ok {
		return nil, fmt.Errorf("corrupt dimensions %dx%d: element count overflows", rows, cols)
	}

	data, err := readSlice[float64](br, count)
	if err != nil {
		return nil, fmt.Errorf("truncated element payload: %w", err)
	}
	return mat.NewDenseData(rows, cols, data)
}

// spArmaBinaryCodec is the Armadillo sparse binary format: a magic line, a
// "rows cols nnz" line, then the CSC payload (values, row indices, column
// pointers), little-endian.
type spArmaBinaryCodec struct{}

func (spArmaBinaryCodec) Encode(w io.Writer, m *mat.Sparse, _ *TextOptions) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d %d\n", armaSpBinaryHeader, m.Rows(), m.Cols(), m.NNZ()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	values := make([]float64, 0, m.NNZ())
	rowIdx := make([]uint64, 0, m.NNZ())
	counts := make([]uint64, m.Cols()+1)
	m.Each(func(i, j int, v float64) {
		values = append(values, v)
		rowIdx = append(rowIdx, uint64(i))
		counts[j+1]++
	})
	for j := 1; j <= m.Cols(); j++ {
		counts[j] += counts[j-1]
	}

	for _, payload := range []any{values, rowIdx, counts} {
		if err := binary.Write(bw, binary.LittleEndian, payload); err != nil {
			return fmt.Errorf("failed to write payload: %w", err)
		}
	}
	return bw.Flush()
}

func (spArmaBinaryCodec) Decode(r io.Reader, _ *TextOptions) (*mat.Sparse, error) {
	br := bufio.NewReader(r)
	if err := expectHeaderLine(br, "ARMA_SPM_BIN"); err != nil {
		return nil, err
	}
	dims, err := headerInts(br, 3)
	if err != nil {
		return nil, err
	}
	rows, cols, nnz := dims[0], dims[1], dims[2]
	if n, ok := mulCheck(rows, cols); !ok || nnz > n {
		return nil, fmt.Errorf("corrupt header: %d entries cannot fit a %dx%d matrix", nnz, rows, cols)
	}

	values, err := readSlice[float64](br, nnz)
	if err != nil {
		return nil, fmt.Errorf("truncated sparse payload: %w", err)
	}
	rowIdx, err := readSlice[uint64](br, nnz)
	if err != nil {
		return nil, fmt.Errorf("truncated sparse payload: %w", err)
	}
	colPtr, err := readSlice[uint64](br, cols+1)
	if err != nil {
		return nil, fmt.Errorf("truncated sparse payload: %w", err)
	}

	ri := make([]int, nnz)
	ci := make([]int, nnz)
	for j := 0; j < cols; j++ {
		if colPtr[j] > colPtr[j+1] || colPtr[j+1] > uint64(nnz) {
			return nil, fmt.Errorf("corrupt column pointers at column %d", j)
		}
		for k := colPtr[j]; k < colPtr[j+1]; k++ {
			ri[k] = int(rowIdx[k])
			ci[k] = j
		}
	}
	return mat.NewSparseCOO(rows, cols, ri, ci, values)
}

// expectHeaderLine consumes one line and verifies the magic prefix.
func expectHeaderLine(br *bufio.Reader, magic string) error {
	line, err := br.ReadString('\n')
	if err != nil {
		return fmt.Errorf("missing %s header: %w", magic, err)
	}
	if !strings.HasPrefix(line, magic) {
		return fmt.Errorf("corrupt header: expected %s, got %q", magic, strings.TrimSpace(line))
	}
	return nil
}

// mulCheck multiplies two non-negative counts, reporting overflow.
func mulCheck(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	n := a * b
	if n < 0 || n/a != b {
		return 0, false
	}
	return n, true
}

// readSlice decodes n little-endian values without trusting n for the
// allocation: the result grows chunk by chunk, so a corrupt count cannot
// demand more memory than the stream actually holds.
func readSlice[T float64 | uint64 | byte](r io.Reader, n int) ([]T, error) {
	const chunk = 1 << 16
	if n < 0 {
		return nil, fmt.Errorf("invalid element count %d", n)
	}
	out := make([]T, 0, min(n, chunk))
	for len(out) < n {
		buf := make([]T, min(n-len(out), chunk))
		if err := binary.Read(r, binary.LittleEndian, buf); err != nil {
			return nil, err
		}
		out = append(out, buf...)
	}
	return out, nil
}

// headerInts consumes one line and parses exactly n non-negative integers.
func headerInts(br *bufio.Reader, n int) ([]int, error) {
	line, err := br.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("missing dimensions line: %w", err)
	}
	fields := strings.Fields(line)
	if len(fields) != n {
		return nil, fmt.Errorf("corrupt dimensions line %q", strings.TrimSpace(line))
	}
	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("corrupt dimensions line %q", strings.TrimSpace(line))
		}
		out[i] = v
	}
	return out, nil
}
