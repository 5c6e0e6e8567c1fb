package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mlio-dev/mlio/mat"
)

// Armadillo text header tags. FN008 marks a float64 element type.
const armaASCIIHeader = "ARMA_MAT_TXT_FN008"

// rawASCIICodec reads and writes whitespace-separated numeric text with no
// header of any kind.
type rawASCIICodec struct{}

func (rawASCIICodec) Encode(w io.Writer, m *mat.Dense, _ *TextOptions) error {
	bw := bufio.NewWriter(w)
	if err := writeRows(bw, m); err != nil {
		return err
	}
	return bw.Flush()
}

func (rawASCIICodec) Decode(r io.Reader, _ *TextOptions) (*mat.Dense, error) {
	return readRows(bufio.NewScanner(r), -1)
}

// armaASCIICodec is the Armadillo-tagged text format: a magic line, a
// dimensions line, then the same row layout as raw ASCII.
type armaASCIICodec struct{}

func (armaASCIICodec) Encode(w io.Writer, m *mat.Dense, _ *TextOptions) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", armaASCIIHeader, m.Rows(), m.Cols()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if err := writeRows(bw, m); err != nil {
		return err
	}
	return bw.Flush()
}

func (armaASCIICodec) Decode(r io.Reader, _ *TextOptions) (*mat.Dense, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		return nil, fmt.Errorf("missing %s header: %w", armaASCIIHeader, scanErr(sc))
	}
	if !strings.HasPrefix(sc.Text(), "ARMA_MAT_TXT") {
		return nil, fmt.Errorf("corrupt header: expected %s, got %q", armaASCIIHeader, sc.Text())
	}
	if !sc.Scan() {
		return nil, fmt.Errorf("missing dimensions line: %w", scanErr(sc))
	}
	dims := strings.Fields(sc.Text())
	if len(dims) != 2 {
		return nil, fmt.Errorf("corrupt dimensions line %q", sc.Text())
	}
	rows, err1 := strconv.Atoi(dims[0])
	cols, err2 := strconv.Atoi(dims[1])
	if err1 != nil || err2 != nil || rows < 0 || cols < 0 {
		return nil, fmt.Errorf("corrupt dimensions line %q", sc.Text())
	}

	m, err := readRows(sc, cols)
	if err != nil {
		return nil, err
	}
	if m.Rows() != rows {
		return nil, fmt.Errorf("header promises %d rows, file has %d", rows, m.Rows())
	}
	return m, nil
}

// writeRows emits the matrix row-by-row, space separated, full precision.
func writeRows(w io.Writer, m *mat.Dense) error {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			sep := " "
			if j == 0 {
				sep = ""
			}
			if _, err := fmt.Fprintf(w, "%s%s", sep, strconv.FormatFloat(m.At(i, j), 'g', -1, 64)); err != nil {
				return fmt.Errorf("failed to write row %d: %w", i, err)
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	return nil
}

// readRows parses whitespace-separated rows into a matrix. wantCols < 0
// derives the width from the first row; every row must match it.
func readRows(sc *bufio.Scanner, wantCols int) (*mat.Dense, error) {
	var rows [][]float64
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if wantCols < 0 {
			wantCols = len(fields)
		}
		if len(fields) != wantCols {
			return nil, fmt.Errorf("line %d has %d fields, expected %d", line, len(fields), wantCols)
		}
		row := make([]float64, wantCols)
		for j, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w", line, j, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}

	if len(rows) == 0 {
		return mat.NewDense(0, 0), nil
	}
	m := mat.NewDense(len(rows), wantCols)
	for i, row := range rows {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}
	return m, nil
}

func scanErr(sc *bufio.Scanner) error {
	if err := sc.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}
