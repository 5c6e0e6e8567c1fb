package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mlio-dev/mlio/mat"
)

// coordCodec is the sparse coordinate-list text format: one "row col value"
// triple per line. Decoding also accepts a delimited dense grid and converts
// it, keeping the original behavior for sparse CSV input: a file whose every
// row holds exactly three fields, the first two integral, is taken as a
// coordinate list; anything else is a grid.
type coordCodec struct{}

func (coordCodec) Encode(w io.Writer, m *mat.Sparse, _ *TextOptions) error {
	bw := bufio.NewWriter(w)
	var werr error
	m.Each(func(i, j int, v float64) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(bw, "%d %d %s\n", i, j, strconv.FormatFloat(v, 'g', -1, 64))
	})
	if werr != nil {
		return fmt.Errorf("failed to write entry: %w", werr)
	}
	return bw.Flush()
}

func (coordCodec) Decode(r io.Reader, opts *TextOptions) (*mat.Sparse, error) {
	sc := bufio.NewScanner(r)
	var records [][]string
	line := 0
	for sc.Scan() {
		line++
		fields := splitSparseLine(sc.Text(), opts.delimiter())
		if len(fields) == 0 {
			continue
		}
		records = append(records, fields)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read failed: %w", err)
	}
	if len(records) == 0 {
		return mat.NewSparse(0, 0), nil
	}

	if isCoordinateList(records) {
		return decodeCoordinates(records)
	}
	return decodeGrid(records)
}

// splitSparseLine tolerates both delimited and whitespace-separated input.
func splitSparseLine(line string, delim rune) []string {
	if strings.ContainsRune(line, delim) {
		parts := strings.Split(line, string(delim))
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return strings.Fields(line)
}

func isCoordinateList(records [][]string) bool {
	for _, rec := range records {
		if len(rec) != 3 {
			return false
		}
		if _, err := strconv.Atoi(rec[0]); err != nil {
			return false
		}
		if _, err := strconv.Atoi(rec[1]); err != nil {
			return false
		}
	}
	return true
}

func decodeCoordinates(records [][]string) (*mat.Sparse, error) {
	ri := make([]int, len(records))
	ci := make([]int, len(records))
	vals := make([]float64, len(records))
	rows, cols := 0, 0
	for k, rec := range records {
		i, _ := strconv.Atoi(rec[0])
		j, _ := strconv.Atoi(rec[1])
		v, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", k, err)
		}
		if i < 0 || j < 0 {
			return nil, fmt.Errorf("entry %d: negative coordinate (%d,%d)", k, i, j)
		}
		ri[k], ci[k], vals[k] = i, j, v
		if i >= rows {
			rows = i + 1
		}
		if j >= cols {
			cols = j + 1
		}
	}
	return mat.NewSparseCOO(rows, cols, ri, ci, vals)
}

func decodeGrid(records [][]string) (*mat.Sparse, error) {
	cols := len(records[0])
	var ri, ci []int
	var vals []float64
	for i, rec := range records {
		if len(rec) != cols {
			return nil, fmt.Errorf("line %d has %d fields, expected %d", i+1, len(rec), cols)
		}
		for j, field := range rec {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d field %d: %w", i+1, j, err)
			}
			if v != 0 {
				ri = append(ri, i)
				ci = append(ci, j)
				vals = append(vals, v)
			}
		}
	}
	return mat.NewSparseCOO(len(records), cols, ri, ci, vals)
}
