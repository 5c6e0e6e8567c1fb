package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/mlio-dev/mlio/mat"
)

// csvCodec reads and writes delimited text. The delimiter defaults to a
// comma; the resolver substitutes semicolons or tabs when asked to.
type csvCodec struct{}

func (csvCodec) Encode(w io.Writer, m *mat.Dense, opts *TextOptions) error {
	cw := csv.NewWriter(w)
	cw.Comma = opts.delimiter()

	if opts != nil && opts.HasHeaders && len(opts.Headers) > 0 {
		if len(opts.Headers) != m.Cols() {
			return fmt.Errorf("%d header fields for %d columns", len(opts.Headers), m.Cols())
		}
		if err := cw.Write(opts.Headers); err != nil {
			return fmt.Errorf("failed to write header row: %w", err)
		}
	}

	record := make([]string, m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			record[j] = strconv.FormatFloat(m.At(i, j), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func (csvCodec) Decode(r io.Reader, opts *TextOptions) (*mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.Comma = opts.delimiter()
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		// csv.Reader already rejects inconsistent row widths.
		return nil, fmt.Errorf("malformed CSV: %w", err)
	}
	if opts != nil && opts.HasHeaders {
		if len(records) == 0 {
			return nil, fmt.Errorf("header row expected but file is empty")
		}
		opts.Headers = records[0]
		records = records[1:]
	}
	if len(records) == 0 {
		return mat.NewDense(0, 0), nil
	}

	rows, cols := len(records), len(records[0])
	m := mat.NewDense(rows, cols)
	for i, record := range records {
		for j, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d field %d: %w", i, j, err)
			}
			m.Set(i, j, v)
		}
	}
	return m, nil
}
