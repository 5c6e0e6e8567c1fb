package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/urfave/cli/v3"

	"github.com/mlio-dev/mlio/data"
	"github.com/mlio-dev/mlio/format"
)

func convertCmd() *cli.Command {
	var (
		sparse    bool
		delimiter string
	)

	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a matrix file to another format, detected from the extensions",
		ArgsUsage: "<in> <out>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "sparse",
				Usage:       "treat the data as a sparse matrix",
				Destination: &sparse,
			},
			&cli.StringFlag{
				Name:        "delimiter",
				Usage:       "CSV field separator (single character)",
				Destination: &delimiter,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("expected <in> and <out> arguments")
			}
			in, out := cmd.Args().Get(0), cmd.Args().Get(1)

			opts := &data.MatrixOptions{}
			// Converting is orientation-neutral: skip the transpose on
			// both sides so the values land unchanged.
			opts.NoTranspose = true
			if delimiter != "" {
				runes := []rune(delimiter)
				if len(runes) != 1 {
					return fmt.Errorf("delimiter must be a single character")
				}
				opts.Delimiter = runes[0]
			}

			if sparse {
				m, ok := data.LoadSparse(in, opts)
				if !ok {
					return fmt.Errorf("failed to load %q", in)
				}
				if !data.SaveSparse(out, m, opts) {
					return fmt.Errorf("failed to save %q", out)
				}
				fmt.Printf("converted %s -> %s (%dx%d, nnz=%d)\n", in, out, m.Rows(), m.Cols(), m.NNZ())
				return nil
			}

			m, ok := data.LoadDense(in, opts)
			if !ok {
				return fmt.Errorf("failed to load %q", in)
			}
			if !data.SaveDense(out, m, opts) {
				return fmt.Errorf("failed to save %q", out)
			}
			fmt.Printf("converted %s -> %s (%dx%d)\n", in, out, m.Rows(), m.Cols())
			return nil
		},
	}
}

// openSeekable opens a file for sniffing, decompressing gzip-wrapped input
// so the result is seekable.
func openSeekable(filename string) (io.ReadSeeker, func(), error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	if _, gzipped := format.SplitGz(filename); !gzipped {
		return f, func() { _ = f.Close() }, nil
	}
	defer f.Close()
	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, nil, err
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, nil, err
	}
	return bytes.NewReader(raw), func() {}, nil
}
