package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mlio-dev/mlio/format"
)

func inspectCmd() *cli.Command {
	var sparse bool

	return &cli.Command{
		Name:      "inspect",
		Usage:     "Show how a file would be detected",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "sparse",
				Usage:       "classify for the sparse matrix category",
				Destination: &sparse,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return fmt.Errorf("expected exactly one file argument")
			}
			filename := cmd.Args().First()

			category := format.Dense
			if sparse {
				category = format.Sparse
			}

			base, gzipped := format.SplitGz(filename)
			fmt.Printf("file:      %s\n", filename)
			fmt.Printf("category:  %s\n", category)
			fmt.Printf("extension: %s (gzip: %v)\n", format.Extension(base), gzipped)

			candidates := format.Classify(filename, category)
			if len(candidates) == 0 {
				fmt.Println("candidates: none (unknown extension)")
				return nil
			}
			fmt.Print("candidates:")
			for _, c := range candidates {
				fmt.Printf(" %s;", c)
			}
			fmt.Println()

			if len(candidates) > 1 {
				if _, err := os.Stat(filename); err == nil {
					f, closeF, err := openSeekable(filename)
					if err != nil {
						return err
					}
					defer closeF()
					resolved, err := format.Sniff(f, candidates)
					if err != nil {
						return err
					}
					fmt.Printf("sniffed:   %s\n", resolved)
				} else if def, ok := format.SaveDefault(filename, category); ok {
					fmt.Printf("save default: %s\n", def)
				}
			}
			return nil
		},
	}
}
