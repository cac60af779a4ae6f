// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/internal/dataset"
	"github.com/katalvlaran/lvnum/interp"
	"github.com/katalvlaran/lvnum/matrix"
)

func (a *app) interpCmd() *cobra.Command {
	var (
		at     []float64
		linear bool
	)
	cmd := &cobra.Command{
		Use:   "interp FILE",
		Short: "Interpolate the x/y samples at the --at points",
		Long: `Interpolate the x/y samples of FILE. By default the polynomial of degree n-1 through
all n samples is used and its coefficients are printed first; --linear uses the line
through the first two samples.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			xs, ys, err := doc.Samples()
			if err != nil {
				return err
			}
			out := make([]float64, len(at))
			if linear {
				if len(xs) > 2 {
					xs, ys = xs[:2], ys[:2]
				}
				for i, x := range at {
					if out[i], err = interp.Linear(xs, ys, x); err != nil {
						return err
					}
				}
			} else {
				c, err := interp.PolynomialCoefficients(xs, ys)
				if err != nil {
					return err
				}
				a.printFloats("coefficients", c)
				for i, x := range at {
					out[i] = interp.Eval(c, x)
				}
			}
			if len(at) > 0 {
				a.printFloats("y", out)
			}
			return nil
		},
	}
	cmd.Flags().Float64SliceVar(&at, "at", nil, "evaluation points")
	cmd.Flags().BoolVar(&linear, "linear", false, "linear interpolation through the first two samples")
	return cmd
}

func (a *app) randomCmd() *cobra.Command {
	var (
		rows, cols int
		seed       int64
		output     string
		withVector bool
	)
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Write a matrix document with uniform [0,1) entries",
		Long: `Write a matrix document with uniform [0,1) entries. --seed 0 draws the seed from the
operating system entropy pool. The format follows the --output extension; without
--output YAML is written to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			var src matrix.RandSource
			if seed == 0 {
				src = matrix.NewEntropySource()
			} else {
				src = matrix.NewSeededSource(seed)
			}
			m, err := matrix.NewZeroDense(rows, cols)
			if err != nil {
				return err
			}
			m.Random(src)

			doc := &dataset.Document{Matrix: make([][]float64, rows)}
			for i := range doc.Matrix {
				if doc.Matrix[i], err = m.Row(i); err != nil {
					return err
				}
			}
			if withVector {
				v, err := matrix.NewZeroVector(matrix.ColumnVector, rows)
				if err != nil {
					return err
				}
				v.Random(src)
				doc.Vector = v.Data()
			}

			if output == "" {
				return dataset.Encode(a.out, doc, dataset.YAML)
			}
			format, err := dataset.FormatOf(output)
			if err != nil {
				return err
			}
			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("random: %w", err)
			}
			if err = dataset.Encode(f, doc, format); err != nil {
				f.Close()
				return err
			}
			a.log.Info().Str("file", output).Int("rows", rows).Int("cols", cols).Msg("dataset written")
			return f.Close()
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 3, "number of rows")
	cmd.Flags().IntVar(&cols, "cols", 3, "number of columns")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for entropy")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.yaml, .yml or .toml)")
	cmd.Flags().BoolVar(&withVector, "vector", false, "also write a random right-hand side")
	return cmd
}
