// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/linalg"
	"github.com/katalvlaran/lvnum/matrix"
)

// isComplex reports whether a command should take the complex path: either --complex
// was given or the document carries an imaginary part.
func isComplex(forced, hasImag bool) bool { return forced || hasImag }

func (a *app) inverseCmd() *cobra.Command {
	var complexMode bool
	cmd := &cobra.Command{
		Use:   "inverse FILE",
		Short: "Invert a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			if isComplex(complexMode, doc.IsComplex()) {
				m, err := doc.ComplexDense()
				if err != nil {
					return err
				}
				inv, err := a.engine.ComplexInverse(m)
				if err != nil {
					return err
				}
				a.printComplexDense("inverse", inv)
				return nil
			}
			m, err := doc.Dense()
			if err != nil {
				return err
			}
			inv, err := a.engine.Inverse(m)
			if err != nil {
				return err
			}
			a.printDense("inverse", inv)
			return nil
		},
	}
	cmd.Flags().BoolVar(&complexMode, "complex", false, "treat the matrix as complex")
	return cmd
}

func (a *app) pinvCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pinv FILE",
		Short: "Moore-Penrose pseudoinverse of a real matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			if doc.IsComplex() {
				m, err := doc.ComplexDense()
				if err != nil {
					return err
				}
				_, err = a.engine.ComplexPseudoinverse(m)
				return err
			}
			m, err := doc.Dense()
			if err != nil {
				return err
			}
			p, err := a.engine.Pseudoinverse(m)
			if err != nil {
				return err
			}
			a.printDense("pseudoinverse", p)
			return nil
		},
	}
}

func (a *app) solveCmd() *cobra.Command {
	var complexMode, overdetermined bool
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve M*x = b",
		Long: `Solve M*x = b for a square M, or in the least-squares sense for a tall M of
full column rank with --overdetermined.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			if isComplex(complexMode, doc.IsComplex()) {
				if overdetermined {
					return fmt.Errorf("solve: --overdetermined: %w", linalg.ErrNotSupported)
				}
				m, err := doc.ComplexDense()
				if err != nil {
					return err
				}
				b, err := doc.ComplexColumn()
				if err != nil {
					return err
				}
				x, err := a.engine.ComplexLinearSolve(m, b)
				if err != nil {
					return err
				}
				a.printComplexes("x", x.RawData())
				return nil
			}
			m, err := doc.Dense()
			if err != nil {
				return err
			}
			b, err := doc.Column()
			if err != nil {
				return err
			}
			var x *matrix.Vector
			if overdetermined {
				x, err = a.engine.OverdeterminedSolve(m, b)
			} else {
				x, err = a.engine.LinearSolve(m, b)
			}
			if err != nil {
				return err
			}
			a.printFloats("x", x.RawData())
			return nil
		},
	}
	cmd.Flags().BoolVar(&complexMode, "complex", false, "treat the system as complex")
	cmd.Flags().BoolVar(&overdetermined, "overdetermined", false, "tall full-rank system, QR least squares")
	return cmd
}

func (a *app) lstsqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lstsq FILE",
		Short: "Minimum-norm least squares for any shape and rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			m, err := doc.Dense()
			if err != nil {
				return err
			}
			b, err := doc.Column()
			if err != nil {
				return err
			}
			x, rank, err := a.engine.LeastSquaresRank(m, b)
			if err != nil {
				return err
			}
			a.printFloats("x", x.RawData())
			fmt.Fprintf(a.out, "rank: %d\n", rank)
			return nil
		},
	}
}

// Curve models accepted by fit.
const (
	modelExponential = "exp"
	modelPower       = "power"
)

func (a *app) fitCmd() *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "fit FILE",
		Short: "Fit y = a*exp(b*x) or y = a*x^b to the x/y samples",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			xs, ys, err := doc.Samples()
			if err != nil {
				return err
			}
			design, err := matrix.NewZeroDense(len(xs), 2)
			if err != nil {
				return err
			}
			data := design.RawData()
			for i, x := range xs {
				data[2*i], data[2*i+1] = x, 1
			}
			b, err := matrix.NewVector(matrix.ColumnVector, ys)
			if err != nil {
				return err
			}

			var coef *matrix.Vector
			switch model {
			case modelExponential:
				coef, err = a.engine.ExponentialFit(design, b)
			case modelPower:
				coef, err = a.engine.PowerFit(design, b)
			default:
				return fmt.Errorf("fit: unknown model %q, want %q or %q", model, modelExponential, modelPower)
			}
			if err != nil {
				return err
			}
			c := coef.RawData()
			a.printScalar("scale", c[0])
			a.printScalar("exponent", c[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", modelExponential, "curve model: exp or power")
	return cmd
}

func (a *app) eigCmd() *cobra.Command {
	var complexMode, spectrum bool
	cmd := &cobra.Command{
		Use:   "eig FILE",
		Short: "Eigenvalues of a square matrix",
		Long: `Eigenvalues of a square matrix. For a real matrix only the real parts are printed
unless --spectrum is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			if isComplex(complexMode, doc.IsComplex()) {
				m, err := doc.ComplexDense()
				if err != nil {
					return err
				}
				w, err := a.engine.ComplexEigenValues(m)
				if err != nil {
					return err
				}
				a.printComplexes("eigenvalues", w.RawData())
				return nil
			}
			m, err := doc.Dense()
			if err != nil {
				return err
			}
			if spectrum {
				w, err := a.engine.EigenSpectrum(m)
				if err != nil {
					return err
				}
				a.printComplexes("eigenvalues", w.RawData())
				return nil
			}
			w, err := a.engine.EigenValues(m)
			if err != nil {
				return err
			}
			a.printFloats("eigenvalues", w.RawData())
			return nil
		},
	}
	cmd.Flags().BoolVar(&complexMode, "complex", false, "treat the matrix as complex")
	cmd.Flags().BoolVar(&spectrum, "spectrum", false, "print full complex eigenvalues of a real matrix")
	return cmd
}

func (a *app) svdCmd() *cobra.Command {
	var complexMode bool
	cmd := &cobra.Command{
		Use:   "svd FILE",
		Short: "Singular values, largest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			var s *matrix.Vector
			if isComplex(complexMode, doc.IsComplex()) {
				m, err := doc.ComplexDense()
				if err != nil {
					return err
				}
				if s, err = a.engine.ComplexSVD(m); err != nil {
					return err
				}
			} else {
				m, err := doc.Dense()
				if err != nil {
					return err
				}
				if s, err = a.engine.SVD(m); err != nil {
					return err
				}
			}
			a.printFloats("singular values", s.RawData())
			return nil
		},
	}
	cmd.Flags().BoolVar(&complexMode, "complex", false, "treat the matrix as complex")
	return cmd
}

func (a *app) normCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "norm FILE",
		Short: "Frobenius norm of the matrix and Euclidean norm of the vector",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			if len(doc.Matrix) == 0 && len(doc.Vector) == 0 {
				return errors.New("norm: document has neither matrix nor vector")
			}
			if len(doc.Matrix) > 0 {
				var n float64
				if doc.IsComplex() {
					m, err := doc.ComplexDense()
					if err != nil {
						return err
					}
					n, err = a.engine.ComplexMatrixNorm(m)
					if err != nil {
						return err
					}
				} else {
					m, err := doc.Dense()
					if err != nil {
						return err
					}
					n, err = a.engine.MatrixNorm(m)
					if err != nil {
						return err
					}
				}
				a.printScalar("matrix", n)
			}
			if len(doc.Vector) > 0 {
				var n float64
				if len(doc.VectorImag) > 0 {
					v, err := doc.ComplexColumn()
					if err != nil {
						return err
					}
					n, err = a.engine.ComplexVectorNorm(v)
					if err != nil {
						return err
					}
				} else {
					v, err := doc.Column()
					if err != nil {
						return err
					}
					n, err = a.engine.VectorNorm(v)
					if err != nil {
						return err
					}
				}
				a.printScalar("vector", n)
			}
			return nil
		},
	}
}
