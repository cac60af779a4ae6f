// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvnum/kernel"
	"github.com/katalvlaran/lvnum/matrix"
)

// Operation tags used as error prefixes and in log fields.
const (
	opInverse          = "linalg.Inverse"
	opPseudoinverse    = "linalg.Pseudoinverse"
	opLinearSolve      = "linalg.LinearSolve"
	opOverdetermined   = "linalg.OverdeterminedSolve"
	opLeastSquares     = "linalg.LinearLeastSquares"
	opExponentialFit   = "linalg.ExponentialFit"
	opPowerFit         = "linalg.PowerFit"
	opEigenValues      = "linalg.EigenValues"
	opEigenSpectrum    = "linalg.EigenSpectrum"
	opSVD              = "linalg.SVD"
	opQR               = "linalg.QR"
	opLQ               = "linalg.LQ"
	opLU               = "linalg.LU"
	opVectorNorm       = "linalg.VectorNorm"
	opMatrixNorm       = "linalg.MatrixNorm"
	opMatVec           = "linalg.MatVec"
	opMatMul           = "linalg.MatMul"
	opCInverse         = "linalg.ComplexInverse"
	opCPseudoinverse   = "linalg.ComplexPseudoinverse"
	opCLinearSolve     = "linalg.ComplexLinearSolve"
	opCEigenValues     = "linalg.ComplexEigenValues"
	opCSVD             = "linalg.ComplexSVD"
	opCVectorNorm      = "linalg.ComplexVectorNorm"
	opCMatrixNorm      = "linalg.ComplexMatrixNorm"
	opCMatVec          = "linalg.ComplexMatVec"
	opCMatMul          = "linalg.ComplexMatMul"
	opQRFactorsQ       = "linalg.QRFactors.Q"
	opLQFactorsQ       = "linalg.LQFactors.Q"
	opLeastSquaresRank = "linalg.LeastSquaresRank"
)

// Engine runs linear-algebra operations on a pair of dense kernels.
//
// An Engine holds only immutable configuration: it is safe for concurrent use as long
// as concurrent calls do not share mutable operands. Every operation validates shapes
// before any kernel call, never modifies its inputs and returns freshly allocated results.
type Engine struct {
	real       kernel.Real
	complex    kernel.Complex
	log        zerolog.Logger
	pinvCutoff float64
	rcond      float64
}

// New builds an Engine from DefaultOptions overridden by opts.
func New(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{
		real:       o.Kernel,
		complex:    o.ComplexKernel,
		log:        o.Logger,
		pinvCutoff: o.PinvCutoff,
		rcond:      o.LstsqRCond,
	}
}

// defaultEngine backs the package-level functions.
var defaultEngine = New()

// Default returns the Engine behind the package-level functions.
func Default() *Engine { return defaultEngine }

// kernelFailure builds the *KernelError for a non-zero status and logs it.
func (e *Engine) kernelFailure(op string, r kernel.Routine, info kernel.Info, numeric error) error {
	err := &KernelError{Op: op, Routine: r, Info: info, Err: translate(r, info, numeric)}
	e.log.Debug().
		Str("op", op).
		Str("routine", string(r)).
		Int("info", int(info)).
		AnErr("kind", err.Err).
		Msg("kernel call failed")
	return err
}

// copyOf copies m's buffer into scratch.
func copyOf(ar *arena, m *matrix.Dense) []float64 {
	buf := ar.float64s(len(m.RawData()))
	copy(buf, m.RawData())
	return buf
}

// packOf packs m into a scratch complex128 buffer.
func packOf(ar *arena, m *matrix.ComplexDense) []complex128 {
	buf := ar.complex128s(len(m.RawData()))
	_ = m.PackTo(buf) // lengths match by construction
	return buf
}

// transposeInto writes the c×r transpose of the r×c row-major src into dst.
func transposeInto(dst, src []float64, r, c int) {
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			dst[j*r+i] = src[i*c+j]
		}
	}
}

// column wraps values in a new column vector.
func column(op string, values []float64) (*matrix.Vector, error) {
	v, err := matrix.NewVector(matrix.ColumnVector, values)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	return v, nil
}

// dense wraps values in a new rows×cols matrix.
func dense(op string, rows, cols int, values []float64) (*matrix.Dense, error) {
	m, err := matrix.NewDense(rows, cols, values)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	return m, nil
}
