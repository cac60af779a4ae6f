// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"gonum.org/v1/gonum/blas"

	"github.com/katalvlaran/lvnum/kernel"
	"github.com/katalvlaran/lvnum/matrix"
)

// VectorNorm returns the Euclidean norm of v (Dnrm2). Orientation is irrelevant.
func (e *Engine) VectorNorm(v *matrix.Vector) (float64, error) {
	if err := matrix.ValidateNotNil(v); err != nil {
		return 0, opErrorf(opVectorNorm, err)
	}
	return e.norm(opVectorNorm, kernel.RoutineDnrm2, e.real.Dnrm2(v.Len(), v.RawData()))
}

// MatrixNorm returns the Frobenius norm of M (Dlange).
func (e *Engine) MatrixNorm(m *matrix.Dense) (float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, opErrorf(opMatrixNorm, err)
	}
	rows, cols := m.Dims()
	return e.norm(opMatrixNorm, kernel.RoutineDlange, e.real.Dlange(rows, cols, m.RawData(), cols))
}

// norm reports a non-finite result as ErrInvalidEntry. Shapes are validated before the
// call, so NaN can only come from a NaN entry; ±Inf comes from an infinite entry or an
// overflowing norm.
func (e *Engine) norm(op string, r kernel.Routine, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.log.Debug().Str("op", op).Str("routine", string(r)).Msg("norm of non-finite data")
		return 0, opErrorf(op, ErrInvalidEntry)
	}
	return v, nil
}

// MatVec returns M*v for a column vector v with len(v) == cols(M) (Dgemv).
//
// Errors: ErrNilMatrix; ErrDimension when v is a row vector or its length differs
// from cols(M). Both are detected before the kernel is reached.
func (e *Engine) MatVec(m *matrix.Dense, v *matrix.Vector) (*matrix.Vector, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opMatVec, err)
	}
	rows, cols := m.Dims()
	if err := matrix.ValidateColumn(v, cols); err != nil {
		return nil, opErrorf(opMatVec, err)
	}

	var ar arena
	defer ar.release()
	y := ar.float64s(rows)
	if info := e.real.Dgemv(blas.NoTrans, rows, cols, 1, m.RawData(), cols, v.RawData(), 0, y); info != 0 {
		return nil, e.kernelFailure(opMatVec, kernel.RoutineDgemv, info, ErrKernelArgument)
	}
	return column(opMatVec, y)
}

// MatMul returns A*B (Dgemm). Errors: ErrNilMatrix; ErrDimension when cols(A) != rows(B).
func (e *Engine) MatMul(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opMatMul, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, opErrorf(opMatMul, err)
	}
	if err := matrix.ValidateMulShape(a, b); err != nil {
		return nil, opErrorf(opMatMul, err)
	}
	m, k := a.Dims()
	n := b.Cols()

	var ar arena
	defer ar.release()
	c := ar.float64s(m * n)
	if info := e.real.Dgemm(blas.NoTrans, blas.NoTrans, m, n, k, 1, a.RawData(), k, b.RawData(), n, 0, c, n); info != 0 {
		return nil, e.kernelFailure(opMatMul, kernel.RoutineDgemm, info, ErrKernelArgument)
	}
	return dense(opMatMul, m, n, c)
}

// ComplexVectorNorm returns the Euclidean norm of a complex vector (Dznrm2).
func (e *Engine) ComplexVectorNorm(v *matrix.ComplexVector) (float64, error) {
	if err := matrix.ValidateNotNil(v); err != nil {
		return 0, opErrorf(opCVectorNorm, err)
	}
	var ar arena
	defer ar.release()
	x := ar.complex128s(v.Len())
	_ = v.PackTo(x)
	return e.norm(opCVectorNorm, kernel.RoutineDznrm2, e.complex.Dznrm2(len(x), x))
}

// ComplexMatrixNorm returns the Frobenius norm of a complex M (Zlange).
func (e *Engine) ComplexMatrixNorm(m *matrix.ComplexDense) (float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, opErrorf(opCMatrixNorm, err)
	}
	rows, cols := m.Dims()
	var ar arena
	defer ar.release()
	return e.norm(opCMatrixNorm, kernel.RoutineZlange, e.complex.Zlange(rows, cols, packOf(&ar, m), cols))
}

// ComplexMatVec returns M*v for a complex column vector v (Zgemv). Checks mirror MatVec.
func (e *Engine) ComplexMatVec(m *matrix.ComplexDense, v *matrix.ComplexVector) (*matrix.ComplexVector, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opCMatVec, err)
	}
	rows, cols := m.Dims()
	if err := matrix.ValidateColumn(v, cols); err != nil {
		return nil, opErrorf(opCMatVec, err)
	}

	var ar arena
	defer ar.release()
	x := ar.complex128s(cols)
	_ = v.PackTo(x)
	y := ar.complex128s(rows)
	if info := e.complex.Zgemv(blas.NoTrans, rows, cols, 1, packOf(&ar, m), cols, x, 0, y); info != 0 {
		return nil, e.kernelFailure(opCMatVec, kernel.RoutineZgemv, info, ErrKernelArgument)
	}
	out, err := matrix.NewComplexVectorFromPacked(matrix.ColumnVector, y)
	if err != nil {
		return nil, opErrorf(opCMatVec, err)
	}
	return out, nil
}

// ComplexMatMul returns A*B for complex matrices (Zgemm). Checks mirror MatMul.
func (e *Engine) ComplexMatMul(a, b *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, opErrorf(opCMatMul, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, opErrorf(opCMatMul, err)
	}
	if err := matrix.ValidateMulShape(a, b); err != nil {
		return nil, opErrorf(opCMatMul, err)
	}
	m, k := a.Dims()
	n := b.Cols()

	var ar arena
	defer ar.release()
	c := ar.complex128s(m * n)
	if info := e.complex.Zgemm(blas.NoTrans, blas.NoTrans, m, n, k, 1, packOf(&ar, a), k, packOf(&ar, b), n, 0, c, n); info != 0 {
		return nil, e.kernelFailure(opCMatMul, kernel.RoutineZgemm, info, ErrKernelArgument)
	}
	out, err := matrix.NewComplexDenseFromPacked(m, n, c)
	if err != nil {
		return nil, opErrorf(opCMatMul, err)
	}
	return out, nil
}
