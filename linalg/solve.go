// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvnum/kernel"
	"github.com/katalvlaran/lvnum/matrix"
)

// LinearSolve solves M*x = b for a square M and a column vector b with len(b) == rows(M).
//
// Implementation:
//   - LU with partial pivoting on scratch copies of M and b (Dgesv).
//
// Errors:
//   - ErrNilMatrix, ErrDimension (M not square, b not a column of the right length).
//   - ErrSingular, ErrInvalidEntry, ErrKernelArgument from the kernel.
//
// Complexity:
//   - Time O(n³), Space O(n²) scratch.
func (e *Engine) LinearSolve(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opErrorf(opLinearSolve, err)
	}
	n := m.Rows()
	if err := matrix.ValidateColumn(b, n); err != nil {
		return nil, opErrorf(opLinearSolve, err)
	}

	var ar arena
	defer ar.release()
	a := copyOf(&ar, m)
	x := ar.float64s(n)
	copy(x, b.RawData())

	if info := e.real.Dgesv(n, 1, a, n, ar.ints(n), x, 1); info != 0 {
		return nil, e.kernelFailure(opLinearSolve, kernel.RoutineDgesv, info, ErrSingular)
	}
	return column(opLinearSolve, x)
}

// OverdeterminedSolve returns the least-squares solution of a full-rank tall system
// (rows(M) > cols(M)). The kernel leaves the solution in the first cols(M) entries of
// a rows(M)-long buffer; the result is truncated to cols(M).
//
// Errors: ErrDimension when rows(M) <= cols(M) or b does not match; ErrSingular when
// M is rank deficient.
func (e *Engine) OverdeterminedSolve(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opOverdetermined, err)
	}
	rows, cols := m.Dims()
	if rows <= cols {
		return nil, opErrorf(opOverdetermined, ErrDimension)
	}
	if err := matrix.ValidateColumn(b, rows); err != nil {
		return nil, opErrorf(opOverdetermined, err)
	}

	var ar arena
	defer ar.release()
	a := copyOf(&ar, m)
	x := ar.float64s(rows)
	copy(x, b.RawData())

	if info := e.real.Dgels(rows, cols, 1, a, cols, x, 1); info != 0 {
		return nil, e.kernelFailure(opOverdetermined, kernel.RoutineDgels, info, ErrSingular)
	}
	return column(opOverdetermined, x[:cols])
}

// LinearLeastSquares returns the minimum-norm least-squares solution of M*x ≈ b for any
// shape of M, tolerating rank deficiency. Columns whose pivoted R diagonal falls below
// rcond*|R₀₀| (default 1e-8) are treated as dependent.
//
// Implementation:
//   - Column-pivoted QR plus complete orthogonal factorization (Dgelsy).
//
// Complexity:
//   - Time O(m*n*min(m,n)), Space O(max(m,n)*n) scratch.
func (e *Engine) LinearLeastSquares(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	x, _, err := e.leastSquares(opLeastSquares, m, b)
	return x, err
}

// LeastSquaresRank is LinearLeastSquares that also reports the effective rank of M.
func (e *Engine) LeastSquaresRank(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, int, error) {
	return e.leastSquares(opLeastSquaresRank, m, b)
}

func (e *Engine) leastSquares(op string, m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, 0, opErrorf(op, err)
	}
	rows, cols := m.Dims()
	if err := matrix.ValidateColumn(b, rows); err != nil {
		return nil, 0, opErrorf(op, err)
	}

	var ar arena
	defer ar.release()
	a := copyOf(&ar, m)
	x := ar.float64s(max(rows, cols))
	copy(x, b.RawData())

	rank, info := e.real.Dgelsy(rows, cols, 1, a, cols, x, 1, ar.ints(cols), e.rcond)
	if info != 0 {
		return nil, 0, e.kernelFailure(op, kernel.RoutineDgelsy, info, ErrSingular)
	}
	v, err := column(op, x[:cols])
	if err != nil {
		return nil, 0, err
	}
	return v, rank, nil
}

// ComplexLinearSolve solves M*x = b for a square complex M (Zgesv on packed copies).
// Checks and errors mirror LinearSolve.
func (e *Engine) ComplexLinearSolve(m *matrix.ComplexDense, b *matrix.ComplexVector) (*matrix.ComplexVector, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opErrorf(opCLinearSolve, err)
	}
	n := m.Rows()
	if err := matrix.ValidateColumn(b, n); err != nil {
		return nil, opErrorf(opCLinearSolve, err)
	}

	var ar arena
	defer ar.release()
	a := packOf(&ar, m)
	x := ar.complex128s(n)
	_ = b.PackTo(x)

	if info := e.complex.Zgesv(n, 1, a, n, ar.ints(n), x, 1); info != 0 {
		return nil, e.kernelFailure(opCLinearSolve, kernel.RoutineZgesv, info, ErrSingular)
	}
	out, err := matrix.NewComplexVectorFromPacked(matrix.ColumnVector, x)
	if err != nil {
		return nil, opErrorf(opCLinearSolve, err)
	}
	return out, nil
}
