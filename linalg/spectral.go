// SPDX-License-Identifier: MIT

package linalg

import (
	"gonum.org/v1/gonum/lapack"

	"github.com/katalvlaran/lvnum/kernel"
	"github.com/katalvlaran/lvnum/matrix"
)

// EigenValues returns the real parts of the eigenvalues of a square M as a column vector.
// Use EigenSpectrum for the imaginary parts.
//
// Errors: ErrDimension (not square), ErrConvergence, ErrInvalidEntry.
func (e *Engine) EigenValues(m *matrix.Dense) (*matrix.Vector, error) {
	wr, _, err := e.eigen(opEigenValues, m)
	if err != nil {
		return nil, err
	}
	return column(opEigenValues, wr)
}

// EigenSpectrum returns the full complex eigenvalues of a square M as a column vector.
// Complex conjugate pairs appear consecutively, positive imaginary part first.
func (e *Engine) EigenSpectrum(m *matrix.Dense) (*matrix.ComplexVector, error) {
	wr, wi, err := e.eigen(opEigenSpectrum, m)
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewComplexVector(matrix.ColumnVector, wr, wi)
	if err != nil {
		return nil, opErrorf(opEigenSpectrum, err)
	}
	return out, nil
}

// eigen runs Dgeev on a copy of m; the returned slices are freshly allocated.
func (e *Engine) eigen(op string, m *matrix.Dense) ([]float64, []float64, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, nil, opErrorf(op, err)
	}
	n := m.Rows()

	var ar arena
	defer ar.release()
	a := copyOf(&ar, m)
	wr, wi := ar.float64s(n), ar.float64s(n)
	if info := e.real.Dgeev(n, a, n, wr, wi); info != 0 {
		return nil, nil, e.kernelFailure(op, kernel.RoutineDgeev, info, ErrConvergence)
	}
	return append([]float64(nil), wr...), append([]float64(nil), wi...), nil
}

// SVD returns the singular values of M, descending, as a column vector of
// length min(rows, cols).
//
// Errors: ErrNilMatrix, ErrSVDConvergence, ErrInvalidEntry.
func (e *Engine) SVD(m *matrix.Dense) (*matrix.Vector, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opSVD, err)
	}
	rows, cols := m.Dims()

	var ar arena
	defer ar.release()
	a := copyOf(&ar, m)
	s := ar.float64s(min(rows, cols))
	if info := e.real.Dgesvd(lapack.SVDNone, rows, cols, a, cols, s, nil, 1, nil, 1); info != 0 {
		return nil, e.kernelFailure(opSVD, kernel.RoutineDgesvd, info, ErrSVDConvergence)
	}
	return column(opSVD, s)
}

// ComplexEigenValues returns the eigenvalues of a square complex M as a column vector.
//
// Errors: ErrDimension (not square), ErrConvergence, ErrInvalidEntry.
func (e *Engine) ComplexEigenValues(m *matrix.ComplexDense) (*matrix.ComplexVector, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opErrorf(opCEigenValues, err)
	}
	n := m.Rows()

	var ar arena
	defer ar.release()
	a := packOf(&ar, m)
	w := ar.complex128s(n)
	if info := e.complex.Zgeev(n, a, n, w); info != 0 {
		return nil, e.kernelFailure(opCEigenValues, kernel.RoutineZgeev, info, ErrConvergence)
	}
	out, err := matrix.NewComplexVectorFromPacked(matrix.ColumnVector, w)
	if err != nil {
		return nil, opErrorf(opCEigenValues, err)
	}
	return out, nil
}

// ComplexSVD returns the (real) singular values of a complex M, descending.
//
// Errors: ErrNilMatrix, ErrSVDConvergence, ErrInvalidEntry.
func (e *Engine) ComplexSVD(m *matrix.ComplexDense) (*matrix.Vector, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opCSVD, err)
	}
	rows, cols := m.Dims()

	var ar arena
	defer ar.release()
	a := packOf(&ar, m)
	s := ar.float64s(min(rows, cols))
	if info := e.complex.Zgesvd(rows, cols, a, cols, s); info != 0 {
		return nil, e.kernelFailure(opCSVD, kernel.RoutineZgesvd, info, ErrSVDConvergence)
	}
	return column(opCSVD, s)
}
