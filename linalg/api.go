// SPDX-License-Identifier: MIT

package linalg

import "github.com/katalvlaran/lvnum/matrix"

// The package-level functions run on Default(): gonum kernels, no logging and the
// default tolerances. Build an Engine with New to change any of these.

// Inverse calls Default().Inverse.
func Inverse(m *matrix.Dense) (*matrix.Dense, error) { return defaultEngine.Inverse(m) }

// Pseudoinverse calls Default().Pseudoinverse.
func Pseudoinverse(m *matrix.Dense) (*matrix.Dense, error) { return defaultEngine.Pseudoinverse(m) }

// LinearSolve calls Default().LinearSolve.
func LinearSolve(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	return defaultEngine.LinearSolve(m, b)
}

// OverdeterminedSolve calls Default().OverdeterminedSolve.
func OverdeterminedSolve(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	return defaultEngine.OverdeterminedSolve(m, b)
}

// LinearLeastSquares calls Default().LinearLeastSquares.
func LinearLeastSquares(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	return defaultEngine.LinearLeastSquares(m, b)
}

// LeastSquaresRank calls Default().LeastSquaresRank.
func LeastSquaresRank(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, int, error) {
	return defaultEngine.LeastSquaresRank(m, b)
}

// ExponentialFit calls Default().ExponentialFit.
func ExponentialFit(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	return defaultEngine.ExponentialFit(m, b)
}

// PowerFit calls Default().PowerFit.
func PowerFit(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	return defaultEngine.PowerFit(m, b)
}

// EigenValues calls Default().EigenValues.
func EigenValues(m *matrix.Dense) (*matrix.Vector, error) { return defaultEngine.EigenValues(m) }

// EigenSpectrum calls Default().EigenSpectrum.
func EigenSpectrum(m *matrix.Dense) (*matrix.ComplexVector, error) {
	return defaultEngine.EigenSpectrum(m)
}

// SVD calls Default().SVD.
func SVD(m *matrix.Dense) (*matrix.Vector, error) { return defaultEngine.SVD(m) }

// QR calls Default().QR.
func QR(m *matrix.Dense) (*QRFactors, error) { return defaultEngine.QR(m) }

// LQ calls Default().LQ.
func LQ(m *matrix.Dense) (*LQFactors, error) { return defaultEngine.LQ(m) }

// LU calls Default().LU.
func LU(m *matrix.Dense) (*LUFactors, error) { return defaultEngine.LU(m) }

// VectorNorm calls Default().VectorNorm.
func VectorNorm(v *matrix.Vector) (float64, error) { return defaultEngine.VectorNorm(v) }

// MatrixNorm calls Default().MatrixNorm.
func MatrixNorm(m *matrix.Dense) (float64, error) { return defaultEngine.MatrixNorm(m) }

// MatVec calls Default().MatVec.
func MatVec(m *matrix.Dense, v *matrix.Vector) (*matrix.Vector, error) {
	return defaultEngine.MatVec(m, v)
}

// MatMul calls Default().MatMul.
func MatMul(a, b *matrix.Dense) (*matrix.Dense, error) { return defaultEngine.MatMul(a, b) }

// ComplexInverse calls Default().ComplexInverse.
func ComplexInverse(m *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	return defaultEngine.ComplexInverse(m)
}

// ComplexPseudoinverse calls Default().ComplexPseudoinverse; it always fails with ErrNotSupported.
func ComplexPseudoinverse(m *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	return defaultEngine.ComplexPseudoinverse(m)
}

// ComplexLinearSolve calls Default().ComplexLinearSolve.
func ComplexLinearSolve(m *matrix.ComplexDense, b *matrix.ComplexVector) (*matrix.ComplexVector, error) {
	return defaultEngine.ComplexLinearSolve(m, b)
}

// ComplexEigenValues calls Default().ComplexEigenValues.
func ComplexEigenValues(m *matrix.ComplexDense) (*matrix.ComplexVector, error) {
	return defaultEngine.ComplexEigenValues(m)
}

// ComplexSVD calls Default().ComplexSVD.
func ComplexSVD(m *matrix.ComplexDense) (*matrix.Vector, error) { return defaultEngine.ComplexSVD(m) }

// ComplexVectorNorm calls Default().ComplexVectorNorm.
func ComplexVectorNorm(v *matrix.ComplexVector) (float64, error) {
	return defaultEngine.ComplexVectorNorm(v)
}

// ComplexMatrixNorm calls Default().ComplexMatrixNorm.
func ComplexMatrixNorm(m *matrix.ComplexDense) (float64, error) {
	return defaultEngine.ComplexMatrixNorm(m)
}

// ComplexMatVec calls Default().ComplexMatVec.
func ComplexMatVec(m *matrix.ComplexDense, v *matrix.ComplexVector) (*matrix.ComplexVector, error) {
	return defaultEngine.ComplexMatVec(m, v)
}

// ComplexMatMul calls Default().ComplexMatMul.
func ComplexMatMul(a, b *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	return defaultEngine.ComplexMatMul(a, b)
}
