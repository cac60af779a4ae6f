// SPDX-License-Identifier: MIT

// Package linalg is the linear-algebra engine of lvnum.
//
// It implements, for real matrices:
//
//	Inverse, Pseudoinverse, LinearSolve, OverdeterminedSolve, LinearLeastSquares,
//	ExponentialFit, PowerFit, EigenValues, EigenSpectrum, SVD, QR, LQ, LU,
//	VectorNorm, MatrixNorm, MatVec, MatMul
//
// and for complex matrices:
//
//	ComplexInverse, ComplexLinearSolve, ComplexEigenValues, ComplexSVD,
//	ComplexVectorNorm, ComplexMatrixNorm, ComplexMatVec, ComplexMatMul
//
// ComplexPseudoinverse exists only to fail with ErrNotSupported.
//
// Contract:
//   - Shapes and orientations are validated before any kernel call. A mismatch is
//     ErrDimension and the kernel is never reached.
//   - Inputs are never modified; every result is a new value owned by the caller.
//   - Working copies, pivots and packed complex buffers live in a per-call scratch arena
//     released on every exit path.
//   - Kernel statuses are translated: non-finite input → ErrInvalidEntry, other negative
//     statuses → ErrKernelArgument, positive statuses → ErrSingular / ErrConvergence /
//     ErrSVDConvergence. The raw status is kept in *KernelError.
//
// Engines are configured with functional options:
//
//	eng := linalg.New(
//	    linalg.WithKernel(kernel.Instrument(kernel.Gonum{}, kernel.Gonum{}, metrics)),
//	    linalg.WithLogger(logger),
//	    linalg.WithLstsqRCond(1e-10),
//	)
//	x, err := eng.LinearSolve(m, b)
//	if errors.Is(err, linalg.ErrSingular) { ... }
//
// The package-level functions use Default().
package linalg
