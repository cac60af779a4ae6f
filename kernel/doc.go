// SPDX-License-Identifier: MIT

// Package kernel is the Dense Kernel Adapter of lvnum.
//
// The linalg engine never calls BLAS/LAPACK code directly. It talks to two small
// capability interfaces, Real and Complex, whose methods mirror the LAPACK routine
// they stand for (Dgetrf, Dgesvd, Zgeev, ...) and report status as an Info integer:
//
//	0   success
//	-k  argument k (1-based, Go signature order) is illegal; a NaN or ±Inf entry in an
//	    input matrix counts as that matrix argument being illegal (see IsNonFinite)
//	>0  numerical failure: singular pivot, rank deficiency or non-convergence
//
// Gonum is the production implementation. Real routines run on
// gonum.org/v1/gonum/lapack/lapack64 and blas/blas64 (row-major). Complex routines
// run on blas/cblas128 with native partial-pivot LU, Hessenberg + shifted QR
// eigenvalues and one-sided Jacobi singular values.
//
// Instrumented decorates any implementation with Prometheus call counters
// (lvnum_kernel_calls_total{routine,status}) and timings.
//
// Tests substitute their own implementations of Real/Complex to script failures
// or to assert that a routine is never reached.
package kernel
