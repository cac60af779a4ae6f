// SPDX-License-Identifier: MIT

// Package kernel - capability interfaces of the Dense Kernel Adapter.
//
// Purpose:
//   - Name every BLAS/LAPACK-style routine the linalg engine needs, nothing more.
//   - Report status the LAPACK way (Info) so the engine owns the mapping to errors.
//
// Conventions (all routines):
//   - Storage is row-major; lda/ldb/... are row strides and must be ≥ max(1, cols).
//   - Argument numbers count from 1 in Go signature order.
//   - Routines never panic on bad arguments: they return -k for argument k.
//   - A NaN or ±Inf entry in an input matrix is reported as that matrix argument being illegal.
//     IsNonFinite tells the two negative cases apart.
package kernel

import (
	"strconv"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"
)

// Info is a LAPACK status: 0 success, -k argument k illegal, >0 numerical failure.
type Info int

// OK reports success.
func (i Info) OK() bool { return i == 0 }

// IllegalArgument reports the 1-based index of the offending argument, or 0.
func (i Info) IllegalArgument() int {
	if i < 0 {
		return int(-i)
	}
	return 0
}

// String implements fmt.Stringer.
func (i Info) String() string { return "info=" + strconv.Itoa(int(i)) }

// Routine names a kernel entry point. Values are the lower-case LAPACK names.
type Routine string

// Routine identifiers.
const (
	RoutineDgemv  Routine = "dgemv"
	RoutineDgemm  Routine = "dgemm"
	RoutineDnrm2  Routine = "dnrm2"
	RoutineDlange Routine = "dlange"
	RoutineDgetrf Routine = "dgetrf"
	RoutineDgetri Routine = "dgetri"
	RoutineDgesv  Routine = "dgesv"
	RoutineDgels  Routine = "dgels"
	RoutineDgelsy Routine = "dgelsy"
	RoutineDgeev  Routine = "dgeev"
	RoutineDgesvd Routine = "dgesvd"
	RoutineDgeqrf Routine = "dgeqrf"
	RoutineDorgqr Routine = "dorgqr"
	RoutineDgelqf Routine = "dgelqf"
	RoutineDorglq Routine = "dorglq"

	RoutineZgemv  Routine = "zgemv"
	RoutineZgemm  Routine = "zgemm"
	RoutineDznrm2 Routine = "dznrm2"
	RoutineZlange Routine = "zlange"
	RoutineZgetrf Routine = "zgetrf"
	RoutineZgetri Routine = "zgetri"
	RoutineZgesv  Routine = "zgesv"
	RoutineZgeev  Routine = "zgeev"
	RoutineZgesvd Routine = "zgesvd"
)

// matrixArgs lists, per routine, the argument positions that are scanned for non-finite entries.
var matrixArgs = map[Routine][]int{
	RoutineDgetrf: {3},
	RoutineDgetri: {2},
	RoutineDgesv:  {3, 6},
	RoutineDgels:  {4, 6},
	RoutineDgelsy: {4, 6},
	RoutineDgeev:  {2},
	RoutineDgesvd: {4},
	RoutineDgeqrf: {3},
	RoutineDgelqf: {3},
	RoutineZgetrf: {3},
	RoutineZgetri: {2},
	RoutineZgesv:  {3, 6},
	RoutineZgeev:  {2},
	RoutineZgesvd: {3},
}

// IsNonFinite reports whether info from routine r means "input matrix contains NaN or ±Inf".
func IsNonFinite(r Routine, info Info) bool {
	k := info.IllegalArgument()
	if k == 0 {
		return false
	}
	for _, p := range matrixArgs[r] {
		if p == k {
			return true
		}
	}
	return false
}

// Real is the real-valued routine set.
//
// Factorization outputs follow LAPACK: Dgetrf leaves L\U in a with zero-based pivots in ipiv,
// Dgeqrf/Dgelqf leave R (L) plus reflectors in a with scales in tau.
type Real interface {
	// Dgemv computes y = alpha*op(A)*x + beta*y for an m×n A.
	Dgemv(trans blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) Info
	// Dgemm computes C = alpha*op(A)*op(B) + beta*C with op(A) m×k and op(B) k×n.
	Dgemm(transA, transB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) Info
	// Dnrm2 returns the Euclidean norm of x[:n].
	Dnrm2(n int, x []float64) float64
	// Dlange returns the Frobenius norm of the m×n matrix A.
	Dlange(m, n int, a []float64, lda int) float64
	// Dgetrf computes A = P*L*U. info > 0 is the 1-based index of the first zero pivot.
	Dgetrf(m, n int, a []float64, lda int, ipiv []int) Info
	// Dgetri overwrites the Dgetrf factors of a square A with A⁻¹.
	Dgetri(n int, a []float64, lda int, ipiv []int) Info
	// Dgesv solves A*X = B for square A; B is n×nrhs and is overwritten by X.
	Dgesv(n, nrhs int, a []float64, lda int, ipiv []int, b []float64, ldb int) Info
	// Dgels solves full-rank least squares via QR; b has max(m,n) rows.
	Dgels(m, n, nrhs int, a []float64, lda int, b []float64, ldb int) Info
	// Dgelsy solves rank-deficient least squares via pivoted QR; b has max(m,n) rows.
	Dgelsy(m, n, nrhs int, a []float64, lda int, b []float64, ldb int, jpvt []int, rcond float64) (rank int, info Info)
	// Dgeev computes the eigenvalues wr + i*wi of a square A.
	Dgeev(n int, a []float64, lda int, wr, wi []float64) Info
	// Dgesvd computes singular values s (descending) and, for lapack.SVDAll, U (m×m) and Vᵀ (n×n).
	Dgesvd(job lapack.SVDJob, m, n int, a []float64, lda int, s, u []float64, ldu int, vt []float64, ldvt int) Info
	// Dgeqrf computes A = Q*R.
	Dgeqrf(m, n int, a []float64, lda int, tau []float64) Info
	// Dorgqr expands the first n columns of Q from Dgeqrf output (k reflectors).
	Dorgqr(m, n, k int, a []float64, lda int, tau []float64) Info
	// Dgelqf computes A = L*Q.
	Dgelqf(m, n int, a []float64, lda int, tau []float64) Info
	// Dorglq expands the first m rows of Q from Dgelqf output (k reflectors).
	Dorglq(m, n, k int, a []float64, lda int, tau []float64) Info
}

// Complex is the complex-valued routine set over packed complex128 buffers.
type Complex interface {
	Zgemv(trans blas.Transpose, m, n int, alpha complex128, a []complex128, lda int, x []complex128, beta complex128, y []complex128) Info
	Zgemm(transA, transB blas.Transpose, m, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) Info
	Dznrm2(n int, x []complex128) float64
	// Zlange returns the Frobenius norm of the m×n matrix A.
	Zlange(m, n int, a []complex128, lda int) float64
	Zgetrf(m, n int, a []complex128, lda int, ipiv []int) Info
	Zgetri(n int, a []complex128, lda int, ipiv []int) Info
	Zgesv(n, nrhs int, a []complex128, lda int, ipiv []int, b []complex128, ldb int) Info
	// Zgeev computes the eigenvalues of a square A. info > 0: QR iteration failed.
	Zgeev(n int, a []complex128, lda int, w []complex128) Info
	// Zgesvd computes singular values only, descending, len(s) ≥ min(m,n).
	Zgesvd(m, n int, a []complex128, lda int, s []float64) Info
}
