// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Gonum implements Real and Complex.
// Real routines delegate to gonum's row-major lapack64/blas64 wrappers after explicit
// argument validation (gonum panics on bad arguments; this adapter reports Info instead).
// Complex routines are built on blas/cblas128 because gonum ships no complex LAPACK.
type Gonum struct{}

// Compile-time assertions.
var (
	_ Real    = Gonum{}
	_ Complex = Gonum{}
)

// workspace runs a LAPACK workspace query (lwork == -1) and allocates the optimal buffer.
func workspace(query func(work []float64, lwork int)) []float64 {
	var probe [1]float64
	query(probe[:], -1)
	lwork := int(probe[0])
	if lwork < 1 {
		lwork = 1
	}
	return make([]float64, lwork)
}

func general(m, n int, a []float64, lda int) blas64.General {
	return blas64.General{Rows: m, Cols: n, Stride: max(1, lda), Data: a}
}

// Dgemv computes y = alpha*op(A)*x + beta*y.
func (Gonum) Dgemv(trans blas.Transpose, m, n int, alpha float64, a []float64, lda int, x []float64, beta float64, y []float64) Info {
	lx, ly := n, m
	if trans != blas.NoTrans {
		lx, ly = m, n
	}
	switch {
	case !validTrans(trans):
		return -1
	case m < 0:
		return -2
	case n < 0:
		return -3
	case lda < max(1, n):
		return -6
	case !fits(m, n, lda, len(a)):
		return -5
	case len(x) < lx:
		return -7
	case len(y) < ly:
		return -9
	}
	if m == 0 || n == 0 {
		return 0
	}
	blas64.Gemv(trans, alpha, general(m, n, a, lda),
		blas64.Vector{N: lx, Inc: 1, Data: x}, beta,
		blas64.Vector{N: ly, Inc: 1, Data: y})
	return 0
}

// Dgemm computes C = alpha*op(A)*op(B) + beta*C.
func (Gonum) Dgemm(transA, transB blas.Transpose, m, n, k int, alpha float64, a []float64, lda int, b []float64, ldb int, beta float64, c []float64, ldc int) Info {
	ar, ac := gemmDims(transA, m, k)
	br, bc := gemmDims(transB, k, n)
	switch {
	case !validTrans(transA):
		return -1
	case !validTrans(transB):
		return -2
	case m < 0:
		return -3
	case n < 0:
		return -4
	case k < 0:
		return -5
	case lda < max(1, ac):
		return -8
	case !fits(ar, ac, lda, len(a)):
		return -7
	case ldb < max(1, bc):
		return -10
	case !fits(br, bc, ldb, len(b)):
		return -9
	case ldc < max(1, n):
		return -13
	case !fits(m, n, ldc, len(c)):
		return -12
	}
	if m == 0 || n == 0 {
		return 0
	}
	if k == 0 {
		// C = beta*C; gonum rejects zero-sized operands.
		var i, j int
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				c[i*ldc+j] *= beta
			}
		}
		return 0
	}
	blas64.Gemm(transA, transB, alpha, general(ar, ac, a, lda), general(br, bc, b, ldb), beta, general(m, n, c, ldc))
	return 0
}

// Dnrm2 returns ‖x[:n]‖₂, or NaN for invalid arguments.
func (Gonum) Dnrm2(n int, x []float64) float64 {
	if n < 0 || len(x) < n {
		return math.NaN()
	}
	if n == 0 {
		return 0
	}
	return blas64.Nrm2(blas64.Vector{N: n, Inc: 1, Data: x})
}

// Dlange returns the Frobenius norm of A, or NaN for invalid arguments.
func (Gonum) Dlange(m, n int, a []float64, lda int) float64 {
	if m < 0 || n < 0 || lda < max(1, n) || !fits(m, n, lda, len(a)) {
		return math.NaN()
	}
	if m == 0 || n == 0 {
		return 0
	}
	return lapack64.Lange(lapack.Frobenius, general(m, n, a, lda), nil)
}

// Dgetrf computes the LU factorization with partial pivoting.
func (Gonum) Dgetrf(m, n int, a []float64, lda int, ipiv []int) Info {
	k := min(m, n)
	switch {
	case m < 0:
		return -1
	case n < 0:
		return -2
	case lda < max(1, n):
		return -4
	case !fits(m, n, lda, len(a)):
		return -3
	case len(ipiv) < k:
		return -5
	case hasNonFinite(m, n, a, lda):
		return -3
	}
	if k == 0 {
		return 0
	}
	if lapack64.Getrf(general(m, n, a, lda), ipiv[:k]) {
		return 0
	}
	return Info(firstZeroDiag(k, a, lda))
}

// Dgetri inverts A from its Dgetrf factors. A singular U leaves a untouched.
func (Gonum) Dgetri(n int, a []float64, lda int, ipiv []int) Info {
	switch {
	case n < 0:
		return -1
	case lda < max(1, n):
		return -3
	case !fits(n, n, lda, len(a)):
		return -2
	case len(ipiv) < n:
		return -4
	case hasNonFinite(n, n, a, lda):
		return -2
	}
	if n == 0 {
		return 0
	}
	if z := firstZeroDiag(n, a, lda); z != 0 {
		return Info(z)
	}
	g := general(n, n, a, lda)
	work := workspace(func(w []float64, l int) { lapack64.Getri(g, ipiv[:n], w, l) })
	if lwork := len(work); lwork < n {
		work = make([]float64, n)
	}
	if !lapack64.Getri(g, ipiv[:n], work, len(work)) {
		return Info(max(1, firstZeroDiag(n, a, lda)))
	}
	return 0
}

// Dgesv solves A*X = B through Dgetrf/Getrs.
func (g Gonum) Dgesv(n, nrhs int, a []float64, lda int, ipiv []int, b []float64, ldb int) Info {
	switch {
	case n < 0:
		return -1
	case nrhs < 0:
		return -2
	case lda < max(1, n):
		return -4
	case !fits(n, n, lda, len(a)):
		return -3
	case len(ipiv) < n:
		return -5
	case ldb < max(1, nrhs):
		return -7
	case !fits(n, nrhs, ldb, len(b)):
		return -6
	case hasNonFinite(n, n, a, lda):
		return -3
	case hasNonFinite(n, nrhs, b, ldb):
		return -6
	}
	if n == 0 {
		return 0
	}
	if info := g.Dgetrf(n, n, a, lda, ipiv); info != 0 {
		return info
	}
	if nrhs == 0 {
		return 0
	}
	lapack64.Getrs(blas.NoTrans, general(n, n, a, lda), general(n, nrhs, b, ldb), ipiv[:n])
	return 0
}

// Dgels solves min‖A*X - B‖ for full-rank A (QR when m ≥ n, LQ otherwise).
// info > 0 is the index of the first zero diagonal of the triangular factor.
func (Gonum) Dgels(m, n, nrhs int, a []float64, lda int, b []float64, ldb int) Info {
	mn := max(m, n)
	switch {
	case m < 0:
		return -1
	case n < 0:
		return -2
	case nrhs < 0:
		return -3
	case lda < max(1, n):
		return -5
	case !fits(m, n, lda, len(a)):
		return -4
	case ldb < max(1, nrhs):
		return -7
	case !fits(mn, nrhs, ldb, len(b)):
		return -6
	case hasNonFinite(m, n, a, lda):
		return -4
	case hasNonFinite(m, nrhs, b, ldb):
		return -6
	}
	if min(m, n) == 0 || nrhs == 0 {
		return 0
	}
	ga := general(m, n, a, lda)
	gb := general(mn, nrhs, b, ldb)
	work := workspace(func(w []float64, l int) { lapack64.Gels(blas.NoTrans, ga, gb, w, l) })
	if lapack64.Gels(blas.NoTrans, ga, gb, work, len(work)) {
		return 0
	}
	return Info(max(1, firstZeroDiag(min(m, n), a, lda)))
}

// Dgeev computes eigenvalues only.
// info > 0: the QR algorithm failed; wr[info:], wi[info:] hold the converged values.
func (Gonum) Dgeev(n int, a []float64, lda int, wr, wi []float64) Info {
	switch {
	case n < 0:
		return -1
	case lda < max(1, n):
		return -3
	case !fits(n, n, lda, len(a)):
		return -2
	case len(wr) < n:
		return -4
	case len(wi) < n:
		return -5
	case hasNonFinite(n, n, a, lda):
		return -2
	}
	if n == 0 {
		return 0
	}
	ga := general(n, n, a, lda)
	none := blas64.General{Stride: 1}
	work := workspace(func(w []float64, l int) {
		lapack64.Geev(lapack.LeftEVNone, lapack.RightEVNone, ga, wr[:n], wi[:n], none, none, w, l)
	})
	if len(work) < 3*n {
		work = make([]float64, 3*n)
	}
	first := lapack64.Geev(lapack.LeftEVNone, lapack.RightEVNone, ga, wr[:n], wi[:n], none, none, work, len(work))
	return Info(first)
}

// Dgesvd computes the SVD. job is lapack.SVDAll (U and Vᵀ) or lapack.SVDNone (values only).
// info > 0: the bidiagonal QR iteration did not converge.
func (Gonum) Dgesvd(job lapack.SVDJob, m, n int, a []float64, lda int, s, u []float64, ldu int, vt []float64, ldvt int) Info {
	all := job == lapack.SVDAll
	k := min(m, n)
	switch {
	case !all && job != lapack.SVDNone:
		return -1
	case m < 0:
		return -2
	case n < 0:
		return -3
	case lda < max(1, n):
		return -5
	case !fits(m, n, lda, len(a)):
		return -4
	case len(s) < k:
		return -6
	case all && ldu < max(1, m):
		return -8
	case all && !fits(m, m, ldu, len(u)):
		return -7
	case all && ldvt < max(1, n):
		return -10
	case all && !fits(n, n, ldvt, len(vt)):
		return -9
	case hasNonFinite(m, n, a, lda):
		return -4
	}
	if k == 0 {
		return 0
	}
	ga := general(m, n, a, lda)
	gu := blas64.General{Stride: 1}
	gvt := blas64.General{Stride: 1}
	if all {
		gu = general(m, m, u, ldu)
		gvt = general(n, n, vt, ldvt)
	}
	work := workspace(func(w []float64, l int) { lapack64.Gesvd(job, job, ga, gu, gvt, s[:k], w, l) })
	if minWork := max(3*k+max(m, n), 5*k); len(work) < minWork {
		work = make([]float64, minWork)
	}
	if !lapack64.Gesvd(job, job, ga, gu, gvt, s[:k], work, len(work)) {
		return 1
	}
	return 0
}

// Dgeqrf computes A = Q*R.
func (Gonum) Dgeqrf(m, n int, a []float64, lda int, tau []float64) Info {
	k := min(m, n)
	switch {
	case m < 0:
		return -1
	case n < 0:
		return -2
	case lda < max(1, n):
		return -4
	case !fits(m, n, lda, len(a)):
		return -3
	case len(tau) < k:
		return -5
	case hasNonFinite(m, n, a, lda):
		return -3
	}
	if k == 0 {
		return 0
	}
	ga := general(m, n, a, lda)
	work := workspace(func(w []float64, l int) { lapack64.Geqrf(ga, tau[:k], w, l) })
	if len(work) < n {
		work = make([]float64, n)
	}
	lapack64.Geqrf(ga, tau[:k], work, len(work))
	return 0
}

// Dorgqr overwrites the m×n block of a with the first n columns of Q.
func (Gonum) Dorgqr(m, n, k int, a []float64, lda int, tau []float64) Info {
	switch {
	case m < 0:
		return -1
	case n < 0 || n > m:
		return -2
	case k < 0 || k > n:
		return -3
	case lda < max(1, n):
		return -5
	case !fits(m, n, lda, len(a)):
		return -4
	case len(tau) < k:
		return -6
	}
	if n == 0 {
		return 0
	}
	ga := general(m, n, a, lda)
	work := workspace(func(w []float64, l int) { lapack64.Orgqr(ga, tau[:k], w, l) })
	if len(work) < n {
		work = make([]float64, n)
	}
	lapack64.Orgqr(ga, tau[:k], work, len(work))
	return 0
}

// Dgelqf computes A = L*Q.
func (Gonum) Dgelqf(m, n int, a []float64, lda int, tau []float64) Info {
	k := min(m, n)
	switch {
	case m < 0:
		return -1
	case n < 0:
		return -2
	case lda < max(1, n):
		return -4
	case !fits(m, n, lda, len(a)):
		return -3
	case len(tau) < k:
		return -5
	case hasNonFinite(m, n, a, lda):
		return -3
	}
	if k == 0 {
		return 0
	}
	ga := general(m, n, a, lda)
	work := workspace(func(w []float64, l int) { lapack64.Gelqf(ga, tau[:k], w, l) })
	if len(work) < m {
		work = make([]float64, m)
	}
	lapack64.Gelqf(ga, tau[:k], work, len(work))
	return 0
}

// Dorglq overwrites the m×n block of a with the first m rows of Q.
func (Gonum) Dorglq(m, n, k int, a []float64, lda int, tau []float64) Info {
	switch {
	case m < 0:
		return -1
	case n < m:
		return -2
	case k < 0 || k > m:
		return -3
	case lda < max(1, n):
		return -5
	case !fits(m, n, lda, len(a)):
		return -4
	case len(tau) < k:
		return -6
	}
	if m == 0 {
		return 0
	}
	ga := general(m, n, a, lda)
	work := workspace(func(w []float64, l int) { lapack64.Orglq(ga, tau[:k], w, l) })
	if len(work) < m {
		work = make([]float64, m)
	}
	lapack64.Orglq(ga, tau[:k], work, len(work))
	return 0
}
