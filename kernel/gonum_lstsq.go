// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
)

// Dgelsy computes the minimum-norm solution of min‖A*X - B‖ for a possibly
// rank-deficient m×n A using a complete orthogonal factorization.
//
// Implementation:
//   - Stage 1: column-pivoted QR, A*P = Q*R (Geqp3, every column free).
//   - Stage 2: effective rank = number of leading |R_ii| > rcond*|R_00|.
//   - Stage 3: B ← Qᵀ*B (Ormqr).
//   - Stage 4: rank == n ⇒ back-substitute with R₁₁;
//     rank < n ⇒ factor [R₁₁ R₁₂] = L*Z (Gelqf), solve L, then apply Zᵀ (Ormlq)
//     so the trailing components of the solution are minimal.
//   - Stage 5: undo the column permutation, X[jpvt[j]] = Y[j].
//
// Inputs:
//   - b has max(m,n) rows of stride ldb; on return rows [0,n) hold X.
//   - jpvt (len ≥ n) returns the zero-based pivot order: column j of A*P was column jpvt[j] of A.
//   - rcond ≥ 0 is the relative threshold deciding the effective rank.
//
// Returns:
//   - rank: the effective rank.
//   - Info: 0 or -k for an illegal argument k (non-finite a → -4, b → -6).
//
// Complexity:
//   - Time O(m*n*min(m,n) + n²*nrhs), Space O(n*(rank+nrhs)).
func (Gonum) Dgelsy(m, n, nrhs int, a []float64, lda int, b []float64, ldb int, jpvt []int, rcond float64) (int, Info) {
	mn := max(m, n)
	k := min(m, n)
	switch {
	case m < 0:
		return 0, -1
	case n < 0:
		return 0, -2
	case nrhs < 0:
		return 0, -3
	case lda < max(1, n):
		return 0, -5
	case !fits(m, n, lda, len(a)):
		return 0, -4
	case ldb < max(1, nrhs):
		return 0, -7
	case !fits(mn, nrhs, ldb, len(b)):
		return 0, -6
	case len(jpvt) < n:
		return 0, -8
	case rcond < 0 || math.IsNaN(rcond):
		return 0, -9
	case hasNonFinite(m, n, a, lda):
		return 0, -4
	case hasNonFinite(m, nrhs, b, ldb):
		return 0, -6
	}
	if k == 0 || nrhs == 0 {
		return 0, 0
	}

	// Stage 1: A*P = Q*R.
	var j int
	for j = 0; j < n; j++ {
		jpvt[j] = -1
	}
	ga := general(m, n, a, lda)
	tau := make([]float64, k)
	work := workspace(func(w []float64, l int) { lapack64.Geqp3(ga, jpvt[:n], tau, w, l) })
	if len(work) < 3*n+1 {
		work = make([]float64, 3*n+1)
	}
	lapack64.Geqp3(ga, jpvt[:n], tau, work, len(work))

	// Stage 2: effective rank.
	var rank int
	if r00 := math.Abs(a[0]); r00 > 0 {
		for rank < k && math.Abs(a[rank*lda+rank]) > rcond*r00 {
			rank++
		}
	}

	// Stage 3: B ← Qᵀ*B.
	gb := general(m, nrhs, b, ldb)
	work = workspace(func(w []float64, l int) { lapack64.Ormqr(blas.Left, blas.Trans, ga, tau, gb, w, l) })
	if len(work) < nrhs {
		work = make([]float64, nrhs)
	}
	lapack64.Ormqr(blas.Left, blas.Trans, ga, tau, gb, work, len(work))

	// Stage 4: solve for the permuted solution Y in rows [0,n).
	var i int
	for i = rank; i < n; i++ {
		for j = 0; j < nrhs; j++ {
			b[i*ldb+j] = 0
		}
	}
	if rank > 0 {
		lead := general(rank, nrhs, b, ldb)
		if rank == n {
			blas64.Trsm(blas.Left, blas.NoTrans, 1, blas64.Triangular{
				N: rank, Stride: lda, Data: a, Uplo: blas.Upper, Diag: blas.NonUnit,
			}, lead)
		} else {
			t := make([]float64, rank*n)
			for i = 0; i < rank; i++ {
				copy(t[i*n+i:(i+1)*n], a[i*lda+i:i*lda+n])
			}
			gt := general(rank, n, t, n)
			tauz := make([]float64, rank)
			work = workspace(func(w []float64, l int) { lapack64.Gelqf(gt, tauz, w, l) })
			if len(work) < rank {
				work = make([]float64, rank)
			}
			lapack64.Gelqf(gt, tauz, work, len(work))
			blas64.Trsm(blas.Left, blas.NoTrans, 1, blas64.Triangular{
				N: rank, Stride: n, Data: t, Uplo: blas.Lower, Diag: blas.NonUnit,
			}, lead)
			gy := general(n, nrhs, b, ldb)
			work = workspace(func(w []float64, l int) { lapack64.Ormlq(blas.Left, blas.Trans, gt, tauz, gy, w, l) })
			if len(work) < nrhs {
				work = make([]float64, nrhs)
			}
			lapack64.Ormlq(blas.Left, blas.Trans, gt, tauz, gy, work, len(work))
		}
	}

	// Stage 5: X[jpvt[j]] = Y[j].
	col := make([]float64, n)
	var c int
	for c = 0; c < nrhs; c++ {
		for j = 0; j < n; j++ {
			col[jpvt[j]] = b[j*ldb+c]
		}
		for j = 0; j < n; j++ {
			b[j*ldb+c] = col[j]
		}
	}
	return rank, 0
}
