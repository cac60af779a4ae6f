// SPDX-License-Identifier: MIT

package kernel

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

func cgeneral(m, n int, a []complex128, lda int) cblas128.General {
	return cblas128.General{Rows: m, Cols: n, Stride: max(1, lda), Data: a}
}

// Zgemv computes y = alpha*op(A)*x + beta*y; ConjTrans applies Aᴴ.
func (Gonum) Zgemv(trans blas.Transpose, m, n int, alpha complex128, a []complex128, lda int, x []complex128, beta complex128, y []complex128) Info {
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
	cblas128.Gemv(trans, alpha, cgeneral(m, n, a, lda),
		cblas128.Vector{N: lx, Inc: 1, Data: x}, beta,
		cblas128.Vector{N: ly, Inc: 1, Data: y})
	return 0
}

// Zgemm computes C = alpha*op(A)*op(B) + beta*C.
func (Gonum) Zgemm(transA, transB blas.Transpose, m, n, k int, alpha complex128, a []complex128, lda int, b []complex128, ldb int, beta complex128, c []complex128, ldc int) Info {
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
		var i, j int
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				c[i*ldc+j] *= beta
			}
		}
		return 0
	}
	cblas128.Gemm(transA, transB, alpha, cgeneral(ar, ac, a, lda), cgeneral(br, bc, b, ldb), beta, cgeneral(m, n, c, ldc))
	return 0
}

// Dznrm2 returns ‖x[:n]‖₂, or NaN for invalid arguments.
func (Gonum) Dznrm2(n int, x []complex128) float64 {
	if n < 0 || len(x) < n {
		return math.NaN()
	}
	if n == 0 {
		return 0
	}
	return cblas128.Nrm2(cblas128.Vector{N: n, Inc: 1, Data: x})
}

// Zlange returns the Frobenius norm of A, or NaN for invalid arguments.
// Row norms are combined with Hypot so intermediate squares never overflow.
func (Gonum) Zlange(m, n int, a []complex128, lda int) float64 {
	if m < 0 || n < 0 || lda < max(1, n) || !fits(m, n, lda, len(a)) {
		return math.NaN()
	}
	var (
		i    int
		norm float64
	)
	if n == 0 {
		return 0
	}
	for i = 0; i < m; i++ {
		norm = math.Hypot(norm, cblas128.Nrm2(cblas128.Vector{N: n, Inc: 1, Data: a[i*lda : i*lda+n]}))
	}
	return norm
}

// Zgetrf computes A = P*L*U with partial pivoting (unblocked right-looking variant).
//
// Implementation:
//   - Stage 1: for each column j pick the pivot with the largest |Re|+|Im| (Iamax), swap rows.
//   - Stage 2: scale the sub-column by 1/pivot (Scal) and apply the rank-1 update (Geru).
//
// A zero pivot is recorded in info (first occurrence) and the elimination continues,
// matching LAPACK: the factors are complete but U is singular.
//
// Complexity: Time O(m*n*min(m,n)), Space O(1).
func (Gonum) Zgetrf(m, n int, a []complex128, lda int, ipiv []int) Info {
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
	case hasNonFiniteC(m, n, a, lda):
		return -3
	}
	var (
		j, p int
		info Info
	)
	for j = 0; j < k; j++ {
		p = j + cblas128.Iamax(cblas128.Vector{N: m - j, Inc: lda, Data: a[j*lda+j:]})
		ipiv[j] = p
		if a[p*lda+j] != 0 {
			if p != j {
				cblas128.Swap(
					cblas128.Vector{N: n, Inc: 1, Data: a[j*lda : j*lda+n]},
					cblas128.Vector{N: n, Inc: 1, Data: a[p*lda : p*lda+n]})
			}
			if j+1 < m {
				cblas128.Scal(1/a[j*lda+j], cblas128.Vector{N: m - j - 1, Inc: lda, Data: a[(j+1)*lda+j:]})
			}
		} else if info == 0 {
			info = Info(j + 1)
		}
		if j+1 < m && j+1 < n {
			cblas128.Geru(-1,
				cblas128.Vector{N: m - j - 1, Inc: lda, Data: a[(j+1)*lda+j:]},
				cblas128.Vector{N: n - j - 1, Inc: 1, Data: a[j*lda+j+1:]},
				cgeneral(m-j-1, n-j-1, a[(j+1)*lda+j+1:], lda))
		}
	}
	return info
}

// zgetrs solves A*X = B in place from Zgetrf factors (row swaps, unit-L, then U).
func zgetrs(n, nrhs int, a []complex128, lda int, ipiv []int, b []complex128, ldb int) {
	var i int
	for i = 0; i < n; i++ {
		if p := ipiv[i]; p != i {
			cblas128.Swap(
				cblas128.Vector{N: nrhs, Inc: 1, Data: b[i*ldb : i*ldb+nrhs]},
				cblas128.Vector{N: nrhs, Inc: 1, Data: b[p*ldb : p*ldb+nrhs]})
		}
	}
	gb := cgeneral(n, nrhs, b, ldb)
	cblas128.Trsm(blas.Left, blas.NoTrans, 1, cblas128.Triangular{
		N: n, Stride: lda, Data: a, Uplo: blas.Lower, Diag: blas.Unit,
	}, gb)
	cblas128.Trsm(blas.Left, blas.NoTrans, 1, cblas128.Triangular{
		N: n, Stride: lda, Data: a, Uplo: blas.Upper, Diag: blas.NonUnit,
	}, gb)
}

// Zgetri overwrites the Zgetrf factors of A with A⁻¹ by solving A*X = I.
// A singular U (info > 0) leaves a untouched.
func (Gonum) Zgetri(n int, a []complex128, lda int, ipiv []int) Info {
	switch {
	case n < 0:
		return -1
	case lda < max(1, n):
		return -3
	case !fits(n, n, lda, len(a)):
		return -2
	case len(ipiv) < n:
		return -4
	case hasNonFiniteC(n, n, a, lda):
		return -2
	}
	if n == 0 {
		return 0
	}
	if z := firstZeroDiagc(n, a, lda); z != 0 {
		return Info(z)
	}
	x := make([]complex128, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		x[i*n+i] = 1
	}
	zgetrs(n, n, a, lda, ipiv, x, n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a[i*lda+j] = x[i*n+j]
		}
	}
	return 0
}

// Zgesv solves A*X = B for square A; on return a holds the LU factors and b holds X.
func (g Gonum) Zgesv(n, nrhs int, a []complex128, lda int, ipiv []int, b []complex128, ldb int) Info {
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
	case hasNonFiniteC(n, n, a, lda):
		return -3
	case hasNonFiniteC(n, nrhs, b, ldb):
		return -6
	}
	if n == 0 {
		return 0
	}
	if info := g.Zgetrf(n, n, a, lda, ipiv); info != 0 {
		return info
	}
	if nrhs > 0 {
		zgetrs(n, nrhs, a, lda, ipiv, b, ldb)
	}
	return 0
}
