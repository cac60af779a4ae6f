// SPDX-License-Identifier: MIT

package kernel

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas"
)

// fits reports whether an m×n row-major block with stride ld fits in size elements.
func fits(m, n, ld, size int) bool {
	if m == 0 || n == 0 {
		return true
	}
	return size >= (m-1)*ld+n
}

func validTrans(t blas.Transpose) bool {
	return t == blas.NoTrans || t == blas.Trans || t == blas.ConjTrans
}

// hasNonFinite scans the m×n block of a for NaN or ±Inf.
func hasNonFinite(m, n int, a []float64, lda int) bool {
	var i, j int
	var x float64
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			x = a[i*lda+j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return true
			}
		}
	}
	return false
}

func hasNonFiniteC(m, n int, a []complex128, lda int) bool {
	var i, j int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			if z := a[i*lda+j]; cmplx.IsNaN(z) || cmplx.IsInf(z) {
				return true
			}
		}
	}
	return false
}

// firstZeroDiag returns the 1-based index of the first exactly-zero diagonal entry of
// the leading k×k block, or 0.
func firstZeroDiag(k int, a []float64, lda int) int {
	var i int
	for i = 0; i < k; i++ {
		if a[i*lda+i] == 0 {
			return i + 1
		}
	}
	return 0
}

func firstZeroDiagc(k int, a []complex128, lda int) int {
	var i int
	for i = 0; i < k; i++ {
		if a[i*lda+i] == 0 {
			return i + 1
		}
	}
	return 0
}

// gemmDims returns the stored shape of op(X) given its logical rows×cols.
func gemmDims(t blas.Transpose, rows, cols int) (int, int) {
	if t == blas.NoTrans {
		return rows, cols
	}
	return cols, rows
}
