// SPDX-License-Identifier: MIT

package kernel

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/blas/cblas128"
)

// zgesvdMaxSweeps bounds the one-sided Jacobi sweeps before reporting non-convergence.
const zgesvdMaxSweeps = 60

// Zgesvd computes the singular values of a complex m×n A (descending) into s[:min(m,n)].
//
// Implementation:
//   - Stage 1: copy the columns of A (or of Aᴴ when n > m) into a column-major work set,
//     so there are q = min(m,n) columns of length p = max(m,n).
//   - Stage 2: one-sided Jacobi (Hestenes): for every column pair with
//     γ = a_iᴴa_j, α = ‖a_i‖², β = ‖a_j‖² and |γ| > tol*√(αβ), rotate
//     a_i ← c*a_i - s*ē*a_j, a_j ← s*e*a_i + c*a_j with e = γ/|γ|,
//     ζ = (β-α)/(2|γ|), t = sign(ζ)/(|ζ|+√(1+ζ²)), c = 1/√(1+t²), s = c*t.
//   - Stage 3: singular values are the column norms, sorted descending.
//
// Returns:
//   - 0 on success; 1 if 60 sweeps did not orthogonalize the columns (s still filled);
//     -3 when A contains NaN or ±Inf.
//
// Complexity:
//   - Time O(sweeps * p * q²), Space O(p*q).
func (Gonum) Zgesvd(m, n int, a []complex128, lda int, s []float64) Info {
	q := min(m, n)
	switch {
	case m < 0:
		return -1
	case n < 0:
		return -2
	case lda < max(1, n):
		return -4
	case !fits(m, n, lda, len(a)):
		return -3
	case len(s) < q:
		return -5
	case hasNonFiniteC(m, n, a, lda):
		return -3
	}
	if q == 0 {
		return 0
	}
	p := max(m, n)
	cols := make([][]complex128, q)
	var i, j int
	for j = 0; j < q; j++ {
		cols[j] = make([]complex128, p)
	}
	if m >= n {
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				cols[j][i] = a[i*lda+j]
			}
		}
	} else {
		// Columns of Aᴴ are the conjugated rows of A.
		for i = 0; i < m; i++ {
			for j = 0; j < n; j++ {
				cols[i][j] = cmplx.Conj(a[i*lda+j])
			}
		}
	}

	info := jacobiSweeps(p, cols)
	for j = 0; j < q; j++ {
		s[j] = cblas128.Nrm2(cblas128.Vector{N: p, Inc: 1, Data: cols[j]})
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(s[:q])))
	return info
}

// jacobiSweeps orthogonalizes cols in place; returns 1 if zgesvdMaxSweeps were exhausted.
func jacobiSweeps(p int, cols [][]complex128) Info {
	tol := float64(max(p, 4)) * dlamchE
	var (
		sweep, i, j, k    int
		rotated           bool
		alpha, beta, absG float64
		zeta, t, c, sn    float64
		gamma, e, x, y    complex128
		vi, vj            cblas128.Vector
	)
	for sweep = 0; sweep < zgesvdMaxSweeps; sweep++ {
		rotated = false
		for i = 0; i < len(cols)-1; i++ {
			for j = i + 1; j < len(cols); j++ {
				vi = cblas128.Vector{N: p, Inc: 1, Data: cols[i]}
				vj = cblas128.Vector{N: p, Inc: 1, Data: cols[j]}
				alpha = real(cblas128.Dotc(vi, vi))
				beta = real(cblas128.Dotc(vj, vj))
				gamma = cblas128.Dotc(vi, vj)
				absG = cmplx.Abs(gamma)
				if absG == 0 || absG <= tol*math.Sqrt(alpha*beta) {
					continue
				}
				rotated = true
				e = gamma / complex(absG, 0)
				zeta = (beta - alpha) / (2 * absG)
				t = 1 / (math.Abs(zeta) + math.Sqrt(1+zeta*zeta))
				if zeta < 0 {
					t = -t
				}
				c = 1 / math.Sqrt(1+t*t)
				sn = c * t
				for k = 0; k < p; k++ {
					x, y = cols[i][k], cols[j][k]
					cols[i][k] = complex(c, 0)*x - complex(sn, 0)*cmplx.Conj(e)*y
					cols[j][k] = complex(sn, 0)*e*x + complex(c, 0)*y
				}
			}
		}
		if !rotated {
			return 0
		}
	}
	return 1
}
