// SPDX-License-Identifier: MIT

package kernel

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas/cblas128"
)

const (
	// dlamchE is the relative machine precision used in deflation tests.
	dlamchE = 1.0 / (1 << 53)
	// zgeevItersPerEigenvalue bounds the QR sweeps spent on one eigenvalue, as in LAPACK (30*n overall).
	zgeevItersPerEigenvalue = 30
	// zgeevExceptionalEvery triggers an exceptional shift after this many stalled sweeps.
	zgeevExceptionalEvery = 10
)

func abs1(z complex128) float64 { return math.Abs(real(z)) + math.Abs(imag(z)) }

// Zgeev computes the eigenvalues of a square complex A; a is destroyed.
//
// Implementation:
//   - Stage 1: reduce A to upper Hessenberg form H = Pᴴ*A*P with Householder reflectors
//     P = I - 2*u*uᴴ/(uᴴu), u = x + e^{iθ}‖x‖e₁ (θ = arg x₀).
//   - Stage 2: single-shift complex QR on the active block [lo, hi]: Wilkinson shift from
//     the trailing 2×2, Givens sweep H-μI = QR, H ← RQ + μI, deflate when
//     |h[l,l-1]| ≤ ε(|h[l-1,l-1]| + |h[l,l]|).
//   - Stage 3: every 10 stalled sweeps use an exceptional shift to break cycles.
//
// Returns:
//   - 0 on success with w[:n] filled (order: deflation order, bottom-up).
//   - hi+1 (> 0) when 30*n sweeps were spent; w[hi+1:] hold the converged values.
//   - -2 when A contains NaN or ±Inf.
//
// Complexity:
//   - Time O(n³) typical, Space O(n).
func (Gonum) Zgeev(n int, a []complex128, lda int, w []complex128) Info {
	switch {
	case n < 0:
		return -1
	case lda < max(1, n):
		return -3
	case !fits(n, n, lda, len(a)):
		return -2
	case len(w) < n:
		return -4
	case hasNonFiniteC(n, n, a, lda):
		return -2
	}
	if n == 0 {
		return 0
	}
	hessenberg(n, a, lda)
	return hessenbergQR(n, a, lda, w)
}

// hessenberg reduces a to upper Hessenberg form in place by unitary similarity.
func hessenberg(n int, a []complex128, lda int) {
	u := make([]complex128, n)
	var (
		i, j, k   int
		alpha, uu float64
		phase, s  complex128
	)
	for k = 0; k < n-2; k++ {
		// x = a[k+1:n, k]
		alpha = cblas128.Nrm2(cblas128.Vector{N: n - k - 1, Inc: lda, Data: a[(k+1)*lda+k:]})
		if alpha == 0 {
			continue
		}
		phase = 1
		if x0 := a[(k+1)*lda+k]; x0 != 0 {
			phase = x0 / complex(cmplx.Abs(x0), 0)
		}
		for i = k + 1; i < n; i++ {
			u[i] = a[i*lda+k]
		}
		u[k+1] += phase * complex(alpha, 0)
		uu = 0
		for i = k + 1; i < n; i++ {
			uu += real(u[i])*real(u[i]) + imag(u[i])*imag(u[i])
		}
		if uu == 0 {
			continue
		}
		// Left: rows k+1..n-1, columns k..n-1.
		for j = k; j < n; j++ {
			s = 0
			for i = k + 1; i < n; i++ {
				s += cmplx.Conj(u[i]) * a[i*lda+j]
			}
			s *= complex(2/uu, 0)
			for i = k + 1; i < n; i++ {
				a[i*lda+j] -= s * u[i]
			}
		}
		// Right: all rows, columns k+1..n-1.
		for i = 0; i < n; i++ {
			s = 0
			for j = k + 1; j < n; j++ {
				s += a[i*lda+j] * u[j]
			}
			s *= complex(2/uu, 0)
			for j = k + 1; j < n; j++ {
				a[i*lda+j] -= s * cmplx.Conj(u[j])
			}
		}
		a[(k+1)*lda+k] = -phase * complex(alpha, 0)
		for i = k + 2; i < n; i++ {
			a[i*lda+k] = 0
		}
	}
}

// hessenbergQR runs the shifted QR iteration on an upper Hessenberg h and stores eigenvalues in w.
func hessenbergQR(n int, h []complex128, ldh int, w []complex128) Info {
	cs := make([]float64, n)
	sn := make([]complex128, n)
	var (
		hi, l, k, i, j int
		iter, total    int
		c              float64
		s, mu, x, y    complex128
		tst            float64
	)
	maxTotal := zgeevItersPerEigenvalue * max(10, n)
	hi = n - 1
	for hi >= 0 {
		// Look for a negligible subdiagonal entry.
		for l = hi; l > 0; l-- {
			tst = abs1(h[(l-1)*ldh+l-1]) + abs1(h[l*ldh+l])
			if tst == 0 {
				tst = 1
			}
			if abs1(h[l*ldh+l-1]) <= dlamchE*tst {
				h[l*ldh+l-1] = 0
				break
			}
		}
		if l == hi {
			w[hi] = h[hi*ldh+hi]
			hi--
			iter = 0
			continue
		}
		if total >= maxTotal {
			return Info(hi + 1)
		}
		iter++
		total++

		if iter%zgeevExceptionalEvery == 0 {
			mu = h[hi*ldh+hi] + complex(0.75*abs1(h[hi*ldh+hi-1]), 0)
		} else {
			mu = wilkinsonShift(h[(hi-1)*ldh+hi-1], h[(hi-1)*ldh+hi], h[hi*ldh+hi-1], h[hi*ldh+hi])
		}

		for i = l; i <= hi; i++ {
			h[i*ldh+i] -= mu
		}
		// H - μI = Q*R: rotations G_k zero h[k+1,k].
		for k = l; k < hi; k++ {
			c, s = givens(h[k*ldh+k], h[(k+1)*ldh+k])
			cs[k], sn[k] = c, s
			for j = k; j <= hi; j++ {
				x, y = h[k*ldh+j], h[(k+1)*ldh+j]
				h[k*ldh+j] = complex(c, 0)*x + s*y
				h[(k+1)*ldh+j] = -cmplx.Conj(s)*x + complex(c, 0)*y
			}
		}
		// R*Q: apply G_kᴴ on the right.
		for k = l; k < hi; k++ {
			c, s = cs[k], sn[k]
			for i = l; i <= min(k+2, hi); i++ {
				x, y = h[i*ldh+k], h[i*ldh+k+1]
				h[i*ldh+k] = complex(c, 0)*x + cmplx.Conj(s)*y
				h[i*ldh+k+1] = -s*x + complex(c, 0)*y
			}
		}
		for i = l; i <= hi; i++ {
			h[i*ldh+i] += mu
		}
	}
	return 0
}

// givens returns (c, s), c real, such that [c s; -conj(s) c]*[a; b] = [r; 0].
func givens(a, b complex128) (float64, complex128) {
	if b == 0 {
		return 1, 0
	}
	absA, absB := cmplx.Abs(a), cmplx.Abs(b)
	norm := math.Hypot(absA, absB)
	if absA == 0 {
		return 0, cmplx.Conj(b) / complex(absB, 0)
	}
	return absA / norm, (a / complex(absA, 0)) * cmplx.Conj(b) / complex(norm, 0)
}

// wilkinsonShift returns the eigenvalue of [[a, b], [c, d]] closest to d.
func wilkinsonShift(a, b, c, d complex128) complex128 {
	half := (a - d) / 2
	disc := cmplx.Sqrt(half*half + b*c)
	den := half + disc
	if alt := half - disc; cmplx.Abs(alt) > cmplx.Abs(den) {
		den = alt
	}
	if den == 0 {
		return d
	}
	return d - b*c/den
}
