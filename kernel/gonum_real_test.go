// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/katalvlaran/lvnum/kernel"
)

const tol = 1e-10

var k kernel.Gonum

// matmul returns the m×n product of row-major a (m×p) and b (p×n).
func matmul(m, p, n int, a, b []float64) []float64 {
	c := make([]float64, m*n)
	var i, j, l int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			for l = 0; l < p; l++ {
				c[i*n+j] += a[i*p+l] * b[l*n+j]
			}
		}
	}
	return c
}

func requireClose(t *testing.T, want, got []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], eps, "index %d", i)
	}
}

func TestDgetrfDgetri_Inverse(t *testing.T) {
	a := []float64{4, 7, 2, 3, 6, 1, 2, 5, 3}
	lu := append([]float64(nil), a...)
	ipiv := make([]int, 3)

	require.Equal(t, kernel.Info(0), k.Dgetrf(3, 3, lu, 3, ipiv))
	require.Equal(t, kernel.Info(0), k.Dgetri(3, lu, 3, ipiv))
	requireClose(t, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, matmul(3, 3, 3, a, lu), tol)
}

func TestDgetrf_Singular(t *testing.T) {
	a := []float64{1, 2, 2, 4}
	ipiv := make([]int, 2)
	info := k.Dgetrf(2, 2, a, 2, ipiv)
	require.Equal(t, kernel.Info(2), info, "second pivot is zero")
	require.Equal(t, kernel.Info(2), k.Dgetri(2, a, 2, ipiv))
}

func TestDgetrf_Arguments(t *testing.T) {
	tests := []struct {
		name string
		call func() kernel.Info
		want kernel.Info
	}{
		{"negative m", func() kernel.Info { return k.Dgetrf(-1, 2, make([]float64, 4), 2, make([]int, 2)) }, -1},
		{"short lda", func() kernel.Info { return k.Dgetrf(2, 2, make([]float64, 4), 1, make([]int, 2)) }, -4},
		{"short a", func() kernel.Info { return k.Dgetrf(2, 2, make([]float64, 3), 2, make([]int, 2)) }, -3},
		{"short ipiv", func() kernel.Info { return k.Dgetrf(2, 2, make([]float64, 4), 2, make([]int, 1)) }, -5},
		{"nan", func() kernel.Info { return k.Dgetrf(1, 1, []float64{math.NaN()}, 1, make([]int, 1)) }, -3},
		{"+inf", func() kernel.Info { return k.Dgetrf(1, 1, []float64{math.Inf(1)}, 1, make([]int, 1)) }, -3},
		{"-inf", func() kernel.Info { return k.Dgetrf(1, 1, []float64{math.Inf(-1)}, 1, make([]int, 1)) }, -3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.call())
		})
	}
	require.True(t, kernel.IsNonFinite(kernel.RoutineDgetrf, -3))
	require.False(t, kernel.IsNonFinite(kernel.RoutineDgetrf, -4))
	require.False(t, kernel.IsNonFinite(kernel.RoutineDgetrf, 1))
}

func TestDgesv(t *testing.T) {
	a := []float64{2, 0, 0, 3}
	b := []float64{4, 9}
	require.Equal(t, kernel.Info(0), k.Dgesv(2, 1, a, 2, make([]int, 2), b, 1))
	requireClose(t, []float64{2, 3}, b, tol)

	nan := []float64{1, 0, 0, 1}
	require.Equal(t, kernel.Info(-6), k.Dgesv(2, 1, nan, 2, make([]int, 2), []float64{1, math.NaN()}, 1))
}

func TestDgels_Overdetermined(t *testing.T) {
	// y = 1 + 2x sampled exactly at x = 0,1,2,3.
	a := []float64{1, 0, 1, 1, 1, 2, 1, 3}
	b := []float64{1, 3, 5, 7}
	require.Equal(t, kernel.Info(0), k.Dgels(4, 2, 1, a, 2, b, 1))
	requireClose(t, []float64{1, 2}, b[:2], tol)
}

func TestDgels_RankDeficient(t *testing.T) {
	a := []float64{1, 0, 2, 0, 3, 0}
	b := []float64{1, 2, 3}
	require.Greater(t, int(k.Dgels(3, 2, 1, a, 2, b, 1)), 0)
}

func TestDgelsy(t *testing.T) {
	t.Run("rank deficient minimum norm", func(t *testing.T) {
		a := []float64{1, 1, 1, 1, 1, 1}
		b := []float64{2, 2, 2}
		jpvt := make([]int, 2)
		rank, info := k.Dgelsy(3, 2, 1, a, 2, b, 1, jpvt, 1e-8)
		require.Equal(t, kernel.Info(0), info)
		require.Equal(t, 1, rank)
		requireClose(t, []float64{1, 1}, b[:2], 1e-12)
	})
	t.Run("full rank matches exact fit", func(t *testing.T) {
		a := []float64{1, 0, 1, 1, 1, 2, 1, 3}
		b := []float64{1, 3, 5, 7}
		rank, info := k.Dgelsy(4, 2, 1, a, 2, b, 1, make([]int, 2), 1e-8)
		require.Equal(t, kernel.Info(0), info)
		require.Equal(t, 2, rank)
		requireClose(t, []float64{1, 2}, b[:2], tol)
	})
	t.Run("underdetermined", func(t *testing.T) {
		// x + y + z = 3, minimum norm (1,1,1).
		a := []float64{1, 1, 1}
		b := []float64{3, 0, 0}
		rank, info := k.Dgelsy(1, 3, 1, a, 3, b, 1, make([]int, 3), 1e-8)
		require.Equal(t, kernel.Info(0), info)
		require.Equal(t, 1, rank)
		requireClose(t, []float64{1, 1, 1}, b, 1e-12)
	})
	t.Run("bad rcond", func(t *testing.T) {
		_, info := k.Dgelsy(1, 1, 1, []float64{1}, 1, []float64{1}, 1, make([]int, 1), -1)
		require.Equal(t, kernel.Info(-9), info)
	})
}

func TestDgeev(t *testing.T) {
	t.Run("diagonal", func(t *testing.T) {
		wr, wi := make([]float64, 2), make([]float64, 2)
		require.Equal(t, kernel.Info(0), k.Dgeev(2, []float64{2, 0, 0, 3}, 2, wr, wi))
		sort.Float64s(wr)
		requireClose(t, []float64{2, 3}, wr, tol)
		requireClose(t, []float64{0, 0}, wi, tol)
	})
	t.Run("rotation", func(t *testing.T) {
		wr, wi := make([]float64, 2), make([]float64, 2)
		require.Equal(t, kernel.Info(0), k.Dgeev(2, []float64{0, -1, 1, 0}, 2, wr, wi))
		requireClose(t, []float64{0, 0}, wr, tol)
		sort.Float64s(wi)
		requireClose(t, []float64{-1, 1}, wi, tol)
	})
	t.Run("nan", func(t *testing.T) {
		info := k.Dgeev(1, []float64{math.NaN()}, 1, make([]float64, 1), make([]float64, 1))
		require.Equal(t, kernel.Info(-2), info)
		require.True(t, kernel.IsNonFinite(kernel.RoutineDgeev, info))
	})
}

func TestDgesvd(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		s := make([]float64, 2)
		require.Equal(t, kernel.Info(0), k.Dgesvd(lapack.SVDNone, 2, 2, []float64{4, 0, 0, 9}, 2, s, nil, 1, nil, 1))
		requireClose(t, []float64{9, 4}, s, tol)
	})
	t.Run("reconstruct", func(t *testing.T) {
		a := []float64{1, 2, 3, 4, 5, 6}
		work := append([]float64(nil), a...)
		s := make([]float64, 2)
		u := make([]float64, 9)
		vt := make([]float64, 4)
		require.Equal(t, kernel.Info(0), k.Dgesvd(lapack.SVDAll, 3, 2, work, 2, s, u, 3, vt, 2))
		sigma := []float64{s[0], 0, 0, s[1], 0, 0}
		requireClose(t, a, matmul(3, 2, 2, matmul(3, 3, 2, u, sigma), vt), 1e-9)
	})
	t.Run("nan", func(t *testing.T) {
		info := k.Dgesvd(lapack.SVDNone, 1, 1, []float64{math.NaN()}, 1, make([]float64, 1), nil, 1, nil, 1)
		require.Equal(t, kernel.Info(-4), info)
		require.True(t, kernel.IsNonFinite(kernel.RoutineDgesvd, info))
	})
	t.Run("inf", func(t *testing.T) {
		a := []float64{math.Inf(1), 0, 0, 1}
		info := k.Dgesvd(lapack.SVDNone, 2, 2, a, 2, make([]float64, 2), nil, 1, nil, 1)
		require.Equal(t, kernel.Info(-4), info)
	})
	t.Run("bad job", func(t *testing.T) {
		info := k.Dgesvd(lapack.SVDStore, 1, 1, []float64{1}, 1, make([]float64, 1), nil, 1, nil, 1)
		require.Equal(t, kernel.Info(-1), info)
	})
}

func TestDgeqrfDorgqr(t *testing.T) {
	a := []float64{12, -51, 4, 6, 167, -68, -4, 24, -41}
	qr := append([]float64(nil), a...)
	tau := make([]float64, 3)
	require.Equal(t, kernel.Info(0), k.Dgeqrf(3, 3, qr, 3, tau))

	r := make([]float64, 9)
	var i, j int
	for i = 0; i < 3; i++ {
		for j = i; j < 3; j++ {
			r[i*3+j] = qr[i*3+j]
		}
	}
	require.Equal(t, kernel.Info(0), k.Dorgqr(3, 3, 3, qr, 3, tau))
	requireClose(t, a, matmul(3, 3, 3, qr, r), 1e-9)
	require.InDelta(t, 14.0, math.Abs(r[0]), 1e-12)
}

func TestDgelqfDorglq(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	lq := append([]float64(nil), a...)
	tau := make([]float64, 2)
	require.Equal(t, kernel.Info(0), k.Dgelqf(2, 3, lq, 3, tau))

	l := []float64{lq[0], 0, lq[3], lq[4]}
	require.Equal(t, kernel.Info(0), k.Dorglq(2, 3, 2, lq, 3, tau))
	requireClose(t, a, matmul(2, 2, 3, l, lq), 1e-9)
}

func TestDgemvDgemm(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5, 6}
	y := make([]float64, 2)
	require.Equal(t, kernel.Info(0), k.Dgemv(blas.NoTrans, 2, 3, 1, a, 3, []float64{1, 1, 1}, 0, y))
	requireClose(t, []float64{6, 15}, y, tol)

	yt := make([]float64, 3)
	require.Equal(t, kernel.Info(0), k.Dgemv(blas.Trans, 2, 3, 1, a, 3, []float64{1, 1}, 0, yt))
	requireClose(t, []float64{5, 7, 9}, yt, tol)

	require.Equal(t, kernel.Info(-7), k.Dgemv(blas.NoTrans, 2, 3, 1, a, 3, []float64{1, 1}, 0, y))

	c := make([]float64, 4)
	require.Equal(t, kernel.Info(0), k.Dgemm(blas.NoTrans, blas.Trans, 2, 2, 3, 1, a, 3, a, 3, 0, c, 2))
	requireClose(t, []float64{14, 32, 32, 77}, c, tol)
	require.Equal(t, kernel.Info(-1), k.Dgemm('x', blas.NoTrans, 1, 1, 1, 1, a, 1, a, 1, 0, c, 1))
}

func TestNorms(t *testing.T) {
	require.InDelta(t, 5.0, k.Dnrm2(2, []float64{3, 4}), tol)
	require.InDelta(t, math.Sqrt(30), k.Dlange(2, 2, []float64{1, 2, 3, 4}, 2), tol)
	require.True(t, math.IsNaN(k.Dnrm2(3, []float64{1})))
	require.Equal(t, 0.0, k.Dnrm2(0, nil))
}
