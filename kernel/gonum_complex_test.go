// SPDX-License-Identifier: MIT

package kernel_test

import (
	"math"
	"math/cmplx"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/katalvlaran/lvnum/kernel"
)

func cmatmul(m, p, n int, a, b []complex128) []complex128 {
	c := make([]complex128, m*n)
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

func requireCClose(t *testing.T, want, got []complex128, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.LessOrEqual(t, cmplx.Abs(want[i]-got[i]), eps, "index %d: want %v got %v", i, want[i], got[i])
	}
}

// sortC orders by real part, then imaginary part.
func sortC(z []complex128) {
	sort.Slice(z, func(i, j int) bool {
		if math.Abs(real(z[i])-real(z[j])) > 1e-9 {
			return real(z[i]) < real(z[j])
		}
		return imag(z[i]) < imag(z[j])
	})
}

func TestZgetrfZgetri_Inverse(t *testing.T) {
	a := []complex128{1 + 1i, 2, 0, 3 - 1i, 1i, 1, 2, 0, 4 + 2i}
	lu := append([]complex128(nil), a...)
	ipiv := make([]int, 3)
	require.Equal(t, kernel.Info(0), k.Zgetrf(3, 3, lu, 3, ipiv))
	require.Equal(t, kernel.Info(0), k.Zgetri(3, lu, 3, ipiv))
	requireCClose(t, []complex128{1, 0, 0, 0, 1, 0, 0, 0, 1}, cmatmul(3, 3, 3, a, lu), 1e-12)
}

func TestZgetrf_Singular(t *testing.T) {
	a := []complex128{1i, 2i, 2, 4}
	ipiv := make([]int, 2)
	require.Equal(t, kernel.Info(2), k.Zgetrf(2, 2, a, 2, ipiv))
	require.Equal(t, kernel.Info(2), k.Zgetri(2, a, 2, ipiv))
}

func TestZgesv(t *testing.T) {
	a := []complex128{2i, 0, 0, 3}
	b := []complex128{4, 9i}
	require.Equal(t, kernel.Info(0), k.Zgesv(2, 1, a, 2, make([]int, 2), b, 1))
	requireCClose(t, []complex128{-2i, 3i}, b, 1e-14)

	info := k.Zgesv(1, 1, []complex128{1}, 1, make([]int, 1), []complex128{cmplx.NaN()}, 1)
	require.Equal(t, kernel.Info(-6), info)
	require.True(t, kernel.IsNonFinite(kernel.RoutineZgesv, info))
}

func TestZgeev(t *testing.T) {
	t.Run("rotation", func(t *testing.T) {
		w := make([]complex128, 2)
		require.Equal(t, kernel.Info(0), k.Zgeev(2, []complex128{0, -1, 1, 0}, 2, w))
		sortC(w)
		requireCClose(t, []complex128{-1i, 1i}, w, 1e-12)
	})
	t.Run("triangular", func(t *testing.T) {
		a := []complex128{1 + 1i, 5, 7i, 0, 2, 3, 0, 0, -1i}
		w := make([]complex128, 3)
		require.Equal(t, kernel.Info(0), k.Zgeev(3, a, 3, w))
		sortC(w)
		requireCClose(t, []complex128{-1i, 1 + 1i, 2}, w, 1e-12)
	})
	t.Run("agrees with real kernel", func(t *testing.T) {
		const n = 6
		rnd := rand.New(rand.NewSource(7))
		ar := make([]float64, n*n)
		ac := make([]complex128, n*n)
		for i := range ar {
			ar[i] = rnd.Float64()*2 - 1
			ac[i] = complex(ar[i], 0)
		}
		wr, wi := make([]float64, n), make([]float64, n)
		require.Equal(t, kernel.Info(0), k.Dgeev(n, ar, n, wr, wi))
		want := make([]complex128, n)
		for i := range want {
			want[i] = complex(wr[i], wi[i])
		}
		got := make([]complex128, n)
		require.Equal(t, kernel.Info(0), k.Zgeev(n, ac, n, got))
		sortC(want)
		sortC(got)
		requireCClose(t, want, got, 1e-9)
	})
	t.Run("nan", func(t *testing.T) {
		info := k.Zgeev(1, []complex128{cmplx.NaN()}, 1, make([]complex128, 1))
		require.Equal(t, kernel.Info(-2), info)
		require.True(t, kernel.IsNonFinite(kernel.RoutineZgeev, info))
	})
	t.Run("inf", func(t *testing.T) {
		info := k.Zgeev(2, []complex128{cmplx.Inf(), 1, 1, 1}, 2, make([]complex128, 2))
		require.Equal(t, kernel.Info(-2), info)
	})
}

func TestZgesvd(t *testing.T) {
	t.Run("diagonal phases", func(t *testing.T) {
		s := make([]float64, 2)
		require.Equal(t, kernel.Info(0), k.Zgesvd(2, 2, []complex128{4i, 0, 0, -9}, 2, s))
		requireClose(t, []float64{9, 4}, s, 1e-12)
	})
	t.Run("agrees with real kernel", func(t *testing.T) {
		for _, dims := range [][2]int{{4, 3}, {3, 5}} {
			m, n := dims[0], dims[1]
			rnd := rand.New(rand.NewSource(int64(m*10 + n)))
			ar := make([]float64, m*n)
			ac := make([]complex128, m*n)
			for i := range ar {
				ar[i] = rnd.Float64()*2 - 1
				ac[i] = complex(ar[i], 0)
			}
			q := min(m, n)
			want := make([]float64, q)
			require.Equal(t, kernel.Info(0), k.Dgesvd(lapack.SVDNone, m, n, ar, n, want, nil, 1, nil, 1))
			got := make([]float64, q)
			require.Equal(t, kernel.Info(0), k.Zgesvd(m, n, ac, n, got))
			requireClose(t, want, got, 1e-10)
		}
	})
	t.Run("frobenius identity", func(t *testing.T) {
		a := []complex128{1 + 2i, 3, -1i, 2 - 2i, 0.5, 4i}
		fro := k.Zlange(2, 3, a, 3)
		s := make([]float64, 2)
		require.Equal(t, kernel.Info(0), k.Zgesvd(2, 3, append([]complex128(nil), a...), 3, s))
		require.InDelta(t, fro*fro, s[0]*s[0]+s[1]*s[1], 1e-10)
		require.GreaterOrEqual(t, s[0], s[1])
	})
	t.Run("short s", func(t *testing.T) {
		require.Equal(t, kernel.Info(-5), k.Zgesvd(2, 2, make([]complex128, 4), 2, make([]float64, 1)))
	})
}

func TestZgemvZgemm(t *testing.T) {
	a := []complex128{1i, 2, 3, 4i}
	y := make([]complex128, 2)
	require.Equal(t, kernel.Info(0), k.Zgemv(blas.NoTrans, 2, 2, 1, a, 2, []complex128{1, 1i}, 0, y))
	requireCClose(t, []complex128{3i, -1}, y, 1e-14)

	c := make([]complex128, 4)
	require.Equal(t, kernel.Info(0), k.Zgemm(blas.NoTrans, blas.NoTrans, 2, 2, 2, 1, a, 2, a, 2, 0, c, 2))
	requireCClose(t, cmatmul(2, 2, 2, a, a), c, 1e-14)
}

func TestComplexNorms(t *testing.T) {
	require.InDelta(t, 5.0, k.Dznrm2(2, []complex128{3i, 4}), 1e-14)
	require.InDelta(t, math.Sqrt(1+4+9+16), k.Zlange(2, 2, []complex128{1i, 2, 3, 4i}, 2), 1e-14)
	require.True(t, math.IsNaN(k.Zlange(2, 2, make([]complex128, 3), 2)))
}
