// SPDX-License-Identifier: MIT
// Package linalg_test contains shared fixtures: constructors that fail the test,
// naive reference products, tolerance checks and scripted kernels.

package linalg_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/lapack"

	"github.com/katalvlaran/lvnum/kernel"
	"github.com/katalvlaran/lvnum/linalg"
	"github.com/katalvlaran/lvnum/matrix"
)

const tol = 1e-9

// MustDense ALLOCATES an r×c *Dense from row-major values or fails the test.
func MustDense(t testing.TB, r, c int, values ...float64) *matrix.Dense {
	t.Helper()
	var vals []float64
	if len(values) > 0 {
		vals = values
	}
	m, err := matrix.NewDense(r, c, vals)
	require.NoError(t, err)
	return m
}

// MustColumn ALLOCATES a column vector or fails the test.
func MustColumn(t testing.TB, values ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVector(matrix.ColumnVector, values)
	require.NoError(t, err)
	return v
}

// MustComplexDense ALLOCATES an r×c complex matrix from packed values or fails the test.
func MustComplexDense(t testing.TB, r, c int, values ...complex128) *matrix.ComplexDense {
	t.Helper()
	m, err := matrix.NewComplexDenseFromPacked(r, c, values)
	require.NoError(t, err)
	return m
}

// MustComplexColumn ALLOCATES a complex column vector or fails the test.
func MustComplexColumn(t testing.TB, values ...complex128) *matrix.ComplexVector {
	t.Helper()
	v, err := matrix.NewComplexVectorFromPacked(matrix.ColumnVector, values)
	require.NoError(t, err)
	return v
}

// randomDense fills an r×c matrix with U(-1,1) entries from a seeded source.
func randomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	data := m.RawData()
	for i := range data {
		data[i] = 2*rnd.Float64() - 1
	}
	return m
}

// mul is the naive reference product of two dense matrices.
func mul(a, b *matrix.Dense) []float64 {
	m, k := a.Dims()
	n := b.Cols()
	ad, bd := a.RawData(), b.RawData()
	out := make([]float64, m*n)
	var i, j, l int
	for i = 0; i < m; i++ {
		for j = 0; j < n; j++ {
			for l = 0; l < k; l++ {
				out[i*n+j] += ad[i*k+l] * bd[l*n+j]
			}
		}
	}
	return out
}

// approxEqual reports whether every |want-got| <= eps*max(1,|want|).
func approxEqual(want, got []float64, eps float64) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > eps*math.Max(1, math.Abs(want[i])) {
			return false
		}
	}
	return true
}

func requireClose(t testing.TB, want, got []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i], got[i], eps*math.Max(1, math.Abs(want[i])), "index %d", i)
	}
}

// requireNoScratch asserts that every scratch buffer went back to its pool.
func requireNoScratch(t testing.TB) {
	t.Helper()
	require.Zero(t, linalg.LiveScratch(), "scratch buffers leaked")
}

// forbiddenReal fails loudly if any real routine is reached: the embedded
// interface is nil, so every method call panics.
type forbiddenReal struct{ kernel.Real }

// forbiddenComplex is the complex counterpart of forbiddenReal.
type forbiddenComplex struct{ kernel.Complex }

// scriptedReal runs the gonum kernel but forces one routine to report a status.
type scriptedReal struct {
	kernel.Gonum
	routine kernel.Routine
	info    kernel.Info
}

func (s scriptedReal) Dgetrf(m, n int, a []float64, lda int, ipiv []int) kernel.Info {
	if s.routine == kernel.RoutineDgetrf {
		return s.info
	}
	return s.Gonum.Dgetrf(m, n, a, lda, ipiv)
}

func (s scriptedReal) Dgetri(n int, a []float64, lda int, ipiv []int) kernel.Info {
	if s.routine == kernel.RoutineDgetri {
		return s.info
	}
	return s.Gonum.Dgetri(n, a, lda, ipiv)
}

func (s scriptedReal) Dgeev(n int, a []float64, lda int, wr, wi []float64) kernel.Info {
	if s.routine == kernel.RoutineDgeev {
		return s.info
	}
	return s.Gonum.Dgeev(n, a, lda, wr, wi)
}

func (s scriptedReal) Dgesvd(job lapack.SVDJob, m, n int, a []float64, lda int, sv, u []float64, ldu int, vt []float64, ldvt int) kernel.Info {
	if s.routine == kernel.RoutineDgesvd {
		return s.info
	}
	return s.Gonum.Dgesvd(job, m, n, a, lda, sv, u, ldu, vt, ldvt)
}

func (s scriptedReal) Dgels(m, n, nrhs int, a []float64, lda int, b []float64, ldb int) kernel.Info {
	if s.routine == kernel.RoutineDgels {
		return s.info
	}
	return s.Gonum.Dgels(m, n, nrhs, a, lda, b, ldb)
}

func (s scriptedReal) Dgeqrf(m, n int, a []float64, lda int, tau []float64) kernel.Info {
	if s.routine == kernel.RoutineDgeqrf {
		return s.info
	}
	return s.Gonum.Dgeqrf(m, n, a, lda, tau)
}

// scriptedComplex forces one complex routine to report a status.
type scriptedComplex struct {
	kernel.Gonum
	routine kernel.Routine
	info    kernel.Info
}

func (s scriptedComplex) Zgeev(n int, a []complex128, lda int, w []complex128) kernel.Info {
	if s.routine == kernel.RoutineZgeev {
		return s.info
	}
	return s.Gonum.Zgeev(n, a, lda, w)
}

func (s scriptedComplex) Zgesvd(m, n int, a []complex128, lda int, sv []float64) kernel.Info {
	if s.routine == kernel.RoutineZgesvd {
		return s.info
	}
	return s.Gonum.Zgesvd(m, n, a, lda, sv)
}
