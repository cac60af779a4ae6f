// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/linalg"
	"github.com/katalvlaran/lvnum/matrix"
)

func TestLinearSolve_Diagonal(t *testing.T) {
	x, err := linalg.LinearSolve(MustDense(t, 2, 2, 2, 0, 0, 3), MustColumn(t, 4, 9))
	require.NoError(t, err)
	require.True(t, x.IsColumn())
	requireClose(t, []float64{2, 3}, x.RawData(), 1e-15)
	requireNoScratch(t)
}

func TestLinearSolve_Consistency(t *testing.T) {
	m := MustDense(t, 3, 3, 3, 2, -1, 2, -2, 4, -1, 0.5, -1)
	b := MustColumn(t, 1, -2, 0)
	x, err := linalg.LinearSolve(m, b)
	require.NoError(t, err)
	requireClose(t, []float64{1, -2, -2}, x.RawData(), tol)

	xm := MustDense(t, 3, 1, x.RawData()...)
	requireClose(t, b.RawData(), mul(m, xm), tol)
	require.Equal(t, []float64{1, -2, 0}, b.RawData(), "b untouched")
}

func TestLinearSolve_Singular(t *testing.T) {
	_, err := linalg.LinearSolve(MustDense(t, 2, 2, 1, 2, 2, 4), MustColumn(t, 1, 1))
	require.ErrorIs(t, err, linalg.ErrSingular)
	requireNoScratch(t)
}

func TestSolvers_RejectSingleEntryRowVector(t *testing.T) {
	m := MustDense(t, 1, 1, 2)
	row := MustColumn(t, 4)
	row.Transpose()

	_, err := linalg.LinearSolve(m, row)
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = linalg.LinearLeastSquares(m, row)
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = linalg.MatVec(m, row)
	require.ErrorIs(t, err, linalg.ErrDimension)

	crow := MustComplexColumn(t, 4)
	crow.Transpose()
	_, err = linalg.ComplexLinearSolve(MustComplexDense(t, 1, 1, 2), crow)
	require.ErrorIs(t, err, linalg.ErrDimension)
	_, err = linalg.ComplexMatVec(MustComplexDense(t, 1, 1, 2), crow)
	require.ErrorIs(t, err, linalg.ErrDimension)
	requireNoScratch(t)
}

func TestOverdeterminedSolve_ExactLine(t *testing.T) {
	// y = 1 + 2x.
	m := MustDense(t, 4, 2, 1, 0, 1, 1, 1, 2, 1, 3)
	x, err := linalg.OverdeterminedSolve(m, MustColumn(t, 1, 3, 5, 7))
	require.NoError(t, err)
	require.Equal(t, 2, x.Len())
	requireClose(t, []float64{1, 2}, x.RawData(), tol)
}

// residual returns ‖M*x - b‖₂.
func residual(t *testing.T, m *matrix.Dense, x []float64, b *matrix.Vector) float64 {
	t.Helper()
	r := mul(m, MustDense(t, len(x), 1, x...))
	var s float64
	for i, bi := range b.RawData() {
		s += (r[i] - bi) * (r[i] - bi)
	}
	return math.Sqrt(s)
}

func TestOverdeterminedSolve_ResidualIsMinimal(t *testing.T) {
	m := randomDense(t, 8, 3, 42)
	b := MustColumn(t, 1, -1, 2, 0.5, 3, -2, 0, 1)
	x, err := linalg.OverdeterminedSolve(m, b)
	require.NoError(t, err)
	best := residual(t, m, x.RawData(), b)

	deltas := []float64{1e-3, -1e-3, 1e-1, -1e-1}
	for j := 0; j < x.Len(); j++ {
		for _, d := range deltas {
			p := x.Data()
			p[j] += d
			require.GreaterOrEqual(t, residual(t, m, p, b)+1e-12, best)
		}
	}
}

func TestOverdeterminedSolve_RankDeficient(t *testing.T) {
	_, err := linalg.OverdeterminedSolve(MustDense(t, 3, 2, 1, 0, 2, 0, 3, 0), MustColumn(t, 1, 2, 3))
	require.ErrorIs(t, err, linalg.ErrSingular)
	requireNoScratch(t)
}

func TestLinearLeastSquares(t *testing.T) {
	t.Run("matches overdetermined on full rank", func(t *testing.T) {
		m := randomDense(t, 6, 3, 7)
		b := MustColumn(t, 1, 2, 3, 4, 5, 6)
		want, err := linalg.OverdeterminedSolve(m, b)
		require.NoError(t, err)
		got, err := linalg.LinearLeastSquares(m, b)
		require.NoError(t, err)
		requireClose(t, want.RawData(), got.RawData(), 1e-9)
	})
	t.Run("rank deficient minimum norm", func(t *testing.T) {
		m := MustDense(t, 3, 2, 1, 1, 1, 1, 1, 1)
		x, rank, err := linalg.LeastSquaresRank(m, MustColumn(t, 2, 2, 2))
		require.NoError(t, err)
		require.Equal(t, 1, rank)
		requireClose(t, []float64{1, 1}, x.RawData(), 1e-12)
	})
	t.Run("underdetermined", func(t *testing.T) {
		x, err := linalg.LinearLeastSquares(MustDense(t, 1, 3, 1, 1, 1), MustColumn(t, 3))
		require.NoError(t, err)
		requireClose(t, []float64{1, 1, 1}, x.RawData(), 1e-12)
	})
	t.Run("rcond option", func(t *testing.T) {
		m := MustDense(t, 2, 2, 1, 0, 0, 1e-6)
		_, rank, err := linalg.New(linalg.WithLstsqRCond(1e-4)).LeastSquaresRank(m, MustColumn(t, 1, 1))
		require.NoError(t, err)
		require.Equal(t, 1, rank)
		_, rank, err = linalg.LeastSquaresRank(m, MustColumn(t, 1, 1))
		require.NoError(t, err)
		require.Equal(t, 2, rank)
	})
	requireNoScratch(t)
}

func TestComplexLinearSolve(t *testing.T) {
	m := MustComplexDense(t, 2, 2, 2i, 1, 0, 3)
	x, err := linalg.ComplexLinearSolve(m, MustComplexColumn(t, 1+2i, 9i))
	require.NoError(t, err)
	// x1 = 3i, 2i*x0 + 3i = 1+2i → x0 = (1-1i)/(2i) = -0.5-0.5i.
	want := []complex128{-0.5 - 0.5i, 3i}
	for i, z := range x.RawData() {
		require.LessOrEqual(t, cmplx.Abs(want[i]-z.Complex128()), 1e-14)
	}

	_, err = linalg.ComplexLinearSolve(MustComplexDense(t, 2, 2, 1, 1i, 1, 1i), MustComplexColumn(t, 1, 1))
	require.ErrorIs(t, err, linalg.ErrSingular)
	requireNoScratch(t)
}
