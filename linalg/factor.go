// SPDX-License-Identifier: MIT
// Package linalg - QR, LQ and LU factorizations.
//
// The factorizations return their data in LAPACK packed form, exactly as the kernel
// leaves it, wrapped in small value types with extraction helpers. Every factor type
// owns private copies: mutating M afterwards does not affect it and vice versa.

package linalg

import (
	"github.com/katalvlaran/lvnum/kernel"
	"github.com/katalvlaran/lvnum/matrix"
)

// QRFactors is the packed result of QR: R on and above the diagonal, the Householder
// vectors below it, and their scalar factors in tau.
type QRFactors struct {
	e      *Engine
	rows   int
	cols   int
	packed []float64
	tau    []float64
}

// LQFactors is the packed result of LQ: L on and below the diagonal, the Householder
// vectors above it.
type LQFactors struct {
	e      *Engine
	rows   int
	cols   int
	packed []float64
	tau    []float64
}

// LUFactors is the packed result of LU: unit-lower L below the diagonal, U on and above.
// Row i was interchanged with row Pivots()[i] (0-based, applied in order).
type LUFactors struct {
	rows   int
	cols   int
	packed []float64
	ipiv   []int
}

// QR computes M = Q*R with Householder reflections (Dgeqrf) on a copy of M.
//
// Errors: ErrNilMatrix; ErrInvalidEntry for NaN or ±Inf entries; ErrKernelArgument.
func (e *Engine) QR(m *matrix.Dense) (*QRFactors, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opQR, err)
	}
	rows, cols := m.Dims()
	f := &QRFactors{
		e:      e,
		rows:   rows,
		cols:   cols,
		packed: append([]float64(nil), m.RawData()...),
		tau:    make([]float64, min(rows, cols)),
	}
	if info := e.real.Dgeqrf(rows, cols, f.packed, cols, f.tau); info != 0 {
		return nil, e.kernelFailure(opQR, kernel.RoutineDgeqrf, info, ErrKernelArgument)
	}
	return f, nil
}

// LQ computes M = L*Q (Dgelqf) on a copy of M.
//
// A zero on the diagonal of L is informational: the factors are returned together with
// an error wrapping ErrSingular. Kernel argument errors return no factors.
func (e *Engine) LQ(m *matrix.Dense) (*LQFactors, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opLQ, err)
	}
	rows, cols := m.Dims()
	f := &LQFactors{
		e:      e,
		rows:   rows,
		cols:   cols,
		packed: append([]float64(nil), m.RawData()...),
		tau:    make([]float64, min(rows, cols)),
	}
	if info := e.real.Dgelqf(rows, cols, f.packed, cols, f.tau); info != 0 {
		return nil, e.kernelFailure(opLQ, kernel.RoutineDgelqf, info, ErrSingular)
	}
	var i int
	for i = 0; i < min(rows, cols); i++ {
		if f.packed[i*cols+i] == 0 {
			e.log.Debug().Str("op", opLQ).Int("diag", i).Msg("singular L factor")
			return f, opErrorf(opLQ, ErrSingular)
		}
	}
	return f, nil
}

// LU computes M = P*L*U with partial pivoting (Dgetrf) on a copy of M.
//
// A zero pivot is informational: the complete factors are returned together with a
// *KernelError wrapping ErrSingular. Kernel argument errors return no factors.
func (e *Engine) LU(m *matrix.Dense) (*LUFactors, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opLU, err)
	}
	rows, cols := m.Dims()
	f := &LUFactors{
		rows:   rows,
		cols:   cols,
		packed: append([]float64(nil), m.RawData()...),
		ipiv:   make([]int, min(rows, cols)),
	}
	info := e.real.Dgetrf(rows, cols, f.packed, cols, f.ipiv)
	switch {
	case info == 0:
		return f, nil
	case info > 0:
		return f, e.kernelFailure(opLU, kernel.RoutineDgetrf, info, ErrSingular)
	default:
		return nil, e.kernelFailure(opLU, kernel.RoutineDgetrf, info, ErrSingular)
	}
}

// Dims returns the shape of the factored matrix.
func (f *QRFactors) Dims() (int, int) { return f.rows, f.cols }

// Packed returns a copy of the packed factorization.
func (f *QRFactors) Packed() (*matrix.Dense, error) {
	return dense(opQR, f.rows, f.cols, f.packed)
}

// Tau returns a copy of the Householder scalar factors.
func (f *QRFactors) Tau() []float64 { return append([]float64(nil), f.tau...) }

// R returns the min(rows,cols)×cols upper-trapezoidal factor.
func (f *QRFactors) R() (*matrix.Dense, error) {
	k := min(f.rows, f.cols)
	out := make([]float64, k*f.cols)
	var i int
	for i = 0; i < k; i++ {
		copy(out[i*f.cols+i:(i+1)*f.cols], f.packed[i*f.cols+i:(i+1)*f.cols])
	}
	return dense(opQR, k, f.cols, out)
}

// Q returns the rows×min(rows,cols) factor with orthonormal columns (Dorgqr).
func (f *QRFactors) Q() (*matrix.Dense, error) {
	k := min(f.rows, f.cols)
	var ar arena
	defer ar.release()
	q := ar.float64s(f.rows * k)
	var i int
	for i = 0; i < f.rows; i++ {
		copy(q[i*k:(i+1)*k], f.packed[i*f.cols:i*f.cols+k])
	}
	if info := f.e.real.Dorgqr(f.rows, k, k, q, k, f.tau); info != 0 {
		return nil, f.e.kernelFailure(opQRFactorsQ, kernel.RoutineDorgqr, info, ErrKernelArgument)
	}
	return dense(opQRFactorsQ, f.rows, k, q)
}

// Dims returns the shape of the factored matrix.
func (f *LQFactors) Dims() (int, int) { return f.rows, f.cols }

// Packed returns a copy of the packed factorization.
func (f *LQFactors) Packed() (*matrix.Dense, error) {
	return dense(opLQ, f.rows, f.cols, f.packed)
}

// Tau returns a copy of the Householder scalar factors.
func (f *LQFactors) Tau() []float64 { return append([]float64(nil), f.tau...) }

// L returns the rows×min(rows,cols) lower-trapezoidal factor.
func (f *LQFactors) L() (*matrix.Dense, error) {
	k := min(f.rows, f.cols)
	out := make([]float64, f.rows*k)
	var i int
	for i = 0; i < f.rows; i++ {
		copy(out[i*k:i*k+min(i+1, k)], f.packed[i*f.cols:i*f.cols+min(i+1, k)])
	}
	return dense(opLQ, f.rows, k, out)
}

// Q returns the min(rows,cols)×cols factor with orthonormal rows (Dorglq).
func (f *LQFactors) Q() (*matrix.Dense, error) {
	k := min(f.rows, f.cols)
	var ar arena
	defer ar.release()
	q := ar.float64s(k * f.cols)
	copy(q, f.packed[:k*f.cols])
	if info := f.e.real.Dorglq(k, f.cols, k, q, f.cols, f.tau); info != 0 {
		return nil, f.e.kernelFailure(opLQFactorsQ, kernel.RoutineDorglq, info, ErrKernelArgument)
	}
	return dense(opLQFactorsQ, k, f.cols, q)
}

// Dims returns the shape of the factored matrix.
func (f *LUFactors) Dims() (int, int) { return f.rows, f.cols }

// Packed returns a copy of the packed factorization.
func (f *LUFactors) Packed() (*matrix.Dense, error) {
	return dense(opLU, f.rows, f.cols, f.packed)
}

// Pivots returns a copy of the 0-based row interchanges.
func (f *LUFactors) Pivots() []int { return append([]int(nil), f.ipiv...) }

// L returns the rows×min(rows,cols) unit lower-trapezoidal factor.
func (f *LUFactors) L() (*matrix.Dense, error) {
	k := min(f.rows, f.cols)
	out := make([]float64, f.rows*k)
	var i, j int
	for i = 0; i < f.rows; i++ {
		for j = 0; j < min(i, k); j++ {
			out[i*k+j] = f.packed[i*f.cols+j]
		}
		if i < k {
			out[i*k+i] = 1
		}
	}
	return dense(opLU, f.rows, k, out)
}

// U returns the min(rows,cols)×cols upper-trapezoidal factor.
func (f *LUFactors) U() (*matrix.Dense, error) {
	k := min(f.rows, f.cols)
	out := make([]float64, k*f.cols)
	var i int
	for i = 0; i < k; i++ {
		copy(out[i*f.cols+i:(i+1)*f.cols], f.packed[i*f.cols+i:(i+1)*f.cols])
	}
	return dense(opLU, k, f.cols, out)
}
