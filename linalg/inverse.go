// SPDX-License-Identifier: MIT

package linalg

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"

	"github.com/katalvlaran/lvnum/kernel"
	"github.com/katalvlaran/lvnum/matrix"
)

// Inverse returns M⁻¹ for a square M.
//
// Implementation:
//   - Stage 1: copy M into scratch and factor it, P*L*U = M (Dgetrf).
//   - Stage 2: invert in place from the factors (Dgetri) and copy the result out.
//
// Errors:
//   - ErrNilMatrix, ErrDimension (not square) before any kernel call.
//   - ErrSingular when a pivot of U is exactly zero.
//   - ErrInvalidEntry for NaN or ±Inf entries, ErrKernelArgument for rejected arguments.
//
// Complexity:
//   - Time O(n³), Space O(n²) scratch.
func (e *Engine) Inverse(m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opErrorf(opInverse, err)
	}
	n := m.Rows()

	var ar arena
	defer ar.release()
	a := copyOf(&ar, m)
	ipiv := ar.ints(n)

	if info := e.real.Dgetrf(n, n, a, n, ipiv); info != 0 {
		return nil, e.kernelFailure(opInverse, kernel.RoutineDgetrf, info, ErrSingular)
	}
	if info := e.real.Dgetri(n, a, n, ipiv); info != 0 {
		return nil, e.kernelFailure(opInverse, kernel.RoutineDgetri, info, ErrSingular)
	}
	return dense(opInverse, n, n, a)
}

// Pseudoinverse returns the Moore-Penrose pseudoinverse M⁺ (cols×rows).
//
// Implementation:
//   - Stage 1: when rows < cols work on A = Mᵀ so that A is tall (p×q, p ≥ q).
//   - Stage 2: full SVD A = U*Σ*Vᵀ (Dgesvd).
//   - Stage 3: Σ⁺ keeps 1/s_i for s_i > cutoff*s_max and 0 otherwise.
//   - Stage 4: A⁺ = V*(Σ⁺*Uᵀ) with two Dgemm calls; transpose back if Stage 1 did.
//
// Errors:
//   - ErrNilMatrix; ErrSVDConvergence; ErrInvalidEntry for NaN or ±Inf entries.
//
// Complexity:
//   - Time O(p²q + pq²), Space O(p² + q²) scratch.
func (e *Engine) Pseudoinverse(m *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opPseudoinverse, err)
	}
	rows, cols := m.Dims()

	var ar arena
	defer ar.release()

	p, q := rows, cols
	var a []float64
	wide := rows < cols
	if wide {
		p, q = cols, rows
		a = ar.float64s(rows * cols)
		transposeInto(a, m.RawData(), rows, cols)
	} else {
		a = copyOf(&ar, m)
	}

	s := ar.float64s(q)
	u := ar.float64s(p * p)
	vt := ar.float64s(q * q)
	if info := e.real.Dgesvd(lapack.SVDAll, p, q, a, q, s, u, p, vt, q); info != 0 {
		return nil, e.kernelFailure(opPseudoinverse, kernel.RoutineDgesvd, info, ErrSVDConvergence)
	}

	// sigma holds Σ⁺ as a q×p matrix.
	sigma := ar.float64s(q * p)
	thresh := e.pinvCutoff * s[0]
	var i int
	for i = 0; i < q; i++ {
		if s[i] > thresh {
			sigma[i*p+i] = 1 / s[i]
		}
	}

	// t = Σ⁺ * Uᵀ (q×p).
	t := ar.float64s(q * p)
	if info := e.real.Dgemm(blas.NoTrans, blas.Trans, q, p, p, 1, sigma, p, u, p, 0, t, p); info != 0 {
		return nil, e.kernelFailure(opPseudoinverse, kernel.RoutineDgemm, info, ErrKernelArgument)
	}
	// x = V * t = (Vᵀ)ᵀ * t (q×p).
	x := ar.float64s(q * p)
	if info := e.real.Dgemm(blas.Trans, blas.NoTrans, q, p, q, 1, vt, q, t, p, 0, x, p); info != 0 {
		return nil, e.kernelFailure(opPseudoinverse, kernel.RoutineDgemm, info, ErrKernelArgument)
	}

	if wide {
		// A⁺ is rows×cols here; M⁺ = (A⁺)ᵀ is cols×rows.
		out := ar.float64s(q * p)
		transposeInto(out, x, q, p)
		return dense(opPseudoinverse, p, q, out)
	}
	return dense(opPseudoinverse, q, p, x)
}

// ComplexInverse returns M⁻¹ for a square complex M (Zgetrf + Zgetri on a packed copy).
// Errors mirror Inverse.
func (e *Engine) ComplexInverse(m *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, opErrorf(opCInverse, err)
	}
	n := m.Rows()

	var ar arena
	defer ar.release()
	a := packOf(&ar, m)
	ipiv := ar.ints(n)

	if info := e.complex.Zgetrf(n, n, a, n, ipiv); info != 0 {
		return nil, e.kernelFailure(opCInverse, kernel.RoutineZgetrf, info, ErrSingular)
	}
	if info := e.complex.Zgetri(n, a, n, ipiv); info != 0 {
		return nil, e.kernelFailure(opCInverse, kernel.RoutineZgetri, info, ErrSingular)
	}
	out, err := matrix.NewComplexDenseFromPacked(n, n, a)
	if err != nil {
		return nil, opErrorf(opCInverse, err)
	}
	return out, nil
}

// ComplexPseudoinverse is not implemented for complex matrices.
// It validates its operand and then always returns ErrNotSupported.
func (e *Engine) ComplexPseudoinverse(m *matrix.ComplexDense) (*matrix.ComplexDense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(opCPseudoinverse, err)
	}
	return nil, opErrorf(opCPseudoinverse, ErrNotSupported)
}
