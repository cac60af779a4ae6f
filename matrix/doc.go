// SPDX-License-Identifier: MIT

// Package matrix is the data layer of lvnum: real and complex vectors and
// dense matrices with explicit ownership.
//
// What:
//
//   - Vector / ComplexVector: contiguous buffers tagged RowVector (1×n) or ColumnVector (n×1).
//   - Dense / ComplexDense: row-major rows×cols buffers, rows ≥ 1, cols ≥ 1.
//   - Complex: an explicit (Re, Im) pair; conversion to complex128 happens only at kernel boundaries.
//
// Why:
//
//   - Fallible constructors: every factory returns (value, error) with sentinel errors
//     (ErrAllocation, ErrInvalidDimensions, ErrDimensionMismatch) instead of panicking.
//   - Pure discipline: operations return new values. The documented exceptions are the
//     O(1) Vector.Transpose tag flip and the Zeros/Ones/Random/Set mutators.
//   - Explicit destruction: Release drops a buffer; later use reports ErrNilMatrix.
//
// Randomness:
//
// Random fills take a RandSource handle. NewEntropySource seeds from the OS entropy pool
// (getrandom(2) on Linux) with a wall-clock fallback; NewSeededSource gives reproducible fills.
//
// Quick example:
//
//	m, _ := matrix.NewDense(2, 2, []float64{4, 0, 0, 9})
//	mt, _ := matrix.Transpose(m)
//	v, _ := matrix.NewVector(matrix.ColumnVector, []float64{3, 4})
//	v.Transpose() // now a row vector, same buffer
//	fmt.Print(mt, v)
package matrix
