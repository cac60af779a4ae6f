// Package lvnum is a dense linear-algebra toolkit: real and complex vectors and
// matrices, and the engine that inverts, solves, fits and decomposes them.
//
// What is inside?
//
//	A small numerical core on top of gonum's BLAS/LAPACK:
//		• Data layer: Vector, ComplexVector, Dense, ComplexDense, fills, transpose
//		• Kernel adapter: LAPACK-style routines with integer status, swappable for tests
//		• Engine: inverse, pseudoinverse, linear / overdetermined / least-squares solves,
//		  exponential and power fits, eigenvalues, singular values, QR / LQ / LU, norms
//		• Complex engine: inverse, solve, eigenvalues, singular values, norms, products
//		• Interpolation: linear and Vandermonde polynomial
//
// Packages:
//
//	matrix/          value types, validators, orientation, random and entropy sources
//	kernel/          Real and Complex kernel interfaces, gonum implementation, metrics
//	linalg/          Engine, functional options, error taxonomy, package-level API
//	interp/          interpolation built on linalg.LinearSolve
//	internal/config  TOML configuration of the command line tool
//	internal/dataset YAML / TOML matrix documents
//	internal/cli     cobra command tree
//	cmd/lvnum        the lvnum binary
//
// Quick example:
//
//	m, _ := matrix.NewDense(2, 2, []float64{2, 0, 0, 3})
//	b, _ := matrix.NewVector(matrix.ColumnVector, []float64{4, 9})
//	x, err := linalg.LinearSolve(m, b) // x = [2, 3]
//
// Every operation validates shapes before touching a kernel, never modifies its
// inputs and returns a fresh result or a sentinel error usable with errors.Is.
//
//	go install github.com/katalvlaran/lvnum/cmd/lvnum@latest
package lvnum
