// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// AI-Hints:
//   - The linalg engine copies RawData into scratch buffers before calling kernels; it never
//     hands a caller-owned buffer to a routine that overwrites its input.
//   - Use NewDense(r, c, nil) for a zero matrix, NewDenseRows for literal fixtures.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c); Transpose: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewDense = "NewDense"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxIdentity = "Identity"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major real matrix.
//   - r,c hold dimensions (rows, cols), both ≥ 1 for live values.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c     int       // row and column counts
	data     []float64 // contiguous row-major storage (len == r*c)
	released bool      // set by Release; operations then report ErrNilMatrix
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation. values, when non-nil, are copied
//     in row-major order; nil yields the zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 (ErrInvalidDimensions) and the element count (ErrAllocation).
//   - Stage 2: validate len(values) == rows*cols when values != nil (ErrDimensionMismatch).
//   - Stage 3: allocate and copy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - The caller's slice is never aliased.
//
// Inputs:
//   - rows, cols: positive dimensions.
//   - values: nil or exactly rows*cols entries.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, values []float64) (*Dense, error) {
	n, err := denseSize(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewDense, err)
	}
	if values != nil {
		if err = ValidateVecLen(len(values), n); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNewDense, err)
		}
	}
	buf := make([]float64, n)
	copy(buf, values)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// NewZeroDense is NewDense(rows, cols, nil).
func NewZeroDense(rows, cols int) (*Dense, error) { return NewDense(rows, cols, nil) }

// NewIdentity returns the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n, nil)
	if err != nil {
		return nil, err
	}
	var i int
	for i = 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// NewDenseRows builds a matrix from a slice of equally long rows.
// Errors: ErrInvalidDimensions for an empty input, ErrDimensionMismatch for ragged rows.
func NewDenseRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxNewDense, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]), nil)
	if err != nil {
		return nil, err
	}
	var i int
	for i = range rows {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("%s: row %d: %w", ctxNewDense, i, ErrDimensionMismatch)
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}
	return m, nil
}

// Rows returns the number of rows (0 for nil or released).
func (m *Dense) Rows() int {
	if m.Released() {
		return 0
	}
	return m.r
}

// Cols returns the number of columns (0 for nil or released).
func (m *Dense) Cols() int {
	if m.Released() {
		return 0
	}
	return m.c
}

// Dims returns (rows, cols).
func (m *Dense) Dims() (int, int) { return m.Rows(), m.Cols() }

// IsSquare reports whether rows == cols.
func (m *Dense) IsSquare() bool { return !m.Released() && m.r == m.c }

// Released reports whether m is nil or was released.
func (m *Dense) Released() bool { return m == nil || m.released }

// At returns m[i,j].
func (m *Dense) At(i, j int) (float64, error) {
	if m.Released() {
		return 0, denseErrorf(ctxAt, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}
	return m.data[i*m.c+j], nil
}

// Set assigns m[i,j] = v.
func (m *Dense) Set(i, j int, v float64) error {
	if m.Released() {
		return denseErrorf(ctxSet, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = v
	return nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if m.Released() {
		return nil, denseErrorf(ctxRow, i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}

// Col returns a copy of column j.
func (m *Dense) Col(j int) ([]float64, error) {
	if m.Released() {
		return nil, denseErrorf(ctxRow, 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxRow, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	var i int
	for i = 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}
	return out, nil
}

// RawData exposes the live row-major buffer. Writes through it mutate m.
func (m *Dense) RawData() []float64 {
	if m == nil {
		return nil
	}
	return m.data
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	if m == nil {
		return nil
	}
	out := &Dense{r: m.r, c: m.c, released: m.released}
	if !m.released {
		out.data = make([]float64, len(m.data))
		copy(out.data, m.data)
	}
	return out
}

// Zeros sets every entry to 0.
func (m *Dense) Zeros() { fillConst(m.RawData(), 0) }

// Ones sets every entry to 1.
func (m *Dense) Ones() { fillConst(m.RawData(), 1) }

// Random fills m with uniform values in [0,1) drawn from src (nil = the shared package source).
func (m *Dense) Random(src RandSource) { fillRandom(m.RawData(), src) }

// Identity overwrites a square m with the identity.
// Errors: ErrNilMatrix, ErrDimensionMismatch for non-square m.
func (m *Dense) Identity() error {
	if err := ValidateSquare(m); err != nil {
		return fmt.Errorf("%s: %w", ctxIdentity, err)
	}
	fillConst(m.data, 0)
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}
	return nil
}

// Release drops the buffer. Later use reports ErrNilMatrix; releasing twice is a no-op.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.released = true
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	if m.Released() {
		return "<released>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
