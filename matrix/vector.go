// SPDX-License-Identifier: MIT

// Package matrix - real vectors with an explicit orientation tag.
//
// Purpose:
//   - Own a contiguous float64 buffer whose length is the vector length.
//   - Carry a RowVector/ColumnVector tag that decides how the vector composes with matrices.
//   - Keep transpose O(1): only the tag flips, the buffer is never touched.
//
// Complexity quicksheet:
//   - NewVector: O(n) copy; NewZeroVector: O(n) zero-init; At/Set/Transpose: O(1); Clone: O(n).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNewVector = "NewVector"
	ctxVecAt     = "Vector.At"
	ctxVecSet    = "Vector.Set"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Vector is a real vector with an orientation tag.
//   - data holds exactly Len() values.
//   - orient is RowVector (1×n) or ColumnVector (n×1).
//   - released marks a destroyed value; every operation then reports ErrNilMatrix.
type Vector struct {
	data     []float64
	orient   Orientation
	released bool
}

// NewVector creates a vector holding a copy of values.
// MAIN DESCRIPTION:
//   - Public constructor with orientation and size validation; values are copied, never aliased.
//
// Implementation:
//   - Stage 1: validate orientation (ErrAllocation + ErrBadOrientation).
//   - Stage 2: validate the size against MaxElements (ErrAllocation).
//   - Stage 3: allocate and copy.
//
// Inputs:
//   - orient: RowVector or ColumnVector.
//   - values: source values (nil or empty yields a length-0 vector).
//
// Returns:
//   - *Vector: newly allocated vector.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVector(orient Orientation, values []float64) (*Vector, error) {
	if err := validateOrientation(orient); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewVector, err)
	}
	if err := vectorSize(len(values)); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewVector, err)
	}
	buf := make([]float64, len(values))
	copy(buf, values)

	return &Vector{data: buf, orient: orient}, nil
}

// NewZeroVector creates a zero-filled vector of length n.
// Errors: ErrAllocation for n<0, n>MaxElements or an invalid orientation.
func NewZeroVector(orient Orientation, n int) (*Vector, error) {
	if err := validateOrientation(orient); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewVector, err)
	}
	if err := vectorSize(n); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewVector, err)
	}

	return &Vector{data: make([]float64, n), orient: orient}, nil
}

// Len returns the number of entries (0 for nil or released vectors).
func (v *Vector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// Orientation returns the current orientation tag, or the invalid tag 0 for a nil vector.
func (v *Vector) Orientation() Orientation {
	if v == nil {
		return 0
	}
	return v.orient
}

// IsColumn reports whether v is a column vector.
func (v *Vector) IsColumn() bool { return v != nil && v.orient == ColumnVector }

// Rows returns n for a column vector, 1 for a row vector.
func (v *Vector) Rows() int {
	if v == nil || v.released {
		return 0
	}
	if v.orient == ColumnVector {
		return len(v.data)
	}
	return 1
}

// Cols returns 1 for a column vector, n for a row vector.
func (v *Vector) Cols() int {
	if v == nil || v.released {
		return 0
	}
	if v.orient == RowVector {
		return len(v.data)
	}
	return 1
}

// Released reports whether v is nil or was released.
func (v *Vector) Released() bool { return v == nil || v.released }

// At returns v[i].
func (v *Vector) At(i int) (float64, error) {
	if v.Released() {
		return 0, fmt.Errorf("%s(%d): %w", ctxVecAt, i, ErrNilMatrix)
	}
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("%s(%d): %w", ctxVecAt, i, ErrOutOfRange)
	}
	return v.data[i], nil
}

// Set assigns v[i] = x.
func (v *Vector) Set(i int, x float64) error {
	if v.Released() {
		return fmt.Errorf("%s(%d): %w", ctxVecSet, i, ErrNilMatrix)
	}
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("%s(%d): %w", ctxVecSet, i, ErrOutOfRange)
	}
	v.data[i] = x
	return nil
}

// RawData exposes the live buffer. Writes through it mutate v.
func (v *Vector) RawData() []float64 {
	if v == nil {
		return nil
	}
	return v.data
}

// Data returns a copy of the entries.
func (v *Vector) Data() []float64 {
	out := make([]float64, v.Len())
	copy(out, v.RawData())
	return out
}

// Clone returns a deep copy (a released vector clones to a released vector).
func (v *Vector) Clone() *Vector {
	if v == nil {
		return nil
	}
	out := &Vector{orient: v.orient, released: v.released}
	if !v.released {
		out.data = make([]float64, len(v.data))
		copy(out.data, v.data)
	}
	return out
}

// Transpose flips the orientation tag in place.
// This is the one in-place operation of the package: O(1), the buffer is untouched,
// and applying it twice restores the original orientation.
func (v *Vector) Transpose() {
	if v == nil {
		return
	}
	v.orient = v.orient.Flip()
}

// Zeros sets every entry to 0.
func (v *Vector) Zeros() { fillConst(v.RawData(), 0) }

// Ones sets every entry to 1.
func (v *Vector) Ones() { fillConst(v.RawData(), 1) }

// Random fills v with uniform values in [0,1) drawn from src.
// A nil src uses the package source, seeded once from the entropy pool.
func (v *Vector) Random(src RandSource) { fillRandom(v.RawData(), src) }

// Release drops the buffer. Later use reports ErrNilMatrix; releasing twice is a no-op.
func (v *Vector) Release() {
	if v == nil {
		return
	}
	v.data = nil
	v.released = true
}

// String renders a row vector on one line and a column vector one entry per line.
func (v *Vector) String() string {
	if v.Released() {
		return "<released>"
	}
	var b strings.Builder
	var i int
	if v.orient == RowVector {
		b.WriteString(_fmtRowOpen)
		for i = 0; i < len(v.data); i++ {
			b.WriteString(fmt.Sprintf("%g", v.data[i]))
			if i+1 < len(v.data) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
		return b.String()
	}
	for i = 0; i < len(v.data); i++ {
		b.WriteString(_fmtRowOpen)
		b.WriteString(fmt.Sprintf("%g", v.data[i]))
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}

func fillConst(dst []float64, x float64) {
	var i int
	for i = range dst {
		dst[i] = x
	}
}
