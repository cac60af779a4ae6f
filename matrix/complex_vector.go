// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxNewComplexVector = "NewComplexVector"
	ctxCVecAt           = "ComplexVector.At"
	ctxCVecSet          = "ComplexVector.Set"
	ctxCVecPack         = "ComplexVector.PackTo"
)

// ComplexVector is the complex counterpart of Vector: a buffer of Complex pairs plus an orientation tag.
type ComplexVector struct {
	data     []Complex
	orient   Orientation
	released bool
}

// NewComplexVector builds a vector from separate real and imaginary parts.
// im may be nil (all-zero imaginary parts); otherwise len(im) must equal len(re).
//
// Errors:
//   - ErrAllocation (+ErrBadOrientation) for an invalid orientation or oversized request.
//   - ErrDimensionMismatch when len(im) != len(re).
func NewComplexVector(orient Orientation, re, im []float64) (*ComplexVector, error) {
	if err := validateOrientation(orient); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewComplexVector, err)
	}
	if err := vectorSize(len(re)); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewComplexVector, err)
	}
	if im != nil {
		if err := ValidateVecLen(len(im), len(re)); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNewComplexVector, err)
		}
	}
	buf := make([]Complex, len(re))
	var i int
	for i = range re {
		buf[i].Re = re[i]
		if im != nil {
			buf[i].Im = im[i]
		}
	}
	return &ComplexVector{data: buf, orient: orient}, nil
}

// NewComplexVectorFrom copies a slice of Complex values.
func NewComplexVectorFrom(orient Orientation, values []Complex) (*ComplexVector, error) {
	if err := validateOrientation(orient); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewComplexVector, err)
	}
	if err := vectorSize(len(values)); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewComplexVector, err)
	}
	buf := make([]Complex, len(values))
	copy(buf, values)
	return &ComplexVector{data: buf, orient: orient}, nil
}

// NewComplexVectorFromPacked unpacks a native complex128 buffer.
func NewComplexVectorFromPacked(orient Orientation, packed []complex128) (*ComplexVector, error) {
	v, err := NewZeroComplexVector(orient, len(packed))
	if err != nil {
		return nil, err
	}
	var i int
	for i = range packed {
		v.data[i] = FromComplex128(packed[i])
	}
	return v, nil
}

// NewZeroComplexVector creates a zero-filled complex vector of length n.
func NewZeroComplexVector(orient Orientation, n int) (*ComplexVector, error) {
	if err := validateOrientation(orient); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewComplexVector, err)
	}
	if err := vectorSize(n); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewComplexVector, err)
	}
	return &ComplexVector{data: make([]Complex, n), orient: orient}, nil
}

// Len returns the number of entries.
func (v *ComplexVector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// Orientation returns the current orientation tag, or the invalid tag 0 for a nil vector.
func (v *ComplexVector) Orientation() Orientation {
	if v == nil {
		return 0
	}
	return v.orient
}

// IsColumn reports whether v is a column vector.
func (v *ComplexVector) IsColumn() bool { return v != nil && v.orient == ColumnVector }

// Rows returns n for a column vector, 1 for a row vector.
func (v *ComplexVector) Rows() int {
	if v.Released() {
		return 0
	}
	if v.orient == ColumnVector {
		return len(v.data)
	}
	return 1
}

// Cols returns 1 for a column vector, n for a row vector.
func (v *ComplexVector) Cols() int {
	if v.Released() {
		return 0
	}
	if v.orient == RowVector {
		return len(v.data)
	}
	return 1
}

// Released reports whether v is nil or was released.
func (v *ComplexVector) Released() bool { return v == nil || v.released }

// At returns v[i].
func (v *ComplexVector) At(i int) (Complex, error) {
	if v.Released() {
		return Complex{}, fmt.Errorf("%s(%d): %w", ctxCVecAt, i, ErrNilMatrix)
	}
	if i < 0 || i >= len(v.data) {
		return Complex{}, fmt.Errorf("%s(%d): %w", ctxCVecAt, i, ErrOutOfRange)
	}
	return v.data[i], nil
}

// Set assigns v[i] = z.
func (v *ComplexVector) Set(i int, z Complex) error {
	if v.Released() {
		return fmt.Errorf("%s(%d): %w", ctxCVecSet, i, ErrNilMatrix)
	}
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("%s(%d): %w", ctxCVecSet, i, ErrOutOfRange)
	}
	v.data[i] = z
	return nil
}

// RawData exposes the live buffer.
func (v *ComplexVector) RawData() []Complex {
	if v == nil {
		return nil
	}
	return v.data
}

// PackTo writes v into dst as native complex128 values; len(dst) must equal Len().
func (v *ComplexVector) PackTo(dst []complex128) error {
	if v.Released() {
		return fmt.Errorf("%s: %w", ctxCVecPack, ErrNilMatrix)
	}
	if err := ValidateVecLen(len(dst), len(v.data)); err != nil {
		return fmt.Errorf("%s: %w", ctxCVecPack, err)
	}
	packComplex(dst, v.data)
	return nil
}

// Clone returns a deep copy.
func (v *ComplexVector) Clone() *ComplexVector {
	if v == nil {
		return nil
	}
	out := &ComplexVector{orient: v.orient, released: v.released}
	if !v.released {
		out.data = make([]Complex, len(v.data))
		copy(out.data, v.data)
	}
	return out
}

// Transpose flips the orientation tag in place in O(1); entries are not conjugated.
func (v *ComplexVector) Transpose() {
	if v == nil {
		return
	}
	v.orient = v.orient.Flip()
}

// Zeros sets every entry to 0.
func (v *ComplexVector) Zeros() { fillComplexConst(v.RawData(), Complex{}) }

// Ones sets every entry to 1+0i.
func (v *ComplexVector) Ones() { fillComplexConst(v.RawData(), Complex{Re: 1}) }

// Random fills both parts of every entry with uniform values in [0,1).
func (v *ComplexVector) Random(src RandSource) { fillComplexRandom(v.RawData(), src) }

// Release drops the buffer.
func (v *ComplexVector) Release() {
	if v == nil {
		return
	}
	v.data = nil
	v.released = true
}

// String renders like Vector.String with "(re+imi)" entries.
func (v *ComplexVector) String() string {
	if v.Released() {
		return "<released>"
	}
	var b strings.Builder
	var i int
	if v.orient == RowVector {
		b.WriteString(_fmtRowOpen)
		for i = 0; i < len(v.data); i++ {
			b.WriteString(v.data[i].String())
			if i+1 < len(v.data) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
		return b.String()
	}
	for i = 0; i < len(v.data); i++ {
		b.WriteString(_fmtRowOpen)
		b.WriteString(v.data[i].String())
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}

func packComplex(dst []complex128, src []Complex) {
	var i int
	for i = range src {
		dst[i] = complex(src[i].Re, src[i].Im)
	}
}

func fillComplexConst(dst []Complex, z Complex) {
	var i int
	for i = range dst {
		dst[i] = z
	}
}
