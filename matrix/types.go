// SPDX-License-Identifier: MIT
// Package matrix - shared value types: orientation tag, complex scalar, Matrix surface.
//
// Purpose:
//   - Orientation tags a vector as a row (1×n) or a column (n×1) without touching its buffer.
//   - Complex is the explicit real/imaginary pair stored in complex vectors and matrices.
//   - Matrix is the minimal shape surface shared by every value of this package so
//     validators can be written once.

package matrix

import (
	"fmt"
	"math"
	"strconv"
)

// Orientation tags a vector as a row or a column.
// The numeric values are part of the contract: Transpose negates the tag.
type Orientation int

const (
	// RowVector marks a 1×n vector.
	RowVector Orientation = -1
	// ColumnVector marks an n×1 vector.
	ColumnVector Orientation = 1
)

// Valid reports whether o is RowVector or ColumnVector.
func (o Orientation) Valid() bool { return o == RowVector || o == ColumnVector }

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation { return -o }

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case RowVector:
		return "row"
	case ColumnVector:
		return "column"
	default:
		return "Orientation(" + strconv.Itoa(int(o)) + ")"
	}
}

// Complex is a complex scalar stored as an explicit (Re, Im) pair.
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

// C builds a Complex from its parts.
func C(re, im float64) Complex { return Complex{Re: re, Im: im} }

// FromComplex128 converts a native complex128.
func FromComplex128(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

// Complex128 converts z to the native representation used at kernel boundaries.
func (z Complex) Complex128() complex128 { return complex(z.Re, z.Im) }

// Abs returns |z| without undue overflow.
func (z Complex) Abs() float64 { return math.Hypot(z.Re, z.Im) }

// String formats z as "(re+imi)", matching fmt's %g rendering of complex128.
func (z Complex) String() string { return fmt.Sprintf("%g", z.Complex128()) }

// Matrix is the shape surface shared by Vector, ComplexVector, Dense and ComplexDense.
// Methods must be safe on nil receivers: a nil value reports Released() == true.
type Matrix interface {
	Rows() int
	Cols() int
	Released() bool
}

// Compile-time assertions for interface conformance.
var (
	_ Matrix       = (*Vector)(nil)
	_ Matrix       = (*ComplexVector)(nil)
	_ Matrix       = (*Dense)(nil)
	_ Matrix       = (*ComplexDense)(nil)
	_ Oriented     = (*Vector)(nil)
	_ Oriented     = (*ComplexVector)(nil)
	_ fmt.Stringer = Complex{}
	_ fmt.Stringer = Orientation(0)
)
