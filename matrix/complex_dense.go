// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

const (
	ctxNewComplexDense = "NewComplexDense"
	ctxCDensePack      = "ComplexDense.PackTo"
)

// ComplexDense is a row-major complex matrix of Complex pairs.
// The engine converts to a packed []complex128 only at kernel boundaries.
type ComplexDense struct {
	r, c     int
	data     []Complex
	released bool
}

// NewComplexDense creates an r×c complex matrix from Complex values (nil = zeros).
//
// Errors: ErrInvalidDimensions, ErrAllocation, ErrDimensionMismatch (len(values) != rows*cols).
func NewComplexDense(rows, cols int, values []Complex) (*ComplexDense, error) {
	n, err := denseSize(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewComplexDense, err)
	}
	if values != nil {
		if err = ValidateVecLen(len(values), n); err != nil {
			return nil, fmt.Errorf("%s: %w", ctxNewComplexDense, err)
		}
	}
	buf := make([]Complex, n)
	copy(buf, values)
	return &ComplexDense{r: rows, c: cols, data: buf}, nil
}

// NewComplexDenseParts creates an r×c complex matrix from row-major real and imaginary parts.
// im may be nil (purely real matrix).
func NewComplexDenseParts(rows, cols int, re, im []float64) (*ComplexDense, error) {
	m, err := NewComplexDense(rows, cols, nil)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(len(re), len(m.data)); err != nil {
		return nil, fmt.Errorf("%s: re: %w", ctxNewComplexDense, err)
	}
	if im != nil {
		if err = ValidateVecLen(len(im), len(m.data)); err != nil {
			return nil, fmt.Errorf("%s: im: %w", ctxNewComplexDense, err)
		}
	}
	var k int
	for k = range m.data {
		m.data[k].Re = re[k]
		if im != nil {
			m.data[k].Im = im[k]
		}
	}
	return m, nil
}

// NewComplexDenseFromPacked unpacks a row-major complex128 buffer of rows*cols entries.
func NewComplexDenseFromPacked(rows, cols int, packed []complex128) (*ComplexDense, error) {
	m, err := NewComplexDense(rows, cols, nil)
	if err != nil {
		return nil, err
	}
	if err = ValidateVecLen(len(packed), len(m.data)); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewComplexDense, err)
	}
	var k int
	for k = range packed {
		m.data[k] = FromComplex128(packed[k])
	}
	return m, nil
}

// NewComplexFromReal lifts a real matrix into the complex domain.
func NewComplexFromReal(a *Dense) (*ComplexDense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewComplexDense, err)
	}
	return NewComplexDenseParts(a.r, a.c, a.data, nil)
}

// Rows returns the number of rows (0 for nil or released).
func (m *ComplexDense) Rows() int {
	if m.Released() {
		return 0
	}
	return m.r
}

// Cols returns the number of columns (0 for nil or released).
func (m *ComplexDense) Cols() int {
	if m.Released() {
		return 0
	}
	return m.c
}

// Dims returns (rows, cols).
func (m *ComplexDense) Dims() (int, int) { return m.Rows(), m.Cols() }

// Released reports whether m is nil or was released.
func (m *ComplexDense) Released() bool { return m == nil || m.released }

// At returns m[i,j].
func (m *ComplexDense) At(i, j int) (Complex, error) {
	if m.Released() {
		return Complex{}, fmt.Errorf("ComplexDense.%s(%d,%d): %w", ctxAt, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return Complex{}, fmt.Errorf("ComplexDense.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}
	return m.data[i*m.c+j], nil
}

// Set assigns m[i,j] = z.
func (m *ComplexDense) Set(i, j int, z Complex) error {
	if m.Released() {
		return fmt.Errorf("ComplexDense.%s(%d,%d): %w", ctxSet, i, j, ErrNilMatrix)
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("ComplexDense.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	m.data[i*m.c+j] = z
	return nil
}

// RawData exposes the live row-major buffer.
func (m *ComplexDense) RawData() []Complex {
	if m == nil {
		return nil
	}
	return m.data
}

// PackTo writes m row-major into dst as native complex128; len(dst) must equal rows*cols.
func (m *ComplexDense) PackTo(dst []complex128) error {
	if m.Released() {
		return fmt.Errorf("%s: %w", ctxCDensePack, ErrNilMatrix)
	}
	if err := ValidateVecLen(len(dst), len(m.data)); err != nil {
		return fmt.Errorf("%s: %w", ctxCDensePack, err)
	}
	packComplex(dst, m.data)
	return nil
}

// Clone returns a deep copy.
func (m *ComplexDense) Clone() *ComplexDense {
	if m == nil {
		return nil
	}
	out := &ComplexDense{r: m.r, c: m.c, released: m.released}
	if !m.released {
		out.data = make([]Complex, len(m.data))
		copy(out.data, m.data)
	}
	return out
}

// Zeros sets every entry to 0.
func (m *ComplexDense) Zeros() { fillComplexConst(m.RawData(), Complex{}) }

// Ones sets every entry to 1+0i.
func (m *ComplexDense) Ones() { fillComplexConst(m.RawData(), Complex{Re: 1}) }

// Random fills both parts of every entry with uniform values in [0,1).
func (m *ComplexDense) Random(src RandSource) { fillComplexRandom(m.RawData(), src) }

// Release drops the buffer.
func (m *ComplexDense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.released = true
}

// String renders one bracketed row per line.
func (m *ComplexDense) String() string {
	if m.Released() {
		return "<released>"
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}
	return b.String()
}
