// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
)

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: map data[i*cols + j] → res.data[j*rows + i].
//
// Behavior highlights:
//   - Physical transpose: the result owns a fresh buffer, unlike Vector.Transpose which only flips a tag.
//   - Bit-exact: Transpose(Transpose(m)) equals m entry for entry.
//
// Errors:
//   - ErrNilMatrix (nil or released input).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
func Transpose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}
	rows, cols := m.r, m.c
	res, err := NewDense(cols, rows, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, err)
	}

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}
	return res, nil
}

// ComplexTranspose returns the plain (non-conjugating) transpose of m.
func ComplexTranspose(m *ComplexDense) (*ComplexDense, error) {
	return complexTranspose(m, false, opTranspose)
}

// ConjTranspose returns the conjugate transpose mᴴ.
func ConjTranspose(m *ComplexDense) (*ComplexDense, error) {
	return complexTranspose(m, true, opConjTranspose)
}

func complexTranspose(m *ComplexDense, conj bool, tag string) (*ComplexDense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	rows, cols := m.r, m.c
	res, err := NewComplexDense(cols, rows, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	var (
		i, j int
		z    Complex
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			z = m.data[i*cols+j]
			if conj {
				z.Im = -z.Im
			}
			res.data[j*rows+i] = z
		}
	}
	return res, nil
}
