// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep constructors and the linalg engine minimal by delegating nil/shape/size checks here.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap again uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).
//  - Validators taking two operands assume both passed ValidateNotNil.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// MaxElements caps the number of scalars in a single buffer.
// Requests above it fail with ErrAllocation instead of panicking inside make().
const MaxElements = math.MaxInt32

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the value is non-nil and not released.
//
// Inputs: Matrix interface value (typed nil pointers are detected via Released()).
// Returns ErrNilMatrix otherwise.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil || m.Released() {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil/released, ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulShape checks that a×b is defined (a.Cols == b.Rows).
// Implementation: assumes both operands are non-nil (caller must ensure).
func ValidateMulShape(a, b Matrix) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulShape", ErrDimensionMismatch)
	}

	return nil
}

// Oriented is implemented by the vector types.
type Oriented interface {
	Orientation() Orientation
}

// ValidateColumn ensures v is a column vector of exactly n entries.
// The orientation tag is checked, not the shape: a 1-element row vector is rejected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (not a column vector, or wrong length).
// Complexity: O(1).
func ValidateColumn(v Matrix, n int) error {
	if err := ValidateNotNil(v); err != nil {
		return err
	}
	if o, ok := v.(Oriented); !ok || o.Orientation() != ColumnVector {
		return validatorErrorf("ValidateColumn: orientation", ErrDimensionMismatch)
	}
	if v.Rows() != n {
		return validatorErrorf("ValidateColumn: length", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the slice length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(n, want int) error {
	if n != want {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// validateOrientation rejects tags other than RowVector/ColumnVector.
// The result matches both ErrAllocation and ErrBadOrientation.
func validateOrientation(o Orientation) error {
	if !o.Valid() {
		return validatorErrorf("validateOrientation", errors.Join(ErrAllocation, ErrBadOrientation))
	}

	return nil
}

// vectorSize validates a vector length request.
func vectorSize(n int) error {
	if n < 0 || n > MaxElements {
		return validatorErrorf("vectorSize", ErrAllocation)
	}

	return nil
}

// denseSize validates a rows×cols request and returns the element count.
//
// Errors:
//   - ErrInvalidDimensions when rows<1 or cols<1.
//   - ErrAllocation when rows*cols overflows or exceeds MaxElements.
func denseSize(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 {
		return 0, validatorErrorf("denseSize", ErrInvalidDimensions)
	}
	if rows > MaxElements/cols {
		return 0, validatorErrorf("denseSize", ErrAllocation)
	}

	return rows * cols, nil
}
