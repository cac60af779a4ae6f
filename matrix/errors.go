// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors, accessors and transposes MUST return these sentinels
// (possibly wrapped with context) and tests MUST check them via errors.Is.
// No public function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached with fmt.Errorf("ctx: %w", ErrX)
// at the detection site; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/released -> orientation -> shape/allocation -> length mismatch -> index.

var (
	// ErrAllocation is returned when a buffer of the requested size cannot be
	// provided: negative or overflowing sizes, or an invalid orientation tag.
	ErrAllocation = errors.New("matrix: allocation failed")

	// ErrBadOrientation indicates an orientation tag other than RowVector/ColumnVector.
	// It is always reported together with ErrAllocation.
	ErrBadOrientation = errors.New("matrix: invalid vector orientation")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a value slice whose length differs from rows*cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil or released value (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil or released value")
)
