// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set and kernel status translation.
//
// Every engine operation returns either a fresh result or one of the sentinels
// below (wrapped with the operation tag). Kernel-reported failures come back as
// *KernelError, which unwraps to the sentinel so callers keep using errors.Is.
//
// ERROR PRIORITY (enforced by the engine, checked in tests):
// nil/released -> shape/orientation -> kernel status.

package linalg

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/kernel"
	"github.com/katalvlaran/lvnum/matrix"
)

var (
	// ErrAllocation is returned when a result buffer cannot be allocated.
	ErrAllocation = matrix.ErrAllocation

	// ErrDimension reports a shape or orientation mismatch found before any kernel call.
	ErrDimension = matrix.ErrDimensionMismatch

	// ErrNilMatrix reports a nil or released operand.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrSingular indicates that a factorization produced an exactly singular factor.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrConvergence indicates that an iterative kernel step did not converge.
	ErrConvergence = errors.New("linalg: iteration did not converge")

	// ErrSVDConvergence is the singular value decomposition flavour of ErrConvergence.
	// errors.Is(ErrSVDConvergence, ErrConvergence) holds.
	ErrSVDConvergence = fmt.Errorf("linalg: singular value decomposition failed: %w", ErrConvergence)

	// ErrInvalidEntry indicates a non-finite input entry, or a value outside the domain
	// of a curve fit (non-positive response or regressor).
	ErrInvalidEntry = errors.New("linalg: invalid matrix entry")

	// ErrKernelArgument indicates that a kernel rejected one of its arguments.
	// The engine validates shapes itself, so this always signals an internal bug.
	ErrKernelArgument = errors.New("linalg: kernel rejected an argument")

	// ErrNotSupported is returned by operations that exist only to document their absence.
	ErrNotSupported = errors.New("linalg: operation not supported")
)

// KernelError describes a failed kernel routine.
type KernelError struct {
	Op      string         // engine operation, e.g. "Inverse"
	Routine kernel.Routine // kernel routine that failed
	Info    kernel.Info    // raw LAPACK-style status
	Err     error          // translated sentinel
}

// Error implements error.
func (e *KernelError) Error() string {
	return fmt.Sprintf("%s: %s %s: %v", e.Op, e.Routine, e.Info, e.Err)
}

// Unwrap exposes the translated sentinel to errors.Is.
func (e *KernelError) Unwrap() error { return e.Err }

// opErrorf wraps err with the operation tag, mirroring matrix's validatorErrorf.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// translate maps a non-zero kernel status onto the error taxonomy.
// numeric is the sentinel for a positive (numerically informative) status.
func translate(r kernel.Routine, info kernel.Info, numeric error) error {
	switch {
	case kernel.IsNonFinite(r, info):
		return ErrInvalidEntry
	case info < 0:
		return ErrKernelArgument
	default:
		return numeric
	}
}
