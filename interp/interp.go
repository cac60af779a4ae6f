// SPDX-License-Identifier: MIT
// Package interp: one-dimensional interpolation on top of the linalg engine.
//
// Linear interpolates through two samples. Polynomial fits the unique polynomial of
// degree n-1 through n samples by solving the Vandermonde system V·c = y with
// linalg.LinearSolve, then evaluates it with Horner's rule.
//
// Coefficients are ordered from low to high degree: c[0] + c[1]·x + … + c[n-1]·x^(n-1).

package interp

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvnum/linalg"
	"github.com/katalvlaran/lvnum/matrix"
)

var (
	// ErrSampleCount indicates mismatched x/y lengths or too few samples.
	ErrSampleCount = errors.New("interp: invalid number of samples")

	// ErrDuplicateAbscissa indicates two samples sharing the same x.
	ErrDuplicateAbscissa = errors.New("interp: duplicate abscissa")

	// ErrNonFinite indicates a NaN or infinite sample or query point.
	ErrNonFinite = errors.New("interp: non-finite value")
)

const (
	opLinear       = "interp.Linear"
	opPolynomial   = "interp.Polynomial"
	opCoefficients = "interp.PolynomialCoefficients"
)

// Linear returns the value at x of the straight line through (x0[0], y0[0]) and
// (x0[1], y0[1]). x may lie outside the segment (extrapolation).
func Linear(x0, y0 []float64, x float64) (float64, error) {
	if len(x0) != 2 || len(y0) != 2 {
		return 0, fmt.Errorf("%s: got %d/%d samples, want 2: %w", opLinear, len(x0), len(y0), ErrSampleCount)
	}
	if !finite(x0...) || !finite(y0...) || !finite(x) {
		return 0, fmt.Errorf("%s: %w", opLinear, ErrNonFinite)
	}
	if x0[0] == x0[1] {
		return 0, fmt.Errorf("%s: %w", opLinear, ErrDuplicateAbscissa)
	}
	return y0[0] + (x-x0[0])*(y0[1]-y0[0])/(x0[1]-x0[0]), nil
}

// Polynomial returns the value at x of the interpolating polynomial through (x0[i], y0[i]).
func Polynomial(x0, y0 []float64, x float64) (float64, error) {
	if !finite(x) {
		return 0, fmt.Errorf("%s: %w", opPolynomial, ErrNonFinite)
	}
	c, err := PolynomialCoefficients(x0, y0)
	if err != nil {
		return 0, err
	}
	return Eval(c, x), nil
}

// PolynomialCoefficients returns the coefficients, low degree first, of the polynomial
// of degree len(x0)-1 through the samples.
//
// Implementation:
//   - Stage 1: Validate sample counts, finiteness and distinct abscissae.
//   - Stage 2: Build V[i][j] = x0[i]^j.
//   - Stage 3: Solve V·c = y0 with linalg.LinearSolve.
//
// Errors: ErrSampleCount, ErrNonFinite, ErrDuplicateAbscissa, or a wrapped linalg error
// when the Vandermonde system is numerically singular.
//
// Complexity: O(n³) for the solve.
func PolynomialCoefficients(x0, y0 []float64) ([]float64, error) {
	n := len(x0)
	if n == 0 || len(y0) != n {
		return nil, fmt.Errorf("%s: got %d/%d samples: %w", opCoefficients, len(x0), len(y0), ErrSampleCount)
	}
	if !finite(x0...) || !finite(y0...) {
		return nil, fmt.Errorf("%s: %w", opCoefficients, ErrNonFinite)
	}
	seen := make(map[float64]struct{}, n)
	for _, x := range x0 {
		if _, dup := seen[x]; dup {
			return nil, fmt.Errorf("%s: x=%g: %w", opCoefficients, x, ErrDuplicateAbscissa)
		}
		seen[x] = struct{}{}
	}

	v, err := vandermonde(x0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCoefficients, err)
	}
	b, err := matrix.NewVector(matrix.ColumnVector, y0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCoefficients, err)
	}
	c, err := linalg.LinearSolve(v, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCoefficients, err)
	}
	return c.Data(), nil
}

// Eval evaluates c[0] + c[1]·x + … with Horner's rule. Eval(nil, x) is 0.
func Eval(c []float64, x float64) float64 {
	var y float64
	for i := len(c) - 1; i >= 0; i-- {
		y = y*x + c[i]
	}
	return y
}

func vandermonde(x0 []float64) (*matrix.Dense, error) {
	n := len(x0)
	v, err := matrix.NewZeroDense(n, n)
	if err != nil {
		return nil, err
	}
	data := v.RawData()
	var i, j int
	for i = 0; i < n; i++ {
		p := 1.0
		for j = 0; j < n; j++ {
			data[i*n+j] = p
			p *= x0[i]
		}
	}
	return v, nil
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
