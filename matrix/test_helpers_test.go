// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for constructors and transposes.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
)

// MustDense ALLOCATES an r×c *Dense from row-major values or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int, values ...float64) *matrix.Dense {
	t.Helper()
	var vals []float64
	if len(values) > 0 {
		vals = values
	}
	m, err := matrix.NewDense(r, c, vals)
	if err != nil {
		t.Fatalf("NewDense(%d,%d) failed: %v", r, c, err)
	}
	return m
}

// MustVector ALLOCATES a vector or fails the test.
func MustVector(t testing.TB, o matrix.Orientation, values ...float64) *matrix.Vector {
	t.Helper()
	v, err := matrix.NewVector(o, values)
	if err != nil {
		t.Fatalf("NewVector(%v) failed: %v", o, err)
	}
	return v
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d) failed: %v", i, j, err)
	}
	return v
}

// fixedSource replays a fixed sequence of values, cycling when exhausted.
type fixedSource struct {
	vals []float64
	pos  int
}

func (s *fixedSource) Float64() float64 {
	v := s.vals[s.pos%len(s.vals)]
	s.pos++
	return v
}
