// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"github.com/katalvlaran/lvnum/matrix"
)

// fitColumns is the regressor layout of the curve fits: [x, 1].
const fitColumns = 2

// ExponentialFit fits y = scale*e^(exponent*x) by least squares on ln y.
//
// M has two columns [x, 1] and b holds the responses y. The result is the column
// vector (scale, exponent).
//
// Errors: ErrDimension unless M has exactly two columns and b matches its rows;
// ErrInvalidEntry when some y <= 0. Least-squares errors propagate.
func (e *Engine) ExponentialFit(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	return e.logLinearFit(opExponentialFit, m, b, false)
}

// PowerFit fits y = scale*x^exponent by least squares on ln y against ln x.
//
// M has two columns [x, 1] and b holds the responses y; both x and y must be positive.
// The result is the column vector (scale, exponent).
func (e *Engine) PowerFit(m *matrix.Dense, b *matrix.Vector) (*matrix.Vector, error) {
	return e.logLinearFit(opPowerFit, m, b, true)
}

// logLinearFit linearizes with ln, solves for (slope, intercept) and returns
// (e^intercept, slope).
func (e *Engine) logLinearFit(op string, m *matrix.Dense, b *matrix.Vector, logX bool) (*matrix.Vector, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, opErrorf(op, err)
	}
	rows, cols := m.Dims()
	if cols != fitColumns {
		return nil, opErrorf(op, ErrDimension)
	}
	if err := matrix.ValidateColumn(b, rows); err != nil {
		return nil, opErrorf(op, err)
	}

	lm := m.Clone()
	defer lm.Release()
	lb := b.Clone()
	defer lb.Release()

	data, y := lm.RawData(), lb.RawData()
	var i int
	for i = 0; i < rows; i++ {
		if !(y[i] > 0) {
			return nil, opErrorf(op, ErrInvalidEntry)
		}
		y[i] = math.Log(y[i])
		if logX {
			if !(data[i*cols] > 0) {
				return nil, opErrorf(op, ErrInvalidEntry)
			}
			data[i*cols] = math.Log(data[i*cols])
		}
	}

	coef, err := e.LinearLeastSquares(lm, lb)
	if err != nil {
		return nil, opErrorf(op, err)
	}
	defer coef.Release()
	c := coef.RawData()
	return column(op, []float64{math.Exp(c[1]), c[0]})
}
