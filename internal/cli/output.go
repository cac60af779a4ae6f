// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/matrix"
)

// num formats x with the configured precision. Values that round to zero print unsigned.
func (a *app) num(x float64) string {
	s := strconv.FormatFloat(x, 'f', a.cfg.Output.Precision, 64)
	if s[0] == '-' && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

func (a *app) cnum(z matrix.Complex) string {
	im := a.num(z.Im)
	if strings.HasPrefix(im, "-") {
		return a.num(z.Re) + im + "i"
	}
	return a.num(z.Re) + "+" + im + "i"
}

func (a *app) printScalar(label string, x float64) {
	fmt.Fprintf(a.out, "%s: %s\n", label, a.num(x))
}

func (a *app) printFloats(label string, xs []float64) {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = a.num(x)
	}
	fmt.Fprintf(a.out, "%s: [%s]\n", label, strings.Join(parts, ", "))
}

func (a *app) printInts(label string, xs []int) {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	fmt.Fprintf(a.out, "%s: [%s]\n", label, strings.Join(parts, ", "))
}

func (a *app) printComplexes(label string, zs []matrix.Complex) {
	parts := make([]string, len(zs))
	for i, z := range zs {
		parts[i] = a.cnum(z)
	}
	fmt.Fprintf(a.out, "%s: [%s]\n", label, strings.Join(parts, ", "))
}

func (a *app) printDense(label string, m *matrix.Dense) {
	rows, cols := m.Dims()
	fmt.Fprintf(a.out, "%s (%dx%d):\n", label, rows, cols)
	data := m.RawData()
	for i := 0; i < rows; i++ {
		parts := make([]string, cols)
		for j := 0; j < cols; j++ {
			parts[j] = a.num(data[i*cols+j])
		}
		fmt.Fprintf(a.out, "  [%s]\n", strings.Join(parts, ", "))
	}
}

func (a *app) printComplexDense(label string, m *matrix.ComplexDense) {
	rows, cols := m.Dims()
	fmt.Fprintf(a.out, "%s (%dx%d):\n", label, rows, cols)
	data := m.RawData()
	for i := 0; i < rows; i++ {
		parts := make([]string, cols)
		for j := 0; j < cols; j++ {
			parts[j] = a.cnum(data[i*cols+j])
		}
		fmt.Fprintf(a.out, "  [%s]\n", strings.Join(parts, ", "))
	}
}
