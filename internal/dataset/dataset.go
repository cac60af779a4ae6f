// SPDX-License-Identifier: MIT
// Package dataset: matrix and vector input documents for the lvnum tool.
//
// A document is YAML or TOML, chosen by file extension (.yaml, .yml, .toml).
// Every field is optional; each command reads the ones it needs.
//
//	matrix:      [[4, 0], [0, 9]]   # real part, row-major rows
//	imag:        [[0, 1], [0, 0]]   # optional imaginary part of matrix
//	vector:      [4, 9]             # right-hand side
//	vector_imag: [0, 1]             # optional imaginary part of vector
//	x:           [0, 1, 2]          # samples for curve fits
//	y:           [2.5, 1.24, 0.62]

package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnum/matrix"
)

// Format identifies a document encoding.
type Format string

// Supported formats.
const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

var (
	// ErrFormat reports an unknown file extension or format name.
	ErrFormat = errors.New("dataset: unsupported format")

	// ErrMissing reports a field the caller asked for but the document lacks.
	ErrMissing = errors.New("dataset: missing field")

	// ErrShape reports ragged rows or mismatched real/imaginary parts.
	ErrShape = errors.New("dataset: inconsistent shape")
)

// Document is one decoded input file.
type Document struct {
	Matrix     [][]float64 `yaml:"matrix,omitempty" toml:"matrix,omitempty"`
	Imag       [][]float64 `yaml:"imag,omitempty" toml:"imag,omitempty"`
	Vector     []float64   `yaml:"vector,omitempty" toml:"vector,omitempty"`
	VectorImag []float64   `yaml:"vector_imag,omitempty" toml:"vector_imag,omitempty"`
	X          []float64   `yaml:"x,omitempty" toml:"x,omitempty"`
	Y          []float64   `yaml:"y,omitempty" toml:"y,omitempty"`
}

// FormatOf maps a file name to its format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
}

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()
	return Decode(f, format)
}

// Decode reads one document in the given format. Unknown fields are errors.
func Decode(r io.Reader, format Format) (*Document, error) {
	var doc Document
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("dataset: yaml: %w", err)
		}
	case TOML:
		md, err := toml.NewDecoder(r).Decode(&doc)
		if err != nil {
			return nil, fmt.Errorf("dataset: toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("dataset: toml: unknown field %q", undecoded[0].String())
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}
	return &doc, nil
}

// Encode writes doc in the given format.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("dataset: yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return fmt.Errorf("dataset: toml: %w", err)
		}
		_, err := w.Write(buf.Bytes())
		return err
	}
	return fmt.Errorf("%w: %q", ErrFormat, format)
}

// IsComplex reports whether the document carries an imaginary matrix part.
func (d *Document) IsComplex() bool { return len(d.Imag) > 0 }

// Dense builds the real matrix.
func (d *Document) Dense() (*matrix.Dense, error) {
	if len(d.Matrix) == 0 {
		return nil, fmt.Errorf("%w: matrix", ErrMissing)
	}
	if _, err := rectangular("matrix", d.Matrix); err != nil {
		return nil, err
	}
	return matrix.NewDenseRows(d.Matrix)
}

// ComplexDense builds the complex matrix from matrix + imag. A missing imag part is zero.
func (d *Document) ComplexDense() (*matrix.ComplexDense, error) {
	if len(d.Matrix) == 0 {
		return nil, fmt.Errorf("%w: matrix", ErrMissing)
	}
	cols, err := rectangular("matrix", d.Matrix)
	if err != nil {
		return nil, err
	}
	rows := len(d.Matrix)
	re := flatten(d.Matrix, cols)
	im := make([]float64, rows*cols)
	if d.IsComplex() {
		icols, err := rectangular("imag", d.Imag)
		if err != nil {
			return nil, err
		}
		if len(d.Imag) != rows || icols != cols {
			return nil, fmt.Errorf("%w: imag is %dx%d, matrix is %dx%d", ErrShape, len(d.Imag), icols, rows, cols)
		}
		im = flatten(d.Imag, cols)
	}
	return matrix.NewComplexDenseParts(rows, cols, re, im)
}

// Column builds the right-hand side as a column vector.
func (d *Document) Column() (*matrix.Vector, error) {
	if len(d.Vector) == 0 {
		return nil, fmt.Errorf("%w: vector", ErrMissing)
	}
	return matrix.NewVector(matrix.ColumnVector, d.Vector)
}

// ComplexColumn builds the complex right-hand side. A missing imaginary part is zero.
func (d *Document) ComplexColumn() (*matrix.ComplexVector, error) {
	if len(d.Vector) == 0 {
		return nil, fmt.Errorf("%w: vector", ErrMissing)
	}
	im := d.VectorImag
	if len(im) == 0 {
		im = make([]float64, len(d.Vector))
	}
	if len(im) != len(d.Vector) {
		return nil, fmt.Errorf("%w: vector_imag has %d entries, vector has %d", ErrShape, len(im), len(d.Vector))
	}
	return matrix.NewComplexVector(matrix.ColumnVector, d.Vector, im)
}

// Samples returns the x/y pairs of a curve fit.
func (d *Document) Samples() (x, y []float64, err error) {
	if len(d.X) == 0 || len(d.Y) == 0 {
		return nil, nil, fmt.Errorf("%w: x and y", ErrMissing)
	}
	if len(d.X) != len(d.Y) {
		return nil, nil, fmt.Errorf("%w: %d x values, %d y values", ErrShape, len(d.X), len(d.Y))
	}
	return d.X, d.Y, nil
}

// rectangular returns the common row length of rows.
func rectangular(field string, rows [][]float64) (int, error) {
	cols := len(rows[0])
	for i, r := range rows {
		if len(r) != cols || cols == 0 {
			return 0, fmt.Errorf("%w: %s row %d has %d entries, want %d", ErrShape, field, i, len(r), cols)
		}
	}
	return cols, nil
}

func flatten(rows [][]float64, cols int) []float64 {
	out := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}
