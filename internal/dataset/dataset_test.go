// SPDX-License-Identifier: MIT

package dataset_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/internal/dataset"
	"github.com/katalvlaran/lvnum/matrix"
)

const yamlDoc = `
matrix:
  - [4, 0]
  - [0, 9]
imag:
  - [0, 1]
  - [-1, 0]
vector: [4, 9]
vector_imag: [1, 0]
x: [0, 1, 2]
y: [1, 2, 4]
`

const tomlDoc = `
matrix = [[4, 0], [0, 9]]
imag = [[0, 1], [-1, 0]]
vector = [4, 9]
vector_imag = [1, 0]
x = [0, 1, 2]
y = [1, 2, 4]
`

func TestFormatOf(t *testing.T) {
	for path, want := range map[string]dataset.Format{
		"a.yaml": dataset.YAML,
		"b.YML":  dataset.YAML,
		"c.toml": dataset.TOML,
	} {
		got, err := dataset.FormatOf(path)
		require.NoError(t, err)
		require.Equal(t, want, got, path)
	}
	_, err := dataset.FormatOf("d.json")
	require.ErrorIs(t, err, dataset.ErrFormat)
}

func TestDecode_BothFormatsAgree(t *testing.T) {
	y, err := dataset.Decode(strings.NewReader(yamlDoc), dataset.YAML)
	require.NoError(t, err)
	tm, err := dataset.Decode(strings.NewReader(tomlDoc), dataset.TOML)
	require.NoError(t, err)
	require.Equal(t, y, tm)

	m, err := y.Dense()
	require.NoError(t, err)
	require.Equal(t, []float64{4, 0, 0, 9}, m.RawData())

	require.True(t, y.IsComplex())
	c, err := y.ComplexDense()
	require.NoError(t, err)
	require.Equal(t, matrix.C(0, 1), c.RawData()[1])
	require.Equal(t, matrix.C(0, -1), c.RawData()[2])

	v, err := y.Column()
	require.NoError(t, err)
	require.True(t, v.IsColumn())

	cv, err := y.ComplexColumn()
	require.NoError(t, err)
	require.Equal(t, matrix.C(4, 1), cv.RawData()[0])

	xs, ys, err := y.Samples()
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, xs)
	require.Equal(t, []float64{1, 2, 4}, ys)
}

func TestDecode_UnknownFields(t *testing.T) {
	_, err := dataset.Decode(strings.NewReader("matrx: [[1]]\n"), dataset.YAML)
	require.Error(t, err)

	_, err = dataset.Decode(strings.NewReader("matrx = [[1.0]]\n"), dataset.TOML)
	require.Error(t, err)

	_, err = dataset.Decode(strings.NewReader(""), dataset.Format("ini"))
	require.ErrorIs(t, err, dataset.ErrFormat)
}

func TestDocument_Errors(t *testing.T) {
	var empty dataset.Document
	_, err := empty.Dense()
	require.ErrorIs(t, err, dataset.ErrMissing)
	_, err = empty.Column()
	require.ErrorIs(t, err, dataset.ErrMissing)
	_, _, err = empty.Samples()
	require.ErrorIs(t, err, dataset.ErrMissing)

	ragged := dataset.Document{Matrix: [][]float64{{1, 2}, {3}}}
	_, err = ragged.Dense()
	require.ErrorIs(t, err, dataset.ErrShape)

	badImag := dataset.Document{Matrix: [][]float64{{1, 2}}, Imag: [][]float64{{1}}}
	_, err = badImag.ComplexDense()
	require.ErrorIs(t, err, dataset.ErrShape)

	badVec := dataset.Document{Vector: []float64{1, 2}, VectorImag: []float64{1}}
	_, err = badVec.ComplexColumn()
	require.ErrorIs(t, err, dataset.ErrShape)

	badFit := dataset.Document{X: []float64{1, 2}, Y: []float64{1}}
	_, _, err = badFit.Samples()
	require.ErrorIs(t, err, dataset.ErrShape)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlDoc), 0o600))

	doc, err := dataset.Load(path)
	require.NoError(t, err)
	require.Len(t, doc.Matrix, 2)

	_, err = dataset.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestEncode_RoundTrip(t *testing.T) {
	doc := &dataset.Document{Matrix: [][]float64{{1, 2.5}, {3, 4}}, Vector: []float64{-1, 0.5}}
	for _, f := range []dataset.Format{dataset.YAML, dataset.TOML} {
		var buf bytes.Buffer
		require.NoError(t, dataset.Encode(&buf, doc, f))
		got, err := dataset.Decode(&buf, f)
		require.NoError(t, err)
		require.Equal(t, doc, got, string(f))
	}
}
