// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/internal/cli"
	"github.com/katalvlaran/lvnum/internal/dataset"
	"github.com/katalvlaran/lvnum/linalg"
)

// run executes the command tree in isolation from the caller's LVNUM_ environment.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LVNUM_CONFIG", "")
	t.Setenv("LVNUM_LOG_LEVEL", "")
	t.Setenv("LVNUM_LOG_FORMAT", "")

	var out, errOut bytes.Buffer
	root := cli.NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func writeDoc(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestInverse(t *testing.T) {
	path := writeDoc(t, "m.yaml", "matrix: [[4, 0], [0, 9]]\n")
	out, _, err := run(t, "inverse", path)
	require.NoError(t, err)
	require.Equal(t, "inverse (2x2):\n  [0.250000, 0.000000]\n  [0.000000, 0.111111]\n", out)

	path = writeDoc(t, "s.toml", "matrix = [[1.0, 2.0], [2.0, 4.0]]\n")
	_, _, err = run(t, "inverse", path)
	require.ErrorIs(t, err, linalg.ErrSingular)
}

func TestSolve(t *testing.T) {
	path := writeDoc(t, "sys.yaml", "matrix: [[2, 0], [0, 3]]\nvector: [4, 9]\n")
	out, _, err := run(t, "solve", path)
	require.NoError(t, err)
	require.Equal(t, "x: [2.000000, 3.000000]\n", out)

	path = writeDoc(t, "line.yaml", "matrix: [[1, 0], [1, 1], [1, 2], [1, 3]]\nvector: [1, 3, 5, 7]\n")
	out, _, err = run(t, "solve", "--overdetermined", "--precision", "3", path)
	require.NoError(t, err)
	require.Equal(t, "x: [1.000, 2.000]\n", out)

	path = writeDoc(t, "bad.yaml", "matrix: [[1, 2, 3], [4, 5, 6]]\nvector: [1, 2, 3, 4]\n")
	_, _, err = run(t, "solve", path)
	require.ErrorIs(t, err, linalg.ErrDimension)
}

func TestComplexSolve(t *testing.T) {
	path := writeDoc(t, "c.yaml", "matrix: [[0, 1], [0, 3]]\nimag: [[2, 0], [0, 0]]\nvector: [1, 0]\nvector_imag: [2, 9]\n")
	out, _, err := run(t, "solve", "--precision", "2", path)
	require.NoError(t, err)
	require.Equal(t, "x: [-0.50-0.50i, 0.00+3.00i]\n", out)
}

func TestLstsq(t *testing.T) {
	path := writeDoc(t, "rd.yaml", "matrix: [[1, 1], [1, 1], [1, 1]]\nvector: [2, 2, 2]\n")
	out, _, err := run(t, "lstsq", path)
	require.NoError(t, err)
	require.Equal(t, "x: [1.000000, 1.000000]\nrank: 1\n", out)
}

func TestFit(t *testing.T) {
	path := writeDoc(t, "fit.yaml", "x: [1, 2, 4, 8]\ny: [3, 8.485281374238571, 24, 67.88225099390856]\n")
	out, _, err := run(t, "fit", "--model", "power", "--precision", "4", path)
	require.NoError(t, err)
	require.Equal(t, "scale: 3.0000\nexponent: 1.5000\n", out)

	_, _, err = run(t, "fit", "--model", "cubic", path)
	require.Error(t, err)
}

func TestSpectral(t *testing.T) {
	path := writeDoc(t, "d.yaml", "matrix: [[4, 0], [0, 9]]\n")
	out, _, err := run(t, "svd", path)
	require.NoError(t, err)
	require.Equal(t, "singular values: [9.000000, 4.000000]\n", out)

	rot := writeDoc(t, "rot.yaml", "matrix: [[0, -1], [1, 0]]\n")
	out, _, err = run(t, "eig", "--precision", "3", rot)
	require.NoError(t, err)
	require.Equal(t, "eigenvalues: [0.000, 0.000]\n", out)

	out, _, err = run(t, "eig", "--spectrum", "--precision", "3", rot)
	require.NoError(t, err)
	require.Contains(t, out, "0.000+1.000i")
	require.Contains(t, out, "0.000-1.000i")
}

func TestNorm(t *testing.T) {
	path := writeDoc(t, "n.toml", "matrix = [[1, 2], [3, 4]]\nvector = [3, 4]\n")
	out, _, err := run(t, "norm", "--precision", "4", path)
	require.NoError(t, err)
	require.Equal(t, "matrix: 5.4772\nvector: 5.0000\n", out)

	empty := writeDoc(t, "e.yaml", "x: [1]\n")
	_, _, err = run(t, "norm", empty)
	require.Error(t, err)
}

func TestFactorizations(t *testing.T) {
	path := writeDoc(t, "m.yaml", "matrix: [[1, 2], [2, 4]]\n")
	out, stderr, err := run(t, "lu", path)
	require.NoError(t, err, "a singular U is informational")
	require.Contains(t, out, "pivots: [1, 1]")
	require.Contains(t, out, "singular: true")
	require.Contains(t, stderr, "factor is exactly singular")

	path = writeDoc(t, "q.yaml", "matrix: [[3, 0], [4, 5]]\n")
	out, _, err = run(t, "qr", path)
	require.NoError(t, err)
	require.Contains(t, out, "Q (2x2):")
	require.Contains(t, out, "R (2x2):")

	out, _, err = run(t, "lq", path)
	require.NoError(t, err)
	require.Contains(t, out, "L (2x2):")
	require.NotContains(t, out, "singular")
}

func TestComplexPseudoinverseIsNotSupported(t *testing.T) {
	path := writeDoc(t, "c.yaml", "matrix: [[1]]\nimag: [[1]]\n")
	_, _, err := run(t, "pinv", path)
	require.ErrorIs(t, err, linalg.ErrNotSupported)
}

func TestInterp(t *testing.T) {
	path := writeDoc(t, "s.yaml", "x: [0, 1, 2]\ny: [1, 3, 7]\n")
	out, _, err := run(t, "interp", "--at", "3", "--precision", "3", path)
	require.NoError(t, err)
	require.Equal(t, "coefficients: [1.000, 1.000, 1.000]\ny: [13.000]\n", out)

	out, _, err = run(t, "interp", "--linear", "--at", "0.5,4", "--precision", "1", path)
	require.NoError(t, err)
	require.Equal(t, "y: [2.0, 9.0]\n", out)
}

func TestRandom(t *testing.T) {
	first, _, err := run(t, "random", "--rows", "2", "--cols", "3", "--seed", "7", "--vector")
	require.NoError(t, err)
	second, _, err := run(t, "random", "--rows", "2", "--cols", "3", "--seed", "7", "--vector")
	require.NoError(t, err)
	require.Equal(t, first, second, "a fixed seed is reproducible")

	doc, err := dataset.Decode(strings.NewReader(first), dataset.YAML)
	require.NoError(t, err)
	require.Len(t, doc.Matrix, 2)
	require.Len(t, doc.Matrix[0], 3)
	require.Len(t, doc.Vector, 2)

	path := filepath.Join(t.TempDir(), "r.toml")
	_, _, err = run(t, "random", "--rows", "3", "--cols", "3", "-o", path)
	require.NoError(t, err)
	out, _, err := run(t, "svd", path)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "singular values: ["))
}

func TestMetricsAndLogging(t *testing.T) {
	path := writeDoc(t, "m.yaml", "matrix: [[4, 0], [0, 9]]\n")
	out, _, err := run(t, "inverse", "--metrics", path)
	require.NoError(t, err)
	require.Contains(t, out, "# kernel calls\n")
	require.Contains(t, out, "routine=dgetrf status=ok 1\n")
	require.Contains(t, out, "routine=dgetri status=ok 1\n")

	singular := writeDoc(t, "s.yaml", "matrix: [[1, 2], [2, 4]]\n")
	cfg := writeDoc(t, "lvnum.toml", "[log]\nlevel = \"debug\"\nformat = \"json\"\n")
	_, stderr, err := run(t, "--config", cfg, "inverse", singular)
	require.ErrorIs(t, err, linalg.ErrSingular)
	require.Contains(t, stderr, `"routine":"dgetrf"`)
	require.Contains(t, stderr, `"cmd":"inverse"`)
}

func TestConfigErrors(t *testing.T) {
	_, _, err := run(t, "--log-level", "chatty", "version")
	require.Error(t, err)

	out, _, err := run(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "lvnum v"))
}
