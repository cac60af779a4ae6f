// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/linalg"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lvnum.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LVNUM_LOG_LEVEL", "")
	t.Setenv("LVNUM_LOG_FORMAT", "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
	require.Equal(t, linalg.DefaultLstsqRCond, cfg.Engine.LstsqRCond)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.WarnLevel, lvl)
	require.Len(t, cfg.EngineOptions(), 2)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("LVNUM_LOG_LEVEL", "")
	t.Setenv("LVNUM_LOG_FORMAT", "")

	path := writeFile(t, `
[engine]
lstsq_rcond = 1e-10

[log]
level = "debug"
format = "json"

[output]
precision = 3
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, 1e-10, cfg.Engine.LstsqRCond)
	require.Equal(t, linalg.DefaultPinvCutoff, cfg.Engine.PinvCutoff, "missing keys keep defaults")
	require.Equal(t, config.FormatJSON, cfg.Log.Format)
	require.Equal(t, 3, cfg.Output.Precision)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, lvl)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("LVNUM_LOG_LEVEL", "error")
	t.Setenv("LVNUM_LOG_FORMAT", "")

	cfg, err := config.Load(writeFile(t, "[log]\nlevel = \"debug\"\n"))
	require.NoError(t, err)
	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv("LVNUM_LOG_LEVEL", "")
	t.Setenv("LVNUM_LOG_FORMAT", "")

	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "[engine]\ntolerance = 1\n"},
		{"rcond out of range", "[engine]\nlstsq_rcond = 1.5\n"},
		{"negative cutoff", "[engine]\npinv_cutoff = -1e-3\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"bad format", "[log]\nformat = \"xml\"\n"},
		{"precision", "[output]\nprecision = 40\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tt.body))
			require.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(writeFile(t, "[engine\n"))
	require.Error(t, err, "malformed TOML")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
