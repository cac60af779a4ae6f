// SPDX-License-Identifier: MIT
// Package config: TOML configuration of the lvnum command line tool.
//
// A configuration file is optional. Missing keys keep their defaults, unknown keys are
// rejected, and LVNUM_-prefixed environment variables override the log settings.
//
//	[engine]
//	pinv_cutoff = 1.1920929e-07
//	lstsq_rcond = 1e-8
//
//	[log]
//	level  = "warn"     # zerolog level name
//	format = "console"  # console | json
//
//	[output]
//	precision = 6

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvnum/linalg"
)

// EnvPrefix is the prefix of every environment variable read by lvnum.
const EnvPrefix = "LVNUM_"

const (
	// DefaultLogLevel is the zerolog level used when none is configured.
	DefaultLogLevel = "warn"

	// DefaultLogFormat writes human-readable lines to stderr.
	DefaultLogFormat = FormatConsole

	// DefaultPrecision is the number of decimals printed for results.
	DefaultPrecision = 6

	// MaxPrecision bounds Output.Precision.
	MaxPrecision = 17
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete CLI configuration.
type Config struct {
	Engine EngineConfig `toml:"engine"`
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// EngineConfig holds the linalg tolerances.
type EngineConfig struct {
	PinvCutoff float64 `toml:"pinv_cutoff"`
	LstsqRCond float64 `toml:"lstsq_rcond"`
}

// LogConfig selects the zerolog level and writer.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// OutputConfig controls result printing.
type OutputConfig struct {
	Precision int `toml:"precision"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			PinvCutoff: linalg.DefaultPinvCutoff,
			LstsqRCond: linalg.DefaultLstsqRCond,
		},
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
		Output: OutputConfig{Precision: DefaultPrecision},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// the result. An empty path yields the defaults plus environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		path = os.ExpandEnv(path)
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
		}
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides the log settings from LVNUM_LOG_LEVEL and LVNUM_LOG_FORMAT.
func (c *Config) applyEnv() {
	c.Log.Level = getEnvString("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnvString("LOG_FORMAT", c.Log.Format)
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if !unitInterval(c.Engine.PinvCutoff) {
		return fmt.Errorf("%w: engine.pinv_cutoff %g outside [0, 1)", ErrInvalid, c.Engine.PinvCutoff)
	}
	if !unitInterval(c.Engine.LstsqRCond) {
		return fmt.Errorf("%w: engine.lstsq_rcond %g outside [0, 1)", ErrInvalid, c.Engine.LstsqRCond)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Log.Format != FormatConsole && c.Log.Format != FormatJSON {
		return fmt.Errorf("%w: log.format %q, want %q or %q", ErrInvalid, c.Log.Format, FormatConsole, FormatJSON)
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("%w: output.precision %d outside [0, %d]", ErrInvalid, c.Output.Precision, MaxPrecision)
	}
	return nil
}

// Level parses Log.Level.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil || c.Log.Level == "" {
		return zerolog.NoLevel, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

// EngineOptions translates the engine section into linalg options.
func (c Config) EngineOptions() []linalg.Option {
	return []linalg.Option{
		linalg.WithPinvCutoff(c.Engine.PinvCutoff),
		linalg.WithLstsqRCond(c.Engine.LstsqRCond),
	}
}

func unitInterval(x float64) bool { return !math.IsNaN(x) && x >= 0 && x < 1 }

// getEnvString returns EnvPrefix+key from the environment, or def when unset or empty.
func getEnvString(key, def string) string {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		return v
	}
	return def
}
