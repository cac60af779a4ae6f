// SPDX-License-Identifier: MIT
// Package cli: the lvnum command tree.
//
// Every numeric subcommand reads one dataset document (YAML or TOML), runs a single
// linalg operation on an engine built from the configuration, and prints the result.
// With --metrics the kernel call counters gathered during the run are printed last.

package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvnum/internal/config"
	"github.com/katalvlaran/lvnum/internal/dataset"
	"github.com/katalvlaran/lvnum/kernel"
	"github.com/katalvlaran/lvnum/linalg"
)

// Build metadata, set with -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "development"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	out, errOut io.Writer

	cfgFile     string
	logLevel    string
	showMetrics bool
	precision   int

	cfg      config.Config
	log      zerolog.Logger
	registry *prometheus.Registry
	engine   *linalg.Engine
}

// NewRootCommand builds the command tree writing results to out and logs to errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:   "lvnum",
		Short: "Dense linear algebra from the command line",
		Long: `lvnum runs dense linear-algebra operations on matrices read from YAML or TOML files.

Commands:
  inverse  - matrix inverse (real or complex)
  pinv     - Moore-Penrose pseudoinverse
  solve    - square or overdetermined linear systems
  lstsq    - rank-revealing least squares
  fit      - exponential and power curve fits
  eig      - eigenvalues
  svd      - singular values
  norm     - vector and Frobenius norms
  qr, lq   - orthogonal factorizations
  lu       - LU factorization with partial pivoting
  interp   - linear and polynomial interpolation
  random   - generate a random matrix document`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd) },
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.showMetrics {
				return a.printMetrics()
			}
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (TOML); LVNUM_CONFIG is used when empty")
	pf.StringVar(&a.logLevel, "log-level", "", "zerolog level, overrides the config file")
	pf.BoolVar(&a.showMetrics, "metrics", false, "print kernel call counters after the run")
	pf.IntVar(&a.precision, "precision", -1, "decimals printed for results, overrides the config file")

	root.AddCommand(
		a.inverseCmd(), a.pinvCmd(), a.solveCmd(), a.lstsqCmd(), a.fitCmd(),
		a.eigCmd(), a.svdCmd(), a.normCmd(), a.qrCmd(), a.lqCmd(), a.luCmd(),
		a.interpCmd(), a.randomCmd(), a.versionCmd(),
	)
	return root
}

// Execute runs the command tree on the process arguments.
func Execute() int {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "lvnum: %v\n", err)
		return 1
	}
	return 0
}

// setup loads the configuration and builds the logger, metrics and engine.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.cfgFile
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "CONFIG")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("precision") {
		cfg.Output.Precision = a.precision
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	var w io.Writer = a.errOut
	if cfg.Log.Format == config.FormatConsole {
		w = zerolog.ConsoleWriter{Out: a.errOut, NoColor: true, TimeFormat: time.RFC3339}
	}
	a.log = zerolog.New(w).Level(level).With().Timestamp().Str("cmd", cmd.Name()).Logger()

	a.registry = prometheus.NewRegistry()
	k := kernel.Instrument(kernel.Gonum{}, kernel.Gonum{}, kernel.NewMetrics(a.registry))
	opts := append(cfg.EngineOptions(),
		linalg.WithKernel(k),
		linalg.WithComplexKernel(k),
		linalg.WithLogger(a.log),
	)
	a.engine = linalg.New(opts...)

	a.log.Debug().
		Str("config", path).
		Float64("lstsq_rcond", cfg.Engine.LstsqRCond).
		Float64("pinv_cutoff", cfg.Engine.PinvCutoff).
		Msg("engine ready")
	return nil
}

// load decodes the dataset named by the single positional argument.
func (a *app) load(args []string) (*dataset.Document, error) {
	doc, err := dataset.Load(args[0])
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("file", args[0]).Bool("complex", doc.IsComplex()).Msg("dataset loaded")
	return doc, nil
}

// printMetrics writes one line per non-zero kernel counter, sorted.
func (a *app) printMetrics() error {
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		if mf.GetName() != "lvnum_kernel_calls_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s %g", strings.Join(labels, " "), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	fmt.Fprintln(a.out, "# kernel calls")
	for _, l := range lines {
		fmt.Fprintln(a.out, l)
	}
	return nil
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "lvnum v%s (%s)\n", Version, GitCommit)
		},
	}
}
