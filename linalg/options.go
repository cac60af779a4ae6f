// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvnum/kernel"
)

const (
	// DefaultPinvCutoff is the relative singular value cutoff of Pseudoinverse:
	// s < DefaultPinvCutoff*s_max is treated as zero. It equals float32 machine epsilon.
	DefaultPinvCutoff = 1.1920929e-07

	// DefaultLstsqRCond is the rank threshold of LinearLeastSquares.
	DefaultLstsqRCond = 1e-8
)

// Options configures an Engine.
//
// Kernel        – real dense kernel (default kernel.Gonum{}).
// ComplexKernel – complex dense kernel (default kernel.Gonum{}).
// Logger        – diagnostics sink for kernel failures (default zerolog.Nop()).
// PinvCutoff    – relative zero cutoff for Pseudoinverse, must be in [0, 1).
// LstsqRCond    – rank threshold for LinearLeastSquares, must be in [0, 1).
type Options struct {
	Kernel        kernel.Real
	ComplexKernel kernel.Complex
	Logger        zerolog.Logger
	PinvCutoff    float64
	LstsqRCond    float64
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// DefaultOptions returns the configuration used by New without options.
func DefaultOptions() Options {
	return Options{
		Kernel:        kernel.Gonum{},
		ComplexKernel: kernel.Gonum{},
		Logger:        zerolog.Nop(),
		PinvCutoff:    DefaultPinvCutoff,
		LstsqRCond:    DefaultLstsqRCond,
	}
}

// WithKernel replaces the real kernel. Panics on nil.
func WithKernel(k kernel.Real) Option {
	if k == nil {
		panic("linalg: WithKernel(nil)")
	}
	return func(o *Options) { o.Kernel = k }
}

// WithComplexKernel replaces the complex kernel. Panics on nil.
func WithComplexKernel(k kernel.Complex) Option {
	if k == nil {
		panic("linalg: WithComplexKernel(nil)")
	}
	return func(o *Options) { o.ComplexKernel = k }
}

// WithLogger routes kernel failure diagnostics to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithPinvCutoff sets the relative singular value cutoff. Panics outside [0, 1).
func WithPinvCutoff(c float64) Option {
	if c < 0 || c >= 1 || math.IsNaN(c) {
		panic("linalg: WithPinvCutoff outside [0, 1)")
	}
	return func(o *Options) { o.PinvCutoff = c }
}

// WithLstsqRCond sets the least-squares rank threshold. Panics outside [0, 1).
func WithLstsqRCond(r float64) Option {
	if r < 0 || r >= 1 || math.IsNaN(r) {
		panic("linalg: WithLstsqRCond outside [0, 1)")
	}
	return func(o *Options) { o.LstsqRCond = r }
}
