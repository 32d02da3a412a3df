// SPDX-License-Identifier: MIT

package faststats

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/faststats/binary"
	"github.com/katalvlaran/faststats/confusion"
	"github.com/katalvlaran/faststats/reduce"
)

// Option configures an Evaluator.
type Option func(*config)

type config struct {
	shape     reduce.ShapePolicy
	firstWins bool
	lenient   bool
	workers   int
	logger    *slog.Logger
}

func defaultConfig() config {
	return config{
		shape:   reduce.DefaultShapePolicy,
		workers: runtime.NumCPU(),
		logger:  slog.Default(),
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithShapePolicy selects how unequal actual/predicted lengths are handled
// (default: reduce.ShapeStrict). Unknown policies are ignored.
func WithShapePolicy(p reduce.ShapePolicy) Option {
	return func(c *config) {
		if p == reduce.ShapeStrict || p == reduce.ShapeTruncate {
			c.shape = p
		}
	}
}

// WithTruncation is shorthand for WithShapePolicy(reduce.ShapeTruncate).
func WithTruncation() Option {
	return WithShapePolicy(reduce.ShapeTruncate)
}

// WithFirstLabelWins maps a repeated vocabulary entry to its first position
// instead of its last.
func WithFirstLabelWins() Option {
	return func(c *config) { c.firstWins = true }
}

// WithLenientBinary disables the 0/1 check on the two-class fast path.
func WithLenientBinary() Option {
	return func(c *config) { c.lenient = true }
}

// WithWorkers bounds the goroutines used by Run (default: runtime.NumCPU()).
// Non-positive values are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// confusionOptions translates the config for the confusion builder.
func (c config) confusionOptions() []confusion.Option {
	opts := []confusion.Option{confusion.WithShapePolicy(c.shape)}
	if c.firstWins {
		opts = append(opts, confusion.WithFirstLabelWins())
	}

	return opts
}

// binaryOptions translates the config for the two-class fast path.
func (c config) binaryOptions() []binary.Option {
	opts := []binary.Option{binary.WithShapePolicy(c.shape)}
	if c.lenient {
		opts = append(opts, binary.WithLenient())
	}

	return opts
}
