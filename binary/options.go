// SPDX-License-Identifier: MIT

package binary

import "github.com/katalvlaran/faststats/reduce"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultShapePolicy rejects actual/predicted arrays of different length.
	DefaultShapePolicy = reduce.DefaultShapePolicy

	// DefaultLenient keeps the strict 0/1 check enabled.
	DefaultLenient = false
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	shape   reduce.ShapePolicy // DefaultShapePolicy
	lenient bool               // DefaultLenient
}

// WithShapePolicy selects how unequal array lengths are handled.
// Unknown policies are ignored.
func WithShapePolicy(p reduce.ShapePolicy) Option {
	return func(o *Options) {
		if p == reduce.ShapeStrict || p == reduce.ShapeTruncate {
			o.shape = p
		}
	}
}

// WithLenient disables the 0/1 check and uses raw values.
func WithLenient() Option {
	return func(o *Options) { o.lenient = true }
}

// WithStrict re-enables the 0/1 check (default).
func WithStrict() Option {
	return func(o *Options) { o.lenient = false }
}

func gatherOptions(user ...Option) Options {
	o := Options{
		shape:   DefaultShapePolicy,
		lenient: DefaultLenient,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
