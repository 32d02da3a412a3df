// SPDX-License-Identifier: MIT

// Package confusion: functional configuration for Build.
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - gatherOptions helper (internal).

package confusion

import "github.com/katalvlaran/faststats/reduce"

// DuplicatePolicy decides which position a label owns when it appears more
// than once in the vocabulary.
type DuplicatePolicy int

const (
	// LastWins maps a repeated label to its last position. Default.
	// The earlier rows and columns stay all-zero.
	LastWins DuplicatePolicy = iota

	// FirstWins maps a repeated label to its first position.
	FirstWins
)

// String returns the policy name.
func (p DuplicatePolicy) String() string {
	switch p {
	case LastWins:
		return "last-wins"
	case FirstWins:
		return "first-wins"
	}

	return "unknown"
}

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultShapePolicy rejects actual/predicted arrays of different length.
	DefaultShapePolicy = reduce.DefaultShapePolicy

	// DefaultDuplicatePolicy is LastWins.
	DefaultDuplicatePolicy = LastWins
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	shape reduce.ShapePolicy // DefaultShapePolicy
	dup   DuplicatePolicy    // DefaultDuplicatePolicy
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

// WithDuplicatePolicy selects how repeated vocabulary entries are mapped.
// Unknown policies are ignored.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(o *Options) {
		if p == LastWins || p == FirstWins {
			o.dup = p
		}
	}
}

// WithFirstLabelWins is shorthand for WithDuplicatePolicy(FirstWins).
func WithFirstLabelWins() Option {
	return WithDuplicatePolicy(FirstWins)
}

// gatherOptions applies user setters over the defaults, in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		shape: DefaultShapePolicy,
		dup:   DefaultDuplicatePolicy,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}
