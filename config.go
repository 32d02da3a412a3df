// SPDX-License-Identifier: MIT

package faststats

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the declarative form of the Evaluator options, for hosts that
// keep their settings in a YAML document:
//
//	shape: truncate        # strict | truncate
//	duplicates: first-wins # last-wins | first-wins
//	lenient_binary: true
//	workers: 8
type Config struct {
	Shape         string `yaml:"shape"`
	Duplicates    string `yaml:"duplicates"`
	LenientBinary bool   `yaml:"lenient_binary"`
	Workers       int    `yaml:"workers"`
}

// LoadConfig decodes a YAML Config from r. Unknown fields are rejected.
// An empty document yields the zero Config (all defaults).
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// Options validates c and returns the equivalent Option list.
// Empty fields keep their defaults.
func (c Config) Options() ([]Option, error) {
	var opts []Option

	switch c.Shape {
	case "", "strict":
	case "truncate":
		opts = append(opts, WithTruncation())
	default:
		return nil, fmt.Errorf("%w: shape %q", ErrInvalidConfig, c.Shape)
	}

	switch c.Duplicates {
	case "", "last-wins":
	case "first-wins":
		opts = append(opts, WithFirstLabelWins())
	default:
		return nil, fmt.Errorf("%w: duplicates %q", ErrInvalidConfig, c.Duplicates)
	}

	if c.LenientBinary {
		opts = append(opts, WithLenientBinary())
	}
	if c.Workers < 0 {
		return nil, fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if c.Workers > 0 {
		opts = append(opts, WithWorkers(c.Workers))
	}

	return opts, nil
}
