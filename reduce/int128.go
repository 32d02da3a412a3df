// SPDX-License-Identifier: MIT

// Package reduce - signed 128-bit accumulator.
//
// Purpose:
//   - Hold sums and dot products of fixed-width integers without overflow for
//     any realistic array length (int64 products need up to 127 bits).
//   - Stay allocation-free: the value is two machine words passed by value.
//
// Representation:
//   - Int128 is num.I128 from github.com/shabbyrobe/go-num; arithmetic
//     (Add, Sub, Mul, Neg) wraps modulo 2^128 like the fixed-width Go integers.
//   - Cmp only guarantees the sign of its result; compare with Sign()/0.

package reduce

import num "github.com/shabbyrobe/go-num"

// Int128 is a signed 128-bit integer. The zero value is 0.
type Int128 = num.I128

// I128 returns v as an Int128. Shorthand used heavily by callers and tests.
func I128(v int64) Int128 { return num.I128From64(v) }

// FromInt64 sign-extends v into an Int128.
func FromInt64(v int64) Int128 { return num.I128From64(v) }

// FromUint64 zero-extends v into an Int128.
func FromUint64(v uint64) Int128 { return num.I128FromU64(v) }
