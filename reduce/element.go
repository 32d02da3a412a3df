// SPDX-License-Identifier: MIT

package reduce

import "golang.org/x/exp/constraints"

// Element is the numeric capability every reduction is written against:
// any integer kind that can be widened into an Int128.
// The dispatcher only ever instantiates it with the fixed-width kinds
// (int8..int64, uint8..uint64); int, uint and named integer types also work
// for typed callers.
type Element interface {
	constraints.Integer
}

// isSigned reports whether T is a signed integer kind.
// ^0 is -1 for signed kinds and the maximum value for unsigned ones.
func isSigned[T Element]() bool {
	var zero T

	return ^zero < zero
}

// widen converts v into an Int128 given the signedness of its kind.
// Keeping the signedness outside lets tight loops resolve it once.
func widen[T Element](v T, signed bool) Int128 {
	if signed {
		return FromInt64(int64(v))
	}

	return FromUint64(uint64(v))
}

// Widen converts a single element of any supported kind into an Int128.
// Complexity: O(1).
func Widen[T Element](v T) Int128 {
	return widen(v, isSigned[T]())
}
