// SPDX-License-Identifier: MIT

// Package reduce - elementwise sum and product-sum kernels.
//
// Determinism & Performance:
//   - Fixed i-order traversal, single pass, no allocation.
//   - Signedness of T is resolved once per call, outside the loop.
//   - Every element is widened to Int128 before it is added or multiplied.

package reduce

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opDotSum = "DotSum"
	opJoint  = "Joint"
)

// Totals is the result of Joint: the shared dot product plus both plain sums.
type Totals struct {
	Dot  Int128 // Σ a[i]*b[i]
	SumA Int128 // Σ a[i]
	SumB Int128 // Σ b[i]
}

// Sum returns Σ xs[i] in a 128-bit accumulator.
// Behavior highlights:
//   - Empty or nil input sums to 0.
//
// Complexity:
//   - Time O(n), Space O(1).
func Sum[T Element](xs []T) Int128 {
	signed := isSigned[T]()

	var acc Int128
	for _, v := range xs {
		acc = acc.Add(widen(v, signed))
	}

	return acc
}

// DotSum returns Σ a[i]*b[i] with both factors widened before multiplying.
// Implementation:
//   - Stage 1: validate len(a) == len(b).
//   - Stage 2: single lock-step pass accumulating widened products.
//
// Errors:
//   - ErrShapeMismatch when the lengths differ.
//
// Complexity:
//   - Time O(n), Space O(1).
func DotSum[T Element](a, b []T) (Int128, error) {
	if len(a) != len(b) {
		return Int128{}, shapeErrorf(opDotSum, len(a), len(b))
	}
	signed := isSigned[T]()

	var acc Int128
	for i := range a {
		acc = acc.Add(widen(a[i], signed).Mul(widen(b[i], signed)))
	}

	return acc, nil
}

// Joint returns the dot product of a and b together with Σa and Σb, computed
// in one pass over both arrays.
//
// Errors:
//   - ErrShapeMismatch when the lengths differ.
//
// Complexity:
//   - Time O(n), Space O(1).
func Joint[T Element](a, b []T) (Totals, error) {
	if len(a) != len(b) {
		return Totals{}, shapeErrorf(opJoint, len(a), len(b))
	}
	signed := isSigned[T]()

	var t Totals
	var wa, wb Int128
	for i := range a {
		wa, wb = widen(a[i], signed), widen(b[i], signed)
		t.Dot = t.Dot.Add(wa.Mul(wb))
		t.SumA = t.SumA.Add(wa)
		t.SumB = t.SumB.Add(wb)
	}

	return t, nil
}

// shapeErrorf wraps ErrShapeMismatch with the operation and both lengths.
func shapeErrorf(op string, n, m int) error {
	return fmt.Errorf("%s: len %d vs %d: %w", op, n, m, ErrShapeMismatch)
}
