// SPDX-License-Identifier: MIT

package reduce

const opAlign = "Align"

// ShapePolicy decides what happens when actual and predicted arrays differ in
// length.
type ShapePolicy int

const (
	// ShapeStrict rejects unequal lengths with ErrShapeMismatch. Default.
	ShapeStrict ShapePolicy = iota

	// ShapeTruncate silently drops the tail of the longer array, the same
	// result a plain pairwise zip of the two arrays gives.
	ShapeTruncate
)

// DefaultShapePolicy is the policy used when none is configured.
const DefaultShapePolicy = ShapeStrict

// String returns the policy name.
func (p ShapePolicy) String() string {
	switch p {
	case ShapeStrict:
		return "strict"
	case ShapeTruncate:
		return "truncate"
	}

	return "unknown"
}

// Check reports whether arrays of length n and m can be aligned under p.
// Complexity: O(1).
func (p ShapePolicy) Check(n, m int) error {
	if n == m || p == ShapeTruncate {
		return nil
	}

	return shapeErrorf(opAlign, n, m)
}

// Align returns a and b as equal-length views according to policy.
// Behavior highlights:
//   - Equal lengths: inputs are returned unchanged under every policy.
//   - ShapeTruncate: both views are re-sliced to the shorter length; no copy.
//   - Any other policy: ErrShapeMismatch.
//
// Complexity:
//   - Time O(1), Space O(1).
func Align[T any](a, b []T, policy ShapePolicy) ([]T, []T, error) {
	if err := policy.Check(len(a), len(b)); err != nil {
		return nil, nil, err
	}
	n := min(len(a), len(b))

	return a[:n], b[:n], nil
}
