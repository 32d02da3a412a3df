// Package reduce provides the elementwise reductions every other faststats
// package is built on.
//
// What & Why:
//
//	Label arrays arrive in any fixed-width integer kind. Summing a long uint64
//	or int64 array in its own width overflows quickly, so every reduction here
//	widens each element into a signed 128-bit accumulator (Int128, backed by
//	go-num's I128) before it is combined with anything else.
//
// Exposed API:
//   - Sum(xs)        -> Σ xs[i]
//   - DotSum(a, b)   -> Σ a[i]*b[i]
//   - Joint(a, b)    -> (Σ a[i]*b[i], Σ a[i], Σ b[i]) in one pass
//   - Align(a, b, p) -> equal-length views under a ShapePolicy
//
// Complexity:
//
//	All reductions are O(n) time and O(1) extra space. None of them allocate.
package reduce
