// SPDX-License-Identifier: MIT

package confusion

import (
	"cmp"
	"slices"
)

// Unique returns the distinct values of xs in first-seen order.
// Complexity: Time O(N), Space O(D) for D distinct values.
func Unique[T comparable](xs []T) []T {
	seen := make(map[T]struct{})
	out := make([]T, 0)
	for _, v := range xs {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Labels returns the sorted distinct union of actual and predicted.
// It is the vocabulary used when a caller does not supply one.
// Complexity: Time O(N + D log D), Space O(D).
func Labels[T cmp.Ordered](actual, predicted []T) []T {
	seen := make(map[T]struct{})
	out := make([]T, 0)
	for _, xs := range [2][]T{actual, predicted} {
		for _, v := range xs {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out
}
