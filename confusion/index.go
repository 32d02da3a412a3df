// SPDX-License-Identifier: MIT

package confusion

// Index maps label values to their position in a vocabulary.
// An Index is immutable after NewIndex and safe for concurrent reads.
type Index[T comparable] struct {
	labels []T
	pos    map[T]int
}

// NewIndex builds the lookup table for labels.
// Implementation:
//   - Stage 1: copy the vocabulary so later caller edits cannot leak in.
//   - Stage 2: record each label's position according to dup.
//
// Behavior highlights:
//   - Under LastWins a repeated label maps to its final position; under
//     FirstWins to its first one.
//   - A nil or empty vocabulary yields an Index with Len() == 0.
//
// Complexity:
//   - Time O(K), Space O(K).
func NewIndex[T comparable](labels []T, dup DuplicatePolicy) *Index[T] {
	idx := &Index[T]{
		labels: make([]T, len(labels)),
		pos:    make(map[T]int, len(labels)),
	}
	copy(idx.labels, labels)

	for i, l := range idx.labels {
		if dup == FirstWins {
			if _, seen := idx.pos[l]; seen {
				continue
			}
		}
		idx.pos[l] = i
	}

	return idx
}

// Lookup returns the position of v and whether v is in the vocabulary.
// Complexity: O(1) expected.
func (x *Index[T]) Lookup(v T) (int, bool) {
	i, ok := x.pos[v]

	return i, ok
}

// Len returns K, the vocabulary size including duplicates.
func (x *Index[T]) Len() int { return len(x.labels) }

// Labels returns a copy of the vocabulary in position order.
func (x *Index[T]) Labels() []T {
	out := make([]T, len(x.labels))
	copy(out, x.labels)

	return out
}
