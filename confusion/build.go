// SPDX-License-Identifier: MIT

package confusion

import (
	"fmt"

	"github.com/katalvlaran/faststats/matrix"
	"github.com/katalvlaran/faststats/reduce"
)

const opBuild = "confusion.Build"

// CheckShape returns the error Build would report for arrays of length n and
// m under opts, without reading any data. Callers use it to fail fast before
// doing O(N) work such as deriving a vocabulary.
func CheckShape(n, m int, opts ...Option) error {
	if err := gatherOptions(opts...).shape.Check(n, m); err != nil {
		return fmt.Errorf("%s: %w", opBuild, err)
	}

	return nil
}

// Build returns the K×K confusion matrix of actual vs predicted over labels.
// Implementation:
//   - Stage 1: align the two arrays under the configured shape policy.
//   - Stage 2: index the vocabulary (O(K)).
//   - Stage 3: single lock-step pass; a sample lands in (row(actual),
//     col(predicted)) only when both labels are in the vocabulary.
//
// Behavior highlights:
//   - Empty arrays yield an all-zero K×K matrix.
//   - An empty vocabulary yields a 0×0 matrix.
//   - Total(result) <= N, with equality iff every sample's labels are covered.
//   - Inputs are never modified.
//
// Errors:
//   - reduce.ErrShapeMismatch when lengths differ under ShapeStrict.
//
// Complexity:
//   - Time O(K + N), Space O(K^2).
func Build[T comparable](actual, predicted, labels []T, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)

	a, p, err := reduce.Align(actual, predicted, o.shape)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	idx := NewIndex(labels, o.dup)
	k := idx.Len()
	cm, err := matrix.NewDense(k, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuild, err)
	}

	var row, col int
	var ok bool
	for i := range a {
		if row, ok = idx.Lookup(a[i]); !ok {
			continue
		}
		if col, ok = idx.Lookup(p[i]); !ok {
			continue
		}
		// row, col come from idx, so they are always in range.
		if err = cm.Add(row, col, 1); err != nil {
			return nil, fmt.Errorf("%s: %w", opBuild, err)
		}
	}

	return cm, nil
}
