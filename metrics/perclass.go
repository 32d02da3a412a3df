// SPDX-License-Identifier: MIT

package metrics

import "github.com/katalvlaran/faststats/matrix"

// ClassCounts is the one-vs-rest outcome breakdown of a single class.
type ClassCounts struct {
	TP int64 // actual i, predicted i
	FP int64 // predicted i, actual other
	FN int64 // actual i, predicted other
	TN int64 // neither actual nor predicted i
}

// PerClass returns the one-vs-rest counts of every class of cm.
// Behavior highlights:
//   - For each i: TP+FP+FN+TN == Total(cm).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(K^2), Space O(K).
func PerClass(cm matrix.Matrix) ([]ClassCounts, error) {
	s, err := reduceSquare(cm)
	if err != nil {
		return nil, metricsErrorf(opPerClass, err)
	}

	var total int64
	for _, v := range s.rowSums {
		total += v
	}

	out := make([]ClassCounts, len(s.diag))
	for i, tp := range s.diag {
		fp := s.colSums[i] - tp
		fn := s.rowSums[i] - tp
		out[i] = ClassCounts{TP: tp, FP: fp, FN: fn, TN: total - tp - fp - fn}
	}

	return out, nil
}
