// SPDX-License-Identifier: MIT

package metrics

import "github.com/katalvlaran/faststats/matrix"

// Column positions inside requirement tables.
const (
	ColTP   = 0 // true positives
	ColTPFP = 1 // predicted positives (PrecisionReqs, F1Reqs)
	ColTPFN = 1 // actual positives (RecallReqs)

	ColF1TPFN = 2 // actual positives (F1Reqs)
)

// sums holds the three per-class vectors every table is assembled from.
type sums struct {
	diag, colSums, rowSums []int64
}

// reduceSquare validates cm and computes its diagonal, column and row sums.
// Complexity: O(K^2).
func reduceSquare(cm matrix.Matrix) (sums, error) {
	var s sums
	var err error
	if err = matrix.ValidateSquare(cm); err != nil {
		return s, err
	}
	if s.diag, err = matrix.Diag(cm); err != nil {
		return s, err
	}
	if s.colSums, err = matrix.ColSums(cm); err != nil {
		return s, err
	}
	if s.rowSums, err = matrix.RowSums(cm); err != nil {
		return s, err
	}

	return s, nil
}

// table lays out columns side by side into a fresh K×len(cols) Dense.
func table(k int, cols ...[]int64) *matrix.Dense {
	w := len(cols)
	data := make([]int64, k*w)
	for i := 0; i < k; i++ {
		for j, col := range cols {
			data[i*w+j] = col[i]
		}
	}
	// shape and data length agree by construction
	out, _ := matrix.NewDenseFrom(k, w, data)

	return out
}

// PrecisionReqs returns the K×2 table whose row i is (cm(i,i), Σ_r cm(r,i)).
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(K^2), Space O(K).
func PrecisionReqs(cm matrix.Matrix) (*matrix.Dense, error) {
	s, err := reduceSquare(cm)
	if err != nil {
		return nil, metricsErrorf(opPrecisionReqs, err)
	}

	return table(len(s.diag), s.diag, s.colSums), nil
}

// RecallReqs returns the K×2 table whose row i is (cm(i,i), Σ_c cm(i,c)).
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(K^2), Space O(K).
func RecallReqs(cm matrix.Matrix) (*matrix.Dense, error) {
	s, err := reduceSquare(cm)
	if err != nil {
		return nil, metricsErrorf(opRecallReqs, err)
	}

	return table(len(s.diag), s.diag, s.rowSums), nil
}

// F1Reqs returns the K×3 table whose row i is
// (cm(i,i), Σ_r cm(r,i), Σ_c cm(i,c)).
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//
// Complexity:
//   - Time O(K^2), Space O(K).
func F1Reqs(cm matrix.Matrix) (*matrix.Dense, error) {
	s, err := reduceSquare(cm)
	if err != nil {
		return nil, metricsErrorf(opF1Reqs, err)
	}

	return table(len(s.diag), s.diag, s.colSums, s.rowSums), nil
}

// Totals returns the column totals of a requirement table, e.g. the
// micro-averaged (ΣTP, Σ(TP+FP)) of a precision table.
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(K*W), Space O(W).
func Totals(reqs matrix.Matrix) ([]int64, error) {
	out, err := matrix.ColSums(reqs)
	if err != nil {
		return nil, metricsErrorf(opTotals, err)
	}

	return out, nil
}
