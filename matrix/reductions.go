// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row/column/diagonal reductions the metric extractor is
//     composed of, as deterministic single passes.
//
// Exposed API:
//   - RowSums(X) -> []int64 (len = rows)
//   - ColSums(X) -> []int64 (len = cols)
//   - Diag(X)    -> []int64 (len = n, square only)
//   - Trace(X)   -> Σ X[i,i]
//   - Total(X)   -> Σ X[i,j]
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops.
//   - Dense fast-paths operate on the row-major flat buffer; other Matrix
//     implementations go through At with full error propagation.
//   - Zero-size matrices yield zero-length (or zero-valued) results.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opRowSums = "RowSums"
	opColSums = "ColSums"
	opDiag    = "Diag"
	opTrace   = "Trace"
	opTotal   = "Total"
)

// matrixErrorf tags err with the operation that detected it.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// RowSums returns Σ_j X[i,j] for every row i.
// Implementation:
//   - Stage 1: validate X (non-nil).
//   - Stage 2: accumulate per row (Dense fast-path; At fallback).
//
// For a confusion matrix (row = actual) row i is the number of samples whose
// actual label is class i, i.e. TP+FN.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func RowSums(X Matrix) ([]int64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := X.Rows(), X.Cols()
	out := make([]int64, r)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out[i] += d.data[base+j]
			}
		}

		return out, nil
	}

	var v int64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			out[i] += v
		}
	}

	return out, nil
}

// ColSums returns Σ_i X[i,j] for every column j.
// Implementation:
//   - Stage 1: validate X (non-nil).
//   - Stage 2: accumulate per column in row-major order (Dense fast-path; At fallback).
//
// For a confusion matrix (column = predicted) column j is the number of samples
// predicted as class j, i.e. TP+FP.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColSums(X Matrix) ([]int64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	r, c := X.Rows(), X.Cols()
	out := make([]int64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				out[j] += d.data[base+j]
			}
		}

		return out, nil
	}

	var v int64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opColSums, err)
			}
			out[j] += v
		}
	}

	return out, nil
}

// Diag returns the main diagonal of a square matrix.
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n), Space O(n).
func Diag(X Matrix) ([]int64, error) {
	if err := ValidateSquare(X); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	n := X.Rows()
	out := make([]int64, n)
	if d, ok := X.(*Dense); ok {
		for i := 0; i < n; i++ {
			out[i] = d.data[i*n+i]
		}

		return out, nil
	}

	var err error
	for i := 0; i < n; i++ {
		if out[i], err = X.At(i, i); err != nil {
			return nil, matrixErrorf(opDiag, err)
		}
	}

	return out, nil
}

// Trace returns Σ X[i,i] of a square matrix. For a confusion matrix this is
// the number of correctly classified samples.
// Complexity: O(n).
func Trace(X Matrix) (int64, error) {
	diag, err := Diag(X)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}

	var s int64
	for _, v := range diag {
		s += v
	}

	return s, nil
}

// Total returns the sum of all entries.
// Complexity: O(r*c).
func Total(X Matrix) (int64, error) {
	rows, err := RowSums(X)
	if err != nil {
		return 0, matrixErrorf(opTotal, err)
	}

	var s int64
	for _, v := range rows {
		s += v
	}

	return s, nil
}
