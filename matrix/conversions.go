// SPDX-License-Identifier: MIT

// Package matrix - converters to and from gonum.
//
// Purpose:
//   - Hand integer count tables to gonum/mat for callers that compute ratios
//     (precision, recall, F1) or run further linear algebra.
//   - Accept gonum matrices back as counts when every value is integral.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum copies X into a new *mat.Dense of float64 values.
// Behavior highlights:
//   - gonum forbids zero-sized Dense; a 0-row or 0-col X fails with
//     ErrInvalidDimensions.
//   - Counts above 2^53 lose precision in float64.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions; At errors from non-Dense
//     implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ToGonum(X Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	r, c := X.Rows(), X.Cols()
	if r == 0 || c == 0 {
		return nil, fmt.Errorf("%s(%dx%d): %w", opToGonum, r, c, ErrInvalidDimensions)
	}

	buf := make([]float64, r*c)
	if d, ok := X.(*Dense); ok {
		for i, v := range d.data {
			buf[i] = float64(v)
		}

		return mat.NewDense(r, c, buf), nil
	}

	var v int64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, matrixErrorf(opToGonum, err)
			}
			buf[i*c+j] = float64(v)
		}
	}

	return mat.NewDense(r, c, buf), nil
}

// FromGonum copies a gonum matrix into a new *Dense.
// Implementation:
//   - Stage 1: read the shape of the source.
//   - Stage 2: convert each entry, rejecting NaN, ±Inf, fractions and
//     values outside the int64 range.
//
// Errors:
//   - ErrNotIntegral wrapped with the offending coordinates.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := src.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = src.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) ||
				v < math.MinInt64 || v >= math.MaxInt64 {
				return nil, fmt.Errorf("%s(%d,%d): %w", opFromGonum, i, j, ErrNotIntegral)
			}
			out.data[i*c+j] = int64(v)
		}
	}

	return out, nil
}
