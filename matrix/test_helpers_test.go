// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/faststats/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix so type assertions to *Dense fail, forcing the
// At-based fallback paths.
type hide struct{ matrix.Matrix }

// NewFilledDense builds an r×c Dense from row-major values or fails the test.
func NewFilledDense(t *testing.T, r, c int, vals []int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
