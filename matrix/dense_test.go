// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/faststats/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions
// and accepts zero-sized shapes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(0, 0) // empty vocabulary shape
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, "", m.String())
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestAtSetOutOfBounds ensures At(), Set() and Add() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Add(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Col(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetAddGet validates Set() and Add() followed by At() on valid indices.
func TestSetAddGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7))
	require.NoError(t, m.Add(1, 2, 3))
	require.NoError(t, m.Add(0, 0, 1))

	require.Equal(t, int64(10), MustAt(t, m, 1, 2))
	require.Equal(t, int64(1), MustAt(t, m, 0, 0))
	require.Equal(t, []int64{1, 0, 0, 0, 0, 10}, m.RawData())
}

// TestRowCol verifies row and column copies.
func TestRowCol(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []int64{1, 2, 3, 4, 5, 6})

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int64{4, 5, 6}, row)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 6}, col)

	row[0] = 99 // copies must not alias storage
	require.Equal(t, int64(4), MustAt(t, m, 1, 0))
}

// TestNewDenseFromLengthMismatch ensures data length must equal rows*cols.
func TestNewDenseFromLengthMismatch(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []int64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []int64{1, 0, 0, 2})

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	require.Equal(t, int64(1), MustAt(t, m, 0, 0))
	require.Equal(t, int64(3), MustAt(t, clone, 0, 0))
}

// TestEqualAndString checks structural equality and the diagnostic dump.
func TestEqualAndString(t *testing.T) {
	a := NewFilledDense(t, 2, 2, []int64{1, 0, 1, 2})
	b := NewFilledDense(t, 2, 2, []int64{1, 0, 1, 2})
	c := NewFilledDense(t, 1, 4, []int64{1, 0, 1, 2})

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.False(t, a.Equal(nil))
	require.Equal(t, "[1, 0]\n[1, 2]\n", a.String())
}
