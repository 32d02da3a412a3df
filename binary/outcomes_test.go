// SPDX-License-Identifier: MIT

package binary_test

import (
	"testing"

	"github.com/katalvlaran/faststats/binary"
	"github.com/katalvlaran/faststats/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomes(t *testing.T) {
	c, err := binary.Outcomes(fourActual, fourPredicted)
	require.NoError(t, err)
	assert.Equal(t, binary.Counts{
		TP: reduce.I128(2),
		FP: reduce.I128(0),
		FN: reduce.I128(1),
		TN: reduce.I128(1),
	}, c)

	f, err := binary.F1Reqs(fourActual, fourPredicted)
	require.NoError(t, err)
	assert.Equal(t, f, c.Reqs())
}

func TestOutcomes_Lenient(t *testing.T) {
	_, err := binary.Outcomes([]uint8{3}, []uint8{0})
	require.ErrorIs(t, err, binary.ErrNonBinary)

	c, err := binary.Outcomes([]uint8{3, 0, 7, 0}, []uint8{9, 9, 0, 0}, binary.WithLenient())
	require.NoError(t, err)
	assert.Equal(t, reduce.I128(1), c.TP)
	assert.Equal(t, reduce.I128(1), c.FP)
	assert.Equal(t, reduce.I128(1), c.FN)
	assert.Equal(t, reduce.I128(1), c.TN)
}

func TestOutcomes_Shape(t *testing.T) {
	_, err := binary.Outcomes([]int8{1}, []int8{})
	assert.ErrorIs(t, err, reduce.ErrShapeMismatch)
}
