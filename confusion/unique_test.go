// SPDX-License-Identifier: MIT

package confusion_test

import (
	"testing"

	"github.com/katalvlaran/faststats/confusion"
	"github.com/stretchr/testify/assert"
)

func TestUnique(t *testing.T) {
	assert.Equal(t, []int32{3, 1, 2}, confusion.Unique([]int32{3, 1, 3, 2, 1}))
	assert.Equal(t, []bool{true, false}, confusion.Unique([]bool{true, true, false}))
	assert.Empty(t, confusion.Unique([]uint64(nil)))

	// idempotent
	u := confusion.Unique([]int8{4, 4, -1, 0, -1})
	assert.Equal(t, u, confusion.Unique(u))
}

func TestLabels(t *testing.T) {
	got := confusion.Labels([]int64{3, 1, 3}, []int64{2, -5, 1})
	assert.Equal(t, []int64{-5, 1, 2, 3}, got)

	assert.Empty(t, confusion.Labels([]uint8{}, nil))
}
