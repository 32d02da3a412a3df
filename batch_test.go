// SPDX-License-Identifier: MIT

package faststats_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/faststats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	ev := faststats.New(faststats.WithWorkers(2))
	reqs := []faststats.Request{
		{Op: faststats.OpConfusionMatrix, Actual: actual, Predicted: predicted, Labels: vocab},
		{Op: faststats.OpBinaryF1Reqs, Actual: actual, Predicted: predicted},
		{Op: faststats.OpUnique, Actual: []uint16{4, 4, 1}},
		{Op: faststats.OpBinaryPrecisionReqs, Actual: []int32{1}, Predicted: []int64{1}},
		{Op: faststats.Op(99)},
		{Op: faststats.OpSum, Actual: []bool{true, true, false}},
	}

	results, err := ev.Run(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))

	assert.NoError(t, results[0].Err)
	assert.Equal(t, []int64{1, 0, 1, 2}, results[0].Matrix.RawData())

	assert.NoError(t, results[1].Err)
	assert.Equal(t, "(2, 2, 3)", results[1].Reqs.String())

	assert.Equal(t, []uint16{4, 1}, results[2].Values)

	assert.ErrorIs(t, results[3].Err, faststats.ErrUnsupportedKind)
	assert.ErrorIs(t, results[4].Err, faststats.ErrUnknownOp)

	assert.Equal(t, "2", results[5].Total.String())

	for i, r := range results {
		assert.Equal(t, reqs[i].Op, r.Op)
	}
}

// TestRun_MatchesSequential evaluates many requests and compares each with Do.
func TestRun_MatchesSequential(t *testing.T) {
	ev := faststats.New(faststats.WithWorkers(4))
	reqs := make([]faststats.Request, 64)
	for i := range reqs {
		a := make([]uint8, 100)
		p := make([]uint8, 100)
		for j := range a {
			a[j] = uint8((i + j) % 2)
			p[j] = uint8((i * j) % 2)
		}
		reqs[i] = faststats.Request{Op: faststats.OpBinaryF1Reqs, Actual: a, Predicted: p}
	}

	results, err := ev.Run(context.Background(), reqs)
	require.NoError(t, err)
	for i := range reqs {
		want := ev.Do(reqs[i])
		assert.Equal(t, want.Reqs, results[i].Reqs, fmt.Sprintf("request %d", i))
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := faststats.New().Run(ctx, []faststats.Request{
		{Op: faststats.OpSum, Actual: []int8{1}},
	})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_Empty(t *testing.T) {
	results, err := faststats.New().Run(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestOp_String(t *testing.T) {
	assert.Equal(t, "confusion_matrix", faststats.OpConfusionMatrix.String())
	assert.Equal(t, "dot_sum", faststats.OpDotSum.String())
	assert.Equal(t, "Op(99)", faststats.Op(99).String())
}
