// SPDX-License-Identifier: MIT

package dispatch_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/faststats/binary"
	"github.com/katalvlaran/faststats/confusion"
	"github.com/katalvlaran/faststats/dispatch"
	"github.com/katalvlaran/faststats/matrix"
	"github.com/katalvlaran/faststats/reduce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	propSeed   = 20240917
	propRounds = 200
	propMaxLen = 64
)

// randomBools returns a pair of equal-length boolean arrays of random length.
func randomBools(r *rand.Rand) (a, p []bool) {
	n := r.Intn(propMaxLen + 1)
	a, p = make([]bool, n), make([]bool, n)
	for i := range a {
		a[i] = r.Intn(2) == 1
		p[i] = r.Intn(2) == 1
	}

	return a, p
}

// randomClasses returns equal-length int16 arrays with values in [0, k).
func randomClasses(r *rand.Rand, k int) (a, p []int16) {
	n := r.Intn(propMaxLen + 1)
	a, p = make([]int16, n), make([]int16, n)
	for i := range a {
		a[i] = int16(r.Intn(k))
		p[i] = int16(r.Intn(k))
	}

	return a, p
}

// naiveCounts counts by brute force: actual∧predicted, predicted, actual.
func naiveCounts(a, p []bool) (tp, np, na int64) {
	for i := range a {
		if a[i] && p[i] {
			tp++
		}
		if p[i] {
			np++
		}
		if a[i] {
			na++
		}
	}

	return tp, np, na
}

// TestBinaryReqs_RandomAgainstNaive compares the three binary requirement
// tuples with brute-force counts over random boolean arrays.
func TestBinaryReqs_RandomAgainstNaive(t *testing.T) {
	r := rand.New(rand.NewSource(propSeed))

	for round := 0; round < propRounds; round++ {
		a, p := randomBools(r)
		tp, np, na := naiveCounts(a, p)

		prec, err := dispatch.BinaryPrecisionReqs(a, p)
		require.NoError(t, err)
		rec, err := dispatch.BinaryRecallReqs(a, p)
		require.NoError(t, err)
		f1, err := dispatch.BinaryF1Reqs(a, p)
		require.NoError(t, err)

		assert.Equal(t, binary.Reqs{TP: reduce.I128(tp), TPFP: reduce.I128(np), TPFN: reduce.I128(0)}, prec, "round %d", round)
		assert.Equal(t, binary.Reqs{TP: reduce.I128(tp), TPFP: reduce.I128(0), TPFN: reduce.I128(na)}, rec, "round %d", round)
		assert.Equal(t, binary.Reqs{TP: reduce.I128(tp), TPFP: reduce.I128(np), TPFN: reduce.I128(na)}, f1, "round %d", round)

		assert.Equal(t, prec.TP, rec.TP, "round %d", round)
		assert.Equal(t, prec.TP, f1.TP, "round %d", round)
	}
}

// TestBinaryReqs_Idempotent repeats every binary call on the same input.
func TestBinaryReqs_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(propSeed + 1))
	ops := map[string]func(a, p any, opts ...binary.Option) (binary.Reqs, error){
		"precision": dispatch.BinaryPrecisionReqs,
		"recall":    dispatch.BinaryRecallReqs,
		"f1":        dispatch.BinaryF1Reqs,
	}

	for round := 0; round < propRounds/4; round++ {
		a, p := randomBools(r)
		for name, op := range ops {
			first, err := op(a, p)
			require.NoError(t, err, name)
			second, err := op(a, p)
			require.NoError(t, err, name)
			assert.Equal(t, first, second, "%s round %d", name, round)
		}
	}
}

// TestConfusionMatrix_RandomCoverage checks Total ≤ N, with equality exactly
// when every sample has both labels in the vocabulary.
func TestConfusionMatrix_RandomCoverage(t *testing.T) {
	r := rand.New(rand.NewSource(propSeed + 2))

	for round := 0; round < propRounds; round++ {
		a, p := randomBools(r)

		cm, err := dispatch.ConfusionMatrix(a, p, nil)
		require.NoError(t, err)
		total, err := matrix.Total(cm)
		require.NoError(t, err)
		assert.Equal(t, int64(len(a)), total, "derived vocabulary, round %d", round)

		cm, err = dispatch.ConfusionMatrix(a, p, []bool{true})
		require.NoError(t, err)
		total, err = matrix.Total(cm)
		require.NoError(t, err)

		covered, _, _ := naiveCounts(a, p)
		assert.Equal(t, covered, total, "partial vocabulary, round %d", round)
		assert.LessOrEqual(t, total, int64(len(a)))
		assert.Equal(t, covered == int64(len(a)), total == int64(len(a)), "round %d", round)
	}
}

// TestMulticlass_RandomCoverage runs the multiclass tables over random int16
// classes and random vocabularies.
func TestMulticlass_RandomCoverage(t *testing.T) {
	const k = 5
	r := rand.New(rand.NewSource(propSeed + 3))

	for round := 0; round < propRounds; round++ {
		a, p := randomClasses(r, k)
		vocab := make([]int16, 0, k)
		for c := int16(0); c < k; c++ {
			if r.Intn(3) > 0 {
				vocab = append(vocab, c)
			}
		}

		var covered int64
		for i := range a {
			if slices.Contains(vocab, a[i]) && slices.Contains(vocab, p[i]) {
				covered++
			}
		}

		cm, err := dispatch.ConfusionMatrix(a, p, vocab)
		require.NoError(t, err)
		total, err := matrix.Total(cm)
		require.NoError(t, err)
		assert.Equal(t, covered, total, "round %d", round)
		assert.LessOrEqual(t, total, int64(len(a)))
		assert.Equal(t, covered == int64(len(a)), total == int64(len(a)), "round %d", round)

		f1, err := dispatch.F1Reqs(a, p, vocab)
		require.NoError(t, err)
		prec, err := dispatch.PrecisionReqs(a, p, vocab)
		require.NoError(t, err)
		rec, err := dispatch.RecallReqs(a, p, vocab)
		require.NoError(t, err)

		f1Data, precData, recData := f1.RawData(), prec.RawData(), rec.RawData()
		var predictedTotal, actualTotal int64
		for i := 0; i < len(vocab); i++ {
			tp := f1Data[i*3]
			assert.Equal(t, tp, precData[i*2], "TP class %d round %d", vocab[i], round)
			assert.Equal(t, tp, recData[i*2], "TP class %d round %d", vocab[i], round)
			assert.Equal(t, f1Data[i*3+1], precData[i*2+1], "TP+FP class %d round %d", vocab[i], round)
			assert.Equal(t, f1Data[i*3+2], recData[i*2+1], "TP+FN class %d round %d", vocab[i], round)
			predictedTotal += precData[i*2+1]
			actualTotal += recData[i*2+1]
		}
		assert.Equal(t, total, predictedTotal, "round %d", round)
		assert.Equal(t, total, actualTotal, "round %d", round)
	}
}

// TestMulticlassReqs_Idempotent repeats every multiclass call on the same input.
func TestMulticlassReqs_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(propSeed + 4))
	ops := map[string]func(a, p, labels any, opts ...confusion.Option) (*matrix.Dense, error){
		"confusion": dispatch.ConfusionMatrix,
		"precision": dispatch.PrecisionReqs,
		"recall":    dispatch.RecallReqs,
		"f1":        dispatch.F1Reqs,
	}

	for round := 0; round < propRounds/4; round++ {
		a, p := randomClasses(r, 4)
		for name, op := range ops {
			first, err := op(a, p, nil)
			require.NoError(t, err, name)
			second, err := op(a, p, nil)
			require.NoError(t, err, name)
			assert.True(t, first.Equal(second), "%s round %d", name, round)
		}
	}
}

// TestConfusionMatrix_ShapeBeforeLabels ensures unequal lengths fail the same
// way whether or not a vocabulary is supplied.
func TestConfusionMatrix_ShapeBeforeLabels(t *testing.T) {
	a := []bool{true, false, true}
	p := []bool{true}

	_, errDerived := dispatch.ConfusionMatrix(a, p, nil)
	require.ErrorIs(t, errDerived, reduce.ErrShapeMismatch)
	_, errGiven := dispatch.ConfusionMatrix(a, p, []bool{false, true})
	require.ErrorIs(t, errGiven, reduce.ErrShapeMismatch)
	assert.EqualError(t, errDerived, errGiven.Error())

	_, err := dispatch.F1Reqs([]int16{1, 2}, []int16{1}, nil)
	require.ErrorIs(t, err, reduce.ErrShapeMismatch)

	cm, err := dispatch.ConfusionMatrix(a, p, nil, confusion.WithShapePolicy(reduce.ShapeTruncate))
	require.NoError(t, err)
	total, err := matrix.Total(cm)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
