// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"

	"github.com/katalvlaran/faststats/binary"
	"github.com/katalvlaran/faststats/confusion"
	"github.com/katalvlaran/faststats/matrix"
	"github.com/katalvlaran/faststats/metrics"
	"github.com/katalvlaran/faststats/reduce"
)

// Operation tags used in error wrappers.
const (
	opConfusionMatrix     = "dispatch.ConfusionMatrix"
	opPrecisionReqs       = "dispatch.PrecisionReqs"
	opRecallReqs          = "dispatch.RecallReqs"
	opF1Reqs              = "dispatch.F1Reqs"
	opBinaryPrecisionReqs = "dispatch.BinaryPrecisionReqs"
	opBinaryRecallReqs    = "dispatch.BinaryRecallReqs"
	opBinaryF1Reqs        = "dispatch.BinaryF1Reqs"
	opOutcomes            = "dispatch.Outcomes"
	opUnique              = "dispatch.Unique"
	opLabels              = "dispatch.Labels"
	opSum                 = "dispatch.Sum"
	opDotSum              = "dispatch.DotSum"
)

// ConfusionMatrix builds the K×K confusion matrix of actual vs predicted.
// Behavior highlights:
//   - labels must have the same kind as actual and predicted.
//   - An untyped nil labels derives the vocabulary as the sorted union of
//     both arrays; a typed empty slice is an empty vocabulary (0×0 result).
//
// Errors:
//   - ErrUnsupportedKind, reduce.ErrShapeMismatch.
func ConfusionMatrix(actual, predicted, labels any, opts ...confusion.Option) (*matrix.Dense, error) {
	return buildMatrix(opConfusionMatrix, actual, predicted, labels, opts)
}

// PrecisionReqs returns the K×2 (TP, TP+FP) table of actual vs predicted.
func PrecisionReqs(actual, predicted, labels any, opts ...confusion.Option) (*matrix.Dense, error) {
	return multiclass(opPrecisionReqs, metrics.PrecisionReqs, actual, predicted, labels, opts)
}

// RecallReqs returns the K×2 (TP, TP+FN) table of actual vs predicted.
func RecallReqs(actual, predicted, labels any, opts ...confusion.Option) (*matrix.Dense, error) {
	return multiclass(opRecallReqs, metrics.RecallReqs, actual, predicted, labels, opts)
}

// F1Reqs returns the K×3 (TP, TP+FP, TP+FN) table of actual vs predicted.
func F1Reqs(actual, predicted, labels any, opts ...confusion.Option) (*matrix.Dense, error) {
	return multiclass(opF1Reqs, metrics.F1Reqs, actual, predicted, labels, opts)
}

// BinaryPrecisionReqs returns (TP, TP+FP, 0) via the two-class fast path.
func BinaryPrecisionReqs(actual, predicted any, opts ...binary.Option) (binary.Reqs, error) {
	return binaryReqs(opBinaryPrecisionReqs, reqsPrecision, actual, predicted, opts)
}

// BinaryRecallReqs returns (TP, 0, TP+FN) via the two-class fast path.
func BinaryRecallReqs(actual, predicted any, opts ...binary.Option) (binary.Reqs, error) {
	return binaryReqs(opBinaryRecallReqs, reqsRecall, actual, predicted, opts)
}

// BinaryF1Reqs returns (TP, TP+FP, TP+FN) via the two-class fast path.
func BinaryF1Reqs(actual, predicted any, opts ...binary.Option) (binary.Reqs, error) {
	return binaryReqs(opBinaryF1Reqs, reqsF1, actual, predicted, opts)
}

// Outcomes returns the TP/FP/FN/TN breakdown of a two-class label pair.
func Outcomes(actual, predicted any, opts ...binary.Option) (binary.Counts, error) {
	s, err := resolve(opOutcomes, actual, predicted)
	if err != nil {
		return binary.Counts{}, err
	}

	return s.outcomes(actual, predicted, opts)
}

// Unique returns the distinct values of xs in first-seen order, as a slice of
// the same kind as xs.
func Unique(xs any) (any, error) {
	s, err := resolve(opUnique, xs)
	if err != nil {
		return nil, err
	}

	return s.unique(xs), nil
}

// Labels returns the sorted distinct union of actual and predicted, as a slice
// of their kind.
func Labels(actual, predicted any) (any, error) {
	s, err := resolve(opLabels, actual, predicted)
	if err != nil {
		return nil, err
	}

	return s.labels(actual, predicted), nil
}

// Sum returns Σ xs[i]; booleans count as 0/1.
func Sum(xs any) (reduce.Int128, error) {
	s, err := resolve(opSum, xs)
	if err != nil {
		return reduce.Int128{}, err
	}

	return s.sum(xs), nil
}

// DotSum returns Σ a[i]*b[i].
// Errors:
//   - ErrUnsupportedKind, reduce.ErrShapeMismatch.
func DotSum(a, b any) (reduce.Int128, error) {
	s, err := resolve(opDotSum, a, b)
	if err != nil {
		return reduce.Int128{}, err
	}
	v, err := s.dotSum(a, b)
	if err != nil {
		return reduce.Int128{}, fmt.Errorf("%s: %w", opDotSum, err)
	}

	return v, nil
}

// buildMatrix resolves the kind, derives a vocabulary when labels is nil,
// and builds the confusion matrix. Lengths are checked before the vocabulary
// is derived.
func buildMatrix(op string, actual, predicted, labels any, opts []confusion.Option) (*matrix.Dense, error) {
	s, err := resolve(op, actual, predicted)
	if err != nil {
		return nil, err
	}
	if err = confusion.CheckShape(s.size(actual), s.size(predicted), opts...); err != nil {
		return nil, err
	}
	if labels == nil {
		labels = s.labels(actual, predicted)
	} else if !s.match(labels) {
		return nil, unsupportedErrorf(op, []any{actual, predicted, labels})
	}

	return s.confusion(actual, predicted, labels, opts)
}

// multiclass builds the confusion matrix and hands it to a metrics extractor.
func multiclass(
	op string,
	extract func(matrix.Matrix) (*matrix.Dense, error),
	actual, predicted, labels any,
	opts []confusion.Option,
) (*matrix.Dense, error) {
	cm, err := buildMatrix(op, actual, predicted, labels, opts)
	if err != nil {
		return nil, err
	}
	out, err := extract(cm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func binaryReqs(op string, which reqsOp, actual, predicted any, opts []binary.Option) (binary.Reqs, error) {
	s, err := resolve(op, actual, predicted)
	if err != nil {
		return binary.Reqs{}, err
	}

	return s.binaryReqs(which, actual, predicted, opts)
}
