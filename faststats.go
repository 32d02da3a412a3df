// SPDX-License-Identifier: MIT

package faststats

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/faststats/binary"
	"github.com/katalvlaran/faststats/confusion"
	"github.com/katalvlaran/faststats/dispatch"
	"github.com/katalvlaran/faststats/matrix"
	"github.com/katalvlaran/faststats/reduce"
)

// Evaluator runs the statistics operations with a fixed set of options.
// It holds no per-call state and is safe for concurrent use.
type Evaluator struct {
	cfg    config
	copts  []confusion.Option
	bopts  []binary.Option
	logger *slog.Logger
}

// New creates an Evaluator with the given options.
func New(opts ...Option) *Evaluator {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &Evaluator{
		cfg:    cfg,
		copts:  cfg.confusionOptions(),
		bopts:  cfg.binaryOptions(),
		logger: cfg.logger,
	}
}

// ConfusionMatrix returns the K×K confusion matrix of actual vs predicted.
// A nil labels derives the vocabulary as the sorted union of both arrays.
func (e *Evaluator) ConfusionMatrix(actual, predicted, labels any) (*matrix.Dense, error) {
	e.trace(OpConfusionMatrix, actual)
	cm, err := dispatch.ConfusionMatrix(actual, predicted, labels, e.copts...)

	return cm, e.traceErr(OpConfusionMatrix, err)
}

// PrecisionReqs returns the K×2 (TP, TP+FP) table.
func (e *Evaluator) PrecisionReqs(actual, predicted, labels any) (*matrix.Dense, error) {
	e.trace(OpPrecisionReqs, actual)
	reqs, err := dispatch.PrecisionReqs(actual, predicted, labels, e.copts...)

	return reqs, e.traceErr(OpPrecisionReqs, err)
}

// RecallReqs returns the K×2 (TP, TP+FN) table.
func (e *Evaluator) RecallReqs(actual, predicted, labels any) (*matrix.Dense, error) {
	e.trace(OpRecallReqs, actual)
	reqs, err := dispatch.RecallReqs(actual, predicted, labels, e.copts...)

	return reqs, e.traceErr(OpRecallReqs, err)
}

// F1Reqs returns the K×3 (TP, TP+FP, TP+FN) table.
func (e *Evaluator) F1Reqs(actual, predicted, labels any) (*matrix.Dense, error) {
	e.trace(OpF1Reqs, actual)
	reqs, err := dispatch.F1Reqs(actual, predicted, labels, e.copts...)

	return reqs, e.traceErr(OpF1Reqs, err)
}

// BinaryPrecisionReqs returns (TP, TP+FP, 0) for 0/1 labels.
func (e *Evaluator) BinaryPrecisionReqs(actual, predicted any) (binary.Reqs, error) {
	e.trace(OpBinaryPrecisionReqs, actual)
	r, err := dispatch.BinaryPrecisionReqs(actual, predicted, e.bopts...)

	return r, e.traceErr(OpBinaryPrecisionReqs, err)
}

// BinaryRecallReqs returns (TP, 0, TP+FN) for 0/1 labels.
func (e *Evaluator) BinaryRecallReqs(actual, predicted any) (binary.Reqs, error) {
	e.trace(OpBinaryRecallReqs, actual)
	r, err := dispatch.BinaryRecallReqs(actual, predicted, e.bopts...)

	return r, e.traceErr(OpBinaryRecallReqs, err)
}

// BinaryF1Reqs returns (TP, TP+FP, TP+FN) for 0/1 labels.
func (e *Evaluator) BinaryF1Reqs(actual, predicted any) (binary.Reqs, error) {
	e.trace(OpBinaryF1Reqs, actual)
	r, err := dispatch.BinaryF1Reqs(actual, predicted, e.bopts...)

	return r, e.traceErr(OpBinaryF1Reqs, err)
}

// Outcomes returns the TP/FP/FN/TN breakdown for 0/1 labels.
func (e *Evaluator) Outcomes(actual, predicted any) (binary.Counts, error) {
	e.trace(OpOutcomes, actual)
	c, err := dispatch.Outcomes(actual, predicted, e.bopts...)

	return c, e.traceErr(OpOutcomes, err)
}

// Unique returns the distinct values of xs in first-seen order.
func (e *Evaluator) Unique(xs any) (any, error) {
	e.trace(OpUnique, xs)
	u, err := dispatch.Unique(xs)

	return u, e.traceErr(OpUnique, err)
}

// Labels returns the sorted distinct union of actual and predicted.
func (e *Evaluator) Labels(actual, predicted any) (any, error) {
	e.trace(OpLabels, actual)
	l, err := dispatch.Labels(actual, predicted)

	return l, e.traceErr(OpLabels, err)
}

// Sum returns Σ xs[i] in 128 bits.
func (e *Evaluator) Sum(xs any) (reduce.Int128, error) {
	e.trace(OpSum, xs)
	s, err := dispatch.Sum(xs)

	return s, e.traceErr(OpSum, err)
}

// DotSum returns Σ a[i]*b[i] in 128 bits.
func (e *Evaluator) DotSum(a, b any) (reduce.Int128, error) {
	e.trace(OpDotSum, a)
	s, err := dispatch.DotSum(a, b)

	return s, e.traceErr(OpDotSum, err)
}

// trace logs the call at Debug level. KindOf and Len are only evaluated when
// the handler accepts Debug records.
func (e *Evaluator) trace(op Op, first any) {
	if !e.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	e.logger.Debug("evaluate",
		slog.String("op", op.String()),
		slog.String("kind", dispatch.KindOf(first).String()),
		slog.Int("n", dispatch.Len(first)),
	)
}

func (e *Evaluator) traceErr(op Op, err error) error {
	if err != nil {
		e.logger.Debug("evaluate failed",
			slog.String("op", op.String()),
			slog.Any("error", err),
		)
	}

	return err
}

// ---------- one-shot helpers ----------

// ConfusionMatrix evaluates with default options. See Evaluator.ConfusionMatrix.
func ConfusionMatrix(actual, predicted, labels any, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).ConfusionMatrix(actual, predicted, labels)
}

// PrecisionReqs evaluates with default options. See Evaluator.PrecisionReqs.
func PrecisionReqs(actual, predicted, labels any, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).PrecisionReqs(actual, predicted, labels)
}

// RecallReqs evaluates with default options. See Evaluator.RecallReqs.
func RecallReqs(actual, predicted, labels any, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).RecallReqs(actual, predicted, labels)
}

// F1Reqs evaluates with default options. See Evaluator.F1Reqs.
func F1Reqs(actual, predicted, labels any, opts ...Option) (*matrix.Dense, error) {
	return New(opts...).F1Reqs(actual, predicted, labels)
}

// BinaryPrecisionReqs evaluates with default options.
func BinaryPrecisionReqs(actual, predicted any, opts ...Option) (binary.Reqs, error) {
	return New(opts...).BinaryPrecisionReqs(actual, predicted)
}

// BinaryRecallReqs evaluates with default options.
func BinaryRecallReqs(actual, predicted any, opts ...Option) (binary.Reqs, error) {
	return New(opts...).BinaryRecallReqs(actual, predicted)
}

// BinaryF1Reqs evaluates with default options.
func BinaryF1Reqs(actual, predicted any, opts ...Option) (binary.Reqs, error) {
	return New(opts...).BinaryF1Reqs(actual, predicted)
}

// Outcomes evaluates with default options.
func Outcomes(actual, predicted any, opts ...Option) (binary.Counts, error) {
	return New(opts...).Outcomes(actual, predicted)
}

// Unique returns the distinct values of xs in first-seen order.
func Unique(xs any) (any, error) {
	return dispatch.Unique(xs)
}

// Labels returns the sorted distinct union of actual and predicted.
func Labels(actual, predicted any) (any, error) {
	return dispatch.Labels(actual, predicted)
}
