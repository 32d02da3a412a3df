// SPDX-License-Identifier: MIT

package faststats

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/faststats/binary"
	"github.com/katalvlaran/faststats/matrix"
	"github.com/katalvlaran/faststats/reduce"
	"golang.org/x/sync/errgroup"
)

// Op names an operation of a batch Request.
type Op int

const (
	OpConfusionMatrix Op = iota
	OpPrecisionReqs
	OpRecallReqs
	OpF1Reqs
	OpBinaryPrecisionReqs
	OpBinaryRecallReqs
	OpBinaryF1Reqs
	OpOutcomes
	OpUnique
	OpLabels
	OpSum
	OpDotSum
)

var opNames = [...]string{
	OpConfusionMatrix:     "confusion_matrix",
	OpPrecisionReqs:       "precision_reqs",
	OpRecallReqs:          "recall_reqs",
	OpF1Reqs:              "f1_reqs",
	OpBinaryPrecisionReqs: "binary_precision_reqs",
	OpBinaryRecallReqs:    "binary_recall_reqs",
	OpBinaryF1Reqs:        "binary_f1_reqs",
	OpOutcomes:            "outcomes",
	OpUnique:              "unique",
	OpLabels:              "labels",
	OpSum:                 "sum",
	OpDotSum:              "dot_sum",
}

// String returns the snake_case operation name.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opNames[o]
}

// Request is one independent operation of a batch.
//   - Predicted is ignored by OpUnique and OpSum (which read Actual only).
//   - Labels is used by the multiclass operations only; nil derives it.
type Request struct {
	Op        Op
	Actual    any
	Predicted any
	Labels    any
}

// Result holds the output of one Request. Only the field matching Op is set.
type Result struct {
	Op     Op
	Matrix *matrix.Dense // multiclass operations
	Reqs   binary.Reqs   // binary requirement triples
	Counts binary.Counts // OpOutcomes
	Values any           // OpUnique, OpLabels
	Total  reduce.Int128 // OpSum, OpDotSum
	Err    error
}

// Do evaluates a single Request synchronously.
func (e *Evaluator) Do(r Request) Result {
	res := Result{Op: r.Op}
	switch r.Op {
	case OpConfusionMatrix:
		res.Matrix, res.Err = e.ConfusionMatrix(r.Actual, r.Predicted, r.Labels)
	case OpPrecisionReqs:
		res.Matrix, res.Err = e.PrecisionReqs(r.Actual, r.Predicted, r.Labels)
	case OpRecallReqs:
		res.Matrix, res.Err = e.RecallReqs(r.Actual, r.Predicted, r.Labels)
	case OpF1Reqs:
		res.Matrix, res.Err = e.F1Reqs(r.Actual, r.Predicted, r.Labels)
	case OpBinaryPrecisionReqs:
		res.Reqs, res.Err = e.BinaryPrecisionReqs(r.Actual, r.Predicted)
	case OpBinaryRecallReqs:
		res.Reqs, res.Err = e.BinaryRecallReqs(r.Actual, r.Predicted)
	case OpBinaryF1Reqs:
		res.Reqs, res.Err = e.BinaryF1Reqs(r.Actual, r.Predicted)
	case OpOutcomes:
		res.Counts, res.Err = e.Outcomes(r.Actual, r.Predicted)
	case OpUnique:
		res.Values, res.Err = e.Unique(r.Actual)
	case OpLabels:
		res.Values, res.Err = e.Labels(r.Actual, r.Predicted)
	case OpSum:
		res.Total, res.Err = e.Sum(r.Actual)
	case OpDotSum:
		res.Total, res.Err = e.DotSum(r.Actual, r.Predicted)
	default:
		res.Err = fmt.Errorf("%w: %s", ErrUnknownOp, r.Op)
	}

	return res
}

// Run evaluates reqs concurrently on at most WithWorkers goroutines.
// Implementation:
//   - Stage 1: schedule one task per request on an errgroup with SetLimit.
//   - Stage 2: each task writes only its own slot of the result slice.
//
// Behavior highlights:
//   - results[i] always corresponds to reqs[i].
//   - A failing request sets results[i].Err and does not stop the batch.
//   - Run itself fails only when ctx is cancelled; no results are returned then.
func (e *Evaluator) Run(ctx context.Context, reqs []Request) ([]Result, error) {
	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.workers)

	for i := range reqs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.Do(reqs[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("faststats: run: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("faststats: run: %w", err)
	}

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	e.logger.Debug("batch done",
		slog.Int("requests", len(reqs)),
		slog.Int("failed", failed),
		slog.Int("workers", e.cfg.workers),
	)

	return results, nil
}
