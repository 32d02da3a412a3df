// SPDX-License-Identifier: MIT

// Package faststats computes classification-evaluation statistics from
// paired arrays of actual and predicted class labels.
//
// What it produces:
//   - Confusion matrices (row = actual, column = predicted) over a label
//     vocabulary.
//   - Per-class requirement tables for precision, recall and F1
//     (TP, TP+FP, TP+FN), as integers; ratios are left to the caller.
//   - Two-class requirement triples via a single-pass fast path that never
//     builds a matrix.
//
// Label arrays are slices of bool, int8..int64 or uint8..uint64, passed as
// `any`; both arrays of one call must share a kind. Typed callers can use the
// generic packages directly.
//
// Layout:
//
//	reduce/    - Int128 accumulator, Sum, DotSum, Joint, shape policy
//	matrix/    - int64 Dense storage, row/col sums, diagonal, gonum hand-off
//	confusion/ - vocabulary Index, Build, Unique, Labels
//	metrics/   - PrecisionReqs, RecallReqs, F1Reqs, PerClass, Totals
//	binary/    - two-class PrecisionReqs, RecallReqs, F1Reqs, Outcomes
//	dispatch/  - run-time kind resolution over `any` operands
//
// The root package wraps dispatch in an Evaluator that carries options and a
// logger, and runs batches of independent requests on a bounded worker group:
//
//	ev := faststats.New(faststats.WithWorkers(4))
//	cm, err := ev.ConfusionMatrix(actual, predicted, nil) // nil ⇒ sorted union
//
// Every operation is pure: inputs are never modified and no state is kept
// between calls, so one Evaluator may be shared by many goroutines.
package faststats
