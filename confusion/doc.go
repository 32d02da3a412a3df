// SPDX-License-Identifier: MIT

// Package confusion builds K×K confusion matrices from paired label arrays.
//
// Layout:
//   - Row i counts samples whose ACTUAL label is labels[i].
//   - Column j counts samples whose PREDICTED label is labels[j].
//   - Samples with either label outside the vocabulary are skipped; they are
//     not an error.
//
// Files:
//   - index.go   - label → position lookup (Index) with a duplicate policy.
//   - build.go   - Build: one lock-step pass over actual/predicted.
//   - unique.go  - Unique (first-seen order) and Labels (sorted union).
//   - options.go - functional options (shape policy, duplicate policy).
//
// Determinism:
//   - Output depends only on the inputs and options; map iteration order is
//     never observable.
//
// Complexity:
//   - Build: O(K) to index the vocabulary plus O(N) over the samples.
package confusion
