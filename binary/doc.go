// SPDX-License-Identifier: MIT

// Package binary computes two-class requirement triples directly from the
// label arrays, without materialising a confusion matrix.
//
// With 0/1 labels (1 = positive):
//   - TP      = Σ actual[i]*predicted[i]
//   - TP + FP = Σ predicted[i]
//   - TP + FN = Σ actual[i]
//
// Every triple is produced by one pass over both arrays and accumulated in
// reduce.Int128, so no sum can overflow for any supported element width.
//
// Value policy:
//   - Strict (default): every value must be 0 or 1, otherwise ErrNonBinary
//     names the first offending index.
//   - Lenient (WithLenient): raw values are used as-is in the dot product and
//     sums; Outcomes treats any nonzero value as positive.
package binary
