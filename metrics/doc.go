// SPDX-License-Identifier: MIT

// Package metrics derives per-class requirement tables from a square
// confusion matrix (row = actual, column = predicted).
//
// For class i of a K×K matrix cm:
//   - TP      = cm(i,i)
//   - TP + FP = Σ_r cm(r,i)  (column sum: everything predicted as i)
//   - TP + FN = Σ_c cm(i,c)  (row sum: everything actually i)
//
// Tables:
//   - PrecisionReqs → K×2, columns (TP, TP+FP)
//   - RecallReqs    → K×2, columns (TP, TP+FN)
//   - F1Reqs        → K×3, columns (TP, TP+FP, TP+FN)
//
// Ratios are left to the caller: every result is an integer matrix, and a
// zero denominator is reported as-is.
package metrics
