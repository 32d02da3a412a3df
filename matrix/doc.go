// Package matrix offers the integer count tables produced by faststats.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 matrix with bounds-checked At/Set, used for
//     K×K confusion matrices and the K×2 / K×3 requirement tables.
//   - Row and column reductions (RowSums, ColSums, Diag, Trace, Total) that the
//     metric extractor is composed of.
//   - Central validators (ValidateNotNil, ValidateSquare).
//   - ToGonum / FromGonum to hand counts to gonum for ratio computation.
//
// Zero-sized shapes (0×0, 0×k) are legal: a confusion matrix over an empty
// vocabulary is 0×0.
package matrix
