// SPDX-License-Identifier: MIT

package metrics

import "fmt"

// Operation tags used in error wrappers.
const (
	opPrecisionReqs = "metrics.PrecisionReqs"
	opRecallReqs    = "metrics.RecallReqs"
	opF1Reqs        = "metrics.F1Reqs"
	opPerClass      = "metrics.PerClass"
	opTotals        = "metrics.Totals"
)

// metricsErrorf wraps err with the operation tag; sentinels come from the
// matrix package (ErrNilMatrix, ErrNonSquare) and stay matchable via errors.Is.
func metricsErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
