// SPDX-License-Identifier: MIT

package binary

import (
	"errors"
	"fmt"
)

// ErrNonBinary indicates a label other than 0 or 1 on the strict fast path.
var ErrNonBinary = errors.New("binary: label is not 0 or 1")

// Operation tags used in error wrappers.
const (
	opPrecisionReqs = "binary.PrecisionReqs"
	opRecallReqs    = "binary.RecallReqs"
	opF1Reqs        = "binary.F1Reqs"
	opOutcomes      = "binary.Outcomes"
)

func binaryErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// nonBinaryErrorf reports which array and index carried the offending value.
func nonBinaryErrorf(op, side string, i int, v any) error {
	return fmt.Errorf("%s: %s[%d] = %v: %w", op, side, i, v, ErrNonBinary)
}
