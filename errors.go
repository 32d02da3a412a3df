// SPDX-License-Identifier: MIT

package faststats

import (
	"errors"

	"github.com/katalvlaran/faststats/binary"
	"github.com/katalvlaran/faststats/dispatch"
	"github.com/katalvlaran/faststats/matrix"
	"github.com/katalvlaran/faststats/reduce"
)

// Sentinel errors callers may match with errors.Is.
var (
	// ErrUnsupportedKind indicates the operands do not share one supported
	// element kind.
	ErrUnsupportedKind = dispatch.ErrUnsupportedKind

	// ErrShapeMismatch indicates actual and predicted differ in length under
	// the strict shape policy.
	ErrShapeMismatch = reduce.ErrShapeMismatch

	// ErrNonBinary indicates a label other than 0/1 on the strict two-class
	// fast path.
	ErrNonBinary = binary.ErrNonBinary

	// ErrNonSquare indicates a requirement extractor got a non-square matrix.
	ErrNonSquare = matrix.ErrNonSquare

	// ErrNilMatrix indicates a nil matrix was passed to an extractor.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrUnknownOp indicates a batch Request with an Op outside the known set.
	ErrUnknownOp = errors.New("faststats: unknown operation")

	// ErrInvalidConfig indicates a configuration document that cannot be applied.
	ErrInvalidConfig = errors.New("faststats: invalid configuration")
)
