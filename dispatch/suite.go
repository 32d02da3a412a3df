// SPDX-License-Identifier: MIT

package dispatch

import (
	"github.com/katalvlaran/faststats/binary"
	"github.com/katalvlaran/faststats/confusion"
	"github.com/katalvlaran/faststats/matrix"
	"github.com/katalvlaran/faststats/reduce"
)

// reqsOp selects which requirement triple a binary call produces.
type reqsOp int

const (
	reqsPrecision reqsOp = iota
	reqsRecall
	reqsF1
)

// suite is one row of the kind table: the generic algorithms instantiated
// for a single element type, reachable through `any` operands.
// Operands passed to a suite have already been matched against it.
type suite interface {
	kind() Kind
	match(x any) bool
	size(x any) int

	confusion(actual, predicted, labels any, opts []confusion.Option) (*matrix.Dense, error)
	labels(actual, predicted any) any
	unique(xs any) any

	binaryReqs(op reqsOp, actual, predicted any, opts []binary.Option) (binary.Reqs, error)
	outcomes(actual, predicted any, opts []binary.Option) (binary.Counts, error)

	sum(xs any) reduce.Int128
	dotSum(a, b any) (reduce.Int128, error)
}

// suites is the kind table in resolution priority order.
var suites = [...]suite{
	boolSuite{},
	typed[int8]{Int8},
	typed[int16]{Int16},
	typed[int32]{Int32},
	typed[int64]{Int64},
	typed[uint8]{Uint8},
	typed[uint16]{Uint16},
	typed[uint32]{Uint32},
	typed[uint64]{Uint64},
}

// typed runs every algorithm on []T.
type typed[T reduce.Element] struct{ k Kind }

func (s typed[T]) kind() Kind { return s.k }

func (s typed[T]) match(x any) bool {
	_, ok := x.([]T)

	return ok
}

func (s typed[T]) size(x any) int { return len(x.([]T)) }

func (s typed[T]) confusion(actual, predicted, labels any, opts []confusion.Option) (*matrix.Dense, error) {
	return confusion.Build(actual.([]T), predicted.([]T), labels.([]T), opts...)
}

func (s typed[T]) labels(actual, predicted any) any {
	return confusion.Labels(actual.([]T), predicted.([]T))
}

func (s typed[T]) unique(xs any) any {
	return confusion.Unique(xs.([]T))
}

func (s typed[T]) binaryReqs(op reqsOp, actual, predicted any, opts []binary.Option) (binary.Reqs, error) {
	a, p := actual.([]T), predicted.([]T)
	switch op {
	case reqsPrecision:
		return binary.PrecisionReqs(a, p, opts...)
	case reqsRecall:
		return binary.RecallReqs(a, p, opts...)
	}

	return binary.F1Reqs(a, p, opts...)
}

func (s typed[T]) outcomes(actual, predicted any, opts []binary.Option) (binary.Counts, error) {
	return binary.Outcomes(actual.([]T), predicted.([]T), opts...)
}

func (s typed[T]) sum(xs any) reduce.Int128 {
	return reduce.Sum(xs.([]T))
}

func (s typed[T]) dotSum(a, b any) (reduce.Int128, error) {
	return reduce.DotSum(a.([]T), b.([]T))
}

// boolSuite promotes []bool to []uint8 and delegates to the uint8 row.
type boolSuite struct{}

// asUint8 is the instantiation boolean operands are promoted into.
var asUint8 = typed[uint8]{Uint8}

func (boolSuite) kind() Kind { return Bool }

func (boolSuite) match(x any) bool {
	_, ok := x.([]bool)

	return ok
}

func (boolSuite) size(x any) int { return len(x.([]bool)) }

func (boolSuite) confusion(actual, predicted, labels any, opts []confusion.Option) (*matrix.Dense, error) {
	return asUint8.confusion(promote(actual), promote(predicted), promote(labels), opts)
}

func (boolSuite) labels(actual, predicted any) any {
	return demote(asUint8.labels(promote(actual), promote(predicted)))
}

func (boolSuite) unique(xs any) any {
	return demote(asUint8.unique(promote(xs)))
}

func (boolSuite) binaryReqs(op reqsOp, actual, predicted any, opts []binary.Option) (binary.Reqs, error) {
	return asUint8.binaryReqs(op, promote(actual), promote(predicted), opts)
}

func (boolSuite) outcomes(actual, predicted any, opts []binary.Option) (binary.Counts, error) {
	return asUint8.outcomes(promote(actual), promote(predicted), opts)
}

func (boolSuite) sum(xs any) reduce.Int128 {
	return asUint8.sum(promote(xs))
}

func (boolSuite) dotSum(a, b any) (reduce.Int128, error) {
	return asUint8.dotSum(promote(a), promote(b))
}

// promote returns a fresh []uint8 with true→1, false→0.
// A nil []bool promotes to a nil []uint8.
func promote(x any) any {
	bs := x.([]bool)
	if bs == nil {
		return []uint8(nil)
	}
	out := make([]uint8, len(bs))
	for i, b := range bs {
		if b {
			out[i] = 1
		}
	}

	return out
}

// demote converts promoted label values back to []bool.
func demote(x any) any {
	us := x.([]uint8)
	out := make([]bool, len(us))
	for i, u := range us {
		out[i] = u != 0
	}

	return out
}
