// SPDX-License-Identifier: MIT

package binary

import "github.com/katalvlaran/faststats/reduce"

// Reqs is a requirement triple. Fields an operation does not produce are 0:
//   - PrecisionReqs: (TP, TP+FP, 0)
//   - RecallReqs:    (TP, 0, TP+FN)
//   - F1Reqs:        (TP, TP+FP, TP+FN)
type Reqs struct {
	TP   reduce.Int128 // Σ actual*predicted
	TPFP reduce.Int128 // Σ predicted
	TPFN reduce.Int128 // Σ actual
}

// Tuple returns the triple in (TP, TP+FP, TP+FN) order.
func (r Reqs) Tuple() [3]reduce.Int128 {
	return [3]reduce.Int128{r.TP, r.TPFP, r.TPFN}
}

// Union returns TP+FP+FN, the IoU denominator, from an F1 triple.
// It is only meaningful when both TPFP and TPFN were produced.
func (r Reqs) Union() reduce.Int128 {
	return r.TPFP.Add(r.TPFN).Sub(r.TP)
}

// String renders the triple as "(tp, tpfp, tpfn)".
func (r Reqs) String() string {
	return "(" + r.TP.String() + ", " + r.TPFP.String() + ", " + r.TPFN.String() + ")"
}

// PrecisionReqs returns (TP, TP+FP, 0).
// Errors:
//   - reduce.ErrShapeMismatch under ShapeStrict, ErrNonBinary unless lenient.
//
// Complexity:
//   - Time O(N), Space O(1).
func PrecisionReqs[T reduce.Element](actual, predicted []T, opts ...Option) (Reqs, error) {
	t, err := joint(opPrecisionReqs, actual, predicted, gatherOptions(opts...))
	if err != nil {
		return Reqs{}, err
	}

	return Reqs{TP: t.Dot, TPFP: t.SumB}, nil
}

// RecallReqs returns (TP, 0, TP+FN).
// Errors:
//   - reduce.ErrShapeMismatch under ShapeStrict, ErrNonBinary unless lenient.
//
// Complexity:
//   - Time O(N), Space O(1).
func RecallReqs[T reduce.Element](actual, predicted []T, opts ...Option) (Reqs, error) {
	t, err := joint(opRecallReqs, actual, predicted, gatherOptions(opts...))
	if err != nil {
		return Reqs{}, err
	}

	return Reqs{TP: t.Dot, TPFN: t.SumA}, nil
}

// F1Reqs returns (TP, TP+FP, TP+FN).
// Errors:
//   - reduce.ErrShapeMismatch under ShapeStrict, ErrNonBinary unless lenient.
//
// Complexity:
//   - Time O(N), Space O(1).
func F1Reqs[T reduce.Element](actual, predicted []T, opts ...Option) (Reqs, error) {
	t, err := joint(opF1Reqs, actual, predicted, gatherOptions(opts...))
	if err != nil {
		return Reqs{}, err
	}

	return Reqs{TP: t.Dot, TPFP: t.SumB, TPFN: t.SumA}, nil
}

// joint aligns the arrays and computes the shared totals.
// Implementation:
//   - Lenient: reduce.Joint over raw values.
//   - Strict: one validating pass counting 1s; counts fit in int64 since
//     they never exceed N.
func joint[T reduce.Element](op string, actual, predicted []T, o Options) (reduce.Totals, error) {
	a, p, err := reduce.Align(actual, predicted, o.shape)
	if err != nil {
		return reduce.Totals{}, binaryErrorf(op, err)
	}
	if o.lenient {
		t, err := reduce.Joint(a, p)
		if err != nil {
			return reduce.Totals{}, binaryErrorf(op, err)
		}

		return t, nil
	}

	var tp, sa, sp int64
	for i := range a {
		if a[i] != 0 && a[i] != 1 {
			return reduce.Totals{}, nonBinaryErrorf(op, "actual", i, a[i])
		}
		if p[i] != 0 && p[i] != 1 {
			return reduce.Totals{}, nonBinaryErrorf(op, "predicted", i, p[i])
		}
		if a[i] == 1 {
			sa++
			if p[i] == 1 {
				tp++
			}
		}
		if p[i] == 1 {
			sp++
		}
	}

	return reduce.Totals{
		Dot:  reduce.I128(tp),
		SumA: reduce.I128(sa),
		SumB: reduce.I128(sp),
	}, nil
}
