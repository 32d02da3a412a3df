// SPDX-License-Identifier: MIT

package binary

import "github.com/katalvlaran/faststats/reduce"

// Counts is the full two-class breakdown of a label pair.
// TP+FP+FN+TN equals the number of aligned samples.
type Counts struct {
	TP reduce.Int128
	FP reduce.Int128
	FN reduce.Int128
	TN reduce.Int128
}

// Reqs returns the F1 requirement triple implied by c.
func (c Counts) Reqs() Reqs {
	return Reqs{TP: c.TP, TPFP: c.TP.Add(c.FP), TPFN: c.TP.Add(c.FN)}
}

// Outcomes counts true/false positives and negatives in one pass.
// Behavior highlights:
//   - Strict: values must be 0 or 1 (ErrNonBinary otherwise).
//   - Lenient: any nonzero value counts as positive.
//
// Errors:
//   - reduce.ErrShapeMismatch under ShapeStrict, ErrNonBinary unless lenient.
//
// Complexity:
//   - Time O(N), Space O(1).
func Outcomes[T reduce.Element](actual, predicted []T, opts ...Option) (Counts, error) {
	o := gatherOptions(opts...)
	a, p, err := reduce.Align(actual, predicted, o.shape)
	if err != nil {
		return Counts{}, binaryErrorf(opOutcomes, err)
	}

	var tp, fp, fn, tn int64
	for i := range a {
		if !o.lenient {
			if a[i] != 0 && a[i] != 1 {
				return Counts{}, nonBinaryErrorf(opOutcomes, "actual", i, a[i])
			}
			if p[i] != 0 && p[i] != 1 {
				return Counts{}, nonBinaryErrorf(opOutcomes, "predicted", i, p[i])
			}
		}
		switch pa, pp := a[i] != 0, p[i] != 0; {
		case pa && pp:
			tp++
		case pp:
			fp++
		case pa:
			fn++
		default:
			tn++
		}
	}

	return Counts{
		TP: reduce.I128(tp),
		FP: reduce.I128(fp),
		FN: reduce.I128(fn),
		TN: reduce.I128(tn),
	}, nil
}
