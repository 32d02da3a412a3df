// SPDX-License-Identifier: MIT

package dispatch

// Kind identifies the element type of a label array.
type Kind int

// Supported kinds. The declaration order is the resolution priority.
const (
	Invalid Kind = iota
	Bool
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
)

var kindNames = [...]string{
	Invalid: "invalid",
	Bool:    "bool",
	Int8:    "int8",
	Int16:   "int16",
	Int32:   "int32",
	Int64:   "int64",
	Uint8:   "uint8",
	Uint16:  "uint16",
	Uint32:  "uint32",
	Uint64:  "uint64",
}

// String returns the Go element type name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return kindNames[Invalid]
	}

	return kindNames[k]
}

// Kinds returns the supported kinds in resolution priority order.
func Kinds() []Kind {
	out := make([]Kind, len(suites))
	for i, s := range suites {
		out[i] = s.kind()
	}

	return out
}

// KindOf returns the kind of the slice held by x, or Invalid.
func KindOf(x any) Kind {
	for _, s := range suites {
		if s.match(x) {
			return s.kind()
		}
	}

	return Invalid
}

// Len returns the length of the slice held by x, or -1 when x is not a
// supported label array.
func Len(x any) int {
	for _, s := range suites {
		if s.match(x) {
			return s.size(x)
		}
	}

	return -1
}

// Resolve returns the first kind, in priority order, shared by every operand.
// Errors:
//   - ErrUnsupportedKind when there are no operands or no common kind.
func Resolve(operands ...any) (Kind, error) {
	s, err := resolve("dispatch.Resolve", operands...)
	if err != nil {
		return Invalid, err
	}

	return s.kind(), nil
}

// resolve walks the kind table and returns the first suite matching all operands.
func resolve(op string, operands ...any) (suite, error) {
	if len(operands) > 0 {
	next:
		for _, s := range suites {
			for _, x := range operands {
				if !s.match(x) {
					continue next
				}
			}

			return s, nil
		}
	}

	return nil, unsupportedErrorf(op, operands)
}
