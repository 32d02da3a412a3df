// SPDX-License-Identifier: MIT

// Package dispatch runs the generic algorithms of confusion, metrics, binary
// and reduce over label arrays whose element type is only known at run time.
//
// Operands arrive as `any` holding a slice of one supported kind:
//
//	[]bool, []int8, []int16, []int32, []int64,
//	[]uint8, []uint16, []uint32, []uint64
//
// Resolution walks one ordered kind table (bool, signed narrow→wide,
// unsigned narrow→wide) and picks the first kind every operand has. When
// nothing matches, ErrUnsupportedKind is returned before any work is done.
//
// Boolean operands are promoted to a private []uint8 copy (true→1, false→0)
// and run through the uint8 instantiation; results that are label values
// (Unique, Labels) are converted back to []bool. Caller slices are never
// modified.
package dispatch
