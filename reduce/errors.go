// SPDX-License-Identifier: MIT

package reduce

import "errors"

// ErrShapeMismatch is returned when two operands that are combined elementwise
// do not have the same length. It is the single shape sentinel shared by the
// confusion and binary packages; callers match it with errors.Is.
var ErrShapeMismatch = errors.New("reduce: operand lengths differ")
