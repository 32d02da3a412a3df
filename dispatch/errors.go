// SPDX-License-Identifier: MIT

package dispatch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedKind indicates that the operands do not share one supported
// element kind.
var ErrUnsupportedKind = errors.New("dispatch: unsupported or mismatched element kind")

// unsupportedErrorf names the operation and the Go types that failed to resolve.
func unsupportedErrorf(op string, operands []any) error {
	types := make([]string, len(operands))
	for i, x := range operands {
		types[i] = fmt.Sprintf("%T", x)
	}

	return fmt.Errorf("%s(%s): %w", op, strings.Join(types, ", "), ErrUnsupportedKind)
}
