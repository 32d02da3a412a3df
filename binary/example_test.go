// SPDX-License-Identifier: MIT

package binary_test

import (
	"fmt"

	"github.com/katalvlaran/faststats/binary"
)

// ExampleF1Reqs computes (TP, TP+FP, TP+FN) without a confusion matrix.
func ExampleF1Reqs() {
	actual := []uint8{1, 0, 1, 1}
	predicted := []uint8{1, 0, 0, 1}

	reqs, err := binary.F1Reqs(actual, predicted)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(reqs)
	// Output: (2, 2, 3)
}
