// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/lvbench/matrix"
)

// ExampleStrassen multiplies two 3×3 matrices with the smallest threshold, so the
// odd-dimension padding path runs all the way down to 1×1 blocks.
func ExampleStrassen() {
	a, b, err := matrix.ReadPair(strings.NewReader(`
1 2 3
4 5 6
7 8 9
9 8 7
6 5 4
3 2 1`), 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c, err := matrix.Strassen(a, b, matrix.WithThreshold(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(c)
	_ = matrix.WriteDiagonal(os.Stdout, c)
	// Output:
	// [30, 24, 18]
	// [84, 69, 54]
	// [138, 114, 90]
	// 30
	// 69
	// 90
}
