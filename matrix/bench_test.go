// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvbench/matrix"
)

func benchPair(b *testing.B, n int) (*matrix.Dense, *matrix.Dense) {
	b.Helper()
	r := rand.New(rand.NewSource(1))
	x, err := matrix.Random(n, n, r)
	if err != nil {
		b.Fatal(err)
	}
	y, err := matrix.Random(n, n, r)
	if err != nil {
		b.Fatal(err)
	}
	return x, y
}

// BenchmarkMul is the naive baseline.
func BenchmarkMul(b *testing.B) {
	for _, n := range []int{64, 256, 513} {
		x, y := benchPair(b, n)
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = matrix.Mul(x, y)
			}
		})
	}
}

// BenchmarkStrassenCrossover sweeps thresholds at a fixed size to locate the
// crossover point empirically.
func BenchmarkStrassenCrossover(b *testing.B) {
	x, y := benchPair(b, 513)
	for _, th := range []int{16, 32, 64, 128, 256} {
		b.Run(fmt.Sprintf("threshold=%d", th), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = matrix.Strassen(x, y, matrix.WithThreshold(th))
			}
		})
	}
}
