// SPDX-License-Identifier: MIT

package randmst_test

import (
	"testing"

	"github.com/katalvlaran/lvbench/geom"
	"github.com/katalvlaran/lvbench/randmst"
)

func benchPoints(b *testing.B, n, d int) []geom.Point {
	b.Helper()
	pts, err := geom.NewSampler(1).Points(n, d)
	if err != nil {
		b.Fatal(err)
	}
	return pts
}

// BenchmarkKruskal measures edge generation plus Kruskal on K_1024 in 2-D.
func BenchmarkKruskal(b *testing.B) {
	pts := benchPoints(b, 1024, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = randmst.Compute(pts, randmst.DefaultOptions())
	}
}

// BenchmarkPrim measures dense Prim on the same instance.
func BenchmarkPrim(b *testing.B) {
	pts := benchPoints(b, 1024, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = randmst.Prim(pts)
	}
}
