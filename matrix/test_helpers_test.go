// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the multiplication kernels.
//   • Offer an independent reference product (gonum/mat) to compare against.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvbench/matrix"
)

// MustDense builds a *Dense from literal rows or fails the test.
func MustDense(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// randomSquare returns an n×n matrix with entries uniform in [lo, hi].
func randomSquare(t testing.TB, r *rand.Rand, n int, lo, hi int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, lo+r.Int63n(hi-lo+1)))
		}
	}
	return m
}

// toGonum converts m into a gonum dense matrix. Exact for the small values used here.
func toGonum(m *matrix.Dense) *mat.Dense {
	data := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range m.RowsCopy() {
		for _, v := range row {
			data = append(data, float64(v))
		}
	}
	return mat.NewDense(m.Rows(), m.Cols(), data)
}

// referenceProduct multiplies with gonum and converts back to int64.
func referenceProduct(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	var c mat.Dense
	c.Mul(toGonum(a), toGonum(b))
	r, k := c.Dims()
	out, err := matrix.NewDense(r, k)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < k; j++ {
			require.NoError(t, out.Set(i, j, int64(c.At(i, j))))
		}
	}
	return out
}
