// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbench/matrix"
)

func TestMul_Small(t *testing.T) {
	a := MustDense(t, [][]int64{{1, 2}, {3, 4}})
	b := MustDense(t, [][]int64{{5, 6}, {7, 8}})
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{19, 22}, {43, 50}}, got.RowsCopy())
}

func TestMul_Rectangular(t *testing.T) {
	a := MustDense(t, [][]int64{{1, 0, -1}, {2, 3, 1}}) // 2×3
	b := MustDense(t, [][]int64{{1}, {2}, {3}})         // 3×1
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int64{{-2}, {11}}, got.RowsCopy())
}

func TestMul_Errors(t *testing.T) {
	a := MustDense(t, [][]int64{{1, 2}})
	_, err := matrix.Mul(a, a)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Mul(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_MatchesGonum(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 7, 16, 31} {
		a := randomSquare(t, r, n, -9, 9)
		b := randomSquare(t, r, n, -9, 9)
		got, err := matrix.Mul(a, b)
		require.NoError(t, err)
		assert.True(t, referenceProduct(t, a, b).Equal(got), "n=%d", n)
	}
}

func TestMul_Identity(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	a := randomSquare(t, r, 9, -100, 100)
	id, err := matrix.NewSquare(9)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		require.NoError(t, id.Set(i, i, 1))
	}
	left, err := matrix.Mul(id, a)
	require.NoError(t, err)
	right, err := matrix.Mul(a, id)
	require.NoError(t, err)
	assert.True(t, a.Equal(left))
	assert.True(t, a.Equal(right))
}

func TestAccumulate(t *testing.T) {
	src := MustDense(t, [][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	// Extraction of the bottom-right 1×1 block into a zeroed 2×2 buffer pads with zeros.
	dst, err := matrix.NewSquare(2)
	require.NoError(t, err)
	matrix.Accumulate(dst, 0, 0, src, 2, 2, 1, 1, false)
	assert.Equal(t, [][]int64{{9, 0}, {0, 0}}, dst.RowsCopy())

	// Subtracting the top-left 2×2 block forms a difference in place.
	matrix.Accumulate(dst, 0, 0, src, 0, 0, 2, 2, true)
	assert.Equal(t, [][]int64{{8, -2}, {-4, -5}}, dst.RowsCopy())

	// Offset write-back into the destination's lower-right corner.
	out, err := matrix.NewSquare(3)
	require.NoError(t, err)
	matrix.Accumulate(out, 1, 1, dst, 0, 0, 2, 2, false)
	assert.Equal(t, [][]int64{{0, 0, 0}, {0, 8, -2}, {0, -4, -5}}, out.RowsCopy())

	// Zero-sized rectangles are no-ops.
	matrix.Accumulate(out, 0, 0, src, 0, 0, 0, 3, false)
	matrix.Accumulate(out, 0, 0, src, 0, 0, 3, 0, true)
	assert.Equal(t, [][]int64{{0, 0, 0}, {0, 8, -2}, {0, -4, -5}}, out.RowsCopy())

	// Source is never modified.
	assert.Equal(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, src.RowsCopy())
}
