// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbench/matrix"
)

func TestRandom_Distribution(t *testing.T) {
	m, err := matrix.Random(200, 200, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	var counts [3]int
	for _, row := range m.RowsCopy() {
		for _, v := range row {
			require.True(t, v >= 0 && v <= 2, "entry %d out of {0,1,2}", v)
			counts[v]++
		}
	}
	total := float64(200 * 200)
	assert.InDelta(t, 0.33, float64(counts[0])/total, 0.02)
	assert.InDelta(t, 0.34, float64(counts[1])/total, 0.02)
	assert.InDelta(t, 0.33, float64(counts[2])/total, 0.02)
}

func TestRandom_DeterministicAndValidated(t *testing.T) {
	a, err := matrix.Random(6, 4, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	b, err := matrix.Random(6, 4, rand.New(rand.NewSource(9)))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	_, err = matrix.Random(0, 4, rand.New(rand.NewSource(9)))
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
