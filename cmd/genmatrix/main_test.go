// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbench/matrix"
)

func TestRun_WritesReadablePair(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.txt")
	var stderr bytes.Buffer
	require.Equal(t, 0, run([]string{"-seed", "4", "7", path}, &stderr), stderr.String())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	a, b, err := matrix.ReadPair(f, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, a.Rows())
	assert.Equal(t, 7, b.Cols())

	// Same seed, same file.
	again := filepath.Join(t.TempDir(), "m2.txt")
	require.Equal(t, 0, run([]string{"-seed", "4", "7", again}, &stderr))
	x, err := os.ReadFile(path)
	require.NoError(t, err)
	y, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, x, y)
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	cases := [][]string{
		{},
		{"3"},
		{"three", filepath.Join(dir, "a")},
		{"0", filepath.Join(dir, "b")},
		{"3", filepath.Join(dir, "no", "such", "dir")},
	}
	for _, args := range cases {
		var stderr bytes.Buffer
		assert.Equal(t, 1, run(args, &stderr), "args %v", args)
	}
}
