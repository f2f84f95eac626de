// SPDX-License-Identifier: MIT

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvbench/internal/config"
	"github.com/katalvlaran/lvbench/matrix"
	"github.com/katalvlaran/lvbench/randmst"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, matrix.DefaultThreshold, cfg.Strassen.Threshold)
	assert.Equal(t, randmst.MethodKruskal, cfg.MST.Method)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lvbench.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[mst]
seed = 42
method = "Prim"

[strassen]
threshold = 16

[log]
level = "DEBUG"
timestamp = false
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.MST.Seed)
	assert.Equal(t, randmst.MethodPrim, cfg.MST.Method)
	assert.Equal(t, 16, cfg.Strassen.Threshold)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Timestamp)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse("[strassen]\nthreshold = 8\n")
	require.NoError(t, err)
	want := config.Default()
	want.Strassen.Threshold = 8
	assert.Equal(t, want, cfg)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero threshold": "[strassen]\nthreshold = 0\n",
		"bad method":     "[mst]\nmethod = \"boruvka\"\n",
		"unknown key":    "[mst]\npoints = 3\n",
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse(text)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}

	_, err := config.Parse("[mst\n")
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
