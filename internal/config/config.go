// SPDX-License-Identifier: MIT

// Package config loads the TOML configuration shared by the lvbench binaries.
//
// Every key is optional; keys absent from the file keep their defaults.
//
//	[mst]
//	seed   = 42         # 0 ⇒ seed from the wall clock at startup
//	method = "kruskal"  # or "prim"
//
//	[strassen]
//	threshold = 64
//
//	[log]
//	level     = "info"  # trace|debug|info|warn|error|disabled
//	timestamp = true
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvbench/matrix"
	"github.com/katalvlaran/lvbench/randmst"
)

// ErrInvalidConfig indicates a configuration value out of its allowed range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the resolved configuration.
type Config struct {
	MST      MSTConfig
	Strassen StrassenConfig
	Log      LogConfig
}

// MSTConfig configures randmst runs.
type MSTConfig struct {
	Seed   int64
	Method string
}

// StrassenConfig configures matrix.Strassen.
type StrassenConfig struct {
	Threshold int
}

// LogConfig configures the zerolog logger.
type LogConfig struct {
	Level     string
	Timestamp bool
}

type fileConfig struct {
	MST struct {
		Seed   int64  `toml:"seed"`
		Method string `toml:"method"`
	} `toml:"mst"`
	Strassen struct {
		Threshold int `toml:"threshold"`
	} `toml:"strassen"`
	Log struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
	} `toml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MST:      MSTConfig{Seed: 0, Method: randmst.MethodKruskal},
		Strassen: StrassenConfig{Threshold: matrix.DefaultThreshold},
		Log:      LogConfig{Level: "info", Timestamp: true},
	}
}

// Load reads path over Default(). An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := apply(&cfg, raw, meta); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes TOML text over Default(). It is Load without the file.
func Parse(text string) (Config, error) {
	cfg := Default()
	var raw fileConfig
	meta, err := toml.Decode(text, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := apply(&cfg, raw, meta); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

func apply(cfg *Config, raw fileConfig, meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q: %w", undecoded[0].String(), ErrInvalidConfig)
	}

	if meta.IsDefined("mst", "seed") {
		cfg.MST.Seed = raw.MST.Seed
	}
	if meta.IsDefined("mst", "method") {
		m := strings.ToLower(strings.TrimSpace(raw.MST.Method))
		if m != randmst.MethodKruskal && m != randmst.MethodPrim {
			return fmt.Errorf("mst.method %q: %w", raw.MST.Method, ErrInvalidConfig)
		}
		cfg.MST.Method = m
	}
	if meta.IsDefined("strassen", "threshold") {
		if raw.Strassen.Threshold < 1 {
			return fmt.Errorf("strassen.threshold %d: %w", raw.Strassen.Threshold, ErrInvalidConfig)
		}
		cfg.Strassen.Threshold = raw.Strassen.Threshold
	}
	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.ToLower(strings.TrimSpace(raw.Log.Level))
	}
	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}

	return nil
}
