// SPDX-License-Identifier: MIT

// Package logging builds the zerolog loggers used by the lvbench binaries.
// Library packages never log; binaries log progress, timings and failures.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvbench/internal/config"
)

// EnvLogLevel overrides the configured level when set.
const EnvLogLevel = "LVBENCH_LOG_LEVEL"

// New returns a console logger writing to stderr, tagged with app.
func New(app string, cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(os.Stderr, app, cfg)
}

// NewWithWriter is New with an explicit destination. Stdout is left free for
// program results.
func NewWithWriter(w io.Writer, app string, cfg config.LogConfig) zerolog.Logger {
	level := cfg.Level
	if env := os.Getenv(EnvLogLevel); env != "" {
		level = env
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	if !cfg.Timestamp {
		output.PartsExclude = []string{zerolog.TimestampFieldName}
	}

	return zerolog.New(output).
		Level(ParseLevel(level)).
		With().Timestamp().Str("app", app).
		Logger()
}

// ParseLevel maps a level name to a zerolog level. Unknown names fall back to info.
func ParseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
