// SPDX-License-Identifier: MIT

// Command randmst reports the average MST weight of random complete graphs.
//
//	randmst [-config file] [-seed n] flag numpoints numtrials dimension
//
// flag 0 runs the configured method (Kruskal by default), 1 forces dense Prim,
// 2 runs the configured method and logs every trial at debug level.
// The result line "average numpoints numtrials dimension" goes to stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvbench/internal/config"
	"github.com/katalvlaran/lvbench/internal/logging"
	"github.com/katalvlaran/lvbench/internal/report"
	"github.com/katalvlaran/lvbench/randmst"
)

const usage = "usage: randmst [-config file] [-seed n] flag numpoints numtrials dimension"

const (
	flagConfigured = 0
	flagPrim       = 1
	flagVerbose    = 2
)

var errUsage = errors.New(usage)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("randmst", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to a TOML config file")
	seed := fs.Int64("seed", 0, "base seed; 0 keeps the configured seed")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	params, err := parseArgs(fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		fmt.Fprintln(stderr, usage)
		return 1
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	log := logging.NewWithWriter(stderr, "randmst", cfg.Log)

	runCfg := randmst.Config{
		Points:    params[1],
		Trials:    params[2],
		Dimension: params[3],
		Seed:      cfg.MST.Seed,
		Method:    cfg.MST.Method,
	}
	if *seed != 0 {
		runCfg.Seed = *seed
	}
	if runCfg.Seed == 0 {
		// Seeded once per process; the value is logged so the run can be replayed.
		runCfg.Seed = time.Now().UnixNano()
	}

	var opts []randmst.RunOption
	switch params[0] {
	case flagConfigured:
	case flagPrim:
		runCfg.Method = randmst.MethodPrim
	case flagVerbose:
		log = log.Level(zerolog.DebugLevel)
		opts = append(opts, randmst.WithProgress(func(trial int, w float64) {
			log.Debug().Int("trial", trial).Float64("weight", w).Msg("trial finished")
		}))
	default:
		log.Error().Int("flag", params[0]).Msg("unknown flag")
		fmt.Fprintln(stderr, usage)
		return 1
	}

	log.Info().
		Int("points", runCfg.Points).
		Int("trials", runCfg.Trials).
		Int("dimension", runCfg.Dimension).
		Int64("seed", runCfg.Seed).
		Str("method", runCfg.Method).
		Msg("starting")

	rep, err := randmst.Run(runCfg, opts...)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		return 1
	}
	log.Info().
		Dur("elapsed", rep.Elapsed).
		Float64("stddev", rep.StdDev).
		Float64("min", rep.Min).
		Float64("max", rep.Max).
		Msg("done")

	if err := report.MST(stdout, rep); err != nil {
		log.Error().Err(err).Msg("write result")
		return 1
	}

	return 0
}

// parseArgs converts the four positional arguments to integers.
func parseArgs(args []string) ([4]int, error) {
	var out [4]int
	if len(args) != len(out) {
		return out, fmt.Errorf("want %d arguments, got %d: %w", len(out), len(args), errUsage)
	}
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return out, fmt.Errorf("argument %d (%q) is not an integer", i+1, a)
		}
		out[i] = v
	}

	return out, nil
}
