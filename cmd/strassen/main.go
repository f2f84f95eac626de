// SPDX-License-Identifier: MIT

// Command strassen multiplies two dim×dim integer matrices read from a file and
// prints the diagonal of the product, one value per line.
//
//	strassen [-config file] [-threshold n] flag dimension infile
//
// infile holds 2·dim² integers: A row-major, then B row-major.
// flag 0 uses Strassen, 1 the naive kernel, 2 Strassen and prints the full product
// before the diagonal.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/lvbench/internal/config"
	"github.com/katalvlaran/lvbench/internal/logging"
	"github.com/katalvlaran/lvbench/internal/report"
	"github.com/katalvlaran/lvbench/matrix"
)

const usage = "usage: strassen [-config file] [-threshold n] flag dimension infile"

const (
	flagStrassen = 0
	flagNaive    = 1
	flagFull     = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("strassen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to a TOML config file")
	threshold := fs.Int("threshold", 0, "Strassen crossover; 0 keeps the configured value")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 3 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	mode, err1 := strconv.Atoi(fs.Arg(0))
	dim, err2 := strconv.Atoi(fs.Arg(1))
	if err1 != nil || err2 != nil || mode < flagStrassen || mode > flagFull || *threshold < 0 {
		fmt.Fprintln(stderr, "error: flag and dimension must be integers, flag in 0..2")
		fmt.Fprintln(stderr, usage)
		return 1
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	if *threshold > 0 {
		cfg.Strassen.Threshold = *threshold
	}
	log := logging.NewWithWriter(stderr, "strassen", cfg.Log)

	f, err := os.Open(fs.Arg(2))
	if err != nil {
		log.Error().Err(err).Msg("open input")
		return 1
	}
	defer f.Close()

	a, b, err := matrix.ReadPair(f, dim)
	if err != nil {
		log.Error().Err(err).Str("file", fs.Arg(2)).Msg("read matrices")
		return 1
	}

	start := time.Now()
	var c *matrix.Dense
	if mode == flagNaive {
		c, err = matrix.Mul(a, b)
	} else {
		c, err = matrix.Strassen(a, b, matrix.WithThreshold(cfg.Strassen.Threshold))
	}
	if err != nil {
		log.Error().Err(err).Msg("multiply")
		return 1
	}
	log.Info().
		Int("dimension", dim).
		Int("threshold", cfg.Strassen.Threshold).
		Bool("naive", mode == flagNaive).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	if err := report.Product(stdout, c, mode == flagFull); err != nil {
		log.Error().Err(err).Msg("write result")
		return 1
	}

	return 0
}
