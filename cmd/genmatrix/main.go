// SPDX-License-Identifier: MIT

// Command genmatrix writes two random dim×dim matrices with entries in {0,1,2}
// to a file, one value per line, in the format strassen reads.
//
//	genmatrix [-seed n] dimension outfile
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/lvbench/geom"
	"github.com/katalvlaran/lvbench/internal/config"
	"github.com/katalvlaran/lvbench/internal/logging"
	"github.com/katalvlaran/lvbench/matrix"
)

const usage = "usage: genmatrix [-seed n] dimension outfile"

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("genmatrix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	seed := fs.Int64("seed", 0, "RNG seed; 0 seeds from the clock")
	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	dim, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, "error: dimension must be an integer")
		fmt.Fprintln(stderr, usage)
		return 1
	}
	log := logging.NewWithWriter(stderr, "genmatrix", config.Default().Log)

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	rng := geom.NewSampler(s).Rand()
	a, err := matrix.Random(dim, dim, rng)
	if err != nil {
		log.Error().Err(err).Int("dimension", dim).Msg("generate")
		return 1
	}
	b, err := matrix.Random(dim, dim, rng)
	if err != nil {
		log.Error().Err(err).Int("dimension", dim).Msg("generate")
		return 1
	}

	out, err := os.Create(fs.Arg(1))
	if err != nil {
		log.Error().Err(err).Msg("create output")
		return 1
	}
	if err := matrix.WritePair(out, a, b); err != nil {
		out.Close()
		log.Error().Err(err).Msg("write output")
		return 1
	}
	if err := out.Close(); err != nil {
		log.Error().Err(err).Msg("close output")
		return 1
	}
	log.Info().Int("dimension", dim).Int64("seed", s).Str("file", fs.Arg(1)).Msg("written")

	return 0
}
