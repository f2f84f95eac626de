// SPDX-License-Identifier: MIT

package randmst

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvbench/geom"
)

// Config describes a batch of independent MST trials.
type Config struct {
	Points    int    // N, vertices per trial (>= 0)
	Trials    int    // T, number of independent trials (>= 1)
	Dimension int    // D, coordinates per point (>= 1)
	Seed      int64  // base seed; 0 ⇒ geom.DefaultSeed
	Method    string // MethodKruskal (default when empty) or MethodPrim
}

// Report is the outcome of Run. Weights[k] is the MST weight of trial k.
type Report struct {
	Config
	Average float64
	StdDev  float64
	Min     float64
	Max     float64
	Weights []float64
	Elapsed time.Duration
}

// ProgressFunc is called after every finished trial (1-based) with its MST weight.
type ProgressFunc func(trial int, weight float64)

type runOptions struct {
	progress ProgressFunc
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithProgress installs a per-trial callback.
func WithProgress(fn ProgressFunc) RunOption {
	return func(o *runOptions) {
		o.progress = fn
	}
}

// Validate checks the configuration and applies defaults for Seed and Method.
func (c *Config) Validate() error {
	switch {
	case c.Points < 0:
		return fmt.Errorf("points=%d: %w", c.Points, ErrInvalidConfig)
	case c.Trials < 1:
		return fmt.Errorf("trials=%d: %w", c.Trials, ErrInvalidConfig)
	case c.Dimension < 1:
		return fmt.Errorf("dimension=%d: %w", c.Dimension, ErrInvalidConfig)
	}
	if c.Seed == 0 {
		c.Seed = geom.DefaultSeed
	}
	if c.Method == "" {
		c.Method = MethodKruskal
	}
	if c.Method != MethodKruskal && c.Method != MethodPrim {
		return fmt.Errorf("method=%q: %w", c.Method, ErrUnknownMethod)
	}

	return nil
}

// Run executes cfg.Trials independent trials sequentially and returns the
// average MST weight (Σ weights / T) with spread statistics.
//
// Every trial k owns its point set, edge list and forest, drawn from the stream
// geom.DeriveSeed(cfg.Seed, k). A trial's state is released before the next
// one starts. Per-trial weights are collected and reduced once at the end.
//
// Any trial error aborts the run; no partial report is returned.
func Run(cfg Config, opts ...RunOption) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, fmt.Errorf("Run: %w", err)
	}
	var ro runOptions
	for _, opt := range opts {
		opt(&ro)
	}

	mstOpts := MSTOptions{Method: cfg.Method}
	weights := make([]float64, cfg.Trials)
	start := time.Now()
	for k := 0; k < cfg.Trials; k++ {
		w, err := runTrial(cfg, uint64(k), mstOpts)
		if err != nil {
			return Report{}, fmt.Errorf("Run: trial %d: %w", k+1, err)
		}
		weights[k] = w
		if ro.progress != nil {
			ro.progress(k+1, w)
		}
	}
	elapsed := time.Since(start)

	return summarize(cfg, weights, elapsed), nil
}

// runTrial samples one point set and returns its MST weight.
func runTrial(cfg Config, stream uint64, opts MSTOptions) (float64, error) {
	sampler := geom.NewSampler(geom.DeriveSeed(cfg.Seed, stream))
	points, err := sampler.Points(cfg.Points, cfg.Dimension)
	if err != nil {
		return 0, err
	}
	res, err := Compute(points, opts)
	if err != nil {
		return 0, err
	}
	if cfg.Points > 0 && len(res.Edges) != cfg.Points-1 {
		// Compute already guarantees this; a mismatch means a broken solver.
		panic(fmt.Sprintf("randmst: accepted %d edges for %d points", len(res.Edges), cfg.Points))
	}

	return res.Weight, nil
}

func summarize(cfg Config, weights []float64, elapsed time.Duration) Report {
	r := Report{
		Config:  cfg,
		Weights: weights,
		Elapsed: elapsed,
		Average: floats.Sum(weights) / float64(len(weights)),
		Min:     floats.Min(weights),
		Max:     floats.Max(weights),
	}
	if len(weights) > 1 {
		r.StdDev = stat.StdDev(weights, nil)
	}

	return r
}
