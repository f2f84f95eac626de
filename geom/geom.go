// SPDX-License-Identifier: MIT

// Package geom holds the small geometric and random-sampling helpers shared by
// the MST workloads: points in the unit hypercube, Euclidean distance, and a
// seeded sampler with reproducible per-trial streams.
//
// Determinism:
//   - Same seed ⇒ identical point sets on every platform.
//   - No time-based sources anywhere; callers that want fresh randomness pick a seed.
//
// Concurrency:
//   - A Sampler wraps a *rand.Rand and is NOT goroutine-safe.
package geom

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrDimensionMismatch indicates two points of different dimension were compared.
var ErrDimensionMismatch = errors.New("geom: point dimension mismatch")

// ErrInvalidShape indicates a negative point count or a dimension below one.
var ErrInvalidShape = errors.New("geom: invalid point count or dimension")

// Point is an ordered tuple of coordinates. Points produced by Sampler lie in [0,1)^d.
type Point []float64

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Distance returns the Euclidean (L2) distance between p and q.
// p and q must have the same dimension; use DistanceChecked when that is not
// guaranteed by construction.
//
// Complexity: O(d).
func Distance(p, q Point) float64 {
	return floats.Distance(p, q, 2)
}

// DistanceChecked is Distance with a dimension guard.
func DistanceChecked(p, q Point) (float64, error) {
	if len(p) != len(q) {
		return 0, fmt.Errorf("Distance(%d,%d): %w", len(p), len(q), ErrDimensionMismatch)
	}

	return Distance(p, q), nil
}
