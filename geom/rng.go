// SPDX-License-Identifier: MIT

package geom

import (
	"fmt"
	"math/rand"
)

// DefaultSeed is the seed used when callers pass seed == 0.
// The value is arbitrary but fixed so the zero configuration stays reproducible.
const DefaultSeed int64 = 1

// Sampler draws uniformly distributed points from a seeded stream.
type Sampler struct {
	seed int64
	rng  *rand.Rand
}

// NewSampler returns a Sampler for seed. Policy: seed == 0 ⇒ DefaultSeed.
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Sampler{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// Seed returns the effective seed, after the zero-seed policy was applied.
func (s *Sampler) Seed() int64 { return s.seed }

// Rand exposes the underlying stream for callers that need other distributions
// from the same seed (e.g. random matrices).
func (s *Sampler) Rand() *rand.Rand { return s.rng }

// Points returns n points of dimension d with every coordinate uniform in [0,1).
// The coordinates share one backing slice, so the whole set is two allocations.
//
// Errors: ErrInvalidShape if n < 0 or d < 1.
// Complexity: O(n·d).
func (s *Sampler) Points(n, d int) ([]Point, error) {
	if n < 0 || d < 1 {
		return nil, fmt.Errorf("Points(%d,%d): %w", n, d, ErrInvalidShape)
	}

	buf := make([]float64, n*d)
	for i := range buf {
		buf[i] = s.rng.Float64()
	}
	pts := make([]Point, n)
	for i := 0; i < n; i++ {
		pts[i] = Point(buf[i*d : (i+1)*d : (i+1)*d])
	}

	return pts, nil
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed.
// A SplitMix64 finalizer is applied so neighbouring stream ids give
// uncorrelated seeds. The result is never 0, so it survives the zero-seed policy
// unchanged.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		x = uint64(DefaultSeed)
	}

	return int64(x)
}
