// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// DefaultThreshold is the Strassen crossover: blocks of dimension <= this value
// are multiplied naively.
const DefaultThreshold = 64

const panicThresholdInvalid = "matrix: WithThreshold: threshold must be >= 1, got %d"

// Options holds Strassen configuration. Build it through Option values.
type Options struct {
	threshold int
}

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// WithThreshold sets the crossover dimension. Panics if n < 1.
func WithThreshold(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf(panicThresholdInvalid, n))
	}

	return func(o *Options) {
		o.threshold = n
	}
}

// Threshold returns the configured crossover dimension.
func (o Options) Threshold() int { return o.threshold }

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
