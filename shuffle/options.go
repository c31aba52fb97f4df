// SPDX-License-Identifier: MIT

package shuffle

import "math/rand"

// defaultSeed is used when no RNG option is supplied, and for WithSeed(0).
const defaultSeed int64 = 1

type config struct {
	rng *rand.Rand
}

// Option customises a shuffle call.
type Option func(*config)

// WithSeed draws from a fresh deterministic stream. Seed 0 maps to the
// package default so that "unset" and "zero" behave the same.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand draws from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("shuffle: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

func resolve(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.rng == nil {
		c.rng = rngFromSeed(defaultSeed)
	}

	return c
}
