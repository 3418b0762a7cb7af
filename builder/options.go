// SPDX-License-Identifier: MIT
//
// options.go: functional options for the builder package.
//
// Option constructors panic on meaningless inputs (nil functions, inverted
// ranges); constructors themselves never panic and return sentinel errors.
package builder

import "math/rand"

// defaultWeight is the constant edge weight used without WithWeightFn.
const defaultWeight int64 = 1

// builderConfig is the resolved, immutable configuration seen by constructors.
type builderConfig struct {
	idFn     func(int) int          // index → vertex ID
	rng      *rand.Rand             // nil unless WithSeed/WithRand
	weightFn func(*rand.Rand) int64 // per-edge weight
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     func(i int) int { return i },
		weightFn: func(*rand.Rand) int64 { return defaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDOffset shifts every generated vertex ID by offset, e.g. 1 for
// one-based edge lists.
func WithIDOffset(offset int) BuilderOption {
	return func(c *builderConfig) {
		c.idFn = func(i int) int { return i + offset }
	}
}

// WithIDScheme sets the vertex ID generator. Panics on nil.
func WithIDScheme(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The RNG argument is
// nil when no WithSeed/WithRand was supplied. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithUniformWeights draws each weight uniformly from [lo, hi]. Requires an
// RNG at build time when lo != hi. Panics when hi < lo.
func WithUniformWeights(lo, hi int64) BuilderOption {
	if hi < lo {
		panic("builder: WithUniformWeights(hi < lo)")
	}
	return WithWeightFn(func(r *rand.Rand) int64 {
		if r == nil || lo == hi {
			return lo
		}
		return lo + r.Int63n(hi-lo+1)
	})
}
