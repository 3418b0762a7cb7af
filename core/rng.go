// SPDX-License-Identifier: MIT
//
// File: rng.go
// Role: Deterministic uniform-index sources for random sampling.
//
// Goals:
//   - Determinism: same seed ⇒ identical samples for the same insertion history.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The graph serializes calls to its
//     source under its write lock; do not share a source between graphs that
//     are used from different goroutines.
package core

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// NewSeededSource returns a deterministic IndexSource following the seed==0
// policy of WithSeed. Useful when one stream should drive several graphs in
// sequence (e.g. repeated randomized trials).
func NewSeededSource(seed int64) IndexSource {
	return rngFromSeed(seed)
}

// drawIndex asks src for an index in [0, n) and clamps misbehaving sources
// into range so a faulty implementation cannot cause an out-of-bounds read.
func drawIndex(src IndexSource, n int) int {
	i := src.Intn(n)
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}

	return i
}
