// Package synth implements the unique-constrained stochastic record
// generator: a seeded pseudorandom stream, a bounded-retry unique value
// allocator, per-kind value generators, and two batch drivers (standard and
// throughput-optimized) plus a chunked parallel mode.
package synth

import "math/rand/v2"

// NewStream returns a fully deterministic pseudorandom stream: identical
// seeds yield identical draw sequences.
func NewStream(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// NewEntropyStream returns a stream seeded from the process entropy source.
// Its output is not reproducible.
func NewEntropyStream() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
