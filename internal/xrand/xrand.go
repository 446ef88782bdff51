// Package xrand implements the xorshift128+ seeded pseudo-random
// number generator that drives avatar generation. It produces a fully
// deterministic draw sequence for a given seed vector; every consumer
// of randomness in the pipeline shares one instance, so the order of
// draws is part of the output contract, not an implementation detail.
package xrand

import "math"

// Fallback state words for missing or zero seeds. The all-zero state
// is a fixed point of the generator and must never be seeded.
const (
	fallbackS0 = 0x9E3779B9
	fallbackS1 = 0x85EBCA6B
)

// warmup is the number of draws discarded after seeding to dissipate
// poor seed structure.
const warmup = 10

// Rand is a xorshift128+ generator over two 32-bit state words.
type Rand struct {
	s0, s1 uint32
}

// New seeds a generator from a seed vector. The first two words become
// the state (a missing or zero word is replaced by a fixed nonzero
// fallback); every further word is folded into s0 by XOR followed by
// one discarded draw. Ten warm-up draws are then discarded.
func New(seeds []uint32) *Rand {
	r := &Rand{s0: fallbackS0, s1: fallbackS1}
	if len(seeds) > 0 && seeds[0] != 0 {
		r.s0 = seeds[0]
	}
	if len(seeds) > 1 && seeds[1] != 0 {
		r.s1 = seeds[1]
	}
	for _, s := range seeds[min(len(seeds), 2):] {
		r.s0 ^= s
		r.Float()
	}
	for i := 0; i < warmup; i++ {
		r.Float()
	}
	return r
}

// Float advances the state once and returns the next value in [0,1).
//
// The update keeps the exact xorshift128+ shift amounts and operand
// order (23, 17, 26 over 32-bit words); the returned value is the sum
// of the two new state words, reduced mod 2^32.
func (r *Rand) Float() float64 {
	s1 := r.s0 ^ (r.s0 << 23) ^ (r.s0 >> 17) ^ r.s1 ^ (r.s1 >> 26)
	r.s0, r.s1 = r.s1, s1
	return float64(r.s0+r.s1) / (1 << 32)
}

// Range returns a value in [min, max), consuming exactly one draw.
func (r *Rand) Range(min, max float64) float64 {
	return r.Float()*(max-min) + min
}

// Int returns an integer in [min, max), consuming exactly one draw.
func (r *Rand) Int(min, max int) int {
	return int(math.Floor(r.Range(float64(min), float64(max))))
}

// Bool reports true with probability p, consuming exactly one draw.
func (r *Rand) Bool(p float64) bool {
	return r.Float() < p
}

// Pick returns a uniformly drawn element of items, consuming exactly
// one draw. It panics on an empty slice.
func Pick[T any](r *Rand, items []T) T {
	return items[r.Int(0, len(items))]
}
