package vmath

import "hash/fnv"

// FastRand is a xorshift64 generator. Deterministic for a given seed, cheap
// enough to call many times per frame.
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator; a zero seed is remapped since xorshift
// has a fixed point at zero
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewKeyedRand seeds a generator from a stable string key via FNV-1a.
// The same key always yields the same sequence.
func NewKeyedRand(key string) *FastRand {
	h := fnv.New64a()
	h.Write([]byte(key))
	return NewFastRand(h.Sum64())
}

// Next returns the next raw 64-bit value
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n); n <= 0 returns 0
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Jitter returns a value in [-amp, amp)
func (r *FastRand) Jitter(amp float64) float64 {
	return (r.Float64()*2 - 1) * amp
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}
