// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package twister implements the 32-bit Mersenne Twister pseudo-random
// number generator, MT19937.
//
// A Twister can be used directly as an rtree.RandomSource, and it is
// also a math/rand.Source64, so it can back a *math/rand.Rand.
//
// A Twister is not safe for concurrent use by multiple goroutines.
package twister

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
	initMult  = 1812433253
)

// DefaultSeed is the seed used by the reference implementation when
// none is given.
const DefaultSeed uint32 = 5489

// Twister is an MT19937 generator.
type Twister struct {
	state [n]uint32
	index int
}

// New returns a Twister seeded with seed.
func New(seed uint32) *Twister {
	t := &Twister{}
	t.seed(seed)
	return t
}

func (t *Twister) seed(seed uint32) {
	t.state[0] = seed
	for i := 1; i < n; i++ {
		prev := t.state[i-1]
		t.state[i] = initMult*(prev^(prev>>30)) + uint32(i)
	}
	t.index = n
}

// Seed reseeds the generator with the low 32 bits of seed.
func (t *Twister) Seed(seed int64) {
	t.seed(uint32(seed))
}

// twist regenerates the whole state array.
func (t *Twister) twist() {
	for i := 0; i < n; i++ {
		y := (t.state[i] & upperMask) | (t.state[(i+1)%n] & lowerMask)
		next := t.state[(i+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		t.state[i] = next
	}
	t.index = 0
}

// Uint32 returns the next 32 pseudo-random bits.
func (t *Twister) Uint32() uint32 {
	if t.index >= n {
		t.twist()
	}
	y := t.state[t.index]
	t.index++

	// Tempering.
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

// Uint64 returns 64 pseudo-random bits made of two consecutive Uint32
// values, the first one in the high half.
func (t *Twister) Uint64() uint64 {
	hi := uint64(t.Uint32())
	return hi<<32 | uint64(t.Uint32())
}

// Int63 returns a non-negative pseudo-random int64.
func (t *Twister) Int63() int64 {
	return int64(t.Uint64() >> 1)
}

// Float64 returns a pseudo-random number in the half-open interval
// [0, 1). Each call consumes one Uint32 value.
func (t *Twister) Float64() float64 {
	return float64(t.Uint32()) / (1 << 32)
}
