// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "math/rand"

// A RandomSource supplies uniformly distributed values in the half-open
// interval [0, 1).
//
// A Tree draws exactly one value each time a leaf reaches capacity and
// must be split: values below 0.5 split the leaf along the X-axis,
// other values along the Y-axis. A *math/rand.Rand is a RandomSource,
// and so is a RandomFunc wrapping any suitable function, which makes it
// easy to script the splits in tests.
//
// A Tree only calls its RandomSource while producing a new Tree, so a
// RandomSource which is not safe for concurrent use is fine as long as
// new Trees are produced by one goroutine at a time.
type RandomSource interface {
	Float64() float64
}

// RandomFunc adapts an ordinary function to the RandomSource interface.
type RandomFunc func() float64

// Float64 returns f().
func (f RandomFunc) Float64() float64 {
	return f()
}

// DefaultCapacity is the leaf capacity used when WithCapacity is not
// given.
const DefaultCapacity = 16

// MinCapacity is the smallest leaf capacity accepted by WithCapacity.
const MinCapacity = 2

// options are shared, read-only, by every Tree derived from the same
// call to New.
type options struct {
	capacity int
	rand     RandomSource
}

var defaultOptions = options{
	capacity: DefaultCapacity,
	rand:     RandomFunc(rand.Float64),
}

// An Option configures a Tree created by New.
type Option func(*options)

// WithCapacity sets the number of points at which a leaf is split.
// Panics if capacity is less than MinCapacity.
func WithCapacity(capacity int) Option {
	if capacity < MinCapacity {
		fmtPanic("leaf capacity must be at least %d, got %d", MinCapacity, capacity)
	}
	return func(o *options) {
		o.capacity = capacity
	}
}

// WithRandomSource sets the source of the coin flips used to choose
// the split axis. By default, the top-level functions of package
// math/rand are used. Panics if r is nil.
func WithRandomSource(r RandomSource) Option {
	if r == nil {
		textPanic("nil random source")
	}
	return func(o *options) {
		o.rand = r
	}
}
