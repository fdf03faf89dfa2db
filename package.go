// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package rtree provides a persistent, in-memory R-Tree which indexes
// two-dimensional points for rectangular range queries.
//
// A Tree is a value. Insert, Remove and Compress never modify the
// receiver; they return a new Tree which shares every unchanged subtree
// with the old one. Any number of goroutines may therefore query the
// same Tree concurrently, and a caller which wants to keep an old
// version of the index simply keeps the old value. Publishing a new
// version to other goroutines is up to the caller.
//
// Leaves hold up to a configurable number of points (see WithCapacity).
// When a leaf fills up it is split in two along the X- or Y-axis, the
// axis being chosen by a coin flip drawn from a RandomSource.
package rtree
