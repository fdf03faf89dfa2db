// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "fmt"

// Tree is a persistent R-Tree of points.
//
// A Tree is a value. Insert, Remove and Compress do not change the Tree
// they are called on but return a new Tree, which shares every subtree
// the operation did not touch with the old one. Any number of
// goroutines may read the same Tree concurrently. Producing a new Tree
// calls the Tree's RandomSource, so a caller with several writers must
// serialize them.
//
// The zero value is an empty Tree with the default options.
type Tree struct {
	root entry
	opts *options
}

// New returns an empty Tree configured by opts.
func New(opts ...Option) Tree {
	o := defaultOptions
	for _, opt := range opts {
		opt(&o)
	}
	return Tree{root: entry{leaf: emptyLeaf}, opts: &o}
}

func (t Tree) entry() entry {
	if t.root.leaf == nil && t.root.node == nil {
		return entry{leaf: emptyLeaf}
	}
	return t.root
}

func (t Tree) options() *options {
	if t.opts == nil {
		return &defaultOptions
	}
	return t.opts
}

func (t Tree) with(root entry) Tree {
	return Tree{root: root, opts: t.opts}
}

// Insert returns a Tree with p added. Duplicate points are allowed and
// are each counted.
//
// When p lies in the bounding rectangles of several subtrees, every one
// of them receives a copy of p, so a point can be stored, counted and
// returned by Query more than once.
func (t Tree) Insert(p Point) Tree {
	return t.with(t.entry().insert(p, t.options()))
}

// Remove returns a Tree with every copy of p removed. No bounding
// rectangle shrinks. If p is not stored in t, t is returned.
func (t Tree) Remove(p Point) Tree {
	return t.with(t.entry().remove(p))
}

// Compress returns a Tree whose leaves have the tightest possible
// bounding rectangles. The bounding rectangles of internal nodes are
// not recomputed.
func (t Tree) Compress() Tree {
	return t.with(t.entry().compress())
}

// Query returns every stored point which r contains, including points
// on the edges of r. Points are returned in leaf order, and a point is
// returned once for each time it is stored.
func (t Tree) Query(r Rectangle) []Point {
	return query(t.entry(), r, nil)
}

// Rectangles returns the bounding rectangle of every entry in the tree
// in pre-order: the root's rectangle first, followed by the rectangles
// of each child's subtree in child order.
func (t Tree) Rectangles() []Rectangle {
	var rs []Rectangle
	walk(t.entry(), func(tk ticket) step {
		rs = append(rs, tk.e.bounds())
		return descend
	})
	return rs
}

// Walk calls fn for each entry in the tree, in the same order as
// Rectangles. Walk stops if fn returns false.
func (t Tree) Walk(fn func(v Visit) bool) {
	walk(t.entry(), func(tk ticket) step {
		v := Visit{
			Bounds: tk.e.bounds(),
			Depth:  tk.depth,
			Leaf:   tk.e.isLeaf(),
			Count:  tk.e.count(),
		}
		if !fn(v) {
			return stop
		}
		return descend
	})
}

// Points returns every stored point in leaf order.
func (t Tree) Points() []Point {
	ps := make([]Point, 0, t.Count())
	walk(t.entry(), func(tk ticket) step {
		if tk.e.isLeaf() {
			ps = append(ps, tk.e.leaf.points...)
		}
		return descend
	})
	return ps
}

// Count returns the number of stored points, counting duplicates and
// copies.
func (t Tree) Count() int {
	return t.entry().count()
}

// LeafCount returns the number of leaves. An empty Tree has one leaf.
func (t Tree) LeafCount() int {
	var n int
	walk(t.entry(), func(tk ticket) step {
		if tk.e.isLeaf() {
			n++
		}
		return descend
	})
	return n
}

// Height returns the number of levels in the tree. A Tree whose root is
// a leaf has height 1.
func (t Tree) Height() int {
	var h int
	walk(t.entry(), func(tk ticket) step {
		if tk.depth+1 > h {
			h = tk.depth + 1
		}
		return descend
	})
	return h
}

// Bounds returns the bounding rectangle of the root.
func (t Tree) Bounds() Rectangle {
	return t.entry().bounds()
}

// Capacity returns the number of points at which a leaf is split.
func (t Tree) Capacity() int {
	return t.options().capacity
}

// String returns a summary description of the tree.
func (t Tree) String() string {
	return fmt.Sprintf("Tree{Bounds:%s,Count:%d,Leaves:%d,Capacity:%d}", t.Bounds(), t.Count(), t.LeafCount(), t.Capacity())
}
