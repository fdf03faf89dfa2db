// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "math"

// A node is an internal tree node. It has at least two children and a
// bounding rectangle which contains the bounding rectangles of all its
// children, although possibly not as tightly as it could.
//
// A node is never modified after it is created. Operations which
// change the tree copy the path from the root to the changed leaves and
// share every other subtree.
type node struct {
	children []entry
	bounds   Rectangle
}

// newNode creates a node with the two halves of a split leaf as its
// children.
func newNode(left, right *leaf) *node {
	return &node{
		children: []entry{{leaf: left}, {leaf: right}},
		bounds:   left.bounds.Union(right.bounds),
	}
}

// insert adds p to every child whose bounding rectangle contains it.
// If there is no such child, p is added to the child whose bounding
// rectangle grows least in area by taking in p, with ties going to the
// earlier child.
//
// If the node's own bounding rectangle did not contain p, it is
// recomputed from the children afterward.
func (n *node) insert(p Point, o *options) *node {
	children := make([]entry, len(n.children))
	copy(children, n.children)

	var inserted bool
	for i := range children {
		if children[i].contains(p) {
			children[i] = children[i].insert(p, o)
			inserted = true
		}
	}
	if !inserted {
		i := leastGrowth(children, p)
		children[i] = children[i].insert(p, o)
	}

	b := n.bounds
	if !b.Contains(p) {
		b = children[0].bounds()
		for _, c := range children[1:] {
			b = b.Union(c.bounds())
		}
	}
	return &node{children: children, bounds: b}
}

// leastGrowth returns the index of the first entry whose bounding
// rectangle would grow least in area if expanded to contain p.
func leastGrowth(children []entry, p Point) int {
	best, bestGrowth := 0, math.Inf(1)
	for i := range children {
		b := children[i].bounds()
		growth := b.ExpandedToBound(p).Area() - b.Area()
		if growth < bestGrowth {
			best, bestGrowth = i, growth
		}
	}
	return best
}

// remove returns a node without any point equal to p. Every child is
// visited, and children which do not store p are shared as they are.
// The node's bounding rectangle is kept as is. If p is not stored, the
// receiver is returned.
func (n *node) remove(p Point) *node {
	var children []entry
	for i := range n.children {
		c := n.children[i].remove(p)
		if c == n.children[i] {
			continue
		}
		if children == nil {
			children = make([]entry, len(n.children))
			copy(children, n.children)
		}
		children[i] = c
	}
	if children == nil {
		return n
	}
	return &node{children: children, bounds: n.bounds}
}

func (n *node) contains(p Point) bool {
	return n.bounds.Contains(p)
}

// compress tightens the bounding rectangle of every leaf in the subtree.
// The bounding rectangles of nodes, including this one, are kept as
// they are.
func (n *node) compress() *node {
	children := make([]entry, len(n.children))
	for i := range n.children {
		children[i] = n.children[i].compress()
	}
	return &node{children: children, bounds: n.bounds}
}

func (n *node) count() int {
	var c int
	for i := range n.children {
		c += n.children[i].count()
	}
	return c
}
