// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

// An entry is either a leaf or a node. Exactly one of the two fields is
// non-nil.
type entry struct {
	leaf *leaf
	node *node
}

// isLeaf reports whether the entry is a leaf.
func (e entry) isLeaf() bool {
	return e.leaf != nil
}

func (e entry) bounds() Rectangle {
	if e.leaf != nil {
		return e.leaf.bounds
	}
	return e.node.bounds
}

func (e entry) contains(p Point) bool {
	if e.leaf != nil {
		return e.leaf.contains(p)
	}
	return e.node.contains(p)
}

// insert returns an entry with p added. A leaf which splits is replaced
// by a node whose two children are the halves of the split.
func (e entry) insert(p Point, o *options) entry {
	if e.leaf != nil {
		left, right := e.leaf.insert(p, o)
		if right == nil {
			return entry{leaf: left}
		}
		return entry{node: newNode(left, right)}
	}
	return entry{node: e.node.insert(p, o)}
}

func (e entry) remove(p Point) entry {
	if e.leaf != nil {
		return entry{leaf: e.leaf.remove(p)}
	}
	return entry{node: e.node.remove(p)}
}

func (e entry) compress() entry {
	if e.leaf != nil {
		return entry{leaf: e.leaf.compress()}
	}
	return entry{node: e.node.compress()}
}

func (e entry) count() int {
	if e.leaf != nil {
		return e.leaf.count()
	}
	return e.node.count()
}

// children returns the node's children, or nil for a leaf.
func (e entry) children() []entry {
	if e.leaf != nil {
		return nil
	}
	return e.node.children
}
