// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

// A ticket is a pending work item to be executed during a traversal.
type ticket struct {
	// e is the entry to visit.
	e entry
	// depth is the distance from the root to e. The root has depth 0.
	depth int
}

// A ticketStack holds the pending work items of a pre-order traversal.
type ticketStack []ticket

func (ts *ticketStack) push(t ticket) {
	*ts = append(*ts, t)
}

func (ts *ticketStack) pop() ticket {
	old := *ts
	n := len(old)
	x := old[n-1]
	*ts = old[0 : n-1]
	return x
}

// A step tells walk how to continue after visiting an entry.
type step int

const (
	// descend into the children of the visited entry.
	descend step = iota
	// skip the children of the visited entry.
	skip
	// stop the traversal.
	stop
)

// walk visits every entry of the subtree rooted at root in pre-order:
// each entry before its children, and the children in order.
func walk(root entry, visit func(t ticket) step) {
	q := make(ticketStack, 1, 16)
	q[0] = ticket{e: root}
	for len(q) > 0 {
		t := q.pop()
		switch visit(t) {
		case stop:
			return
		case skip:
			continue
		}
		// Push in reverse so the first child is popped first.
		children := t.e.children()
		for i := len(children) - 1; i >= 0; i-- {
			q.push(ticket{e: children[i], depth: t.depth + 1})
		}
	}
}

// query appends to dst every point stored in the subtree rooted at root
// which r contains. Subtrees whose bounding rectangles do not intersect
// r are not searched. A point reachable through more than one leaf is
// appended once per leaf.
func query(root entry, r Rectangle, dst []Point) []Point {
	walk(root, func(t ticket) step {
		if !t.e.bounds().Intersects(r) {
			return skip
		}
		if t.e.isLeaf() {
			dst = t.e.leaf.query(r, dst)
		}
		return descend
	})
	return dst
}

// A Visit describes one entry of a Tree during a call to Tree.Walk.
type Visit struct {
	// Bounds is the bounding rectangle of the entry.
	Bounds Rectangle
	// Depth is the distance from the root. The root has depth 0.
	Depth int
	// Leaf is true if the entry is a leaf and false if it is an
	// internal node.
	Leaf bool
	// Count is the number of points stored in the entry's subtree.
	Count int
}
