// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

// A leaf is a bag of points plus a rectangle bounding them.
//
// The bounding rectangle always contains every stored point, but it may
// be larger than necessary: removing points never shrinks it, and a
// leaf created empty starts with the zero rectangle, so it also covers
// the origin until it is first split or compressed. Only compress
// tightens it.
//
// A leaf is never modified after it is created.
type leaf struct {
	points []Point
	bounds Rectangle
}

// emptyLeaf is the root of every empty Tree.
var emptyLeaf = &leaf{}

// newLeaf creates a leaf holding points with the tightest possible
// bounding rectangle. The leaf takes ownership of the slice.
func newLeaf(points []Point) *leaf {
	return &leaf{
		points: points,
		bounds: Bounding(points...),
	}
}

// insert adds p to the leaf.
//
// If the leaf remains under capacity, the updated leaf is returned as
// left and right is nil. Otherwise the leaf is split and the two halves
// are returned. A split which would leave one half empty, which happens
// when every point has the same coordinate on the chosen axis, is
// abandoned: the points all stay in one new leaf (returned as left),
// which remains at or above capacity, so the next insert tries again.
func (l *leaf) insert(p Point, o *options) (left, right *leaf) {
	n := len(l.points)
	points := append(l.points[:n:n], p)
	if len(points) >= o.capacity {
		lo, hi := partition(points, o.rand.Float64() < 0.5)
		if len(lo) == 0 || len(hi) == 0 {
			return newLeaf(points), nil
		}
		return newLeaf(lo), newLeaf(hi)
	}
	b := l.bounds
	if !b.Contains(p) {
		b = b.ExpandedToBound(p)
	}
	return &leaf{points: points, bounds: b}, nil
}

// partition splits points about the mean of their X-coordinates, if
// alongX is true, or of their Y-coordinates otherwise. Points on or
// below the mean go to lo and all others, including any point whose
// coordinate does not compare with the mean at all (NaN), go to hi.
func partition(points []Point, alongX bool) (lo, hi []Point) {
	coord := func(p Point) float64 { return p.Y }
	if alongX {
		coord = func(p Point) float64 { return p.X }
	}
	var sum float64
	for _, p := range points {
		sum += coord(p)
	}
	mean := sum / float64(len(points))
	for _, p := range points {
		if coord(p) <= mean {
			lo = append(lo, p)
		} else {
			hi = append(hi, p)
		}
	}
	return
}

// remove returns a leaf without any point equal to p. The bounding
// rectangle is kept as is. If p is not stored, the receiver is
// returned.
func (l *leaf) remove(p Point) *leaf {
	i := 0
	for i < len(l.points) && l.points[i] != p {
		i++
	}
	if i == len(l.points) {
		return l
	}
	points := make([]Point, i, len(l.points)-1)
	copy(points, l.points[:i])
	for _, q := range l.points[i+1:] {
		if q != p {
			points = append(points, q)
		}
	}
	return &leaf{points: points, bounds: l.bounds}
}

func (l *leaf) contains(p Point) bool {
	return l.bounds.Contains(p)
}

// query appends to dst every stored point which r contains.
func (l *leaf) query(r Rectangle, dst []Point) []Point {
	for _, p := range l.points {
		if r.Contains(p) {
			dst = append(dst, p)
		}
	}
	return dst
}

// compress returns a leaf with the same points and the tightest
// possible bounding rectangle.
func (l *leaf) compress() *leaf {
	return &leaf{points: l.points, bounds: Bounding(l.points...)}
}

func (l *leaf) count() int {
	return len(l.points)
}
