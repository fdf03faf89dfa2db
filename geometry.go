// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import "math"

// Point is a two-dimensional point.
//
// Two points are equal, in the sense of the == operator, only if their
// coordinates are exactly equal. No tolerance is applied anywhere in
// this package, so a point which is the result of arithmetic may not
// equal the point it was "meant" to be.
type Point struct {
	X float64
	Y float64
}

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns the vector difference p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p with both coordinates multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{k * p.X, k * p.Y}
}

// Size is the extent of a Rectangle.
type Size struct {
	W float64
	H float64
}

// Area returns W*H.
func (s Size) Area() float64 {
	return s.W * s.H
}

// Rectangle is an axis-aligned rectangle described by its minimum and
// maximum corners.
//
// The fields of a Rectangle are not exported so that the minimum corner
// can never exceed the maximum corner. Use NewRectangle, RectangleAt or
// Bounding to create one. The zero value is the zero rectangle: a
// single point at the origin.
//
// Both corners are stored exactly, so every predicate compares stored
// coordinates directly and no rounding can separate a rectangle from
// the points it was built from.
type Rectangle struct {
	min Point
	max Point
}

// NewRectangle returns the smallest rectangle having a and b as
// opposite corners. The order of a and b does not matter.
func NewRectangle(a, b Point) Rectangle {
	return Rectangle{
		min: Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		max: Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

// RectangleAt returns the rectangle with one corner at origin and the
// opposite corner at origin+size. A negative width or height extends
// the rectangle in the negative direction from origin.
func RectangleAt(origin Point, size Size) Rectangle {
	return NewRectangle(origin, Point{origin.X + size.W, origin.Y + size.H})
}

// Bounding returns the minimal rectangle containing every point in
// points. If points is empty, the zero rectangle is returned.
func Bounding(points ...Point) Rectangle {
	if len(points) == 0 {
		return Rectangle{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return Rectangle{min: lo, max: hi}
}

// Origin returns the minimum corner of r.
func (r Rectangle) Origin() Point {
	return r.min
}

// Max returns the maximum corner of r.
func (r Rectangle) Max() Point {
	return r.max
}

// Size returns the width and height of r.
func (r Rectangle) Size() Size {
	return Size{r.max.X - r.min.X, r.max.Y - r.min.Y}
}

// Area returns the area of r.
func (r Rectangle) Area() float64 {
	return r.Size().Area()
}

// Corners returns the four corners of r, starting at the origin and
// moving first along the X-axis.
func (r Rectangle) Corners() [4]Point {
	return [4]Point{
		r.min,
		{r.max.X, r.min.Y},
		{r.min.X, r.max.Y},
		r.max,
	}
}

// Contains reports whether p lies inside r. Points on the edges and
// corners of r are inside.
func (r Rectangle) Contains(p Point) bool {
	return r.min.X <= p.X && p.X <= r.max.X &&
		r.min.Y <= p.Y && p.Y <= r.max.Y
}

// Intersects reports whether r and o have at least one point in
// common. Rectangles which only touch along an edge or at a corner
// intersect.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.min.X <= o.max.X && o.min.X <= r.max.X &&
		r.min.Y <= o.max.Y && o.min.Y <= r.max.Y
}

// ExpandedToBound returns the smallest rectangle containing both r and
// p.
func (r Rectangle) ExpandedToBound(p Point) Rectangle {
	return Rectangle{
		min: Point{math.Min(r.min.X, p.X), math.Min(r.min.Y, p.Y)},
		max: Point{math.Max(r.max.X, p.X), math.Max(r.max.Y, p.Y)},
	}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rectangle) Union(o Rectangle) Rectangle {
	return r.ExpandedToBound(o.min).ExpandedToBound(o.max)
}

// union returns the smallest rectangle containing every rectangle in
// rs, or the zero rectangle if rs is empty.
func union(rs ...Rectangle) Rectangle {
	if len(rs) == 0 {
		return Rectangle{}
	}
	u := rs[0]
	for _, r := range rs[1:] {
		u = u.Union(r)
	}
	return u
}
