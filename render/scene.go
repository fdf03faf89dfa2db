// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import (
	"math"

	"github.com/gogama/rtree"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Layer is the bounding rectangle of one tree entry.
type Layer struct {
	Bounds rtree.Rectangle
	// Depth is the entry's distance from the root.
	Depth int
	// Leaf is true for leaves and false for internal nodes.
	Leaf bool
	// Count is the number of points stored in the entry's subtree.
	Count int
}

// Scene is everything needed to draw a tree.
type Scene struct {
	// Layers holds one Layer per tree entry, in the order they are
	// visited by rtree.Tree.Walk: each entry before its children.
	Layers []Layer
	// Points holds every stored point, in leaf order.
	Points    []rtree.Point
	Count     int
	LeafCount int
	Capacity  int
}

// NewScene captures a tree.
func NewScene(t rtree.Tree) Scene {
	var s Scene
	t.Walk(func(v rtree.Visit) bool {
		s.Layers = append(s.Layers, Layer{
			Bounds: v.Bounds,
			Depth:  v.Depth,
			Leaf:   v.Leaf,
			Count:  v.Count,
		})
		if v.Leaf {
			s.LeafCount++
		}
		return true
	})
	s.Points = t.Points()
	s.Count = len(s.Points)
	s.Capacity = t.Capacity()
	return s
}

// build encodes s as a size-prefixed Frame and returns the finished
// bytes. Counts too large for the wire format are an error.
func (s *Scene) build(b *flatbuffers.Builder) ([]byte, error) {
	if s.Count < 0 || !fitsUint32(s.LeafCount) || !fitsUint32(s.Capacity) {
		return nil, fmtErr("scene counts out of range (Count=%d, LeafCount=%d, Capacity=%d)", s.Count, s.LeafCount, s.Capacity)
	}
	for i := range s.Layers {
		if !fitsUint32(s.Layers[i].Depth) || !fitsUint32(s.Layers[i].Count) {
			return nil, fmtErr("layer %d out of range (Depth=%d, Count=%d)", i, s.Layers[i].Depth, s.Layers[i].Count)
		}
	}

	b.Reset()

	FrameStartRectsVector(b, len(s.Layers))
	for i := len(s.Layers) - 1; i >= 0; i-- {
		l := &s.Layers[i]
		lo, hi := l.Bounds.Origin(), l.Bounds.Max()
		CreateRect(b, lo.X, lo.Y, hi.X, hi.Y, uint32(l.Depth), uint32(l.Count), l.Leaf)
	}
	rects := b.EndVector(len(s.Layers))

	FrameStartPointsVector(b, len(s.Points))
	for i := len(s.Points) - 1; i >= 0; i-- {
		CreateVec2(b, s.Points[i].X, s.Points[i].Y)
	}
	points := b.EndVector(len(s.Points))

	FrameStart(b)
	FrameAddRects(b, rects)
	FrameAddPoints(b, points)
	FrameAddCount(b, uint64(s.Count))
	FrameAddLeafCount(b, uint32(s.LeafCount))
	FrameAddCapacity(b, uint32(s.Capacity))
	b.FinishSizePrefixed(FrameEnd(b))

	return b.FinishedBytes(), nil
}

func fitsUint32(v int) bool {
	return v >= 0 && uint64(v) <= math.MaxUint32
}

// sceneFromFrame decodes a Frame. Any panic raised by FlatBuffers while
// reading a corrupt frame is returned as an error.
func sceneFromFrame(f *Frame) (s Scene, err error) {
	err = safeFlatBuffersInteraction(func() error {
		n := f.RectsLength()
		if n > len(f._tab.Bytes)/rectSize {
			return fmtErr("rects length %d exceeds frame size", n)
		} else if n > 0 {
			s.Layers = make([]Layer, n)
		}
		var r Rect
		for i := 0; i < n; i++ {
			f.Rects(&r, i)
			s.Layers[i] = Layer{
				Bounds: rtree.NewRectangle(rtree.Point{X: r.MinX(), Y: r.MinY()}, rtree.Point{X: r.MaxX(), Y: r.MaxY()}),
				Depth:  int(r.Depth()),
				Leaf:   r.Leaf(),
				Count:  int(r.Count()),
			}
		}
		n = f.PointsLength()
		if n > len(f._tab.Bytes)/vec2Size {
			return fmtErr("points length %d exceeds frame size", n)
		} else if n > 0 {
			s.Points = make([]rtree.Point, n)
		}
		var v Vec2
		for i := 0; i < n; i++ {
			f.Points(&v, i)
			s.Points[i] = rtree.Point{X: v.X(), Y: v.Y()}
		}
		count := f.Count()
		if count > math.MaxInt {
			return fmtErr("frame count overflows int: %d", count)
		}
		s.Count = int(count)
		s.LeafCount = int(f.LeafCount())
		s.Capacity = int(f.Capacity())
		return nil
	})
	return
}
