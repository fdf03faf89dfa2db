// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// The accessors in this file follow the layout declared in frame.fbs
// and the conventions of flatc's Go output.

const (
	rectSize = 48
	vec2Size = 16
)

// Rect is one bounding rectangle in a Frame.
type Rect struct {
	_tab flatbuffers.Struct
}

func (rcv *Rect) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Rect) Table() flatbuffers.Table {
	return rcv._tab.Table
}

func (rcv *Rect) MinX() float64 {
	return rcv._tab.GetFloat64(rcv._tab.Pos + flatbuffers.UOffsetT(0))
}

func (rcv *Rect) MinY() float64 {
	return rcv._tab.GetFloat64(rcv._tab.Pos + flatbuffers.UOffsetT(8))
}

func (rcv *Rect) MaxX() float64 {
	return rcv._tab.GetFloat64(rcv._tab.Pos + flatbuffers.UOffsetT(16))
}

func (rcv *Rect) MaxY() float64 {
	return rcv._tab.GetFloat64(rcv._tab.Pos + flatbuffers.UOffsetT(24))
}

func (rcv *Rect) Depth() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + flatbuffers.UOffsetT(32))
}

func (rcv *Rect) Count() uint32 {
	return rcv._tab.GetUint32(rcv._tab.Pos + flatbuffers.UOffsetT(36))
}

func (rcv *Rect) Leaf() bool {
	return rcv._tab.GetBool(rcv._tab.Pos + flatbuffers.UOffsetT(40))
}

func CreateRect(builder *flatbuffers.Builder, minX float64, minY float64, maxX float64, maxY float64, depth uint32, count uint32, leaf bool) flatbuffers.UOffsetT {
	builder.Prep(8, rectSize)
	builder.Pad(7)
	builder.PrependBool(leaf)
	builder.PrependUint32(count)
	builder.PrependUint32(depth)
	builder.PrependFloat64(maxY)
	builder.PrependFloat64(maxX)
	builder.PrependFloat64(minY)
	builder.PrependFloat64(minX)
	return builder.Offset()
}

// Vec2 is one stored point in a Frame.
type Vec2 struct {
	_tab flatbuffers.Struct
}

func (rcv *Vec2) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Vec2) Table() flatbuffers.Table {
	return rcv._tab.Table
}

func (rcv *Vec2) X() float64 {
	return rcv._tab.GetFloat64(rcv._tab.Pos + flatbuffers.UOffsetT(0))
}

func (rcv *Vec2) Y() float64 {
	return rcv._tab.GetFloat64(rcv._tab.Pos + flatbuffers.UOffsetT(8))
}

func CreateVec2(builder *flatbuffers.Builder, x float64, y float64) flatbuffers.UOffsetT {
	builder.Prep(8, vec2Size)
	builder.PrependFloat64(y)
	builder.PrependFloat64(x)
	return builder.Offset()
}

// Frame is one drawable snapshot of a tree.
type Frame struct {
	_tab flatbuffers.Table
}

func GetRootAsFrame(buf []byte, offset flatbuffers.UOffsetT) *Frame {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Frame{}
	x.Init(buf, n+offset)
	return x
}

func GetSizePrefixedRootAsFrame(buf []byte, offset flatbuffers.UOffsetT) *Frame {
	n := flatbuffers.GetUOffsetT(buf[offset+flatbuffers.SizeUint32:])
	x := &Frame{}
	x.Init(buf, n+offset+flatbuffers.SizeUint32)
	return x
}

func (rcv *Frame) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Frame) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *Frame) Rects(obj *Rect, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * rectSize
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *Frame) RectsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Frame) Points(obj *Vec2, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		x := rcv._tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * vec2Size
		obj.Init(rcv._tab.Bytes, x)
		return true
	}
	return false
}

func (rcv *Frame) PointsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *Frame) Count() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Frame) LeafCount() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Frame) Capacity() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func FrameStart(builder *flatbuffers.Builder) {
	builder.StartObject(5)
}

func FrameAddRects(builder *flatbuffers.Builder, rects flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, flatbuffers.UOffsetT(rects), 0)
}

func FrameStartRectsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(rectSize, numElems, 8)
}

func FrameAddPoints(builder *flatbuffers.Builder, points flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, flatbuffers.UOffsetT(points), 0)
}

func FrameStartPointsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(vec2Size, numElems, 8)
}

func FrameAddCount(builder *flatbuffers.Builder, count uint64) {
	builder.PrependUint64Slot(2, count, 0)
}

func FrameAddLeafCount(builder *flatbuffers.Builder, leafCount uint32) {
	builder.PrependUint32Slot(3, leafCount, 0)
}

func FrameAddCapacity(builder *flatbuffers.Builder, capacity uint32) {
	builder.PrependUint32Slot(4, capacity, 0)
}

func FrameEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
