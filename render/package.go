// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package render turns snapshots of an rtree.Tree into forms a viewer
// can draw.
//
// A Scene captures everything needed to draw a tree: the bounding
// rectangle of every entry, in the order rtree.Tree.Walk visits them,
// plus the stored points. A Scene can be streamed as a sequence of
// FlatBuffers frames (see FrameWriter and FrameReader), converted to a
// GeoJSON feature collection, or printed as an indented text tree.
package render
