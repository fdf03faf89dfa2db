// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"strings"
)

// SceneString returns a string summarizing a Scene. The returned value
// is a summary and not meant to be exhaustive.
func SceneString(s Scene) string {
	var b strings.Builder
	b.WriteString("Scene{")
	if len(s.Layers) > 0 {
		stringStr(&b, "Bounds", s.Layers[0].Bounds.String())
		b.WriteByte(',')
	}
	stringInt64(&b, "Layers", int64(len(s.Layers)))
	stringInt64(&b, ",Points", int64(len(s.Points)))
	stringInt64(&b, ",Count", int64(s.Count))
	stringInt64(&b, ",LeafCount", int64(s.LeafCount))
	stringInt64(&b, ",Capacity", int64(s.Capacity))
	b.WriteByte('}')
	return b.String()
}

// FrameString returns a string summarizing the Frame fields. The
// returned value is a summary and not meant to be exhaustive.
func FrameString(f *Frame) string {
	var b strings.Builder
	b.WriteString("Frame{")
	if err := safeFlatBuffersInteraction(func() error {
		stringInt64(&b, "Rects", int64(f.RectsLength()))
		stringInt64(&b, ",Points", int64(f.PointsLength()))
		stringUint64(&b, ",Count", f.Count())
		stringUint64(&b, ",LeafCount", uint64(f.LeafCount()))
		stringUint64(&b, ",Capacity", uint64(f.Capacity()))
		return nil
	}); err != nil {
		return "error: " + err.Error()
	}
	b.WriteByte('}')
	return b.String()
}

func stringKey(b *strings.Builder, key string) {
	b.WriteString(key)
	b.WriteByte(':')
}

func stringStr(b *strings.Builder, key string, value string) {
	stringKey(b, key)
	b.WriteString(value)
}

func stringInt64(b *strings.Builder, key string, value int64) {
	stringKey(b, key)
	fmt.Fprintf(b, "%d", value)
}

func stringUint64(b *strings.Builder, key string, value uint64) {
	stringKey(b, key)
	fmt.Fprintf(b, "%d", value)
}
