// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"strconv"
	"strings"
)

// String returns p formatted as "(x,y)".
func (p Point) String() string {
	var b strings.Builder
	stringPoint(&b, p)
	return b.String()
}

// String returns s formatted as "{w,h}".
func (s Size) String() string {
	var b strings.Builder
	stringSize(&b, s)
	return b.String()
}

// String returns r formatted as "[(x,y) {w,h}]", where (x,y) is the
// origin and {w,h} the size.
func (r Rectangle) String() string {
	var b strings.Builder
	b.WriteByte('[')
	stringPoint(&b, r.min)
	b.WriteByte(' ')
	stringSize(&b, r.Size())
	b.WriteByte(']')
	return b.String()
}

func stringFloat(b *strings.Builder, f float64) {
	b.WriteString(strconv.FormatFloat(f, 'g', 8, 64))
}

func stringPoint(b *strings.Builder, p Point) {
	b.WriteByte('(')
	stringFloat(b, p.X)
	b.WriteByte(',')
	stringFloat(b, p.Y)
	b.WriteByte(')')
}

func stringSize(b *strings.Builder, s Size) {
	b.WriteByte('{')
	stringFloat(b, s.W)
	b.WriteByte(',')
	stringFloat(b, s.H)
	b.WriteByte('}')
}
