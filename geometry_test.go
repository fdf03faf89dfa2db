// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package rtree

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_Arithmetic(t *testing.T) {
	p, q := Point{1, 2}, Point{-3, 0.5}

	assert.Equal(t, Point{-2, 2.5}, p.Add(q))
	assert.Equal(t, Point{4, 1.5}, p.Sub(q))
	assert.Equal(t, Point{2, 4}, p.Scale(2))
	assert.Equal(t, Point{}, p.Scale(0))
}

func TestPoint_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Point
		expected string
	}{
		{"Zero", Point{}, "(0,0)"},
		{"Integers", Point{-1, 2}, "(-1,2)"},
		{"Exact", Point{-100.5, 1234.125}, "(-100.5,1234.125)"},
		{"Rounded", Point{-100000.0625, 123.015625}, "(-100000.06,123.01562)"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestNewRectangle(t *testing.T) {
	testCases := []struct {
		name           string
		a, b           Point
		expectedOrigin Point
		expectedSize   Size
	}{
		{"Zero", Point{}, Point{}, Point{}, Size{}},
		{"Ordered", Point{1, 2}, Point{4, 6}, Point{1, 2}, Size{3, 4}},
		{"Reversed", Point{4, 6}, Point{1, 2}, Point{1, 2}, Size{3, 4}},
		{"Crossed", Point{4, 2}, Point{1, 6}, Point{1, 2}, Size{3, 4}},
		{"Degenerate", Point{-1, 5}, Point{-1, -5}, Point{-1, -5}, Size{0, 10}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			r := NewRectangle(testCase.a, testCase.b)

			assert.Equal(t, testCase.expectedOrigin, r.Origin())
			assert.Equal(t, testCase.expectedSize, r.Size())
		})
	}
}

func TestRectangleAt(t *testing.T) {
	testCases := []struct {
		name     string
		origin   Point
		size     Size
		expected Rectangle
	}{
		{"Zero", Point{}, Size{}, Rectangle{}},
		{"Positive", Point{1, 1}, Size{2, 3}, Rectangle{Point{1, 1}, Point{3, 4}}},
		{"NegativeWidth", Point{1, 1}, Size{-2, 3}, Rectangle{Point{-1, 1}, Point{1, 4}}},
		{"NegativeHeight", Point{1, 1}, Size{2, -3}, Rectangle{Point{1, -2}, Point{3, 1}}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := RectangleAt(testCase.origin, testCase.size)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestBounding(t *testing.T) {
	testCases := []struct {
		name     string
		input    []Point
		expected Rectangle
	}{
		{"Nil", nil, Rectangle{}},
		{"Empty", []Point{}, Rectangle{}},
		{"One", []Point{{3, 4}}, Rectangle{Point{3, 4}, Point{3, 4}}},
		{"Two", []Point{{3, 4}, {1, 6}}, Rectangle{Point{1, 4}, Point{3, 6}}},
		{"Many", []Point{{0, 3}, {1, 2}, {2, 1}, {3, 0}}, Rectangle{Point{}, Point{3, 3}}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := Bounding(testCase.input...)

			assert.Equal(t, testCase.expected, actual)
			for _, p := range testCase.input {
				assert.True(t, actual.Contains(p), "must contain %s", p)
			}
		})
	}
}

func TestBounding_ExactCorners(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		a, b := mixedPoint(rng), mixedPoint(rng)

		r := Bounding(a, b)

		require.Equal(t, Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)}, r.Origin())
		require.Equal(t, Point{math.Max(a.X, b.X), math.Max(a.Y, b.Y)}, r.Max())
		for _, p := range []Point{a, b} {
			require.True(t, r.Contains(p), "%s must contain %s", r, p)
			require.True(t, r.Intersects(NewRectangle(p, p)), "%s must intersect %s", r, p)
			require.True(t, r.Union(Bounding(p)) == r, "%s must absorb %s", r, p)
		}
	}
}

func TestRectangle_Max(t *testing.T) {
	r := RectangleAt(Point{1, 2}, Size{3, 4})

	assert.Equal(t, Point{4, 6}, r.Max())
	assert.Equal(t, 12.0, r.Area())
	assert.Equal(t, [4]Point{{1, 2}, {4, 2}, {1, 6}, {4, 6}}, r.Corners())
}

func TestRectangle_Contains(t *testing.T) {
	unit := RectangleAt(Point{}, Size{1, 1})

	testCases := []struct {
		name     string
		r        Rectangle
		p        Point
		expected bool
	}{
		{"Inside", unit, Point{0.5, 0.5}, true},
		{"Origin", unit, Point{}, true},
		{"TopLeftCorner", unit, Point{0, 1}, true},
		{"FarCorner", unit, Point{1, 1}, true},
		{"Edge", unit, Point{1, 0.5}, true},
		{"Below", unit, Point{-1, -1}, false},
		{"Right", unit, Point{1.0000001, 0.5}, false},
		{"Above", unit, Point{0.5, 2}, false},
		{"ZeroContainsOrigin", Rectangle{}, Point{}, true},
		{"ZeroMissesOther", Rectangle{}, Point{0, 1e-300}, false},
		{"NaN", unit, Point{math.NaN(), 0.5}, false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.r.Contains(testCase.p)

			assert.Equal(t, testCase.expected, actual)
		})
	}
}

func TestRectangle_Intersects(t *testing.T) {
	unit := RectangleAt(Point{}, Size{1, 1})

	testCases := []struct {
		name     string
		r, o     Rectangle
		expected bool
	}{
		{"Zero", Rectangle{}, Rectangle{}, true},
		{"Same", unit, unit, true},
		{"FullyContained", RectangleAt(Point{-2, -2}, Size{4, 4}), unit, true},
		{"Overlap", unit, RectangleAt(Point{0.5, 0.5}, Size{1, 1}), true},
		{"Cross", RectangleAt(Point{-1, 0.25}, Size{3, 0.5}), RectangleAt(Point{0.25, -1}, Size{0.5, 3}), true},
		{"TouchEdge", unit, RectangleAt(Point{1, 0}, Size{1, 1}), true},
		{"TouchCorner", unit, RectangleAt(Point{1, 1}, Size{1, 1}), true},
		{"DisjointX", unit, RectangleAt(Point{2, 0}, Size{1, 1}), false},
		{"DisjointY", unit, RectangleAt(Point{0, -3}, Size{1, 1}), false},
		{"DisjointDiagonal", unit, RectangleAt(Point{-2, -2}, Size{1, 1}), false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.r.Intersects(testCase.o))
			assert.Equal(t, testCase.expected, testCase.o.Intersects(testCase.r), "must be symmetric")
		})
	}
}

func TestRectangle_ExpandedToBound(t *testing.T) {
	unit := RectangleAt(Point{}, Size{1, 1})

	testCases := []struct {
		name     string
		r        Rectangle
		p        Point
		expected Rectangle
	}{
		{"Inside", unit, Point{0.5, 0.5}, unit},
		{"Left", unit, Point{-1, 0.5}, RectangleAt(Point{-1, 0}, Size{2, 1})},
		{"Down", unit, Point{0.5, -1}, RectangleAt(Point{0, -1}, Size{1, 2})},
		{"Right", unit, Point{2, 0.5}, RectangleAt(Point{}, Size{2, 1})},
		{"Up", unit, Point{0.5, 2}, RectangleAt(Point{}, Size{1, 2})},
		{"ZeroFromOrigin", Rectangle{}, Point{3, 4}, RectangleAt(Point{}, Size{3, 4})},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.r.ExpandedToBound(testCase.p)

			assert.Equal(t, testCase.expected, actual)
			assert.True(t, actual.Contains(testCase.p))
		})
	}
}

func TestRectangle_Union(t *testing.T) {
	a := RectangleAt(Point{}, Size{1, 1})
	b := RectangleAt(Point{2, -1}, Size{1, 1})

	assert.Equal(t, RectangleAt(Point{0, -1}, Size{3, 2}), a.Union(b))
	assert.Equal(t, a.Union(b), b.Union(a))
	assert.Equal(t, a, a.Union(a))
	assert.Equal(t, Rectangle{}, union())
	assert.Equal(t, a.Union(b), union(a, b))
}

func TestRectangle_String(t *testing.T) {
	testCases := []struct {
		name     string
		input    Rectangle
		expected string
	}{
		{"Zero", Rectangle{}, "[(0,0) {0,0}]"},
		{"Integers", RectangleAt(Point{-1, 2}, Size{3, 4}), "[(-1,2) {3,4}]"},
		{"Rounded", RectangleAt(Point{-100000.0625, 0}, Size{0.5, 2.001953125}), "[(-100000.06,0) {0.5,2.0019531}]"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			actual := testCase.input.String()

			assert.Equal(t, testCase.expected, actual)
		})
	}
}
