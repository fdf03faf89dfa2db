// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gogama/rtree"
	"github.com/gogama/rtree/internal/config"
	"github.com/gogama/rtree/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScatter(t *testing.T) {
	d := config.Default.Demo
	d.Points = 500

	points := scatter(d, gofakeit.New(42))

	require.Len(t, points, 500)
	inside := rtree.NewRectangle(
		rtree.Point{X: d.Margin, Y: d.TopMargin},
		rtree.Point{X: d.Width - d.Margin, Y: d.Height - d.Margin},
	)
	for _, p := range points {
		assert.True(t, inside.Contains(p), "%s outside %s", p, inside)
	}
	assert.Equal(t, points, scatter(d, gofakeit.New(42)), "same seed must scatter the same points")
}

func TestRunDemo(t *testing.T) {
	c := config.Default
	c.Demo.Points = 100
	c.Tree.Capacity = 4

	var buf bytes.Buffer
	w := render.NewFrameWriter(&buf)
	tr, err := runDemo(c, 7, w)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Equal(t, 100, w.NumFrames())
	assert.GreaterOrEqual(t, tr.Count(), 100)
	assert.Greater(t, tr.LeafCount(), 1)

	again, err := runDemo(c, 7, nil)
	require.NoError(t, err)
	assert.Equal(t, tr.Rectangles(), again.Rectangles(), "same seed must build the same tree")

	r := render.NewFrameReader(&buf)
	var n int
	for {
		s, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		n++
		assert.Equal(t, 4, s.Capacity)
	}
	assert.Equal(t, 100, n)
}

func TestRun(t *testing.T) {
	t.Run("Demo", func(t *testing.T) {
		dir := t.TempDir()
		frames := filepath.Join(dir, "demo.rtf")
		gj := filepath.Join(dir, "demo.geojson")
		var out bytes.Buffer

		err := run([]string{"rtree", "--log-level", "error", "demo",
			"--points", "20", "--capacity", "4", "--seed", "3",
			"--frames", frames, "--geojson", gj, "--print"}, &out)
		require.NoError(t, err)

		lines := strings.Split(out.String(), "\n")
		require.Greater(t, len(lines), 2)
		assert.Regexp(t, `^\d+ rectangles$`, lines[0])
		assert.Regexp(t, `^\d+ points in \[\(0,0\) \{100,100\}\]$`, lines[1])
		assert.Contains(t, out.String(), "leaf count=")

		f, err := os.Open(frames)
		require.NoError(t, err)
		defer f.Close()
		version, err := render.Magic(f)
		require.NoError(t, err)
		assert.Equal(t, uint8(render.Version), version)

		b, err := os.ReadFile(gj)
		require.NoError(t, err)
		var fc struct {
			Type string `json:"type"`
		}
		require.NoError(t, json.Unmarshal(b, &fc))
		assert.Equal(t, "FeatureCollection", fc.Type)
	})

	t.Run("Config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rtree.toml")
		require.NoError(t, os.WriteFile(path, []byte("[demo]\npoints = 0\nquery = 5\n"), 0o644))
		var out bytes.Buffer

		err := run([]string{"rtree", "--config", path, "--log-level", "error", "demo", "--seed", "1"}, &out)
		require.NoError(t, err)

		assert.Equal(t, "1 rectangles\n0 points in [(0,0) {5,5}]\n", out.String())
	})

	t.Run("Error", func(t *testing.T) {
		testCases := []struct {
			name     string
			args     []string
			expected string
		}{
			{"LogLevel", []string{"rtree", "--log-level", "loud", "demo"}, `config: log-level must be one of error, warn, info, debug, got "loud"`},
			{"Capacity", []string{"rtree", "demo", "--capacity", "1"}, "config: tree.capacity must be at least 2, got 1"},
			{"MissingConfig", []string{"rtree", "--config", filepath.Join(t.TempDir(), "nope.toml"), "demo"}, "config: open "},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				err := run(testCase.args, io.Discard)

				require.Error(t, err)
				assert.Contains(t, err.Error(), testCase.expected)
			})
		}
	})
}
