// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert.NoError(t, Default.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		c, err := Load(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, Default, c)
	})

	t.Run("Partial", func(t *testing.T) {
		c, err := Load(strings.NewReader(`
log-level = "debug"

[tree]
capacity = 4
seed = 5489

[demo]
points = 250
`))

		require.NoError(t, err)
		assert.Equal(t, "debug", c.LogLevel)
		assert.Equal(t, Tree{Capacity: 4, Seed: 5489}, c.Tree)
		assert.Equal(t, 250, c.Demo.Points)
		assert.Equal(t, Default.Demo.Width, c.Demo.Width)
		assert.Equal(t, Default.Server, c.Server)
	})

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"Syntax", "log-level = ", "config: "},
		{"UnknownKeys", "colour = \"red\"\n[tree]\nfanout = 3\n", "config: unknown keys: colour, tree.fanout"},
		{"Capacity", "[tree]\ncapacity = 1\n", "config: tree.capacity must be at least 2, got 1"},
		{"LogLevel", "log-level = \"loud\"\n", `config: log-level must be one of error, warn, info, debug, got "loud"`},
		{"Margins", "[demo]\nwidth = 20\n", "config: demo canvas has no room inside its margins"},
		{"NegativePoints", "[demo]\npoints = -1\n", "config: demo.points must not be negative, got -1"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(testCase.input))

			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), testCase.expected), err.Error())
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "rtree.toml")
		require.NoError(t, os.WriteFile(path, []byte("[server]\nbind = \":9000\"\n"), 0o600))

		c, err := LoadFile(path)

		require.NoError(t, err)
		assert.Equal(t, ":9000", c.Server.Bind)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))

		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
