// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package config holds the settings of the rtree command, read from a
// TOML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogama/rtree"
)

// Config is the root of the configuration file.
type Config struct {
	// LogLevel is one of "error", "warn", "info" or "debug".
	LogLevel string `toml:"log-level"`

	Tree   Tree   `toml:"tree"`
	Server Server `toml:"server"`
	Demo   Demo   `toml:"demo"`
}

// Tree configures every tree the command builds.
type Tree struct {
	// Capacity is the number of points at which a leaf splits.
	Capacity int `toml:"capacity"`
	// Seed seeds the Mersenne Twister which picks split axes. Zero
	// means seed from the clock.
	Seed uint32 `toml:"seed"`
}

// Server configures the serve command.
type Server struct {
	Bind          string `toml:"bind"`
	MetricsListen string `toml:"metrics-listen"`
	// BodyLimit is an echo body size limit such as "4M".
	BodyLimit string `toml:"body-limit"`
}

// Demo configures the demo command, which scatters random points over
// a canvas the way a viewer would.
type Demo struct {
	Points int     `toml:"points"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	// Margin is kept clear along the left, right and bottom edges, and
	// TopMargin along the top edge.
	Margin    float64 `toml:"margin"`
	TopMargin float64 `toml:"top-margin"`
	// Query is the side length of the square, anchored at the origin,
	// queried once all points are inserted.
	Query float64 `toml:"query"`
}

// Default is the configuration used for anything a file leaves out.
var Default = Config{
	LogLevel: "info",
	Tree: Tree{
		Capacity: rtree.DefaultCapacity,
	},
	Server: Server{
		Bind:          ":6700",
		MetricsListen: ":3989",
		BodyLimit:     "4M",
	},
	Demo: Demo{
		Points:    10,
		Width:     320,
		Height:    480,
		Margin:    10,
		TopMargin: 30,
		Query:     100,
	},
}

// Load reads a TOML configuration on top of Default. Keys which do not
// belong to any setting are an error, as are invalid values.
func Load(r io.Reader) (Config, error) {
	c := Default
	md, err := toml.DecodeReader(r, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i := range undecoded {
			keys[i] = undecoded[i].String()
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config: unknown keys: %s", strings.Join(keys, ", "))
	}
	if err = c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile reads a TOML configuration file on top of Default.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.LogLevel) {
	case "error", "warn", "info", "debug":
	default:
		errs = append(errs, fmt.Errorf("log-level must be one of error, warn, info, debug, got %q", c.LogLevel))
	}
	if c.Tree.Capacity < rtree.MinCapacity {
		errs = append(errs, fmt.Errorf("tree.capacity must be at least %d, got %d", rtree.MinCapacity, c.Tree.Capacity))
	}
	if c.Demo.Points < 0 {
		errs = append(errs, fmt.Errorf("demo.points must not be negative, got %d", c.Demo.Points))
	}
	if c.Demo.Width-2*c.Demo.Margin <= 0 || c.Demo.Height-c.Demo.Margin-c.Demo.TopMargin <= 0 {
		errs = append(errs, errors.New("demo canvas has no room inside its margins"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
