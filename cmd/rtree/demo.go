// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gogama/rtree"
	"github.com/gogama/rtree/internal/config"
	"github.com/gogama/rtree/render"
	"github.com/gogama/rtree/twister"
	cli "github.com/urfave/cli/v2"
)

var demoCmd = &cli.Command{
	Name:  "demo",
	Usage: "insert random points into a tree and report on it",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "points",
			Usage: "number of random points to insert",
		},
		&cli.IntFlag{
			Name:  "capacity",
			Usage: "leaf capacity",
		},
		&cli.UintFlag{
			Name:  "seed",
			Usage: "seed for both the point scatter and split axes (0 seeds from the clock)",
		},
		&cli.BoolFlag{
			Name:  "print",
			Usage: "print the tree structure",
		},
		&cli.BoolFlag{
			Name:  "print-points",
			Usage: "include points when printing the tree structure",
		},
		&cli.StringFlag{
			Name:  "frames",
			Usage: "write one frame per insertion to this file",
		},
		&cli.StringFlag{
			Name:  "geojson",
			Usage: "write the final tree as GeoJSON to this file",
		},
	},
	Action: func(cctx *cli.Context) error {
		c, err := loadConfig(cctx)
		if err != nil {
			return err
		}
		if cctx.IsSet("points") {
			c.Demo.Points = cctx.Int("points")
		}
		if cctx.IsSet("capacity") {
			c.Tree.Capacity = cctx.Int("capacity")
		}
		if cctx.IsSet("seed") {
			c.Tree.Seed = uint32(cctx.Uint("seed"))
		}
		if err = c.Validate(); err != nil {
			return err
		}
		logger := configLogger(c.LogLevel, os.Stderr)
		seed := seedOrClock(c.Tree.Seed)

		var frames *render.FrameWriter
		if path := cctx.String("frames"); path != "" {
			f, err := createFile(path)
			if err != nil {
				return err
			}
			defer f.Close()
			frames = render.NewFrameWriter(f)
		}

		t, err := runDemo(c, seed, frames)
		if err != nil {
			return err
		}
		if frames != nil {
			if err = frames.Close(); err != nil {
				return err
			}
			logger.Info("frames written", "path", cctx.String("frames"), "frames", frames.NumFrames())
		}

		if path := cctx.String("geojson"); path != "" {
			b, err := render.MarshalGeoJSON(render.NewScene(t))
			if err != nil {
				return err
			}
			if err = os.WriteFile(path, b, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Info("geojson written", "path", path, "bytes", len(b))
		}

		report(cctx.App.Writer, t, c.Demo.Query)
		if cctx.Bool("print") || cctx.Bool("print-points") {
			fmt.Fprint(cctx.App.Writer, render.Text(render.NewScene(t), cctx.Bool("print-points")))
		}
		logger.Info("demo complete", "seed", seed, "tree", t.String())
		return nil
	},
}

// scatter returns n points drawn uniformly from the part of the canvas
// inside its margins.
func scatter(d config.Demo, faker *gofakeit.Faker) []rtree.Point {
	points := make([]rtree.Point, d.Points)
	for i := range points {
		points[i] = rtree.Point{
			X: faker.Float64Range(d.Margin, d.Width-d.Margin),
			Y: faker.Float64Range(d.TopMargin, d.Height-d.Margin),
		}
	}
	return points
}

// runDemo inserts scattered points one at a time, writing a frame after
// each insertion if frames is not nil.
func runDemo(c config.Config, seed uint32, frames *render.FrameWriter) (rtree.Tree, error) {
	points := scatter(c.Demo, gofakeit.New(int64(seed)))
	t := rtree.New(
		rtree.WithCapacity(c.Tree.Capacity),
		rtree.WithRandomSource(twister.New(seed)),
	)
	for _, p := range points {
		t = t.Insert(p)
		if frames != nil {
			if _, err := frames.Write(render.NewScene(t)); err != nil {
				return t, err
			}
		}
	}
	return t, nil
}

func report(w io.Writer, t rtree.Tree, side float64) {
	r := rtree.RectangleAt(rtree.Point{}, rtree.Size{W: side, H: side})
	fmt.Fprintf(w, "%d rectangles\n", len(t.Rectangles()))
	fmt.Fprintf(w, "%d points in %s\n", len(t.Query(r)), r)
}
