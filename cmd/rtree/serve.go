// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/gogama/rtree/internal/server"
	cli "github.com/urfave/cli/v2"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "serve one tree over HTTP",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "bind",
			Usage:   "Specify the local IP/port to bind to",
			EnvVars: []string{"RTREE_BIND"},
		},
		&cli.StringFlag{
			Name:    "metrics-listen",
			Usage:   "IP or address, and port, to listen on for metrics APIs",
			EnvVars: []string{"RTREE_METRICS_LISTEN"},
		},
		&cli.IntFlag{
			Name:    "capacity",
			Usage:   "leaf capacity of the served tree",
			EnvVars: []string{"RTREE_CAPACITY"},
		},
		&cli.UintFlag{
			Name:    "seed",
			Usage:   "split axis seed (0 seeds from the clock)",
			EnvVars: []string{"RTREE_SEED"},
		},
	},
	Action: func(cctx *cli.Context) error {
		c, err := loadConfig(cctx)
		if err != nil {
			return err
		}
		if cctx.IsSet("bind") {
			c.Server.Bind = cctx.String("bind")
		}
		if cctx.IsSet("metrics-listen") {
			c.Server.MetricsListen = cctx.String("metrics-listen")
		}
		if cctx.IsSet("capacity") {
			c.Tree.Capacity = cctx.Int("capacity")
		}
		if cctx.IsSet("seed") {
			c.Tree.Seed = uint32(cctx.Uint("seed"))
		}
		logger := configLogger(c.LogLevel, os.Stdout)

		srv, err := server.NewServer(
			server.Config{
				Logger:    logger,
				Bind:      c.Server.Bind,
				BodyLimit: c.Server.BodyLimit,
				Capacity:  c.Tree.Capacity,
				Seed:      c.Tree.Seed,
			},
		)
		if err != nil {
			return fmt.Errorf("failed to construct server: %v", err)
		}

		// prometheus HTTP endpoint: /metrics
		go func() {
			runtime.SetBlockProfileRate(10)
			runtime.SetMutexProfileFraction(10)
			if err := srv.RunMetrics(c.Server.MetricsListen); err != nil {
				slog.Error("failed to start metrics endpoint", "error", err)
				panic(fmt.Errorf("failed to start metrics endpoint: %w", err))
			}
		}()

		return srv.RunAPI()
	},
}
