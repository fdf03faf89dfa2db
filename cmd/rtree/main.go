// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/carlmjohnson/versioninfo"
	"github.com/gogama/rtree/internal/config"
	_ "github.com/joho/godotenv/autoload"
	cli "github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		slog.Error("exiting", "err", err)
		os.Exit(-1)
	}
}

func run(args []string, stdout io.Writer) error {

	app := cli.App{
		Name:    "rtree",
		Usage:   "persistent point R-tree playground",
		Version: versioninfo.Short(),
		Writer:  stdout,
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "path to a TOML configuration file",
			EnvVars: []string{"RTREE_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log verbosity level (eg: warn, info, debug)",
			EnvVars: []string{"RTREE_LOG_LEVEL", "GO_LOG_LEVEL", "LOG_LEVEL"},
		},
	}

	app.Commands = []*cli.Command{
		demoCmd,
		serveCmd,
	}

	return app.Run(args)
}

// loadConfig reads the --config file, if any, and applies the global
// flags on top of it.
func loadConfig(cctx *cli.Context) (config.Config, error) {
	c := config.Default
	if path := cctx.String("config"); path != "" {
		var err error
		if c, err = config.LoadFile(path); err != nil {
			return config.Config{}, err
		}
	}
	if cctx.IsSet("log-level") {
		c.LogLevel = cctx.String("log-level")
		if err := c.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return c, nil
}

func configLogger(level string, writer io.Writer) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "error":
		l = slog.LevelError
	case "warn":
		l = slog.LevelWarn
	case "info":
		l = slog.LevelInfo
	case "debug":
		l = slog.LevelDebug
	default:
		l = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: l,
	}))
	slog.SetDefault(logger)
	return logger
}

// seedOrClock returns seed, or a clock-derived seed if seed is zero.
func seedOrClock(seed uint32) uint32 {
	if seed != 0 {
		return seed
	}
	return uint32(time.Now().UnixNano())
}

func createFile(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}
