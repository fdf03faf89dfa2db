// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package server serves a single in-memory tree over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogama/rtree"
	"github.com/gogama/rtree/twister"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
)

type Server struct {
	store  *Store
	echo   *echo.Echo
	httpd  *http.Server
	logger *slog.Logger
}

type Config struct {
	Logger *slog.Logger
	Bind   string
	// BodyLimit is an echo body size limit such as "4M". Empty means
	// no limit.
	BodyLimit string
	// Capacity is the leaf capacity of the served tree.
	Capacity int
	// Seed seeds the Mersenne Twister which picks split axes. Zero
	// means seed from the clock.
	Seed uint32
}

func NewServer(config Config) (*Server, error) {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	if config.Capacity < rtree.MinCapacity {
		return nil, fmt.Errorf("leaf capacity must be at least %d, got %d", rtree.MinCapacity, config.Capacity)
	}
	seed := config.Seed
	if seed == 0 {
		seed = uint32(time.Now().UnixNano())
	}

	t := rtree.New(
		rtree.WithCapacity(config.Capacity),
		rtree.WithRandomSource(twister.New(seed)),
	)

	e := echo.New()

	var (
		httpTimeout        = 1 * time.Minute
		httpMaxHeaderBytes = 1 * (1024 * 1024)
	)

	srv := &Server{
		store:  NewStore(t),
		echo:   e,
		logger: logger,
	}
	srv.httpd = &http.Server{
		Handler:        srv,
		Addr:           config.Bind,
		WriteTimeout:   httpTimeout,
		ReadTimeout:    httpTimeout,
		MaxHeaderBytes: httpMaxHeaderBytes,
	}

	e.HideBanner = true
	e.Use(slogecho.New(logger))
	e.Use(middleware.Recover())
	if config.BodyLimit != "" {
		e.Use(middleware.BodyLimit(config.BodyLimit))
	}
	e.HTTPErrorHandler = srv.errorHandler

	e.GET("/_health", srv.HandleHealthCheck)
	e.GET("/stats", srv.HandleStats)
	e.POST("/points", srv.HandleInsert)
	e.DELETE("/points", srv.HandleRemove)
	e.GET("/query", srv.HandleQuery)
	e.GET("/rects", srv.HandleRects)
	e.POST("/compress", srv.HandleCompress)
	e.GET("/render.geojson", srv.HandleRenderGeoJSON)
	e.GET("/render.rtf", srv.HandleRenderFrame)
	e.GET("/render.txt", srv.HandleRenderText)

	logger.Info("tree configured", "capacity", config.Capacity, "seed", seed)
	observe(statsOf(t))
	return srv, nil
}

// Store returns the Store holding the served tree.
func (srv *Server) Store() *Store {
	return srv.store
}

func (srv *Server) ServeHTTP(rw http.ResponseWriter, req *http.Request) {
	srv.echo.ServeHTTP(rw, req)
}

func (srv *Server) RunAPI() error {
	srv.logger.Info("starting server", "bind", srv.httpd.Addr)
	go func() {
		if err := srv.httpd.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				srv.logger.Error("HTTP server shutting down unexpectedly", "err", err)
			}
		}
	}()

	// Wait for a signal to exit.
	srv.logger.Info("registering OS exit signal handler")
	quit := make(chan struct{})
	exitSignals := make(chan os.Signal, 1)
	signal.Notify(exitSignals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-exitSignals
		srv.logger.Info("received OS exit signal", "signal", sig)

		if err := srv.Shutdown(); err != nil {
			srv.logger.Error("HTTP server shutdown error", "err", err)
		}

		close(quit)
	}()
	<-quit
	srv.logger.Info("graceful shutdown complete")
	return nil
}

func (srv *Server) RunMetrics(listen string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(listen, mux)
}

func (srv *Server) Shutdown() error {
	srv.logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.httpd.Shutdown(ctx)
}
