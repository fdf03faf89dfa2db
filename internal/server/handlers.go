// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package server

import (
	"bytes"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/gogama/rtree"
	"github.com/gogama/rtree/render"
	"github.com/labstack/echo/v4"
)

const daemon = "rtree"

type GenericError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type rectJSON struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
	Depth int     `json:"depth"`
	Leaf  bool    `json:"leaf"`
	Count int     `json:"count"`
}

type queryResult struct {
	Points []pointJSON `json:"points"`
}

type treeStats struct {
	Count     int      `json:"count"`
	LeafCount int      `json:"leafCount"`
	Height    int      `json:"height"`
	Capacity  int      `json:"capacity"`
	Bounds    rectJSON `json:"bounds"`
}

func statsOf(t rtree.Tree) treeStats {
	b := t.Bounds()
	o, s := b.Origin(), b.Size()
	return treeStats{
		Count:     t.Count(),
		LeafCount: t.LeafCount(),
		Height:    t.Height(),
		Capacity:  t.Capacity(),
		Bounds:    rectJSON{X: o.X, Y: o.Y, W: s.W, H: s.H, Leaf: t.Height() == 1, Count: t.Count()},
	}
}

func pointsJSON(points []rtree.Point) []pointJSON {
	out := make([]pointJSON, len(points))
	for i, p := range points {
		out[i] = pointJSON{X: p.X, Y: p.Y}
	}
	return out
}

func badRequest(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, GenericError{
		Error:   "InvalidRequest",
		Message: err.Error(),
	})
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// queryFloats parses the named query parameters as finite floats.
func queryFloats(c echo.Context, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		s := c.QueryParam(name)
		if s == "" {
			return nil, fmt.Errorf("missing query parameter %q", name)
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || !finite(f) {
			return nil, fmt.Errorf("query parameter %q must be a finite number, got %q", name, s)
		}
		out[i] = f
	}
	return out, nil
}

func (srv *Server) HandleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, statsOf(srv.store.Snapshot()))
}

// HandleInsert inserts a JSON array of points, all into one new
// snapshot.
func (srv *Server) HandleInsert(c echo.Context) error {
	var in []pointJSON
	if err := c.Bind(&in); err != nil {
		return badRequest(c, fmt.Errorf("body must be a JSON array of points"))
	}
	for i, p := range in {
		if !finite(p.X) || !finite(p.Y) {
			return badRequest(c, fmt.Errorf("point %d is not finite", i))
		}
	}

	_, t := srv.store.Update(func(t rtree.Tree) rtree.Tree {
		for _, p := range in {
			t = t.Insert(rtree.Point{X: p.X, Y: p.Y})
		}
		return t
	})
	pointsInserted.Add(float64(len(in)))
	stats := statsOf(t)
	observe(stats)
	srv.logger.Debug("points inserted", "n", len(in), "count", stats.Count, "leaves", stats.LeafCount)
	return c.JSON(http.StatusOK, stats)
}

func (srv *Server) HandleRemove(c echo.Context) error {
	xy, err := queryFloats(c, "x", "y")
	if err != nil {
		return badRequest(c, err)
	}
	p := rtree.Point{X: xy[0], Y: xy[1]}

	old, t := srv.store.Update(func(t rtree.Tree) rtree.Tree {
		return t.Remove(p)
	})
	pointsRemoved.Add(float64(old.Count() - t.Count()))
	stats := statsOf(t)
	observe(stats)
	srv.logger.Debug("point removed", "point", p, "removed", old.Count()-t.Count())
	return c.JSON(http.StatusOK, stats)
}

func (srv *Server) HandleQuery(c echo.Context) error {
	xywh, err := queryFloats(c, "x", "y", "w", "h")
	if err != nil {
		return badRequest(c, err)
	}
	r := rtree.RectangleAt(rtree.Point{X: xywh[0], Y: xywh[1]}, rtree.Size{W: xywh[2], H: xywh[3]})

	found := srv.store.Snapshot().Query(r)
	queries.Inc()
	queryResults.Observe(float64(len(found)))
	return c.JSON(http.StatusOK, queryResult{Points: pointsJSON(found)})
}

func (srv *Server) HandleRects(c echo.Context) error {
	var out []rectJSON
	srv.store.Snapshot().Walk(func(v rtree.Visit) bool {
		o, s := v.Bounds.Origin(), v.Bounds.Size()
		out = append(out, rectJSON{
			X: o.X, Y: o.Y, W: s.W, H: s.H,
			Depth: v.Depth,
			Leaf:  v.Leaf,
			Count: v.Count,
		})
		return true
	})
	return c.JSON(http.StatusOK, out)
}

func (srv *Server) HandleCompress(c echo.Context) error {
	_, t := srv.store.Update(func(t rtree.Tree) rtree.Tree {
		return t.Compress()
	})
	return c.JSON(http.StatusOK, statsOf(t))
}

func (srv *Server) HandleRenderGeoJSON(c echo.Context) error {
	b, err := render.MarshalGeoJSON(render.NewScene(srv.store.Snapshot()))
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/geo+json", b)
}

func (srv *Server) HandleRenderFrame(c echo.Context) error {
	var buf bytes.Buffer
	w := render.NewFrameWriter(&buf)
	if _, err := w.Write(render.NewScene(srv.store.Snapshot())); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, buf.Bytes())
}

func (srv *Server) HandleRenderText(c echo.Context) error {
	points := c.QueryParam("points") == "true"
	return c.String(http.StatusOK, render.Text(render.NewScene(srv.store.Snapshot()), points))
}

func (srv *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var errorMessage string
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		errorMessage = fmt.Sprintf("%s", he.Message)
	}
	if code >= 500 {
		slog.Warn("rtree-http-internal-error", "err", err)
	}
	c.JSON(code, GenericStatus{Status: "error", Daemon: daemon, Message: errorMessage})
}

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, GenericStatus{Status: "ok", Daemon: daemon})
}
