// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var pointsInserted = promauto.NewCounter(prometheus.CounterOpts{
	Name: "rtree_points_inserted_total",
	Help: "Number of points inserted",
})

var pointsRemoved = promauto.NewCounter(prometheus.CounterOpts{
	Name: "rtree_points_removed_total",
	Help: "Number of stored points removed, counting every copy",
})

var queries = promauto.NewCounter(prometheus.CounterOpts{
	Name: "rtree_queries_total",
	Help: "Number of range queries",
})

var queryResults = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "rtree_query_results",
	Help:    "Number of points returned per range query",
	Buckets: prometheus.ExponentialBuckets(1, 4, 8),
})

var storedPoints = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "rtree_stored_points",
	Help: "Number of points stored in the current snapshot, counting copies",
})

var leaves = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "rtree_leaves",
	Help: "Number of leaves in the current snapshot",
})

func observe(t treeStats) {
	storedPoints.Set(float64(t.Count))
	leaves.Set(float64(t.LeafCount))
}
