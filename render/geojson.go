// Copyright 2023 The rtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package render

import (
	"github.com/gogama/rtree"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// GeoJSON converts a Scene to a GeoJSON feature collection.
//
// Each Layer becomes a Polygon feature with the properties "depth",
// "leaf" and "count", in the order of s.Layers. They are followed by
// one Point feature per stored point.
func GeoJSON(s Scene) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := range s.Layers {
		l := &s.Layers[i]
		f := geojson.NewFeature(bound(l.Bounds).ToPolygon())
		f.Properties["depth"] = l.Depth
		f.Properties["leaf"] = l.Leaf
		f.Properties["count"] = l.Count
		fc.Append(f)
	}
	for _, p := range s.Points {
		fc.Append(geojson.NewFeature(orb.Point{p.X, p.Y}))
	}
	return fc
}

// MarshalGeoJSON returns the GeoJSON encoding of a Scene.
func MarshalGeoJSON(s Scene) ([]byte, error) {
	b, err := GeoJSON(s).MarshalJSON()
	if err != nil {
		return nil, wrapErr("failed to marshal GeoJSON", err)
	}
	return b, nil
}

func bound(r rtree.Rectangle) orb.Bound {
	o, m := r.Origin(), r.Max()
	return orb.Bound{
		Min: orb.Point{o.X, o.Y},
		Max: orb.Point{m.X, m.Y},
	}
}
