// Package mapping moves polygons and samples in and out of GeoJSON, so they
// can be shown on a map or read from a geocoder's answer. Coordinates are
// taken as longitude/latitude pairs in x/y order, and no projection is
// applied: sampling in raw degrees is only area-uniform for small regions.
package mapping

import (
	"bytes"
	"encoding/json"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/sample"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"
)

// Values of the "role" property on exported features.
const (
	RoleBoundary = "boundary"
	RoleTriangle = "triangle"
	RoleSample   = "sample"
)

// FeatureCollection exports the boundary, the triangles and the samples as
// one collection, in that order. Each feature's "role" property says which it
// is; triangles also carry their index and area, samples their index.
func FeatureCollection(poly geom.Polygon, tri geom.Triangulation, points []geom.Point) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	if len(poly.Points) > 0 {
		boundary := geojson.NewFeature(orb.Polygon{poly.Ring()})
		boundary.Properties["role"] = RoleBoundary
		fc.Append(boundary)
	}

	for i, t := range tri {
		f := geojson.NewFeature(orb.Polygon{t.Polygon().Ring()})
		f.Properties["role"] = RoleTriangle
		f.Properties["index"] = i
		f.Properties["area"] = sample.TriangleArea(t)
		fc.Append(f)
	}

	for i, p := range points {
		f := geojson.NewFeature(orb.Point{p.X, p.Y})
		f.Properties["role"] = RoleSample
		f.Properties["index"] = i
		fc.Append(f)
	}
	return fc
}

// PolygonFromGeoJSON reads a polygon boundary from a GeoJSON geometry,
// feature or feature collection. For a collection the first feature with a
// polygon is used; for a multipolygon, the part with the largest area. Holes
// are ignored. The ring's closing point is dropped.
//
// A bare JSON array of [x, y] pairs is accepted as well, which is how some
// geocoders return outlines.
func PolygonFromGeoJSON(data []byte) (geom.Polygon, error) {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return polygonFromPairs(data)
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return geom.Polygon{}, errors.Wrap(err, "reading geojson")
	}

	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return geom.Polygon{}, errors.Wrap(err, "reading feature collection")
		}
		for _, f := range fc.Features {
			if ring, ok := outerRing(f.Geometry); ok {
				return ringPolygon(ring)
			}
		}
		return geom.Polygon{}, errors.Wrapf(geom.ErrInvalidPolygon, "none of %d features is a polygon", len(fc.Features))
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return geom.Polygon{}, errors.Wrap(err, "reading feature")
		}
		return geometryPolygon(f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return geom.Polygon{}, errors.Wrap(err, "reading geometry")
		}
		return geometryPolygon(g.Geometry())
	}
}

func geometryPolygon(g orb.Geometry) (geom.Polygon, error) {
	ring, ok := outerRing(g)
	if !ok {
		kind := "nothing"
		if g != nil {
			kind = g.GeoJSONType()
		}
		return geom.Polygon{}, errors.Wrapf(geom.ErrInvalidPolygon, "expected a polygon, got %s", kind)
	}
	return ringPolygon(ring)
}

func outerRing(g orb.Geometry) (orb.Ring, bool) {
	switch g := g.(type) {
	case orb.Polygon:
		if len(g) > 0 {
			return g[0], true
		}
	case orb.MultiPolygon:
		var (
			best     orb.Ring
			bestArea = -1.0
		)
		for _, poly := range g {
			if len(poly) == 0 {
				continue
			}
			if area := planar.Area(poly[0]); area > bestArea {
				best, bestArea = poly[0], area
			}
		}
		return best, best != nil
	case orb.Ring:
		return g, true
	}
	return nil, false
}

func ringPolygon(ring orb.Ring) (geom.Polygon, error) {
	poly := geom.PolygonFromRing(ring)
	if len(poly.Points) < 3 {
		return geom.Polygon{}, errors.Wrapf(geom.ErrInvalidPolygon, "ring has %d distinct points", len(poly.Points))
	}
	return poly, nil
}

func polygonFromPairs(data []byte) (geom.Polygon, error) {
	var pairs [][2]float64
	if err := json.Unmarshal(data, &pairs); err != nil {
		return geom.Polygon{}, errors.Wrap(err, "reading point list")
	}
	ring := make(orb.Ring, len(pairs))
	for i, pair := range pairs {
		ring[i] = orb.Point(pair)
	}
	return ringPolygon(ring)
}
