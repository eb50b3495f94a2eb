// Package polysample draws points uniformly at random from the inside of a
// simple polygon.
//
// The polygon is cut into triangles, each triangle is picked with probability
// proportional to its area, and a point is drawn uniformly inside it. Nothing
// is rejected and nothing loops, so every sample costs the same. All
// randomness comes from a caller-supplied source, which makes runs
// reproducible.
//
// The subpackages expose each stage on its own: generate builds random
// star-shaped polygons, triangulate splits polygons into triangles and sample
// does the drawing.
package polysample

import (
	"log/slog"

	"github.com/osuushi/polysample/generate"
	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/internal/logging"
	"github.com/osuushi/polysample/random"
	"github.com/osuushi/polysample/sample"
	"github.com/osuushi/polysample/triangulate"
	"github.com/pkg/errors"
)

type (
	Point         = geom.Point
	Vector        = geom.Vector
	Polygon       = geom.Polygon
	Triangle      = geom.Triangle
	Triangulation = geom.Triangulation
)

var (
	ErrInvalidPolygon     = geom.ErrInvalidPolygon
	ErrDegenerateGeometry = geom.ErrDegenerateGeometry
	ErrInvalidArgument    = geom.ErrInvalidArgument
)

// SetLogger routes the library's debug logging to l. The library is silent
// until this is called; nil silences it again.
func SetLogger(l *slog.Logger) {
	logging.SetLogger(l)
}

// RandomPolygon generates a star-shaped polygon with n vertices at distances
// in [rMin, rMax] from the origin, which lies inside it.
func RandomPolygon(src random.Source, n int, rMin, rMax float64) (Polygon, error) {
	return generate.Polygon(src, n, rMin, rMax)
}

// Triangulate splits the polygon with the default back-end.
func Triangulate(poly Polygon) (Triangulation, error) {
	return triangulate.Triangulate(poly)
}

type options struct {
	triangulator triangulate.Triangulator
}

type Option func(*options)

// WithTriangulator picks the back-end used to split the polygon.
func WithTriangulator(t triangulate.Triangulator) Option {
	return func(o *options) {
		o.triangulator = t
	}
}

// NewSampler triangulates the polygon once so that it can be sampled any
// number of times.
func NewSampler(poly Polygon, opts ...Option) (*sample.Sampler, error) {
	o := options{triangulator: triangulate.Default}
	for _, opt := range opts {
		opt(&o)
	}
	tri, err := o.triangulator.Triangulate(poly)
	if err != nil {
		return nil, err
	}
	return sample.NewSampler(tri)
}

// Sample draws n points uniformly from the inside of the polygon.
func Sample(src random.Source, poly Polygon, n int, opts ...Option) ([]Point, error) {
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "sample count must not be negative, got %d", n)
	}
	s, err := NewSampler(poly, opts...)
	if err != nil {
		return nil, err
	}
	return s.Sample(src, n)
}
