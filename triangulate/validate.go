package triangulate

import (
	"github.com/osuushi/polysample/geom"
	"github.com/pkg/errors"
)

// Validate rejects polygons that neither back-end can triangulate. A polygon
// must have at least three points, all finite, with no two consecutive points
// equal. Its boundary must not cross or touch itself: edges that don't share
// a vertex may not meet at all, and neighbouring edges may not fold back over
// each other.
//
// Every failure wraps geom.ErrInvalidPolygon.
//
// Three collinear points pass. They make a triangle with no area, which the
// sampler reports as degenerate geometry.
func Validate(poly geom.Polygon) error {
	points := poly.Points
	n := len(points)
	if n < 3 {
		return errors.Wrapf(geom.ErrInvalidPolygon, "polygon has %d points, need at least 3", n)
	}

	for i, p := range points {
		if !p.IsFinite() {
			return errors.Wrapf(geom.ErrInvalidPolygon, "point %d (%v) is not finite", i, p)
		}
		if next := points[geom.CircularIndex(i+1, n)]; p == next {
			return errors.Wrapf(geom.ErrInvalidPolygon, "points %d and %d coincide at %v", i, geom.CircularIndex(i+1, n), p)
		}
	}
	if n == 3 {
		return nil
	}

	for i, v := range points {
		prev := points[geom.CircularIndex(i-1, n)]
		next := points[geom.CircularIndex(i+1, n)]
		if geom.Orient(prev, v, next) == 0 && geom.Dot(geom.Sub(prev, v), geom.Sub(next, v)) > 0 {
			return errors.Wrapf(geom.ErrInvalidPolygon, "boundary folds back on itself at point %d (%v)", i, v)
		}
	}

	for i := 0; i < n; i++ {
		a, b := points[i], points[geom.CircularIndex(i+1, n)]
		// Skip edge i+1, which shares a vertex with edge i. Edge n-1 shares one
		// with edge 0 when i is 0.
		last := n
		if i == 0 {
			last = n - 1
		}
		for j := i + 2; j < last; j++ {
			c, d := points[j], points[geom.CircularIndex(j+1, n)]
			if segmentsIntersect(a, b, c, d) {
				return errors.Wrapf(geom.ErrInvalidPolygon, "edges %d and %d intersect", i, j)
			}
		}
	}
	return nil
}

// segmentsIntersect reports whether the closed segments ab and cd share any
// point, touching and overlapping included.
func segmentsIntersect(a, b, c, d geom.Point) bool {
	d1 := geom.Orient(c, d, a)
	d2 := geom.Orient(c, d, b)
	d3 := geom.Orient(a, b, c)
	d4 := geom.Orient(a, b, d)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(c, d, a)) ||
		(d2 == 0 && onSegment(c, d, b)) ||
		(d3 == 0 && onSegment(a, b, c)) ||
		(d4 == 0 && onSegment(a, b, d))
}

// onSegment reports whether p, known to be collinear with ab, lies between them.
func onSegment(a, b, p geom.Point) bool {
	return min(a.X, b.X) <= p.X && p.X <= max(a.X, b.X) &&
		min(a.Y, b.Y) <= p.Y && p.Y <= max(a.Y, b.Y)
}
