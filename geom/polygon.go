package geom

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SignedArea is the shoelace area of the polygon. It is positive for
// counterclockwise boundaries.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += Cross(p, q)
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return math.Abs(poly.SignedArea())
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	points := make([]Point, len(poly.Points))
	for i, p := range poly.Points {
		points[len(points)-1-i] = p
	}
	return Polygon{Points: points}
}

// Ring converts the polygon to a closed orb ring, repeating the first point
// at the end.
func (poly Polygon) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(poly.Points)+1)
	for _, p := range poly.Points {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if len(poly.Points) > 0 {
		ring = append(ring, ring[0])
	}
	return ring
}

// PolygonFromRing is the inverse of Ring. A closing point equal to the first
// point is dropped, since our polygons keep the closing edge implicit.
func PolygonFromRing(ring orb.Ring) Polygon {
	if len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	points := make([]Point, len(ring))
	for i, p := range ring {
		points[i] = Point{X: p.X(), Y: p.Y()}
	}
	return Polygon{Points: points}
}

// Contains is a point-in-polygon test. Output is not defined for points
// exactly on the boundary.
func (poly Polygon) Contains(p Point) bool {
	return planar.RingContains(poly.Ring(), orb.Point{p.X, p.Y})
}

// Bounds returns the axis-aligned bounding box of the points.
func Bounds(points []Point) (lo, hi Point) {
	lo = Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, p := range points {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}
