package geom

import "math"

func (t Triangle) Points() [3]Point {
	return [3]Point{t.A, t.B, t.C}
}

// SignedArea is positive for counterclockwise triangles.
func (t Triangle) SignedArea() float64 {
	return Orient(t.A, t.B, t.C) / 2
}

func (t Triangle) Centroid() Point {
	return Scale(1.0/3, Add(Add(t.A, t.B), t.C))
}

// Barycentric returns the weights of p relative to the triangle's vertices.
// The weights sum to 1, and are all non-negative exactly when p lies in the
// closed triangle. A degenerate triangle gives NaN weights.
func (t Triangle) Barycentric(p Point) (a, b, c float64) {
	area := Orient(t.A, t.B, t.C)
	a = Orient(p, t.B, t.C) / area
	b = Orient(t.A, p, t.C) / area
	c = 1 - a - b
	return a, b, c
}

// Polygon views the triangle as a three point polygon.
func (t Triangle) Polygon() Polygon {
	return Polygon{Points: []Point{t.A, t.B, t.C}}
}

// SignedArea sums the signed areas of the triangles. For a triangulation of a
// counterclockwise polygon it equals the polygon's shoelace area.
func (tri Triangulation) SignedArea() float64 {
	var sum float64
	for _, t := range tri {
		sum += t.SignedArea()
	}
	return sum
}

// Points lists every vertex of every triangle, with repeats.
func (tri Triangulation) Points() []Point {
	points := make([]Point, 0, 3*len(tri))
	for _, t := range tri {
		points = append(points, t.A, t.B, t.C)
	}
	return points
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}
