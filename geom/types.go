// Package geom holds the plain value types shared by every stage of the
// sampling pipeline, and the 2D vector arithmetic they are built on.
package geom

// Point is a position in the plane. Points are values and are never mutated
// once created.
type Point struct {
	X float64
	Y float64
}

// Vector is a Point read as a displacement. The two are interchangeable; the
// name only documents intent.
type Vector = Point

// A Polygon is an ordered boundary of at least three points. The closing edge
// from the last point back to the first is implicit, so the first point is
// never repeated at the end.
type Polygon struct {
	Points []Point
}

// Triangle vertex order does not matter for area or sampling, but triangles
// produced by a triangulator are counterclockwise.
type Triangle struct {
	A, B, C Point
}

// Triangulation is a set of triangles with pairwise disjoint interiors whose
// union is the source polygon.
type Triangulation []Triangle
