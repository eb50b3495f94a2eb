package monotone

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"testing"

	"github.com/osuushi/polysample/geom"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

// Helper to check that a triangulation is valid. The rules are:
// 1. The set of points in the triangles must equal the set of points in the polygon.
// 2. The set of line segments in the polygon is a subset of the set of line segments in the triangles.
// 3. Every triangle is counterclockwise, with non-zero area.
// 4. The sum of the areas of all triangles is equal to the area of the polygon.
// 5. There are exactly n - 2 triangles.
func assertValidTriangulation(t *testing.T, polygon geom.Polygon, triangles geom.Triangulation) {
	t.Helper()
	require.True(t, polygon.IsCCW(), "polygon is not counterclockwise")
	require.Len(t, triangles, len(polygon.Points)-2)

	polyPoints := make(map[geom.Point]struct{})
	for _, p := range polygon.Points {
		polyPoints[p] = struct{}{}
	}
	trianglePoints := make(map[geom.Point]struct{})
	segments := make(normalizedSegmentSet)
	var triangleArea float64
	for _, tri := range triangles {
		require.Greater(t, tri.SignedArea(), 0.0, "triangle is not counterclockwise: %v", tri)
		triangleArea += tri.SignedArea()
		for _, p := range tri.Points() {
			trianglePoints[p] = struct{}{}
		}
		segments.add(tri.A, tri.B)
		segments.add(tri.B, tri.C)
		segments.add(tri.C, tri.A)
	}
	require.Equal(t, polyPoints, trianglePoints, "set of points in the triangles must equal the set of points in the polygon")

	for i, p1 := range polygon.Points {
		p2 := polygon.Points[geom.CircularIndex(i+1, len(polygon.Points))]
		require.True(t, segments.contains(p1, p2), "segment %v-%v of the polygon is not in the triangles", p1, p2)
	}

	require.InEpsilon(t, polygon.Area(), triangleArea, epsilon, "triangle areas must add up to the polygon's area")
}

// A line segment where the lower point (accounting for lexicographic
// adjustment) always comes first
type normalizedSegment struct {
	lower, upper geom.Point
}

func newNormalizedSegment(a, b geom.Point) normalizedSegment {
	if a.Below(b) {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b geom.Point) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b geom.Point) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}

// Pointer polygons for exercising the pieces directly.
func pointerPolygon(poly geom.Polygon) *Polygon {
	result := &Polygon{Points: make([]*geom.Point, len(poly.Points))}
	for i := range poly.Points {
		p := poly.Points[i]
		result.Points[i] = &p
	}
	return result
}

func values(triangles []*Triangle) geom.Triangulation {
	result := make(geom.Triangulation, len(triangles))
	for i, tri := range triangles {
		result[i] = tri.Value()
	}
	return result
}
