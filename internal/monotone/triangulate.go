package monotone

import (
	"slices"

	"github.com/osuushi/polysample/geom"
)

// Triangulate converts a simple polygon into triangles using only the
// polygon's own vertices. Either winding is accepted; the triangles always
// wind counterclockwise.
//
// The polygon is expected to have been validated already. Geometry the sweep
// cannot make sense of comes back as an error rather than a panic.
func Triangulate(points []geom.Point) (result geom.Triangulation, err error) {
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if len(points) < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", len(points))
	}

	// Work on a private copy so the pointers are ours.
	values := slices.Clone(points)
	polygon := &Polygon{Points: make([]*geom.Point, len(values))}
	for i := range values {
		polygon.Points[i] = &values[i]
	}
	if IsCW(polygon) {
		*polygon = polygon.Reverse()
	}

	if len(polygon.Points) == 3 {
		return geom.Triangulation{{A: *polygon.Points[0], B: *polygon.Points[1], C: *polygon.Points[2]}}, nil
	}

	result = make(geom.Triangulation, 0, len(points)-2)
	for _, piece := range SplitMonotone(polygon) {
		for _, tri := range TriangulateMonotone(&piece) {
			result = append(result, tri.Value())
		}
	}
	checkTriangleCount(len(points), len(result))
	return result, nil
}

// Any triangulation of a simple n-gon by its own vertices has n - 2
// triangles. Anything else means the sweep went wrong.
func checkTriangleCount(vertices, triangles int) {
	if triangles != vertices-2 {
		fatalf("expected %d triangles, produced %d", vertices-2, triangles)
	}
}
