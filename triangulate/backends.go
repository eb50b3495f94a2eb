package triangulate

import (
	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/internal/monotone"
	"github.com/pkg/errors"
	"github.com/rclancey/earcut"
)

func triangulateMonotone(poly geom.Polygon) (geom.Triangulation, error) {
	if err := Validate(poly); err != nil {
		return nil, err
	}
	tri, err := monotone.Triangulate(poly.Points)
	if err != nil {
		return nil, errors.Wrapf(geom.ErrInvalidPolygon, "monotone triangulation failed: %v", err)
	}
	logTriangulated("monotone", poly, tri)
	return tri, nil
}

func triangulateEarcut(poly geom.Polygon) (geom.Triangulation, error) {
	if err := Validate(poly); err != nil {
		return nil, err
	}

	if len(poly.Points) == 3 {
		// Kept even with no area, to match the monotone back-end.
		tri := geom.Triangulation{ccw(geom.Triangle{A: poly.Points[0], B: poly.Points[1], C: poly.Points[2]})}
		logTriangulated("earcut", poly, tri)
		return tri, nil
	}

	// earcut wants a flat coordinate array: [x0, y0, x1, y1, ...]
	coords := make([]float64, 0, 2*len(poly.Points))
	for _, p := range poly.Points {
		coords = append(coords, p.X, p.Y)
	}
	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, errors.Wrapf(geom.ErrInvalidPolygon, "earcut failed: %v", err)
	}
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, errors.Wrapf(geom.ErrInvalidPolygon, "earcut returned %d indices for %d points", len(indices), len(poly.Points))
	}

	tri := make(geom.Triangulation, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		tri = append(tri, ccw(geom.Triangle{
			A: poly.Points[indices[i]],
			B: poly.Points[indices[i+1]],
			C: poly.Points[indices[i+2]],
		}))
	}
	logTriangulated("earcut", poly, tri)
	return tri, nil
}

// earcut's output winding follows the input's. Ours is always CCW.
func ccw(t geom.Triangle) geom.Triangle {
	if t.SignedArea() < 0 {
		t.B, t.C = t.C, t.B
	}
	return t
}
