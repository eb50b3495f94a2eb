// Package triangulate converts simple polygons into triangles using only the
// polygon's own vertices.
//
// There are two interchangeable back-ends. Monotone (the default) sweeps the
// polygon into y-monotone pieces and triangulates each piece. Earcut clips
// ears. Both validate their input first and both return counterclockwise
// triangles, whatever the polygon's winding.
package triangulate

import (
	"sort"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/internal/logging"
	"github.com/pkg/errors"
)

// A Triangulator splits a polygon into triangles whose areas add up to the
// polygon's. Implementations must be safe for concurrent use.
type Triangulator interface {
	Triangulate(poly geom.Polygon) (geom.Triangulation, error)
}

// TriangulatorFunc adapts a plain function to the Triangulator interface.
type TriangulatorFunc func(poly geom.Polygon) (geom.Triangulation, error)

func (f TriangulatorFunc) Triangulate(poly geom.Polygon) (geom.Triangulation, error) {
	return f(poly)
}

var (
	Monotone Triangulator = TriangulatorFunc(triangulateMonotone)
	Earcut   Triangulator = TriangulatorFunc(triangulateEarcut)

	// Default is used by Triangulate.
	Default = Monotone
)

var backends = map[string]Triangulator{
	"monotone": Monotone,
	"earcut":   Earcut,
}

// ByName looks up a back-end by the name the command line tool and config
// files use for it.
func ByName(name string) (Triangulator, error) {
	t, ok := backends[name]
	if !ok {
		return nil, errors.Wrapf(geom.ErrInvalidArgument, "unknown triangulator %q (have %v)", name, Names())
	}
	return t, nil
}

// Names lists the back-ends ByName knows, sorted.
func Names() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Triangulate validates the polygon and triangulates it with Default.
func Triangulate(poly geom.Polygon) (geom.Triangulation, error) {
	return Default.Triangulate(poly)
}

func logTriangulated(backend string, poly geom.Polygon, tri geom.Triangulation) {
	logging.Logger().Debug("triangulated polygon",
		"backend", backend,
		"vertices", len(poly.Points),
		"triangles", len(tri))
}
