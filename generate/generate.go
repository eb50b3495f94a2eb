// Package generate builds random star-shaped polygons.
package generate

import (
	"math"
	"sort"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/random"
	"github.com/pkg/errors"
)

// Polygon generates a random polygon with n vertices whose distance from the
// origin lies in [rMin, rMax].
//
// Angles are drawn uniformly from [0, 2π) and sorted, then each gets its own
// radius. Since every radius is positive, the angles go once around the
// circle in order and no two neighbours are π or more apart, the origin sees
// every edge: the polygon is star-shaped about the origin, simple,
// counterclockwise, and has the origin strictly inside. The vertices must stay
// in angle order for this to hold.
//
// An angle set with a gap of π or more would leave the origin outside (and can
// make the boundary cross itself), so such a set is drawn again. For n = 3 that
// happens three times in four on average; beyond a dozen vertices almost never.
// A source that still has not produced a usable set after maxAttempts draws is
// rejected with ErrInvalidArgument.
//
// Arguments are checked before anything is drawn from src.
func Polygon(src random.Source, n int, rMin, rMax float64) (geom.Polygon, error) {
	if n < 3 {
		return geom.Polygon{}, errors.Wrapf(geom.ErrInvalidArgument, "polygon needs at least 3 vertices, got %d", n)
	}
	if !(rMin > 0) || math.IsInf(rMax, 0) || math.IsNaN(rMax) {
		return geom.Polygon{}, errors.Wrapf(geom.ErrInvalidArgument, "radius bounds must be positive and finite, got [%g, %g]", rMin, rMax)
	}
	if rMin > rMax {
		return geom.Polygon{}, errors.Wrapf(geom.ErrInvalidArgument, "minimum radius %g exceeds maximum %g", rMin, rMax)
	}

	angles := make([]float64, n)
	for attempt := 0; ; attempt++ {
		if attempt == maxAttempts {
			return geom.Polygon{}, errors.Wrapf(geom.ErrInvalidArgument, "no angle set without a gap of π in %d attempts", maxAttempts)
		}
		for i := range angles {
			angles[i] = src.Float64() * 2 * math.Pi
		}
		sort.Float64s(angles)
		if maxGap(angles) < math.Pi {
			break
		}
	}

	points := make([]geom.Point, n)
	for i, theta := range angles {
		points[i] = geom.FromPolar(random.Uniform(src, rMin, rMax), theta)
	}
	return geom.Polygon{Points: points}, nil
}

// A fair source fails this often for triangles with probability (3/4)^1000,
// well below anything observable.
const maxAttempts = 1000

// maxGap is the widest angular step between neighbours of the sorted angles,
// including the step that wraps from the last angle back to the first.
func maxGap(angles []float64) float64 {
	gap := angles[0] + 2*math.Pi - angles[len(angles)-1]
	for i := 1; i < len(angles); i++ {
		gap = math.Max(gap, angles[i]-angles[i-1])
	}
	return gap
}

// Generator keeps the polygon parameters together so the same shape of
// polygon can be drawn repeatedly.
type Generator struct {
	Source    random.Source
	Vertices  int
	MinRadius float64
	MaxRadius float64
}

func (g Generator) Generate() (geom.Polygon, error) {
	return Polygon(g.Source, g.Vertices, g.MinRadius, g.MaxRadius)
}
