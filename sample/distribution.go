package sample

import (
	"math"
	"sort"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/internal/logging"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// TriangleArea computes the area of t from its side lengths with Heron's
// formula. The factors are arranged as in Kahan's "Miscalculating Area and
// Angles of a Needle-like Triangle", which keeps slivers accurate. A
// negative product from rounding is clamped to zero.
//
// Side lengths are square roots and carry rounding of their own, so exactly
// collinear vertices are caught up front and have no area at all.
func TriangleArea(t geom.Triangle) float64 {
	if geom.Orient(t.A, t.B, t.C) == 0 {
		return 0
	}
	a := geom.Distance(t.A, t.B)
	b := geom.Distance(t.B, t.C)
	c := geom.Distance(t.C, t.A)

	// Sort so that a >= b >= c
	if a < b {
		a, b = b, a
	}
	if b < c {
		b, c = c, b
	}
	if a < b {
		a, b = b, a
	}

	product := (a + (b + c)) * (c - (a - b)) * (c + (a - b)) * (a + (b - c))
	if product <= 0 {
		return 0
	}
	return math.Sqrt(product) / 4
}

// A Distribution is the cumulative distribution of triangle areas: entry i is
// the area of triangles 0 through i over the total area. Entries never
// decrease and the last is exactly 1.
type Distribution []float64

// NewDistribution weighs each triangle by its area. A triangulation with no
// area at all has no meaningful distribution and fails with
// ErrDegenerateGeometry.
func NewDistribution(tri geom.Triangulation) (Distribution, error) {
	if len(tri) == 0 {
		return nil, errors.Wrap(geom.ErrDegenerateGeometry, "triangulation is empty")
	}

	areas := make([]float64, len(tri))
	last := -1
	for i, t := range tri {
		areas[i] = TriangleArea(t)
		if areas[i] > 0 {
			last = i
		}
	}
	total := floats.Sum(areas)
	if !(total > 0) || math.IsInf(total, 0) {
		return nil, errors.Wrapf(geom.ErrDegenerateGeometry, "total area of %d triangles is %g", len(tri), total)
	}

	cdf := floats.CumSum(make([]float64, len(areas)), areas)
	floats.Scale(1/total, cdf)
	// Rounding can leave the tail a hair under 1. Pin everything from the last
	// triangle with area onward, so trailing slivers keep zero weight.
	for i := last; i < len(cdf); i++ {
		cdf[i] = 1
	}

	logging.Logger().Debug("built area distribution", "triangles", len(tri), "area", total)
	return Distribution(cdf), nil
}

// Index selects the triangle for a uniform draw u in [0, 1): the smallest i
// with d[i] >= u. A draw exactly on a boundary belongs to the lower triangle.
// Entries with zero width are skipped, so a triangle with no area is never
// returned, and draws past the last entry clamp to the last index.
func (d Distribution) Index(u float64) int {
	i := sort.SearchFloat64s(d, u)
	if i >= len(d) {
		return len(d) - 1
	}
	for i < len(d)-1 && d.width(i) == 0 {
		i++
	}
	return i
}

// Probability is the chance that Index selects triangle i.
func (d Distribution) Probability(i int) float64 {
	return d.width(i)
}

func (d Distribution) width(i int) float64 {
	if i == 0 {
		return d[0]
	}
	return d[i] - d[i-1]
}
