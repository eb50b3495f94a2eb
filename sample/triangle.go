// Package sample draws points uniformly by area from triangles and
// triangulations.
package sample

import (
	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/random"
)

// InTriangle returns a point uniformly distributed over the closed triangle
// v1 v2 v3, using exactly two draws from src.
//
// With v3 as the local origin, the edges a = v1 - v3 and b = v2 - v3 span a
// parallelogram. A uniform point of the parallelogram lands either in our
// triangle or in its mirror image across the diagonal from a to b. Points in
// the mirror half are reflected back through the parallelogram's center, which
// maps the mirror half onto our triangle. There is no rejection and no loop.
//
// Collinear vertices give a point on the segment they span. The edges then
// have no side to speak of, so the fold happens on the draws themselves.
func InTriangle(src random.Source, v1, v2, v3 geom.Point) geom.Point {
	a := geom.Sub(v1, v3)
	b := geom.Sub(v2, v3)
	u, w := src.Float64(), src.Float64()

	if geom.Cross(a, b) == 0 {
		if u+w > 1 {
			u, w = 1-u, 1-w
		}
		return geom.Add(v3, geom.Add(geom.Scale(u, a), geom.Scale(w, b)))
	}

	p := geom.Add(geom.Scale(u, a), geom.Scale(w, b))
	// Seen from b, the far corner a + b sits at a. Anything on its side of the
	// diagonal belongs to the mirror half.
	if geom.SameSide(geom.Sub(p, b), a, geom.Sub(a, b)) {
		p = geom.Sub(geom.Add(a, b), p)
	}
	return geom.Add(v3, p)
}
