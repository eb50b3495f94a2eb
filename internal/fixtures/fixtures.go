// Package fixtures provides test polygons. The SVG fixtures live in this
// directory and are available by name, sans extension. Everything here panics
// on failure, since a broken fixture is a broken test.
package fixtures

import (
	"embed"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/svgpoly"
)

//go:embed *.svg
var files embed.FS

// Load parses the named fixture and returns it counterclockwise.
func Load(name string) geom.Polygon {
	poly, err := svgpoly.Load(files, name+".svg")
	if err != nil {
		panic(fmt.Sprintf("could not load fixture %q: %v", name, err))
	}
	if !poly.IsCCW() {
		poly = poly.Reverse()
	}
	return poly
}

// Names lists every SVG fixture.
func Names() []string {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, strings.TrimSuffix(entry.Name(), ".svg"))
	}
	return names
}

// Some ad hoc code specified fixtures

func SimpleStar() geom.Polygon {
	const outerRadius = 5
	const innerRadius = 2
	points := make([]geom.Point, 0, 10)
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		points = append(points, geom.FromPolar(radius, 2*math.Pi*float64(i)/10))
	}
	return geom.Polygon{Points: points}
}

func Square() geom.Polygon {
	return geom.Polygon{Points: []geom.Point{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}}
}

// Chevron is the smallest non-convex case.
func Chevron() geom.Polygon {
	//  C
	//  \ \
	//   \  \
	//   D   B
	//  /  /
	// / /
	// A
	return geom.Polygon{Points: []geom.Point{
		{X: 0, Y: 0},
		{X: 10, Y: 10},
		{X: 0, Y: 20},
		{X: 5, Y: 10},
	}}
}

// Reflect mirrors a polygon across the y axis, the x axis, or both (through
// the origin). Mirroring in one axis flips the winding, so the result is
// reversed to stay counterclockwise.
func Reflect(poly geom.Polygon, x, y bool) geom.Polygon {
	points := make([]geom.Point, len(poly.Points))
	for i, p := range poly.Points {
		if x {
			p.X = -p.X
		}
		if y {
			p.Y = -p.Y
		}
		points[i] = p
	}
	result := geom.Polygon{Points: points}
	if x != y {
		result = result.Reverse()
	}
	return result
}
