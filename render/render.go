// Package render draws a sampled polygon: the triangulation in light grey,
// the boundary in black and each sample as a small dot. The y axis points up
// and the drawing is scaled to fit the canvas.
package render

import (
	"math"

	"github.com/osuushi/polysample/geom"
	"github.com/pkg/errors"
)

// A Scene is everything that can be drawn. Any part may be empty.
type Scene struct {
	Polygon       geom.Polygon
	Triangulation geom.Triangulation
	Points        []geom.Point
}

type Options struct {
	Width, Height int
	// Padding is the margin in pixels around the drawing.
	Padding float64
	// PointRadius is the radius of a sample dot in pixels.
	PointRadius float64
	// Labels writes each triangle's debug name at its centroid.
	Labels bool
}

func DefaultOptions() Options {
	return Options{Width: 300, Height: 300, Padding: 10, PointRadius: 1}
}

func (o Options) validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return errors.Wrapf(geom.ErrInvalidArgument, "canvas must have positive size, got %dx%d", o.Width, o.Height)
	}
	if o.Padding < 0 || 2*o.Padding >= float64(min(o.Width, o.Height)) {
		return errors.Wrapf(geom.ErrInvalidArgument, "padding %g does not fit a %dx%d canvas", o.Padding, o.Width, o.Height)
	}
	return nil
}

// Colors, as RGB fractions
var (
	triangleColor = [3]float64{211.0 / 255, 211.0 / 255, 211.0 / 255}
	boundaryColor = [3]float64{0, 0, 0}
	pointColor    = [3]float64{0, 0, 0}
	labelColor    = [3]float64{0.6, 0, 0}
)

const (
	triangleLineWidth = 1
	boundaryLineWidth = 2
)

// A viewport maps scene coordinates to pixels with one uniform scale,
// centring the scene and flipping y.
type viewport struct {
	scale         float64
	center        geom.Point
	width, height float64
}

func newViewport(scene Scene, opts Options) viewport {
	v := viewport{scale: 1, width: float64(opts.Width), height: float64(opts.Height)}

	var points []geom.Point
	points = append(points, scene.Polygon.Points...)
	points = append(points, scene.Triangulation.Points()...)
	points = append(points, scene.Points...)
	if len(points) == 0 {
		return v
	}
	lo, hi := geom.Bounds(points)
	v.center = geom.Scale(0.5, geom.Add(lo, hi))

	extentX, extentY := hi.X-lo.X, hi.Y-lo.Y
	availX, availY := v.width-2*opts.Padding, v.height-2*opts.Padding
	switch {
	case extentX > 0 && extentY > 0:
		v.scale = math.Min(availX/extentX, availY/extentY)
	case extentX > 0:
		v.scale = availX / extentX
	case extentY > 0:
		v.scale = availY / extentY
	}
	return v
}

func (v viewport) toScreen(p geom.Point) (x, y float64) {
	x = v.width/2 + (p.X-v.center.X)*v.scale
	y = v.height/2 - (p.Y-v.center.Y)*v.scale
	return x, y
}

func (v viewport) polyline(points []geom.Point) (xs, ys []float64) {
	xs = make([]float64, len(points))
	ys = make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = v.toScreen(p)
	}
	return xs, ys
}
