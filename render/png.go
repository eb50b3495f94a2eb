package render

import (
	"image"
	"io"

	"github.com/fogleman/gg"
	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/internal/dbg"
	"github.com/pkg/errors"
)

// Image draws the scene onto a new raster image.
func Image(scene Scene, opts Options) (image.Image, error) {
	c, err := draw(scene, opts)
	if err != nil {
		return nil, err
	}
	return c.Image(), nil
}

// PNG draws the scene and encodes it as PNG.
func PNG(w io.Writer, scene Scene, opts Options) error {
	c, err := draw(scene, opts)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding png")
}

func draw(scene Scene, opts Options) (*gg.Context, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	v := newViewport(scene, opts)

	c := gg.NewContext(opts.Width, opts.Height)
	c.SetRGB(1, 1, 1)
	c.Clear()

	// Everything is drawn in pixel coordinates rather than through a context
	// transform, so line widths and dots don't scale with the polygon.
	c.SetRGB(triangleColor[0], triangleColor[1], triangleColor[2])
	c.SetLineWidth(triangleLineWidth)
	for _, t := range scene.Triangulation {
		tracePolygon(c, v, t.Polygon().Points)
		c.Stroke()
	}

	if len(scene.Polygon.Points) > 0 {
		c.SetRGB(boundaryColor[0], boundaryColor[1], boundaryColor[2])
		c.SetLineWidth(boundaryLineWidth)
		tracePolygon(c, v, scene.Polygon.Points)
		c.Stroke()
	}

	c.SetRGB(pointColor[0], pointColor[1], pointColor[2])
	for _, p := range scene.Points {
		x, y := v.toScreen(p)
		c.DrawCircle(x, y, opts.PointRadius)
		c.Fill()
	}

	if opts.Labels {
		c.SetRGB(labelColor[0], labelColor[1], labelColor[2])
		for _, t := range scene.Triangulation {
			x, y := v.toScreen(t.Centroid())
			c.DrawStringAnchored(dbg.Name(t), x, y, 0.5, 0.5)
		}
	}
	return c, nil
}

func tracePolygon(c *gg.Context, v viewport, points []geom.Point) {
	for i, p := range points {
		x, y := v.toScreen(p)
		if i == 0 {
			c.MoveTo(x, y)
		} else {
			c.LineTo(x, y)
		}
	}
	c.ClosePath()
}
