package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/osuushi/polysample/internal/dbg"
)

// SVG writes the scene as an SVG document of the configured size.
func SVG(w io.Writer, scene Scene, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}
	v := newViewport(scene, opts)

	// svgo doesn't report write errors, so catch the first one here.
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(v.width, v.height)
	s.Rect(0, 0, v.width, v.height, "fill:white;stroke:none")

	s.Gid("triangulation")
	for _, t := range scene.Triangulation {
		xs, ys := v.polyline(t.Polygon().Points)
		s.Polygon(xs, ys, strokeStyle(triangleColor, triangleLineWidth))
	}
	s.Gend()

	if len(scene.Polygon.Points) > 0 {
		xs, ys := v.polyline(scene.Polygon.Points)
		s.Polygon(xs, ys, `id="boundary"`, strokeStyle(boundaryColor, boundaryLineWidth))
	}

	s.Gid("samples")
	for _, p := range scene.Points {
		x, y := v.toScreen(p)
		s.Circle(x, y, opts.PointRadius, "fill:"+rgb(pointColor)+";stroke:none")
	}
	s.Gend()

	if opts.Labels {
		s.Gid("labels")
		for _, t := range scene.Triangulation {
			x, y := v.toScreen(t.Centroid())
			s.Text(x, y, dbg.Name(t), "text-anchor:middle;font-size:8px;fill:"+rgb(labelColor))
		}
		s.Gend()
	}

	s.End()
	return ew.err
}

func strokeStyle(color [3]float64, width float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%g", rgb(color), width)
}

func rgb(color [3]float64) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", int(color[0]*255+0.5), int(color[1]*255+0.5), int(color[2]*255+0.5))
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
