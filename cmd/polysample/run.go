package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/polysample/generate"
	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/internal/dbg"
	"github.com/osuushi/polysample/mapping"
	"github.com/osuushi/polysample/random"
	"github.com/osuushi/polysample/render"
	"github.com/osuushi/polysample/sample"
	"github.com/osuushi/polysample/svgpoly"
	"github.com/osuushi/polysample/triangulate"
	"github.com/pkg/errors"
)

func (c *command) run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer) error {
	logger := c.setupLogging(stderr)
	if err := c.loadConfig(); err != nil {
		return err
	}
	cfg := c.cfg
	src := random.NewPCG(cfg.Seed)

	poly, err := c.loadPolygon(src, stdin, logger)
	if err != nil {
		return err
	}
	logger.Info("loaded polygon", "vertices", len(poly.Points), "area", poly.Area())

	backend, err := triangulate.ByName(cfg.Backend)
	if err != nil {
		return err
	}
	tri, err := backend.Triangulate(poly)
	if err != nil {
		return err
	}
	sampler, err := sample.NewSampler(tri)
	if err != nil {
		return err
	}

	var points []geom.Point
	if cfg.Workers > 1 {
		points, err = sampler.SampleParallel(ctx, cfg.Samples, cfg.Workers, func(worker int) random.Source {
			return random.NewPCG(workerSeed(cfg.Seed, worker))
		})
	} else {
		points, err = sampler.Sample(src, cfg.Samples)
	}
	if err != nil {
		return err
	}

	if c.listTriangles {
		for _, t := range tri {
			fmt.Fprintln(stderr, dbg.Describe(t, sample.TriangleArea(t)))
		}
	}
	if err := c.writeOutputs(render.Scene{Polygon: poly, Triangulation: tri, Points: points}, stdout); err != nil {
		return err
	}

	fmt.Fprintf(stderr, "%s %s points from a %s-vertex polygon (area %.4g, %s triangles, %s)\n",
		aurora.Bold("sampled"),
		aurora.Cyan(len(points)),
		aurora.Cyan(len(poly.Points)),
		sampler.Area(),
		aurora.Cyan(len(tri)),
		cfg.Backend)
	return nil
}

// Each worker gets its own stream, spread out from the run's seed.
func workerSeed(seed uint64, worker int) uint64 {
	return seed + uint64(worker+1)*0x9e3779b97f4a7c15
}

func (c *command) loadPolygon(src random.Source, stdin io.Reader, logger *slog.Logger) (geom.Polygon, error) {
	given := 0
	for _, path := range []string{c.svgIn, c.geojsonIn, c.pointsIn} {
		if path != "" {
			given++
		}
	}
	if given > 1 {
		return geom.Polygon{}, errors.New("give at most one of --svg-in, --geojson-in and --points-in")
	}

	switch {
	case c.svgIn != "":
		dir, name := filepath.Split(c.svgIn)
		if dir == "" {
			dir = "."
		}
		return svgpoly.Load(os.DirFS(dir), name)
	case c.geojsonIn != "":
		data, err := os.ReadFile(c.geojsonIn)
		if err != nil {
			return geom.Polygon{}, errors.Wrap(err, "reading geojson")
		}
		return mapping.PolygonFromGeoJSON(data)
	case c.pointsIn != "":
		in := stdin
		if c.pointsIn != "-" {
			f, err := os.Open(c.pointsIn)
			if err != nil {
				return geom.Polygon{}, errors.Wrap(err, "opening points")
			}
			defer f.Close()
			in = f
		}
		polygons, err := readPolygons(in)
		if err != nil {
			return geom.Polygon{}, err
		}
		if len(polygons) == 0 {
			return geom.Polygon{}, errors.Wrap(geom.ErrInvalidPolygon, "no points read")
		}
		if len(polygons) > 1 {
			logger.Warn("only the first polygon is used", "polygons", len(polygons))
		}
		return polygons[0], nil
	}

	g := generate.Generator{
		Source:    src,
		Vertices:  c.cfg.Vertices,
		MinRadius: c.cfg.MinRadius,
		MaxRadius: c.cfg.MaxRadius,
	}
	return g.Generate()
}

func (c *command) writeOutputs(scene render.Scene, stdout io.Writer) error {
	opts := render.DefaultOptions()
	opts.Width, opts.Height = c.cfg.Width, c.cfg.Height
	opts.Labels = c.labels

	if c.pngOut != "" {
		if err := writeFile(c.pngOut, func(w io.Writer) error { return render.PNG(w, scene, opts) }); err != nil {
			return err
		}
	}
	if c.svgOut != "" {
		if err := writeFile(c.svgOut, func(w io.Writer) error { return render.SVG(w, scene, opts) }); err != nil {
			return err
		}
	}
	if c.imgcat {
		img, err := render.Image(scene, opts)
		if err != nil {
			return err
		}
		if err := imgcat.CatImage(img, stdout); err != nil {
			return errors.Wrap(err, "imgcat")
		}
	}
	if c.geojsonOut {
		data, err := mapping.FeatureCollection(scene.Polygon, scene.Triangulation, scene.Points).MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "encoding geojson")
		}
		if _, err := fmt.Fprintf(stdout, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := write(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return errors.Wrapf(f.Close(), "writing %s", path)
}
