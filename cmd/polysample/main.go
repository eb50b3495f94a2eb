// Command polysample draws uniform random points from a polygon and renders
// the result.
//
// The polygon is generated at random unless one is read from an SVG file, a
// GeoJSON file or a plain list of points. Settings come from an optional YAML
// config file; flags given on the command line override it.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/polysample"
	"github.com/osuushi/polysample/config"
	"github.com/osuushi/polysample/triangulate"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	app := kingpin.New("polysample", "Draw uniform random points from the inside of a polygon.")
	c := newCommand(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := c.run(ctx, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red("polysample: "+err.Error()))
		os.Exit(1)
	}
}

type command struct {
	configPath string
	cfg        config.Config
	// Settings given as flags, applied over the config file
	overrides []func(*config.Config)

	svgIn, geojsonIn, pointsIn string

	pngOut, svgOut string
	geojsonOut     bool
	imgcat         bool
	labels         bool
	listTriangles  bool
	verbose        bool
}

func newCommand(app *kingpin.Application) *command {
	c := &command{}
	defaults := config.Default()

	app.Flag("config", "YAML file with settings.").StringVar(&c.configPath)

	override(app.Flag("vertices", "Vertices of the random polygon.").Short('n'), c,
		defaults.Vertices, func(cfg *config.Config, v int) { cfg.Vertices = v })
	overrideFloat(app.Flag("rmin", "Smallest vertex distance from the origin."), c,
		defaults.MinRadius, func(cfg *config.Config, v float64) { cfg.MinRadius = v })
	overrideFloat(app.Flag("rmax", "Largest vertex distance from the origin."), c,
		defaults.MaxRadius, func(cfg *config.Config, v float64) { cfg.MaxRadius = v })
	override(app.Flag("samples", "Number of points to draw.").Short('s'), c,
		defaults.Samples, func(cfg *config.Config, v int) { cfg.Samples = v })
	override(app.Flag("workers", "Sample in parallel with this many workers."), c,
		defaults.Workers, func(cfg *config.Config, v int) { cfg.Workers = v })
	override(app.Flag("width", "Picture width in pixels."), c,
		defaults.Width, func(cfg *config.Config, v int) { cfg.Width = v })
	override(app.Flag("height", "Picture height in pixels."), c,
		defaults.Height, func(cfg *config.Config, v int) { cfg.Height = v })

	var seed uint64
	app.Flag("seed", "Random seed.").Default(fmt.Sprint(defaults.Seed)).
		Action(c.apply(func(cfg *config.Config) { cfg.Seed = seed })).Uint64Var(&seed)
	var backend string
	app.Flag("backend", "Triangulation back-end.").Default(defaults.Backend).
		Action(c.apply(func(cfg *config.Config) { cfg.Backend = backend })).EnumVar(&backend, triangulate.Names()...)

	app.Flag("svg-in", "Read the polygon from the first <polygon> of an SVG file.").PlaceHolder("FILE").StringVar(&c.svgIn)
	app.Flag("geojson-in", "Read the polygon from a GeoJSON file.").PlaceHolder("FILE").StringVar(&c.geojsonIn)
	app.Flag("points-in", `Read the polygon as "x y" lines ("-" for stdin).`).PlaceHolder("FILE").StringVar(&c.pointsIn)

	app.Flag("png", "Write a PNG picture.").PlaceHolder("FILE").StringVar(&c.pngOut)
	app.Flag("svg", "Write an SVG picture.").PlaceHolder("FILE").StringVar(&c.svgOut)
	app.Flag("geojson", "Print a GeoJSON FeatureCollection to stdout.").BoolVar(&c.geojsonOut)
	app.Flag("imgcat", "Show the picture inline in the terminal (iTerm only).").BoolVar(&c.imgcat)
	app.Flag("labels", "Label triangles in pictures.").BoolVar(&c.labels)
	app.Flag("triangles", "List the triangles on stderr.").BoolVar(&c.listTriangles)
	app.Flag("verbose", "Log debug output.").Short('v').BoolVar(&c.verbose)
	return c
}

// Flags only override the config file when they are actually given, which
// kingpin reports by running the flag's action.
func (c *command) apply(set func(*config.Config)) kingpin.Action {
	return func(*kingpin.ParseContext) error {
		c.overrides = append(c.overrides, set)
		return nil
	}
}

func override(flag *kingpin.FlagClause, c *command, def int, set func(*config.Config, int)) {
	var v int
	flag.Default(fmt.Sprint(def)).Action(c.apply(func(cfg *config.Config) { set(cfg, v) })).IntVar(&v)
}

func overrideFloat(flag *kingpin.FlagClause, c *command, def float64, set func(*config.Config, float64)) {
	var v float64
	flag.Default(fmt.Sprint(def)).Action(c.apply(func(cfg *config.Config) { set(cfg, v) })).Float64Var(&v)
}

func (c *command) loadConfig() error {
	c.cfg = config.Default()
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}
	for _, set := range c.overrides {
		set(&c.cfg)
	}
	return c.cfg.Validate()
}

func (c *command) setupLogging(stderr io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	polysample.SetLogger(logger)
	return logger
}
