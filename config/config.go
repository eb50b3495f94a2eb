// Package config holds the settings for a sampling run. Settings can come
// from a YAML file; anything the file leaves out keeps its default.
package config

import (
	"io"
	"math"
	"os"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/triangulate"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Random polygon shape
	Vertices  int     `yaml:"vertices"`
	MinRadius float64 `yaml:"min_radius"`
	MaxRadius float64 `yaml:"max_radius"`

	Samples int    `yaml:"samples"`
	Seed    uint64 `yaml:"seed"`
	// Workers above 1 samples in parallel, each worker with its own generator.
	Workers int    `yaml:"workers"`
	Backend string `yaml:"backend"`

	// Picture size in pixels
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func Default() Config {
	return Config{
		Vertices:  100,
		MinRadius: 0.25,
		MaxRadius: 1,
		Samples:   1000,
		Seed:      1,
		Workers:   1,
		Backend:   "monotone",
		Width:     300,
		Height:    300,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading %s", path)
	}
	return cfg, nil
}

// Decode is Load for an already open document. Unknown keys are an error, so
// a typo doesn't silently fall back to a default.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting. Failures wrap geom.ErrInvalidArgument.
func (c Config) Validate() error {
	switch {
	case c.Vertices < 3:
		return errors.Wrapf(geom.ErrInvalidArgument, "vertices must be at least 3, got %d", c.Vertices)
	case !(c.MinRadius > 0) || math.IsInf(c.MaxRadius, 0) || math.IsNaN(c.MaxRadius) || c.MinRadius > c.MaxRadius:
		return errors.Wrapf(geom.ErrInvalidArgument, "radii must satisfy 0 < min <= max, got [%g, %g]", c.MinRadius, c.MaxRadius)
	case c.Samples < 0:
		return errors.Wrapf(geom.ErrInvalidArgument, "samples must not be negative, got %d", c.Samples)
	case c.Workers < 1:
		return errors.Wrapf(geom.ErrInvalidArgument, "workers must be at least 1, got %d", c.Workers)
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(geom.ErrInvalidArgument, "picture size must be positive, got %dx%d", c.Width, c.Height)
	}
	if _, err := triangulate.ByName(c.Backend); err != nil {
		return err
	}
	return nil
}
