package sample

import (
	"context"
	"iter"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/internal/logging"
	"github.com/osuushi/polysample/random"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Sample draws n points uniformly by area from the triangulation. Each point
// picks a triangle with probability proportional to its area, then a uniform
// point inside that triangle; together that is uniform over the whole shape.
//
// n == 0 gives an empty slice. dist must have been built from tri, so an
// empty triangulation fails with ErrDegenerateGeometry.
func Sample(src random.Source, tri geom.Triangulation, dist Distribution, n int) ([]geom.Point, error) {
	if n < 0 {
		return nil, errors.Wrapf(geom.ErrInvalidArgument, "sample count must not be negative, got %d", n)
	}
	if len(tri) == 0 {
		return nil, errors.Wrap(geom.ErrDegenerateGeometry, "triangulation is empty")
	}
	if len(dist) != len(tri) {
		return nil, errors.Wrapf(geom.ErrInvalidArgument, "distribution has %d entries for %d triangles", len(dist), len(tri))
	}

	points := make([]geom.Point, n)
	for i := range points {
		points[i] = draw(src, tri, dist)
	}
	return points, nil
}

func draw(src random.Source, tri geom.Triangulation, dist Distribution) geom.Point {
	t := tri[dist.Index(src.Float64())]
	return InTriangle(src, t.A, t.B, t.C)
}

// A Sampler pairs a triangulation with its area distribution so repeated
// requests don't rebuild it. It is immutable and safe for concurrent use as
// long as each goroutine brings its own Source.
type Sampler struct {
	triangulation geom.Triangulation
	distribution  Distribution
}

func NewSampler(tri geom.Triangulation) (*Sampler, error) {
	dist, err := NewDistribution(tri)
	if err != nil {
		return nil, err
	}
	return &Sampler{triangulation: tri, distribution: dist}, nil
}

func (s *Sampler) Triangulation() geom.Triangulation {
	return s.triangulation
}

func (s *Sampler) Distribution() Distribution {
	return s.distribution
}

// Area is the total area being sampled, computed the same way as the weights.
func (s *Sampler) Area() float64 {
	var total float64
	for _, t := range s.triangulation {
		total += TriangleArea(t)
	}
	return total
}

func (s *Sampler) Sample(src random.Source, n int) ([]geom.Point, error) {
	return Sample(src, s.triangulation, s.distribution, n)
}

// Points yields up to n samples lazily. The sequence is not restartable: each
// step draws from src, and a consumer that stops early simply draws no more.
// A negative n yields nothing.
func (s *Sampler) Points(src random.Source, n int) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for i := 0; i < n; i++ {
			if !yield(draw(src, s.triangulation, s.distribution)) {
				return
			}
		}
	}
}

// How many draws a worker makes between cancellation checks.
const cancelCheckInterval = 1024

// SampleParallel splits n draws across workers. Each worker gets its own
// source from newSource, called once with the worker's index, and fills one
// contiguous chunk of the result. With a deterministic newSource the output
// is deterministic for a given worker count.
//
// Cancelling ctx stops the workers and returns ctx's error.
func (s *Sampler) SampleParallel(ctx context.Context, n, workers int, newSource func(worker int) random.Source) ([]geom.Point, error) {
	if n < 0 {
		return nil, errors.Wrapf(geom.ErrInvalidArgument, "sample count must not be negative, got %d", n)
	}
	if workers < 1 {
		return nil, errors.Wrapf(geom.ErrInvalidArgument, "worker count must be positive, got %d", workers)
	}
	if newSource == nil {
		return nil, errors.Wrap(geom.ErrInvalidArgument, "no source factory")
	}
	if n == 0 {
		return []geom.Point{}, nil
	}
	workers = min(workers, n)
	chunk := (n + workers - 1) / workers

	logging.Logger().Debug("sampling in parallel", "samples", n, "workers", workers, "chunk", chunk)

	points := make([]geom.Point, n)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, n)
		if lo >= hi {
			break
		}
		g.Go(func() error {
			src := newSource(w)
			for i := lo; i < hi; i++ {
				if (i-lo)%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				points[i] = draw(src, s.triangulation, s.distribution)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
