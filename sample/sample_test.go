package sample

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/random"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// Replays a fixed list of draws, then fails the test if asked for more.
type scriptedSource struct {
	t     *testing.T
	draws []float64
}

func (s *scriptedSource) Float64() float64 {
	s.t.Helper()
	require.NotEmpty(s.t, s.draws, "source exhausted")
	u := s.draws[0]
	s.draws = s.draws[1:]
	return u
}

var triangles = []geom.Triangle{
	{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}, C: geom.Point{X: 0, Y: 1}},
	{A: geom.Point{X: -3, Y: 2}, B: geom.Point{X: 5, Y: -1}, C: geom.Point{X: 4, Y: 7}},
	{A: geom.Point{X: 10, Y: 10}, B: geom.Point{X: 9, Y: 10.5}, C: geom.Point{X: 10.2, Y: 9.1}},
	// Needle
	{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 100, Y: 0.01}, C: geom.Point{X: 50, Y: 1}},
}

func TestInTriangleContained(t *testing.T) {
	src := random.NewPCG(1)
	for i, tri := range triangles {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			for j := 0; j < 2000; j++ {
				p := InTriangle(src, tri.A, tri.B, tri.C)
				a, b, c := tri.Barycentric(p)
				assert.GreaterOrEqual(t, a, -1e-9)
				assert.GreaterOrEqual(t, b, -1e-9)
				assert.GreaterOrEqual(t, c, -1e-9)
			}
		})
	}
}

func TestInTriangleCentroid(t *testing.T) {
	tri := geom.Triangle{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}, C: geom.Point{X: 0, Y: 1}}
	src := random.NewPCG(2)
	var sum geom.Point
	const n = 10000
	for i := 0; i < n; i++ {
		sum = geom.Add(sum, InTriangle(src, tri.A, tri.B, tri.C))
	}
	mean := geom.Scale(1.0/n, sum)
	centroid := tri.Centroid()
	assert.InDelta(t, centroid.X, mean.X, 0.02)
	assert.InDelta(t, centroid.Y, mean.Y, 0.02)
}

func TestInTriangleReflection(t *testing.T) {
	v1 := geom.Point{X: 1, Y: 0}
	v2 := geom.Point{X: 0, Y: 1}
	v3 := geom.Point{X: 0, Y: 0}

	// Inside already
	p := InTriangle(&scriptedSource{t: t, draws: []float64{0.25, 0.25}}, v1, v2, v3)
	assert.InDelta(t, 0.25, p.X, 1e-12)
	assert.InDelta(t, 0.25, p.Y, 1e-12)

	// Mirror half is folded back through the parallelogram's center
	p = InTriangle(&scriptedSource{t: t, draws: []float64{0.75, 0.5}}, v1, v2, v3)
	assert.InDelta(t, 0.25, p.X, 1e-12)
	assert.InDelta(t, 0.5, p.Y, 1e-12)
}

func TestInTriangleDegenerate(t *testing.T) {
	lo := geom.Point{X: 0, Y: 0}
	mid := geom.Point{X: 1, Y: 1}
	hi := geom.Point{X: 3, Y: 3}
	onSegment := func(t *testing.T, p geom.Point) {
		t.Helper()
		assert.InDelta(t, p.X, p.Y, 1e-12, "point should be on the line y = x")
		assert.GreaterOrEqual(t, p.X, -1e-12)
		assert.LessOrEqual(t, p.X, 3+1e-12)
	}

	orders := map[string][3]geom.Point{
		"middle vertex last": {lo, hi, mid},
		"low end last":       {mid, hi, lo},
		"high end last":      {lo, mid, hi},
	}
	for name, v := range orders {
		t.Run(name, func(t *testing.T) {
			src := random.NewPCG(3)
			for i := 0; i < 500; i++ {
				onSegment(t, InTriangle(src, v[0], v[1], v[2]))
			}
		})
	}

	t.Run("folded draws", func(t *testing.T) {
		// u + w > 1 folds to (0.25, 0.25): (3, 3) + 0.25·(-3, -3) + 0.25·(-2, -2)
		p := InTriangle(&scriptedSource{t: t, draws: []float64{0.75, 0.75}}, lo, mid, hi)
		assert.InDelta(t, 1.75, p.X, 1e-12)
		assert.InDelta(t, 1.75, p.Y, 1e-12)
	})

	t.Run("single point", func(t *testing.T) {
		p := InTriangle(random.NewPCG(1), mid, mid, mid)
		assert.Equal(t, mid, p)
	})
}

func TestTriangleArea(t *testing.T) {
	for i, tri := range triangles {
		assert.InEpsilon(t, math.Abs(tri.SignedArea()), TriangleArea(tri), 1e-9, "triangle %d", i)
	}
	flat := geom.Triangle{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 1}, C: geom.Point{X: 3, Y: 3}}
	assert.Zero(t, TriangleArea(flat))
	point := geom.Triangle{A: geom.Point{X: 1, Y: 1}, B: geom.Point{X: 1, Y: 1}, C: geom.Point{X: 1, Y: 1}}
	assert.Zero(t, TriangleArea(point))
}

func TestDistributionIndex(t *testing.T) {
	d := Distribution{0.2, 0.5, 1.0}
	assert.Equal(t, 0, d.Index(0.05))
	assert.Equal(t, 1, d.Index(0.3))
	assert.Equal(t, 2, d.Index(0.99))

	// Boundaries belong to the lower triangle
	assert.Equal(t, 0, d.Index(0.2))
	assert.Equal(t, 1, d.Index(0.5))
	assert.Equal(t, 0, d.Index(0))
	assert.Equal(t, 2, d.Index(1))
}

func TestDistributionSkipsEmptyTriangles(t *testing.T) {
	d := Distribution{0, 0, 0.5, 0.5, 1, 1}
	assert.Equal(t, 2, d.Index(0))
	assert.Equal(t, 4, d.Index(0.5+1e-12))
	assert.Equal(t, 4, d.Index(1))
	assert.Zero(t, d.Probability(0))
	assert.Zero(t, d.Probability(3))
	assert.Equal(t, 0.5, d.Probability(4))
}

func TestNewDistribution(t *testing.T) {
	tri := geom.Triangulation{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}, C: geom.Point{X: 0, Y: 2}},
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 1}, C: geom.Point{X: 2, Y: 2}},
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 3, Y: 0}, C: geom.Point{X: 0, Y: 2}},
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 0, Y: 0}, C: geom.Point{X: 0, Y: 0}},
	}
	d, err := NewDistribution(tri)
	require.NoError(t, err)
	require.Len(t, d, 4)
	assert.InDelta(t, 0.25, d[0], 1e-12)
	assert.InDelta(t, 0.25, d[1], 1e-12)
	assert.Equal(t, 1.0, d[2])
	assert.Equal(t, 1.0, d[3])
	for i := 1; i < len(d); i++ {
		assert.GreaterOrEqual(t, d[i], d[i-1])
	}
}

func TestNewDistributionDegenerate(t *testing.T) {
	_, err := NewDistribution(nil)
	assert.True(t, errors.Is(err, geom.ErrDegenerateGeometry), "got %v", err)

	flat := geom.Triangulation{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}, C: geom.Point{X: 2, Y: 0}},
	}
	_, err = NewDistribution(flat)
	assert.True(t, errors.Is(err, geom.ErrDegenerateGeometry), "got %v", err)

	_, err = NewSampler(flat)
	assert.True(t, errors.Is(err, geom.ErrDegenerateGeometry), "got %v", err)
}

func TestSampleProportionalToArea(t *testing.T) {
	// Two disjoint triangles with areas 1 and 3.
	tri := geom.Triangulation{
		{A: geom.Point{X: 0, Y: 0}, B: geom.Point{X: 1, Y: 0}, C: geom.Point{X: 0, Y: 2}},
		{A: geom.Point{X: 10, Y: 0}, B: geom.Point{X: 13, Y: 0}, C: geom.Point{X: 10, Y: 2}},
	}
	s, err := NewSampler(tri)
	require.NoError(t, err)
	assert.InDelta(t, 4, s.Area(), 1e-12)

	const n = 20000
	points, err := s.Sample(random.NewPCG(4), n)
	require.NoError(t, err)
	require.Len(t, points, n)

	var first float64
	for _, p := range points {
		if p.X < 5 {
			first++
		}
	}
	second := n - first
	expectFirst, expectSecond := 0.25*n, 0.75*n
	chi2 := (first-expectFirst)*(first-expectFirst)/expectFirst +
		(second-expectSecond)*(second-expectSecond)/expectSecond
	critical := distuv.ChiSquared{K: 1}.Quantile(0.999)
	assert.Less(t, chi2, critical, "observed %v / %v", first, second)
}

func TestSampleInsideTriangulation(t *testing.T) {
	s, err := NewSampler(geom.Triangulation(triangles))
	require.NoError(t, err)
	points, err := s.Sample(random.NewPCG(5), 5000)
	require.NoError(t, err)
	for _, p := range points {
		inside := false
		for _, tri := range triangles {
			a, b, c := tri.Barycentric(p)
			if a >= -1e-9 && b >= -1e-9 && c >= -1e-9 {
				inside = true
				break
			}
		}
		assert.True(t, inside, "%v is outside every triangle", p)
	}
}

func TestSampleArguments(t *testing.T) {
	s, err := NewSampler(geom.Triangulation(triangles))
	require.NoError(t, err)

	points, err := s.Sample(random.NewPCG(1), 0)
	require.NoError(t, err)
	assert.NotNil(t, points)
	assert.Empty(t, points)

	_, err = s.Sample(random.NewPCG(1), -1)
	assert.True(t, errors.Is(err, geom.ErrInvalidArgument), "got %v", err)

	_, err = Sample(random.NewPCG(1), geom.Triangulation(triangles), Distribution{1}, 1)
	assert.True(t, errors.Is(err, geom.ErrInvalidArgument), "got %v", err)

	assert.NotPanics(t, func() {
		_, err = Sample(random.NewPCG(1), nil, nil, 1)
	})
	assert.True(t, errors.Is(err, geom.ErrDegenerateGeometry), "got %v", err)
}

func TestSampleDeterministic(t *testing.T) {
	s, err := NewSampler(geom.Triangulation(triangles))
	require.NoError(t, err)
	a, err := s.Sample(random.NewPCG(9), 100)
	require.NoError(t, err)
	b, err := s.Sample(random.NewPCG(9), 100)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPointsMatchesSample(t *testing.T) {
	s, err := NewSampler(geom.Triangulation(triangles))
	require.NoError(t, err)
	want, err := s.Sample(random.NewPCG(6), 50)
	require.NoError(t, err)

	var got []geom.Point
	for p := range s.Points(random.NewPCG(6), 50) {
		got = append(got, p)
	}
	assert.Equal(t, want, got)
}

func TestPointsStopsEarly(t *testing.T) {
	s, err := NewSampler(geom.Triangulation(triangles))
	require.NoError(t, err)
	src := &scriptedSource{t: t, draws: []float64{0.1, 0.2, 0.3, 0.5, 0.2, 0.2, 0.9, 0.4, 0.1}}
	count := 0
	for range s.Points(src, 1000) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
	assert.Empty(t, src.draws, "each point takes exactly three draws")
}

func TestSampleParallel(t *testing.T) {
	s, err := NewSampler(geom.Triangulation(triangles))
	require.NoError(t, err)
	newSource := func(worker int) random.Source {
		return random.NewPCG(uint64(100 + worker))
	}

	a, err := s.SampleParallel(context.Background(), 10001, 4, newSource)
	require.NoError(t, err)
	require.Len(t, a, 10001)
	b, err := s.SampleParallel(context.Background(), 10001, 4, newSource)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// The first chunk is exactly what worker 0's source yields serially
	serial, err := s.Sample(newSource(0), 2501)
	require.NoError(t, err)
	assert.Equal(t, serial, a[:2501])

	// More workers than samples
	few, err := s.SampleParallel(context.Background(), 3, 8, newSource)
	require.NoError(t, err)
	assert.Len(t, few, 3)

	empty, err := s.SampleParallel(context.Background(), 0, 8, newSource)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSampleParallelArguments(t *testing.T) {
	s, err := NewSampler(geom.Triangulation(triangles))
	require.NoError(t, err)
	newSource := func(int) random.Source { return random.NewPCG(1) }

	_, err = s.SampleParallel(context.Background(), -1, 2, newSource)
	assert.True(t, errors.Is(err, geom.ErrInvalidArgument))
	_, err = s.SampleParallel(context.Background(), 10, 0, newSource)
	assert.True(t, errors.Is(err, geom.ErrInvalidArgument))
	_, err = s.SampleParallel(context.Background(), 10, 2, nil)
	assert.True(t, errors.Is(err, geom.ErrInvalidArgument))
}

func TestSampleParallelCancelled(t *testing.T) {
	s, err := NewSampler(geom.Triangulation(triangles))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.SampleParallel(ctx, 100000, 4, func(w int) random.Source { return random.NewPCG(uint64(w)) })
	assert.ErrorIs(t, err, context.Canceled)
}
