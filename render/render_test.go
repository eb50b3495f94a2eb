package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/internal/fixtures"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func squareScene() Scene {
	square := fixtures.Square()
	return Scene{
		Polygon: square,
		Triangulation: geom.Triangulation{
			{A: square.Points[0], B: square.Points[1], C: square.Points[2]},
			{A: square.Points[0], B: square.Points[2], C: square.Points[3]},
		},
		Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: -3, Y: 4}},
	}
}

func TestViewport(t *testing.T) {
	v := newViewport(squareScene(), DefaultOptions())
	// 280 pixels across 10 units
	assert.InDelta(t, 28, v.scale, 1e-12)

	x, y := v.toScreen(geom.Point{X: -5, Y: -5})
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 290, y, 1e-9, "y points up")

	x, y = v.toScreen(geom.Point{X: 5, Y: 5})
	assert.InDelta(t, 290, x, 1e-9)
	assert.InDelta(t, 10, y, 1e-9)
}

func TestViewportKeepsAspect(t *testing.T) {
	wide := Scene{Polygon: geom.Polygon{Points: []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}}}}
	opts := Options{Width: 200, Height: 100, Padding: 0}
	v := newViewport(wide, opts)
	assert.InDelta(t, 20, v.scale, 1e-12)
	x, y := v.toScreen(geom.Point{X: 5, Y: 0.5})
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
}

func TestViewportEmpty(t *testing.T) {
	v := newViewport(Scene{}, DefaultOptions())
	x, y := v.toScreen(geom.Point{})
	assert.Equal(t, 150.0, x)
	assert.Equal(t, 150.0, y)
}

func TestImage(t *testing.T) {
	scene := squareScene()
	scene.Triangulation = nil
	img, err := Image(scene, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())

	dark := func(x, y int) bool {
		r, g, b, _ := img.At(x, y).RGBA()
		return r < 0x8000 && g < 0x8000 && b < 0x8000
	}
	assert.False(t, dark(2, 2), "background")
	assert.True(t, dark(10, 150), "left edge of the boundary")
	assert.True(t, dark(150, 150), "sample at the origin")
	assert.False(t, dark(100, 200), "empty inside")
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Labels = true
	require.NoError(t, PNG(&buf, squareScene(), opts))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 300, img.Bounds().Dx())
}

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Labels = true
	require.NoError(t, SVG(&buf, squareScene(), opts))

	doc := buf.String()
	assert.True(t, strings.HasPrefix(doc, "<?xml"))
	assert.Contains(t, doc, "<svg")
	assert.Equal(t, 3, strings.Count(doc, "<polygon"), "two triangles and the boundary")
	assert.Equal(t, 3, strings.Count(doc, "<circle"))
	assert.Equal(t, 2, strings.Count(doc, "<text"))
	assert.Contains(t, doc, `id="boundary"`)
	assert.Contains(t, doc, "rgb(211,211,211)")
}

func TestInvalidOptions(t *testing.T) {
	for _, opts := range []Options{
		{Width: 0, Height: 100},
		{Width: 100, Height: -1},
		{Width: 100, Height: 100, Padding: 50},
		{Width: 100, Height: 100, Padding: -1},
	} {
		_, err := Image(squareScene(), opts)
		assert.True(t, errors.Is(err, geom.ErrInvalidArgument), "%+v: got %v", opts, err)
		err = SVG(&bytes.Buffer{}, squareScene(), opts)
		assert.True(t, errors.Is(err, geom.ErrInvalidArgument), "%+v: got %v", opts, err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteErrors(t *testing.T) {
	assert.EqualError(t, SVG(failingWriter{}, squareScene(), DefaultOptions()), "disk full")
	assert.Error(t, PNG(failingWriter{}, squareScene(), DefaultOptions()))
}
