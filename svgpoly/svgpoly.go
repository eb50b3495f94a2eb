// Package svgpoly reads polygons out of SVG documents. It is not a full (or
// even correct) SVG reader: it finds the first <polygon> element and takes
// its points attribute literally, ignoring transforms, styles and every other
// kind of shape.
package svgpoly

import (
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/polysample/geom"
	"github.com/pkg/errors"
)

// Parse reads the first polygon in the document. The winding is left as
// written.
func Parse(r io.Reader) (geom.Polygon, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return geom.Polygon{}, errors.Wrap(err, "parsing svg")
	}

	polygons := root.FindAll("polygon")
	if len(polygons) == 0 {
		return geom.Polygon{}, errors.New("no polygon element found")
	}

	points, err := ParsePoints(polygons[0].Attributes["points"])
	if err != nil {
		return geom.Polygon{}, err
	}
	return geom.Polygon{Points: points}, nil
}

// ParsePoints parses an SVG points list. Coordinates may be separated by
// commas, whitespace or both, so "0,0 1,0 1,1" and "0 0, 1 0, 1 1" read the
// same.
func ParsePoints(s string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d) in points list", len(fields))
	}

	points := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}

// Load parses the named file from fsys.
func Load(fsys fs.FS, name string) (geom.Polygon, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return geom.Polygon{}, errors.Wrapf(err, "opening %q", name)
	}
	defer f.Close()

	poly, err := Parse(f)
	if err != nil {
		return geom.Polygon{}, errors.Wrapf(err, "loading %q", name)
	}
	return poly, nil
}
