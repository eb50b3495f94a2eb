package main

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/polysample/geom"
	"github.com/pkg/errors"
)

// readPolygons reads newline separated points in the form "x y", with each
// polygon separated by an extra newline. Lines starting with # are skipped.
func readPolygons(in io.Reader) ([]geom.Polygon, error) {
	var polygons []geom.Polygon
	var points []geom.Point
	scanner := bufio.NewScanner(in)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if text == "" {
			if len(points) > 0 {
				polygons = append(polygons, geom.Polygon{Points: points})
				points = nil
			}
			continue
		}
		if strings.HasPrefix(text, "#") {
			continue
		}

		point, err := parsePoint(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing polygon if any
	if len(points) > 0 {
		polygons = append(polygons, geom.Polygon{Points: points})
	}
	return polygons, nil
}

func parsePoint(line string) (geom.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "parsing x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrap(err, "parsing y")
	}
	return geom.Point{X: x, Y: y}, nil
}
