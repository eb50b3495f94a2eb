// Package monotone triangulates simple polygons by splitting them into
// y-monotone pieces with a sweep line, then triangulating each piece with a
// stack walk down its two chains.
package monotone

import "github.com/osuushi/polysample/geom"

// Note that all points involved with the triangulation are pointers. This means
// they can be used as keys, and two vertices at the same coordinates are still
// told apart. We never modify a point value from the input; callers get back
// exactly the coordinates they passed in.
type Polygon struct {
	Points []*geom.Point
}

type Triangle struct {
	A, B, C *geom.Point
}

type PointStack []*geom.Point
