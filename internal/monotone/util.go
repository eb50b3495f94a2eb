package monotone

import (
	"fmt"

	"github.com/osuushi/polysample/geom"
	"github.com/osuushi/polysample/internal/dbg"
)

func (s *PointStack) Push(p *geom.Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *geom.Point {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *geom.Point {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

type areaer interface {
	SignedArea() float64
}

func IsCCW(shape areaer) bool {
	return shape.SignedArea() > 0
}

func IsCW(shape areaer) bool {
	return shape.SignedArea() < 0
}

func (t *Triangle) SignedArea() float64 {
	return geom.Orient(*t.A, *t.B, *t.C) / 2
}

func (poly *Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		sum += geom.Cross(*p, *poly.Points[geom.CircularIndex(i+1, len(poly.Points))])
	}
	return sum / 2
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{Points: make([]*geom.Point, 0, len(poly.Points))}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

func (t *Triangle) Value() geom.Triangle {
	return geom.Triangle{A: *t.A, B: *t.B, C: *t.C}
}

// Triangles get a readable name in panics, since the coordinates alone are hard
// to tell apart.
func (t *Triangle) String() string {
	return fmt.Sprintf("%s{%v %v %v}", dbg.Name(t), *t.A, *t.B, *t.C)
}
