package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

func (p Point) vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func fromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

func Add(p, q Vector) Vector {
	return fromVec(r2.Add(p.vec(), q.vec()))
}

func Sub(p, q Vector) Vector {
	return fromVec(r2.Sub(p.vec(), q.vec()))
}

func Scale(s float64, v Vector) Vector {
	return fromVec(r2.Scale(s, v.vec()))
}

func Dot(p, q Vector) float64 {
	return r2.Dot(p.vec(), q.vec())
}

// Cross is the z component of the 3D cross product of p and q. It is positive
// when q is counterclockwise from p.
func Cross(p, q Vector) float64 {
	return r2.Cross(p.vec(), q.vec())
}

func SquaredNorm(v Vector) float64 {
	return r2.Norm2(v.vec())
}

func Distance(p, q Point) float64 {
	return math.Sqrt(SquaredNorm(Sub(p, q)))
}

// Complement rotates v by 90 degrees counterclockwise.
func Complement(v Vector) Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// SameSide reports whether p and q lie in the same closed half-plane bounded
// by the line through the origin with direction v. A point on the line is on
// both sides.
func SameSide(p, q, v Vector) bool {
	n := Complement(v)
	return Dot(p, n)*Dot(q, n) >= 0
}

// Orient is twice the signed area of the triangle abc: positive when a, b, c
// turn left, negative when they turn right and zero when they are collinear.
func Orient(a, b, c Point) float64 {
	return Cross(Sub(b, a), Sub(c, a))
}

func FromPolar(r, theta float64) Point {
	return Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}
