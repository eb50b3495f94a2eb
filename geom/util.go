package geom

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a slightly
// rotated coordinate system, allowing us to assume Y values are never equal.
//
// The comparison is exact. A tolerance here would make the order
// non-transitive, and the sweep in the triangulator relies on a total order.
func (p Point) Below(other Point) bool {
	if p.Y == other.Y {
		return p.X < other.X
	}
	return p.Y < other.Y
}

func (p Point) Above(other Point) bool {
	return !p.Below(other)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
