package monotone

import "github.com/osuushi/polysample/geom"

// Facilities for converting a y-monotone polygon into triangles. A y-monotone
// polygon is a simple polygon such that any horizontal line intersects at most
// two edges.
//
// The lexicographic Point.Below() method is used to simulate a slightly rotated
// coordinate system that eliminates horizontal segments. On the left chain a
// horizontal edge therefore has to sit _above_ the inside of the polygon, and
// on the right chain _below_ it. The sweep in split.go produces pieces under
// the same convention.
//
// The polygon must be counterclockwise.

func TriangulateMonotone(polygon *Polygon) []*Triangle {
	if len(polygon.Points) < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", len(polygon.Points))
	}
	if len(polygon.Points) == 3 {
		return []*Triangle{{polygon.Points[0], polygon.Points[1], polygon.Points[2]}}
	}

	sorted, onLeft, bottom := sortChains(polygon)
	triangles := make([]*Triangle, 0, len(polygon.Points)-2)

	stack := make(PointStack, 0, len(sorted))
	stack.Push(sorted[0])
	stack.Push(sorted[1])
	for i := 2; i < len(sorted); i++ {
		p := sorted[i]
		left := onLeft(p)

		if left != onLeft(stack.Peek()) {
			// Jumping to the other chain. Monotonicity guarantees that the whole
			// stack is visible from p, so fan out to all of it.
			for !stack.Empty() {
				a := stack.Pop()
				if stack.Empty() {
					break
				}
				b := stack.Peek()
				if left {
					//               b
					//              /|
					//  diagonal-> / |
					//            p--a
					triangles = appendTriangle(triangles, &Triangle{p, a, b})
				} else {
					// b
					// |\ <- diagonal
					// | \
					// a--p
					triangles = appendTriangle(triangles, &Triangle{a, p, b})
				}
			}
			stack.Push(sorted[i-1])
			stack.Push(p)
			continue
		}

		// Same chain. Cut off triangles for as long as p can see past the top of
		// the stack; the last point popped goes back on.
		v := stack.Pop()
		for !stack.Empty() {
			top := stack.Peek()
			var candidate *Triangle
			if left {
				// top
				// |\
				// v \
				//   \\ <- diagonal
				//     \
				//      p
				candidate = &Triangle{p, top, v}
			} else {
				//                top
				//               /|
				//              / v
				//             / /
				// diagonal-> //
				//           /
				//          p
				candidate = &Triangle{p, v, top}
			}
			// p sees top exactly when the candidate winds the right way.
			if !IsCCW(candidate) {
				break
			}
			v = stack.Pop()
			triangles = append(triangles, candidate)
		}
		stack.Push(v)
		stack.Push(p)
	}

	// Fan the bottom point out to whatever is left. This includes the final
	// pair, which the textbook version (only emitting diagonals) stops short of.
	l := stack.Pop()
	for !stack.Empty() {
		p := stack.Pop()
		if onLeft(l) {
			//    p
			//  / |
			// l  | <- diagonal
			//  \ |
			//    b
			triangles = appendTriangle(triangles, &Triangle{bottom, p, l})
		} else {
			//             p
			//             | \
			// diagonal -> |  l
			//             | /
			//             b
			triangles = appendTriangle(triangles, &Triangle{bottom, l, p})
		}
		l = p
	}
	return triangles
}

// sortChains merges the two chains into one list from the top point down. The
// bottom point is left off the list and returned separately. The top point
// counts as being on the left chain.
func sortChains(polygon *Polygon) (sorted []*geom.Point, onLeft func(*geom.Point) bool, bottom *geom.Point) {
	points := polygon.Points
	n := len(points)

	top := 0
	for i, p := range points {
		if p.Above(*points[top]) {
			top = i
		}
	}

	leftChain := map[*geom.Point]struct{}{points[top]: {}}
	sorted = make([]*geom.Point, 0, n-1)
	sorted = append(sorted, points[top])

	// Counterclockwise from the top runs down the left chain; clockwise runs
	// down the right.
	leftOffset, rightOffset := 1, 1
	for {
		leftPoint := points[geom.CircularIndex(top+leftOffset, n)]
		rightPoint := points[geom.CircularIndex(top-rightOffset, n)]
		if leftPoint == rightPoint {
			bottom = leftPoint
			break
		}
		if leftPoint.Above(*rightPoint) {
			leftChain[leftPoint] = struct{}{}
			sorted = append(sorted, leftPoint)
			leftOffset++
		} else {
			sorted = append(sorted, rightPoint)
			rightOffset++
		}
	}

	onLeft = func(p *geom.Point) bool {
		_, ok := leftChain[p]
		return ok
	}
	return sorted, onLeft, bottom
}

// This is pulled out so that it's easy to add instrumentation.
func appendTriangle(triangles []*Triangle, tri *Triangle) []*Triangle {
	if IsCW(tri) {
		fatalf("triangle is clockwise: %v", tri)
	}
	return append(triangles, tri)
}
