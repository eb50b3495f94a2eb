package monotone

import (
	"math"
	"slices"

	"github.com/osuushi/polysample/geom"
)

// Splitting a simple polygon into y-monotone pieces. A line sweeps from the
// top point down. Wherever the boundary turns back on itself (a split vertex,
// where a notch opens downward, or a merge vertex, where one closes) a diagonal
// is added toward a vertex the sweep has already passed or is about to pass.
// Cutting the polygon along all of the diagonals leaves pieces that are each
// y-monotone.
//
// Edge i runs from vertex i to vertex i+1. The sweep status holds the edges
// that have the polygon's inside on their right at the current height, each
// with its helper: the lowest vertex seen so far that a diagonal from below
// could connect to.
//
// Heights use the same lexicographic order as TriangulateMonotone.

type vertexKind int

const (
	regularVertex vertexKind = iota
	startVertex
	endVertex
	splitVertex
	mergeVertex
)

func (k vertexKind) String() string {
	switch k {
	case startVertex:
		return "start"
	case endVertex:
		return "end"
	case splitVertex:
		return "split"
	case mergeVertex:
		return "merge"
	}
	return "regular"
}

type statusEdge struct {
	edge   int
	helper int
}

type sweep struct {
	points    []*geom.Point
	kinds     []vertexKind
	status    []statusEdge
	diagonals [][2]int
}

func newSweep(polygon *Polygon) *sweep {
	n := len(polygon.Points)
	s := &sweep{points: polygon.Points, kinds: make([]vertexKind, n)}
	for i := range s.points {
		s.kinds[i] = s.classify(i)
	}
	return s
}

func (s *sweep) at(i int) *geom.Point {
	return s.points[geom.CircularIndex(i, len(s.points))]
}

func (s *sweep) classify(i int) vertexKind {
	prev, v, next := s.at(i-1), s.at(i), s.at(i+1)
	convex := geom.Orient(*prev, *v, *next) > 0
	switch {
	case prev.Below(*v) && next.Below(*v):
		if convex {
			return startVertex
		}
		return splitVertex
	case v.Below(*prev) && v.Below(*next):
		if convex {
			return endVertex
		}
		return mergeVertex
	}
	return regularVertex
}

// SplitMonotone cuts a counterclockwise simple polygon into y-monotone pieces.
// The pieces share the input's point pointers and are counterclockwise too.
func SplitMonotone(polygon *Polygon) []Polygon {
	s := newSweep(polygon)
	s.run()
	return s.cut()
}

func (s *sweep) run() {
	order := make([]int, len(s.points))
	for i := range order {
		order[i] = i
	}
	// Top down
	slices.SortFunc(order, func(a, b int) int {
		switch {
		case s.points[b].Below(*s.points[a]):
			return -1
		case s.points[a].Below(*s.points[b]):
			return 1
		}
		return 0
	})

	for _, i := range order {
		switch s.kinds[i] {
		case startVertex:
			s.insert(i, i)
		case endVertex:
			s.finishEdge(i, s.prevEdge(i))
		case splitVertex:
			left := s.edgeLeftOf(i)
			s.addDiagonal(i, left.helper)
			left.helper = i
			s.insert(i, i)
		case mergeVertex:
			s.finishEdge(i, s.prevEdge(i))
			left := s.edgeLeftOf(i)
			s.connectIfMerge(i, left)
			left.helper = i
		case regularVertex:
			if s.at(i + 1).Below(*s.points[i]) {
				// Going down the left side, so the inside is to the right
				s.finishEdge(i, s.prevEdge(i))
				s.insert(i, i)
			} else {
				left := s.edgeLeftOf(i)
				s.connectIfMerge(i, left)
				left.helper = i
			}
		}
	}
}

func (s *sweep) prevEdge(i int) int {
	return geom.CircularIndex(i-1, len(s.points))
}

func (s *sweep) insert(edge, helper int) {
	s.status = append(s.status, statusEdge{edge: edge, helper: helper})
}

// finishEdge handles the sweep reaching the bottom of an edge at vertex i.
func (s *sweep) finishEdge(i, edge int) {
	for j := range s.status {
		if s.status[j].edge == edge {
			s.connectIfMerge(i, &s.status[j])
			s.status = slices.Delete(s.status, j, j+1)
			return
		}
	}
	fatalf("edge %d ending at %v is missing from the sweep status", edge, *s.points[i])
}

func (s *sweep) connectIfMerge(i int, e *statusEdge) {
	if s.kinds[e.helper] == mergeVertex {
		s.addDiagonal(i, e.helper)
	}
}

func (s *sweep) addDiagonal(a, b int) {
	s.diagonals = append(s.diagonals, [2]int{a, b})
}

// edgeLeftOf finds the status edge directly to the left of vertex i. The
// returned pointer is only valid until the status next changes.
func (s *sweep) edgeLeftOf(i int) *statusEdge {
	v := *s.points[i]
	var (
		best  *statusEdge
		bestX = math.Inf(-1)
	)
	for j := range s.status {
		upper, lower := s.at(s.status[j].edge), s.at(s.status[j].edge+1)
		if geom.Orient(*lower, *upper, v) >= 0 {
			continue
		}
		if x := xAt(*upper, *lower, v.Y); best == nil || x > bestX {
			best, bestX = &s.status[j], x
		}
	}
	if best == nil {
		fatalf("no edge to the left of %s vertex %v", s.kinds[i], v)
	}
	return best
}

// xAt is where the line through a and b crosses height y.
func xAt(a, b geom.Point, y float64) float64 {
	if a.Y == b.Y {
		return math.Max(a.X, b.X)
	}
	return a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
}

// cut applies the diagonals. Each one is made in the piece that holds both of
// its ends with the diagonal running through its inside.
func (s *sweep) cut() []Polygon {
	whole := make([]int, len(s.points))
	for i := range whole {
		whole[i] = i
	}
	pieces := [][]int{whole}

	for _, d := range s.diagonals {
		found := false
		for p, piece := range pieces {
			ia, ib := slices.Index(piece, d[0]), slices.Index(piece, d[1])
			if ia < 0 || ib < 0 {
				continue
			}
			n := len(piece)
			if geom.CircularIndex(ia-ib, n) == 1 || geom.CircularIndex(ib-ia, n) == 1 {
				// Already an edge of this piece
				found = true
				break
			}
			if !s.inCone(piece, ia, d[1]) || !s.inCone(piece, ib, d[0]) {
				continue
			}
			first, second := cutCycle(piece, ia, ib)
			pieces[p] = first
			pieces = append(pieces, second)
			found = true
			break
		}
		if !found {
			fatalf("no piece can take the diagonal %v-%v", *s.points[d[0]], *s.points[d[1]])
		}
	}

	result := make([]Polygon, len(pieces))
	for i, piece := range pieces {
		points := make([]*geom.Point, len(piece))
		for j, k := range piece {
			points[j] = s.points[k]
		}
		result[i] = Polygon{Points: points}
	}
	return result
}

// inCone reports whether the segment from piece[ia] to vertex b starts out
// inside the piece, between the two boundary edges at piece[ia].
func (s *sweep) inCone(piece []int, ia, b int) bool {
	n := len(piece)
	a := *s.points[piece[ia]]
	prev := *s.points[piece[geom.CircularIndex(ia-1, n)]]
	next := *s.points[piece[geom.CircularIndex(ia+1, n)]]
	target := *s.points[b]

	if geom.Orient(a, next, prev) >= 0 {
		// Convex corner: the target has to be strictly inside the wedge.
		return geom.Orient(a, target, prev) > 0 && geom.Orient(target, a, next) > 0
	}
	// Reflex corner: anything outside the outside wedge will do.
	return !(geom.Orient(a, target, next) >= 0 && geom.Orient(target, a, prev) >= 0)
}

// cutCycle splits a cyclic index list along the chord between positions i and
// j. Both halves keep the cycle's orientation and include both ends.
func cutCycle(cycle []int, i, j int) (first, second []int) {
	n := len(cycle)
	for k := i; ; k = geom.CircularIndex(k+1, n) {
		first = append(first, cycle[k])
		if k == j {
			break
		}
	}
	for k := j; ; k = geom.CircularIndex(k+1, n) {
		second = append(second, cycle[k])
		if k == i {
			break
		}
	}
	return first, second
}
