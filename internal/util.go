package internal

import "math"

// Only used for area comparisons. The orientation predicate is exact and never
// consults this.
const Epsilon = 1e-9

// To compensate for imprecision in floats, area comparisons are tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Cross product of (b-a) and (c-b). Positive means the path a->b->c turns left.
func Turn(a, b, c *Point) float64 {
	v1x, v1y := b.X-a.X, b.Y-a.Y
	v2x, v2y := c.X-b.X, c.Y-b.Y
	return v1x*v2y - v2x*v1y
}

// Orient is the only convexity and containment predicate in the package. Every
// caller relies on this sign convention, so don't swap in a different formula.
func Orient(a, b, c *Point) Orientation {
	turn := Turn(a, b, c)
	switch {
	case turn > 0:
		return Left
	case turn < 0:
		return Right
	default:
		return Collinear
	}
}

// Does a vertical ray from p cross the edge e0-e1? The edge is normalized so
// that its lower-x endpoint comes first, and the x test is half open (strictly
// after the first endpoint, at or before the second). That way a ray passing
// exactly through a vertex shared by two edges counts only one of them.
func VerticalIntersects(p, e0, e1 *Point) bool {
	if e0.X > e1.X {
		e0, e1 = e1, e0
	}
	return p.X > e0.X && p.X <= e1.X && Orient(e0, e1, p) != Right
}

// Crossing count helper for the even-odd rule. Edges are walked as (i-1, i),
// so the closing edge comes first.
func CrossingCount(vertices []*Point, p *Point) int {
	crossingCount := 0
	for i, vertex := range vertices {
		previous := vertices[CircularIndex(i-1, len(vertices))]
		if VerticalIntersects(p, previous, vertex) {
			crossingCount++
		}
	}
	return crossingCount
}

// Ray casting point-in-polygon.
func ContainsPoint(vertices []*Point, p *Point) bool {
	return CrossingCount(vertices, p)%2 == 1
}

// Shoelace formula. Positive for counterclockwise vertex lists.
func SignedArea(vertices []*Point) float64 {
	var sum float64
	for i, vertex := range vertices {
		next := vertices[CircularIndex(i+1, len(vertices))]
		sum += vertex.X*next.Y - next.X*vertex.Y
	}
	return sum / 2
}

func Area(vertices []*Point) float64 {
	return math.Abs(SignedArea(vertices))
}

func IsCCW(vertices []*Point) bool {
	return SignedArea(vertices) > 0
}

func IsCW(vertices []*Point) bool {
	return SignedArea(vertices) < 0
}

// A simple LIFO of work items, used by the colorizer.
type EdgeWork struct {
	A, B     int
	Opposite int
}

type WorkStack []EdgeWork

func (s *WorkStack) Push(w EdgeWork) {
	*s = append(*s, w)
}

func (s *WorkStack) Pop() (EdgeWork, bool) {
	if len(*s) == 0 {
		return EdgeWork{}, false
	}
	w := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return w, true
}

func (s *WorkStack) Empty() bool {
	return len(*s) == 0
}
