package internal

import "github.com/pkg/errors"

// Ear clipping trusts its input. Validate is the optional check that callers
// can run first; it catches the inputs that would otherwise produce garbage
// triangulations or a panic halfway through clipping.

var (
	ErrDegeneratePolygon       = errors.New("degenerate polygon")
	ErrSelfIntersectingPolygon = errors.New("self-intersecting polygon")
	ErrClockwisePolygon        = errors.New("clockwise polygon")
)

func Validate(poly *Polygon) error {
	n := len(poly.Points)
	if n < 3 {
		return errors.Wrapf(ErrDegeneratePolygon, "need at least 3 vertices, got %d", n)
	}

	area := SignedArea(poly.Points)
	if Equal(area, 0) {
		return errors.Wrap(ErrDegeneratePolygon, "polygon has zero area")
	}

	for i := 0; i < n; i++ {
		a0, a1 := poly.Points[i], poly.Points[CircularIndex(i+1, n)]
		for j := i + 1; j < n; j++ {
			b0, b1 := poly.Points[j], poly.Points[CircularIndex(j+1, n)]
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				// Neighbors share a vertex. They only conflict if they fold back
				// over each other.
				if overlapsAdjacent(a0, a1, b0, b1) {
					return errors.Wrapf(ErrSelfIntersectingPolygon, "edges %d-%d and %d-%d overlap", a0.Label, a1.Label, b0.Label, b1.Label)
				}
				continue
			}
			if SegmentsIntersect(a0, a1, b0, b1) {
				return errors.Wrapf(ErrSelfIntersectingPolygon, "edges %d-%d and %d-%d intersect", a0.Label, a1.Label, b0.Label, b1.Label)
			}
		}
	}

	if area < 0 {
		return errors.Wrap(ErrClockwisePolygon, "vertices must wind counterclockwise")
	}
	return nil
}

// Do the closed segments p0-p1 and q0-q1 share any point?
func SegmentsIntersect(p0, p1, q0, q1 *Point) bool {
	o1 := Orient(p0, p1, q0)
	o2 := Orient(p0, p1, q1)
	o3 := Orient(q0, q1, p0)
	o4 := Orient(q0, q1, p1)

	if o1 != o2 && o3 != o4 && o1 != Collinear && o2 != Collinear && o3 != Collinear && o4 != Collinear {
		return true
	}

	// Touching or collinear cases
	return (o1 == Collinear && onSegment(p0, p1, q0)) ||
		(o2 == Collinear && onSegment(p0, p1, q1)) ||
		(o3 == Collinear && onSegment(q0, q1, p0)) ||
		(o4 == Collinear && onSegment(q0, q1, p1))
}

// Two edges that share an endpoint overlap if the far endpoint of either one
// lies on the other.
func overlapsAdjacent(a0, a1, b0, b1 *Point) bool {
	var shared, aFar, bFar *Point
	switch {
	case a1 == b0:
		shared, aFar, bFar = a1, a0, b1
	case a0 == b1:
		shared, aFar, bFar = a0, a1, b0
	default:
		return SegmentsIntersect(a0, a1, b0, b1)
	}
	return (Orient(shared, aFar, bFar) == Collinear && onSegment(shared, aFar, bFar)) ||
		(Orient(shared, bFar, aFar) == Collinear && onSegment(shared, bFar, aFar))
}

// For a point already known to be collinear with a-b, is it within the box?
func onSegment(a, b, p *Point) bool {
	return p.X >= min(a.X, b.X) && p.X <= max(a.X, b.X) &&
		p.Y >= min(a.Y, b.Y) && p.Y <= max(a.Y, b.Y)
}
