// Ear clipping triangulation and three coloring of simple polygons for Go.
//
// Given the vertices of a simple polygon in counterclockwise order, this
// package cuts it into triangles by repeatedly clipping ears, records the
// triangulation as a dual adjacency keyed by edge, and then colors every vertex
// with one of three colors so that each triangle shows all three. The vertices
// of the least used color are a guard set for the polygon (the art gallery
// theorem).
package artgallery

import (
	"github.com/pkg/errors"

	"github.com/osuushi/artgallery/internal"
)

type Point = internal.Point
type Polygon = internal.Polygon
type Edge = internal.Edge
type Triangle = internal.Triangle
type Triangulation = internal.Triangulation
type Color = internal.Color
type Event = internal.Event
type EventKind = internal.EventKind
type Observer = internal.Observer

const (
	NoColor = internal.NoColor
	Red     = internal.Red
	Green   = internal.Green
	Blue    = internal.Blue
)

const (
	EarClipped          = internal.EarClipped
	TriangulationClosed = internal.TriangulationClosed
	VertexColored       = internal.VertexColored
)

var (
	ErrDegeneratePolygon       = internal.ErrDegeneratePolygon
	ErrSelfIntersectingPolygon = internal.ErrSelfIntersectingPolygon
	ErrClockwisePolygon        = internal.ErrClockwisePolygon
)

// Combine several observers into one.
func Observers(observers ...Observer) Observer {
	return internal.Observers(observers...)
}

func NewEdge(a, b int) Edge {
	return internal.NewEdge(a, b)
}

// Check that a polygon can be triangulated: at least three vertices, nonzero
// area, no self intersections, and counterclockwise winding.
func Validate(poly *Polygon) error {
	return internal.Validate(poly)
}

// Triangulate a simple polygon. The points must wind counterclockwise.
//
// The polygon is validated first, and any problem found is returned as an
// error wrapping one of the Err* values.
func Triangulate(poly *Polygon, observer Observer) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := internal.Validate(poly); err != nil {
		return nil, err
	}
	return poly.EarClipping(observer), nil
}

// Triangulate without the validation pass. Input that is not a simple
// counterclockwise polygon may still be caught when no ear can be found.
func TriangulateUnchecked(poly *Polygon, observer Observer) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if poly.Len() < 3 {
		return nil, errors.Wrapf(ErrDegeneratePolygon, "need at least 3 vertices, got %d", poly.Len())
	}
	return poly.EarClipping(observer), nil
}

// Triangulate a simple polygon, then three color its vertices. Colors are
// written to the polygon's points.
func Guard(poly *Polygon, observer Observer) (*Triangulation, error) {
	triangulation, err := Triangulate(poly, observer)
	if err != nil {
		return nil, err
	}
	if err := Colorize(poly, triangulation, observer); err != nil {
		return nil, err
	}
	return triangulation, nil
}

// Three color a triangulated polygon, starting from the first recorded
// triangle. Colors already on the polygon are cleared first.
func Colorize(poly *Polygon, triangulation *Triangulation, observer Observer) (err error) {
	defer func() {
		err = internal.HandleTriangulatePanicRecover(recover())
	}()
	poly.ResetColors()
	poly.Colorize(triangulation, observer)
	return nil
}

// Like Colorize, but starting from the triangle on a chosen edge.
func ColorizeFrom(poly *Polygon, triangulation *Triangulation, seed Edge, observer Observer) (err error) {
	defer func() {
		err = internal.HandleTriangulatePanicRecover(recover())
	}()
	poly.ResetColors()
	poly.ColorizeFrom(triangulation, seed, observer)
	return nil
}

// Make a polygon from points, labeling them 1..n in order.
func NewPolygon(coords ...[2]float64) *Polygon {
	poly := &Polygon{Points: make([]*Point, len(coords))}
	for i, c := range coords {
		poly.Points[i] = &Point{Label: i + 1, X: c[0], Y: c[1]}
	}
	return poly
}

// Return the polygon wound counterclockwise, reversing it if needed. Labels
// travel with their points.
func EnsureCCW(poly *Polygon) *Polygon {
	if internal.IsCW(poly.Points) {
		return poly.Reverse()
	}
	return poly
}

// Vertex indices of the least used color after coloring.
func Guards(poly *Polygon) []int {
	return poly.Guards()
}
