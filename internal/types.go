package internal

// Points are owned by their Polygon. Everything downstream of the polygon
// (the ear list, the triangulation, the colorizer's stack) refers to vertices
// by their index in Polygon.Points, never by pointer.
type Point struct {
	// Label is only used for reporting. It is not required to be unique.
	Label int
	X     float64
	Y     float64
	color Color
}

type Polygon struct {
	Points []*Point
}

// Polygon edge or diagonal, by vertex index. NewEdge normalizes it so the
// smaller index comes first, which is the form used for map keys. Ear clipping
// reports diagonals unnormalized, as (predecessor, successor) of the ear.
type Edge [2]int

// A triangle of the triangulation, by vertex index.
type Triangle struct {
	A, B, C int
}

type Orientation int

const (
	Collinear Orientation = iota
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Collinear"
	}
}

func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Has reports whether the vertex is one of the edge's endpoints.
func (e Edge) Has(vertex int) bool {
	return e[0] == vertex || e[1] == vertex
}

// Other returns the endpoint that isn't the given vertex.
func (e Edge) Other(vertex int) int {
	if e[0] == vertex {
		return e[1]
	}
	return e[0]
}

func (t Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.A, t.B), NewEdge(t.B, t.C), NewEdge(t.C, t.A)}
}

func (t Triangle) Vertices() [3]int {
	return [3]int{t.A, t.B, t.C}
}

func (t Triangle) Has(vertex int) bool {
	return t.A == vertex || t.B == vertex || t.C == vertex
}
