package internal

import "sort"

// A Triangulation is the dual adjacency of a triangulated polygon, keyed by
// shared edges rather than by triangle. Every edge of every recorded triangle
// maps to the apexes of the triangles on either side of it: polygon boundary
// edges have exactly one, interior diagonals exactly two. That makes "the
// vertex across this edge" an O(1) lookup for the colorizer.
//
// Vertices are referenced only by their index in the owning polygon.
type Triangulation struct {
	vertexCount int
	apexes      map[Edge][]int
	triangles   []Triangle
	closed      bool
}

func NewTriangulation(vertexCount int) *Triangulation {
	return &Triangulation{
		vertexCount: vertexCount,
		apexes:      make(map[Edge][]int),
		triangles:   make([]Triangle, 0, max(vertexCount-2, 0)),
	}
}

// Register all three edges of a triangle at once, each with the opposite vertex
// as its apex.
func (t *Triangulation) AddTriangle(a, b, c int) {
	if t.closed {
		fatalf("cannot add triangle %d-%d-%d to a closed triangulation", a, b, c)
	}
	if a == b || b == c || a == c {
		fatalf("degenerate triangle %d-%d-%d", a, b, c)
	}
	t.addApex(NewEdge(a, b), c)
	t.addApex(NewEdge(b, c), a)
	t.addApex(NewEdge(c, a), b)
	t.triangles = append(t.triangles, Triangle{a, b, c})
}

func (t *Triangulation) addApex(e Edge, apex int) {
	list := t.apexes[e]
	if len(list) >= 2 {
		fatalf("edge %d-%d already borders two triangles (apexes %v), cannot add apex %d", e[0], e[1], list, apex)
	}
	for _, existing := range list {
		if existing == apex {
			fatalf("edge %d-%d already has apex %d", e[0], e[1], apex)
		}
	}
	t.apexes[e] = append(list, apex)
}

// Record the triangle cut off by clipping an ear. The diagonal joins the ear's
// predecessor to its successor and the apex is the ear itself. The triangle is
// stored as (predecessor, successor, apex).
func (t *Triangulation) Record(diagonal Edge, apex int) {
	t.AddTriangle(diagonal[0], diagonal[1], apex)
}

// Record the final triangle, then check that the adjacency is complete. Every
// diagonal recorded so far with one apex is still waiting on the triangle
// across it, and this is the last chance for it to arrive.
func (t *Triangulation) Close(diagonal Edge, apex int) {
	t.Record(diagonal, apex)
	for e, list := range t.apexes {
		want := 2
		if t.IsBoundary(e) {
			want = 1
		}
		if len(list) != want {
			fatalf("edge %d-%d has %d apexes after closing, expected %d", e[0], e[1], len(list), want)
		}
	}
	if len(t.triangles) != t.vertexCount-2 {
		fatalf("closed triangulation has %d triangles, expected %d", len(t.triangles), t.vertexCount-2)
	}
	t.closed = true
}

func (t *Triangulation) Closed() bool {
	return t.closed
}

func (t *Triangulation) VertexCount() int {
	return t.vertexCount
}

// Number of triangles.
func (t *Triangulation) Len() int {
	return len(t.triangles)
}

// Is the edge one of the polygon's sides?
func (t *Triangulation) IsBoundary(e Edge) bool {
	e = NewEdge(e[0], e[1])
	return e[1]-e[0] == 1 || (e[0] == 0 && e[1] == t.vertexCount-1)
}

// Apexes of the triangles bordering an edge, in the order they were recorded.
// Nil if the edge isn't part of the triangulation.
func (t *Triangulation) Apexes(e Edge) []int {
	list := t.apexes[NewEdge(e[0], e[1])]
	if list == nil {
		return nil
	}
	return append([]int(nil), list...)
}

// The apex on the other side of an edge from the given one. False when the
// edge is on the boundary, or unknown.
func (t *Triangulation) Across(e Edge, apex int) (int, bool) {
	for _, other := range t.apexes[NewEdge(e[0], e[1])] {
		if other != apex {
			return other, true
		}
	}
	return 0, false
}

// Triangles in the order they were recorded. C is the apex each was recorded
// with, so for a counterclockwise polygon A, C, B turns Left.
func (t *Triangulation) Triangles() []Triangle {
	return append([]Triangle(nil), t.triangles...)
}

// All edges of all triangles, sorted.
func (t *Triangulation) Edges() []Edge {
	edges := make([]Edge, 0, len(t.apexes))
	for e := range t.apexes {
		edges = append(edges, e)
	}
	sortEdges(edges)
	return edges
}

// Interior diagonals, those with a triangle on both sides, sorted.
func (t *Triangulation) Diagonals() []Edge {
	var diagonals []Edge
	for e, list := range t.apexes {
		if len(list) == 2 {
			diagonals = append(diagonals, e)
		}
	}
	sortEdges(diagonals)
	return diagonals
}

// The edge coloring starts from by default: the diagonal of the first recorded
// triangle.
func (t *Triangulation) Seed() (Edge, bool) {
	if len(t.triangles) == 0 {
		return Edge{}, false
	}
	first := t.triangles[0]
	return NewEdge(first.A, first.B), true
}

func sortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
}
