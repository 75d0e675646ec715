package internal

// Three coloring of a triangulated polygon, the construction behind the art
// gallery theorem: every triangle sees all three colors, so placing a guard on
// each vertex of the least used color covers the whole polygon.
//
// Coloring starts from one triangle and walks the dual graph. Crossing an edge
// (a, b) from a triangle whose third vertex is o, the new triangle shares a and
// b, so its apex is forced to o's color. The dual graph of a simple polygon's
// triangulation is a tree, so every triangle is entered exactly once and no
// vertex is ever asked to take a second color.

type Color int

const (
	NoColor Color = iota
	Red
	Green
	Blue
)

var Palette = [3]Color{Red, Green, Blue}

func (c Color) String() string {
	switch c {
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	default:
		return "-"
	}
}

// Color from the first recorded triangle.
func (poly *Polygon) Colorize(triangulation *Triangulation, observer Observer) {
	seed, ok := triangulation.Seed()
	if !ok {
		fatalf("cannot colorize an empty triangulation")
	}
	poly.ColorizeFrom(triangulation, seed, observer)
}

// Color starting from the triangle recorded first against the seed edge. Any
// edge of the triangulation works; different seeds give the same partition of
// vertices up to a permutation of the color names.
func (poly *Polygon) ColorizeFrom(triangulation *Triangulation, seed Edge, observer Observer) {
	if triangulation.VertexCount() != len(poly.Points) {
		fatalf("triangulation covers %d vertices but the polygon has %d", triangulation.VertexCount(), len(poly.Points))
	}
	seed = NewEdge(seed[0], seed[1])
	apexes := triangulation.Apexes(seed)
	if len(apexes) == 0 {
		fatalf("seed edge %d-%d is not part of the triangulation", seed[0], seed[1])
	}
	apex := apexes[0]

	paint := func(vertex int, c Color) {
		poly.Points[vertex].paint(c)
		observer.emit(Event{Kind: VertexColored, Vertex: vertex, Color: c})
	}
	paint(seed[0], Palette[0])
	paint(seed[1], Palette[1])
	paint(apex, Palette[2])

	var stack WorkStack
	stack.Push(EdgeWork{A: seed[0], B: apex, Opposite: seed[1]})
	stack.Push(EdgeWork{A: seed[1], B: apex, Opposite: seed[0]})
	stack.Push(EdgeWork{A: seed[0], B: seed[1], Opposite: apex})

	for {
		work, ok := stack.Pop()
		if !ok {
			break
		}
		next, ok := triangulation.Across(NewEdge(work.A, work.B), work.Opposite)
		if !ok {
			// Boundary edge, nothing on the other side.
			continue
		}
		if poly.Points[next].Color() != NoColor {
			// Only reachable if the dual graph has a cycle. Don't revisit.
			continue
		}
		paint(next, poly.Points[work.Opposite].Color())
		stack.Push(EdgeWork{A: work.A, B: next, Opposite: work.B})
		stack.Push(EdgeWork{A: work.B, B: next, Opposite: work.A})
	}
}

// Vertex indices holding each color, in palette order.
func (poly *Polygon) ColorClasses() map[Color][]int {
	classes := make(map[Color][]int, len(Palette))
	for i, p := range poly.Points {
		if p.color != NoColor {
			classes[p.color] = append(classes[p.color], i)
		}
	}
	return classes
}

// Vertices of the least used color. Guards placed there see the whole polygon.
func (poly *Polygon) Guards() []int {
	classes := poly.ColorClasses()
	var guards []int
	for i, c := range Palette {
		if i == 0 || len(classes[c]) < len(guards) {
			guards = classes[c]
		}
	}
	return guards
}
