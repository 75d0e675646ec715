package render

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"

	"github.com/osuushi/artgallery"
)

// Human readable narration of what the core is doing, one line per event:
//
//	-> added diagonal 6-2 to the triangulation
//	-> colored vertex 3 with R
//
// Vertices are named by label. With colors on, diagonals are highlighted and
// each vertex color is printed in its own color.
type Trace struct {
	w       io.Writer
	poly    *artgallery.Polygon
	au      aurora.Aurora
	section artgallery.EventKind
	started bool
}

func NewTrace(w io.Writer, poly *artgallery.Polygon, colors bool) *Trace {
	return &Trace{w: w, poly: poly, au: aurora.NewAurora(colors)}
}

func (t *Trace) Observer() artgallery.Observer {
	return t.Handle
}

func (t *Trace) Handle(e artgallery.Event) {
	t.header(e.Kind)
	switch e.Kind {
	case artgallery.EarClipped, artgallery.TriangulationClosed:
		a, b := t.label(e.Diagonal[0]), t.label(e.Diagonal[1])
		fmt.Fprintf(t.w, " -> added diagonal %s to the triangulation\n", t.au.Cyan(fmt.Sprintf("%d-%d", a, b)))
	case artgallery.VertexColored:
		fmt.Fprintf(t.w, " -> colored vertex %d with %s\n", t.label(e.Vertex), t.color(e.Color))
	}
}

// Print a section title the first time an event of a new phase arrives.
func (t *Trace) header(kind artgallery.EventKind) {
	if kind == artgallery.TriangulationClosed {
		kind = artgallery.EarClipped
	}
	if t.started && t.section == kind {
		return
	}
	t.started = true
	t.section = kind
	title := "Ear Clipping"
	if kind == artgallery.VertexColored {
		title = "Coloring"
	}
	fmt.Fprintf(t.w, "\n %s\n", t.au.Bold(title))
}

func (t *Trace) label(vertex int) int {
	return t.poly.Points[vertex].Label
}

func (t *Trace) color(c artgallery.Color) aurora.Value {
	return Colorize(t.au, c)
}

// Wrap a vertex color's name in the matching terminal color.
func Colorize(au aurora.Aurora, c artgallery.Color) aurora.Value {
	switch c {
	case artgallery.Red:
		return au.Red(c.String())
	case artgallery.Green:
		return au.Green(c.String())
	case artgallery.Blue:
		return au.Blue(c.String())
	default:
		return au.Gray(12, c.String())
	}
}

// List the polygon's vertices, with their colors if requested:
//
//	Vertex 1: (0, 0) -> Color: B
func WritePolygon(w io.Writer, title string, poly *artgallery.Polygon, withColor bool, colors bool) {
	au := aurora.NewAurora(colors)
	fmt.Fprintf(w, "\n %s\n", au.Bold(title))
	for _, p := range poly.Points {
		fmt.Fprintf(w, "Vertex %d: (%v, %v)", p.Label, p.X, p.Y)
		if withColor {
			fmt.Fprintf(w, " -> Color: %s", Colorize(au, p.Color()))
		}
		fmt.Fprintln(w)
	}
}

// One line naming the guard vertices by label.
func WriteGuards(w io.Writer, poly *artgallery.Polygon, colors bool) {
	au := aurora.NewAurora(colors)
	guards := artgallery.Guards(poly)
	labels := make([]int, len(guards))
	for i, g := range guards {
		labels[i] = poly.Points[g].Label
	}
	color := artgallery.NoColor
	if len(guards) > 0 {
		color = poly.Points[guards[0]].Color()
	}
	fmt.Fprintf(w, "\n %s %v (color %s)\n", au.Bold("Guards:"), labels, Colorize(au, color))
}
