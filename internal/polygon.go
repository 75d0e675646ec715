package internal

// Polygons are interpreted cyclically: the last point connects back to the
// first. Ear clipping assumes counterclockwise winding, since an ear must turn
// Left.

func (poly *Polygon) Len() int {
	return len(poly.Points)
}

// Edges in the order (i-1, i), so the closing edge comes first.
func (poly *Polygon) Segments() [][2]*Point {
	segments := make([][2]*Point, 0, len(poly.Points))
	for i, vertex := range poly.Points {
		segments = append(segments, [2]*Point{poly.Points[CircularIndex(i-1, len(poly.Points))], vertex})
	}
	return segments
}

// Even-odd point-in-polygon.
func (poly *Polygon) Contains(p *Point) bool {
	return ContainsPoint(poly.Points, p)
}

func (poly *Polygon) Reverse() *Polygon {
	newPoly := &Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Clear every vertex color so the polygon can be colored again.
func (poly *Polygon) ResetColors() {
	for _, p := range poly.Points {
		p.color = NoColor
	}
}

// Find a vertex index by label. Returns -1 if no vertex carries the label.
func (poly *Polygon) IndexOfLabel(label int) int {
	for i, p := range poly.Points {
		if p.Label == label {
			return i
		}
	}
	return -1
}

func (p *Point) Color() Color {
	return p.color
}

// Colors are write once. Painting an already colored vertex means the
// propagation invariant was broken somewhere.
func (p *Point) paint(c Color) {
	if p.color != NoColor {
		fatalf("vertex %d is already colored %s, refusing to paint it %s", p.Label, p.color, c)
	}
	p.color = c
}
