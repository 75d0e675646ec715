package internal

// Ear clipping triangulation. An ear is a vertex where the polygon turns Left
// (so the polygon must be counterclockwise) and whose triangle with its two
// neighbors contains no other remaining vertex. Every simple polygon with more
// than three vertices has at least two ears, so we can always clip one, record
// its triangle, and continue with a polygon one vertex smaller.
//
// Each candidate costs a scan of the remaining vertices, making this O(n^2).
// Which ear gets clipped each round doesn't matter for correctness; we take the
// first one in list order.

func (poly *Polygon) EarClipping(observer Observer) *Triangulation {
	n := len(poly.Points)
	if n < 3 {
		fatalf("cannot triangulate degenerate polygon with point count: %d", n)
	}

	remaining := NewEarList(n)
	for pos := 0; pos < remaining.Len(); pos++ {
		remaining.SetEar(pos, poly.IsEar(remaining, pos))
	}

	triangulation := NewTriangulation(n)
	// Position of the vertex the final triangle is built around. For a plain
	// triangle nothing is ever clipped and this is just the first vertex.
	pos := 0
	for remaining.Len() > 3 {
		ear := remaining.FirstEar()
		if ear < 0 {
			fatalf("no ear found among %d remaining vertices; the polygon is not simple or not counterclockwise", remaining.Len())
		}

		diagonal := Edge{remaining.Index(ear-1), remaining.Index(ear+1)}
		apex := remaining.Index(ear)
		triangulation.Record(diagonal, apex)
		observer.emit(Event{Kind: EarClipped, Diagonal: diagonal, Apex: apex})

		pos = remaining.Remove(ear)

		// Only the two neighbors of the removed ear can change status.
		remaining.SetEar(pos-1, poly.IsEar(remaining, pos-1))
		remaining.SetEar(pos, poly.IsEar(remaining, pos))
	}

	diagonal := Edge{remaining.Index(pos-1), remaining.Index(pos+1)}
	apex := remaining.Index(pos)
	triangulation.Close(diagonal, apex)
	observer.emit(Event{Kind: TriangulationClosed, Diagonal: diagonal, Apex: apex})
	return triangulation
}

// Is the vertex at a position of the ear list an ear of the remaining polygon?
func (poly *Polygon) IsEar(remaining *EarList, pos int) bool {
	previous := poly.Points[remaining.Index(pos-1)]
	point := poly.Points[remaining.Index(pos)]
	next := poly.Points[remaining.Index(pos+1)]

	if Orient(previous, point, next) != Left {
		return false
	}

	triangle := []*Point{previous, point, next}
	// Every other remaining vertex, walking forward from the one after next.
	for offset := 2; offset < remaining.Len()-1; offset++ {
		if ContainsPoint(triangle, poly.Points[remaining.Index(pos+offset)]) {
			return false
		}
	}
	return true
}
