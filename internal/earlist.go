package internal

// The ear list is a cyclic view of the vertices that haven't been clipped yet.
// Positions are logical offsets into the live list, and any integer position
// wraps modulo the current length, so pos-1 and pos+1 are always the cyclic
// neighbors. Removing an entry leaves every other entry's ear flag alone.

type earVertex struct {
	index int
	ear   bool
}

type EarList struct {
	vertices []earVertex
}

// A list over polygon vertices 0..n-1, with no ears flagged yet.
func NewEarList(n int) *EarList {
	list := &EarList{vertices: make([]earVertex, n)}
	for i := range list.vertices {
		list.vertices[i].index = i
	}
	return list
}

func (l *EarList) Len() int {
	return len(l.vertices)
}

// Polygon vertex index at a logical position.
func (l *EarList) Index(pos int) int {
	return l.vertices[CircularIndex(pos, len(l.vertices))].index
}

func (l *EarList) IsEar(pos int) bool {
	return l.vertices[CircularIndex(pos, len(l.vertices))].ear
}

func (l *EarList) SetEar(pos int, ear bool) {
	l.vertices[CircularIndex(pos, len(l.vertices))].ear = ear
}

// Position of the first vertex flagged as an ear, or -1.
func (l *EarList) FirstEar() int {
	for pos, v := range l.vertices {
		if v.ear {
			return pos
		}
	}
	return -1
}

// Remove the entry at a position. Afterwards, the old successor sits at the
// returned position (wrapped), and the old predecessor one before it.
func (l *EarList) Remove(pos int) int {
	pos = CircularIndex(pos, len(l.vertices))
	l.vertices = append(l.vertices[:pos], l.vertices[pos+1:]...)
	if len(l.vertices) == 0 {
		return 0
	}
	return CircularIndex(pos, len(l.vertices))
}

// Polygon vertex indices still in the list, in order.
func (l *EarList) Indices() []int {
	indices := make([]int, len(l.vertices))
	for i, v := range l.vertices {
		indices[i] = v.index
	}
	return indices
}
