package internal

// The core never writes output. Instead it reports progress through an
// Observer, and callers decide whether to render, log, or ignore it.

type EventKind int

const (
	// An ear was removed. Diagonal joins its neighbors, Apex is the ear.
	EarClipped EventKind = iota
	// The last three vertices were recorded as the closing triangle.
	TriangulationClosed
	// Vertex was assigned Color.
	VertexColored
)

func (k EventKind) String() string {
	switch k {
	case EarClipped:
		return "EarClipped"
	case TriangulationClosed:
		return "TriangulationClosed"
	case VertexColored:
		return "VertexColored"
	default:
		return "Unknown"
	}
}

type Event struct {
	Kind     EventKind
	Diagonal Edge
	Apex     int
	Vertex   int
	Color    Color
}

// A nil Observer is valid and ignores everything.
type Observer func(Event)

func (o Observer) emit(e Event) {
	if o != nil {
		o(e)
	}
}

// Combine several observers into one. Nil observers are skipped.
func Observers(observers ...Observer) Observer {
	return func(e Event) {
		for _, o := range observers {
			o.emit(e)
		}
	}
}
