package render

import (
	"go.uber.org/zap"

	"github.com/osuushi/artgallery"
)

// Log each event at debug level with structured fields. Vertices are reported
// by label, the same names the trace uses.
func LogObserver(logger *zap.Logger, poly *artgallery.Polygon) artgallery.Observer {
	label := func(vertex int) int {
		return poly.Points[vertex].Label
	}
	return func(e artgallery.Event) {
		switch e.Kind {
		case artgallery.EarClipped, artgallery.TriangulationClosed:
			logger.Debug(e.Kind.String(),
				zap.Ints("diagonal", []int{label(e.Diagonal[0]), label(e.Diagonal[1])}),
				zap.Int("apex", label(e.Apex)),
			)
		case artgallery.VertexColored:
			logger.Debug(e.Kind.String(),
				zap.Int("vertex", label(e.Vertex)),
				zap.Stringer("color", e.Color),
			)
		}
	}
}
