package render

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/osuushi/artgallery"
)

// Machine readable summary of a run. Everything is named by vertex label.
type Report struct {
	Vertices  []VertexReport `yaml:"vertices"`
	Triangles [][3]int       `yaml:"triangles"`
	Diagonals [][2]int       `yaml:"diagonals"`
	Guards    []int          `yaml:"guards,flow"`
}

type VertexReport struct {
	Label int     `yaml:"label"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Color string  `yaml:"color,omitempty"`
}

func NewReport(poly *artgallery.Polygon, triangulation *artgallery.Triangulation) *Report {
	label := func(vertex int) int {
		return poly.Points[vertex].Label
	}

	report := &Report{}
	for _, p := range poly.Points {
		v := VertexReport{Label: p.Label, X: p.X, Y: p.Y}
		if p.Color() != artgallery.NoColor {
			v.Color = p.Color().String()
		}
		report.Vertices = append(report.Vertices, v)
	}
	for _, tri := range triangulation.Triangles() {
		report.Triangles = append(report.Triangles, [3]int{label(tri.A), label(tri.B), label(tri.C)})
	}
	for _, d := range triangulation.Diagonals() {
		report.Diagonals = append(report.Diagonals, [2]int{label(d[0]), label(d[1])})
	}
	for _, g := range artgallery.Guards(poly) {
		report.Guards = append(report.Guards, label(g))
	}
	return report
}

func (r *Report) WriteYAML(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(r); err != nil {
		return errors.Wrap(err, "encoding report")
	}
	return errors.Wrap(encoder.Close(), "encoding report")
}
