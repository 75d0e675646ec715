package render

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/osuushi/artgallery"
	"github.com/osuushi/artgallery/dbg"
)

// Padding around the shape, in pixels
const drawPadding = 40

var vertexColors = map[artgallery.Color]color.Color{
	artgallery.NoColor: colornames.Dimgray,
	artgallery.Red:     colornames.Crimson,
	artgallery.Green:   colornames.Forestgreen,
	artgallery.Blue:    colornames.Royalblue,
}

type DrawOptions struct {
	// Pixels per polygon unit
	Scale float64
	// Write a readable name in each triangle
	NameTriangles bool
}

// Draw the polygon, its triangulation, and its vertex colors. The y axis points
// up, as in the input coordinates.
func Draw(poly *artgallery.Polygon, triangulation *artgallery.Triangulation, opts DrawOptions) *gg.Context {
	scale := opts.Scale
	if scale <= 0 {
		scale = 50
	}

	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, p := range poly.Points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetColor(colornames.Black)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	// Fill the polygon
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGBA(0, 0.5, 0, 0.5)
	c.Fill()

	if triangulation != nil {
		// Diagonals are thin, the boundary is drawn over them below
		c.SetLineWidth(1)
		c.SetRGB(0.8, 0.8, 0.8)
		for _, d := range triangulation.Diagonals() {
			a, b := poly.Points[d[0]], poly.Points[d[1]]
			c.DrawLine(a.X, a.Y, b.X, b.Y)
			c.Stroke()
		}
		if opts.NameTriangles {
			for _, tri := range triangulation.Triangles() {
				a, b, t := poly.Points[tri.A], poly.Points[tri.B], poly.Points[tri.C]
				drawText(c, dbg.Name(tri), (a.X+b.X+t.X)/3, (a.Y+b.Y+t.Y)/3)
			}
		}
	}

	c.SetLineWidth(3)
	c.SetColor(colornames.Cyan)
	c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
	for _, p := range poly.Points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.Stroke()

	// Vertices, with labels
	for _, p := range poly.Points {
		c.SetColor(vertexColors[p.Color()])
		c.DrawCircle(p.X, p.Y, 6/scale)
		c.Fill()
		drawText(c, fmt.Sprintf("%d %s", p.Label, p.Color()), p.X+14/scale, p.Y+14/scale)
	}
	return c
}

// Text has to be drawn without the flip, or it comes out upside down.
func drawText(c *gg.Context, s string, x, y float64) {
	x, y = c.TransformPoint(x, y)
	c.Push()
	c.Identity()
	c.SetColor(colornames.White)
	c.DrawStringAnchored(s, x, y, 0.5, 0.5)
	c.Pop()
}

func SavePNG(path string, poly *artgallery.Polygon, triangulation *artgallery.Triangulation, opts DrawOptions) error {
	c := Draw(poly, triangulation, opts)
	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print a PNG file inline in the terminal (iTerm only).
func Imgcat(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
