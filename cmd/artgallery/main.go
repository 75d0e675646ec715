package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/artgallery"
	"github.com/osuushi/artgallery/render"
)

// Triangulate and three color a polygon, narrating each step. Input is a vertex
// count followed by one "x y" line per vertex, or an SVG file whose first
// <polygon> is used. A clockwise polygon is reversed before triangulating;
// vertex labels follow their points.
var (
	app = kingpin.New("artgallery", "Triangulate a simple polygon by ear clipping and three color its vertices.")

	inputPath      = app.Arg("input", "Polygon file. Reads stdin when omitted.").String()
	svgInput       = app.Flag("svg", "Read the input as SVG.").Bool()
	format         = app.Flag("format", "Output format.").Default("text").Enum("text", "yaml")
	quiet          = app.Flag("quiet", "Don't narrate ear clipping and coloring.").Short('q').Bool()
	noColor        = app.Flag("no-color", "Disable terminal colors.").Bool()
	seedEdge       = app.Flag("seed-edge", "Start coloring from this edge, as two vertex labels \"A,B\".").String()
	skipValidation = app.Flag("skip-validation", "Trust that the polygon is simple.").Bool()
	pngPath        = app.Flag("png", "Draw the result to this PNG file.").String()
	scale          = app.Flag("scale", "Pixels per unit when drawing.").Default("50").Float64()
	names          = app.Flag("names", "Label triangles with readable names when drawing.").Bool()
	showImage      = app.Flag("imgcat", "Print the PNG in the terminal (iTerm only).").Bool()
	verbose        = app.Flag("verbose", "Log every event.").Short('v').Bool()
	jsonLog        = app.Flag("json-log", "Log as JSON.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := newLogger()
	if err != nil {
		kingpin.Fatalf("creating logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if err := run(logger, os.Stdout); err != nil {
		logger.Fatal("artgallery failed", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	var config zap.Config
	if *jsonLog {
		config = zap.NewProductionConfig()
	} else {
		config = zap.NewDevelopmentConfig()
	}
	if !*verbose {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return config.Build()
}

func run(logger *zap.Logger, out io.Writer) error {
	poly, err := readPolygon()
	if err != nil {
		return err
	}
	poly = artgallery.EnsureCCW(poly)
	logger.Info("read polygon", zap.Int("vertices", len(poly.Points)))

	colors := !*noColor && *format == "text"
	text := *format == "text"
	observers := []artgallery.Observer{render.LogObserver(logger, poly)}
	if text && !*quiet {
		observers = append(observers, render.NewTrace(out, poly, colors).Observer())
	}
	observer := artgallery.Observers(observers...)

	if text {
		render.WritePolygon(out, "Input", poly, false, colors)
	}

	var triangulation *artgallery.Triangulation
	if *skipValidation {
		triangulation, err = artgallery.TriangulateUnchecked(poly, observer)
	} else {
		triangulation, err = artgallery.Triangulate(poly, observer)
	}
	if err != nil {
		return errors.Wrap(err, "triangulating")
	}

	if *seedEdge != "" {
		var seed artgallery.Edge
		if seed, err = parseSeedEdge(poly, *seedEdge); err != nil {
			return err
		}
		err = artgallery.ColorizeFrom(poly, triangulation, seed, observer)
	} else {
		err = artgallery.Colorize(poly, triangulation, observer)
	}
	if err != nil {
		return errors.Wrap(err, "coloring")
	}

	if text {
		render.WritePolygon(out, "Final", poly, true, colors)
		render.WriteGuards(out, poly, colors)
	} else if err := render.NewReport(poly, triangulation).WriteYAML(out); err != nil {
		return err
	}

	if *pngPath != "" {
		opts := render.DrawOptions{Scale: *scale, NameTriangles: *names}
		if err := render.SavePNG(*pngPath, poly, triangulation, opts); err != nil {
			return err
		}
		logger.Info("wrote drawing", zap.String("path", *pngPath))
		if *showImage {
			render.Imgcat(*pngPath, out)
		}
	}
	return nil
}

func readPolygon() (*artgallery.Polygon, error) {
	var in io.Reader = os.Stdin
	if *inputPath != "" {
		f, err := os.Open(*inputPath)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		in = f
	}
	if *svgInput {
		return render.ReadSVG(in)
	}
	return render.ReadPoints(in)
}

// Parse "A,B" vertex labels into an edge of vertex indices.
func parseSeedEdge(poly *artgallery.Polygon, s string) (artgallery.Edge, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return artgallery.Edge{}, errors.Errorf("seed edge must look like \"A,B\", got %q", s)
	}
	var edge artgallery.Edge
	for i, part := range parts {
		label, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return artgallery.Edge{}, errors.Wrapf(err, "seed edge label %q", part)
		}
		index := poly.IndexOfLabel(label)
		if index < 0 {
			return artgallery.Edge{}, errors.Errorf("no vertex labeled %d", label)
		}
		edge[i] = index
	}
	return artgallery.NewEdge(edge[0], edge[1]), nil
}
