package render

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/osuushi/artgallery"
)

// Read a polygon in the plain text format: a vertex count on the first line,
// then one "x y" pair per line. Blank lines and lines starting with # are
// ignored. Vertices are labeled 1..n in input order.
func ReadPoints(r io.Reader) (*artgallery.Polygon, error) {
	scanner := bufio.NewScanner(r)
	count := -1
	poly := &artgallery.Polygon{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if count < 0 {
			n, err := strconv.Atoi(line)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d: invalid vertex count %q", lineNumber, line)
			}
			if n < 0 {
				return nil, errors.Errorf("line %d: negative vertex count %d", lineNumber, n)
			}
			count = n
			continue
		}

		if len(poly.Points) == count {
			return nil, errors.Errorf("line %d: expected %d vertices, found more", lineNumber, count)
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		point.Label = len(poly.Points) + 1
		poly.Points = append(poly.Points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	if count < 0 {
		return nil, errors.New("missing vertex count")
	}
	if len(poly.Points) != count {
		return nil, errors.Errorf("expected %d vertices, got %d", count, len(poly.Points))
	}
	return poly, nil
}

func parsePoint(line string) (*artgallery.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return nil, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return &artgallery.Point{X: x, Y: y}, nil
}

// Read the first <polygon> element of an SVG document. This is not a full SVG
// parser: transforms and other shapes are ignored. Vertices are labeled 1..n
// in document order.
func ReadSVG(r io.Reader) (*artgallery.Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, errors.New("no polygon element found")
	}

	// Points may be separated by spaces, commas, or both
	fields := strings.FieldsFunc(polygons[0].Attributes["points"], func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in points attribute: %d", len(fields))
	}

	poly := &artgallery.Polygon{}
	for i := 0; i < len(fields); i += 2 {
		point, err := parsePoint(fields[i] + " " + fields[i+1])
		if err != nil {
			return nil, err
		}
		point.Label = len(poly.Points) + 1
		poly.Points = append(poly.Points, point)
	}
	return poly, nil
}
