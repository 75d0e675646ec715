package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg pictures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, labels its points 1..n in file order, then converts that
// into a CCW *Polygon. If anything goes wrong, it bails.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) *Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]*Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, &Point{Label: len(points) + 1, X: x, Y: y})
	}
	result := &Polygon{Points: points}

	// Ensure that the polygon is CCW
	if IsCW(result.Points) {
		result = result.Reverse()
	}
	return result
}

// Build a polygon from coordinate pairs, labeled 1..n.
func polygonOf(coords ...float64) *Polygon {
	if len(coords)%2 != 0 {
		log.Fatalf("odd coordinate count %d", len(coords))
	}
	poly := &Polygon{}
	for i := 0; i < len(coords); i += 2 {
		poly.Points = append(poly.Points, &Point{Label: i/2 + 1, X: coords[i], Y: coords[i+1]})
	}
	return poly
}

// Some ad hoc code specified fixtures

func Square() *Polygon {
	return polygonOf(0, 0, 4, 0, 4, 4, 0, 4)
}

func LShape() *Polygon {
	return polygonOf(0, 0, 6, 0, 6, 2, 2, 2, 2, 6, 0, 6)
}

// Regular n-gon, counterclockwise.
func RegularPolygon(n int, radius float64) *Polygon {
	poly := &Polygon{}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		poly.Points = append(poly.Points, &Point{Label: i + 1, X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return poly
}

func SimpleStar() *Polygon {
	poly := &Polygon{}
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		poly.Points = append(poly.Points, &Point{Label: i + 1, X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return poly
}

// Star with many points and a shallow inner radius, so most vertices are
// reflex and ear tests have plenty to reject.
func SpikyStar(spikes int) *Polygon {
	poly := &Polygon{}
	for i := 0; i < spikes*2; i++ {
		radius := 10.0
		if i%2 == 1 {
			radius = 1.5
		}
		angle := math.Pi * float64(i) / float64(spikes)
		poly.Points = append(poly.Points, &Point{Label: i + 1, X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return poly
}
