package internal

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEarClipping_Square(t *testing.T) {
	square := Square()
	triangulation := square.EarClipping(nil)
	AssertValidTriangulation(t, square, triangulation)

	assert.Equal(t, 2, triangulation.Len())
	assert.Equal(t, []Edge{{1, 3}}, triangulation.Diagonals())
	apexes := triangulation.Apexes(Edge{3, 1})
	assert.ElementsMatch(t, []int{0, 2}, apexes)
}

func TestEarClipping_Triangle(t *testing.T) {
	triangle := polygonOf(0, 0, 4, 0, 0, 4)
	triangulation := triangle.EarClipping(nil)
	AssertValidTriangulation(t, triangle, triangulation)
	assert.Equal(t, 1, triangulation.Len())
	assert.Empty(t, triangulation.Diagonals())
	assert.Len(t, triangulation.Edges(), 3)
}

func TestEarClipping_Hexagon(t *testing.T) {
	hexagon := RegularPolygon(6, 1)
	triangulation := hexagon.EarClipping(nil)
	AssertValidTriangulation(t, hexagon, triangulation)
	assert.Equal(t, 4, triangulation.Len())
	assert.Len(t, triangulation.Diagonals(), 3)
}

func TestEarClipping_ConvexPolygons(t *testing.T) {
	for n := 3; n <= 12; n++ {
		n := n
		t.Run(fmt.Sprintf("%d-gon", n), func(t *testing.T) {
			poly := RegularPolygon(n, 10)
			triangulation := poly.EarClipping(nil)
			AssertValidTriangulation(t, poly, triangulation)
		})
	}
}

func TestEarClipping_LShape(t *testing.T) {
	shape := LShape()
	triangulation := shape.EarClipping(nil)
	AssertValidTriangulation(t, shape, triangulation)
	// The reflex corner can never be clipped as an ear, so it ends up on
	// diagonals.
	reflex := 3
	hasReflex := false
	for _, d := range triangulation.Diagonals() {
		if d.Has(reflex) {
			hasReflex = true
		}
	}
	assert.True(t, hasReflex)
}

func TestEarClipping_Star(t *testing.T) {
	shape := SimpleStar()
	triangulation := shape.EarClipping(nil)
	AssertValidTriangulation(t, shape, triangulation)
}

func TestEarClipping_SpikyStar(t *testing.T) {
	shape := SpikyStar(12)
	triangulation := shape.EarClipping(nil)
	AssertValidTriangulation(t, shape, triangulation)
}

func TestEarClipping_Fixtures(t *testing.T) {
	for _, name := range []string{"comb", "spiral"} {
		name := name
		t.Run(name, func(t *testing.T) {
			shape := LoadFixture(name)
			require.Len(t, shape.Points, 12)
			triangulation := shape.EarClipping(nil)
			AssertValidTriangulation(t, shape, triangulation)
		})
	}
}

func TestEarClipping_Events(t *testing.T) {
	shape := LoadFixture("comb")
	var events []Event
	triangulation := shape.EarClipping(func(e Event) {
		events = append(events, e)
	})

	require.Len(t, events, shape.Len()-2)
	for i, e := range events[:len(events)-1] {
		assert.Equal(t, EarClipped, e.Kind, "event %d", i)
	}
	last := events[len(events)-1]
	assert.Equal(t, TriangulationClosed, last.Kind)

	// Events line up with the recorded triangles
	for i, tri := range triangulation.Triangles() {
		assert.Equal(t, Edge{tri.A, tri.B}, events[i].Diagonal)
		assert.Equal(t, tri.C, events[i].Apex)
	}
}

func TestIsEar(t *testing.T) {
	shape := LShape()
	remaining := NewEarList(shape.Len())
	var ears []int
	for pos := 0; pos < remaining.Len(); pos++ {
		if shape.IsEar(remaining, pos) {
			ears = append(ears, pos)
		}
	}
	// Vertex 3 is reflex. Vertex 0 is convex, but its triangle 5-0-1 holds the
	// reflex corner.
	assert.Equal(t, []int{1, 2, 4, 5}, ears)

	t.Run("collinear is never an ear", func(t *testing.T) {
		shape := polygonOf(0, 0, 2, 0, 4, 0, 4, 4, 0, 4)
		remaining := NewEarList(shape.Len())
		assert.False(t, shape.IsEar(remaining, 1))
		assert.True(t, shape.IsEar(remaining, 3))
	})
}

func TestEarClipping_NoEar(t *testing.T) {
	// Clockwise polygons have no Left turns at all
	clockwise := Square().Reverse()
	assert.Panics(t, func() {
		clockwise.EarClipping(nil)
	})

	err := func() (err error) {
		defer func() {
			err = HandleTriangulatePanicRecover(recover())
		}()
		clockwise.EarClipping(nil)
		return nil
	}()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no ear found")
}

func TestEarClipping_TooFewPoints(t *testing.T) {
	assert.Panics(t, func() {
		polygonOf(0, 0, 1, 1).EarClipping(nil)
	})
}
