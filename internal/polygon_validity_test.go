package internal

// This contains no actual tests. It is just a helper for testing triangulation
// and coloring validity.

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Helper to check that a triangulation is valid. The rules are:
// 1. There are exactly n-2 triangles, and the triangulation is closed.
// 2. Every triangle uses three vertices of the polygon and turns Left when
//    walked as (A, C, B), which is how ear clipping records them.
// 3. No triangle has zero area, and the areas sum to the polygon's area.
// 4. Every polygon side borders exactly one triangle, every other edge two.
// 5. The dual graph (triangles joined across diagonals) is a tree.
func AssertValidTriangulation(t *testing.T, polygon *Polygon, triangulation *Triangulation) {
	t.Helper()
	n := polygon.Len()
	require.True(t, IsCCW(polygon.Points), "polygon is not counterclockwise")
	require.True(t, triangulation.Closed(), "triangulation was never closed")
	require.Equal(t, n, triangulation.VertexCount())

	triangles := triangulation.Triangles()
	require.Len(t, triangles, n-2, "expected n-2 triangles")
	require.Len(t, triangulation.Diagonals(), n-3, "expected n-3 diagonals")

	var triangleArea float64
	for _, tri := range triangles {
		for _, v := range tri.Vertices() {
			require.True(t, v >= 0 && v < n, "vertex %d out of range in %v", v, tri)
		}
		a, b, c := polygon.Points[tri.A], polygon.Points[tri.B], polygon.Points[tri.C]
		require.Equal(t, Left, Orient(a, c, b), "triangle %v does not turn left", tri)
		area := Area([]*Point{a, b, c})
		require.Greater(t, area, Epsilon, "zero area triangle %v", tri)
		triangleArea += area
	}
	require.InDelta(t, Area(polygon.Points), triangleArea, 1e-6, "sum of the areas of all triangles must equal the area of the polygon")

	// Every polygon side is an edge with exactly one apex
	for i := 0; i < n; i++ {
		side := NewEdge(i, CircularIndex(i+1, n))
		require.True(t, triangulation.IsBoundary(side))
		require.Len(t, triangulation.Apexes(side), 1, "side %v", side)
	}
	for _, e := range triangulation.Edges() {
		if !triangulation.IsBoundary(e) {
			require.Len(t, triangulation.Apexes(e), 2, "diagonal %v", e)
		}
	}

	assertDualTree(t, triangulation)
}

// Triangles joined across shared edges must form a connected graph with one
// fewer edge than nodes.
func assertDualTree(t *testing.T, triangulation *Triangulation) {
	t.Helper()
	triangles := triangulation.Triangles()
	byEdge := make(map[Edge][]int)
	for i, tri := range triangles {
		for _, e := range tri.Edges() {
			byEdge[e] = append(byEdge[e], i)
		}
	}

	adjacency := make([][]int, len(triangles))
	dualEdges := 0
	for _, nodes := range byEdge {
		require.LessOrEqual(t, len(nodes), 2)
		if len(nodes) == 2 {
			adjacency[nodes[0]] = append(adjacency[nodes[0]], nodes[1])
			adjacency[nodes[1]] = append(adjacency[nodes[1]], nodes[0])
			dualEdges++
		}
	}
	require.Equal(t, len(triangles)-1, dualEdges, "dual graph must have one fewer edge than nodes")

	seen := make([]bool, len(triangles))
	stack := []int{0}
	seen[0] = true
	visited := 1
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adjacency[node] {
			if !seen[next] {
				seen[next] = true
				visited++
				stack = append(stack, next)
			}
		}
	}
	require.Equal(t, len(triangles), visited, "dual graph is not connected")
}

// Every vertex is colored, and every triangle shows all three colors.
func AssertValidColoring(t *testing.T, polygon *Polygon, triangulation *Triangulation) {
	t.Helper()
	for _, p := range polygon.Points {
		require.NotEqual(t, NoColor, p.Color(), "vertex %d is not colored", p.Label)
	}
	for _, tri := range triangulation.Triangles() {
		colors := map[Color]struct{}{}
		for _, v := range tri.Vertices() {
			colors[polygon.Points[v].Color()] = struct{}{}
		}
		require.Len(t, colors, 3, "triangle %v repeats a color", tri)
	}
}

// The coloring as a set of vertex classes, independent of which color is
// called what.
func colorPartition(polygon *Polygon) []string {
	var partition []string
	for _, class := range polygon.ColorClasses() {
		partition = append(partition, fmt.Sprint(class))
	}
	sort.Strings(partition)
	return partition
}
