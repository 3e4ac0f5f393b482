package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, g *EdgeGraph, s Segment) *PolygonEdge {
	edge, ok := g.Lookup(s)
	require.True(t, ok, "no edge %v", s)
	return edge
}

func TestBuildAdjacency(t *testing.T) {
	segments := LoadSegments("square_diagonal")
	// Duplicates in either direction and zero length segments are dropped
	segments = append(segments, segments[0].Reverse(), Segment{Point{X: 5}, Point{X: 5}})
	g := BuildAdjacency(segments)
	require.Equal(t, 5, g.Len())

	diagonal := lookup(t, g, Segment{Point{X: 1}, Point{Y: 1}})
	assert.Len(t, diagonal.Shared(Point{X: 1}), 2)
	assert.Len(t, diagonal.Shared(Point{Y: 1}), 2)
	assert.Empty(t, diagonal.Shared(Point{X: 1, Y: 1}))

	bottom := lookup(t, g, Segment{Point{X: 1}, Point{}})
	assert.Len(t, bottom.Shared(Point{}), 1)
	assert.Len(t, bottom.Shared(Point{X: 1}), 2)
}

func TestTraceFace(t *testing.T) {
	g := BuildAdjacency(LoadSegments("square_diagonal"))
	bottom := lookup(t, g, Segment{Point{X: 0}, Point{X: 1}})
	top := lookup(t, g, Segment{Point{X: 1, Y: 1}, Point{Y: 1}})

	t.Run("lower triangle", func(t *testing.T) {
		face, ok := TraceFace(bottom, Point{})
		require.True(t, ok)
		assert.Len(t, face.Edges, 3)
		assert.Equal(t, []Point{{X: 1}, {}, {Y: 1}}, face.Points)
		assert.True(t, face.HasSegment(Segment{Point{X: 1}, Point{Y: 1}}))
	})

	t.Run("upper triangle", func(t *testing.T) {
		face, ok := TraceFace(top, Point{X: 1, Y: 1})
		require.True(t, ok)
		assert.Len(t, face.Edges, 3)
		assert.ElementsMatch(t, []Point{{X: 1, Y: 1}, {X: 1}, {Y: 1}}, face.Points)
	})

	t.Run("walking around the outside dead ends", func(t *testing.T) {
		_, ok := TraceFaceFrom(bottom)
		assert.False(t, ok)
	})

	t.Run("end must be an endpoint", func(t *testing.T) {
		_, ok := TraceFace(bottom, Point{X: 7})
		assert.False(t, ok)
	})

	t.Run("open chain", func(t *testing.T) {
		g := BuildAdjacency([]Segment{
			{Point{X: 0, Y: 0}, Point{X: 0, Y: 1}},
			{Point{X: 0, Y: 1}, Point{X: 1, Y: 1}},
			{Point{X: 1, Y: 1}, Point{X: 1, Y: 0}},
		})
		_, ok := TraceFaceFrom(g.Edges[0])
		assert.False(t, ok)
	})
}

func TestTraceFaces(t *testing.T) {
	t.Run("square with a diagonal", func(t *testing.T) {
		g := BuildAdjacency(LoadSegments("square_diagonal"))
		faces := TraceFaces(g)
		require.Len(t, faces, 2)
		for _, face := range faces {
			assert.Len(t, face.Edges, 3)
		}
		assert.False(t, faces[0].SameEdges(faces[1]))

		diagonal := lookup(t, g, Segment{Point{X: 1}, Point{Y: 1}})
		assert.Len(t, diagonal.Polygons(), 2)
		bottom := lookup(t, g, Segment{Point{}, Point{X: 1}})
		assert.Len(t, bottom.Polygons(), 1)
	})

	t.Run("window", func(t *testing.T) {
		g := BuildAdjacency(LoadSegments("window"))
		faces := TraceFaces(g)
		require.Len(t, faces, 4)
		for _, face := range faces {
			assert.Len(t, face.Edges, 4)
			hull, ok := face.ConvexHull()
			require.True(t, ok)
			assert.Len(t, hull, 4)
		}
		middle := lookup(t, g, Segment{Point{X: 1, Y: 1}, Point{X: 1, Y: 0}})
		assert.Len(t, middle.Polygons(), 2)
	})
}
