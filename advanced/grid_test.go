package advanced

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridCells(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 9.99, Y: 9.99},
		{X: 5, Y: 5},
		// Outside the region, clamped into border cells
		{X: 10, Y: 10},
		{X: -1, Y: 3},
	}
	g := NewGrid(points, 10, 10, 2, 2)

	assert.Equal(t, []int{0, 4}, g.Cell(0).Points)
	assert.Empty(t, g.Cell(1).Points)
	assert.Empty(t, g.Cell(2).Points)
	assert.Equal(t, []int{1, 2, 3}, g.Cell(3).Points)
	assert.Equal(t, 3, g.CellOf(3).Index)

	t.Run("cells are half open", func(t *testing.T) {
		assert.False(t, g.Cell(0).Contains(Point{X: 5, Y: 0}))
		assert.True(t, g.Cell(1).Contains(Point{X: 5, Y: 0}))
		assert.True(t, g.Cell(0).Contains(Point{X: 0, Y: 0}))
	})

	t.Run("border cells reach outwards", func(t *testing.T) {
		assert.True(t, g.Cell(0).IntersectsCircle(Point{X: -100, Y: 1}, 0.5))
		assert.False(t, g.Cell(3).IntersectsCircle(Point{X: -100, Y: 1}, 0.5))
	})
}

func TestGridDefaults(t *testing.T) {
	g := NewGrid([]Point{{X: 0.5, Y: 0.5}}, 0, 0, 0, 0)
	assert.Equal(t, 1, g.Rows())
	assert.Equal(t, 1, g.Cols())

	t.Run("fitted", func(t *testing.T) {
		g := NewGridFitted([]Point{{X: 2, Y: 3}, {X: 6, Y: 3}}, 2, 4)
		assert.Equal(t, 2, g.Rows())
		assert.Equal(t, 4, g.Cols())
		assert.Equal(t, 0, g.CellOf(0).Index)
		// The max corner is clamped into the last cell
		assert.Equal(t, 3, g.CellOf(1).Index)
	})

	t.Run("empty", func(t *testing.T) {
		g := NewGridFitted([]Point{}, 3, 3)
		assert.Equal(t, 0, g.Len())
	})
}

func TestGridInvalidInput(t *testing.T) {
	assert.Panics(t, func() { NewGrid(nil, 1, 1, 1, 1) })
	assert.Panics(t, func() { NewGrid([]Point{}, -1, 1, 1, 1) })
	assert.Panics(t, func() { NewGrid([]Point{}, 1, 1, -1, 1) })
	assert.Panics(t, func() { NewGridFitted([]Point{}, 1, -2) })

	g := NewGrid([]Point{{X: 1, Y: 1}}, 1, 1, 1, 1)
	assert.Panics(t, func() { g.Nearest(1) })
}

func TestGridNeighbors(t *testing.T) {
	g := NewGrid([]Point{}, 3, 3, 3, 3)
	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, g.Neighbors(4))
	assert.Equal(t, []int{1, 3, 4}, g.Neighbors(0))
	assert.Equal(t, []int{4, 5, 7}, g.Neighbors(8))
	assert.Equal(t, []int{0, 1, 2, 3, 5}, g.Neighbors(4)[:5])

	t.Run("rings", func(t *testing.T) {
		g := NewGrid([]Point{}, 5, 5, 5, 5)
		center := g.Cell(12)
		assert.Len(t, g.ringCells(center, 2), 16)
		assert.Equal(t, 2, g.maxRing(center))
		assert.Equal(t, 4, g.maxRing(g.Cell(0)))

		var indexes []int
		for _, cell := range g.ringCells(g.Cell(0), 1) {
			indexes = append(indexes, cell.Index)
		}
		assert.Equal(t, []int{1, 5, 6}, indexes)
	})
}

func TestGridNearest(t *testing.T) {
	t.Run("matches brute force", func(t *testing.T) {
		for seed := int64(0); seed < 40; seed++ {
			rnd := rand.New(rand.NewSource(seed))
			count := 2 + rnd.Intn(19)
			points := make([]Point, count)
			for i := range points {
				// Some points land outside the grid region
				points[i] = Point{X: rnd.Float64()*14 - 2, Y: rnd.Float64()*14 - 2}
			}
			dims := 1 + int(seed%5)
			g := NewGrid(points, 10, 10, dims, dims+1)

			for id := range points {
				expected, ok := ClosestPoint(points, id)
				require.True(t, ok)
				actual, ok := g.Nearest(id)
				require.True(t, ok, fmt.Sprintf("seed %d, point %d", seed, id))
				assert.InDelta(t, Distance(points[id], points[expected]), Distance(points[id], points[actual]), 1e-12,
					"seed %d, point %d", seed, id)
			}
		}
	})

	t.Run("skips coincident points", func(t *testing.T) {
		g := NewGridFitted([]Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 3, Y: 3}}, 2, 2)
		nearest, ok := g.Nearest(0)
		require.True(t, ok)
		assert.Equal(t, 2, nearest)
	})

	t.Run("too few points", func(t *testing.T) {
		g := NewGridFitted([]Point{{X: 1, Y: 1}}, 2, 2)
		_, ok := g.Nearest(0)
		assert.False(t, ok)
	})

	t.Run("finds points beyond empty rings", func(t *testing.T) {
		g := NewGrid([]Point{{X: 0.5, Y: 0.5}, {X: 9.5, Y: 9.5}}, 10, 10, 10, 10)
		nearest, ok := g.Nearest(0)
		require.True(t, ok)
		assert.Equal(t, 1, nearest)
	})
}

func TestGridBestThirdPoint(t *testing.T) {
	points := []Point{
		{X: 0, Y: 0},
		{X: 2, Y: 0},
		{X: 1, Y: 1},
		{X: 1, Y: -1},
	}
	g := NewGridFitted(points, 1, 1)

	t.Run("equal angles keep the first found", func(t *testing.T) {
		third, ok := g.BestThirdPoint(0, 1)
		require.True(t, ok)
		assert.Equal(t, 2, third)
	})

	t.Run("opposite side", func(t *testing.T) {
		third, ok := g.BestThirdPointOpposite(0, 1, 2)
		require.True(t, ok)
		assert.Equal(t, 3, third)

		third, ok = g.BestThirdPointOpposite(0, 1, 3)
		require.True(t, ok)
		assert.Equal(t, 2, third)
	})

	t.Run("accept predicate", func(t *testing.T) {
		third, ok := g.BestThirdPointWhere(0, 1, -1, func(id int) bool { return id != 2 })
		require.True(t, ok)
		assert.Equal(t, 3, third)

		_, ok = g.BestThirdPointWhere(0, 1, -1, func(int) bool { return false })
		assert.False(t, ok)
	})

	t.Run("widest angle wins", func(t *testing.T) {
		g := NewGridFitted([]Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 5}}, 1, 1)
		third, ok := g.BestThirdPoint(0, 1)
		require.True(t, ok)
		assert.Equal(t, 2, third)
	})

	t.Run("collinear candidates are rejected", func(t *testing.T) {
		g := NewGridFitted([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}}, 2, 2)
		_, ok := g.BestThirdPoint(0, 1)
		assert.False(t, ok)
	})

	t.Run("too few points", func(t *testing.T) {
		g := NewGridFitted([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}}, 1, 1)
		_, ok := g.BestThirdPoint(0, 1)
		assert.False(t, ok)
	})
}

func TestGridIsCircleOccupied(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 5, Y: 5}}
	g := NewGrid(points, 6, 6, 3, 3)

	assert.True(t, g.IsCircleOccupied(Point{X: 0.5}, 0.6))
	assert.False(t, g.IsCircleOccupied(Point{X: 0.5}, 0.6, 0, 1))
	assert.False(t, g.IsCircleOccupied(Point{X: 0.5}, 0.4))
	// The boundary counts as inside
	assert.True(t, g.IsCircleOccupied(Point{X: 0.5}, 0.5))
	// A large circle reaches into far cells
	assert.True(t, g.IsCircleOccupied(Point{X: 0.5}, 7, 0, 1))

	t.Run("circle over a cell side", func(t *testing.T) {
		// The circle crosses the top of cell 0 without covering either of its
		// corners, and still finds the point just below the side.
		g := NewGrid([]Point{{X: 2.5, Y: 4.8}}, 10, 10, 2, 2)
		center := Point{X: 2.5, Y: 6}
		for _, corner := range g.Cell(0).Bounds.Vertices() {
			assert.Greater(t, center.Planar().Sub(corner).Norm(), 1.5)
		}
		assert.True(t, g.Cell(0).IntersectsCircle(center, 1.5))
		assert.True(t, g.IsCircleOccupied(center, 1.5))
		assert.False(t, g.IsCircleOccupied(center, 1.1))
	})
}

func TestGridMemo(t *testing.T) {
	g := NewGridFitted([]Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}}, 1, 1)
	assert.Equal(t, 5.0, g.Distance(1, 2))
	assert.Equal(t, g.Distance(1, 2), g.Distance(2, 1))
	assert.Len(t, g.distances, 1)

	assert.InDelta(t, 90, g.Angle(1, 2, 0), 1e-9)
	assert.Equal(t, g.Angle(1, 2, 0), g.Angle(2, 1, 0))
	assert.Len(t, g.angles, 1)
}
