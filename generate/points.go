// Package generate produces point sets for demos and tests.
package generate

import (
	"math"
	"math/rand"

	"github.com/osuushi/delaunay/advanced"
)

// Uniformly distributed points in [0, width) × [0, height).
func Uniform(rnd *rand.Rand, width, height float64, count int) []advanced.Point {
	points := make([]advanced.Point, count)
	for i := range points {
		points[i] = advanced.Point{
			X: rnd.Float64() * width,
			Y: rnd.Float64() * height,
		}
	}
	return points
}

// Points spread over a cols × rows grid of strata, filled round robin so that
// every stratum gets count / (cols*rows) points, give or take one. This avoids
// the clumps and holes of a uniform distribution.
func Stratified(rnd *rand.Rand, width, height float64, cols, rows, count int) []advanced.Point {
	if cols <= 0 || rows <= 0 {
		return Uniform(rnd, width, height, count)
	}
	cellWidth := width / float64(cols)
	cellHeight := height / float64(rows)
	points := make([]advanced.Point, count)
	for i := range points {
		cell := i % (cols * rows)
		col, row := cell%cols, cell/cols
		points[i] = advanced.Point{
			X: (float64(col) + rnd.Float64()) * cellWidth,
			Y: (float64(row) + rnd.Float64()) * cellHeight,
		}
	}
	return points
}

// One point per cell of a cols × rows lattice, jittered by up to a quarter of
// a cell in each direction. With a nil rnd there is no jitter, and the points
// sit exactly at the cell centers.
func Lattice(rnd *rand.Rand, width, height float64, cols, rows int) []advanced.Point {
	if cols <= 0 || rows <= 0 {
		return []advanced.Point{}
	}
	cellWidth := width / float64(cols)
	cellHeight := height / float64(rows)
	points := make([]advanced.Point, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			dx, dy := 0.0, 0.0
			if rnd != nil {
				dx = (rnd.Float64() - 0.5) * cellWidth / 2
				dy = (rnd.Float64() - 0.5) * cellHeight / 2
			}
			points = append(points, advanced.Point{
				X: (float64(col)+0.5)*cellWidth + dx,
				Y: (float64(row)+0.5)*cellHeight + dy,
			})
		}
	}
	return points
}

// Vertices of a regular polygon, counterclockwise, starting on the positive X
// axis.
func RegularPolygon(center advanced.Point, radius float64, sides int) []advanced.Point {
	if sides < 3 {
		return []advanced.Point{}
	}
	points := make([]advanced.Point, sides)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(sides)
		points[i] = advanced.Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
			Z: center.Z,
		}
	}
	return points
}
