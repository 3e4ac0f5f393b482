package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// Spatial grid over a rectangular region. The region is split evenly into
// rows × cols cells and every point is filed into exactly one cell. Queries
// start at the home cell of a point and walk outward one ring at a time, where
// ring k is the set of cells at Chebyshev distance k from the home cell:
//
//	2 2 2 2 2
//	2 1 1 1 2
//	2 1 0 1 2
//	2 1 1 1 2
//	2 2 2 2 2
//
// Cells are numbered row-major from the lower left, so cell i sits at row
// i / cols, column i % cols.

type Cell struct {
	Index    int
	Row, Col int
	// Half-open extent [lo, hi) of the cell
	Bounds r2.Rect
	// Ids of the points filed into the cell, ascending
	Points []int

	// Border cells also hold points that lie outside the grid region, so for
	// geometric queries their extent is open towards the outside.
	reach     r2.Rect
	neighbors []int
}

func (c *Cell) Empty() bool {
	return len(c.Points) == 0
}

// Whether p falls in the half-open extent of the cell.
func (c *Cell) Contains(p Point) bool {
	lo, hi := c.Bounds.Lo(), c.Bounds.Hi()
	return lo.X <= p.X && p.X < hi.X && lo.Y <= p.Y && p.Y < hi.Y
}

// Whether any part of the cell is within radius of center.
func (c *Cell) IntersectsCircle(center Point, radius float64) bool {
	q := center.Planar()
	return c.reach.ClampPoint(q).Sub(q).Norm() <= radius
}

type angleKey struct {
	edge  EdgeKey
	third int
}

type Grid struct {
	points     []Point
	rows, cols int
	bounds     r2.Rect
	cellSize   r2.Point
	cells      []*Cell
	// Point id -> cell index
	home []int

	distances map[EdgeKey]float64
	angles    map[angleKey]float64
}

// Build a grid over [0, width) × [0, height). A zero size or count is
// treated as 1.
func NewGrid(points []Point, width, height float64, rows, cols int) *Grid {
	checkGridArgs(points, rows, cols)
	if width < 0 || height < 0 || math.IsNaN(width) || math.IsNaN(height) {
		fatalf("grid region must not be negative, got %vx%v", width, height)
	}
	if width == 0 {
		width = 1
	}
	if height == 0 {
		height = 1
	}
	return newGrid(points, r2.RectFromPoints(r2.Point{}, r2.Point{X: width, Y: height}), rows, cols)
}

// Build a grid over the bounding rectangle of the points.
func NewGridFitted(points []Point, rows, cols int) *Grid {
	checkGridArgs(points, rows, cols)
	minX, minY, maxX, maxY, ok := Bounds(points)
	if !ok {
		return newGrid(points, r2.RectFromPoints(r2.Point{}, r2.Point{X: 1, Y: 1}), rows, cols)
	}
	// A flat point set still needs a cell with some extent
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}
	return newGrid(points, r2.RectFromPoints(r2.Point{X: minX, Y: minY}, r2.Point{X: maxX, Y: maxY}), rows, cols)
}

func checkGridArgs(points []Point, rows, cols int) {
	if points == nil {
		fatalf("grid requires a point slice, got nil")
	}
	if rows < 0 || cols < 0 {
		fatalf("grid dimensions must not be negative, got %d rows and %d cols", rows, cols)
	}
	for i, p := range points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z) {
			fatalf("point %d has a NaN coordinate: %v", i, p)
		}
	}
}

func newGrid(points []Point, bounds r2.Rect, rows, cols int) *Grid {
	if rows == 0 {
		rows = 1
	}
	if cols == 0 {
		cols = 1
	}

	size := bounds.Size()
	g := &Grid{
		points:    points,
		rows:      rows,
		cols:      cols,
		bounds:    bounds,
		cellSize:  r2.Point{X: size.X / float64(cols), Y: size.Y / float64(rows)},
		cells:     make([]*Cell, 0, rows*cols),
		home:      make([]int, len(points)),
		distances: make(map[EdgeKey]float64),
		angles:    make(map[angleKey]float64),
	}

	origin := bounds.Lo()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			lo := r2.Point{
				X: origin.X + float64(col)*g.cellSize.X,
				Y: origin.Y + float64(row)*g.cellSize.Y,
			}
			hi := r2.Point{
				X: origin.X + float64(col+1)*g.cellSize.X,
				Y: origin.Y + float64(row+1)*g.cellSize.Y,
			}
			cell := &Cell{
				Index:  row*cols + col,
				Row:    row,
				Col:    col,
				Bounds: r2.RectFromPoints(lo, hi),
			}
			reachLo, reachHi := lo, hi
			if col == 0 {
				reachLo.X = math.Inf(-1)
			}
			if row == 0 {
				reachLo.Y = math.Inf(-1)
			}
			if col == cols-1 {
				reachHi.X = math.Inf(1)
			}
			if row == rows-1 {
				reachHi.Y = math.Inf(1)
			}
			cell.reach = r2.RectFromPoints(reachLo, reachHi)
			g.cells = append(g.cells, cell)
		}
	}

	for id, p := range points {
		row, col := g.cellCoords(p)
		cell := g.cells[row*cols+col]
		cell.Points = append(cell.Points, id)
		g.home[id] = cell.Index
	}

	return g
}

// Row and column of the cell a location falls in. Locations outside the grid
// region are clamped to the nearest border cell.
func (g *Grid) cellCoords(p Point) (row, col int) {
	origin := g.bounds.Lo()
	col = clampIndex(math.Floor((p.X-origin.X)/g.cellSize.X), g.cols)
	row = clampIndex(math.Floor((p.Y-origin.Y)/g.cellSize.Y), g.rows)
	return row, col
}

func clampIndex(value float64, n int) int {
	if value < 0 {
		return 0
	}
	if value > float64(n-1) {
		return n - 1
	}
	return int(value)
}

func (g *Grid) Rows() int {
	return g.rows
}

func (g *Grid) Cols() int {
	return g.cols
}

func (g *Grid) Len() int {
	return len(g.points)
}

func (g *Grid) Point(id int) Point {
	g.checkID(id)
	return g.points[id]
}

func (g *Grid) Cell(index int) *Cell {
	return g.cells[index]
}

// The cell a point was filed into.
func (g *Grid) CellOf(id int) *Cell {
	g.checkID(id)
	return g.cells[g.home[id]]
}

func (g *Grid) checkID(id int) {
	if id < 0 || id >= len(g.points) {
		fatalf("point id %d out of range [0, %d)", id, len(g.points))
	}
}

// Indices of the up to eight cells surrounding a cell. Computed on first use.
func (g *Grid) Neighbors(index int) []int {
	cell := g.cells[index]
	if cell.neighbors != nil {
		return cell.neighbors
	}
	cell.neighbors = make([]int, 0, 8)
	for row := cell.Row - 1; row <= cell.Row+1; row++ {
		for col := cell.Col - 1; col <= cell.Col+1; col++ {
			if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
				continue
			}
			if row == cell.Row && col == cell.Col {
				continue
			}
			cell.neighbors = append(cell.neighbors, row*g.cols+col)
		}
	}
	return cell.neighbors
}

// Cells at Chebyshev distance exactly ring from center, row-major.
func (g *Grid) ringCells(center *Cell, ring int) []*Cell {
	switch ring {
	case 0:
		return []*Cell{center}
	case 1:
		neighbors := g.Neighbors(center.Index)
		result := make([]*Cell, len(neighbors))
		for i, index := range neighbors {
			result[i] = g.cells[index]
		}
		return result
	}

	var result []*Cell
	for row := center.Row - ring; row <= center.Row+ring; row++ {
		if row < 0 || row >= g.rows {
			continue
		}
		for col := center.Col - ring; col <= center.Col+ring; col++ {
			if col < 0 || col >= g.cols {
				continue
			}
			if absInt(row-center.Row) != ring && absInt(col-center.Col) != ring {
				continue
			}
			result = append(result, g.cells[row*g.cols+col])
		}
	}
	return result
}

// The last ring around a cell that still contains any cells.
func (g *Grid) maxRing(cell *Cell) int {
	return maxInt(maxInt(cell.Row, g.rows-1-cell.Row), maxInt(cell.Col, g.cols-1-cell.Col))
}

// Memoized distance between two points.
func (g *Grid) Distance(a, b int) float64 {
	key := NewEdgeKey(a, b)
	if d, ok := g.distances[key]; ok {
		return d
	}
	d := Distance(g.points[a], g.points[b])
	g.distances[key] = d
	return d
}

// Memoized angle at third between the rays to src and dest. The angle does not
// depend on the order of src and dest, so they share a key.
func (g *Grid) Angle(src, dest, third int) float64 {
	key := angleKey{NewEdgeKey(src, dest), third}
	if a, ok := g.angles[key]; ok {
		return a
	}
	a := Angle(g.points[src], g.points[dest], g.points[third])
	g.angles[key] = a
	return a
}

// Nearest other point to src. Points with the same coordinates as src are
// skipped. The search walks outward ring by ring; once a candidate is known,
// it only continues while a ring could still hold something closer, so the
// result is the true nearest neighbour.
func (g *Grid) Nearest(src int) (int, bool) {
	g.checkID(src)
	if len(g.points) < 2 {
		return -1, false
	}

	home := g.cells[g.home[src]]
	// Every cell in ring k is at least k-1 whole cells away from the home cell
	step := math.Min(g.cellSize.X, g.cellSize.Y)
	best, bestDistance := -1, math.Inf(1)
	for ring := 0; ring <= g.maxRing(home); ring++ {
		if best >= 0 && float64(ring-1)*step > bestDistance {
			break
		}
		for _, cell := range g.ringCells(home, ring) {
			candidate, distance, ok := g.closestInCell(cell, src)
			if ok && distance < bestDistance {
				best, bestDistance = candidate, distance
			}
		}
	}
	return best, best >= 0
}

func (g *Grid) closestInCell(cell *Cell, src int) (int, float64, bool) {
	best, bestDistance := -1, 0.0
	for _, id := range cell.Points {
		if id == src {
			continue
		}
		distance := g.Distance(src, id)
		if distance == 0 {
			continue
		}
		if best < 0 || distance < bestDistance {
			best, bestDistance = id, distance
		}
	}
	return best, bestDistance, best >= 0
}

// Third point for a triangle on edge src-dest, with no restriction on side.
func (g *Grid) BestThirdPoint(src, dest int) (int, bool) {
	return g.BestThirdPointWhere(src, dest, -1, nil)
}

// Third point for a triangle on edge src-dest, on the opposite side of the
// line src-dest from excluded.
func (g *Grid) BestThirdPointOpposite(src, dest, excluded int) (int, bool) {
	return g.BestThirdPointWhere(src, dest, excluded, nil)
}

// Third point for a triangle on edge src-dest. A candidate qualifies if:
//
// 1. It is not collinear with src and dest.
// 2. If excluded is not -1, it is not on the same side of src-dest as excluded.
// 3. accept, if given, returns true for it.
// 4. The circle around the centroid of src, dest and the candidate, passing
// through src, holds no other point.
//
// Among qualifying candidates, the one seeing src-dest under the widest angle
// wins, and on equal angles the first one found wins. The search stops at the
// first ring that produces any candidate.
func (g *Grid) BestThirdPointWhere(src, dest, excluded int, accept func(id int) bool) (int, bool) {
	g.checkID(src)
	g.checkID(dest)
	if excluded >= 0 {
		g.checkID(excluded)
	}
	if len(g.points) < 3 || src == dest {
		return -1, false
	}

	home := g.cells[g.home[src]]
	for ring := 0; ring <= g.maxRing(home); ring++ {
		best, bestAngle := -1, 0.0
		for _, cell := range g.ringCells(home, ring) {
			for _, id := range cell.Points {
				if !g.qualifies(src, dest, excluded, id, accept) {
					continue
				}
				angle := g.Angle(src, dest, id)
				if best < 0 || angle > bestAngle {
					best, bestAngle = id, angle
				}
			}
		}
		if best >= 0 {
			return best, true
		}
	}
	return -1, false
}

func (g *Grid) qualifies(src, dest, excluded, candidate int, accept func(id int) bool) bool {
	if candidate == src || candidate == dest {
		return false
	}
	s, d, c := g.points[src], g.points[dest], g.points[candidate]
	if Orientation(c, s, d) == On {
		return false
	}
	if excluded >= 0 && SameSide(s, d, c, g.points[excluded]) {
		return false
	}
	if accept != nil && !accept(candidate) {
		return false
	}
	center := ApproxCircumcenter(s, d, c)
	return !g.IsCircleOccupied(center, Distance(s, center), src, dest, candidate)
}

// Whether any point other than the excluded ones lies within radius of
// center. Only cells that the circle reaches are inspected.
func (g *Grid) IsCircleOccupied(center Point, radius float64, exclude ...int) bool {
	lowRow, lowCol := g.cellCoords(Point{X: center.X - radius, Y: center.Y - radius})
	highRow, highCol := g.cellCoords(Point{X: center.X + radius, Y: center.Y + radius})
	for row := lowRow; row <= highRow; row++ {
		for col := lowCol; col <= highCol; col++ {
			cell := g.cells[row*g.cols+col]
			if cell.Empty() || !cell.IntersectsCircle(center, radius) {
				continue
			}
			for _, id := range cell.Points {
				if containsInt(exclude, id) {
					continue
				}
				if Distance(center, g.points[id]) <= radius {
					return true
				}
			}
		}
	}
	return false
}
