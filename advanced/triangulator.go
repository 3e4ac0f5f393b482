package advanced

import (
	"context"
	"fmt"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/dbg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Frontier expansion triangulation.
//
// The first triangle is built from point 0, its nearest neighbour, and the
// best third point for that pair. Its edges go into a FIFO queue. Each edge
// popped from the queue has exactly one triangle so far, and we look for a
// third point on the far side of it from that triangle's apex. If there is
// one, a new triangle is created and any edges it introduces join the queue.
// If not, the edge is on the boundary of the triangulation.
//
// This is a greedy process. Triangles are never removed or flipped, so the
// result is only approximately Delaunay. In particular, the circle test uses
// the centroid of a candidate triangle rather than its circumcenter.

const DefaultCells = 10

type EdgeState int

const (
	// One triangle, waiting in the queue for a second
	EdgeOpen EdgeState = iota
	// Two triangles
	EdgeClosed
	// One triangle, and no second one can be found
	EdgeBoundary
)

func (s EdgeState) String() string {
	switch s {
	case EdgeOpen:
		return "open"
	case EdgeClosed:
		return "closed"
	case EdgeBoundary:
		return "boundary"
	}
	return "invalid"
}

type Edge struct {
	Key   EdgeKey
	State EdgeState
	// Ids of the triangles using this edge, in creation order
	Triangles []int
}

// Debug description: the key, coloured by state, and readable names for the
// triangles using the edge.
func (e *Edge) String() string {
	var key string
	switch e.State {
	case EdgeOpen:
		key = aurora.Cyan(e.Key.String()).String()
	case EdgeClosed:
		key = aurora.Green(e.Key.String()).String()
	default:
		key = aurora.Red(e.Key.String()).String()
	}
	names := make([]string, len(e.Triangles))
	for i, id := range e.Triangles {
		names[i] = dbg.Name(TriangleID(id))
	}
	return fmt.Sprintf("%s%v", key, names)
}

// Triangle ids get their own type so that dbg.Name doesn't confuse them with
// other ints.
type TriangleID int

type Triangle struct {
	ID  int
	Key TriangleKey
}

type Options struct {
	// Size of the grid region, anchored at the origin. If either is zero, the
	// grid is fitted to the bounds of the points instead.
	Width, Height float64
	// Grid dimensions. Zero means DefaultCells.
	Rows, Cols int
	Logger     *zap.Logger
}

type Triangulation struct {
	points    []Point
	grid      *Grid
	triangles []*Triangle
	byKey     map[TriangleKey]int
	edges     map[EdgeKey]*Edge
	// Edge keys in creation order
	edgeOrder []EdgeKey
	// Point id -> set of triangle ids using it
	incident []map[int]struct{}
	logger   *zap.Logger
}

func Triangulate(points []Point, opts Options) *Triangulation {
	// A background context can't be cancelled
	t, _ := TriangulateContext(context.Background(), points, opts)
	return t
}

// Triangulate, checking ctx between expansion steps. If ctx is cancelled, the
// partial result is discarded and the context's error is returned.
func TriangulateContext(ctx context.Context, points []Point, opts Options) (*Triangulation, error) {
	t := newTriangulation(points, opts)
	if len(points) < 3 {
		t.logger.Debug("too few points to triangulate", zap.Int("points", len(points)))
		return t, nil
	}

	p0 := 0
	p1, ok := t.grid.Nearest(p0)
	if !ok {
		t.logger.Debug("no nearest neighbour for seed point", zap.Stringer("point", points[p0]))
		return t, nil
	}
	p2, ok := t.grid.BestThirdPoint(p0, p1)
	if !ok {
		t.logger.Debug("no seed triangle", zap.Int("p0", p0), zap.Int("p1", p1))
		return t, nil
	}
	t.logger.Debug("seed triangle", zap.Int("p0", p0), zap.Int("p1", p1), zap.Int("p2", p2))

	queue := t.addTriangle(p0, p1, p2)
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key := queue[0]
		queue = queue[1:]
		edge := t.edges[key]
		if edge.State != EdgeOpen {
			continue
		}

		apex := t.triangles[edge.Triangles[0]].Key.Third(key.A, key.B)
		third, ok := t.grid.BestThirdPointOpposite(key.A, key.B, apex)
		if !ok {
			edge.State = EdgeBoundary
			t.logger.Debug("boundary edge", zap.Stringer("edge", key))
			continue
		}
		// No backtracking: if the best point would overlap the mesh, the edge
		// stays on the boundary.
		if !t.canAttach(key, third) {
			edge.State = EdgeBoundary
			t.logger.Debug("boundary edge, best point taken",
				zap.Stringer("edge", key), zap.Int("third", third))
			continue
		}
		queue = append(queue, t.addTriangle(key.A, key.B, third)...)
	}

	t.logger.Info("triangulated",
		zap.Int("points", len(points)),
		zap.Int("triangles", len(t.triangles)),
		zap.Int("edges", len(t.edgeOrder)),
		zap.Int("boundary", len(t.Boundary())),
	)
	return t, nil
}

func newTriangulation(points []Point, opts Options) *Triangulation {
	if points == nil {
		fatalf("cannot triangulate a nil point slice")
	}
	if opts.Rows < 0 || opts.Cols < 0 {
		fatalf("grid dimensions must not be negative, got %d rows and %d cols", opts.Rows, opts.Cols)
	}
	if opts.Width < 0 || opts.Height < 0 {
		fatalf("grid region must not be negative, got %vx%v", opts.Width, opts.Height)
	}

	rows, cols := opts.Rows, opts.Cols
	if rows == 0 {
		rows = DefaultCells
	}
	if cols == 0 {
		cols = DefaultCells
	}

	var grid *Grid
	if opts.Width == 0 || opts.Height == 0 {
		grid = NewGridFitted(points, rows, cols)
	} else {
		grid = NewGrid(points, opts.Width, opts.Height, rows, cols)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	t := &Triangulation{
		points:   points,
		grid:     grid,
		byKey:    make(map[TriangleKey]int),
		edges:    make(map[EdgeKey]*Edge),
		incident: make([]map[int]struct{}, len(points)),
		logger:   logger,
	}
	for i := range t.incident {
		t.incident[i] = make(map[int]struct{})
	}
	return t
}

// Whether a triangle on edge with the given third point is new and only
// touches edges that are still open.
func (t *Triangulation) canAttach(edge EdgeKey, candidate int) bool {
	if _, ok := t.byKey[NewTriangleKey(edge.A, edge.B, candidate)]; ok {
		return false
	}
	for _, end := range [2]int{edge.A, edge.B} {
		if existing, ok := t.edges[NewEdgeKey(end, candidate)]; ok && existing.State != EdgeOpen {
			return false
		}
	}
	return true
}

// Add a triangle and register it with its edges and vertices. Returns the keys
// of the edges it created.
func (t *Triangulation) addTriangle(p0, p1, p2 int) []EdgeKey {
	key := NewTriangleKey(p0, p1, p2)
	id := len(t.triangles)
	t.triangles = append(t.triangles, &Triangle{ID: id, Key: key})
	t.byKey[key] = id
	for _, v := range key.Vertices() {
		t.incident[v][id] = struct{}{}
	}

	var created []EdgeKey
	for _, pair := range [3][2]int{{p0, p1}, {p1, p2}, {p2, p0}} {
		edgeKey := NewEdgeKey(pair[0], pair[1])
		edge, ok := t.edges[edgeKey]
		if !ok {
			edge = &Edge{Key: edgeKey, State: EdgeOpen}
			t.edges[edgeKey] = edge
			t.edgeOrder = append(t.edgeOrder, edgeKey)
			created = append(created, edgeKey)
		}
		edge.Triangles = append(edge.Triangles, id)
		if len(edge.Triangles) == 2 {
			edge.State = EdgeClosed
		}
	}
	return created
}

func (t *Triangulation) Points() []Point {
	return t.points
}

func (t *Triangulation) Grid() *Grid {
	return t.grid
}

func (t *Triangulation) Len() int {
	return len(t.triangles)
}

// All triangles, ordered by id.
func (t *Triangulation) Triangles() []*Triangle {
	result := make([]*Triangle, len(t.triangles))
	copy(result, t.triangles)
	return result
}

// The triangle with the given id, or nil.
func (t *Triangulation) Triangle(id int) *Triangle {
	if id < 0 || id >= len(t.triangles) {
		return nil
	}
	return t.triangles[id]
}

// The triangle with the given vertices, in any order.
func (t *Triangulation) Find(p0, p1, p2 int) (*Triangle, bool) {
	id, ok := t.byKey[NewTriangleKey(p0, p1, p2)]
	if !ok {
		return nil, false
	}
	return t.triangles[id], true
}

// All edges in creation order.
func (t *Triangulation) Edges() []*Edge {
	result := make([]*Edge, len(t.edgeOrder))
	for i, key := range t.edgeOrder {
		result[i] = t.edges[key]
	}
	return result
}

func (t *Triangulation) Edge(key EdgeKey) (*Edge, bool) {
	edge, ok := t.edges[key]
	return edge, ok
}

// Edges with a single triangle that could not be extended, in creation order.
func (t *Triangulation) Boundary() []*Edge {
	var result []*Edge
	for _, key := range t.edgeOrder {
		if edge := t.edges[key]; edge.State == EdgeBoundary {
			result = append(result, edge)
		}
	}
	return result
}

// Ids of the triangles using point p, ascending.
func (t *Triangulation) Incident(p int) []int {
	if p < 0 || p >= len(t.incident) {
		return nil
	}
	result := make([]int, 0, len(t.incident[p]))
	for id := range t.incident[p] {
		result = append(result, id)
	}
	sort.Ints(result)
	return result
}

// Ids of the triangles sharing an edge with triangle id.
func (t *Triangulation) Neighbors(id int) []int {
	triangle := t.Triangle(id)
	if triangle == nil {
		return nil
	}
	var result []int
	for _, key := range triangle.Key.Edges() {
		for _, other := range t.edges[key].Triangles {
			if other != id {
				result = append(result, other)
			}
		}
	}
	return result
}

func (t *Triangulation) Vertices(id int) [3]Point {
	key := t.triangles[id].Key
	return [3]Point{t.points[key.A], t.points[key.B], t.points[key.C]}
}

func (t *Triangulation) Centroid(id int) Point {
	v := t.Vertices(id)
	return ApproxCircumcenter(v[0], v[1], v[2])
}

// Flat index buffer with three point ids per triangle, each triple wound
// clockwise in a y-up coordinate system.
func (t *Triangulation) Indices() []int {
	result := make([]int, 0, len(t.triangles)*3)
	for _, triangle := range t.triangles {
		a, b, c := triangle.Key.A, triangle.Key.B, triangle.Key.C
		if Orientation(t.points[c], t.points[a], t.points[b]) == Left {
			b, c = c, b
		}
		result = append(result, a, b, c)
	}
	return result
}

// Check the bookkeeping of a finished triangulation: every edge has one or two
// triangles matching its state, and edges, triangles and incidence sets all
// agree with each other.
func (t *Triangulation) Validate() error {
	for _, key := range t.edgeOrder {
		if err := t.validateEdge(t.edges[key]); err != nil {
			return errors.Wrapf(err, "edge %v", key)
		}
	}
	for _, triangle := range t.triangles {
		if err := t.validateTriangle(triangle); err != nil {
			return errors.Wrapf(err, "triangle %d (%v)", triangle.ID, triangle.Key)
		}
	}
	for p, set := range t.incident {
		for id := range set {
			if !t.triangles[id].Key.Has(p) {
				return errors.Errorf("point %d lists triangle %d, which does not use it", p, id)
			}
		}
	}
	return nil
}

func (t *Triangulation) validateEdge(edge *Edge) error {
	n := len(edge.Triangles)
	if n < 1 || n > 2 {
		return errors.Errorf("has %d triangles", n)
	}
	switch edge.State {
	case EdgeOpen:
		return errors.New("was never settled")
	case EdgeClosed:
		if n != 2 {
			return errors.Errorf("is closed with %d triangles", n)
		}
	case EdgeBoundary:
		if n != 1 {
			return errors.Errorf("is on the boundary with %d triangles", n)
		}
	}
	for _, id := range edge.Triangles {
		if id < 0 || id >= len(t.triangles) {
			return errors.Errorf("lists unknown triangle %d", id)
		}
		if key := t.triangles[id].Key; !key.Has(edge.Key.A) || !key.Has(edge.Key.B) {
			return errors.Errorf("lists triangle %v, which does not contain it", key)
		}
	}
	return nil
}

func (t *Triangulation) validateTriangle(triangle *Triangle) error {
	for _, key := range triangle.Key.Edges() {
		edge, ok := t.edges[key]
		if !ok {
			return errors.Errorf("edge %v is missing", key)
		}
		if !containsInt(edge.Triangles, triangle.ID) {
			return errors.Errorf("edge %v does not list it", key)
		}
	}
	for _, v := range triangle.Key.Vertices() {
		if _, ok := t.incident[v][triangle.ID]; !ok {
			return errors.Errorf("point %d does not list it", v)
		}
	}
	v := t.Vertices(triangle.ID)
	if Orientation(v[2], v[0], v[1]) == On {
		return errors.New("is degenerate")
	}
	return nil
}
