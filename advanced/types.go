package advanced

import (
	"fmt"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Points are plain values. Two points are the same point iff their coordinates
// are equal, which lets them be used directly as map keys. Inside a
// triangulation run, points are addressed by their index in the input slice.
type Point struct {
	X, Y, Z float64
}

func (p Point) Vector() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Projection onto the XY plane. All of the predicates are planar.
func (p Point) Planar() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func PointFromVector(v r3.Vector) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

func PointFromPlanar(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

// Lexicographic ordering on X, then Y, then Z.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.Z < other.Z
}

func (p Point) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// An unordered pair of point ids. A is always the smaller id, so (a, b) and
// (b, a) produce the same key.
type EdgeKey struct {
	A, B int
}

func NewEdgeKey(p0, p1 int) EdgeKey {
	if p1 < p0 {
		p0, p1 = p1, p0
	}
	return EdgeKey{p0, p1}
}

func (k EdgeKey) Has(id int) bool {
	return k.A == id || k.B == id
}

// The endpoint opposite to id, or -1 if id is not an endpoint.
func (k EdgeKey) Other(id int) int {
	switch id {
	case k.A:
		return k.B
	case k.B:
		return k.A
	}
	return -1
}

func (k EdgeKey) String() string {
	return fmt.Sprintf("%d-%d", k.A, k.B)
}

// Three point ids sorted ascending, so that every permutation of the same
// vertices yields the same key.
type TriangleKey struct {
	A, B, C int
}

func NewTriangleKey(p0, p1, p2 int) TriangleKey {
	if p1 < p0 {
		p0, p1 = p1, p0
	}
	if p2 < p1 {
		p1, p2 = p2, p1
	}
	if p1 < p0 {
		p0, p1 = p1, p0
	}
	return TriangleKey{p0, p1, p2}
}

func (k TriangleKey) Vertices() [3]int {
	return [3]int{k.A, k.B, k.C}
}

func (k TriangleKey) Has(id int) bool {
	return k.A == id || k.B == id || k.C == id
}

func (k TriangleKey) Edges() [3]EdgeKey {
	return [3]EdgeKey{
		{k.A, k.B},
		{k.B, k.C},
		{k.A, k.C},
	}
}

// The vertex that is not on edge p0-p1, or -1 if p0-p1 is not an edge of the
// triangle.
func (k TriangleKey) Third(p0, p1 int) int {
	if p0 == p1 || !k.Has(p0) || !k.Has(p1) {
		return -1
	}
	return k.A + k.B + k.C - p0 - p1
}

func (k TriangleKey) String() string {
	return fmt.Sprintf("%d-%d-%d", k.A, k.B, k.C)
}

// A line segment in coordinate space. Unlike EdgeKey, segments are not tied to
// a point table; this is what the Voronoi builder and the face reconstructor
// trade in. Start and End keep the direction the segment was created with.
type Segment struct {
	Start, End Point
}

// Canonical, direction-free identity of a segment.
type SegmentKey struct {
	Lo, Hi Point
}

func (s Segment) Key() SegmentKey {
	if s.End.Less(s.Start) {
		return SegmentKey{s.End, s.Start}
	}
	return SegmentKey{s.Start, s.End}
}

func (s Segment) Reverse() Segment {
	return Segment{s.End, s.Start}
}

func (s Segment) Has(p Point) bool {
	return s.Start == p || s.End == p
}

// The endpoint opposite to p. The second result is false if p is not an
// endpoint.
func (s Segment) Other(p Point) (Point, bool) {
	switch p {
	case s.Start:
		return s.End, true
	case s.End:
		return s.Start, true
	}
	return Point{}, false
}

// The endpoint two segments have in common. Segments that are equal, or share
// zero or two endpoints, have no shared point.
func (s Segment) SharedPoint(other Segment) (Point, bool) {
	if s.Key() == other.Key() {
		return Point{}, false
	}
	if other.Has(s.Start) {
		return s.Start, true
	}
	if other.Has(s.End) {
		return s.End, true
	}
	return Point{}, false
}

func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

func (s Segment) String() string {
	return fmt.Sprintf("%v->%v", s.Start, s.End)
}

type PointSet map[Point]struct{}

func (set PointSet) Add(p Point) {
	set[p] = struct{}{}
}

func (set PointSet) Contains(p Point) bool {
	_, ok := set[p]
	return ok
}
