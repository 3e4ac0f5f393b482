package advanced

import "math"

// Geometric predicates and measurements. These work on raw floats with no
// tolerance, so results for nearly collinear inputs are at the mercy of
// rounding. Callers that need robustness must snap their input first.

// Which side of a directed line a point is on. The values are chosen so that
// reversing the line negates the side.
type Side int

const (
	Left  Side = -1
	On    Side = 0
	Right Side = 1
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "on"
}

// Side of p relative to the directed line a->b, using the sign of the planar
// cross product (p-a)×(p-b). Only an exact zero counts as On.
func Orientation(p, a, b Point) Side {
	pp := p.Planar()
	value := pp.Sub(a.Planar()).Cross(pp.Sub(b.Planar()))
	switch {
	case value > 0:
		return Left
	case value < 0:
		return Right
	}
	return On
}

func Distance(a, b Point) float64 {
	return a.Vector().Distance(b.Vector())
}

// Angle at vertex c between the rays c->a and c->b, in degrees within [0, 180].
// A degenerate ray (c equal to a or b) gives 0.
func Angle(a, b, c Point) float64 {
	v0 := a.Vector().Sub(c.Vector())
	v1 := b.Vector().Sub(c.Vector())
	return v0.Angle(v1).Degrees()
}

// Stand-in for the circumcenter of a triangle. This is the centroid, not the
// true circumcenter, so circle emptiness tests and the Voronoi dual built on it
// are only approximations of their textbook counterparts.
func ApproxCircumcenter(a, b, c Point) Point {
	return Point{
		X: (a.X + b.X + c.X) / 3,
		Y: (a.Y + b.Y + c.Y) / 3,
		Z: (a.Z + b.Z + c.Z) / 3,
	}
}

// Intersection of the open segments ab and cd. Only proper crossings count:
// touching at an endpoint, overlapping collinear segments and parallel segments
// all report false.
func SegmentIntersect(a, b, c, d Point) (Point, bool) {
	pa, pb, pc, pd := a.Planar(), b.Planar(), c.Planar(), d.Planar()

	// c and d must be strictly on opposite sides of ab
	ab := pb.Sub(pa)
	if ab.Cross(pc.Sub(pa))*ab.Cross(pd.Sub(pa)) >= 0 {
		return Point{}, false
	}

	// and a and b strictly on opposite sides of cd
	cd := pd.Sub(pc)
	if cd.Cross(pa.Sub(pc))*cd.Cross(pb.Sub(pc)) >= 0 {
		return Point{}, false
	}

	t := pa.Sub(pc).Cross(cd) / cd.Cross(ab)
	return PointFromPlanar(pa.Add(ab.Mul(t))), true
}

// Whether c and d lie strictly on the same side of the line through a and b.
// A point on the line is never on the same side as anything.
func SameSide(a, b, c, d Point) bool {
	ab := b.Planar().Sub(a.Planar())
	sideC := ab.Cross(c.Planar().Sub(a.Planar()))
	sideD := ab.Cross(d.Planar().Sub(a.Planar()))
	return sideC*sideD > 0
}

// Axis aligned bounds of a point set in the XY plane. ok is false for an empty
// set.
func Bounds(points []Point) (minX, minY, maxX, maxY float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, 0, 0, false
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY, true
}
