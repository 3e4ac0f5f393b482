package advanced

import (
	"sort"

	"github.com/golang/geo/r2"
)

// Clipping of a segment network to a rectangle, so that the open cells on the
// outside of a Voronoi diagram can be closed off by the rectangle's sides and
// traced as faces.

// A side of a rectangle, with a flag for whether it is vertical. Crossings with
// a side are snapped onto it, so that they compare equal to the points that
// BoundarySegments produces.
type rectSide struct {
	Segment
	vertical bool
}

func rectSides(rect r2.Rect) [4]rectSide {
	v := rect.Vertices()
	corners := [4]Point{}
	for i, p := range v {
		corners[i] = PointFromPlanar(p)
	}
	var sides [4]rectSide
	for i := range sides {
		sides[i] = rectSide{
			Segment:  Segment{corners[i], corners[CircularIndex(i+1, 4)]},
			vertical: i%2 == 1,
		}
	}
	return sides
}

func (side rectSide) snap(p Point) Point {
	if side.vertical {
		p.X = side.Start.X
	} else {
		p.Y = side.Start.Y
	}
	return p
}

func (side rectSide) contains(p Point) bool {
	lo, hi := side.Key().Lo, side.Key().Hi
	if side.vertical {
		return p.X == lo.X && lo.Y <= p.Y && p.Y <= hi.Y
	}
	return p.Y == lo.Y && lo.X <= p.X && p.X <= hi.X
}

// Cut segments to the rectangle. A segment crossing two sides becomes the
// piece between the crossings, one crossing one side keeps its inside
// endpoint, and one crossing nothing survives only if it is entirely inside.
func ClipSegments(segments []Segment, rect r2.Rect) []Segment {
	sides := rectSides(rect)
	var result []Segment
	for _, s := range segments {
		var crossings []Point
		for _, side := range sides {
			if p, ok := SegmentIntersect(side.Start, side.End, s.Start, s.End); ok {
				crossings = append(crossings, side.snap(p))
			}
		}

		startInside := rect.ContainsPoint(s.Start.Planar())
		endInside := rect.ContainsPoint(s.End.Planar())
		switch {
		case len(crossings) >= 2:
			if crossings[0] != crossings[1] {
				result = append(result, Segment{crossings[0], crossings[1]})
			}
		case len(crossings) == 1:
			if startInside && s.Start != crossings[0] {
				result = append(result, Segment{s.Start, crossings[0]})
			} else if endInside && s.End != crossings[0] {
				result = append(result, Segment{crossings[0], s.End})
			}
		case startInside && endInside:
			result = append(result, s)
		}
	}
	return result
}

// For each vertex inside rect where exactly two segments meet, add a ray
// leading away from both of them, long enough to leave the rectangle. These
// are the dangling ends of a Voronoi diagram, whose cells are unbounded.
func ExtendOpenEnds(segments []Segment, rect r2.Rect) []Segment {
	var order []Point
	incident := make(map[Point][]Segment)
	seen := make(map[SegmentKey]struct{})
	for _, s := range segments {
		if _, ok := seen[s.Key()]; ok || s.Start == s.End {
			continue
		}
		seen[s.Key()] = struct{}{}
		for _, p := range [2]Point{s.Start, s.End} {
			if _, ok := incident[p]; !ok {
				order = append(order, p)
			}
			incident[p] = append(incident[p], s)
		}
	}

	size := rect.Size()
	length := size.X + size.Y
	var result []Segment
	for _, p := range order {
		if len(incident[p]) != 2 || !rect.ContainsPoint(p.Planar()) {
			continue
		}
		direction := r2.Point{}
		for _, s := range incident[p] {
			other, _ := s.Other(p)
			direction = direction.Add(p.Planar().Sub(other.Planar()).Normalize())
		}
		// The two segments continue straight through p
		if direction.Norm() == 0 {
			continue
		}
		end := p.Planar().Add(direction.Mul(length))
		result = append(result, Segment{p, PointFromPlanar(end)})
	}
	return result
}

// The sides of rect, split at every segment endpoint lying on them. Together
// with clipped segments, these close off the outer cells.
func BoundarySegments(rect r2.Rect, segments []Segment) []Segment {
	var result []Segment
	for _, side := range rectSides(rect) {
		stops := PointSet{side.Start: {}, side.End: {}}
		for _, s := range segments {
			for _, p := range [2]Point{s.Start, s.End} {
				if side.contains(p) {
					stops.Add(p)
				}
			}
		}

		ordered := make([]Point, 0, len(stops))
		for p := range stops {
			ordered = append(ordered, p)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return Distance(side.Start, ordered[i]) < Distance(side.Start, ordered[j])
		})
		for i := 1; i < len(ordered); i++ {
			result = append(result, Segment{ordered[i-1], ordered[i]})
		}
	}
	return result
}

// Faces of the Voronoi diagram of t, closed off by rect.
func BoundedFaces(t *Triangulation, rect r2.Rect) []*Polygon {
	dual := DualEdges(t)
	extended := append(dual, ExtendOpenEnds(dual, rect)...)
	clipped := ClipSegments(extended, rect)
	all := append(clipped, BoundarySegments(rect, clipped)...)
	return TraceFaces(BuildAdjacency(all))
}
