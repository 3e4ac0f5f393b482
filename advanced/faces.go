package advanced

import (
	"fmt"
	"sort"
	"strings"
)

// Reconstruction of faces from a loose set of segments. Segments sharing an
// endpoint are linked, and a face is traced by walking from segment to segment,
// always taking the tightest right turn. On a planar graph this walks around
// one bounded face clockwise.

type PolygonEdge struct {
	Segment
	// Shared endpoint -> other edges touching it
	shared map[Point][]*PolygonEdge
	// Faces known to use this edge
	polygons []*Polygon
}

func newPolygonEdge(s Segment) *PolygonEdge {
	return &PolygonEdge{
		Segment: s,
		shared:  make(map[Point][]*PolygonEdge),
	}
}

// Other edges sharing endpoint p.
func (e *PolygonEdge) Shared(p Point) []*PolygonEdge {
	return e.shared[p]
}

func (e *PolygonEdge) Polygons() []*Polygon {
	return e.polygons
}

func (e *PolygonEdge) link(p Point, other *PolygonEdge) {
	e.shared[p] = append(e.shared[p], other)
}

func (e *PolygonEdge) addPolygon(polygon *Polygon) {
	for _, existing := range e.polygons {
		if existing == polygon {
			return
		}
	}
	e.polygons = append(e.polygons, polygon)
}

type EdgeGraph struct {
	// Distinct edges in input order
	Edges []*PolygonEdge
	byKey map[SegmentKey]*PolygonEdge
}

// Deduplicate segments (in either direction) and link every pair sharing
// exactly one endpoint. This compares every pair, so callers should keep the
// segment set local. Zero length segments are ignored.
func BuildAdjacency(segments []Segment) *EdgeGraph {
	g := &EdgeGraph{byKey: make(map[SegmentKey]*PolygonEdge)}
	for _, s := range segments {
		if s.Start == s.End {
			continue
		}
		if _, ok := g.byKey[s.Key()]; ok {
			continue
		}
		edge := newPolygonEdge(s)
		g.byKey[s.Key()] = edge
		g.Edges = append(g.Edges, edge)
	}

	for i, a := range g.Edges {
		for _, b := range g.Edges[i+1:] {
			if p, ok := a.SharedPoint(b.Segment); ok {
				a.link(p, b)
				b.link(p, a)
			}
		}
	}
	return g
}

// The graph edge for a segment, in either direction.
func (g *EdgeGraph) Lookup(s Segment) (*PolygonEdge, bool) {
	edge, ok := g.byKey[s.Key()]
	return edge, ok
}

func (g *EdgeGraph) Len() int {
	return len(g.Edges)
}

// Trace the face to the right of seed when walking it towards end. At each
// vertex, the walk continues along the edge that lies strictly right of the
// current direction and makes the smallest angle with the way back. The face
// is complete when the walk returns to seed. A dead end, or a walk that loops
// without coming back to seed, gives no face.
//
// The polygon's Edges and Points are in walking order. The polygon is not
// linked to its edges; TraceFaces does that.
func TraceFace(seed *PolygonEdge, end Point) (*Polygon, bool) {
	start, ok := seed.Other(end)
	if !ok {
		return nil, false
	}

	polygon := NewPolygon()
	polygon.AddSegment(Segment{start, end})
	visited := map[*PolygonEdge]struct{}{seed: {}}
	current := seed
	for {
		var next *PolygonEdge
		var nextEnd Point
		bestAngle := 0.0
		for _, candidate := range current.Shared(end) {
			other, _ := candidate.Other(end)
			if Orientation(other, start, end) != Right {
				continue
			}
			angle := Angle(start, other, end)
			if next == nil || angle < bestAngle {
				next, nextEnd, bestAngle = candidate, other, angle
			}
		}
		if next == nil {
			return nil, false
		}
		if next == seed {
			return polygon, true
		}
		if _, ok := visited[next]; ok {
			return nil, false
		}
		visited[next] = struct{}{}
		polygon.AddSegment(Segment{end, nextEnd})
		start, end, current = end, nextEnd, next
	}
}

// Trace from seed towards its End point.
func TraceFaceFrom(seed *PolygonEdge) (*Polygon, bool) {
	return TraceFace(seed, seed.End)
}

// Trace every face the graph bounds. Each edge is tried in both directions,
// faces found more than once are reported once, and every face is linked to
// the edges it uses.
func TraceFaces(g *EdgeGraph) []*Polygon {
	var result []*Polygon
	seen := make(map[string]struct{})
	for _, edge := range g.Edges {
		for _, end := range [2]Point{edge.End, edge.Start} {
			polygon, ok := TraceFace(edge, end)
			if !ok {
				continue
			}
			signature := faceSignature(polygon)
			if _, ok := seen[signature]; ok {
				continue
			}
			seen[signature] = struct{}{}
			for _, s := range polygon.Edges {
				if graphEdge, ok := g.Lookup(s); ok {
					graphEdge.addPolygon(polygon)
				}
			}
			result = append(result, polygon)
		}
	}
	return result
}

func faceSignature(polygon *Polygon) string {
	keys := make([]SegmentKey, len(polygon.Edges))
	for i, s := range polygon.Edges {
		keys[i] = s.Key()
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Lo != keys[j].Lo {
			return keys[i].Lo.Less(keys[j].Lo)
		}
		return keys[i].Hi.Less(keys[j].Hi)
	})
	var b strings.Builder
	for _, key := range keys {
		fmt.Fprintf(&b, "%v|%v|%v|%v;", key.Lo.X, key.Lo.Y, key.Hi.X, key.Hi.Y)
	}
	return b.String()
}
