package advanced

// A polygon as an unordered collection of boundary points and segments. Both
// are deduplicated, and adding a segment also adds its endpoints. Voronoi
// cells are built this way, and ConvexHull puts the points in order.
type Polygon struct {
	// Distinct boundary points in insertion order
	Points []Point
	// Distinct segments in insertion order
	Edges []Segment
	// Id of the input point this polygon is the cell of, or -1
	Site int

	pointSet PointSet
	edgeSet  map[SegmentKey]struct{}
}

func NewPolygon() *Polygon {
	return &Polygon{
		Site:     -1,
		pointSet: make(PointSet),
		edgeSet:  make(map[SegmentKey]struct{}),
	}
}

func NewSitePolygon(site int) *Polygon {
	p := NewPolygon()
	p.Site = site
	return p
}

// Add a boundary point. Returns false if it was already present.
func (p *Polygon) AddPoint(point Point) bool {
	if p.pointSet.Contains(point) {
		return false
	}
	p.pointSet.Add(point)
	p.Points = append(p.Points, point)
	return true
}

// Add a segment and its endpoints. Returns false if the segment, in either
// direction, was already present.
func (p *Polygon) AddSegment(s Segment) bool {
	key := s.Key()
	if _, ok := p.edgeSet[key]; ok {
		return false
	}
	p.edgeSet[key] = struct{}{}
	p.Edges = append(p.Edges, s)
	p.AddPoint(s.Start)
	p.AddPoint(s.End)
	return true
}

func (p *Polygon) HasPoint(point Point) bool {
	return p.pointSet.Contains(point)
}

func (p *Polygon) HasSegment(s Segment) bool {
	_, ok := p.edgeSet[s.Key()]
	return ok
}

func (p *Polygon) Len() int {
	return len(p.Points)
}

// The boundary points in clockwise order. False if the points do not span
// an area.
func (p *Polygon) ConvexHull() ([]Point, bool) {
	return ConvexHull(p.Points)
}

// Whether two polygons are made of the same segments, regardless of order and
// direction.
func (p *Polygon) SameEdges(other *Polygon) bool {
	if len(p.edgeSet) != len(other.edgeSet) {
		return false
	}
	for key := range p.edgeSet {
		if _, ok := other.edgeSet[key]; !ok {
			return false
		}
	}
	return true
}

// Centroid of the boundary points.
func (p *Polygon) Center() Point {
	var center Point
	if len(p.Points) == 0 {
		return center
	}
	for _, point := range p.Points {
		center.X += point.X
		center.Y += point.Y
		center.Z += point.Z
	}
	n := float64(len(p.Points))
	return Point{X: center.X / n, Y: center.Y / n, Z: center.Z / n}
}
