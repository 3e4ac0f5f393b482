package advanced

import "github.com/golang/geo/r2"

// The Voronoi dual of a triangulation. Each triangle is represented by its
// centroid, the same stand-in for the circumcenter that the triangulator uses.

// One segment between the centroids of every pair of triangles sharing an
// edge, in triangle order. Each pair is reported once.
func DualEdges(t *Triangulation) []Segment {
	var result []Segment
	seen := make(map[SegmentKey]struct{})
	for _, triangle := range t.triangles {
		for _, neighbor := range t.Neighbors(triangle.ID) {
			segment := Segment{t.Centroid(triangle.ID), t.Centroid(neighbor)}
			if segment.Start == segment.End {
				continue
			}
			if _, ok := seen[segment.Key()]; ok {
				continue
			}
			seen[segment.Key()] = struct{}{}
			result = append(result, segment)
		}
	}
	return result
}

// One cell per input point, made of the centroids of the triangles around it
// and the dual segments between them. Points touching fewer than three
// distinct centroids get no cell.
func SiteCells(t *Triangulation) []*Polygon {
	var result []*Polygon
	for site := range t.points {
		if cell := siteCell(t, site); cell != nil {
			result = append(result, cell)
		}
	}
	return result
}

// Like SiteCells, but only for sites strictly inside rect. Sites on the hull
// have unbounded cells, and restricting to an inner region avoids them.
func SiteCellsWithin(t *Triangulation, rect r2.Rect) []*Polygon {
	var result []*Polygon
	for site, p := range t.points {
		if !rect.InteriorContainsPoint(p.Planar()) {
			continue
		}
		if cell := siteCell(t, site); cell != nil {
			result = append(result, cell)
		}
	}
	return result
}

func siteCell(t *Triangulation, site int) *Polygon {
	incident := t.Incident(site)
	cell := NewSitePolygon(site)
	for _, id := range incident {
		cell.AddPoint(t.Centroid(id))
	}
	for _, id := range incident {
		for _, neighbor := range t.Neighbors(id) {
			// Both triangles use the site, so the shared edge goes through it
			if neighbor <= id || !t.triangles[neighbor].Key.Has(site) {
				continue
			}
			segment := Segment{t.Centroid(id), t.Centroid(neighbor)}
			if segment.Start != segment.End {
				cell.AddSegment(segment)
			}
		}
	}
	if cell.Len() < 3 {
		return nil
	}
	return cell
}

// One polygon per triangle, from the centroids of every triangle sharing a
// vertex with it (itself included). Polygons with fewer than three distinct
// points are dropped.
func TriangleCells(t *Triangulation) []*Polygon {
	var result []*Polygon
	for _, triangle := range t.triangles {
		cell := NewPolygon()
		for _, v := range triangle.Key.Vertices() {
			for _, id := range t.Incident(v) {
				cell.AddPoint(t.Centroid(id))
			}
		}
		if cell.Len() >= 3 {
			result = append(result, cell)
		}
	}
	return result
}
