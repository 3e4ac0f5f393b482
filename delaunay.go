// A grid accelerated Delaunay style triangulation package for Go.
//
// Points are filed into a coarse grid, and the triangulation grows outward
// from a seed triangle, one frontier edge at a time. From the triangulation you
// can derive an approximate Voronoi diagram, and the package also includes a
// convex hull and a tracer that recovers faces from a loose set of segments.
//
// The predicates use plain floats, and the circle tests use triangle centroids
// rather than true circumcenters, so results are approximate. See the
// advanced package for the building blocks.
package delaunay

import (
	"context"

	"github.com/golang/geo/r2"
	"github.com/osuushi/delaunay/advanced"
)

type Point = advanced.Point
type Segment = advanced.Segment
type Options = advanced.Options
type Triangulation = advanced.Triangulation
type Polygon = advanced.Polygon

// Triangulate a point set.
//
// Fewer than three points, or points that are all collinear, give an empty
// triangulation rather than an error. Errors are reserved for invalid
// arguments, like a nil slice or negative grid dimensions.
func Triangulate(points []Point, opts Options) (result *Triangulation, err error) {
	return TriangulateContext(context.Background(), points, opts)
}

// Like Triangulate, but gives up with ctx's error once ctx is done.
func TriangulateContext(ctx context.Context, points []Point, opts Options) (result *Triangulation, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.TriangulateContext(ctx, points, opts)
}

// Triangulate and build one Voronoi cell per point. If bounds has an area,
// only points strictly inside it get a cell, so the zero r2.Rect means no
// restriction.
func Voronoi(points []Point, opts Options, bounds r2.Rect) (result []*Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	t := advanced.Triangulate(points, opts)
	if size := bounds.Size(); size.X <= 0 || size.Y <= 0 {
		return advanced.SiteCells(t), nil
	}
	return advanced.SiteCellsWithin(t, bounds), nil
}

// Convex hull in clockwise order. Returns nil if the points don't span an
// area.
func ConvexHull(points []Point) []Point {
	hull, _ := advanced.ConvexHull(points)
	return hull
}

// Recover the bounded faces of a planar set of segments. Each face is a
// polygon whose points and edges run clockwise.
func Faces(segments []Segment) []*Polygon {
	return advanced.TraceFaces(advanced.BuildAdjacency(segments))
}
