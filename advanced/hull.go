package advanced

import "sort"

// Convex hull by Andrew's monotone chain. Points are sorted by X ascending,
// then Y descending, and each chain only keeps strict right turns, so
// collinear and duplicate points are dropped. The result runs clockwise
// (y-up), starting from the leftmost point. The input is left untouched.
//
// Returns false if there are fewer than three input points, or if fewer than
// three points survive (all points collinear or coincident).
func ConvexHull(points []Point) ([]Point, bool) {
	if len(points) < 3 {
		return nil, false
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y > sorted[j].Y
	})

	upper := hullChain(sorted)
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	lower := hullChain(sorted)

	// Each chain ends where the other begins
	hull := make([]Point, 0, len(upper)+len(lower)-2)
	hull = append(hull, upper[:len(upper)-1]...)
	hull = append(hull, lower[:len(lower)-1]...)
	if len(hull) < 3 {
		return nil, false
	}
	return hull, true
}

func hullChain(sorted []Point) PointStack {
	var stack PointStack
	for _, p := range sorted {
		for {
			below, top, ok := stack.PeekTwo()
			if !ok || Orientation(p, below, top) == Right {
				break
			}
			stack.Pop()
		}
		stack.Push(p)
	}
	return stack
}
