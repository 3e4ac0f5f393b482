package advanced

import "math"

// Treat a slice as a circular buffer. Unlike the raw modulo operator, this
// only gives non-negative indexes.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

type PointStack []Point

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

// The top two points, top last. ok is false with fewer than two points.
func (s PointStack) PeekTwo() (below, top Point, ok bool) {
	if len(s) < 2 {
		return Point{}, Point{}, false
	}
	return s[len(s)-2], s[len(s)-1], true
}

func (s PointStack) Len() int {
	return len(s)
}

// Brute force nearest point to points[target] with a nonzero distance.
func ClosestPoint(points []Point, target int) (int, bool) {
	best, bestDistance := -1, math.Inf(1)
	for i, p := range points {
		if i == target {
			continue
		}
		d := Distance(points[target], p)
		if d == 0 {
			continue
		}
		if d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return best, best >= 0
}

func containsInt(list []int, value int) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
