package advanced

import (
	"embed"
	"log"
	"math/rand"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file reads the svg fixtures. It is not a real svg reader: points are the
// centers of <circle> elements, and segments are <line> elements, both in
// document order. Transforms are ignored. If anything goes wrong, it exits.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func loadFixture(name string) *svgparser.Element {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return rootEl
}

func LoadPoints(name string) []Point {
	circles := loadFixture(name).FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}
	points := make([]Point, 0, len(circles))
	for _, circle := range circles {
		points = append(points, Point{
			X: attributeFloat(circle, "cx"),
			Y: attributeFloat(circle, "cy"),
		})
	}
	return points
}

func LoadSegments(name string) []Segment {
	lines := loadFixture(name).FindAll("line")
	if len(lines) == 0 {
		log.Fatalf("No lines found in fixture %q", name)
	}
	segments := make([]Segment, 0, len(lines))
	for _, line := range lines {
		segments = append(segments, Segment{
			Start: Point{X: attributeFloat(line, "x1"), Y: attributeFloat(line, "y1")},
			End:   Point{X: attributeFloat(line, "x2"), Y: attributeFloat(line, "y2")},
		})
	}
	return segments
}

func attributeFloat(el *svgparser.Element, name string) float64 {
	value, err := strconv.ParseFloat(el.Attributes[name], 64)
	if err != nil {
		log.Fatalf("Invalid %s value %q: %v", name, el.Attributes[name], err)
	}
	return value
}

// Some ad hoc fixtures

func RandomPoints(seed int64, count int, size float64) []Point {
	rnd := rand.New(rand.NewSource(seed))
	points := make([]Point, count)
	for i := range points {
		points[i] = Point{X: rnd.Float64() * size, Y: rnd.Float64() * size}
	}
	return points
}
