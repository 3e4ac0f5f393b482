package advanced

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/dbg"
	"github.com/pkg/errors"
)

// Debug drawing. Images are written as PNG, and can be shown inline in
// terminals that support it (iTerm) with CatImage.

const dbgDrawPadding = 40

// Maps coordinates to pixels, with the origin at the bottom left. The gg
// context is not flipped, so that labels come out the right way up.
type canvas struct {
	*gg.Context
	scale      float64
	minX, minY float64
	height     float64
}

func newCanvas(points []Point, scale float64) *canvas {
	minX, minY, maxX, maxY, ok := Bounds(points)
	if !ok {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	return &canvas{
		Context: c,
		scale:   scale,
		minX:    minX,
		minY:    minY,
		height:  float64(height),
	}
}

func (c *canvas) pixel(p Point) (float64, float64) {
	x := (p.X-c.minX)*c.scale + dbgDrawPadding
	y := c.height - ((p.Y-c.minY)*c.scale + dbgDrawPadding)
	return x, y
}

func (c *canvas) line(s Segment) {
	x0, y0 := c.pixel(s.Start)
	x1, y1 := c.pixel(s.End)
	c.DrawLine(x0, y0, x1, y1)
	c.Stroke()
}

func (c *canvas) dot(p Point, radius float64) {
	x, y := c.pixel(p)
	c.DrawCircle(x, y, radius)
	c.Fill()
}

func (c *canvas) label(p Point, text string) {
	x, y := c.pixel(p)
	c.DrawStringAnchored(text, x, y, 0.5, 0.5)
}

// Draw the triangulation to a PNG at path. Edges are coloured by state (open
// yellow, closed cyan, boundary red), and with labels set, each triangle
// gets a readable name at its centroid.
func (t *Triangulation) Draw(path string, scale float64, labels bool) error {
	c := newCanvas(t.points, scale)
	c.SetLineWidth(2)
	for _, edge := range t.Edges() {
		switch edge.State {
		case EdgeOpen:
			c.SetRGB(1, 1, 0)
		case EdgeClosed:
			c.SetRGB(0, 1, 1)
		case EdgeBoundary:
			c.SetRGB(1, 0, 0)
		}
		c.line(Segment{t.points[edge.Key.A], t.points[edge.Key.B]})
	}

	c.SetRGB(1, 1, 1)
	for _, p := range t.points {
		c.dot(p, 3)
	}

	if labels {
		c.SetRGB(0.8, 0.8, 0.8)
		for _, triangle := range t.triangles {
			c.label(t.Centroid(triangle.ID), dbg.Name(triangle))
		}
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Draw polygons to a PNG at path, each filled with its own shade.
func DrawPolygons(polygons []*Polygon, path string, scale float64) error {
	var all []Point
	for _, polygon := range polygons {
		all = append(all, polygon.Points...)
	}
	c := newCanvas(all, scale)
	c.SetLineWidth(2)

	for i, polygon := range polygons {
		ordered, ok := polygon.ConvexHull()
		if !ok {
			continue
		}
		x, y := c.pixel(ordered[0])
		c.MoveTo(x, y)
		for _, p := range ordered[1:] {
			x, y = c.pixel(p)
			c.LineTo(x, y)
		}
		c.ClosePath()
		// Golden ratio hue steps
		hue := float64(i) * 0.618033988749895
		hue -= math.Floor(hue)
		c.SetRGB(0.2+0.6*hue, 0.5, 0.8-0.6*hue)
		c.FillPreserve()
		c.SetRGB(1, 1, 1)
		c.Stroke()
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Print a PNG to w as an inline image.
func CatImage(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}
