package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/advanced"
	"github.com/pkg/errors"
)

// Read newline separated points in the form "x y" or "x y z". Blank lines and
// lines starting with # are skipped.
func readPoints(in io.Reader) ([]advanced.Point, error) {
	points := []advanced.Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) < 2 || len(parts) > 3 {
		return advanced.Point{}, errors.Errorf("expected 2 or 3 coordinates, got %d", len(parts))
	}
	var coords [3]float64
	for i, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return advanced.Point{}, errors.Wrapf(err, "coordinate %d", i+1)
		}
		coords[i] = value
	}
	return advanced.Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

func writePoints(out io.Writer, points []advanced.Point) {
	for _, p := range points {
		fmt.Fprintf(out, "%s %s\n", formatFloat(p.X), formatFloat(p.Y))
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
