package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/golang/geo/r2"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay"
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/generate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of triangulation. Input on stdin should be newline separated points in
// the form "x y". Output is plain text, with comment lines starting with #, so
// that the output of hull and generate can be piped back in.

var (
	app        = kingpin.New("delaunay", "Triangulate points read from stdin.")
	configPath = app.Flag("config", "YAML file setting width, height, rows and cols.").ExistingFile()
	verbose    = app.Flag("verbose", "Log progress to stderr.").Short('v').Bool()
	noColor    = app.Flag("no-color", "Disable coloured headers.").Bool()
	width      = app.Flag("width", "Width of the grid region. Zero fits the grid to the points.").Float64()
	height     = app.Flag("height", "Height of the grid region. Zero fits the grid to the points.").Float64()
	rows       = app.Flag("rows", "Grid rows.").Int()
	cols       = app.Flag("cols", "Grid columns.").Int()

	meshCmd    = app.Command("mesh", "Print triangles as clockwise triples of point indexes.")
	meshDraw   = meshCmd.Flag("draw", "Write a debug PNG of the triangulation to this path.").String()
	meshImgcat = meshCmd.Flag("imgcat", "Also print the debug PNG inline (iTerm).").Bool()
	meshLabels = meshCmd.Flag("labels", "Name each triangle in the debug PNG.").Bool()
	meshScale  = meshCmd.Flag("scale", "Pixels per unit in the debug PNG.").Default("20").Float64()

	voronoiCmd     = app.Command("voronoi", "Print the Voronoi cell of every point.")
	voronoiBounded = voronoiCmd.Flag("bounded", "Close off the outer cells with the grid region and print all faces.").Bool()
	voronoiDraw    = voronoiCmd.Flag("draw", "Write a debug PNG of the cells to this path.").String()
	voronoiImgcat  = voronoiCmd.Flag("imgcat", "Also print the debug PNG inline (iTerm).").Bool()
	voronoiScale   = voronoiCmd.Flag("scale", "Pixels per unit in the debug PNG.").Default("20").Float64()

	hullCmd = app.Command("hull", "Print the convex hull, clockwise.")

	generateCmd    = app.Command("generate", "Print a random point set.")
	generateCount  = generateCmd.Flag("count", "Number of points.").Default("100").Int()
	generateSeed   = generateCmd.Flag("seed", "Random seed.").Default("1").Int64()
	generateMode   = generateCmd.Flag("mode", "Distribution of the points.").Default("uniform").Enum("uniform", "stratified", "lattice")
	generateStrata = generateCmd.Flag("strata", "Strata (or lattice cells) per side.").Default("10").Int()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		app.FatalIfError(err, "creating logger")
	}
	defer logger.Sync()

	config, err := loadConfig(*configPath)
	app.FatalIfError(err, "")
	config = config.Merge(Config{Width: *width, Height: *height, Rows: *rows, Cols: *cols})

	r := &runner{
		in:     os.Stdin,
		out:    os.Stdout,
		color:  aurora.NewAurora(!*noColor),
		config: config,
		logger: logger,
	}

	switch command {
	case meshCmd.FullCommand():
		err = r.mesh(drawing{path: *meshDraw, scale: *meshScale, labels: *meshLabels, inline: *meshImgcat})
	case voronoiCmd.FullCommand():
		err = r.voronoi(*voronoiBounded, drawing{path: *voronoiDraw, scale: *voronoiScale, inline: *voronoiImgcat})
	case hullCmd.FullCommand():
		err = r.hull()
	case generateCmd.FullCommand():
		err = r.generate(rand.New(rand.NewSource(*generateSeed)), *generateMode, *generateCount, *generateStrata)
	}
	app.FatalIfError(err, command)
}

type drawing struct {
	path   string
	scale  float64
	labels bool
	inline bool
}

type runner struct {
	in     io.Reader
	out    io.Writer
	color  aurora.Aurora
	config Config
	logger *zap.Logger
}

func (r *runner) header(format string, args ...interface{}) {
	fmt.Fprintln(r.out, r.color.Cyan("# "+fmt.Sprintf(format, args...)).String())
}

func (r *runner) triangulate() (*advanced.Triangulation, error) {
	points, err := readPoints(r.in)
	if err != nil {
		return nil, err
	}
	return delaunay.Triangulate(points, r.config.Options(r.logger))
}

func (r *runner) mesh(d drawing) error {
	t, err := r.triangulate()
	if err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		r.logger.Warn("inconsistent triangulation", zap.Error(err))
	}

	r.header("%d points, %d triangles, %d boundary edges", len(t.Points()), t.Len(), len(t.Boundary()))
	indices := t.Indices()
	for i := 0; i < len(indices); i += 3 {
		fmt.Fprintf(r.out, "%d %d %d\n", indices[i], indices[i+1], indices[i+2])
	}

	if d.path == "" {
		return nil
	}
	if err := t.Draw(d.path, d.scale, d.labels); err != nil {
		return err
	}
	if d.inline {
		advanced.CatImage(d.path, r.out)
	}
	return nil
}

func (r *runner) voronoi(bounded bool, d drawing) error {
	t, err := r.triangulate()
	if err != nil {
		return err
	}

	var cells []*advanced.Polygon
	if bounded {
		cells = advanced.BoundedFaces(t, r.region(t.Points()))
	} else {
		cells = advanced.SiteCells(t)
	}

	r.header("%d cells", len(cells))
	for i, cell := range cells {
		ordered := cell.Points
		if cell.Site >= 0 {
			// Site cells are collected unordered
			hull, ok := cell.ConvexHull()
			if !ok {
				continue
			}
			ordered = hull
			r.header("site %d %v", cell.Site, t.Points()[cell.Site])
		} else {
			r.header("face %d", i)
		}
		writePoints(r.out, ordered)
	}

	if d.path == "" {
		return nil
	}
	if err := advanced.DrawPolygons(cells, d.path, d.scale); err != nil {
		return err
	}
	if d.inline {
		advanced.CatImage(d.path, r.out)
	}
	return nil
}

// The region bounded Voronoi faces are clipped to: the configured grid region,
// or the bounds of the points.
func (r *runner) region(points []advanced.Point) r2.Rect {
	if r.config.Width > 0 && r.config.Height > 0 {
		return r2.RectFromPoints(r2.Point{}, r2.Point{X: r.config.Width, Y: r.config.Height})
	}
	minX, minY, maxX, maxY, _ := advanced.Bounds(points)
	return r2.RectFromPoints(r2.Point{X: minX, Y: minY}, r2.Point{X: maxX, Y: maxY})
}

func (r *runner) hull() error {
	points, err := readPoints(r.in)
	if err != nil {
		return err
	}
	hull := delaunay.ConvexHull(points)
	if hull == nil {
		return errors.Errorf("%d points do not span an area", len(points))
	}
	r.header("hull of %d points", len(hull))
	writePoints(r.out, hull)
	return nil
}

func (r *runner) generate(rnd *rand.Rand, mode string, count, strata int) error {
	w, h := r.config.Width, r.config.Height
	if w == 0 {
		w = 100
	}
	if h == 0 {
		h = 100
	}

	var points []advanced.Point
	switch mode {
	case "uniform":
		points = generate.Uniform(rnd, w, h, count)
	case "stratified":
		points = generate.Stratified(rnd, w, h, strata, strata, count)
	case "lattice":
		points = generate.Lattice(rnd, w, h, strata, strata)
	default:
		return errors.Errorf("unknown mode %q", mode)
	}
	r.header("%d %s points in %sx%s", len(points), mode, formatFloat(w), formatFloat(h))
	writePoints(r.out, points)
	return nil
}
