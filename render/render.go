package render

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/modesolve/sweep"
)

// ErrEmptyData indicates a data file with no parsable rows.
var ErrEmptyData = errors.New("render: data file contains no rows")

// ErrRaggedData indicates a data file whose rows differ in length; heatmaps
// index rows uniformly and cannot consume such a file.
var ErrRaggedData = errors.New("render: data rows have differing lengths")

// Default canvas size for saved images.
const (
	defaultWidth  = 6 * vg.Inch
	defaultHeight = 4 * vg.Inch
)

// heatPaletteColors is the color count used for field-profile heatmaps.
const heatPaletteColors = 64

// Renderer draws sweep artifacts with gonum/plot.
// The zero value is ready to use.
type Renderer struct{}

// Compile-time conformance check.
var _ sweep.Grapher = (*Renderer)(nil)

// New returns a ready Renderer.
func New() *Renderer { return &Renderer{} }

// Line renders a "variable,n_eff" data file as a line plot and saves it to
// p.ImagePath as PNG.
func (r *Renderer) Line(p sweep.LinePlot) error {
	rows, err := readRows(p.DataPath)
	if err != nil {
		return fmt.Errorf("render: line %q: %w", p.DataPath, err)
	}
	xys := make(plotter.XYs, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return fmt.Errorf("render: line %q row %d: %w", p.DataPath, i, ErrEmptyData)
		}
		xys[i].X, xys[i].Y = row[0], row[1]
	}

	plt := plot.New()
	plt.Title.Text = p.Title
	plt.X.Label.Text = p.XLabel
	plt.Y.Label.Text = p.YLabel
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("render: line %q: %w", p.DataPath, err)
	}
	plt.Add(line, plotter.NewGrid())

	return plt.Save(defaultWidth, defaultHeight, p.ImagePath)
}

// HeatMap renders a grid-shaped magnitude file (rows written top-first) as a
// heatmap over the window extents and saves it to p.ImagePath as PNG.
func (r *Renderer) HeatMap(p sweep.HeatMapPlot) error {
	rows, err := readRows(p.DataPath)
	if err != nil {
		return fmt.Errorf("render: heatmap %q: %w", p.DataPath, err)
	}
	g := fieldGrid{
		z:    rows,
		xmin: p.XMin, xmax: p.XMax,
		ymin: p.YMin, ymax: p.YMax,
	}

	plt := plot.New()
	plt.Title.Text = p.Title
	plt.X.Label.Text = "x"
	plt.Y.Label.Text = "y"
	plt.Add(plotter.NewHeatMap(g, palette.Heat(heatPaletteColors, 1)))

	return plt.Save(defaultWidth, defaultHeight, p.ImagePath)
}

// readRows parses a comma-delimited float file, skipping blank lines.
func readRows(path string) ([][]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows [][]float64
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cells := strings.Split(line, ",")
		row := make([]float64, len(cells))
		for i, c := range cells {
			if row[i], err = strconv.ParseFloat(strings.TrimSpace(c), 64); err != nil {
				return nil, err
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("row %d has %d columns, row 0 has %d: %w",
				len(rows), len(row), len(rows[0]), ErrRaggedData)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyData
	}

	return rows, nil
}

// fieldGrid adapts a parsed magnitude file to plotter.GridXYZ. Data rows are
// stored top-first (the artifact convention), so row r=0 of the plot (ymin)
// maps to the last data row.
type fieldGrid struct {
	z                      [][]float64
	xmin, xmax, ymin, ymax float64
}

func (g fieldGrid) Dims() (c, r int) { return len(g.z[0]), len(g.z) }

func (g fieldGrid) Z(c, r int) float64 { return g.z[len(g.z)-1-r][c] }

func (g fieldGrid) X(c int) float64 {
	if len(g.z[0]) == 1 {
		return g.xmin
	}

	return g.xmin + (g.xmax-g.xmin)*float64(c)/float64(len(g.z[0])-1)
}

func (g fieldGrid) Y(r int) float64 {
	if len(g.z) == 1 {
		return g.ymin
	}

	return g.ymin + (g.ymax-g.ymin)*float64(r)/float64(len(g.z)-1)
}
