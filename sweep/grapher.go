package sweep

import (
	"path/filepath"
	"strings"
)

// LinePlot describes one x/y rendering request: a title, axis labels, and
// the delimited data file to read. The collaborator owns parsing and layout.
type LinePlot struct {
	Title     string
	XLabel    string
	YLabel    string
	DataPath  string
	ImagePath string
}

// HeatMapPlot describes one field-profile rendering request over the
// simulation window extents.
type HeatMapPlot struct {
	Title                  string
	XMin, XMax, YMin, YMax float64
	DataPath               string
	ImagePath              string
}

// Grapher is the abstract graphing collaborator: it accepts a title, axis
// labels, and a data-file path, and produces an image. Package render
// provides the concrete implementation; sweeps treat a nil Grapher as
// "no rendering requested".
type Grapher interface {
	Line(p LinePlot) error
	HeatMap(p HeatMapPlot) error
}

// imagePathFor swaps a data file's extension for .png, next to the data.
func imagePathFor(dataPath string) string {
	ext := filepath.Ext(dataPath)

	return strings.TrimSuffix(dataPath, ext) + ".png"
}
