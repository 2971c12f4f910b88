package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modesolve/sweep"
)

// writeData drops a data file into a temp dir and returns its path.
func writeData(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// TestReadRows parses delimited floats and skips blank lines.
func TestReadRows(t *testing.T) {
	path := writeData(t, "rows.dat", "1.5,2.0\n\n3,4.25\n")
	rows, err := readRows(path)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1.5, 2.0}, {3, 4.25}}, rows)
}

// TestReadRows_Errors covers the empty file and a malformed cell.
func TestReadRows_Errors(t *testing.T) {
	_, err := readRows(writeData(t, "empty.dat", "\n\n"))
	assert.ErrorIs(t, err, ErrEmptyData)

	_, err = readRows(writeData(t, "bad.dat", "1.5,oops\n"))
	assert.Error(t, err)

	_, err = readRows(filepath.Join(t.TempDir(), "missing.dat"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = readRows(writeData(t, "ragged.dat", "1,2,3\n4,5\n"))
	assert.ErrorIs(t, err, ErrRaggedData)
}

// TestHeatMap_RaggedData surfaces the sentinel instead of indexing past a
// short row.
func TestHeatMap_RaggedData(t *testing.T) {
	data := writeData(t, "ragged_mode.dat", "0,1,0\n1,2\n0,1,0\n")
	err := New().HeatMap(sweep.HeatMapPlot{
		XMin: -1, XMax: 1, YMin: -1, YMax: 1,
		DataPath:  data,
		ImagePath: filepath.Join(filepath.Dir(data), "ragged_mode.png"),
	})
	assert.ErrorIs(t, err, ErrRaggedData)
}

// TestFieldGrid_Mapping checks the top-first row flip and the linear axis
// mapping over the window extents.
func TestFieldGrid_Mapping(t *testing.T) {
	g := fieldGrid{
		z: [][]float64{
			{7, 8, 9}, // top data row (y = ymax)
			{1, 2, 3}, // bottom data row (y = ymin)
		},
		xmin: -1, xmax: 1,
		ymin: -2, ymax: 2,
	}

	c, r := g.Dims()
	assert.Equal(t, 3, c)
	assert.Equal(t, 2, r)

	// plot row 0 is ymin, so it reads the last data row
	assert.Equal(t, 1.0, g.Z(0, 0))
	assert.Equal(t, 3.0, g.Z(2, 0))
	assert.Equal(t, 7.0, g.Z(0, 1))

	assert.Equal(t, -1.0, g.X(0))
	assert.Equal(t, 0.0, g.X(1))
	assert.Equal(t, 1.0, g.X(2))
	assert.Equal(t, -2.0, g.Y(0))
	assert.Equal(t, 2.0, g.Y(1))
}

// TestFieldGrid_SinglePoint degenerates to the window minimum per axis.
func TestFieldGrid_SinglePoint(t *testing.T) {
	g := fieldGrid{z: [][]float64{{5}}, xmin: 0.5, xmax: 2, ymin: -0.5, ymax: 2}
	assert.Equal(t, 0.5, g.X(0))
	assert.Equal(t, -0.5, g.Y(0))
}

// TestLine_RendersPNG exercises the full path: parse, plot, save.
func TestLine_RendersPNG(t *testing.T) {
	data := writeData(t, "sweep.dat", "1.50,2.70\n1.55,2.65\n1.60,2.59\n")
	img := filepath.Join(filepath.Dir(data), "sweep.png")

	r := New()
	err := r.Line(sweep.LinePlot{
		Title:  "n_eff vs wavelength",
		XLabel: "Wavelength", YLabel: "n_eff",
		DataPath: data, ImagePath: img,
	})
	require.NoError(t, err)

	info, err := os.Stat(img)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestHeatMap_RendersPNG exercises the heatmap path on a small field file.
func TestHeatMap_RendersPNG(t *testing.T) {
	data := writeData(t, "mode_Ex_0.dat", "0,1,0\n1,2,1\n0,1,0\n")
	img := filepath.Join(filepath.Dir(data), "mode_Ex_0.png")

	r := New()
	err := r.HeatMap(sweep.HeatMapPlot{
		Title: "Mode 0 |Ex| Profile",
		XMin:  -1, XMax: 1, YMin: -1, YMax: 1,
		DataPath: data, ImagePath: img,
	})
	require.NoError(t, err)

	info, err := os.Stat(img)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestLine_ShortRow rejects rows without both columns.
func TestLine_ShortRow(t *testing.T) {
	data := writeData(t, "short.dat", "1.50\n")
	err := New().Line(sweep.LinePlot{
		DataPath:  data,
		ImagePath: filepath.Join(filepath.Dir(data), "t.png"),
	})
	assert.ErrorIs(t, err, ErrEmptyData)
}
