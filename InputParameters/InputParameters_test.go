package InputParameters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var plotFile = []byte(`
Title: "notched bar"
Load: 0.125
WarpFactor: 5
FieldName: strain
Components: 2
Output: frame.png
MeshOptions:
  show_edges: true
  clim: [0, 1]
  color: red
`)

func TestPlotParameters(t *testing.T) {
	pp := NewPlotParameters()
	require.NoError(t, pp.Parse(plotFile))
	assert.Equal(t, "notched bar", pp.Title)
	require.NotNil(t, pp.Load)
	assert.Equal(t, 0.125, *pp.Load)
	assert.Equal(t, "notched bar - load 0.125", pp.PlotTitle())
	require.NotNil(t, pp.WarpFactor)
	assert.Equal(t, 5., *pp.WarpFactor)
	assert.Equal(t, "strain", pp.FieldName)
	assert.Equal(t, "frame.png", pp.Output)
	// Defaults survive for keys the file leaves out
	assert.Equal(t, "xy", pp.Camera)
	assert.Equal(t, [2]int{1024, 768}, pp.WindowSize)
	assert.Equal(t, true, pp.MeshOptions["show_edges"])
	assert.Equal(t, []interface{}{0., 1.}, pp.MeshOptions["clim"])
	assert.Equal(t, "red", pp.MeshOptions["color"])
	if testing.Verbose() {
		pp.Print()
	}
}

func TestPlotParametersDefaults(t *testing.T) {
	pp := NewPlotParameters()
	require.NoError(t, pp.Parse([]byte("Title: bare\n")))
	assert.Nil(t, pp.Load)
	assert.Equal(t, "bare", pp.PlotTitle())
	load := 2.
	pp.Title, pp.Load = "", &load
	assert.Equal(t, "load 2.000", pp.PlotTitle())
	assert.Nil(t, pp.WarpFactor)
	assert.Equal(t, "Field", pp.FieldName)
	assert.Equal(t, 2, pp.Components)
}

func TestPlotParametersInvalid(t *testing.T) {
	for _, data := range []string{
		"Components: 4\n",
		"Camera: top\n",
		"WindowSize: [0, 10]\n",
		"Title: [unterminated\n",
	} {
		assert.Error(t, NewPlotParameters().Parse([]byte(data)), data)
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plot.yaml")
	require.NoError(t, os.WriteFile(path, plotFile, 0644))
	pp := NewPlotParameters()
	require.NoError(t, pp.ReadFile(path))
	assert.Equal(t, "strain", pp.FieldName)
	assert.Error(t, pp.ReadFile(filepath.Join(t.TempDir(), "missing.yaml")))
}
