package viz

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDisplay records every plotter it is asked to show
type countingDisplay struct {
	shown []*Plotter
}

func (cd *countingDisplay) Show(p *Plotter) error {
	cd.shown = append(cd.shown, p)
	return nil
}

func TestPlotter(t *testing.T) {
	disp := &countingDisplay{}
	p := NewPlotter(WithTitle("two panels"), WithWindowSize(800, 300),
		WithShape(1, 2), WithDisplay(disp))
	assert.Equal(t, "two panels", p.Title)
	assert.Equal(t, [2]int{800, 300}, p.WindowSize)
	assert.Len(t, p.Viewports(), 2)
	assert.Equal(t, 1, p.Viewports()[1].Col)

	assert.ErrorIs(t, p.Subplot(1, 0), ErrSubplot)
	assert.ErrorIs(t, p.Subplot(0, -1), ErrSubplot)
	require.NoError(t, p.Subplot(0, 1))
	p.AddText("right", 11)
	a := p.AddMesh(squareGrid(t), nil)
	assert.NotNil(t, a.Options)
	p.ViewXY()
	assert.Equal(t, CameraXY, p.ActiveViewport().Camera)
	require.NoError(t, p.SetCameraPosition("xz"))
	assert.Equal(t, CameraXZ, p.ActiveViewport().Camera)
	assert.Error(t, p.SetCameraPosition("sideways"))

	left := p.Viewports()[0]
	assert.Empty(t, left.Actors)
	right := p.Viewports()[1]
	assert.Equal(t, []Text{{Text: "right", FontSize: 11}}, right.Texts)
	assert.Len(t, right.Actors, 1)

	require.NoError(t, p.Show())
	assert.Equal(t, 1, p.ShowCount())
	assert.Len(t, disp.shown, 1)
}

func TestPlotterOffScreen(t *testing.T) {
	disp := &countingDisplay{}
	p := NewPlotter(WithOffScreen(true), WithDisplay(disp))
	require.NoError(t, p.Show())
	assert.Zero(t, p.ShowCount())
	assert.Empty(t, disp.shown)

	// Shapes below one collapse to a single viewport
	p = NewPlotter(WithShape(0, 0), WithDisplay(disp))
	assert.Equal(t, [2]int{1, 1}, p.Shape)
}

func TestCameraProject(t *testing.T) {
	pt := []float64{1, 2, 3}
	x, y := CameraXY.Project(pt)
	assert.Equal(t, [2]float64{1, 2}, [2]float64{x, y})
	x, y = CameraXZ.Project(pt)
	assert.Equal(t, [2]float64{1, 3}, [2]float64{x, y})
	x, y = CameraYZ.Project(pt)
	assert.Equal(t, [2]float64{2, 3}, [2]float64{x, y})
	assert.Equal(t, "xz", CameraXZ.String())
}

func TestScreenshot(t *testing.T) {
	p := NewPlotter(WithWindowSize(120, 80), WithOffScreen(true), WithDisplay(&countingDisplay{}))
	p.AddText("mesh", 11)
	p.AddMesh(squareGrid(t), MeshOptions{"show_edges": true})
	path := filepath.Join(t.TempDir(), "shot.png")
	require.NoError(t, p.Screenshot(path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	img, err := png.Decode(file)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	assert.Error(t, p.Screenshot(filepath.Join(t.TempDir(), "missing", "shot.png")))
}
