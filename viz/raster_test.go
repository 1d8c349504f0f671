package viz

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fracviz/utils"
)

func TestRenderFill(t *testing.T) {
	p := NewPlotter(WithWindowSize(100, 100), WithOffScreen(true), WithDisplay(&countingDisplay{}))
	p.AddMesh(squareGrid(t), MeshOptions{"color": "red"})
	img := NewRasterizer().Render(p)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
	// The square fills the tile inside the margin
	assert.Equal(t, utils.GetColor(utils.Red), img.RGBAAt(30, 30))
	assert.Equal(t, utils.GetColor(utils.Red), img.RGBAAt(70, 70))
	assert.Equal(t, utils.GetColor(utils.White), img.RGBAAt(2, 2))
}

func TestRenderScalars(t *testing.T) {
	g := squareGrid(t)
	require.NoError(t, g.SetCellData("alpha", utils.NewMatrix(2, 1, []float64{-5, 1})))
	require.NoError(t, g.SetActiveScalars("alpha"))
	p := NewPlotter(WithWindowSize(100, 100), WithOffScreen(true), WithDisplay(&countingDisplay{}))
	p.AddMesh(g, MeshOptions{"clim": [2]float64{0, 1}, "show_scalar_bar": false})
	img := p.Image()

	// Values below clim take the low end colour
	assert.Equal(t, color.RGBA{B: 255, A: 255}, img.RGBAAt(71, 71))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(29, 29))
}

func TestRenderShape(t *testing.T) {
	var (
		g = squareGrid(t)
		p = NewPlotter(WithWindowSize(200, 100), WithShape(1, 2),
			WithOffScreen(true), WithDisplay(&countingDisplay{}))
		white = utils.GetColor(utils.White)
	)
	require.NoError(t, p.Subplot(0, 1))
	p.AddMesh(g, MeshOptions{"color": "blue"})
	img := p.Image()
	// Left tile is empty, the mesh lands in the right one
	for x := 0; x < 100; x += 10 {
		assert.Equal(t, white, img.RGBAAt(x, 50))
	}
	assert.Equal(t, utils.GetColor(utils.Blue), img.RGBAAt(130, 30))
}

func TestColorMap(t *testing.T) {
	cm := NewColorMap(0, 1)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, cm.GetRGB(0))
	assert.Equal(t, color.RGBA{G: 255, B: 255, A: 255}, cm.GetRGB(0.25))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, cm.GetRGB(0.5))
	assert.Equal(t, color.RGBA{R: 255, G: 255, A: 255}, cm.GetRGB(0.75))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, cm.GetRGB(1))
	assert.Equal(t, color.RGBA{G: 128, B: 255, A: 255}, cm.GetRGB(0.125))
	// Out of range values clip to the ends
	assert.Equal(t, cm.GetRGB(1), cm.GetRGB(3))
	assert.Equal(t, cm.GetRGB(0), cm.GetRGB(-3))
	assert.Equal(t, cm.GetRGB(0), cm.GetRGB(math.NaN()))

	cm = NewColorMap(2, 2)
	assert.Equal(t, 3., cm.Max)
	assert.Equal(t, 0.5, cm.Normalized(2.5))
}
