package viz

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/fracviz/utils"
)

func TestMeshOptions(t *testing.T) {
	var o MeshOptions
	assert.True(t, o.Bool("show_scalar_bar", true))
	_, _, ok := o.Clim()
	assert.False(t, ok)

	o = MeshOptions{"clim": [2]float64{0, 1}, "show_edges": true}
	lo, hi, ok := o.Clim()
	assert.True(t, ok)
	assert.Equal(t, 0., lo)
	assert.Equal(t, 1., hi)
	assert.True(t, o.Bool("show_edges", false))

	for _, clim := range []interface{}{
		[]float64{-1, 2}, []int{-1, 2}, []interface{}{-1, 2.},
	} {
		lo, hi, ok = MeshOptions{"clim": clim}.Clim()
		assert.True(t, ok)
		assert.Equal(t, -1., lo)
		assert.Equal(t, 2., hi)
	}
	_, _, ok = MeshOptions{"clim": "bad"}.Clim()
	assert.False(t, ok)

	grey := utils.GetColor(utils.Grey)
	assert.Equal(t, grey, MeshOptions{}.Color("color", grey))
	assert.Equal(t, utils.GetColor(utils.Red), MeshOptions{"color": "red"}.Color("color", grey))
	c := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	assert.Equal(t, c, MeshOptions{"color": c}.Color("color", grey))

	// Copies are independent
	cp := o.Copy()
	cp["show_edges"] = false
	assert.True(t, o.Bool("show_edges", false))
}
