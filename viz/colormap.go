package viz

import (
	"image/color"
	"math"
)

// rampStops are the knots of the blue-cyan-green-yellow-red ramp the avs
// shaded vertex scalar shader uses, so screenshots match the window
var rampStops = [5][3]float64{
	{0, 0, 1},
	{0, 1, 1},
	{0, 1, 0},
	{1, 1, 0},
	{1, 0, 0},
}

// ColorMap maps scalars in [Min,Max] onto the ramp. Values outside the
// limits take the end colours.
type ColorMap struct {
	Min, Max float64
}

func NewColorMap(min, max float64) *ColorMap {
	if max <= min {
		max = min + 1
	}
	return &ColorMap{Min: min, Max: max}
}

// Normalized is v scaled onto [0,1] and clipped
func (cm *ColorMap) Normalized(v float64) (t float64) {
	t = (v - cm.Min) / (cm.Max - cm.Min)
	if math.IsNaN(t) {
		t = 0
	}
	t = math.Max(0, math.Min(1, t))
	return
}

func (cm *ColorMap) GetRGB(v float64) (c color.RGBA) {
	var (
		t   = cm.Normalized(v)
		seg = int(t * 4)
	)
	if seg > 3 {
		seg = 3
	}
	var (
		f      = t*4 - float64(seg)
		c0, c1 = rampStops[seg], rampStops[seg+1]
		ch     [3]uint8
	)
	for i := range ch {
		ch[i] = uint8(math.Round(255 * (c0[i] + f*(c1[i]-c0[i]))))
	}
	c = color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}
	return
}
