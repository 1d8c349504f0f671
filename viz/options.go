package viz

import (
	"image/color"
	"strings"

	"github.com/notargets/fracviz/utils"
)

// MeshOptions are rendering options passed through untouched to the display
// backend. Backends read the keys they understand and ignore the rest.
// Keys read by the built in backends:
//
//	show_edges      bool
//	show_scalar_bar bool
//	clim            [2]float64, []float64 or []interface{} of numbers
//	color           color name or color.RGBA, used when no scalars are active
//	edge_color      color name or color.RGBA
type MeshOptions map[string]interface{}

func (o MeshOptions) Copy() (c MeshOptions) {
	c = make(MeshOptions, len(o))
	for k, v := range o {
		c[k] = v
	}
	return
}

func (o MeshOptions) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}

// Clim returns the colour limits if set
func (o MeshOptions) Clim() (lo, hi float64, ok bool) {
	var vals []float64
	switch v := o["clim"].(type) {
	case [2]float64:
		vals = v[:]
	case []float64:
		vals = v
	case []int:
		for _, i := range v {
			vals = append(vals, float64(i))
		}
	case []interface{}:
		for _, e := range v {
			f, isNum := toFloat(e)
			if !isNum {
				return
			}
			vals = append(vals, f)
		}
	}
	if len(vals) != 2 {
		return
	}
	return vals[0], vals[1], true
}

func (o MeshOptions) Color(key string, def color.RGBA) color.RGBA {
	switch v := o[key].(type) {
	case color.RGBA:
		return v
	case string:
		if c, ok := namedColors[strings.ToLower(v)]; ok {
			return c
		}
	}
	return def
}

var namedColors = map[string]color.RGBA{
	"white": utils.GetColor(utils.White),
	"w":     utils.GetColor(utils.White),
	"black": utils.GetColor(utils.Black),
	"k":     utils.GetColor(utils.Black),
	"red":   utils.GetColor(utils.Red),
	"r":     utils.GetColor(utils.Red),
	"blue":  utils.GetColor(utils.Blue),
	"b":     utils.GetColor(utils.Blue),
	"green": utils.GetColor(utils.Green),
	"g":     utils.GetColor(utils.Green),
	"grey":  utils.GetColor(utils.Grey),
	"gray":  utils.GetColor(utils.Grey),
}

func toFloat(e interface{}) (f float64, ok bool) {
	switch v := e.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return
}
