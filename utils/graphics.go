package utils

import (
	"image/color"
	"math"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
	Grey
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 255}
	case Red:
		c = color.RGBA{R: 255, G: 0, B: 50, A: 255}
	case Green:
		c = color.RGBA{R: 25, G: 255, B: 25, A: 255}
	case Black:
		c = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	case Grey:
		c = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
	return
}

// GetMinMax returns the extent of interleaved x,y coordinates
func GetMinMax(XY []float32) (xMin, xMax, yMin, yMax float32) {
	var (
		lenXY = len(XY) / 2
	)
	xMin, xMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	yMin, yMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	for i := 0; i < lenXY; i++ {
		x, y := XY[i*2+0], XY[i*2+1]
		if x < xMin {
			xMin = x
		}
		if x > xMax {
			xMax = x
		}
		if y < yMin {
			yMin = y
		}
		if y > yMax {
			yMax = y
		}
	}
	return
}

// GetSquareBoundingBox grows the shorter side so both ranges are equal,
// keeping the box centred on the original one
func GetSquareBoundingBox(xMin, xMax, yMin, yMax float32) (xBMin,
	xBMax, yBMin, yBMax float32) {
	xRange := xMax - xMin
	yRange := yMax - yMin
	if yRange > xRange {
		yBMin = yMin
		yBMax = yMax
		xCent := xRange/2. + xMin
		xBMin = xCent - yRange/2.
		xBMax = xCent + yRange/2.
	} else {
		xBMin = xMin
		xBMax = xMax
		yCent := yRange/2. + yMin
		yBMin = yCent - xRange/2.
		yBMax = yCent + xRange/2.
	}
	return
}

// ScaleBox expands a box about its centre by scale
func ScaleBox(xMin, xMax, yMin, yMax, scale float32) (xBMin, xBMax, yBMin, yBMax float32) {
	var (
		xc, yc = (xMin + xMax) / 2, (yMin + yMax) / 2
		hx, hy = scale * (xMax - xMin) / 2, scale * (yMax - yMin) / 2
	)
	if hx == 0 {
		hx = scale / 2
	}
	if hy == 0 {
		hy = scale / 2
	}
	return xc - hx, xc + hx, yc - hy, yc + hy
}

func ToFloat32(f []float64) (r []float32) {
	r = make([]float32, len(f))
	for i, v := range f {
		r[i] = float32(v)
	}
	return
}
