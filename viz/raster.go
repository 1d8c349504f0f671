package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/notargets/fracviz/utils"
)

const (
	textLineHeight = 16
	scalarBarSpace = 40
	tileMargin     = 8
)

// Rasterizer draws a plotter into an image without opening a window. Cells
// are filled flat, coloured by the active scalars of their grid.
type Rasterizer struct {
	Background color.RGBA
	Foreground color.RGBA
	Fill       color.RGBA
	EdgeColor  color.RGBA
	z          *vector.Rasterizer
}

func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		Background: utils.GetColor(utils.White),
		Foreground: utils.GetColor(utils.Black),
		Fill:       utils.GetColor(utils.Grey),
		EdgeColor:  utils.GetColor(utils.Black),
		z:          vector.NewRasterizer(1, 1),
	}
}

func (r *Rasterizer) Render(p *Plotter) (img *image.RGBA) {
	var (
		W, H  = p.WindowSize[0], p.WindowSize[1]
		tileW = W / p.Shape[1]
		tileH = H / p.Shape[0]
	)
	if W < 1 {
		W = 1
	}
	if H < 1 {
		H = 1
	}
	img = image.NewRGBA(image.Rect(0, 0, W, H))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.Background), image.Point{}, draw.Src)
	if tileW < 1 || tileH < 1 {
		return
	}
	for _, vp := range p.Viewports() {
		tile := image.Rect(vp.Col*tileW, vp.Row*tileH, (vp.Col+1)*tileW, (vp.Row+1)*tileH)
		r.renderViewport(img, tile, vp)
	}
	return
}

// frame maps world coordinates on the camera plane into a pixel rectangle,
// preserving the aspect ratio
type frame struct {
	xMin, yMax float64
	scale      float64
	ox, oy     float64
}

func newFrame(area image.Rectangle, xMin, xMax, yMin, yMax float64) (f frame) {
	var (
		xr, yr = xMax - xMin, yMax - yMin
		pw, ph = float64(area.Dx()), float64(area.Dy())
	)
	if xr <= 0 {
		xr = 1
	}
	if yr <= 0 {
		yr = 1
	}
	f.scale = math.Min(pw/xr, ph/yr)
	f.xMin, f.yMax = xMin, yMax
	f.ox = float64(area.Min.X) + (pw-f.scale*(xMax-xMin))/2
	f.oy = float64(area.Min.Y) + (ph-f.scale*(yMax-yMin))/2
	return
}

func (f frame) toPixel(x, y float64) [2]float32 {
	return [2]float32{
		float32(f.ox + (x-f.xMin)*f.scale),
		float32(f.oy + (f.yMax-y)*f.scale),
	}
}

func (r *Rasterizer) renderViewport(img *image.RGBA, tile image.Rectangle, vp *Viewport) {
	var (
		hasBar bool
		xMin   = math.MaxFloat64
		xMax   = -math.MaxFloat64
		yMin   = math.MaxFloat64
		yMax   = -math.MaxFloat64
	)
	for _, a := range vp.Actors {
		if a.Grid.activeAssoc != NoAssociation && a.Options.Bool("show_scalar_bar", true) {
			hasBar = true
		}
		for i := 0; i < a.Grid.NumPoints(); i++ {
			x, y := vp.Camera.Project(a.Grid.Points.RowView(i))
			xMin, xMax = math.Min(xMin, x), math.Max(xMax, x)
			yMin, yMax = math.Min(yMin, y), math.Max(yMax, y)
		}
	}
	area := tile.Inset(tileMargin)
	area.Min.Y += textLineHeight * len(vp.Texts)
	if hasBar {
		area.Max.Y -= scalarBarSpace
	}
	if !area.Empty() && xMin <= xMax {
		fr := newFrame(area, xMin, xMax, yMin, yMax)
		for _, a := range vp.Actors {
			r.drawActor(img, fr, vp.Camera, a)
		}
	}
	for i, txt := range vp.Texts {
		r.drawText(img, tile.Min.X+tileMargin, tile.Min.Y+tileMargin+textLineHeight*(i+1)-4, txt.Text)
	}
	if hasBar {
		barY := tile.Max.Y - scalarBarSpace
		for _, a := range vp.Actors {
			if a.Grid.activeAssoc == NoAssociation || !a.Options.Bool("show_scalar_bar", true) {
				continue
			}
			lo, hi := r.limits(a)
			r.drawScalarBar(img, image.Rect(tile.Min.X, barY, tile.Max.X, tile.Max.Y),
				a.Grid.ActiveScalars, lo, hi)
			break
		}
	}
}

// limits are the colour limits of an actor, clim when given else the data range
func (r *Rasterizer) limits(a *Actor) (lo, hi float64) {
	var ok bool
	if lo, hi, ok = a.Options.Clim(); !ok {
		lo, hi, _ = a.Grid.ActiveScalarRange()
	}
	if hi <= lo {
		hi = lo + 1
	}
	return
}

func (r *Rasterizer) drawActor(img *image.RGBA, fr frame, cam Camera, a *Actor) {
	var (
		g            = a.Grid
		tris, owner  = g.Triangles()
		cellVals, ok = g.ActiveCellScalars()
		fill         = a.Options.Color("color", r.Fill)
		pix          = make([][2]float32, g.NumPoints())
		cm           *ColorMap
	)
	for i := range pix {
		x, y := cam.Project(g.Points.RowView(i))
		pix[i] = fr.toPixel(x, y)
	}
	if ok {
		cm = NewColorMap(r.limits(a))
	}
	for i, tri := range tris {
		col := fill
		if ok {
			col = cm.GetRGB(cellVals[owner[i]])
		}
		r.fillPolygon(img, col, pix[tri[0]], pix[tri[1]], pix[tri[2]])
	}
	if a.Options.Bool("show_edges", false) {
		edgeColor := a.Options.Color("edge_color", r.EdgeColor)
		for _, ek := range g.Edges() {
			v := ek.GetVertices()
			r.strokeLine(img, edgeColor, pix[v[0]], pix[v[1]])
		}
	}
}

func (r *Rasterizer) fillPolygon(img *image.RGBA, col color.RGBA, pts ...[2]float32) {
	var (
		b              = img.Bounds()
		fxMin, fxMax   = float32(math.MaxFloat32), -float32(math.MaxFloat32)
		fyMin, fyMax   = float32(math.MaxFloat32), -float32(math.MaxFloat32)
		x0, y0, x1, y1 int
	)
	for _, pt := range pts {
		fxMin, fxMax = min(fxMin, pt[0]), max(fxMax, pt[0])
		fyMin, fyMax = min(fyMin, pt[1]), max(fyMax, pt[1])
	}
	x0, y0 = int(math.Floor(float64(fxMin))), int(math.Floor(float64(fyMin)))
	x1, y1 = int(math.Ceil(float64(fxMax)))+1, int(math.Ceil(float64(fyMax)))+1
	rect := image.Rect(x0, y0, x1, y1).Intersect(b)
	if rect.Empty() {
		return
	}
	r.z.Reset(rect.Dx(), rect.Dy())
	ox, oy := float32(rect.Min.X), float32(rect.Min.Y)
	for i, pt := range pts {
		if i == 0 {
			r.z.MoveTo(pt[0]-ox, pt[1]-oy)
		} else {
			r.z.LineTo(pt[0]-ox, pt[1]-oy)
		}
	}
	r.z.ClosePath()
	r.z.Draw(img, rect, image.NewUniform(col), image.Point{})
}

func (r *Rasterizer) strokeLine(img *image.RGBA, col color.RGBA, p0, p1 [2]float32) {
	var (
		dx, dy = p1[0] - p0[0], p1[1] - p0[1]
		length = float32(math.Hypot(float64(dx), float64(dy)))
	)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*0.5, dx/length*0.5
	r.fillPolygon(img, col,
		[2]float32{p0[0] + nx, p0[1] + ny},
		[2]float32{p1[0] + nx, p1[1] + ny},
		[2]float32{p1[0] - nx, p1[1] - ny},
		[2]float32{p0[0] - nx, p0[1] - ny},
	)
}

func (r *Rasterizer) drawText(img *image.RGBA, x, y int, text string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.Foreground),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func (r *Rasterizer) drawScalarBar(img *image.RGBA, area image.Rectangle, name string, lo, hi float64) {
	var (
		barW = area.Dx() * 6 / 10
		x0   = area.Min.X + (area.Dx()-barW)/2
		y0   = area.Min.Y + 4
		y1   = y0 + 12
		cm   = NewColorMap(lo, hi)
	)
	if barW < 2 {
		return
	}
	for i := 0; i < barW; i++ {
		v := lo + (hi-lo)*float64(i)/float64(barW-1)
		col := cm.GetRGB(v)
		for y := y0; y < y1; y++ {
			img.SetRGBA(x0+i, y, col)
		}
	}
	labelY := y1 + 14
	r.drawText(img, x0, labelY, fmt.Sprintf("%.2f", lo))
	hiLabel := fmt.Sprintf("%.2f", hi)
	r.drawText(img, x0+barW-7*len(hiLabel), labelY, hiLabel)
	r.drawText(img, x0+barW/2-7*len(name)/2, labelY, name)
}
