package viz

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/notargets/avs/assets"
	"github.com/notargets/avs/chart2d"
	"github.com/notargets/avs/geometry"
	avsUtils "github.com/notargets/avs/utils"

	"github.com/notargets/fracviz/utils"
)

// Display puts a plotter in front of the user
type Display interface {
	Show(p *Plotter) error
}

type DisplayFunc func(p *Plotter) error

func (f DisplayFunc) Show(p *Plotter) error { return f(p) }

// ChartDisplay opens one avs chart window per viewport. The windows are
// kept up for Hold, or until an interrupt when Hold is zero.
type ChartDisplay struct {
	Hold       time.Duration
	Scale      float32 // Margin around the meshes, 1 is a tight fit
	Background color.RGBA
	Foreground color.RGBA
}

func NewChartDisplay() *ChartDisplay {
	return &ChartDisplay{
		Scale:      1.1,
		Background: avsUtils.WHITE,
		Foreground: avsUtils.BLACK,
	}
}

func (cd *ChartDisplay) Show(p *Plotter) error {
	var (
		width  = p.WindowSize[0] / p.Shape[1]
		height = p.WindowSize[1] / p.Shape[0]
	)
	if width <= 0 || height <= 0 {
		return fmt.Errorf("window size %v too small for shape %v", p.WindowSize, p.Shape)
	}
	for _, vp := range p.Viewports() {
		if len(vp.Actors) == 0 && len(vp.Texts) == 0 {
			continue
		}
		cd.plotViewport(vp, width, height)
	}
	if cd.Hold > 0 {
		time.Sleep(cd.Hold)
		return nil
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	<-ctx.Done()
	return nil
}

func (cd *ChartDisplay) plotViewport(vp *Viewport, width, height int) {
	var (
		meshes = make([]geometry.TriMesh, len(vp.Actors))
		allXY  []float32
	)
	for i, a := range vp.Actors {
		meshes[i] = ToTriMesh(a.Grid, vp.Camera)
		allXY = append(allXY, meshes[i].XY...)
	}
	xMin, xMax, yMin, yMax := float32(-1), float32(1), float32(-1), float32(1)
	if len(allXY) != 0 {
		xMin, xMax, yMin, yMax = utils.GetMinMax(allXY)
	}
	xMin, xMax, yMin, yMax = utils.GetSquareBoundingBox(xMin, xMax, yMin, yMax)
	xMin, xMax, yMin, yMax = utils.ScaleBox(xMin, xMax, yMin, yMax, cd.Scale)
	lineColor, bgColor := cd.chartColors()
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		width, height, lineColor, bgColor)
	for i, a := range vp.Actors {
		gm := meshes[i]
		scalars, hasScalars := a.Grid.ActivePointScalars()
		if hasScalars {
			fMin, fMax, ok := a.Options.Clim()
			if !ok {
				fMin, fMax, _ = a.Grid.ActiveScalarRange()
			}
			vs := geometry.VertexScalar{
				TMesh:       &gm,
				FieldValues: utils.ToFloat32(scalars),
			}
			ch.AddShadedVertexScalar(&vs, float32(fMin), float32(fMax))
			if a.Options.Bool("show_scalar_bar", true) {
				cd.printf(ch, 12, xMin, yMin+0.02*(yMax-yMin), "%s: [%.3f, %.3f]",
					a.Grid.ActiveScalars, fMin, fMax)
			}
		}
		if a.Options.Bool("show_edges", false) || !hasScalars {
			ch.AddTriMesh(gm)
		}
	}
	for i, txt := range vp.Texts {
		y := yMax - float32(i+1)*0.05*(yMax-yMin)
		cd.printf(ch, txt.FontSize, xMin, y, "%s", txt.Text)
	}
}

// chartColors are the line and background colours in NewChart2D order
func (cd *ChartDisplay) chartColors() (lineColor, bgColor color.RGBA) {
	return cd.Foreground, cd.Background
}

func (cd *ChartDisplay) printf(ch *chart2d.Chart2D, size int, x, y float32,
	format string, args ...interface{}) {
	tf := assets.NewTextFormatter("NotoSans", "Regular", uint32(size),
		cd.Foreground, true, false)
	ch.Printf(tf, x, y, format, args...)
}

// ToTriMesh projects a grid onto the camera plane as an avs triangle mesh
func ToTriMesh(g *Grid, cam Camera) (gm geometry.TriMesh) {
	var (
		Nv       = g.NumPoints()
		tris, _  = g.Triangles()
		xy       = make([]float32, 2*Nv)
		triVerts = make([][3]int64, len(tris))
	)
	for i := 0; i < Nv; i++ {
		x, y := cam.Project(g.Points.RowView(i))
		xy[2*i], xy[2*i+1] = clamp32(x), clamp32(y)
	}
	copy(triVerts, tris)
	gm = geometry.TriMesh{
		XY:       xy,
		TriVerts: triVerts,
	}
	return
}

func clamp32(f float64) float32 {
	switch {
	case f > math.MaxFloat32:
		return math.MaxFloat32
	case f < -math.MaxFloat32:
		return -math.MaxFloat32
	}
	return float32(f)
}
