package viz

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
)

var ErrSubplot = errors.New("subplot index outside the plotter shape")

type Camera uint8

const (
	CameraXY Camera = iota
	CameraXZ
	CameraYZ
)

func (c Camera) String() string {
	return [...]string{"xy", "xz", "yz"}[c]
}

// Project maps a point onto the camera plane
func (c Camera) Project(p []float64) (x, y float64) {
	switch c {
	case CameraXZ:
		return p[0], p[2]
	case CameraYZ:
		return p[1], p[2]
	}
	return p[0], p[1]
}

type Text struct {
	Text     string
	FontSize int
}

type Actor struct {
	Grid    *Grid
	Options MeshOptions
}

// Viewport is one subplot of a Plotter
type Viewport struct {
	Row, Col int
	Texts    []Text
	Actors   []*Actor
	Camera   Camera
}

// Plotter collects meshes and text into a grid of viewports and hands them
// to a Display, or to the rasteriser for screenshots
type Plotter struct {
	Title      string
	WindowSize [2]int
	Shape      [2]int // rows, cols
	OffScreen  bool
	viewports  []*Viewport
	active     int
	display    Display
	showCount  int
}

type Option func(*Plotter)

func WithTitle(title string) Option {
	return func(p *Plotter) { p.Title = title }
}

func WithWindowSize(width, height int) Option {
	return func(p *Plotter) { p.WindowSize = [2]int{width, height} }
}

func WithShape(rows, cols int) Option {
	return func(p *Plotter) { p.Shape = [2]int{rows, cols} }
}

func WithOffScreen(offScreen bool) Option {
	return func(p *Plotter) { p.OffScreen = offScreen }
}

func WithDisplay(d Display) Option {
	return func(p *Plotter) { p.display = d }
}

func NewPlotter(opts ...Option) (p *Plotter) {
	p = &Plotter{
		Title:      "fracviz",
		WindowSize: [2]int{1024, 768},
		Shape:      [2]int{1, 1},
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.Shape[0] < 1 {
		p.Shape[0] = 1
	}
	if p.Shape[1] < 1 {
		p.Shape[1] = 1
	}
	if p.display == nil {
		p.display = NewChartDisplay()
	}
	p.viewports = make([]*Viewport, p.Shape[0]*p.Shape[1])
	for i := range p.viewports {
		p.viewports[i] = &Viewport{
			Row: i / p.Shape[1],
			Col: i % p.Shape[1],
		}
	}
	return
}

// Subplot makes the viewport at row, col the target of later calls
func (p *Plotter) Subplot(row, col int) error {
	if row < 0 || row >= p.Shape[0] || col < 0 || col >= p.Shape[1] {
		return fmt.Errorf("(%d,%d) in shape (%d,%d): %w", row, col, p.Shape[0], p.Shape[1], ErrSubplot)
	}
	p.active = row*p.Shape[1] + col
	return nil
}

func (p *Plotter) Viewports() []*Viewport { return p.viewports }

func (p *Plotter) ActiveViewport() *Viewport { return p.viewports[p.active] }

func (p *Plotter) AddText(text string, fontSize int) {
	vp := p.ActiveViewport()
	vp.Texts = append(vp.Texts, Text{Text: text, FontSize: fontSize})
}

// AddMesh adds a grid to the active viewport, opts are kept as given for
// the display backend
func (p *Plotter) AddMesh(g *Grid, opts MeshOptions) (a *Actor) {
	if opts == nil {
		opts = MeshOptions{}
	}
	a = &Actor{Grid: g, Options: opts}
	vp := p.ActiveViewport()
	vp.Actors = append(vp.Actors, a)
	return
}

func (p *Plotter) ViewXY() { p.ActiveViewport().Camera = CameraXY }
func (p *Plotter) ViewXZ() { p.ActiveViewport().Camera = CameraXZ }
func (p *Plotter) ViewYZ() { p.ActiveViewport().Camera = CameraYZ }

// SetCameraPosition accepts the plane names "xy", "xz" and "yz"
func (p *Plotter) SetCameraPosition(plane string) error {
	switch strings.ToLower(plane) {
	case "xy":
		p.ViewXY()
	case "xz":
		p.ViewXZ()
	case "yz":
		p.ViewYZ()
	default:
		return fmt.Errorf("unknown camera position %q", plane)
	}
	return nil
}

// Show hands the plotter to its display. Off screen plotters are not shown.
func (p *Plotter) Show() error {
	if p.OffScreen {
		return nil
	}
	p.showCount++
	return p.display.Show(p)
}

// ShowCount is the number of times the display has been invoked
func (p *Plotter) ShowCount() int { return p.showCount }

// Image renders the plotter without a window
func (p *Plotter) Image() *image.RGBA {
	return NewRasterizer().Render(p)
}

// Screenshot writes the rendered plotter as a PNG
func (p *Plotter) Screenshot(path string) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	err = png.Encode(file, p.Image())
	return
}
