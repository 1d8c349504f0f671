package plots

import (
	"errors"
	"fmt"

	"github.com/notargets/fracviz/fem"
	"github.com/notargets/fracviz/viz"
)

var ErrMeshMismatch = errors.New("displacement and damage are defined on different meshes")

const (
	DamageWindowTitle = "damage, warped by displacement"
	DamageWarpFactor  = 0.1
	TitleFontSize     = 11
)

// Config carries the rendering switches for PlotDamageState. Display
// defaults to an avs chart window.
type Config struct {
	OffScreen bool
	Display   viz.Display
}

// DamageTitles returns the panel titles, with the load to three decimals
// when there is one
func DamageTitles(load *float64) (uTitle, alphaTitle string) {
	if load == nil {
		return "displacement", "damage"
	}
	uTitle = fmt.Sprintf("displacement - load %3.3f", *load)
	alphaTitle = fmt.Sprintf("damage - load %3.3f", *load)
	return
}

// NewDamageStatePlotter lays out the displacement and damage panels side by
// side without showing them. The left panel is the mesh warped by a tenth of
// u, the right panel colours the undeformed mesh by alpha on a fixed [0,1]
// scale.
func NewDamageStatePlotter(u, alpha *fem.Function, load *float64, cfg Config) (p *viz.Plotter, err error) {
	var (
		uTitle, alphaTitle = DamageTitles(load)
	)
	if u == nil || alpha == nil || u.Mesh == nil || !u.SameMesh(alpha) {
		err = mismatchError(u, alpha)
		return
	}
	mesh := u.Mesh
	grid, err := meshGrid(mesh)
	if err != nil {
		return
	}
	opts := []viz.Option{
		viz.WithTitle(DamageWindowTitle),
		viz.WithWindowSize(800, 300),
		viz.WithShape(1, 2),
		viz.WithOffScreen(cfg.OffScreen),
	}
	if cfg.Display != nil {
		opts = append(opts, viz.WithDisplay(cfg.Display))
	}
	p = viz.NewPlotter(opts...)

	if err = p.Subplot(0, 0); err != nil {
		return
	}
	p.AddText(uTitle, TitleFontSize)
	if err = attachVector(grid, "u", u); err != nil {
		return nil, err
	}
	warped, err := grid.WarpByVector("u", DamageWarpFactor)
	if err != nil {
		return nil, err
	}
	p.AddMesh(warped, viz.MeshOptions{"show_edges": false})
	p.ViewXY()

	if err = p.Subplot(0, 1); err != nil {
		return
	}
	p.AddText(alphaTitle, TitleFontSize)
	values, err := fieldArray(alpha, mesh.NumNodes())
	if err != nil {
		return nil, err
	}
	if err = grid.SetPointData("alpha", values); err != nil {
		return nil, err
	}
	if err = grid.SetActiveScalars("alpha"); err != nil {
		return nil, err
	}
	p.AddMesh(grid, viz.MeshOptions{
		"show_edges":      false,
		"show_scalar_bar": true,
		"clim":            [2]float64{0, 1},
	})
	p.ViewXY()
	return
}

// PlotDamageState shows the displacement and damage panels unless off
// screen rendering is configured
func PlotDamageState(u, alpha *fem.Function, load *float64, cfg Config) (err error) {
	var (
		p *viz.Plotter
	)
	if p, err = NewDamageStatePlotter(u, alpha, load, cfg); err != nil {
		return
	}
	if !cfg.OffScreen {
		err = p.Show()
	}
	return
}

func mismatchError(u, alpha *fem.Function) error {
	switch {
	case u == nil || alpha == nil:
		return fmt.Errorf("missing field: %w", ErrMeshMismatch)
	case u.Mesh == nil || alpha.Mesh == nil:
		return fmt.Errorf("field without a mesh: %w", ErrMeshMismatch)
	}
	return fmt.Errorf("u on mesh %s, alpha on mesh %s: %w", u.Mesh.ID, alpha.Mesh.ID, ErrMeshMismatch)
}
