package plots

import (
	"github.com/notargets/fracviz/fem"
	"github.com/notargets/fracviz/utils"
	"github.com/notargets/fracviz/viz"
)

// WarpOptions configures WarpPlot2D. The zero value warps by the full
// displacement with no cell colouring.
type WarpOptions struct {
	CellField   *fem.Function   // One value per cell, optional
	FieldName   string          // Name of the cell array, "Field" when empty
	Factor      *float64        // Warp scale, 1 when nil
	MeshOptions viz.MeshOptions // Passed to the renderer untouched
	OffScreen   bool
	Display     viz.Display
}

func (o WarpOptions) fieldName() string {
	if o.FieldName == "" {
		return "Field"
	}
	return o.FieldName
}

func (o WarpOptions) factor() float64 {
	if o.Factor == nil {
		return 1.
	}
	return *o.Factor
}

// WarpPlot2D plots the mesh of u warped by u, optionally coloured by a cell
// field, and returns the plotter for the caller to show or save
func WarpPlot2D(u *fem.Function, opts WarpOptions) (p *viz.Plotter, err error) {
	var (
		grid, warped *viz.Grid
		values       utils.Matrix
	)
	if grid, err = meshGrid(u.Mesh); err != nil {
		return
	}
	if err = attachVector(grid, "u", u); err != nil {
		return
	}
	if warped, err = grid.WarpByVector("u", opts.factor()); err != nil {
		return
	}
	if opts.CellField != nil {
		if values, err = fieldArray(opts.CellField, warped.NumCells()); err != nil {
			return
		}
		if err = warped.SetCellData(opts.fieldName(), values); err != nil {
			return
		}
		if err = warped.SetActiveScalars(opts.fieldName()); err != nil {
			return
		}
	}
	popts := []viz.Option{viz.WithOffScreen(opts.OffScreen)}
	if opts.Display != nil {
		popts = append(popts, viz.WithDisplay(opts.Display))
	}
	p = viz.NewPlotter(popts...)
	p.AddMesh(warped, opts.MeshOptions)
	err = p.SetCameraPosition("xy")
	return
}

// Factor is a helper for setting WarpOptions.Factor inline
func Factor(f float64) *float64 { return &f }
