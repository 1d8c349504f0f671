package plots

import (
	"fmt"

	"github.com/notargets/fracviz/fem"
	"github.com/notargets/fracviz/types"
	"github.com/notargets/fracviz/utils"
	"github.com/notargets/fracviz/viz"
)

// meshGrid builds a fresh grid from the VTK form of a mesh
func meshGrid(mesh *types.Mesh) (*viz.Grid, error) {
	topology, cellTypes, geometry := mesh.VTKMesh()
	return viz.NewGrid(topology, cellTypes, geometry)
}

// attachVector stores f as an [N,3] point array, zero padding missing
// components
func attachVector(g *viz.Grid, name string, f *fem.Function) (err error) {
	var (
		values utils.Matrix
	)
	if values, err = fem.ReshapePadded(f.Values, g.NumPoints(), f.Len()); err != nil {
		return
	}
	return g.SetPointData(name, values)
}

// fieldArray lays out f with one row per entity and one column per component
func fieldArray(f *fem.Function, nRows int) (m utils.Matrix, err error) {
	if len(f.Values) != nRows*f.Components {
		err = fmt.Errorf("%s: cannot reshape array of size %d into shape (%d,%d): %w",
			f.Name, len(f.Values), nRows, f.Components, fem.ErrShape)
		return
	}
	m = utils.NewMatrix(nRows, f.Components, f.Values)
	return
}
