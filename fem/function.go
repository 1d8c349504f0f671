package fem

import (
	"errors"
	"fmt"

	"github.com/notargets/fracviz/types"
	"github.com/notargets/fracviz/utils"
)

var (
	ErrShape      = errors.New("field length is not a multiple of the node count")
	ErrComponents = errors.New("vector fields must have 1, 2 or 3 components")
)

// Function is a field over the nodes of a mesh. Values holds the
// coefficients node by node, Components values per node.
type Function struct {
	Name       string
	Mesh       *types.Mesh
	Components int
	Values     []float64
}

func NewFunction(name string, mesh *types.Mesh, components int, values []float64) (f *Function, err error) {
	if components < 1 || components > 3 {
		err = fmt.Errorf("%s: %d components: %w", name, components, ErrComponents)
		return
	}
	f = &Function{
		Name:       name,
		Mesh:       mesh,
		Components: components,
		Values:     values,
	}
	return
}

// Len is the number of vector components
func (f *Function) Len() int { return f.Components }

func (f *Function) SameMesh(g *Function) bool {
	return f.Mesh == g.Mesh
}

// PointVectors reshapes the coefficients to one zero padded 3-vector per node
func (f *Function) PointVectors() (utils.Matrix, error) {
	return ReshapePadded(f.Values, f.Mesh.NumNodes(), f.Components)
}

// ReshapePadded lays out k values per node as an [nNodes,3] matrix with
// columns k..2 left at zero
func ReshapePadded(values []float64, nNodes, k int) (R utils.Matrix, err error) {
	if k < 1 || k > 3 {
		err = fmt.Errorf("reshape to %d components: %w", k, ErrComponents)
		return
	}
	if len(values) != nNodes*k {
		err = fmt.Errorf("cannot reshape array of size %d into shape (%d,%d): %w",
			len(values), nNodes, k, ErrShape)
		return
	}
	R = utils.NewMatrix(nNodes, 3)
	for i := 0; i < nNodes; i++ {
		copy(R.DataP[3*i:3*i+k], values[k*i:k*i+k])
	}
	return
}
