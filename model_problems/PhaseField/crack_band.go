package PhaseField

import (
	"fmt"
	"math"

	"github.com/notargets/fracviz/fem"
	"github.com/notargets/fracviz/types"
	"github.com/notargets/fracviz/utils"
)

/*
A bar [0,Lx] x [0,Ly] pulled along x by an imposed end displacement, the load.
A phase-field crack band forms across the bar at x = x0.

Below the elastic limit the bar strains uniformly:
				eps   = load / Lx
				u     = ( eps x, -nu eps y )
				alpha = 0

Between the elastic limit and the critical load the damage grows in the band
with amplitude
				d = (load - LoadElastic) / (LoadCrit - LoadElastic)
and the regularised profile of width ell, a distance r = |x - x0| away:
				AT2:	alpha = d exp(-r/ell)
				AT1:	alpha = d (1 - r/(2 ell))²,  r < 2 ell
				     	alpha = 0,                   r ≥ 2 ell

Past the critical load the band is fully broken (d = 1), the elastic strain
stays at LoadCrit/Lx and the extra displacement opens the crack:
				jump = load - LoadCrit
				u    = ( eps x + jump H(x - x0), -nu eps y )
*/

type Model uint8

const (
	AT2 Model = iota
	AT1
)

func (m Model) String() string {
	return [...]string{"AT2", "AT1"}[m]
}

func NewModel(label string) (m Model, err error) {
	switch label {
	case "AT2", "at2":
		return AT2, nil
	case "AT1", "at1":
		return AT1, nil
	}
	err = fmt.Errorf("unknown damage model %q, want AT1 or AT2", label)
	return
}

type CrackBand struct {
	Model       Model
	Lx          float64
	X0          float64 // Crack position
	Ell         float64 // Regularisation length
	Nu          float64 // Poisson ratio
	LoadElastic float64 // Damage starts above this load
	LoadCrit    float64 // Band is fully broken at this load
}

func NewCrackBand(model Model, lx float64) *CrackBand {
	return &CrackBand{
		Model:       model,
		Lx:          lx,
		X0:          0.5 * lx,
		Ell:         0.05 * lx,
		Nu:          0.3,
		LoadElastic: 0.5,
		LoadCrit:    1.0,
	}
}

// Amplitude is the peak damage at a load
func (cb *CrackBand) Amplitude(load float64) float64 {
	if load <= cb.LoadElastic {
		return 0
	}
	if load >= cb.LoadCrit {
		return 1
	}
	return (load - cb.LoadElastic) / (cb.LoadCrit - cb.LoadElastic)
}

// Profile is the undamaged to broken transition at distance r from the crack
func (cb *CrackBand) Profile(r float64) float64 {
	r = math.Abs(r)
	switch cb.Model {
	case AT1:
		if r >= 2*cb.Ell {
			return 0
		}
		s := 1 - r/(2*cb.Ell)
		return s * s
	default:
		return math.Exp(-r / cb.Ell)
	}
}

// Strain returns the uniform elastic strain and the crack opening
func (cb *CrackBand) Strain(load float64) (eps, jump float64) {
	if load > cb.LoadCrit {
		return cb.LoadCrit / cb.Lx, load - cb.LoadCrit
	}
	return load / cb.Lx, 0
}

func (cb *CrackBand) DamageAt(x, load float64) float64 {
	return cb.Amplitude(load) * cb.Profile(x-cb.X0)
}

func (cb *CrackBand) DisplacementAt(x, y, load float64) (ux, uy float64) {
	eps, jump := cb.Strain(load)
	ux = eps * x
	if x > cb.X0 {
		ux += jump
	}
	uy = -cb.Nu * eps * y
	return
}

// Displacement is the two component displacement at the mesh nodes
func (cb *CrackBand) Displacement(mesh *types.Mesh, load float64) (*fem.Function, error) {
	var (
		Np     = mesh.NumNodes()
		values = make([]float64, 2*Np)
	)
	utils.DefaultPartitionMap(Np).ForEach(func(_, iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			p := mesh.Geometry.RowView(i)
			values[2*i], values[2*i+1] = cb.DisplacementAt(p[0], p[1], load)
		}
	})
	return fem.NewFunction("u", mesh, 2, values)
}

// Damage is the nodal damage field
func (cb *CrackBand) Damage(mesh *types.Mesh, load float64) (*fem.Function, error) {
	var (
		Np     = mesh.NumNodes()
		values = make([]float64, Np)
	)
	utils.DefaultPartitionMap(Np).ForEach(func(_, iMin, iMax int) {
		for i := iMin; i < iMax; i++ {
			values[i] = cb.DamageAt(mesh.Geometry.At(i, 0), load)
		}
	})
	return fem.NewFunction("alpha", mesh, 1, values)
}

// CellDamage is the damage at each cell centroid, for cell coloured plots
func (cb *CrackBand) CellDamage(mesh *types.Mesh, load float64) (*fem.Function, error) {
	var (
		K      = mesh.NumCells()
		values = make([]float64, K)
	)
	for k, cell := range mesh.Cells {
		var xc float64
		for _, v := range cell {
			xc += mesh.Geometry.At(int(v), 0)
		}
		xc /= float64(len(cell))
		values[k] = cb.DamageAt(xc, load)
	}
	return fem.NewFunction("alpha_cell", mesh, 1, values)
}

// LoadSteps divides [0,maxLoad] into n equal increments, returning the
// loads at the end of each
func LoadSteps(n int, maxLoad float64) (loads []float64) {
	if n < 1 {
		return
	}
	loads = make([]float64, n)
	for i := range loads {
		loads[i] = maxLoad * float64(i+1) / float64(n)
	}
	return
}
