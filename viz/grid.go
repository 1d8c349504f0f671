package viz

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/fracviz/fem"
	"github.com/notargets/fracviz/types"
	"github.com/notargets/fracviz/utils"
)

var (
	ErrNoSuchArray = errors.New("no data array with that name")
	ErrTopology    = errors.New("topology does not match cell types")
)

type Association uint8

const (
	NoAssociation Association = iota
	PointAssociation
	CellAssociation
)

// Grid is an unstructured grid carrying named point and cell arrays. Rows
// of a point array index nodes, rows of a cell array index cells.
type Grid struct {
	Points        utils.Matrix // [N,3]
	Topology      []int64      // VTK layout, each cell prefixed by its node count
	CellTypes     []types.CellType
	PointData     map[string]utils.Matrix
	CellData      map[string]utils.Matrix
	ActiveScalars string
	activeAssoc   Association
	cells         [][]int64
}

func NewGrid(topology []int64, cellTypes []types.CellType, geometry utils.Matrix) (g *Grid, err error) {
	var (
		nr, nc = geometry.Dims()
		cells  = make([][]int64, 0, len(cellTypes))
		ii     int
	)
	if nc != 3 {
		err = fmt.Errorf("geometry must be [N,3], have [%d,%d]", nr, nc)
		return
	}
	for k, ct := range cellTypes {
		if ii >= len(topology) {
			err = fmt.Errorf("topology ends before cell %d: %w", k, ErrTopology)
			return
		}
		n := int(topology[ii])
		if n != ct.NumNodes() || ii+1+n > len(topology) {
			err = fmt.Errorf("cell %d: %v with %d nodes: %w", k, ct, n, ErrTopology)
			return
		}
		cell := topology[ii+1 : ii+1+n]
		for _, v := range cell {
			if v < 0 || int(v) >= nr {
				err = fmt.Errorf("cell %d: node %d out of range [0,%d): %w", k, v, nr, ErrTopology)
				return
			}
		}
		cells = append(cells, cell)
		ii += n + 1
	}
	if ii != len(topology) {
		err = fmt.Errorf("%d trailing topology entries: %w", len(topology)-ii, ErrTopology)
		return
	}
	g = &Grid{
		Points:    geometry,
		Topology:  topology,
		CellTypes: cellTypes,
		PointData: make(map[string]utils.Matrix),
		CellData:  make(map[string]utils.Matrix),
		cells:     cells,
	}
	return
}

func (g *Grid) NumPoints() int {
	nr, _ := g.Points.Dims()
	return nr
}

func (g *Grid) NumCells() int { return len(g.cells) }

// Cells returns the connectivity of each cell, sharing storage with Topology
func (g *Grid) Cells() [][]int64 { return g.cells }

func (g *Grid) SetPointData(name string, m utils.Matrix) error {
	if nr, _ := m.Dims(); nr != g.NumPoints() {
		return fmt.Errorf("point array %q has %d rows, grid has %d points", name, nr, g.NumPoints())
	}
	g.PointData[name] = m
	return nil
}

func (g *Grid) SetCellData(name string, m utils.Matrix) error {
	if nr, _ := m.Dims(); nr != g.NumCells() {
		return fmt.Errorf("cell array %q has %d rows, grid has %d cells", name, nr, g.NumCells())
	}
	g.CellData[name] = m
	return nil
}

// SetActiveScalars selects the array used to colour the grid, point arrays
// take precedence over cell arrays of the same name
func (g *Grid) SetActiveScalars(name string) error {
	if _, ok := g.PointData[name]; ok {
		g.ActiveScalars, g.activeAssoc = name, PointAssociation
		return nil
	}
	if _, ok := g.CellData[name]; ok {
		g.ActiveScalars, g.activeAssoc = name, CellAssociation
		return nil
	}
	return fmt.Errorf("%q: %w", name, ErrNoSuchArray)
}

func (g *Grid) ActiveAssociation() Association { return g.activeAssoc }

// WarpByVector returns a copy of the grid with every point moved by factor
// times the named [N,3] point array
func (g *Grid) WarpByVector(name string, factor float64) (w *Grid, err error) {
	vec, ok := g.PointData[name]
	if !ok {
		err = fmt.Errorf("point array %q: %w", name, ErrNoSuchArray)
		return
	}
	if _, nc := vec.Dims(); nc != 3 {
		err = fmt.Errorf("point array %q has %d components, warping needs 3", name, nc)
		return
	}
	w = g.Copy()
	w.Points.AddScaled(factor, vec)
	return
}

// Copy duplicates the points and every data array, topology is shared
func (g *Grid) Copy() (c *Grid) {
	c = &Grid{
		Points:        g.Points.Copy(),
		Topology:      g.Topology,
		CellTypes:     g.CellTypes,
		PointData:     make(map[string]utils.Matrix, len(g.PointData)),
		CellData:      make(map[string]utils.Matrix, len(g.CellData)),
		ActiveScalars: g.ActiveScalars,
		activeAssoc:   g.activeAssoc,
		cells:         g.cells,
	}
	for name, m := range g.PointData {
		c.PointData[name] = m.Copy()
	}
	for name, m := range g.CellData {
		c.CellData[name] = m.Copy()
	}
	return
}

// Triangles covers every cell surface with triangles, returning the owning
// cell of each triangle alongside
func (g *Grid) Triangles() (tris [][3]int64, owner []int) {
	for k, cell := range g.cells {
		for _, lt := range g.CellTypes[k].Triangles() {
			tris = append(tris, [3]int64{cell[lt[0]], cell[lt[1]], cell[lt[2]]})
			owner = append(owner, k)
		}
	}
	return
}

func (g *Grid) Edges() (edges []types.EdgeKey) {
	edges, _ = types.CellEdges(g.cells, g.CellTypes)
	return
}

// scalarValues reduces a data array to one value per row, using the
// magnitude for vector arrays
func scalarValues(m utils.Matrix) (s []float64) {
	nr, nc := m.Dims()
	s = make([]float64, nr)
	if nc == 1 {
		copy(s, m.DataP)
		return
	}
	for i := 0; i < nr; i++ {
		var sum float64
		for _, v := range m.RowView(i) {
			sum += v * v
		}
		s[i] = math.Sqrt(sum)
	}
	return
}

// ActivePointScalars returns the active scalars at the nodes, averaging cell
// arrays onto the nodes. ok is false when no scalars are active.
func (g *Grid) ActivePointScalars() (s []float64, ok bool) {
	switch g.activeAssoc {
	case PointAssociation:
		return scalarValues(g.PointData[g.ActiveScalars]), true
	case CellAssociation:
		pv, err := fem.CellToPoint(g.NumPoints(), g.cells, scalarValues(g.CellData[g.ActiveScalars]))
		if err != nil {
			return nil, false
		}
		return pv, true
	}
	return nil, false
}

// ActiveCellScalars returns the active scalars per cell, averaging the node
// values of each cell for point arrays
func (g *Grid) ActiveCellScalars() (s []float64, ok bool) {
	switch g.activeAssoc {
	case CellAssociation:
		return scalarValues(g.CellData[g.ActiveScalars]), true
	case PointAssociation:
		pv := scalarValues(g.PointData[g.ActiveScalars])
		s = make([]float64, len(g.cells))
		for k, cell := range g.cells {
			for _, v := range cell {
				s[k] += pv[v]
			}
			s[k] /= float64(len(cell))
		}
		return s, true
	}
	return nil, false
}

// ActiveScalarRange is the min and max of the active scalars
func (g *Grid) ActiveScalarRange() (fMin, fMax float64, ok bool) {
	var s []float64
	switch g.activeAssoc {
	case PointAssociation:
		s = scalarValues(g.PointData[g.ActiveScalars])
	case CellAssociation:
		s = scalarValues(g.CellData[g.ActiveScalars])
	default:
		return
	}
	if len(s) == 0 {
		return
	}
	return floats.Min(s), floats.Max(s), true
}
