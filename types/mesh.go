package types

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/notargets/fracviz/utils"
)

// Mesh is an unstructured finite element mesh. Geometry is always stored
// with three columns; GDim records how many of them were supplied.
type Mesh struct {
	ID        uuid.UUID
	Geometry  utils.Matrix // [N,3] node coordinates
	Cells     [][]int64    // Cell to vertex connectivity
	CellTypes []CellType
	GDim      int
}

func NewMesh(geometry utils.Matrix, cells [][]int64, cellTypes []CellType) (m *Mesh, err error) {
	var (
		nr, nc = geometry.Dims()
	)
	if nc < 1 || nc > 3 {
		err = fmt.Errorf("geometry must have 1 to 3 columns, have %d", nc)
		return
	}
	if len(cells) != len(cellTypes) {
		err = fmt.Errorf("have %d cells but %d cell types", len(cells), len(cellTypes))
		return
	}
	for k, cell := range cells {
		ct := cellTypes[k]
		if !ct.IsValid() {
			err = fmt.Errorf("cell %d: unsupported cell type %v", k, ct)
			return
		}
		if len(cell) != ct.NumNodes() {
			err = fmt.Errorf("cell %d: %v needs %d nodes, have %d", k, ct, ct.NumNodes(), len(cell))
			return
		}
		for _, v := range cell {
			if v < 0 || int(v) >= nr {
				err = fmt.Errorf("cell %d: node index %d out of range [0,%d)", k, v, nr)
				return
			}
		}
	}
	geom := geometry
	if nc != 3 {
		geom = utils.NewMatrix(nr, 3)
		for i := 0; i < nr; i++ {
			copy(geom.RowView(i), geometry.RowView(i))
		}
	}
	m = &Mesh{
		ID:        uuid.New(),
		Geometry:  geom,
		Cells:     cells,
		CellTypes: cellTypes,
		GDim:      nc,
	}
	return
}

func (m *Mesh) NumNodes() int {
	nr, _ := m.Geometry.Dims()
	return nr
}

func (m *Mesh) NumCells() int { return len(m.Cells) }

// VTKMesh returns the mesh in VTK unstructured grid form: a flattened
// topology with each cell prefixed by its node count, the cell types, and a
// copy of the [N,3] geometry
func (m *Mesh) VTKMesh() (topology []int64, cellTypes []CellType, geometry utils.Matrix) {
	var (
		size int
	)
	for _, cell := range m.Cells {
		size += len(cell) + 1
	}
	topology = make([]int64, 0, size)
	for _, cell := range m.Cells {
		topology = append(topology, int64(len(cell)))
		topology = append(topology, cell...)
	}
	cellTypes = make([]CellType, len(m.CellTypes))
	copy(cellTypes, m.CellTypes)
	geometry = m.Geometry.Copy()
	return
}

// Bounds returns the min and max of each coordinate
func (m *Mesh) Bounds() (min, max [3]float64) {
	for j := 0; j < 3; j++ {
		min[j], max[j] = math.MaxFloat64, -math.MaxFloat64
	}
	for i := 0; i < m.NumNodes(); i++ {
		for j, x := range m.Geometry.RowView(i) {
			min[j] = math.Min(min[j], x)
			max[j] = math.Max(max[j], x)
		}
	}
	return
}

func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  ID: %s\n", m.ID)
	fmt.Printf("  Vertices: %d\n", m.NumNodes())
	fmt.Printf("  Elements: %d\n", m.NumCells())
	typeCounts := make(map[CellType]int)
	for _, t := range m.CellTypes {
		typeCounts[t]++
	}
	fmt.Printf("  Element types:\n")
	for _, t := range []CellType{Vertex, Line, Triangle, Quad, Tetra, Hexahedron} {
		if count, ok := typeCounts[t]; ok {
			fmt.Printf("    %v: %d\n", t, count)
		}
	}
	min, max := m.Bounds()
	fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
		min[0], max[0], min[1], max[1], min[2], max[2])
}
