package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/fracviz/utils"
)

func TestEdgeKey(t *testing.T) {
	en := NewEdgeKey([2]int{1, 0})
	assert.Equal(t, EdgeKey(1<<32), en)
	assert.Equal(t, [2]int{0, 1}, en.GetVertices())

	en = NewEdgeKey([2]int{100, 1})
	assert.Equal(t, EdgeKey(100*(1<<32)+1), en)
	assert.Equal(t, [2]int{1, 100}, en.GetVertices())

	en = NewEdgeKey([2]int{1<<32 - 1, 1<<32 - 1})
	assert.Equal(t, EdgeKey(1<<64-1), en)
	assert.Equal(t, [2]int{1<<32 - 1, 1<<32 - 1}, en.GetVertices())

	assert.Panics(t, func() { NewEdgeKey([2]int{-1, 2}) })
}

// unitSquare is two triangles sharing the diagonal 0-2
func unitSquare(t *testing.T) *Mesh {
	geom := utils.NewMatrix(4, 2, []float64{
		0, 0,
		1, 0,
		1, 1,
		0, 1,
	})
	m, err := NewMesh(geom, [][]int64{{0, 1, 2}, {0, 2, 3}}, []CellType{Triangle, Triangle})
	require.NoError(t, err)
	return m
}

func TestNewMesh(t *testing.T) {
	m := unitSquare(t)
	assert.Equal(t, 4, m.NumNodes())
	assert.Equal(t, 2, m.NumCells())
	assert.Equal(t, 2, m.GDim)
	_, nc := m.Geometry.Dims()
	assert.Equal(t, 3, nc)
	assert.Equal(t, []float64{1, 1, 0}, m.Geometry.RowView(2))

	// Meshes are distinct even with identical contents
	m2 := unitSquare(t)
	assert.NotEqual(t, m.ID, m2.ID)

	min, max := m.Bounds()
	assert.Equal(t, [3]float64{0, 0, 0}, min)
	assert.Equal(t, [3]float64{1, 1, 0}, max)
}

func TestNewMeshErrors(t *testing.T) {
	geom := utils.NewMatrix(3, 2)
	_, err := NewMesh(geom, [][]int64{{0, 1, 3}}, []CellType{Triangle})
	assert.Error(t, err)
	_, err = NewMesh(geom, [][]int64{{0, 1}}, []CellType{Triangle})
	assert.Error(t, err)
	_, err = NewMesh(geom, [][]int64{{0, 1, 2}}, []CellType{})
	assert.Error(t, err)
	_, err = NewMesh(geom, [][]int64{{0, 1, 2}}, []CellType{CellType(42)})
	assert.Error(t, err)
	_, err = NewMesh(utils.NewMatrix(3, 4), nil, nil)
	assert.Error(t, err)
}

func TestVTKMesh(t *testing.T) {
	m := unitSquare(t)
	topology, cellTypes, geometry := m.VTKMesh()
	assert.Equal(t, []int64{3, 0, 1, 2, 3, 0, 2, 3}, topology)
	assert.Equal(t, []CellType{Triangle, Triangle}, cellTypes)
	nr, nc := geometry.Dims()
	assert.Equal(t, 4, nr)
	assert.Equal(t, 3, nc)
	// The geometry is a copy
	geometry.Set(0, 0, 99)
	assert.Equal(t, 0., m.Geometry.At(0, 0))
}

func TestCellEdges(t *testing.T) {
	m := unitSquare(t)
	all, boundary := CellEdges(m.Cells, m.CellTypes)
	assert.Len(t, all, 5)
	assert.Len(t, boundary, 4)
	assert.NotContains(t, boundary, NewEdgeKey([2]int{0, 2}))
	assert.Contains(t, all, NewEdgeKey([2]int{2, 0}))
}

func TestCellType(t *testing.T) {
	assert.Equal(t, "Quad", Quad.String())
	assert.Equal(t, 8, Hexahedron.NumNodes())
	assert.Len(t, Quad.Triangles(), 2)
	assert.Len(t, Tetra.Edges(), 6)
	assert.False(t, CellType(2).IsValid())
}
