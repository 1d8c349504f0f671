package types

import "fmt"

// CellType uses the VTK cell numbering so topology can be handed to VTK
// style consumers unchanged.
type CellType uint8

const (
	Vertex     CellType = 1
	Line       CellType = 3
	Triangle   CellType = 5
	Quad       CellType = 9
	Tetra      CellType = 10
	Hexahedron CellType = 12
)

func (ct CellType) String() string {
	switch ct {
	case Vertex:
		return "Vertex"
	case Line:
		return "Line"
	case Triangle:
		return "Triangle"
	case Quad:
		return "Quad"
	case Tetra:
		return "Tetra"
	case Hexahedron:
		return "Hexahedron"
	}
	return fmt.Sprintf("CellType(%d)", uint8(ct))
}

func (ct CellType) NumNodes() (n int) {
	switch ct {
	case Vertex:
		n = 1
	case Line:
		n = 2
	case Triangle:
		n = 3
	case Quad, Tetra:
		n = 4
	case Hexahedron:
		n = 8
	}
	return
}

func (ct CellType) IsValid() bool { return ct.NumNodes() != 0 }

// Edges lists the local vertex pairs of each cell edge
func (ct CellType) Edges() (edges [][2]int) {
	switch ct {
	case Line:
		edges = [][2]int{{0, 1}}
	case Triangle:
		edges = [][2]int{{0, 1}, {1, 2}, {2, 0}}
	case Quad:
		edges = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	case Tetra:
		edges = [][2]int{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {2, 3}}
	case Hexahedron:
		edges = [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
			{0, 4}, {1, 5}, {2, 6}, {3, 7},
		}
	}
	return
}

// Triangles lists the local vertex triples covering the cell surface, used
// to fill the cell when drawing
func (ct CellType) Triangles() (tris [][3]int) {
	switch ct {
	case Triangle:
		tris = [][3]int{{0, 1, 2}}
	case Quad:
		tris = [][3]int{{0, 1, 2}, {0, 2, 3}}
	case Tetra:
		tris = [][3]int{{0, 2, 1}, {0, 1, 3}, {1, 2, 3}, {0, 3, 2}}
	case Hexahedron:
		tris = [][3]int{
			{0, 3, 2}, {0, 2, 1}, {4, 5, 6}, {4, 6, 7},
			{0, 1, 5}, {0, 5, 4}, {1, 2, 6}, {1, 6, 5},
			{2, 3, 7}, {2, 7, 6}, {3, 0, 4}, {3, 4, 7},
		}
	}
	return
}
