package fem

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// CellToPoint averages cell values onto the nodes, each node taking the
// unweighted mean of the cells that contain it. Nodes in no cell get zero.
func CellToPoint(nNodes int, cells [][]int64, cellValues []float64) (pointValues []float64, err error) {
	var (
		K = len(cells)
	)
	if len(cellValues) != K {
		err = fmt.Errorf("have %d cell values for %d cells: %w", len(cellValues), K, ErrShape)
		return
	}
	pointValues = make([]float64, nNodes)
	if K == 0 || nNodes == 0 {
		return
	}
	// Node to cell incidence
	SpVToE_Tmp := sparse.NewDOK(nNodes, K)
	for k, cell := range cells {
		for _, v := range cell {
			SpVToE_Tmp.Set(int(v), k, 1)
		}
	}
	SpVToE := SpVToE_Tmp.ToCSR()
	for i := 0; i < nNodes; i++ {
		var sum, count float64
		SpVToE.DoRowNonZero(i, func(_, k int, v float64) {
			sum += v * cellValues[k]
			count += v
		})
		if count != 0 {
			pointValues[i] = sum / count
		}
	}
	return
}

// CellToPoint averages a one value per cell array over the mesh of f
func (f *Function) CellToPoint(cellValues []float64) ([]float64, error) {
	return CellToPoint(f.Mesh.NumNodes(), f.Mesh.Cells, cellValues)
}
