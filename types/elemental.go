package types

import (
	"fmt"
	"math"
	"sort"
)

/*
EdgeKey is an always positive number that stores an edge's vertices as indices in a way that can be compared
An edge between vertices [4] and [0] will always be stored as [0,4], in the ascending order of the index values
*/
type EdgeKey uint64

func NewEdgeKey(verts [2]int) (packed EdgeKey) {
	// This packs two index coordinates into two 32 bit unsigned integers to act as a hash and an indirect access method
	var (
		limit = math.MaxUint32
	)
	for _, vert := range verts {
		if vert < 0 || vert > limit {
			panic(fmt.Errorf("unable to pack two ints into a uint64, have %d and %d as inputs",
				verts[0], verts[1]))
		}
	}
	var i1, i2 int
	if verts[0] <= verts[1] {
		i1, i2 = verts[0], verts[1]
	} else {
		i1, i2 = verts[1], verts[0]
	}
	packed = EdgeKey(i1 + i2<<32)
	return
}

func (ek EdgeKey) GetVertices() (verts [2]int) {
	verts[1] = int(ek >> 32)
	verts[0] = int(ek & math.MaxUint32)
	return
}

// CellEdges returns the edges of every cell once each, in ascending key order.
// Boundary edges, those owned by a single cell, are returned separately.
func CellEdges(cells [][]int64, cellTypes []CellType) (all, boundary []EdgeKey) {
	var (
		count = make(map[EdgeKey]int)
	)
	for k, cell := range cells {
		for _, e := range cellTypes[k].Edges() {
			ek := NewEdgeKey([2]int{int(cell[e[0]]), int(cell[e[1]])})
			count[ek]++
		}
	}
	all = make([]EdgeKey, 0, len(count))
	for ek, n := range count {
		all = append(all, ek)
		if n == 1 {
			boundary = append(boundary, ek)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	sort.Slice(boundary, func(i, j int) bool { return boundary[i] < boundary[j] })
	return
}
