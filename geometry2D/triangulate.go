package geometry2D

import (
	"fmt"
	"math"

	"github.com/pradeep-pyro/triangle"

	"github.com/notargets/fracviz/types"
	"github.com/notargets/fracviz/utils"
)

func IsIllegalEdge(prX, prY, piX, piY, pjX, pjY, pkX, pkY float64) bool {
	/*
		pr is a new point for candidate triangle pi-pj-pr
		pi-pj is a shared edge between pi-pj-pk and pi-pj-pr
		if pr lies inside the circle defined by pi-pj-pk:
			- The edge pi-pj should be swapped with pr-pk to make two new triangles:
				pi-pr-pk and pj-pk-pr
	*/
	return InCircle(piX, piY, pjX, pjY, pkX, pkY, prX, prY) > 0
}

// InCircle is positive when d lies inside the circle through a, b and c,
// negative outside, whatever the handedness of a-b-c
func InCircle(ax, ay, bx, by, cx, cy, dx, dy float64) (det float64) {
	// Calculate handedness, counter-clockwise is (positive) and clockwise is (negative)
	signBit := math.Signbit((bx-ax)*(cy-ay) - (cx-ax)*(by-ay))
	ax_ := ax - dx
	ay_ := ay - dy
	bx_ := bx - dx
	by_ := by - dy
	cx_ := cx - dx
	cy_ := cy - dy
	det = (ax_*ax_+ay_*ay_)*(bx_*cy_-cx_*by_) -
		(bx_*bx_+by_*by_)*(ax_*cy_-cx_*ay_) +
		(cx_*cx_+cy_*cy_)*(ax_*by_-bx_*ay_)
	if signBit {
		det = -det
	}
	return
}

// TriArea is the signed area, positive for counter-clockwise vertices
func TriArea(ax, ay, bx, by, cx, cy float64) float64 {
	return 0.5 * ((bx-ax)*(cy-ay) - (cx-ax)*(by-ay))
}

// Triangulate builds the Delaunay triangulation of a point set. Triangles
// are returned counter-clockwise and slivers with no area are dropped.
func Triangulate(X, Y []float64) (tris [][]int64, err error) {
	var (
		pts = make([][2]float64, len(X))
	)
	if len(X) != len(Y) {
		err = fmt.Errorf("have %d x and %d y coordinates", len(X), len(Y))
		return
	}
	if len(X) < 3 {
		err = fmt.Errorf("need at least 3 points to triangulate, have %d", len(X))
		return
	}
	for i := range X {
		pts[i] = [2]float64{X[i], Y[i]}
	}
	for _, t := range triangle.Delaunay(pts) {
		v := []int64{int64(t[0]), int64(t[1]), int64(t[2])}
		area := TriArea(X[v[0]], Y[v[0]], X[v[1]], Y[v[1]], X[v[2]], Y[v[2]])
		switch {
		case math.Abs(area) < 1.e-14:
			continue
		case area < 0:
			v[1], v[2] = v[2], v[1]
		}
		tris = append(tris, v)
	}
	if len(tris) == 0 {
		err = fmt.Errorf("points are collinear, no triangles")
	}
	return
}

// NewRectangleMesh triangulates an (nx+1) x (ny+1) lattice over
// [0,lx] x [0,ly]
func NewRectangleMesh(lx, ly float64, nx, ny int) (mesh *types.Mesh, err error) {
	var (
		Np   = (nx + 1) * (ny + 1)
		X, Y = make([]float64, Np), make([]float64, Np)
		tris [][]int64
	)
	if nx < 1 || ny < 1 || lx <= 0 || ly <= 0 {
		err = fmt.Errorf("bad rectangle %gx%g with %dx%d divisions", lx, ly, nx, ny)
		return
	}
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			n := j*(nx+1) + i
			X[n] = lx * float64(i) / float64(nx)
			Y[n] = ly * float64(j) / float64(ny)
		}
	}
	if tris, err = Triangulate(X, Y); err != nil {
		return
	}
	geom := utils.NewMatrix(Np, 2)
	for i := 0; i < Np; i++ {
		geom.Set(i, 0, X[i])
		geom.Set(i, 1, Y[i])
	}
	cellTypes := make([]types.CellType, len(tris))
	for k := range cellTypes {
		cellTypes[k] = types.Triangle
	}
	return types.NewMesh(geom, tris, cellTypes)
}
