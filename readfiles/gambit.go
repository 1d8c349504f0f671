package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/notargets/fracviz/types"
	"github.com/notargets/fracviz/utils"
)

// Gambit neutral element type codes
const (
	gambitEdge  = 1
	gambitQuad  = 2
	gambitTri   = 3
	gambitBrick = 4
	gambitTet   = 6
)

// gambitBrickOrder maps VTK hexahedron node positions to Gambit brick ones
var gambitBrickOrder = [8]int{0, 1, 3, 2, 4, 5, 7, 6}

// ReadGambit reads the nodes and cells of a Gambit neutral file. Element
// groups and boundary conditions are skipped.
func ReadGambit(r io.Reader) (mesh *types.Mesh, err error) {
	var (
		ls          = newLineScanner(bufio.NewScanner(r))
		line        string
		numNP, nEl  int
		nsd         int
		geom        utils.Matrix
		cells       = [][]int64{}
		cellTypes   = []types.CellType{}
		haveNodes   bool
		haveHeader  bool
		haveElement bool
	)
	for ls.Scan() {
		ls.line++
		line = strings.TrimSpace(ls.Text())
		switch {
		case strings.HasPrefix(line, "NUMNP"):
			if line, err = ls.next(); err != nil {
				return
			}
			var nGrps, nBSets, ndfvl int
			if _, err = fmt.Sscanf(line, "%d %d %d %d %d %d", &numNP, &nEl, &nGrps, &nBSets, &nsd, &ndfvl); err != nil {
				err = ls.errorf("bad problem size line %q", line)
				return
			}
			if nsd < 2 || nsd > 3 {
				err = ls.errorf("space dimensions %d not 2 or 3", nsd)
				return
			}
			haveHeader = true
		case strings.HasPrefix(line, "NODAL COORDINATES"):
			if !haveHeader {
				err = ls.errorf("nodal coordinates before the problem size")
				return
			}
			if geom, err = readGambitNodes(ls, numNP, nsd); err != nil {
				return
			}
			haveNodes = true
		case strings.HasPrefix(line, "ELEMENTS/CELLS"):
			if !haveHeader {
				err = ls.errorf("elements before the problem size")
				return
			}
			if cells, cellTypes, err = readGambitCells(ls, nEl); err != nil {
				return
			}
			haveElement = true
		}
	}
	if err = ls.Err(); err != nil {
		return
	}
	if !haveNodes || !haveElement {
		err = fmt.Errorf("missing nodal coordinates or elements: %w", ErrFormat)
		return
	}
	return types.NewMesh(geom, cells, cellTypes)
}

func readGambitNodes(ls *lineScanner, numNP, nsd int) (geom utils.Matrix, err error) {
	var (
		line string
		seen = make([]bool, numNP)
	)
	geom = utils.NewMatrix(numNP, nsd)
	for i := 0; i < numNP; i++ {
		if line, err = ls.next(); err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) != nsd+1 {
			err = ls.errorf("node line needs %d values, have %d", nsd+1, len(fields))
			return
		}
		var (
			id     []int64
			coords []float64
		)
		if id, err = parseInts(fields[:1]); err != nil {
			err = ls.errorf("%v", err)
			return
		}
		if coords, err = parseFloats(fields[1:]); err != nil {
			err = ls.errorf("%v", err)
			return
		}
		n := int(id[0]) - 1
		if n < 0 || n >= numNP || seen[n] {
			err = ls.errorf("node id %d invalid or repeated", id[0])
			return
		}
		seen[n] = true
		copy(geom.RowView(n), coords)
	}
	if line, err = ls.next(); err != nil {
		return
	}
	if line != "ENDOFSECTION" {
		err = ls.errorf("expected ENDOFSECTION, have %q", line)
	}
	return
}

func readGambitCells(ls *lineScanner, nEl int) (cells [][]int64, cellTypes []types.CellType, err error) {
	var (
		line string
	)
	cells = make([][]int64, nEl)
	cellTypes = make([]types.CellType, nEl)
	for k := 0; k < nEl; k++ {
		if line, err = ls.next(); err != nil {
			return
		}
		var vals []int64
		if vals, err = parseInts(strings.Fields(line)); err != nil || len(vals) < 3 {
			err = ls.errorf("bad element line %q", line)
			return
		}
		id, gType, ndp := vals[0], vals[1], int(vals[2])
		nodes := vals[3:]
		// Long elements wrap onto a continuation line
		for len(nodes) < ndp {
			if line, err = ls.next(); err != nil {
				return
			}
			var more []int64
			if more, err = parseInts(strings.Fields(line)); err != nil {
				err = ls.errorf("bad element continuation %q", line)
				return
			}
			nodes = append(nodes, more...)
		}
		if len(nodes) != ndp {
			err = ls.errorf("element %d lists %d nodes, expected %d", id, len(nodes), ndp)
			return
		}
		if id < 1 || int(id) > nEl {
			err = ls.errorf("element id %d out of range", id)
			return
		}
		var ct types.CellType
		switch gType {
		case gambitEdge:
			ct = types.Line
		case gambitQuad:
			ct = types.Quad
		case gambitTri:
			ct = types.Triangle
		case gambitTet:
			ct = types.Tetra
		case gambitBrick:
			ct = types.Hexahedron
		default:
			err = ls.errorf("gambit element type %d not supported", gType)
			return
		}
		if ndp != ct.NumNodes() {
			err = ls.errorf("%v with %d nodes", ct, ndp)
			return
		}
		cell := make([]int64, ndp)
		for i := range cell {
			src := i
			if ct == types.Hexahedron {
				src = gambitBrickOrder[i]
			}
			cell[i] = nodes[src] - 1
		}
		cells[id-1], cellTypes[id-1] = cell, ct
	}
	if line, err = ls.next(); err != nil {
		return
	}
	if line != "ENDOFSECTION" {
		err = ls.errorf("expected ENDOFSECTION, have %q", line)
	}
	return
}

// WriteGambit writes the mesh as a Gambit neutral file with a single
// element group and no boundary conditions
func WriteGambit(filename string, mesh *types.Mesh) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	w := bufio.NewWriter(file)
	if err = EncodeGambit(w, mesh, filename); err != nil {
		return
	}
	return w.Flush()
}

func EncodeGambit(w io.Writer, mesh *types.Mesh, title string) (err error) {
	var (
		nsd = mesh.GDim
		ew  = &errWriter{w: w}
	)
	if nsd < 2 {
		nsd = 2
	}
	ew.printf("        CONTROL INFO 2.4.6\n")
	ew.printf("** GAMBIT NEUTRAL FILE\n")
	ew.printf("%s\n", title)
	ew.printf("PROGRAM:                fracviz     VERSION:  2.4.6\n")
	ew.printf("%s\n", time.Now().Format("Jan 2006"))
	ew.printf("     NUMNP     NELEM     NGRPS    NBSETS     NDFCD     NDFVL\n")
	ew.printf("%10d%10d%10d%10d%10d%10d\n", mesh.NumNodes(), mesh.NumCells(), 1, 0, nsd, nsd)
	ew.printf("ENDOFSECTION\n")
	ew.printf("   NODAL COORDINATES 2.4.6\n")
	for i := 0; i < mesh.NumNodes(); i++ {
		ew.printf("%10d", i+1)
		for _, x := range mesh.Geometry.RowView(i)[:nsd] {
			ew.printf("%20.11e", x)
		}
		ew.printf("\n")
	}
	ew.printf("ENDOFSECTION\n")
	ew.printf("      ELEMENTS/CELLS 2.4.6\n")
	for k, cell := range mesh.Cells {
		var gType int
		switch ct := mesh.CellTypes[k]; ct {
		case types.Line:
			gType = gambitEdge
		case types.Triangle:
			gType = gambitTri
		case types.Quad:
			gType = gambitQuad
		case types.Tetra:
			gType = gambitTet
		case types.Hexahedron:
			gType = gambitBrick
		default:
			return fmt.Errorf("cell %d: %v has no gambit equivalent: %w", k, ct, ErrFormat)
		}
		ew.printf("%8d%3d%3d ", k+1, gType, len(cell))
		for i := range cell {
			v := cell[i]
			if mesh.CellTypes[k] == types.Hexahedron {
				v = cell[gambitBrickOrder[i]]
			}
			if i > 0 && i%7 == 0 {
				ew.printf("\n               ")
			}
			ew.printf("%8d", v+1)
		}
		ew.printf("\n")
	}
	ew.printf("ENDOFSECTION\n")
	ew.printf("       ELEMENT GROUP 2.4.6\n")
	ew.printf("GROUP:%11d ELEMENTS:%11d MATERIAL:%11d NFLAGS:%11d\n", 1, mesh.NumCells(), 2, 1)
	ew.printf("%32s\n", "solid")
	ew.printf("       0\n")
	for k := 0; k < mesh.NumCells(); k++ {
		ew.printf("%8d", k+1)
		if (k+1)%10 == 0 || k == mesh.NumCells()-1 {
			ew.printf("\n")
		}
	}
	ew.printf("ENDOFSECTION\n")
	return ew.err
}

// errWriter keeps the first write error
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
