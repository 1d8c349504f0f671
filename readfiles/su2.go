package readfiles

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/notargets/fracviz/types"
	"github.com/notargets/fracviz/utils"
)

// Markers are the boundary edges of an SU2 file by tag
type Markers map[string][]types.EdgeKey

// Names returns the marker tags in sorted order
func (m Markers) Names() (names []string) {
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// ReadSU2 reads an SU2 native format file. Element type codes are the VTK
// ones, so they map directly onto types.CellType.
// From here: https://su2code.github.io/docs_v7/Mesh-File/
func ReadSU2(r io.Reader) (mesh *types.Mesh, markers Markers, err error) {
	var (
		ls        = newLineScanner(bufio.NewScanner(r))
		ndime     int
		geom      utils.Matrix
		cells     [][]int64
		cellTypes []types.CellType
		havePts   bool
	)
	markers = make(Markers)
	for ls.Scan() {
		ls.line++
		line := strings.TrimSpace(ls.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		key, value, ok := su2Keyword(line)
		if !ok {
			err = ls.errorf("unexpected line %q", line)
			return
		}
		switch key {
		case "NDIME":
			if ndime, err = su2Count(ls, value); err != nil {
				return
			}
			if ndime < 2 || ndime > 3 {
				err = ls.errorf("NDIME=%d, need 2 or 3", ndime)
				return
			}
		case "NELEM":
			var nelem int
			if nelem, err = su2Count(ls, value); err != nil {
				return
			}
			if cells, cellTypes, err = readSU2Cells(ls, nelem); err != nil {
				return
			}
		case "NPOIN":
			var npoin int
			if npoin, err = su2Count(ls, value); err != nil {
				return
			}
			if ndime == 0 {
				err = ls.errorf("NPOIN before NDIME")
				return
			}
			if geom, err = readSU2Points(ls, npoin, ndime); err != nil {
				return
			}
			havePts = true
		case "NMARK":
			var nmark int
			if nmark, err = su2Count(ls, value); err != nil {
				return
			}
			for n := 0; n < nmark; n++ {
				if err = readSU2Marker(ls, markers); err != nil {
					return
				}
			}
		default:
			err = ls.errorf("unknown keyword %s", key)
			return
		}
	}
	if err = ls.Err(); err != nil {
		return
	}
	if !havePts || cells == nil {
		err = fmt.Errorf("missing NPOIN or NELEM section: %w", ErrFormat)
		return
	}
	mesh, err = types.NewMesh(geom, cells, cellTypes)
	return
}

func su2Keyword(line string) (key, value string, ok bool) {
	ind := strings.Index(line, "=")
	if ind < 0 {
		return
	}
	return strings.TrimSpace(line[:ind]), strings.TrimSpace(line[ind+1:]), true
}

// su2Count reads the leading integer of a keyword value, NPOIN may carry a
// second count
func su2Count(ls *lineScanner, value string) (n int, err error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		err = ls.errorf("missing count")
		return
	}
	if n, err = strconv.Atoi(fields[0]); err != nil || n < 0 {
		err = ls.errorf("bad count %q", fields[0])
	}
	return
}

// nextData skips comments and blank lines
func nextData(ls *lineScanner) (line string, err error) {
	for {
		if line, err = ls.next(); err != nil {
			return
		}
		if line != "" && !strings.HasPrefix(line, "%") {
			return
		}
	}
}

func readSU2Cells(ls *lineScanner, nelem int) (cells [][]int64, cellTypes []types.CellType, err error) {
	var (
		line string
		vals []int64
	)
	cells = make([][]int64, nelem)
	cellTypes = make([]types.CellType, nelem)
	for k := 0; k < nelem; k++ {
		if line, err = nextData(ls); err != nil {
			return
		}
		if vals, err = parseInts(strings.Fields(line)); err != nil || len(vals) < 2 {
			err = ls.errorf("bad element line %q", line)
			return
		}
		ct := types.CellType(vals[0])
		if !ct.IsValid() {
			err = ls.errorf("element type %d not supported", vals[0])
			return
		}
		nn := ct.NumNodes()
		// An optional trailing element index follows the nodes
		if len(vals) != nn+1 && len(vals) != nn+2 {
			err = ls.errorf("%v needs %d nodes, line has %d values", ct, nn, len(vals)-1)
			return
		}
		cells[k], cellTypes[k] = vals[1:nn+1], ct
	}
	return
}

func readSU2Points(ls *lineScanner, npoin, ndime int) (geom utils.Matrix, err error) {
	var (
		line   string
		coords []float64
	)
	geom = utils.NewMatrix(npoin, ndime)
	for i := 0; i < npoin; i++ {
		if line, err = nextData(ls); err != nil {
			return
		}
		fields := strings.Fields(line)
		if len(fields) < ndime {
			err = ls.errorf("point %d needs %d coordinates", i, ndime)
			return
		}
		if coords, err = parseFloats(fields[:ndime]); err != nil {
			err = ls.errorf("%v", err)
			return
		}
		copy(geom.RowView(i), coords)
	}
	return
}

func readSU2Marker(ls *lineScanner, markers Markers) (err error) {
	var (
		line, tag string
		nElems    int
		vals      []int64
	)
	if line, err = nextData(ls); err != nil {
		return
	}
	key, value, ok := su2Keyword(line)
	if !ok || key != "MARKER_TAG" {
		return ls.errorf("expected MARKER_TAG, have %q", line)
	}
	tag = value
	if line, err = nextData(ls); err != nil {
		return
	}
	key, value, ok = su2Keyword(line)
	if !ok || key != "MARKER_ELEMS" {
		return ls.errorf("expected MARKER_ELEMS, have %q", line)
	}
	if nElems, err = su2Count(ls, value); err != nil {
		return
	}
	for i := 0; i < nElems; i++ {
		if line, err = nextData(ls); err != nil {
			return
		}
		if vals, err = parseInts(strings.Fields(line)); err != nil || len(vals) < 3 {
			return ls.errorf("bad marker element %q", line)
		}
		ct := types.CellType(vals[0])
		if !ct.IsValid() || len(vals)-1 < ct.NumNodes() {
			return ls.errorf("bad marker element %q", line)
		}
		nodes := vals[1 : ct.NumNodes()+1]
		for _, e := range ct.Edges() {
			markers[tag] = append(markers[tag],
				types.NewEdgeKey([2]int{int(nodes[e[0]]), int(nodes[e[1]])}))
		}
	}
	return
}
