package readfiles

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/notargets/fracviz/types"
)

var ErrFormat = errors.New("unsupported or malformed mesh file")

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string, verbose bool) (mesh *types.Mesh, err error) {
	var (
		file *os.File
	)
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".neu" && ext != ".su2" {
		err = fmt.Errorf("%s: extension %q: %w", filename, ext, ErrFormat)
		return
	}
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	switch ext {
	case ".neu":
		if verbose {
			fmt.Printf("Reading Gambit Neutral file named: %s\n", filename)
		}
		mesh, err = ReadGambit(file)
	case ".su2":
		if verbose {
			fmt.Printf("Reading SU2 file named: %s\n", filename)
		}
		mesh, _, err = ReadSU2(file)
	}
	if err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
		return
	}
	if verbose {
		mesh.PrintStatistics()
	}
	return
}

// lineScanner wraps a bufio.Scanner with line counting for error messages
type lineScanner struct {
	*bufio.Scanner
	line int
}

func newLineScanner(s *bufio.Scanner) *lineScanner {
	s.Buffer(make([]byte, 64*1024), 1024*1024)
	return &lineScanner{Scanner: s}
}

// next returns the next line, trimmed, failing at end of input
func (ls *lineScanner) next() (line string, err error) {
	if !ls.Scan() {
		if err = ls.Err(); err == nil {
			err = fmt.Errorf("early end of file after line %d: %w", ls.line, ErrFormat)
		}
		return
	}
	ls.line++
	line = strings.TrimSpace(ls.Text())
	return
}

func (ls *lineScanner) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", ls.line, fmt.Sprintf(format, args...), ErrFormat)
}

func parseInts(fields []string) (vals []int64, err error) {
	vals = make([]int64, len(fields))
	for i, f := range fields {
		if vals[i], err = strconv.ParseInt(f, 10, 64); err != nil {
			return
		}
	}
	return
}

func parseFloats(fields []string) (vals []float64, err error) {
	vals = make([]float64, len(fields))
	for i, f := range fields {
		if vals[i], err = strconv.ParseFloat(f, 64); err != nil {
			return
		}
	}
	return
}
