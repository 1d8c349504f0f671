package readfiles

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Field files hold a little endian int64 length followed by that many
// float64 values

func WriteField(filename string, values []float64) (err error) {
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
	if err = EncodeField(w, values); err != nil {
		return
	}
	return w.Flush()
}

func EncodeField(w io.Writer, values []float64) (err error) {
	var (
		lenField = int64(len(values))
	)
	if err = binary.Write(w, binary.LittleEndian, lenField); err != nil || lenField == 0 {
		return
	}
	return binary.Write(w, binary.LittleEndian, values)
}

func ReadField(filename string, verbose bool) (values []float64, err error) {
	var (
		file *os.File
	)
	if verbose {
		fmt.Printf("Reading field file named: %s\n", filename)
	}
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	if values, err = DecodeField(bufio.NewReader(file)); err != nil {
		err = fmt.Errorf("%s: %w", filename, err)
		return
	}
	if verbose {
		fmt.Printf("Read %d values\n", len(values))
	}
	return
}

// fieldChunk is the number of values read at a time. A corrupt length can
// then only cost as much memory as the data actually present.
const fieldChunk = 1 << 16

func DecodeField(r io.Reader) (values []float64, err error) {
	var (
		lenField int64
	)
	if err = binary.Read(r, binary.LittleEndian, &lenField); err != nil {
		err = fmt.Errorf("reading field length: %v: %w", err, ErrFormat)
		return
	}
	if lenField < 0 {
		err = fmt.Errorf("field length %d: %w", lenField, ErrFormat)
		return
	}
	values = make([]float64, 0, min(lenField, fieldChunk))
	for remaining := lenField; remaining > 0; {
		var (
			n     = min(remaining, fieldChunk)
			chunk = make([]float64, n)
		)
		if err = binary.Read(r, binary.LittleEndian, chunk); err != nil {
			err = fmt.Errorf("reading %d values, %d read: %v: %w",
				lenField, len(values), err, ErrFormat)
			values = nil
			return
		}
		values = append(values, chunk...)
		remaining -= n
	}
	return
}
