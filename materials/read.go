package materials

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matmodlab/goelastic/tensor"
	"github.com/matmodlab/goelastic/utils"
)

// NamedMatrix pairs a stiffness matrix with the name it was read
// under.
type NamedMatrix struct {
	Name string
	C    utils.Matrix
}

// ReadMatrixFile parses one or more stiffness matrices from a
// whitespace- or comma-delimited text file. A non-numeric line names
// the matrix that follows; '#' starts a comment. Rows of 3 values are
// collected into 3x3 in-plane matrices and auto-widened to 6x6.
func ReadMatrixFile(path string) (out []NamedMatrix, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	return readMatrices(f, strings.TrimSuffix(filepath.Base(path),
		filepath.Ext(path)))
}

func readMatrices(f *os.File, defaultName string) (out []NamedMatrix, err error) {
	var (
		scanner = bufio.NewScanner(f)
		name    = defaultName
		rows    [][]float64
		width   int
		lineNo  int
	)
	flush := func() error {
		if len(rows) == 0 {
			return nil
		}
		if len(rows) != width {
			return fmt.Errorf("matrix %q: got %d rows of %d values, want %d",
				name, len(rows), width, width)
		}
		data := make([]float64, 0, width*width)
		for _, row := range rows {
			data = append(data, row...)
		}
		C := utils.NewMatrix(width, width, data)
		if width == 3 {
			var errE error
			if C, errE = tensor.Embed2D(C); errE != nil {
				return errE
			}
		}
		suffix := ""
		if n := len(out); n > 0 {
			// Disambiguate unnamed blocks within one file.
			suffix = fmt.Sprintf("-%d", n+1)
		}
		if name == defaultName {
			out = append(out, NamedMatrix{name + suffix, C})
		} else {
			out = append(out, NamedMatrix{name, C})
		}
		rows, width = nil, 0
		return nil
	}
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ','
		})
		row := make([]float64, 0, len(fields))
		numeric := true
		for _, fd := range fields {
			v, errP := strconv.ParseFloat(fd, 64)
			if errP != nil {
				numeric = false
				break
			}
			row = append(row, v)
		}
		if !numeric {
			// Name line: terminates any matrix in progress.
			if err = flush(); err != nil {
				return
			}
			name = line
			continue
		}
		if len(row) != 6 && len(row) != 3 {
			err = fmt.Errorf("line %d: want 6 or 3 values per row, got %d",
				lineNo, len(row))
			return
		}
		if width == 0 {
			width = len(row)
		} else if len(row) != width {
			err = fmt.Errorf("line %d: row width %d does not match matrix width %d",
				lineNo, len(row), width)
			return
		}
		rows = append(rows, row)
		if len(rows) == width {
			if err = flush(); err != nil {
				return
			}
			name = defaultName
		}
	}
	if err = scanner.Err(); err != nil {
		return
	}
	if err = flush(); err != nil {
		return
	}
	if len(out) == 0 {
		err = fmt.Errorf("no stiffness matrices found")
	}
	return
}
