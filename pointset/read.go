// SPDX-License-Identifier: MIT

package pointset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultDelimiter separates coordinates within a line.
const DefaultDelimiter = ','

// Read parses delimited points from r.
//
// Implementation:
//   - Stage 1: csv.Reader with FieldsPerRecord=0 locks the dimension to the
//     first record; csv.ErrFieldCount is reported as ErrRaggedRow.
//   - Stage 2: each field is trimmed and parsed with strconv.ParseFloat; a
//     failure or a non-finite value is ErrBadNumber with its line number.
func Read(r io.Reader, delim rune) (*Set, error) {
	if delim == 0 {
		delim = DefaultDelimiter
	}
	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = 0
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	var (
		points [][]float64
		rec    []string
		err    error
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, fmt.Errorf("%w: %v", ErrRaggedRow, err)
			}

			return nil, fmt.Errorf("pointset.Read: %w", err)
		}
		line, _ := cr.FieldPos(0)
		p := make([]float64, len(rec))
		for j, field := range rec {
			v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if perr != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: line %d field %d %q", ErrBadNumber, line, j+1, field)
			}
			p[j] = v
		}
		points = append(points, p)
	}
	if len(points) == 0 {
		return nil, ErrEmpty
	}

	return New(points)
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, delim rune) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pointset.ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f, delim)
}
