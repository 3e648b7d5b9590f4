// SPDX-License-Identifier: MIT

// Package matrix: Dense, the row-major matrix every pipeline stage exchanges.
//
// Layout:
//   - One flat []float64 of length rows*cols, offset(i, j) = i*cols + j.
//   - Shapes are fixed at construction; rows, cols > 0.
//
// Guarantees:
//   - At/Set/RawRow return errors on bad indices instead of panicking.
//   - Set and NewDenseFrom reject NaN/±Inf (DefaultValidateNaNInf).
//   - Kernels in impl_linear_algebra.go read the flat buffer directly when
//     both operands are *Dense.
//
// Complexity: NewDense O(r*c); At/Set/RawRow O(1); Clone/ToRows O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// method tags for denseErrorf
const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxRawRow = "RawRow"
	ctxFrom   = "NewDenseFrom"
)

// denseErrorf formats "Dense.<method>(row,col): <err>" keeping err matchable.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major r×c matrix backed by a single slice.
type Dense struct {
	r, c           int
	data           []float64 // len == r*c
	validateNaNInf bool      // reject non-finite writes through Set
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense allocates a zero rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom copies a rectangular slice of rows into a fresh Dense.
//
// Implementation:
//   - Stage 1: the first row fixes the width; an empty literal is rejected.
//   - Stage 2: every row is length-checked and copied, every value checked
//     against the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (empty), ErrRaggedRows (uneven), ErrNaNInf.
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFrom, ErrInvalidDimensions)
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}

	var (
		i, j int
		dst  []float64
	)
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFrom, i, len(rows[i]), m.c, ErrRaggedRows)
		}
		dst = m.data[i*m.c : (i+1)*m.c]
		for j = range dst {
			if m.validateNaNInf && !isFinite(rows[i][j]) {
				return nil, fmt.Errorf("%s: %w", ctxFrom, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			dst[j] = rows[i][j]
		}
	}

	return m, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (Rows, Cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// offset maps (row, col) into data or reports ErrOutOfRange.
func (m *Dense) offset(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns m[row, col].
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.offset(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set writes v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bad indices; ErrNaNInf for a non-finite v.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.offset(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns an independent copy with the same numeric policy.
func (m *Dense) Clone() Matrix {
	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           append([]float64(nil), m.data...),
		validateNaNInf: m.validateNaNInf,
	}
}

// RawRow returns row i as a slice of the backing buffer (len == Cols()).
// Writes through it skip the numeric policy.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense) RawRow(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRawRow, i, 0, ErrOutOfRange)
	}
	lo, hi := i*m.c, (i+1)*m.c

	return m.data[lo:hi:hi], nil
}

// ToRows copies the matrix into a new [][]float64.
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.c:(i+1)*m.c]...)
	}

	return out
}

// String renders one "[a, b, ...]" line per row using %g.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
