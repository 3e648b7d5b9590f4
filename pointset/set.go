// SPDX-License-Identifier: MIT

package pointset

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spkmeans/matrix"
)

// Sentinel errors for ingestion and construction.
var (
	ErrEmpty     = errors.New("pointset: no points")
	ErrRaggedRow = errors.New("pointset: row dimension differs from first row")
	ErrBadNumber = errors.New("pointset: field is not a finite number")
)

// Set is an immutable n×dim collection of points backed by a row-major Dense.
type Set struct {
	m *matrix.Dense
}

// New copies points into a Set. All points must share the first point's
// dimension and hold finite values.
func New(points [][]float64) (*Set, error) {
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, ErrEmpty
	}
	m, err := matrix.NewDenseFrom(points)
	switch {
	case errors.Is(err, matrix.ErrRaggedRows):
		return nil, fmt.Errorf("%w: %v", ErrRaggedRow, err)
	case errors.Is(err, matrix.ErrNaNInf):
		return nil, fmt.Errorf("%w: %v", ErrBadNumber, err)
	case err != nil:
		return nil, err
	}

	return &Set{m: m}, nil
}

// Len is the number of points n.
func (s *Set) Len() int { return s.m.Rows() }

// Dim is the shared point dimension.
func (s *Set) Dim() int { return s.m.Cols() }

// Point returns a copy of point i.
func (s *Set) Point(i int) ([]float64, error) {
	row, err := s.m.RawRow(i)
	if err != nil {
		return nil, fmt.Errorf("pointset.Point: %w", err)
	}
	out := make([]float64, len(row))
	copy(out, row)

	return out, nil
}

// Matrix returns the points as a fresh n×dim Dense the caller may mutate.
func (s *Set) Matrix() *matrix.Dense {
	return s.m.Clone().(*matrix.Dense)
}

// IsSquare reports whether the set can be read as an n×n matrix.
func (s *Set) IsSquare() bool { return s.Len() == s.Dim() }
