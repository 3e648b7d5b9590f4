// SPDX-License-Identifier: MIT

// Package matrix: the Matrix interface every numerical stage accepts.
package matrix

// Matrix is a mutable two-dimensional array of float64.
//
// Implementations return errors rather than panic on bad indices. All
// methods are O(1) except Clone, which is O(rows*cols).
type Matrix interface {
	// Rows is the number of rows.
	Rows() int

	// Cols is the number of columns.
	Cols() int

	// At reads (i, j); ErrOutOfRange outside the shape.
	At(i, j int) (float64, error)

	// Set writes v at (i, j); ErrOutOfRange outside the shape.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
