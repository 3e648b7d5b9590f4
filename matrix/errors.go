// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors.
//
// Kernels return these, usually wrapped with an operation tag via %w, and
// never panic on caller-supplied data. Match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions: rows or cols not positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange: row or column index outside the shape.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch: operand shapes incompatible, or a square input required.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry: m[i,j] and m[j,i] differ beyond the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf: a NaN or ±Inf where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: nil Matrix argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrRaggedRows: a [][]float64 literal with uneven rows.
	ErrRaggedRows = errors.New("matrix: ragged rows")
)
