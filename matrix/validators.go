// SPDX-License-Identifier: MIT
// Package matrix: shape and structure guards shared by every kernel.
//
// Order of checks inside a composite guard is fixed: nil, then shape, then
// content. Guards never allocate.

package matrix

import (
	"fmt"
	"math"
)

const (
	tagNotNil    = "ValidateNotNil"
	tagSameShape = "ValidateSameShape"
	tagSquare    = "ValidateSquare"
	tagMul       = "ValidateMulCompatible"
	tagSymmetric = "ValidateSymmetric"
)

// validatorErrorf tags err with the guard that raised it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil rejects a nil Matrix, including a typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf(tagNotNil, ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf(tagNotNil, ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape requires equal row and column counts.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tagSameShape, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tagSameShape, err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(tagSameShape, fmt.Errorf("%dx%d vs %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSquare requires Rows() == Cols().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tagSquare, err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(tagSquare, fmt.Errorf("%dx%d: %w", m.Rows(), m.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateMulCompatible requires a.Cols() == b.Rows().
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf(tagMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf(tagMul, err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(tagMul, fmt.Errorf("%dx%d · %dx%d: %w",
			a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch))
	}

	return nil
}

// ValidateSymmetric requires a square m with |m[i,j] − m[j,i]| ≤ tol on
// every upper-triangular pair. A negative tol counts by magnitude.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tol),
// ErrAsymmetry.
//
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf(tagSymmetric, err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf(tagSymmetric, ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf(tagSymmetric, err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf(tagSymmetric, err)
			}
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(tagSymmetric, fmt.Errorf("(%d,%d)=%g vs (%d,%d)=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
			}
		}
	}

	return nil
}
