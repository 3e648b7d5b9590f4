// SPDX-License-Identifier: MIT

// Package matrix: numeric policy constants.
package matrix

const (
	// DefaultEpsilon is the symmetry tolerance callers fall back to when
	// they have no estimate of their own rounding error.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf makes Set and NewDenseFrom reject NaN and ±Inf.
	DefaultValidateNaNInf = true
)
