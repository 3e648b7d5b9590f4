// SPDX-License-Identifier: MIT
// Package matrix: products and structural transforms used by the graph
// builder and the eigensolver.
//
// Every kernel validates through validators.go, wraps failures with its
// operation tag and allocates a fresh result. *Dense operands take a flat
// buffer fast path; other Matrix implementations go through At/Set in the
// same loop order, so both paths produce identical sums.

package matrix

import "fmt"

// ZeroSum seeds every accumulation.
const ZeroSum = 0.0

// operation tags for matrixErrorf
const (
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opIdentityMinus = "IdentityMinus"
	opDiagonal      = "Diagonal"
	opRowSums       = "RowSums"
	opNormalizeRows = "NormalizeRowsL2"
	opIdentity      = "NewIdentity"
	opRowViews      = "RowViews"
)

// matrixErrorf returns "<tag>: <err>" with err kept for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns C = A·B as a new Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible, allocate C (a.Rows × b.Cols).
//   - Stage 2: *Dense × *Dense runs i→k→j over the flat buffers and skips
//     zero a[i,k]. Degree matrices and Givens rotations are mostly zeros, so
//     D·W and V·P touch only the non-zero rows of B.
//   - Stage 3: otherwise i→j→k through At, with the same zero skip.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(r·n·c) worst case.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rows, inner, cols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		av, bv  float64
	)
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		var out, brow []float64
		for i = 0; i < rows; i++ {
			out = res.data[i*cols : (i+1)*cols]
			for k = 0; k < inner; k++ {
				if av = da.data[i*inner+k]; av == 0 {
					continue
				}
				brow = db.data[k*cols : (k+1)*cols]
				for j = range out {
					out[j] += av * brow[j]
				}
			}
		}

		return res, nil
	}

	var sum float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = ZeroSum
			for k = 0; k < inner; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				sum += av * bv
			}
			res.data[i*cols+j] = sum
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense.
// Complexity: O(r·c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[i*cols+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// IdentityMinus returns I − m for a square m:
//
//	out[i,i] = 1 − m[i,i],  out[i,j] = −m[i,j] (i≠j).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (non-square).
//
// Complexity: O(n²).
func IdentityMinus(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentityMinus, err)
	}
	n := m.Rows()
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentityMinus, err)
	}

	var (
		i, j int
		v    float64
	)
	dm, isDense := m.(*Dense)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if isDense {
				v = dm.data[i*n+j]
			} else if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opIdentityMinus, err)
			}
			if i == j {
				v = 1 - v
			} else {
				v = ZeroSum - v // +0 for zero entries, never -0
			}
			res.data[i*n+j] = v
		}
	}

	return res, nil
}

// Diagonal copies the main diagonal of a square matrix.
// Complexity: O(n).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiagonal, err)
		}
	}

	return out, nil
}
