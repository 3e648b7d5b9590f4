// SPDX-License-Identifier: MIT
// Package matrix: private element-wise kernels (ew*). Each allocates one
// result and leaves its input untouched.

package matrix

const opDivRows = "divRows"

// ewDivRows returns out[i,j] = X[i,j] / div[i].
// Complexity: O(r*c).
func ewDivRows(X Matrix, div []float64) (*Dense, error) {
	rows, err := RowViews(X)
	if err != nil {
		return nil, matrixErrorf(opDivRows, err)
	}
	if len(div) != len(rows) {
		return nil, matrixErrorf(opDivRows, ErrDimensionMismatch)
	}
	out, err := NewDense(X.Rows(), X.Cols())
	if err != nil {
		return nil, matrixErrorf(opDivRows, err)
	}

	var dst []float64
	for i, row := range rows {
		dst = out.data[i*out.c : (i+1)*out.c]
		for j, v := range row {
			dst[j] = v / div[i]
		}
	}

	return out, nil
}
