// SPDX-License-Identifier: MIT
// Package matrix: per-row statistics for the embedding stage.

package matrix

import "math"

// normalizeRowsL2 backs NormalizeRowsL2.
//
// Implementation:
//   - Stage 1: norms[i] = sqrt(Σ_j X[i,j]²), summed left to right.
//   - Stage 2: divisor = norms[i], or 1 for an all-zero row.
//   - Stage 3: ewDivRows(X, divisors).
func normalizeRowsL2(X Matrix) (*Dense, []float64, error) {
	rows, err := RowViews(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRows, err)
	}

	norms := make([]float64, len(rows))
	div := make([]float64, len(rows))
	var sq float64
	for i, row := range rows {
		sq = ZeroSum
		for _, v := range row {
			sq += v * v
		}
		norms[i] = math.Sqrt(sq)
		div[i] = norms[i]
		if div[i] == 0 {
			div[i] = 1 // zero row passes through
		}
	}

	Y, err := ewDivRows(X, div)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRows, err)
	}

	return Y, norms, nil
}
