// SPDX-License-Identifier: MIT
// Package matrix: constructors and row-wise helpers used outside the package.
//
// Row reductions always sum j = 0..c-1 so results depend only on the data,
// never on the operand's concrete type.

package matrix

// NewZeros is NewDense under the name call sites read best with.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns the n×n identity.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id, nil
}

// RowSums returns out[i] = Σ_j m[i,j]. O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([]float64, r)

	var i, j, base int
	var sum float64
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			sum = ZeroSum
			base = i * c
			for j = 0; j < c; j++ {
				sum += d.data[base+j]
			}
			out[i] = sum
		}

		return out, nil
	}

	var (
		v   float64
		err error
	)
	for i = 0; i < r; i++ {
		sum = ZeroSum
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowSums, err)
			}
			sum += v
		}
		out[i] = sum
	}

	return out, nil
}

// NormalizeRowsL2 divides every row by its Euclidean norm and returns the
// scaled copy together with the norms. All-zero rows come back unchanged.
func NormalizeRowsL2(X Matrix) (*Dense, []float64, error) { return normalizeRowsL2(X) }

// RowViews returns one []float64 per row of m.
// For *Dense the slices share storage with m (no copy); other implementations
// are copied through At. Callers must treat the result as read-only unless
// they own m.
// Complexity: O(r) for *Dense, O(r*c) otherwise.
func RowViews(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowViews, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)

	var i, j int
	if d, ok := m.(*Dense); ok {
		for i = 0; i < r; i++ {
			out[i] = d.data[i*c : (i+1)*c : (i+1)*c]
		}

		return out, nil
	}

	var err error
	for i = 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j = 0; j < c; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opRowViews, err)
			}
		}
	}

	return out, nil
}
