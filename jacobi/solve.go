// SPDX-License-Identifier: MIT

package jacobi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spkmeans/matrix"
)

const opSolve = "jacobi.Solve"

// Decomposition is the result of Solve.
type Decomposition struct {
	Values    []float64     // diagonal of the final A, unsorted
	Vectors   *matrix.Dense // n×n, column c is the eigenvector of Values[c]
	Diagonal  *matrix.Dense // final rotated A
	Rotations int           // rotations applied
	Converged bool          // false only when the rotation cap stopped the loop
}

// Solve diagonalizes the symmetric matrix a.
//
// Implementation:
//   - Stage 1: validate a square and symmetric; copy it into a working Dense;
//     V = I.
//   - Stage 2: per rotation, pick the pivot (i,j), build P, update V ← V·P
//     through matrix.Mul, compute A' from the closed-form row/column updates,
//     then test off(A) − off(A') ≤ tolerance and adopt A'.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry from validation.
//
// Complexity: O(n²) per pivot search and A' update, O(n³) per V·P product.
func Solve(a matrix.Matrix, opts ...Option) (*Decomposition, error) {
	o := gatherOptions(opts)
	if err := matrix.ValidateSymmetric(a, o.symmetryTol); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	n := a.Rows()

	cur, err := workingCopy(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	next := cur.Clone().(*matrix.Dense)
	v, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	p, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	A, err := matrix.RowViews(cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	B, err := matrix.RowViews(next)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	var (
		rotations int
		converged = n < 2
		i, j      int
		c, s      float64
		prod      matrix.Matrix
	)
	for !converged && rotations < o.maxRotations {
		i, j = pivot(A)
		if A[i][j] == 0 {
			converged = true
			break
		}
		c, s = rotation(A, i, j)

		setRotation(p, i, j, c, s, false)
		if prod, err = matrix.Mul(v, p); err != nil {
			return nil, fmt.Errorf("%s: %w", opSolve, err)
		}
		v = prod.(*matrix.Dense)
		setRotation(p, i, j, c, s, true)

		rotate(A, B, i, j, c, s)
		rotations++

		converged = offDiagonal(A)-offDiagonal(B) <= o.tolerance
		for r := range A {
			copy(A[r], B[r])
		}
	}

	values, err := matrix.Diagonal(cur)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	return &Decomposition{
		Values:    values,
		Vectors:   v,
		Diagonal:  cur,
		Rotations: rotations,
		Converged: converged,
	}, nil
}

// workingCopy returns a Dense copy of a regardless of its implementation.
func workingCopy(a matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := a.(*matrix.Dense); ok {
		return d.Clone().(*matrix.Dense), nil
	}
	rows, err := matrix.RowViews(a)
	if err != nil {
		return nil, err
	}

	return matrix.NewDenseFrom(rows)
}

// pivot returns (i, j), i < j, of the largest |A[i][j]| scanning the upper
// triangle row by row; the first maximum wins. Requires n >= 2.
func pivot(A [][]float64) (int, int) {
	pi, pj := 0, 1
	best := math.Abs(A[0][1])
	var i, j int
	for i = 0; i < len(A); i++ {
		for j = i + 1; j < len(A); j++ {
			if v := math.Abs(A[i][j]); v > best {
				best, pi, pj = v, i, j
			}
		}
	}

	return pi, pj
}

// rotation returns (c, s) that zero A[i][j]. sign(0) is +1, -0 included.
func rotation(A [][]float64, i, j int) (c, s float64) {
	theta := (A[j][j] - A[i][i]) / (2 * A[i][j])
	sign := 1.0
	if theta < 0 {
		sign = -1.0
	}
	t := sign / (math.Abs(theta) + math.Sqrt(theta*theta+1))
	c = 1 / math.Sqrt(t*t+1)
	s = t * c

	return c, s
}

// setRotation writes the four non-identity entries of P, or restores them
// to identity when reset is true. P must be identity elsewhere.
func setRotation(p *matrix.Dense, i, j int, c, s float64, reset bool) {
	if reset {
		c, s = 1, 0
	}
	pi, _ := p.RawRow(i)
	pj, _ := p.RawRow(j)
	pi[i], pj[j] = c, c
	pi[j], pj[i] = s, -s
}

// rotate writes A' = PᵀAP into B. B must equal A on entry.
func rotate(A, B [][]float64, i, j int, c, s float64) {
	for r := range A {
		if r == i || r == j {
			continue
		}
		B[r][i] = c*A[r][i] - s*A[r][j]
		B[i][r] = B[r][i]
		B[r][j] = c*A[r][j] + s*A[r][i]
		B[j][r] = B[r][j]
	}
	B[i][i] = c*c*A[i][i] + s*s*A[j][j] - 2*s*c*A[i][j]
	B[j][j] = s*s*A[i][i] + c*c*A[j][j] + 2*s*c*A[i][j]
	B[i][j] = 0
	B[j][i] = 0
}

// offDiagonal is Σ_{r≠c} M[r][c]².
func offDiagonal(M [][]float64) float64 {
	var sum float64
	for r := range M {
		for c, v := range M[r] {
			if r != c {
				sum += v * v
			}
		}
	}

	return sum
}
