// SPDX-License-Identifier: MIT

package simgraph

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/spkmeans/internal/parallel"
	"github.com/katalvlaran/spkmeans/matrix"
)

// ErrZeroDegree reports a vertex whose weights sum to zero, so D^{-1/2} is undefined.
var ErrZeroDegree = errors.New("simgraph: zero degree")

// DegreeMode selects what Degree stores on the diagonal.
type DegreeMode int

const (
	// DegreeRaw stores Σ_j w[i][j].
	DegreeRaw DegreeMode = iota
	// DegreeInvSqrt stores 1/sqrt(Σ_j w[i][j]).
	DegreeInvSqrt
)

const (
	opWAM       = "WeightedAdjacency"
	opDegree    = "Degree"
	opLaplacian = "Laplacian"
)

func graphErrorf(op string, err error) error {
	return fmt.Errorf("simgraph.%s: %w", op, err)
}

// Graph bundles the three matrices of one construction.
type Graph struct {
	W        *matrix.Dense // weighted adjacency
	DInvSqrt *matrix.Dense // D^{-1/2}
	L        *matrix.Dense // normalized Laplacian
}

// WeightedAdjacency builds the n×n weighted adjacency matrix of the rows of points.
//
// Implementation:
//   - Row i computes the upper triangle j > i and mirrors it into (j, i).
//     Cell (j, i) with j > i is written only by row i, so parallel rows
//     never touch the same cell.
//
// Complexity: O(n²·dim) time, O(n²) space.
func WeightedAdjacency(points matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	rows, err := matrix.RowViews(points)
	if err != nil {
		return nil, graphErrorf(opWAM, err)
	}
	n := len(rows)
	w, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, graphErrorf(opWAM, err)
	}
	o := gatherOptions(opts)

	err = parallel.ForEach(n, o.workers, func(i int) error {
		var v float64
		for j := i + 1; j < n; j++ {
			v = math.Exp(-euclidean(rows[i], rows[j]) / 2)
			if err := w.Set(i, j, v); err != nil {
				return err
			}
			if err := w.Set(j, i, v); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, graphErrorf(opWAM, err)
	}

	return w, nil
}

// Degree returns the diagonal degree matrix of w in the requested mode.
//
// Errors:
//   - ErrDimensionMismatch for a non-square w.
//   - ErrZeroDegree when mode is DegreeInvSqrt and some row sums to zero.
func Degree(w matrix.Matrix, mode DegreeMode) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, graphErrorf(opDegree, err)
	}
	sums, err := matrix.RowSums(w)
	if err != nil {
		return nil, graphErrorf(opDegree, err)
	}
	n := len(sums)
	d, err := matrix.NewZeros(n, n)
	if err != nil {
		return nil, graphErrorf(opDegree, err)
	}

	var v float64
	for i, sum := range sums {
		v = sum
		if mode == DegreeInvSqrt {
			if sum == 0 {
				return nil, graphErrorf(opDegree, fmt.Errorf("row %d: %w", i, ErrZeroDegree))
			}
			v = 1 / math.Sqrt(sum)
		}
		if err = d.Set(i, i, v); err != nil {
			return nil, graphErrorf(opDegree, err)
		}
	}

	return d, nil
}

// Laplacian returns I − D·W·D where dInvSqrt is D^{-1/2} from Degree.
func Laplacian(w, dInvSqrt matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(w); err != nil {
		return nil, graphErrorf(opLaplacian, err)
	}
	if err := matrix.ValidateSameShape(w, dInvSqrt); err != nil {
		return nil, graphErrorf(opLaplacian, err)
	}
	left, err := matrix.Mul(dInvSqrt, w)
	if err != nil {
		return nil, graphErrorf(opLaplacian, err)
	}
	sym, err := matrix.Mul(left, dInvSqrt)
	if err != nil {
		return nil, graphErrorf(opLaplacian, err)
	}
	l, err := matrix.IdentityMinus(sym)
	if err != nil {
		return nil, graphErrorf(opLaplacian, err)
	}

	return l, nil
}

// NormalizedLaplacian composes WeightedAdjacency, Degree(DegreeInvSqrt) and Laplacian.
func NormalizedLaplacian(points matrix.Matrix, opts ...Option) (*Graph, error) {
	w, err := WeightedAdjacency(points, opts...)
	if err != nil {
		return nil, err
	}
	d, err := Degree(w, DegreeInvSqrt)
	if err != nil {
		return nil, err
	}
	l, err := Laplacian(w, d)
	if err != nil {
		return nil, err
	}

	return &Graph{W: w, DInvSqrt: d, L: l}, nil
}

// euclidean is ‖a − b‖₂; a and b share their length.
func euclidean(a, b []float64) float64 {
	var sum, diff float64
	for k := range a {
		diff = a[k] - b[k]
		sum += diff * diff
	}

	return math.Sqrt(sum)
}
