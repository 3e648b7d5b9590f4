// SPDX-License-Identifier: MIT

// Package embed turns a Jacobi decomposition into the spectral embedding:
// eigenpairs are sorted ascending, the eigengap heuristic picks k when the
// caller does not, and the first k eigenvectors become the columns of U,
// whose rows are then L2-normalized.
package embed

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/matrix"
)

// ErrInvalidK reports a cluster count outside [0, n].
var ErrInvalidK = errors.New("embed: k out of range")

// Eigenpair ties an eigenvalue to its column in the eigenvector matrix.
type Eigenpair struct {
	Value  float64
	Column int
}

// Embedding is the output of Embed.
type Embedding struct {
	U          *matrix.Dense // n×K, rows normalized
	K          int           // columns used
	HeuristicK int           // eigengap choice, reported even when k was supplied
	Pairs      []Eigenpair   // sorted eigenpairs
}

// SortEigenpairs pairs values[c] with column c and sorts ascending by value,
// equal values by ascending column.
func SortEigenpairs(values []float64) []Eigenpair {
	pairs := make([]Eigenpair, len(values))
	for c, v := range values {
		pairs[c] = Eigenpair{Value: v, Column: c}
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		if pairs[a].Value != pairs[b].Value {
			return pairs[a].Value < pairs[b].Value
		}

		return pairs[a].Column < pairs[b].Column
	})

	return pairs
}

// Eigengap returns 1 + argmax_i |λ_i − λ_{i+1}| over i in [0, n/2) for sorted
// pairs; the first maximum wins. Fewer than two pairs yield 1.
func Eigengap(sorted []Eigenpair) int {
	limit := len(sorted) / 2
	best, k := -1.0, 0
	var gap float64
	for i := 0; i < limit; i++ {
		gap = math.Abs(sorted[i].Value - sorted[i+1].Value)
		if gap > best {
			best, k = gap, i
		}
	}

	return k + 1
}

// BuildU copies the columns named by the first k sorted pairs into an n×k
// matrix: U[i][j] = vectors[i][sorted[j].Column].
func BuildU(vectors matrix.Matrix, sorted []Eigenpair, k int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(vectors); err != nil {
		return nil, fmt.Errorf("embed.BuildU: %w", err)
	}
	n := vectors.Rows()
	if k < 1 || k > len(sorted) || k > vectors.Cols() {
		return nil, fmt.Errorf("embed.BuildU: k=%d with %d eigenpairs: %w", k, len(sorted), ErrInvalidK)
	}
	u, err := matrix.NewDense(n, k)
	if err != nil {
		return nil, fmt.Errorf("embed.BuildU: %w", err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < k; j++ {
			if v, err = vectors.At(i, sorted[j].Column); err != nil {
				return nil, fmt.Errorf("embed.BuildU: %w", err)
			}
			if err = u.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("embed.BuildU: %w", err)
			}
		}
	}

	return u, nil
}

// NormalizeRows divides every row of u by its L2 norm; zero rows stay zero.
func NormalizeRows(u matrix.Matrix) (*matrix.Dense, error) {
	out, _, err := matrix.NormalizeRowsL2(u)
	if err != nil {
		return nil, fmt.Errorf("embed.NormalizeRows: %w", err)
	}

	return out, nil
}

// Embed sorts the eigenpairs of d, resolves k (0 selects the eigengap
// heuristic) and returns the normalized n×k embedding.
func Embed(d *jacobi.Decomposition, k int) (*Embedding, error) {
	if d == nil || d.Vectors == nil {
		return nil, fmt.Errorf("embed.Embed: %w", matrix.ErrNilMatrix)
	}
	n := len(d.Values)
	if k < 0 || k > n {
		return nil, fmt.Errorf("embed.Embed: k=%d, n=%d: %w", k, n, ErrInvalidK)
	}

	pairs := SortEigenpairs(d.Values)
	heuristic := Eigengap(pairs)
	if k == 0 {
		k = heuristic
	}
	u, err := BuildU(d.Vectors, pairs, k)
	if err != nil {
		return nil, err
	}
	if u, err = NormalizeRows(u); err != nil {
		return nil, err
	}

	return &Embedding{U: u, K: k, HeuristicK: heuristic, Pairs: pairs}, nil
}
