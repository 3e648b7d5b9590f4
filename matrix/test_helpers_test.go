// SPDX-License-Identifier: MIT
// Fixtures shared by the matrix tests. Every generator is seeded.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/stretchr/testify/require"
)

// hide masks the concrete type so kernels take their At/Set path.
type hide struct{ matrix.Matrix }

// MustDense allocates r×c zeros.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustFrom wraps NewDenseFrom.
func MustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RandSymmetric fills the upper triangle from U(-1,1) and mirrors it.
func RandSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = rng.Float64()*2 - 1
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}

// CompareClose checks shape, then every cell within delta.
func CompareClose(t *testing.T, want [][]float64, m matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	var i, j int
	for i = 0; i < len(want); i++ {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j = 0; j < len(want[i]); j++ {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), delta, "at [%d,%d]", i, j)
		}
	}
}
