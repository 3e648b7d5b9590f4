// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Mul ----------

func TestMul_2x2(t *testing.T) {
	t.Parallel()

	A := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	B := MustFrom(t, [][]float64{{2, 0}, {1, 2}})

	// A*B = [[1*2+2*1,1*0+2*2],[3*2+4*1,3*0+4*2]] = [[4,4],[10,8]]
	for name, a := range map[string]matrix.Matrix{"dense": A, "fallback": hide{A}} {
		a := a
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			P, err := matrix.Mul(a, B)
			require.NoError(t, err)
			CompareClose(t, [][]float64{{4, 4}, {10, 8}}, P, 0)
		})
	}
}

func TestMul_FastPathMatchesFallback(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 7} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			A := RandSymmetric(t, n, int64(n))
			B := RandSymmetric(t, n, int64(n)+100)

			fast, err := matrix.Mul(A, B)
			require.NoError(t, err)
			slow, err := matrix.Mul(hide{A}, hide{B})
			require.NoError(t, err)
			CompareClose(t, fast.(*matrix.Dense).ToRows(), slow, 1e-12)
		})
	}
}

func TestMul_DimensionMismatch(t *testing.T) {
	t.Parallel()

	A := MustDense(t, 2, 3)
	B := MustDense(t, 2, 3)
	_, err := matrix.Mul(A, B)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, B)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul_IdentityIsNeutral(t *testing.T) {
	t.Parallel()

	A := RandSymmetric(t, 5, 42)
	I, err := matrix.NewIdentity(5)
	require.NoError(t, err)

	P, err := matrix.Mul(A, I)
	require.NoError(t, err)
	CompareClose(t, A.ToRows(), P, 0)
}

// ---------- Transpose ----------

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareClose(t, want, mt, 0)

	mt, err = matrix.Transpose(hide{m})
	require.NoError(t, err)
	CompareClose(t, want, mt, 0)
}

// ---------- IdentityMinus ----------

func TestIdentityMinus(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{0.25, 0.5}, {0.5, 1}})
	want := [][]float64{{0.75, -0.5}, {-0.5, 0}}

	out, err := matrix.IdentityMinus(m)
	require.NoError(t, err)
	CompareClose(t, want, out, 0)

	out, err = matrix.IdentityMinus(hide{m})
	require.NoError(t, err)
	CompareClose(t, want, out, 0)

	_, err = matrix.IdentityMinus(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- Diagonal / RowSums ----------

func TestDiagonalAndRowSums(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	d, err := matrix.Diagonal(m)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 5, 9}, d)

	s, err := matrix.RowSums(m)
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15, 24}, s)

	s, err = matrix.RowSums(hide{m})
	require.NoError(t, err)
	require.Equal(t, []float64{6, 15, 24}, s)
}

// ---------- NormalizeRowsL2 ----------

func TestNormalizeRowsL2_ZeroRowUnchanged(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{3, 4}, {0, 0}, {-1, 0}})
	for name, in := range map[string]matrix.Matrix{"dense": m, "fallback": hide{m}} {
		in := in
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			y, norms, err := matrix.NormalizeRowsL2(in)
			require.NoError(t, err)
			require.Equal(t, []float64{5, 0, 1}, norms)
			CompareClose(t, [][]float64{{0.6, 0.8}, {0, 0}, {-1, 0}}, y, 1e-15)
		})
	}
}

func TestNormalizeRowsL2_UnitNorms(t *testing.T) {
	t.Parallel()

	m := RandSymmetric(t, 6, 7)
	y, _, err := matrix.NormalizeRowsL2(m)
	require.NoError(t, err)

	var i, j int
	var sq, v float64
	for i = 0; i < y.Rows(); i++ {
		sq = 0
		for j = 0; j < y.Cols(); j++ {
			v = MustAt(t, y, i, j)
			sq += v * v
		}
		require.InDelta(t, 1.0, math.Sqrt(sq), 1e-12, "row %d", i)
	}
}

func TestRowViews(t *testing.T) {
	t.Parallel()

	m := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	views, err := matrix.RowViews(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, views)

	views[1][0] = 9 // shared storage for *Dense
	require.Equal(t, 9.0, MustAt(t, m, 1, 0))

	copied, err := matrix.RowViews(hide{m})
	require.NoError(t, err)
	copied[0][0] = -1 // fallback path copies
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	_, err = matrix.RowViews(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
