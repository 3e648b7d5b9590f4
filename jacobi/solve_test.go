package jacobi_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/spkmeans/jacobi"
	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hide masks the concrete *Dense so Solve takes its generic copy path.
type hide struct{ matrix.Matrix }

func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func randSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v := rng.Float64()*2 - 1
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}

// gonumValues returns the ascending eigenvalues of m from mat.EigenSym.
func gonumValues(t *testing.T, m *matrix.Dense) []float64 {
	t.Helper()
	n := m.Rows()
	sym := mat.NewSymDense(n, nil)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			sym.SetSym(i, j, v)
		}
	}
	var es mat.EigenSym
	require.True(t, es.Factorize(sym, false))

	return es.Values(nil)
}

func sorted(vals []float64) []float64 {
	out := append([]float64(nil), vals...)
	sort.Float64s(out)

	return out
}

// requireCloseTo asserts every entry of got is within delta of want.
func requireCloseTo(t *testing.T, want [][]float64, got matrix.Matrix, delta float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	var i, j int
	for i = range want {
		for j = range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, delta, "(%d,%d)", i, j)
		}
	}
}

func identity(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}

	return out
}

func TestSolve_TwoByTwo(t *testing.T) {
	t.Parallel()

	d, err := jacobi.Solve(mustFrom(t, [][]float64{{2, 1}, {1, 2}}))
	require.NoError(t, err)
	assert.Equal(t, 1, d.Rotations)
	assert.True(t, d.Converged)
	assert.InDelta(t, 1.0, d.Values[0], 1e-12)
	assert.InDelta(t, 3.0, d.Values[1], 1e-12)
	requireCloseTo(t, [][]float64{
		{0.7071067811865475, 0.7071067811865475},
		{-0.7071067811865475, 0.7071067811865475},
	}, d.Vectors, 1e-12)
}

func TestSolve_ThreeByThree(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}})
	d, err := jacobi.Solve(a)
	require.NoError(t, err)
	assert.True(t, d.Converged)
	assert.Equal(t, 9, d.Rotations)
	assert.InDelta(t, 4.732050807568875, d.Values[0], 1e-9)
	assert.InDelta(t, 3.0, d.Values[1], 1e-9)
	assert.InDelta(t, 1.2679491924311228, d.Values[2], 1e-9)

	// input untouched
	requireCloseTo(t, [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 1, 2}}, a, 0)
}

func TestSolve_DiagonalInputIsIdentity(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		in   [][]float64
	}{
		{"one-by-one", [][]float64{{7}}},
		{"diagonal", [][]float64{{3, 0, 0}, {0, -1, 0}, {0, 0, 2}}},
		{"zero", [][]float64{{0, 0}, {0, 0}}},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := jacobi.Solve(mustFrom(t, tc.in))
			require.NoError(t, err)
			assert.Zero(t, d.Rotations)
			assert.True(t, d.Converged)
			requireCloseTo(t, identity(len(tc.in)), d.Vectors, 0)
			for i := range tc.in {
				assert.Equal(t, tc.in[i][i], d.Values[i])
			}
		})
	}
}

func TestSolve_AgreesWithGonum(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 6, 9} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := randSymmetric(t, n, int64(100+n))
			d, err := jacobi.Solve(a, jacobi.WithMaxRotations(10000))
			require.NoError(t, err)
			require.True(t, d.Converged)

			want := gonumValues(t, a)
			got := sorted(d.Values)
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-6, "n=%d λ%d", n, i)
			}
		})
	}
}

func TestSolve_OrthogonalAndDiagonalizing(t *testing.T) {
	t.Parallel()

	a := randSymmetric(t, 7, 42)
	d, err := jacobi.Solve(a, jacobi.WithMaxRotations(10000))
	require.NoError(t, err)

	vt, err := matrix.Transpose(d.Vectors)
	require.NoError(t, err)
	vtv, err := matrix.Mul(vt, d.Vectors)
	require.NoError(t, err)
	requireCloseTo(t, identity(7), vtv, 1e-9)

	av, err := matrix.Mul(a, d.Vectors)
	require.NoError(t, err)
	vtav, err := matrix.Mul(vt, av)
	require.NoError(t, err)
	want := identity(7)
	for i := range want {
		want[i][i] = d.Values[i]
	}
	requireCloseTo(t, want, vtav, 1e-6)
}

func TestSolve_RotationCap(t *testing.T) {
	t.Parallel()

	a := randSymmetric(t, 8, 7)
	d, err := jacobi.Solve(a, jacobi.WithMaxRotations(3))
	require.NoError(t, err)
	assert.Equal(t, 3, d.Rotations)
	assert.False(t, d.Converged)
}

func TestSolve_GenericMatrix(t *testing.T) {
	t.Parallel()

	a := mustFrom(t, [][]float64{{2, 1}, {1, 2}})
	direct, err := jacobi.Solve(a)
	require.NoError(t, err)
	masked, err := jacobi.Solve(hide{a})
	require.NoError(t, err)
	assert.Equal(t, direct.Values, masked.Values)
	assert.Equal(t, direct.Vectors.ToRows(), masked.Vectors.ToRows())
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	_, err := jacobi.Solve(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = jacobi.Solve(mustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = jacobi.Solve(mustFrom(t, [][]float64{{1, 2}, {3, 4}}))
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}

func TestOptions_Panic(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { jacobi.WithMaxRotations(0) })
	assert.Panics(t, func() { jacobi.WithTolerance(-1) })
	assert.Panics(t, func() { jacobi.WithSymmetryTolerance(-1) })
}
