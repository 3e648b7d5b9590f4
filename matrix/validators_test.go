package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustFrom(t, [][]float64{{1, 2}, {2, 1}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym := MustFrom(t, [][]float64{{1, 2}, {2.1, 1}})
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 1e-3), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.5))

	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSymmetric(sym, math.NaN()), matrix.ErrNaNInf)
}

func TestValidateNotNil_TypedNil(t *testing.T) {
	t.Parallel()

	var d *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(d), matrix.ErrNilMatrix)
}
