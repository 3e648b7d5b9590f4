package report_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/spkmeans/matrix"
	"github.com/katalvlaran/spkmeans/pointset"
	"github.com/katalvlaran/spkmeans/report"
	"github.com/katalvlaran/spkmeans/spkmeans"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func TestWriteText_Format(t *testing.T) {
	t.Parallel()

	res := &spkmeans.Result{
		Goal: spkmeans.GoalWAM,
		Matrix: mustFrom(t, [][]float64{
			{1, -0.00004, 0.123456},
			{-0.00005, math.Copysign(0, -1), 2.5},
		}),
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, res))
	assert.Equal(t, "1.0000,0.0000,0.1235\n-0.0001,0.0000,2.5000", buf.String())
}

func TestWriteText_JacobiPrintsValuesThenTransposedVectors(t *testing.T) {
	t.Parallel()

	res := &spkmeans.Result{
		Goal:   spkmeans.GoalJacobi,
		Values: []float64{1, 3},
		Matrix: mustFrom(t, [][]float64{
			{0.1, 0.2},
			{0.3, 0.4},
		}),
	}
	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, res))
	assert.Equal(t, "1.0000,3.0000\n0.1000,0.3000\n0.2000,0.4000", buf.String())
}

func TestWriteText_EndToEndJacobi(t *testing.T) {
	t.Parallel()

	set, err := pointset.New([][]float64{{2, 1}, {1, 2}})
	require.NoError(t, err)
	res, err := spkmeans.Run(set, spkmeans.DefaultParams(spkmeans.GoalJacobi, 0))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, report.FormatText))
	assert.Equal(t, "1.0000,3.0000\n0.7071,-0.7071\n0.7071,0.7071", buf.String())
}

func TestWriteText_NoMatrix(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.ErrorIs(t, report.WriteText(&buf, nil), report.ErrNoMatrix)
	require.ErrorIs(t, report.WriteText(&buf, &spkmeans.Result{Goal: spkmeans.GoalWAM}), report.ErrNoMatrix)
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	res := &spkmeans.Result{Goal: spkmeans.GoalWAM, Matrix: mustFrom(t, [][]float64{{1}})}
	require.ErrorIs(t, report.Write(&bytes.Buffer{}, res, "xml"), report.ErrUnknownFormat)
}

func TestWriteYAML_SPK(t *testing.T) {
	t.Parallel()

	set, err := pointset.New([][]float64{{0, 0}, {0, 1}, {10, 0}, {10, 1}})
	require.NoError(t, err)
	res, err := spkmeans.Run(set, spkmeans.DefaultParams(spkmeans.GoalSPK, 0), spkmeans.WithRunID("abc"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, res, report.FormatYAML))

	var doc report.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "abc", doc.RunID)
	assert.Equal(t, "spk", doc.Goal)
	assert.Equal(t, 2, doc.K)
	assert.Equal(t, 2, doc.EigengapK)
	require.NotNil(t, doc.Jacobi)
	require.NotNil(t, doc.KMeans)
	assert.True(t, doc.KMeans.Converged)
	assert.Equal(t, []int{2, 2}, doc.KMeans.Sizes)
	assert.Len(t, doc.KMeans.Assignment, 4)
	assert.Len(t, doc.Matrix, 2)
	for _, row := range doc.Matrix {
		for _, v := range row {
			assert.Equal(t, report.Round4(v), v)
		}
	}
}

func TestNewDocument_Jacobi(t *testing.T) {
	t.Parallel()

	doc, err := report.NewDocument(&spkmeans.Result{
		Goal:            spkmeans.GoalJacobi,
		Values:          []float64{0.99999, -0.00001},
		Matrix:          mustFrom(t, [][]float64{{1, 0}, {0, 1}}),
		Rotations:       0,
		JacobiConverged: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0}, doc.Eigenvalues)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, doc.Matrix)
	assert.Nil(t, doc.KMeans)
	require.NotNil(t, doc.Jacobi)
	assert.True(t, doc.Jacobi.Converged)
}

func TestRound4(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.1235, report.Round4(0.123456))
	assert.Equal(t, 0.0, report.Round4(-0.00004))
	assert.False(t, math.Signbit(report.Round4(-0.00004)))
	assert.Equal(t, -0.0001, report.Round4(-0.00006))
}
