// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/hclust/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

// TestColumnStats checks means and population (ddof=0) standard deviations.
func TestColumnStats(t *testing.T) {
	X := mustDense(t, [][]float64{{1, 10}, {3, 10}, {5, 10}, {7, 10}})

	means, stds, err := matrix.ColumnStats(X)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{4, 10}, means, epsTight)
	// Population variance of {1,3,5,7} is (9+1+1+9)/4 = 5.
	require.InDeltaSlice(t, []float64{math.Sqrt(5), 0}, stds, epsTight)
}

// TestZScoreColumns verifies the standardized copy has mean 0 and std 1 per column.
func TestZScoreColumns(t *testing.T) {
	X := mustDense(t, [][]float64{{1, 2}, {2, 4}, {3, 9}})

	Z, means, stds, err := matrix.ZScoreColumns(X, matrix.ZeroVarianceError)
	require.NoError(t, err)
	require.Len(t, means, 2)
	require.Len(t, stds, 2)

	zm, zs, err := matrix.ColumnStats(Z)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{0, 0}, zm, 1e-9)
	require.InDeltaSlice(t, []float64{1, 1}, zs, 1e-9)

	v, err := X.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "input must not be mutated")
}

// TestZScoreColumns_ZeroVariance covers both policies on a constant column.
func TestZScoreColumns_ZeroVariance(t *testing.T) {
	X := mustDense(t, [][]float64{{1, 7}, {3, 7}})

	_, _, _, err := matrix.ZScoreColumns(X, matrix.ZeroVarianceError)
	require.ErrorIs(t, err, matrix.ErrZeroVariance)
	require.Contains(t, err.Error(), "column 1")

	Z, _, stds, err := matrix.ZScoreColumns(X, matrix.ZeroVarianceCenter)
	require.NoError(t, err)
	require.Equal(t, 0.0, stds[1])
	require.Equal(t, [][]float64{{-1, 0}, {1, 0}}, Z.ToRows())
}

// TestZScoreColumns_InexactConstant uses 0.1, which is not exact in binary,
// so the column mean rounds away from the stored value.
func TestZScoreColumns_InexactConstant(t *testing.T) {
	X := mustDense(t, [][]float64{{0.1, 1}, {0.1, 2}, {0.1, 3}})

	_, stds, err := matrix.ColumnStats(X)
	require.NoError(t, err)
	require.Equal(t, 0.0, stds[0], "constant column must report exactly zero spread")
	require.Greater(t, stds[1], 0.0)

	_, _, _, err = matrix.ZScoreColumns(X, matrix.ZeroVarianceError)
	require.ErrorIs(t, err, matrix.ErrZeroVariance)
	require.Contains(t, err.Error(), "column 0")

	Z, _, _, err := matrix.ZScoreColumns(X, matrix.ZeroVarianceCenter)
	require.NoError(t, err)
	for i, row := range Z.ToRows() {
		require.Equal(t, 0.0, row[0], "row %d", i)
	}
}

func TestColumnStats_Nil(t *testing.T) {
	_, _, err := matrix.ColumnStats(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestZeroVariancePolicyString(t *testing.T) {
	require.Equal(t, "error", matrix.ZeroVarianceError.String())
	require.Equal(t, "center", matrix.ZeroVarianceCenter.String())
	require.Equal(t, "unknown", matrix.ZeroVariancePolicy(9).String())
}

func TestParseZeroVariancePolicy(t *testing.T) {
	p, err := matrix.ParseZeroVariancePolicy(" Center ")
	require.NoError(t, err)
	require.Equal(t, matrix.ZeroVarianceCenter, p)

	p, err = matrix.ParseZeroVariancePolicy("")
	require.NoError(t, err)
	require.Equal(t, matrix.ZeroVarianceError, p)

	_, err = matrix.ParseZeroVariancePolicy("drop")
	require.ErrorIs(t, err, matrix.ErrUnknownPolicy)

	var q matrix.ZeroVariancePolicy
	require.NoError(t, q.UnmarshalText([]byte("center")))
	text, err := q.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "center", string(text))

	_, err = matrix.ZeroVariancePolicy(9).MarshalText()
	require.ErrorIs(t, err, matrix.ErrUnknownPolicy)
}
