// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"

	"github.com/katalvlaran/hclust/matrix"
)

// Normalize z-scores every dimension: (x - mean) / std with the population
// standard deviation (ddof = 0). The input is not modified.
//
// A constant dimension is handled by policy: matrix.ZeroVarianceError fails
// with matrix.ErrZeroVariance naming the column, matrix.ZeroVarianceCenter
// maps it to all zeros.
//
// Zero vectors return an empty result. Ragged input fails with
// matrix.ErrDimensionMismatch.
func Normalize(vectors [][]float64, policy matrix.ZeroVariancePolicy) ([][]float64, error) {
	if len(vectors) == 0 {
		return [][]float64{}, nil
	}
	X, err := matrix.NewDenseFromRows(vectors)
	if err != nil {
		return nil, fmt.Errorf("dataset: normalize: %w", err)
	}
	Z, _, _, err := matrix.ZScoreColumns(X, policy)
	if err != nil {
		return nil, fmt.Errorf("dataset: normalize: %w", err)
	}

	return Z.ToRows(), nil
}
