// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the column statistics used for feature standardization
//     (per-column mean, population standard deviation, z-score transform).
//
// Exposed API:
//   - ColumnMeans(X)                -> means              // Σ_i X[i,j] / r
//   - ColumnStats(X)                -> (means, stds)      // population std (ddof = 0)
//   - ZScoreColumns(X, policy)      -> (Z, means, stds)   // (x - mean) / std per column
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths operate on the row-major flat buffer.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opColumnMeans   = "ColumnMeans"
	opColumnStats   = "ColumnStats"
	opZScoreColumns = "ZScoreColumns"
)

// ColumnMeans returns the per-column arithmetic mean of X.
// Errors:
//   - ErrNilMatrix from validation.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	r, c := X.Rows(), X.Cols()
	means := make([]float64, c)

	var i, j int
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				means[j] += d.data[base+j]
			}
		}
	} else {
		var v float64
		var err error
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if v, err = X.At(i, j); err != nil {
					return nil, matrixErrorf(opColumnMeans, err)
				}
				means[j] += v
			}
		}
	}

	for j = 0; j < c; j++ {
		means[j] /= float64(r)
	}

	return means, nil
}

// ColumnStats returns per-column means and population standard deviations.
// Implementation:
//   - Stage 1: means via ColumnMeans.
//   - Stage 2: second pass accumulating Σ (x - mean)² and the min/max per column.
//   - Stage 3: std[j] = sqrt(sumsq[j] / r), or exactly 0 when min == max.
//
// Behavior highlights:
//   - A constant column reports std 0 even when its value is not exact in
//     binary (e.g. 0.1), where the rounded mean would leave a residue.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(c).
func ColumnStats(X Matrix) (means, stds []float64, err error) {
	if means, err = ColumnMeans(X); err != nil {
		return nil, nil, matrixErrorf(opColumnStats, err)
	}
	r, c := X.Rows(), X.Cols()
	stds = make([]float64, c)
	lo := make([]float64, c)
	hi := make([]float64, c)
	for j := 0; j < c; j++ {
		lo[j], hi[j] = math.Inf(1), math.Inf(-1)
	}

	var i, j int
	var x, v float64
	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			base := i * c
			for j = 0; j < c; j++ {
				x = d.data[base+j]
				lo[j], hi[j] = math.Min(lo[j], x), math.Max(hi[j], x)
				v = x - means[j]
				stds[j] += v * v
			}
		}
	} else {
		for i = 0; i < r; i++ {
			for j = 0; j < c; j++ {
				if x, err = X.At(i, j); err != nil {
					return nil, nil, matrixErrorf(opColumnStats, err)
				}
				lo[j], hi[j] = math.Min(lo[j], x), math.Max(hi[j], x)
				v = x - means[j]
				stds[j] += v * v
			}
		}
	}

	for j = 0; j < c; j++ {
		if lo[j] == hi[j] {
			stds[j] = 0
			continue
		}
		stds[j] = math.Sqrt(stds[j] / float64(r))
	}

	return means, stds, nil
}

// ZScoreColumns standardizes every column: Z[i,j] = (X[i,j] - mean[j]) / std[j].
// Implementation:
//   - Stage 1: ColumnStats.
//   - Stage 2: resolve zero-variance columns through policy.
//   - Stage 3: write the standardized copy (X is not mutated).
//
// Behavior highlights:
//   - ZeroVarianceError: first constant column fails with ErrZeroVariance
//     naming the column index.
//   - ZeroVarianceCenter: constant columns are centered only (all zeros).
//
// Errors:
//   - ErrNilMatrix, ErrZeroVariance.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ZScoreColumns(X Matrix, policy ZeroVariancePolicy) (*Dense, []float64, []float64, error) {
	means, stds, err := ColumnStats(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opZScoreColumns, err)
	}
	r, c := X.Rows(), X.Cols()

	var i, j int
	for j = 0; j < c; j++ {
		if stds[j] == 0 && policy != ZeroVarianceCenter {
			return nil, nil, nil, matrixErrorf(fmt.Sprintf("%s: column %d", opZScoreColumns, j), ErrZeroVariance)
		}
	}

	Z, err := NewDense(r, c)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opZScoreColumns, err)
	}
	var v float64
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, nil, matrixErrorf(opZScoreColumns, err)
			}
			if stds[j] == 0 {
				continue // centered constant column is identically zero
			}
			Z.data[base+j] = (v - means[j]) / stds[j]
		}
	}

	return Z, means, stds, nil
}

// matrixErrorf tags err with the operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
