// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hclust/matrix"
)

var (
	// ErrDimensionMismatch indicates two feature vectors of different length.
	// It aliases matrix.ErrDimensionMismatch so either sentinel matches.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrEmptyInput indicates that Pairwise received no vectors.
	ErrEmptyInput = errors.New("distance: no input vectors")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("distance: non-finite coordinate")
)

// SquaredEuclidean returns Σ_k (a[k]-b[k])².
// Returns ErrDimensionMismatch if len(a) != len(b).
// Complexity: O(d).
func SquaredEuclidean(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("distance: len %d vs %d: %w", len(a), len(b), ErrDimensionMismatch)
	}

	return squaredL2(a, b), nil
}

// Euclidean returns sqrt(Σ_k (a[k]-b[k])²).
// Returns ErrDimensionMismatch if len(a) != len(b).
// Complexity: O(d).
func Euclidean(a, b []float64) (float64, error) {
	sq, err := SquaredEuclidean(a, b)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(sq), nil
}

// squaredL2 assumes equal lengths.
func squaredL2(a, b []float64) float64 {
	var sum, diff float64
	for k := range a {
		diff = a[k] - b[k]
		sum += diff * diff
	}

	return sum
}

// Pairwise computes the n×n Euclidean distance matrix of vectors.
//
// Steps:
//  1. Reject empty input (ErrEmptyInput).
//  2. Every vector must have len(vectors[0]) entries (ErrDimensionMismatch,
//     wrapped with the vector index) and only finite coordinates (ErrNonFinite).
//  3. For i < j compute D[i][j] once and mirror it into D[j][i]; the diagonal
//     stays 0 from allocation.
//
// Complexity: O(n²·d) time, O(n²) memory.
func Pairwise(vectors [][]float64) (*matrix.Dense, error) {
	n := len(vectors)
	if n == 0 {
		return nil, ErrEmptyInput
	}
	if err := validateVectors(vectors); err != nil {
		return nil, err
	}

	D, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("distance: %w", err)
	}

	var i, j int
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Sqrt(squaredL2(vectors[i], vectors[j]))
			// Finite inputs can still overflow to +Inf for huge magnitudes.
			if err = D.Set(i, j, d); err != nil {
				return nil, fmt.Errorf("distance: pair (%d,%d): %w", i, j, ErrNonFinite)
			}
			if err = D.Set(j, i, d); err != nil {
				return nil, fmt.Errorf("distance: pair (%d,%d): %w", j, i, err)
			}
		}
	}

	return D, nil
}

// validateVectors checks lengths against vectors[0] and finiteness.
func validateVectors(vectors [][]float64) error {
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return fmt.Errorf("distance: vector %d has length %d, want %d: %w", i, len(v), dim, ErrDimensionMismatch)
		}
		for k, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return fmt.Errorf("distance: vector %d coordinate %d: %w", i, k, ErrNonFinite)
			}
		}
	}

	return nil
}
