// SPDX-License-Identifier: MIT

// Package distance builds Euclidean distance matrices over feature vectors.
//
// 🚀 What is it for?
//
//	Agglomerative clustering reads every pairwise item distance many times,
//	so the n×n matrix is computed once up front and then treated as
//	read-only input by the merge engine (package hac).
//
// ✨ Key features:
//   - Euclidean and squared Euclidean kernels with explicit length checks
//   - Pairwise: symmetric, zero-diagonal *matrix.Dense; the upper triangle is
//     computed once and mirrored, so D[i][j] == D[j][i] bit for bit
//   - Deterministic: repeated calls on the same input are bit-identical
//
// ⚙️ Usage:
//
//	D, err := distance.Pairwise([][]float64{{0, 0}, {3, 4}})
//	// D.At(0, 1) == 5
//
// Performance:
//
//   - Time:   O(n²·d)
//   - Memory: O(n²)
package distance
