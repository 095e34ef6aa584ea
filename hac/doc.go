// SPDX-License-Identifier: MIT

// Package hac performs agglomerative hierarchical clustering (HAC) and returns
// the merge history needed to draw a dendrogram.
//
// 🚀 What is HAC?
//
//	Every item starts in its own cluster. At each step the two closest
//	clusters are merged, until a single cluster remains. The n−1 merges,
//	in order, form a complete binary tree over the n items.
//
// ✨ Key features:
//   - Linkage rules: Single (minimum pairwise distance) and Complete (maximum)
//   - Deterministic tie-break: among equal distances the lexicographically
//     smallest id pair (a, b) wins, so repeated runs are identical
//   - Cluster ids follow the usual linkage-matrix convention: 0..n−1 are the
//     items, n+k is the cluster created by the k-th merge
//   - Optional parallel pair scan (WithWorkers) that selects exactly the same
//     pair as the sequential scan
//   - Merges.Validate checks any merge matrix against the tree invariants
//
// ⚙️ Usage:
//
//	merges, err := hac.Cluster(vectors,
//	  hac.WithLinkage(hac.Complete),
//	  hac.WithLogger(logger),
//	)
//	// merges[k] = {A, B, Distance, Size}, A < B
//
// Performance:
//
//   - Distance matrix: O(n²·d) once.
//   - Merging: every step rescans all active pairs from scratch
//     (no Lance–Williams update), O(n³) pair evaluations overall with a
//     per-pair cost of |A|·|B|. This is the natural optimization point.
package hac
