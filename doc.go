// Package hclust is an in-memory toolkit for agglomerative hierarchical
// clustering: from raw CSV rows to a merge matrix and a rendered dendrogram.
//
// 🚀 What is hclust?
//
//	A small, deterministic library that brings together:
//		• Dense matrices: row-major storage, validators, column statistics
//		• Distances: Euclidean kernels and the pairwise distance matrix
//		• HAC: single and complete linkage with a reproducible tie-break
//		• Dendrograms: tree reconstruction, leaf order, text rendering
//		• Datasets: CSV loading, feature extraction, z-score normalization
//
// ✨ Why choose hclust?
//
//   - Reproducible – equal inputs always give equal merge matrices,
//     with or without the parallel pair scan
//   - Checked – every merge matrix can be validated against the tree invariants
//   - Conventional output – rows are (a, b, distance, size) with new cluster
//     ids n, n+1, ..., ready for any dendrogram plotter
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/      Dense matrix, validators, column statistics
//	distance/    Euclidean kernels, pairwise distance matrix
//	hac/         cluster registry, linkage rules, merge engine
//	dendrogram/  merge tree, leaf order, text rendering
//	dataset/     CSV records, feature vectors, normalization
//	cmd/hclust   command line pipeline (TOML config, zap logging)
//
// Quick ASCII example (two tight pairs):
//
//	    ┌───────┴───────┐  10
//	  ┌─┴─┐           ┌─┴─┐  1
//	  ne  nw          se  sw
//
//	go get github.com/katalvlaran/hclust
package hclust
