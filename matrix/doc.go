// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric substrate of hclust.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set/Row
//     return errors instead of panicking) and a finite-only numeric policy.
//   - Validators (square, finite, symmetric, zero diagonal, non-negative) and
//     the composite ValidateDistance for user-supplied distance matrices.
//   - Column statistics: means, population standard deviations and the
//     z-score transform, with an explicit policy for constant columns.
//
// Every failure is a sentinel from errors.go, wrapped with the operation
// name; match with errors.Is.
//
// See the examples in this package and in distance for usage patterns.
package matrix
