// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Use ValidateDistance before feeding a user-supplied matrix to clustering.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
//
// Errors: ErrNaNInf wrapped with the first offending coordinate.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // in range by construction
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Inputs: square Matrix m, tolerance tol ≥ 0 (negative is flipped).
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (bad tol), ErrAsymmetry.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.Rows()
	var i, j int
	var aij, aji float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // upper triangle only
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |A[i,i]| ≤ tol for every i.
//
// Implementation: Assumes m is non-nil and square.
// Errors: ErrNonZeroDiagonal wrapped with the first offending index.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	tol = math.Abs(tol)
	var v float64
	for i := 0; i < m.Rows(); i++ {
		v, _ = m.At(i, i)
		if math.Abs(v) > tol {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal(%d)", i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateNonNegative rejects any strictly negative entry.
//
// Errors: ErrNegativeEntry wrapped with the first offending coordinate.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	var i, j int
	var v float64
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNegativeEntry)
			}
		}
	}

	return nil
}

// ValidateDistance – Composite: NotNil → Square → Finite → NonNegative →
// ZeroDiagonal → Symmetric(tol).
//
// Errors: first failing sentinel in the order above, tagged "ValidateDistance".
// Complexity: O(n²).
// AI-Hints: Matrices produced by distance.Pairwise pass with tol == 0.
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}

	return nil
}
