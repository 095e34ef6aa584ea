// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
// This file intentionally contains ONLY the public Matrix interface and the
// small policy enums with their text codecs; errors live in errors.go.
package matrix

import (
	"fmt"
	"strings"
)

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// ZeroVariancePolicy selects how z-scoring treats a column with std == 0.
type ZeroVariancePolicy int

const (
	// ZeroVarianceError rejects the input with ErrZeroVariance (default).
	ZeroVarianceError ZeroVariancePolicy = iota

	// ZeroVarianceCenter only centers the column, which leaves it all zeros.
	// A constant feature then contributes nothing to Euclidean distances.
	ZeroVarianceCenter
)

// String returns the configuration spelling of the policy.
func (p ZeroVariancePolicy) String() string {
	switch p {
	case ZeroVarianceError:
		return "error"
	case ZeroVarianceCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseZeroVariancePolicy maps "error" / "center" (case-insensitive) to a
// policy. An empty string selects ZeroVarianceError.
func ParseZeroVariancePolicy(s string) (ZeroVariancePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "error":
		return ZeroVarianceError, nil
	case "center":
		return ZeroVarianceCenter, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p ZeroVariancePolicy) MarshalText() ([]byte, error) {
	if p != ZeroVarianceError && p != ZeroVarianceCenter {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(p))
	}

	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *ZeroVariancePolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseZeroVariancePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}
