// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hclust/matrix"
)

// ExampleZScoreColumns standardizes two columns; the second is constant and
// is only centered under ZeroVarianceCenter.
func ExampleZScoreColumns() {
	X, _ := matrix.NewDenseFromRows([][]float64{{1, 5}, {3, 5}})

	_, _, _, err := matrix.ZScoreColumns(X, matrix.ZeroVarianceError)
	fmt.Println(errors.Is(err, matrix.ErrZeroVariance))

	Z, means, stds, _ := matrix.ZScoreColumns(X, matrix.ZeroVarianceCenter)
	fmt.Println(means, stds)
	fmt.Print(Z)
	// Output:
	// true
	// [2 5] [1 0]
	// [-1, 0]
	// [1, 0]
}

// ExampleValidateDistance rejects an asymmetric matrix.
func ExampleValidateDistance() {
	D, _ := matrix.NewDenseFromRows([][]float64{{0, 1}, {2, 0}})
	err := matrix.ValidateDistance(D, 0)
	fmt.Println(errors.Is(err, matrix.ErrAsymmetry))
	// Output: true
}
