// SPDX-License-Identifier: MIT

package distance_test

import (
	"fmt"

	"github.com/katalvlaran/hclust/distance"
)

// ExamplePairwise builds the distance matrix of three points on a line.
func ExamplePairwise() {
	D, err := distance.Pairwise([][]float64{{0}, {3}, {7}})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Print(D)
	// Output:
	// [0, 3, 7]
	// [3, 0, 4]
	// [7, 4, 0]
}
