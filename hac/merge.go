// SPDX-License-Identifier: MIT

package hac

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Merge is one row of the merge matrix: clusters A and B (A < B) were joined
// at linkage distance Distance into a cluster of Size items. The new cluster
// gets id n+k, where k is the row index.
type Merge struct {
	A        int     `json:"a"`
	B        int     `json:"b"`
	Distance float64 `json:"distance"`
	Size     int     `json:"size"`
}

// Merges is the ordered merge history (n−1 rows for n items).
type Merges []Merge

// Matrix returns the conventional (n−1)×4 linkage matrix
// [a, b, distance, size] consumed by dendrogram plotting tools.
func (ms Merges) Matrix() [][4]float64 {
	out := make([][4]float64, len(ms))
	for k, m := range ms {
		out[k] = [4]float64{float64(m.A), float64(m.B), m.Distance, float64(m.Size)}
	}

	return out
}

// Heights returns the merge distances in step order.
func (ms Merges) Heights() []float64 {
	out := make([]float64, len(ms))
	for k, m := range ms {
		out[k] = m.Distance
	}

	return out
}

// Validate checks that ms is a complete binary merge tree over n items:
//   - exactly max(n−1, 0) rows;
//   - row k has 0 <= A < B < n+k and neither id was consumed before;
//   - Size equals the sum of the parents' sizes (1 for items);
//   - Distance is finite and non-negative;
//   - the last row has Size n.
//
// Together these imply the referenced ids plus the root id 2n−2 are exactly
// {0, ..., 2n−2}.
//
// Errors: ErrInvalidSize for n < 0, otherwise ErrInvalidMerges wrapped with
// the offending row.
func (ms Merges) Validate(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	want := n - 1
	if want < 0 {
		want = 0
	}
	if len(ms) != want {
		return fmt.Errorf("%w: %d rows for %d items, want %d", ErrInvalidMerges, len(ms), n, want)
	}
	if n <= 1 {
		return nil
	}

	sizes := make([]int, 2*n-1)
	for i := 0; i < n; i++ {
		sizes[i] = 1
	}
	consumed := roaring.New()

	for k, m := range ms {
		id := n + k
		switch {
		case m.A < 0 || m.A >= m.B || m.B >= id:
			return fmt.Errorf("%w: row %d: ids (%d,%d) out of order or range for new id %d", ErrInvalidMerges, k, m.A, m.B, id)
		case consumed.Contains(uint32(m.A)) || consumed.Contains(uint32(m.B)):
			return fmt.Errorf("%w: row %d: ids (%d,%d) reuse a merged cluster", ErrInvalidMerges, k, m.A, m.B)
		case math.IsNaN(m.Distance) || math.IsInf(m.Distance, 0) || m.Distance < 0:
			return fmt.Errorf("%w: row %d: distance %v", ErrInvalidMerges, k, m.Distance)
		case m.Size != sizes[m.A]+sizes[m.B]:
			return fmt.Errorf("%w: row %d: size %d, want %d", ErrInvalidMerges, k, m.Size, sizes[m.A]+sizes[m.B])
		}
		consumed.Add(uint32(m.A))
		consumed.Add(uint32(m.B))
		sizes[id] = m.Size
	}

	if last := ms[len(ms)-1].Size; last != n {
		return fmt.Errorf("%w: root size %d, want %d", ErrInvalidMerges, last, n)
	}

	return nil
}
