// SPDX-License-Identifier: MIT

package hac

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Registry tracks the active clusters of a run: cluster id → member item set.
//
// Ids 0..n-1 are the initial singletons. Merge assigns n, n+1, ... in call
// order. The active ids always partition {0..n-1}.
//
// A Registry is not safe for concurrent mutation; concurrent readers are fine
// between merges.
type Registry struct {
	n       int
	next    int
	members map[int]*roaring.Bitmap
	active  []int // ascending; new ids are always the largest, so append keeps order
}

// NewRegistry returns a registry holding n singleton clusters.
// Returns ErrInvalidSize if n < 0.
// Complexity: O(n).
func NewRegistry(n int) (*Registry, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	r := &Registry{
		n:       n,
		next:    n,
		members: make(map[int]*roaring.Bitmap, n),
		active:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		r.members[i] = roaring.BitmapOf(uint32(i))
		r.active[i] = i
	}

	return r, nil
}

// Len returns the number of active clusters.
func (r *Registry) Len() int { return len(r.active) }

// Items returns the number of original items n.
func (r *Registry) Items() int { return r.n }

// Next returns the id the next Merge will assign.
func (r *Registry) Next() int { return r.next }

// Active returns the active cluster ids in ascending order (a copy).
func (r *Registry) Active() []int {
	out := make([]int, len(r.active))
	copy(out, r.active)

	return out
}

// Contains reports whether id is active.
func (r *Registry) Contains(id int) bool {
	_, ok := r.members[id]

	return ok
}

// Members returns a copy of the member set of cluster id.
// Returns ErrUnknownCluster if id is not active.
func (r *Registry) Members(id int) (*roaring.Bitmap, error) {
	m, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	return m.Clone(), nil
}

// Size returns the number of items in cluster id.
// Returns ErrUnknownCluster if id is not active.
func (r *Registry) Size(id int) (int, error) {
	m, err := r.lookup(id)
	if err != nil {
		return 0, err
	}

	return int(m.GetCardinality()), nil
}

func (r *Registry) lookup(id int) (*roaring.Bitmap, error) {
	m, ok := r.members[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCluster, id)
	}

	return m, nil
}

// Merge removes clusters a and b and inserts a new cluster holding their
// union under the next id, which it returns.
//
// Errors (the registry is left unchanged):
//   - ErrInvalidMerge if a == b.
//   - ErrUnknownCluster if a or b is not active.
//
// Complexity: O(|a|+|b|) for the union plus O(k) to update the active list.
func (r *Registry) Merge(a, b int) (int, error) {
	if a == b {
		return 0, fmt.Errorf("%w: %d", ErrInvalidMerge, a)
	}
	ma, err := r.lookup(a)
	if err != nil {
		return 0, err
	}
	mb, err := r.lookup(b)
	if err != nil {
		return 0, err
	}

	id := r.next
	r.members[id] = roaring.Or(ma, mb)
	delete(r.members, a)
	delete(r.members, b)

	kept := r.active[:0]
	for _, x := range r.active {
		if x != a && x != b {
			kept = append(kept, x)
		}
	}
	r.active = append(kept, id)
	r.next++

	return id, nil
}
