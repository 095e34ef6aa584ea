// SPDX-License-Identifier: MIT

package hac_test

import (
	"testing"

	"github.com/katalvlaran/hclust/hac"
	"github.com/stretchr/testify/require"
)

// TestRegistry_Lifecycle walks a 3-item registry down to a single cluster.
func TestRegistry_Lifecycle(t *testing.T) {
	r, err := hac.NewRegistry(3)
	require.NoError(t, err)
	require.Equal(t, 3, r.Len())
	require.Equal(t, 3, r.Items())
	require.Equal(t, []int{0, 1, 2}, r.Active())
	require.Equal(t, 3, r.Next())

	id, err := r.Merge(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3, id, "first merged id is n")
	require.Equal(t, []int{1, 3}, r.Active())
	require.False(t, r.Contains(0))
	require.True(t, r.Contains(3))

	members, err := r.Members(3)
	require.NoError(t, err)
	require.Equal(t, []uint32{0, 2}, members.ToArray())
	size, err := r.Size(3)
	require.NoError(t, err)
	require.Equal(t, 2, size)

	id, err = r.Merge(3, 1)
	require.NoError(t, err)
	require.Equal(t, 4, id, "ids grow by one per merge")
	require.Equal(t, []int{4}, r.Active())
	size, err = r.Size(4)
	require.NoError(t, err)
	require.Equal(t, 3, size)
}

// TestRegistry_MergeErrors checks the sentinels and that failed merges leave state intact.
func TestRegistry_MergeErrors(t *testing.T) {
	r, err := hac.NewRegistry(2)
	require.NoError(t, err)

	_, err = r.Merge(1, 1)
	require.ErrorIs(t, err, hac.ErrInvalidMerge)

	_, err = r.Merge(0, 7)
	require.ErrorIs(t, err, hac.ErrUnknownCluster)

	_, err = r.Members(7)
	require.ErrorIs(t, err, hac.ErrUnknownCluster)
	_, err = r.Size(-1)
	require.ErrorIs(t, err, hac.ErrUnknownCluster)

	require.Equal(t, []int{0, 1}, r.Active(), "failed merges must not mutate")
	require.Equal(t, 2, r.Next())

	_, err = hac.NewRegistry(-1)
	require.ErrorIs(t, err, hac.ErrInvalidSize)
}

// TestRegistry_MembersIsACopy ensures callers cannot corrupt the registry.
func TestRegistry_MembersIsACopy(t *testing.T) {
	r, err := hac.NewRegistry(2)
	require.NoError(t, err)

	m, err := r.Members(0)
	require.NoError(t, err)
	m.Add(1)

	size, err := r.Size(0)
	require.NoError(t, err)
	require.Equal(t, 1, size)
}

// TestRegistry_Partition checks the active ids always partition the items.
func TestRegistry_Partition(t *testing.T) {
	const n = 6
	r, err := hac.NewRegistry(n)
	require.NoError(t, err)

	pairs := [][2]int{{0, 5}, {2, 3}, {6, 1}, {4, 7}, {8, 9}}
	for _, p := range pairs {
		_, err = r.Merge(p[0], p[1])
		require.NoError(t, err)

		seen := make(map[uint32]int)
		for _, id := range r.Active() {
			m, err := r.Members(id)
			require.NoError(t, err)
			for _, item := range m.ToArray() {
				seen[item]++
			}
		}
		require.Len(t, seen, n)
		for item, cnt := range seen {
			require.Equal(t, 1, cnt, "item %d in %d clusters", item, cnt)
		}
	}
	require.Equal(t, 1, r.Len())
}
