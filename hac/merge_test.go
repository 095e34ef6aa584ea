// SPDX-License-Identifier: MIT

package hac_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hclust/hac"
)

func TestMerges_MatrixAndHeights(t *testing.T) {
	ms := hac.Merges{
		{A: 0, B: 1, Distance: 1, Size: 2},
		{A: 2, B: 3, Distance: 4.5, Size: 3},
	}
	require.Equal(t, [][4]float64{{0, 1, 1, 2}, {2, 3, 4.5, 3}}, ms.Matrix())
	require.Equal(t, []float64{1, 4.5}, ms.Heights())
	require.NoError(t, ms.Validate(3))
}

func TestMerges_ValidateRejects(t *testing.T) {
	valid := func() hac.Merges {
		return hac.Merges{
			{A: 0, B: 1, Distance: 1, Size: 2},
			{A: 2, B: 3, Distance: 2, Size: 2},
			{A: 4, B: 5, Distance: 3, Size: 4},
		}
	}
	require.NoError(t, valid().Validate(4))

	tests := []struct {
		name   string
		mutate func(hac.Merges) hac.Merges
	}{
		{"too few rows", func(ms hac.Merges) hac.Merges { return ms[:2] }},
		{"swapped ids", func(ms hac.Merges) hac.Merges { ms[0].A, ms[0].B = 1, 0; return ms }},
		{"future id", func(ms hac.Merges) hac.Merges { ms[1].B = 5; return ms }},
		{"reused id", func(ms hac.Merges) hac.Merges { ms[1] = hac.Merge{A: 1, B: 2, Distance: 2, Size: 2}; return ms }},
		{"wrong size", func(ms hac.Merges) hac.Merges { ms[1].Size = 3; return ms }},
		{"negative distance", func(ms hac.Merges) hac.Merges { ms[2].Distance = -1; return ms }},
		{"nan distance", func(ms hac.Merges) hac.Merges { ms[2].Distance = math.NaN(); return ms }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.mutate(valid()).Validate(4), hac.ErrInvalidMerges)
		})
	}

	require.ErrorIs(t, hac.Merges{}.Validate(-1), hac.ErrInvalidSize)
	require.ErrorIs(t, hac.Merges{{A: 0, B: 1, Distance: 0, Size: 2}}.Validate(1), hac.ErrInvalidMerges)
}
