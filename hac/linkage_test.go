// SPDX-License-Identifier: MIT

package hac_test

import (
	"encoding/json"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/katalvlaran/hclust/distance"
	"github.com/katalvlaran/hclust/hac"
	"github.com/stretchr/testify/require"
)

func TestParseLinkage(t *testing.T) {
	tests := []struct {
		in   string
		want hac.Linkage
		err  bool
	}{
		{"single", hac.Single, false},
		{"complete", hac.Complete, false},
		{"  Complete ", hac.Complete, false},
		{"SINGLE", hac.Single, false},
		{"average", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := hac.ParseLinkage(tt.in)
			if tt.err {
				require.ErrorIs(t, err, hac.ErrUnsupportedLinkage)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

// TestLinkage_Text checks the text codec used by TOML and JSON configuration.
func TestLinkage_Text(t *testing.T) {
	require.Equal(t, "single", hac.Single.String())
	require.Equal(t, "complete", hac.Complete.String())
	require.Equal(t, "Linkage(5)", hac.Linkage(5).String())

	var cfg struct {
		Linkage hac.Linkage `json:"linkage"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"linkage":"complete"}`), &cfg))
	require.Equal(t, hac.Complete, cfg.Linkage)

	out, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.JSONEq(t, `{"linkage":"complete"}`, string(out))

	require.ErrorIs(t, json.Unmarshal([]byte(`{"linkage":"ward"}`), &cfg), hac.ErrUnsupportedLinkage)
	_, err = hac.Linkage(9).MarshalText()
	require.ErrorIs(t, err, hac.ErrUnsupportedLinkage)
}

// TestLinkage_Distance evaluates both rules on points 0, 1, 5, 9 of a line.
func TestLinkage_Distance(t *testing.T) {
	D, err := distance.Pairwise([][]float64{{0}, {1}, {5}, {9}})
	require.NoError(t, err)

	a := roaring.BitmapOf(0, 1)
	b := roaring.BitmapOf(2, 3)

	single, err := hac.Single.Distance(D, a, b)
	require.NoError(t, err)
	require.Equal(t, 4.0, single, "closest members 1 and 5")

	complete, err := hac.Complete.Distance(D, a, b)
	require.NoError(t, err)
	require.Equal(t, 9.0, complete, "farthest members 0 and 9")

	// Symmetric in its arguments.
	back, err := hac.Complete.Distance(D, b, a)
	require.NoError(t, err)
	require.Equal(t, complete, back)
}

func TestLinkage_DistanceErrors(t *testing.T) {
	D, err := distance.Pairwise([][]float64{{0}, {1}})
	require.NoError(t, err)

	_, err = hac.Single.Distance(D, roaring.New(), roaring.BitmapOf(1))
	require.ErrorIs(t, err, hac.ErrEmptyCluster)
	_, err = hac.Complete.Distance(D, roaring.BitmapOf(0), nil)
	require.ErrorIs(t, err, hac.ErrEmptyCluster)

	_, err = hac.Linkage(3).Distance(D, roaring.BitmapOf(0), roaring.BitmapOf(1))
	require.ErrorIs(t, err, hac.ErrUnsupportedLinkage)
}
