// SPDX-License-Identifier: MIT

package hac

import (
	"fmt"
	"math"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/hclust/matrix"
)

// Linkage selects how the distance between two clusters is derived from the
// pairwise distances of their members.
type Linkage int

const (
	// Single linkage: minimum pairwise distance between members.
	Single Linkage = iota

	// Complete linkage: maximum pairwise distance between members.
	Complete
)

// Linkage names as accepted by ParseLinkage and produced by String.
const (
	NameSingle   = "single"
	NameComplete = "complete"
)

// ParseLinkage maps "single" / "complete" (case-insensitive, surrounding
// spaces ignored) to a Linkage. Anything else returns ErrUnsupportedLinkage.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case NameSingle:
		return Single, nil
	case NameComplete:
		return Complete, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedLinkage, s)
	}
}

// String returns the canonical linkage name.
func (l Linkage) String() string {
	switch l {
	case Single:
		return NameSingle
	case Complete:
		return NameComplete
	default:
		return fmt.Sprintf("Linkage(%d)", int(l))
	}
}

// valid reports whether l is one of the supported rules.
func (l Linkage) valid() bool { return l == Single || l == Complete }

// MarshalText implements encoding.TextMarshaler.
func (l Linkage) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedLinkage, int(l))
	}

	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a Linkage can be
// decoded straight from TOML or JSON configuration.
func (l *Linkage) UnmarshalText(text []byte) error {
	parsed, err := ParseLinkage(string(text))
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}

// Distance computes the inter-cluster distance between member sets a and b
// over the item distance matrix d.
//
//   - Single:   min over (p in a, q in b) of d[p][q]
//   - Complete: max over (p in a, q in b) of d[p][q]
//
// Errors:
//   - ErrEmptyCluster if either set is empty.
//   - ErrUnsupportedLinkage for an unknown Linkage value.
//   - matrix.ErrOutOfRange if a member index is outside d.
//
// Complexity: O(|a|·|b|).
func (l Linkage) Distance(d *matrix.Dense, a, b *roaring.Bitmap) (float64, error) {
	if a == nil || b == nil || a.IsEmpty() || b.IsEmpty() {
		return 0, ErrEmptyCluster
	}

	return l.between(d, a.ToArray(), b.ToArray())
}

// between is the slice form of Distance used by the engine, which keeps the
// member arrays of active clusters materialized across steps.
func (l Linkage) between(d *matrix.Dense, a, b []uint32) (float64, error) {
	if !l.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedLinkage, int(l))
	}
	if len(a) == 0 || len(b) == 0 {
		return 0, ErrEmptyCluster
	}

	best := math.Inf(1)
	if l == Complete {
		best = math.Inf(-1)
	}
	for _, p := range a {
		row, err := d.RowView(int(p))
		if err != nil {
			return 0, err
		}
		for _, q := range b {
			if int(q) >= len(row) {
				return 0, fmt.Errorf("member %d: %w", q, matrix.ErrOutOfRange)
			}
			v := row[q]
			if (l == Single && v < best) || (l == Complete && v > best) {
				best = v
			}
		}
	}

	return best, nil
}
