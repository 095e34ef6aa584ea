// SPDX-License-Identifier: MIT

package hac

import "errors"

// Sentinel errors. Every failure aborts the whole run; callers match with
// errors.Is. Messages produced by the engine carry the step and pair involved.
var (
	// ErrUnsupportedLinkage indicates a linkage name or value other than single/complete.
	ErrUnsupportedLinkage = errors.New("hac: unsupported linkage")

	// ErrUnknownCluster indicates a cluster id that is not currently active.
	ErrUnknownCluster = errors.New("hac: unknown cluster id")

	// ErrInvalidMerge indicates an attempt to merge a cluster with itself.
	ErrInvalidMerge = errors.New("hac: cannot merge a cluster with itself")

	// ErrEmptyCluster indicates an empty member set passed to a linkage computation.
	ErrEmptyCluster = errors.New("hac: empty cluster")

	// ErrInvalidSize indicates a negative item count.
	ErrInvalidSize = errors.New("hac: item count must be >= 0")

	// ErrInvalidOptions indicates an option value outside its domain (e.g. workers < 1).
	ErrInvalidOptions = errors.New("hac: invalid options")

	// ErrInvalidMerges indicates a merge matrix that does not describe a
	// complete binary merge tree over n items.
	ErrInvalidMerges = errors.New("hac: invalid merge matrix")
)
