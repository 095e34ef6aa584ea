// SPDX-License-Identifier: MIT

// Package dendrogram rebuilds the binary merge tree described by a hac merge
// matrix and renders it as indented text.
//
// Row k of the merge matrix creates node n+k with children A (left) and
// B (right). Leaves are the original items 0..n-1 and carry the caller's
// labels. Leaf order is the left-to-right traversal of that tree, which is
// also the x-axis order a plotted dendrogram would use.
//
//	t, _ := dendrogram.Build(merges, labels)
//	_ = t.Render(os.Stdout)
package dendrogram
