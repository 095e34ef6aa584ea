// SPDX-License-Identifier: MIT

package dendrogram

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/hclust/hac"
)

var (
	// ErrLabelCount indicates that the number of labels does not match the merge matrix.
	ErrLabelCount = errors.New("dendrogram: label count does not match merges")

	// ErrInvalidTree indicates a merge matrix that is not a complete binary merge tree.
	ErrInvalidTree = errors.New("dendrogram: invalid merge tree")
)

// Node is one vertex of the dendrogram. Leaves have nil children, zero
// Height and Size 1.
type Node struct {
	ID     int
	Left   *Node
	Right  *Node
	Height float64
	Size   int
	Label  string
}

// IsLeaf reports whether n is an original item.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Tree is a dendrogram over n items. The zero-item tree has a nil Root.
type Tree struct {
	Root  *Node
	nodes []*Node // indexed by cluster id, len 2n-1
}

// Build reconstructs the tree from merges, labelling leaf i with labels[i].
//
// Errors:
//   - ErrLabelCount if len(merges) != len(labels)-1 (and labels is non-empty).
//   - ErrInvalidTree wrapping hac.ErrInvalidMerges for a malformed merge matrix.
func Build(merges hac.Merges, labels []string) (*Tree, error) {
	n := len(labels)
	if n == 0 {
		if len(merges) != 0 {
			return nil, fmt.Errorf("%w: %d merges for 0 labels", ErrLabelCount, len(merges))
		}
		return &Tree{}, nil
	}
	if len(merges) != n-1 {
		return nil, fmt.Errorf("%w: %d merges for %d labels, want %d", ErrLabelCount, len(merges), n, n-1)
	}
	if err := merges.Validate(n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	nodes := make([]*Node, 2*n-1)
	for i := 0; i < n; i++ {
		nodes[i] = &Node{ID: i, Size: 1, Label: labels[i]}
	}
	for k, m := range merges {
		id := n + k
		nodes[id] = &Node{
			ID:     id,
			Left:   nodes[m.A],
			Right:  nodes[m.B],
			Height: m.Distance,
			Size:   m.Size,
		}
	}

	return &Tree{Root: nodes[len(nodes)-1], nodes: nodes}, nil
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	if t.Root == nil {
		return 0
	}

	return t.Root.Size
}

// Node returns the node with the given cluster id, or nil.
func (t *Tree) Node(id int) *Node {
	if id < 0 || id >= len(t.nodes) {
		return nil
	}

	return t.nodes[id]
}

// LeafOrder returns the item indices in left-to-right order.
func (t *Tree) LeafOrder() []int {
	out := make([]int, 0, t.Len())
	t.walk(func(n *Node, _ int) {
		if n.IsLeaf() {
			out = append(out, n.ID)
		}
	})

	return out
}

// Leaves returns the leaf labels in left-to-right order.
func (t *Tree) Leaves() []string {
	order := t.LeafOrder()
	out := make([]string, len(order))
	for i, id := range order {
		out[i] = t.nodes[id].Label
	}

	return out
}

// walk visits nodes in pre-order (node, left, right) with their depth.
// An explicit stack keeps chained single-linkage trees off the call stack.
func (t *Tree) walk(visit func(n *Node, depth int)) {
	if t.Root == nil {
		return
	}
	type frame struct {
		n     *Node
		depth int
	}
	stack := []frame{{t.Root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(f.n, f.depth)
		if !f.n.IsLeaf() {
			stack = append(stack, frame{f.n.Right, f.depth + 1}, frame{f.n.Left, f.depth + 1})
		}
	}
}

// DefaultLabels returns "0", "1", ... for n items.
func DefaultLabels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}
