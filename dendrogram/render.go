// SPDX-License-Identifier: MIT

package dendrogram

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const indentUnit = "  "

// Render writes the tree as indented text, one node per line, children two
// spaces deeper than their parent:
//
//	+ 4.5 [n=3]
//	  + 1 [n=2]
//	    - a
//	    - b
//	  - c
//
// Internal nodes show their merge height and size, leaves their label.
// An empty tree writes nothing.
func (t *Tree) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	t.walk(func(n *Node, depth int) {
		bw.WriteString(strings.Repeat(indentUnit, depth))
		if n.IsLeaf() {
			bw.WriteString("- ")
			bw.WriteString(n.Label)
		} else {
			bw.WriteString("+ ")
			bw.WriteString(strconv.FormatFloat(n.Height, 'g', 6, 64))
			bw.WriteString(" [n=")
			bw.WriteString(strconv.Itoa(n.Size))
			bw.WriteString("]")
		}
		bw.WriteByte('\n')
	})

	return bw.Flush()
}

// String returns the Render output.
func (t *Tree) String() string {
	var b strings.Builder
	_ = t.Render(&b)

	return b.String()
}
