package rose

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable dump of the tree rooted at n to w, one
// line per node, indented by depth: the generator's type name and,
// recursively, each child. It is a debugging aid, not a stable format.
func (n *Node) Print(w io.Writer) {
	n.print(w, 0)
}

func (n *Node) print(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s- %s\n", strings.Repeat("  ", depth), n.description())
	for _, c := range n.children {
		c.print(w, depth+1)
	}
}
