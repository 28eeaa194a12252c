package objdebug

import (
	"fmt"
	"io"
	"strings"

	"github.com/ashenforge/dmap/bsp"
)

// WriteASCIITree dumps root as an indented plain-text tree (spec §6's
// -asciiTree flag): one line per node, two-space indent per depth,
// front child before back child.
func WriteASCIITree(w io.Writer, root *bsp.Node) error {
	return writeNode(w, root, 0)
}

func writeNode(w io.Writer, n *bsp.Node, depth int) error {
	indent := strings.Repeat("  ", depth)
	if n == nil {
		_, err := fmt.Fprintf(w, "%s<nil>\n", indent)
		return err
	}
	if n.Leaf() {
		_, err := fmt.Fprintf(w, "%sleaf #%d area=%d opaque=%v\n", indent, n.Number, n.Area, n.Opaque)
		return err
	}
	if _, err := fmt.Fprintf(w, "%snode #%d plane=%d\n", indent, n.Number, n.PlaneIndex); err != nil {
		return err
	}
	if err := writeNode(w, n.Children[0], depth+1); err != nil {
		return err
	}
	return writeNode(w, n.Children[1], depth+1)
}
