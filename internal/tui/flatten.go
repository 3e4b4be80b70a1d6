package tui

import "jsonlens/internal/tree"

// A row is one visible line of the tree: a projected node at a depth.
type row struct {
	node  *tree.Node
	depth int
}

// flattenVisible walks the projected tree and returns the rows currently
// visible given the expansion state. Documents sit at depth 0; the synthetic
// root itself is never shown.
func flattenVisible(root *tree.Node, expanded map[*tree.Node]bool) []row {
	var out []row
	var walk func(n *tree.Node, depth int)
	walk = func(n *tree.Node, depth int) {
		out = append(out, row{node: n, depth: depth})
		if !expanded[n] {
			return
		}
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, c := range root.Children {
		walk(c, 0)
	}
	return out
}

// parentIndex maps each node to its parent, for jump-to-parent navigation
// and for expanding the ancestors of search matches.
func parentIndex(root *tree.Node) map[*tree.Node]*tree.Node {
	parents := map[*tree.Node]*tree.Node{}
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		for _, c := range n.Children {
			parents[c] = n
			walk(c)
		}
	}
	walk(root)
	return parents
}
