package output

import (
	"fmt"
	"io"

	"github.com/dekarrin/olive/internal/olive/parse"
)

// WriteParseTree renders the parse-tree output file of spec §6: one line
// per node, "Node <i>: Symbol = <s>, Parent = <ps> (<pi>), Sibling = <ss>
// (<si>)", with the "(i)" index suffix omitted when the reference is
// absent.
func WriteParseTree(w io.Writer, tree *parse.Tree) error {
	for i, node := range tree.Nodes {
		parentDesc := refDescription(tree, node.Parent)
		siblingDesc := refDescription(tree, node.Sibling)

		if _, err := fmt.Fprintf(w, "Node %d: Symbol = %s, Parent = %s, Sibling = %s\n",
			i, node.Symbol, parentDesc, siblingDesc); err != nil {
			return err
		}
	}
	return nil
}

// refDescription renders a node reference as "<symbol> (<index>)", or
// "none" when idx is absent (negative).
func refDescription(tree *parse.Tree, idx int) string {
	if idx < 0 {
		return "none"
	}
	return fmt.Sprintf("%s (%d)", tree.Nodes[idx].Symbol, idx)
}
