// Package parse implements the LL(1) predictive parser driver: given a
// token stream and a grammar's LL(1) parsing table, it runs the
// stack-driven algorithm of spec §4.4 and emits an arena-indexed parse
// tree.
//
// Grounded on internal/ictiobus/parse/ll1.go's GenerateLL1Parser/Parse
// (the symbol stack + parent-index stack driving types.ParseTree), adapted
// from ictiobus's LHS-context-bearing grammar to Olive's plain grammar
// package, and from original_source/compiler/parser/src/models/parser.rs
// (ParserOutput, print_stack_trace on failure).
package parse

// noParent marks the absence of a parent, sibling, or last-child link.
const noParent = -1

// Node is one entry in the parse-tree arena: parent, sibling, and
// last-child are indices into the same Tree.Nodes slice, or noParent when
// absent. Node 0 is always the tree's root.
type Node struct {
	Symbol    string
	Parent    int
	Sibling   int
	LastChild int
}

// Tree is the ordered rooted parse tree produced by a predictive parse,
// stored as a flat pre-order arena (spec §4.4's "Parse-tree emission").
type Tree struct {
	Nodes []Node
}

// addNode appends a new node with the given symbol and parent, threading
// it onto its parent's sibling list in O(1) via the last-child back-link.
func (t *Tree) addNode(symbol string, parent int) int {
	idx := len(t.Nodes)
	node := Node{Symbol: symbol, Parent: parent, Sibling: noParent, LastChild: noParent}

	if parent != noParent {
		node.Sibling = t.Nodes[parent].LastChild
		t.Nodes[parent].LastChild = idx
	}

	t.Nodes = append(t.Nodes, node)
	return idx
}
