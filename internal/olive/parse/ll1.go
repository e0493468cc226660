package parse

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/dekarrin/olive/internal/olive/grammar"
	"github.com/dekarrin/olive/internal/olive/lex"
)

// terminalName maps a token to the grammar terminal it represents: an
// Identifier or Constant token maps to a terminal of that same name;
// every other kind maps to its surface lexeme (spec §4.4).
func terminalName(tok lex.Token) string {
	switch tok.Kind {
	case lex.Identifier:
		return "Identifier"
	case lex.Constant:
		return "Constant"
	case lex.EOF:
		return grammar.EndOfInput
	default:
		return tok.Kind.String()
	}
}

// frame is a (symbol, owning-parent-node-index) pair threaded in parallel
// across the work stack and the parent stack.
type frame struct {
	symbol string
	parent int
}

// Parse runs the stack-driven LL(1) predictive parse of spec §4.4 over
// tokens against g's parsing table, and returns the resulting parse tree.
//
// Grounded on internal/ictiobus/parse/ll1.go's Parse: a symbol stack and a
// parallel parent-index stack, here backed by
// github.com/emirpasic/gods/stacks/arraystack per the teacher pack's
// domain-dependency stack (emirpasic/gods, contributed by
// npillmayer-gorgo) rather than a bespoke slice, since the teacher's own
// util.Stack source file was not present in the retrieval pack.
func Parse(g *grammar.Grammar, table *grammar.Table, tokens []lex.Token) (*Tree, error) {
	work := arraystack.New()
	work.Push(frame{symbol: grammar.EndOfInput, parent: noParent})
	work.Push(frame{symbol: g.StartSymbol(), parent: noParent})

	tree := &Tree{}
	eofTok := lex.Token{Kind: lex.EOF, Line: lastLine(tokens)}
	input := append(append([]lex.Token{}, tokens...), eofTok)

	pos := 0
	for {
		topVal, ok := work.Peek()
		if !ok {
			return tree, nil
		}
		top := topVal.(frame)
		cur := input[pos]
		a := terminalName(cur)

		if top.symbol == grammar.EndOfInput {
			if a == grammar.EndOfInput {
				return tree, nil
			}
			return tree, stackFailure(work, cur.Line, "Parse error: unexpected token %s at end of input", a)
		}

		if g.IsTerminal(top.symbol) || top.symbol == "Identifier" || top.symbol == "Constant" {
			if top.symbol != a {
				return tree, stackFailure(work, cur.Line, "Parse error: expected %s but found %s", top.symbol, a)
			}
			work.Pop()
			tree.addNode(top.symbol, top.parent)
			pos++
			continue
		}

		prod, ok := table.Lookup(top.symbol, a)
		if !ok {
			return tree, stackFailure(work, cur.Line, "Parse error: no rule for %s with %s", top.symbol, a)
		}

		work.Pop()
		newIdx := tree.addNode(top.symbol, top.parent)

		for i := len(prod) - 1; i >= 0; i-- {
			if prod[i] == grammar.Epsilon {
				continue
			}
			work.Push(frame{symbol: prod[i], parent: newIdx})
		}
	}
}

func lastLine(tokens []lex.Token) int {
	if len(tokens) == 0 {
		return 0
	}
	return tokens[len(tokens)-1].Line
}

// stackFailure snapshots the work stack's symbols, top first, for the
// returned *SyntaxError's trace.
func stackFailure(work *arraystack.Stack, line int, format string, args ...any) *SyntaxError {
	values := work.Values() // arraystack.Values is already in LIFO order
	trace := make([]string, 0, len(values))
	for _, v := range values {
		trace = append(trace, v.(frame).symbol)
	}
	return newSyntaxError(line, trace, format, args...)
}
