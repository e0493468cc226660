// Package grammar loads a context-free grammar from a file, computes
// FIRST/FOLLOW sets, and constructs an LL(1) parsing table.
//
// Grounded on internal/tunascript/grammar.go's Grammar/Rule/Production
// types and its recursive FIRST/FOLLOW and LLParseTable methods, adapted
// from tunascript's in-memory ";"-separated rule strings to Olive's own
// file format (spec §4.4), and from original_source's
// compiler/parser/src/models/grammar.rs (first()/follow()/is_context_free
// shape confirmed against its tests).
package grammar

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dekarrin/olive/internal/olive/collections"
)

// Epsilon is the sentinel empty-production symbol.
const Epsilon = "ε"

// EndOfInput is the sentinel terminal appended to the token stream and
// used as the universal bottom of FOLLOW sets.
const EndOfInput = "$"

// FormatError reports a violation of the grammar file format or of the
// context-freeness check (spec §4.4).
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string { return e.msg }

func formatErrorf(format string, args ...any) error {
	return &FormatError{msg: fmt.Sprintf(format, args...)}
}

// ErrNotLL1 is returned by LLParseTable when two productions of the same
// non-terminal would occupy the same parsing-table cell. spec §9 notes the
// source behavior silently overwrites; Olive promotes this to a detected
// conflict.
type ErrNotLL1 struct {
	NonTerminal string
	Terminal    string
}

func (e *ErrNotLL1) Error() string {
	return fmt.Sprintf("grammar is not LL(1): conflicting productions for (%s, %s)", e.NonTerminal, e.Terminal)
}

// Production is a single right-hand-side alternative: a sequence of
// symbols drawn from N ∪ T ∪ {ε}.
type Production []string

func (p Production) String() string {
	if len(p) == 1 && p[0] == Epsilon {
		return Epsilon
	}
	return strings.Join(p, " ")
}

func (p Production) equal(o Production) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}

func (p Production) isEpsilon() bool {
	return len(p) == 1 && p[0] == Epsilon
}

// Grammar is (N, T, S, P): disjoint non-terminal and terminal symbol sets,
// a start symbol, and a mapping from non-terminal to its alternatives.
type Grammar struct {
	nonTerminals collections.Set[string]
	terminals    collections.Set[string]
	start        string
	productions  map[string][]Production

	// order preserves first-declaration order of non-terminals, for
	// deterministic table rendering.
	order []string
}

// NonTerminals returns the grammar's non-terminal symbols.
func (g *Grammar) NonTerminals() []string {
	return append([]string(nil), g.order...)
}

// Terminals returns the grammar's terminal symbols, sorted.
func (g *Grammar) Terminals() []string {
	return collections.OrderedElements(g.terminals)
}

// StartSymbol returns the grammar's start symbol S.
func (g *Grammar) StartSymbol() string {
	return g.start
}

// Productions returns the alternatives for non-terminal A, or nil if A is
// not a declared non-terminal.
func (g *Grammar) Productions(a string) []Production {
	return g.productions[a]
}

// IsNonTerminal reports whether sym is a declared non-terminal.
func (g *Grammar) IsNonTerminal(sym string) bool {
	return g.nonTerminals.Has(sym)
}

// IsTerminal reports whether sym is a declared terminal.
func (g *Grammar) IsTerminal(sym string) bool {
	return g.terminals.Has(sym)
}

// escapeTerminal expands the grammar file format's terminal escapes:
// \s -> space, \p -> "|", \d -> "||".
func escapeTerminal(tok string) string {
	switch tok {
	case `\s`:
		return " "
	case `\p`:
		return "|"
	case `\d`:
		return "||"
	default:
		return tok
	}
}

// Parse reads a grammar definition from r in the four-section format
// spec'd in §4.4: non-terminals, terminals, start symbol, productions.
func Parse(r io.Reader) (*Grammar, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	nextLine := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	g := &Grammar{
		nonTerminals: collections.Set[string]{},
		terminals:    collections.Set[string]{},
		productions:  map[string][]Production{},
	}

	ntLine, ok := nextLine()
	if !ok {
		return nil, formatErrorf("invalid grammar file: missing non-terminals")
	}
	for _, tok := range strings.Fields(ntLine) {
		g.nonTerminals.Add(tok)
		g.order = append(g.order, tok)
	}
	if g.nonTerminals.Empty() {
		return nil, formatErrorf("invalid grammar file: empty non-terminal set")
	}

	tLine, ok := nextLine()
	if !ok {
		return nil, formatErrorf("invalid grammar file: missing terminals")
	}
	for _, tok := range strings.Fields(tLine) {
		g.terminals.Add(escapeTerminal(tok))
	}

	startLine, ok := nextLine()
	if !ok {
		return nil, formatErrorf("invalid grammar file: missing start symbol")
	}
	g.start = strings.TrimSpace(startLine)
	if !g.nonTerminals.Has(g.start) {
		return nil, formatErrorf("start symbol %q is not a declared non-terminal", g.start)
	}

	for {
		line, ok := nextLine()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		lhs, alts, err := parseProductionLine(line)
		if err != nil {
			return nil, err
		}
		if !g.nonTerminals.Has(lhs) {
			return nil, formatErrorf("production left-hand side %q is not a declared non-terminal", lhs)
		}

		for _, alt := range alts {
			for _, sym := range alt {
				if sym == Epsilon {
					continue
				}
				if !g.nonTerminals.Has(sym) && !g.terminals.Has(sym) {
					return nil, formatErrorf("symbol %q in production for %q is neither a non-terminal nor a terminal", sym, lhs)
				}
			}
			for _, existing := range g.productions[lhs] {
				if existing.equal(alt) {
					return nil, formatErrorf("duplicate production %q -> %q", lhs, alt.String())
				}
			}
			g.productions[lhs] = append(g.productions[lhs], alt)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read grammar file: %w", err)
	}

	if _, ok := g.productions[g.start]; !ok {
		return nil, formatErrorf("no production for start symbol %q", g.start)
	}

	return g, nil
}

// parseProductionLine splits "A -> α | β | …" into its left-hand side and
// whitespace-split alternatives.
func parseProductionLine(line string) (string, []Production, error) {
	arrowIdx := strings.Index(line, "->")
	if arrowIdx < 0 {
		return "", nil, formatErrorf("invalid production line (missing '->'): %q", line)
	}

	lhsPart := strings.TrimSpace(line[:arrowIdx])
	lhsFields := strings.Fields(lhsPart)
	if len(lhsFields) != 1 {
		return "", nil, formatErrorf("production left-hand side must be a single non-terminal: %q", lhsPart)
	}
	lhs := lhsFields[0]

	rhsPart := line[arrowIdx+2:]
	altStrs := strings.Split(rhsPart, "|")

	alts := make([]Production, 0, len(altStrs))
	for _, altStr := range altStrs {
		fields := strings.Fields(altStr)
		if len(fields) == 0 {
			return "", nil, formatErrorf("empty alternative in production for %q", lhs)
		}
		for i, sym := range fields {
			fields[i] = escapeTerminal(sym)
		}
		alts = append(alts, Production(fields))
	}

	return lhs, alts, nil
}

// IsContextFree checks spec §4.4's context-freeness rules: every left-hand
// side is exactly one non-terminal (guaranteed by Parse), every right-hand
// symbol is in N ∪ T ∪ {ε} (also guaranteed by Parse), and P[S] exists.
func (g *Grammar) IsContextFree() bool {
	if _, ok := g.productions[g.start]; !ok {
		return false
	}
	for nt := range g.productions {
		if !g.nonTerminals.Has(nt) {
			return false
		}
		for _, alt := range g.productions[nt] {
			for _, sym := range alt {
				if sym == Epsilon {
					continue
				}
				if !g.nonTerminals.Has(sym) && !g.terminals.Has(sym) {
					return false
				}
			}
		}
	}
	return true
}
