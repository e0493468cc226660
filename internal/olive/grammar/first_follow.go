package grammar

import "github.com/dekarrin/olive/internal/olive/collections"

// First computes FIRST(sym) for a single grammar symbol: a terminal's
// FIRST set is itself; a non-terminal's is the union of FIRST(α) over its
// productions α, unioned with ε if any alternative derives ε.
//
// Grounded on internal/tunascript/grammar.go's recursive FIRST computation,
// adapted to guard against infinite recursion on directly left-recursive
// non-terminals (a bare recursion would loop forever on A -> A b, which
// the teacher's grammar corpus does not exercise but Olive's spec does not
// rule out).
func (g *Grammar) First(sym string) collections.Set[string] {
	return g.firstGuarded(sym, collections.Set[string]{})
}

func (g *Grammar) firstGuarded(sym string, inProgress collections.Set[string]) collections.Set[string] {
	if g.IsTerminal(sym) || sym == Epsilon {
		return collections.NewSet(sym)
	}

	result := collections.Set[string]{}
	if inProgress.Has(sym) {
		// Left-recursive cycle; this call contributes nothing further and
		// lets the other alternatives (and outer call) complete the set.
		return result
	}
	inProgress.Add(sym)
	defer delete(inProgress, sym)

	for _, alt := range g.productions[sym] {
		result.AddAll(g.firstOfSequence(alt, inProgress))
	}

	return result
}

// firstOfSequence computes FIRST(X1 X2 ... Xn): FIRST(X1) minus ε, plus
// (if X1 is nullable) FIRST(X2 ... Xn), and so on; if every Xi is nullable,
// ε itself is included.
func (g *Grammar) firstOfSequence(seq Production, inProgress collections.Set[string]) collections.Set[string] {
	result := collections.Set[string]{}

	if seq.isEpsilon() {
		result.Add(Epsilon)
		return result
	}

	for _, sym := range seq {
		symFirst := g.firstGuarded(sym, inProgress)
		for e := range symFirst {
			if e != Epsilon {
				result.Add(e)
			}
		}
		if !symFirst.Has(Epsilon) {
			return result
		}
	}

	// Every symbol in the sequence was nullable.
	result.Add(Epsilon)
	return result
}

// Follow computes FOLLOW(nt): every terminal that can immediately follow
// nt in some sentential form derived from the start symbol, plus "$" if nt
// can end the input.
//
// Grounded on internal/tunascript/grammar.go's recursiveFindFollowSet,
// adapted with the same in-progress guard used by First to avoid infinite
// recursion through mutually-recursive non-terminals.
func (g *Grammar) Follow(nt string) collections.Set[string] {
	return g.followGuarded(nt, collections.Set[string]{})
}

func (g *Grammar) followGuarded(nt string, inProgress collections.Set[string]) collections.Set[string] {
	result := collections.Set[string]{}
	if inProgress.Has(nt) {
		return result
	}
	inProgress.Add(nt)

	if nt == g.start {
		result.Add(EndOfInput)
	}

	for _, lhs := range g.order {
		for _, alt := range g.productions[lhs] {
			for i, sym := range alt {
				if sym != nt {
					continue
				}
				rest := Production(alt[i+1:])

				if len(rest) == 0 {
					if lhs != nt {
						result.AddAll(g.followGuarded(lhs, inProgress))
					}
					continue
				}

				restFirst := g.firstOfSequence(rest, collections.Set[string]{})
				for e := range restFirst {
					if e != Epsilon {
						result.Add(e)
					}
				}
				if restFirst.Has(Epsilon) && lhs != nt {
					result.AddAll(g.followGuarded(lhs, inProgress))
				}
			}
		}
	}

	return result
}
