package grammar

import "github.com/dekarrin/olive/internal/olive/collections"

// Table is the LL(1) parsing table M[A, a]: for each non-terminal A and
// terminal (or "$") a, the single production to expand A with, if any.
//
// Grounded on internal/tunascript/grammar.go's LLParseTable / LL1Table
// (rendered there with rosed.InsertTableOpts; Olive keeps the lookup
// structure and leaves rendering to the output package).
type Table struct {
	g       *Grammar
	entries map[string]map[string]Production
}

// Lookup returns the production M[nt, terminal], if the table has one.
func (t *Table) Lookup(nt, terminal string) (Production, bool) {
	row, ok := t.entries[nt]
	if !ok {
		return nil, false
	}
	p, ok := row[terminal]
	return p, ok
}

// LLParseTable builds the LL(1) parsing table for g. Per spec §9's
// resolved Open Question, a conflicting assignment to an already-occupied
// cell is reported as *ErrNotLL1 rather than silently overwritten.
func (g *Grammar) LLParseTable() (*Table, error) {
	t := &Table{g: g, entries: map[string]map[string]Production{}}

	for _, nt := range g.order {
		t.entries[nt] = map[string]Production{}

		for _, alt := range g.productions[nt] {
			firstOfAlt := g.firstOfSequence(alt, collections.Set[string]{})

			for a := range firstOfAlt {
				if a == Epsilon {
					continue
				}
				if err := t.set(nt, a, alt); err != nil {
					return nil, err
				}
			}

			if firstOfAlt.Has(Epsilon) {
				for b := range g.Follow(nt) {
					if err := t.set(nt, b, alt); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	return t, nil
}

func (t *Table) set(nt, terminal string, alt Production) error {
	if existing, ok := t.entries[nt][terminal]; ok && !existing.equal(alt) {
		return &ErrNotLL1{NonTerminal: nt, Terminal: terminal}
	}
	t.entries[nt][terminal] = alt
	return nil
}

// IsLL1 reports whether g's parsing table can be built without conflict.
func (g *Grammar) IsLL1() bool {
	_, err := g.LLParseTable()
	return err == nil
}

// Rows renders t as a grid suitable for output.RenderTable: row 0 is the
// terminal/"$" header (with an empty corner cell), and each following row
// is a non-terminal's name followed by its M[A, a] entry in each column,
// blank where the table has no entry.
func (t *Table) Rows() [][]string {
	cols := append(append([]string{}, t.g.Terminals()...), EndOfInput)

	header := make([]string, 0, len(cols)+1)
	header = append(header, "")
	header = append(header, cols...)
	rows := [][]string{header}

	for _, nt := range t.g.order {
		row := make([]string, 0, len(cols)+1)
		row = append(row, nt)
		for _, col := range cols {
			if p, ok := t.entries[nt][col]; ok {
				row = append(row, p.String())
			} else {
				row = append(row, "")
			}
		}
		rows = append(rows, row)
	}

	return rows
}
