// Package output renders the human-readable dump files named in spec §6:
// the token/identifier/constant-table listing and the parse-tree listing.
// It is an external collaborator (spec §1 explicitly places "the
// human-readable output writer for tables" outside the core), calling into
// the core packages only through their exported read accessors.
//
// Grounded on internal/tunascript/grammar.go's LL1Table.String(), which
// renders a table via github.com/dekarrin/rosed's InsertTableOpts; Olive
// reuses the same library in RenderTable for the LL(1) parsing-table dump.
// The token and parse-tree listings are written as plain formatted lines.
package output

import (
	"fmt"
	"io"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/olive/internal/olive/hashmap"
	"github.com/dekarrin/olive/internal/olive/lex"
)

// WriteTokens renders the token output file of spec §6: a token list, an
// identifier table, a constant table, and a status line, in that order.
// scanErr is the error (if any) Scan returned; a nil scanErr renders
// "Lexically correct!".
func WriteTokens(w io.Writer, result lex.Result, scanErr error) error {
	if _, err := fmt.Fprintln(w, "Token list:"); err != nil {
		return err
	}
	for _, tok := range result.Tokens {
		if _, err := fmt.Fprintf(w, "(%s, %d)\n", tok.Kind, tok.Position); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%d\n\n", len(result.Tokens)); err != nil {
		return err
	}

	if err := writeIndexedTable(w, "Identifier table:", result.Identifiers); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := writeIndexedTable(w, "Constant table:", result.Constants); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	status := "Lexically correct!"
	if scanErr != nil {
		status = scanErr.Error()
	}
	_, err := fmt.Fprintln(w, status)
	return err
}

func writeIndexedTable(w io.Writer, header string, table *hashmap.Table) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	var lines int
	var writeErr error
	table.Iterate(func(index int, key string) {
		if writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintf(w, "K: %s, V: %d\n", key, index)
		lines++
	})
	if writeErr != nil {
		return writeErr
	}

	_, err := fmt.Fprintf(w, "%d\n", table.Len())
	return err
}

// RenderTable renders rows (its first row conventionally the header row,
// its first column conventionally a row label) as a bordered table. Used by
// cmd/olivec's --dump-table flag to print a grammar.Table's Rows(), the
// same way the teacher's LL1Table.String() renders its own table.
func RenderTable(rows [][]string) string {
	return rosed.Edit("").
		InsertTableOpts(0, rows, 80, rosed.Options{
			TableBorders: true,
		}).
		String()
}
