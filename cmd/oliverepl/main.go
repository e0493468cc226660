/*
Oliverepl is an interactive read-eval-print loop over the Olive scanner and
LL(1) parser: each line entered is scanned and parsed against a
preloaded grammar, and the resulting token list and parse tree are printed
immediately. This is the "interactive menu UI" spec.md §1 places outside
the core; it calls the core only through the scanner/parser/output
packages' exported entry points, never touching their internals.

Usage:

	oliverepl --grammar FILE

Type a line of Olive source and press enter to scan and parse it. An empty
line or Ctrl-D exits.

The flags are:

	-g, --grammar FILE
		Load the LL(1) grammar from the given file. Required.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/dekarrin/olive/internal/olive/grammar"
	"github.com/dekarrin/olive/internal/olive/lex"
	"github.com/dekarrin/olive/internal/olive/output"
	"github.com/dekarrin/olive/internal/olive/parse"
)

var flagGrammar *string = pflag.StringP("grammar", "g", "", "Load the LL(1) grammar from the given file")

func main() {
	pflag.Parse()

	if *flagGrammar == "" {
		fmt.Fprintln(os.Stderr, "ERROR: --grammar is required")
		os.Exit(1)
	}

	g, table, err := loadGrammar(*flagGrammar)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		os.Exit(1)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt: "olive> ",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: create readline config: %s\n", err.Error())
		os.Exit(1)
	}
	defer rl.Close()

	runLoop(rl, g, table)
}

// runLoop reads lines until EOF or a blank line, scanning and parsing each
// one against g/table and printing the result to stdout.
func runLoop(rl *readline.Instance, g *grammar.Grammar, table *grammar.Table) {
	for {
		line, err := rl.Readline()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			}
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			return
		}

		evalLine(line, g, table)
	}
}

func evalLine(line string, g *grammar.Grammar, table *grammar.Table) {
	result, scanErr := lex.Scan(line)
	if err := output.WriteTokens(os.Stdout, result, scanErr); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: write tokens: %s\n", err.Error())
		return
	}
	if scanErr != nil {
		return
	}

	tree, parseErr := parse.Parse(g, table, result.Tokens)
	if parseErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", parseErr.Error())
		return
	}

	if err := output.WriteParseTree(os.Stdout, tree); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: write parse tree: %s\n", err.Error())
	}
}

func loadGrammar(path string) (*grammar.Grammar, *grammar.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := grammar.Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("load grammar: %w", err)
	}

	table, err := g.LLParseTable()
	if err != nil {
		return nil, nil, fmt.Errorf("build parsing table: %w", err)
	}

	return g, table, nil
}
