/*
Olivec compiles a single Olive program through the scanner and LL(1) parser
and writes the token table and parse tree to disk.

Usage:

	olivec [flags] [PROGRAM]

PROGRAM is a program stem resolved against the configured programs
directory and file extension; if omitted, the configured default program
is used.

The flags are:

	-v, --version
		Give the current version of Olivec and then exit.

	-c, --config FILE
		Load CLI configuration (programs directory, file extension, default
		program) from the given TOML file. If not given, built-in defaults
		are used.

	-g, --grammar FILE
		Load the LL(1) grammar from the given file. Required.

	-o, --out-dir DIR
		Write the token-table and parse-tree output files to DIR instead of
		alongside the input program.

	-t, --trace
		On a syntax error, print the parser's work-stack trace to stderr.

	-d, --dump-table
		Print the constructed LL(1) parsing table to stdout before
		scanning or parsing.

Exit code 0 on success, non-zero on any reported error.
*/
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pterm/pterm"
	"github.com/spf13/pflag"

	"github.com/dekarrin/olive/internal/olive/config"
	"github.com/dekarrin/olive/internal/olive/grammar"
	"github.com/dekarrin/olive/internal/olive/lex"
	"github.com/dekarrin/olive/internal/olive/output"
	"github.com/dekarrin/olive/internal/olive/parse"
	"github.com/dekarrin/olive/internal/olive/version"
)

const (
	// ExitSuccess indicates a successful compile.
	ExitSuccess = iota

	// ExitConfigError indicates a problem loading configuration.
	ExitConfigError

	// ExitIOError indicates a source, grammar, or output file could not be
	// read or written.
	ExitIOError

	// ExitLexError indicates the source had a lexical error.
	ExitLexError

	// ExitGrammarError indicates the grammar file was malformed or not
	// LL(1).
	ExitGrammarError

	// ExitSyntaxError indicates the source had a syntax error.
	ExitSyntaxError
)

var (
	returnCode    int     = ExitSuccess
	flagVersion   *bool   = pflag.BoolP("version", "v", false, "Give the current version of Olivec and then exit")
	flagConfig    *string = pflag.StringP("config", "c", "", "Load CLI configuration from the given TOML file")
	flagGrammar   *string = pflag.StringP("grammar", "g", "", "Load the LL(1) grammar from the given file")
	flagOutDir    *string = pflag.StringP("out-dir", "o", "", "Write output files to DIR instead of alongside the input program")
	flagTrace     *bool   = pflag.BoolP("trace", "t", false, "On a syntax error, print the parser's work-stack trace")
	flagDumpTable *bool   = pflag.BoolP("dump-table", "d", false, "Print the constructed LL(1) parsing table to stdout")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	runID := uuid.NewString()[:8]
	log.SetPrefix(fmt.Sprintf("[olivec %s] ", runID))

	cfg := config.Default()
	if *flagConfig != "" {
		loaded, err := config.Load(*flagConfig)
		if err != nil {
			log.Printf("ERROR: load config: %s", err.Error())
			returnCode = ExitConfigError
			return
		}
		cfg = loaded
	}

	var stem string
	if pflag.NArg() > 0 {
		stem = pflag.Arg(0)
	}
	programPath := cfg.ResolveProgramPath(stem)

	if *flagGrammar == "" {
		log.Printf("ERROR: --grammar is required")
		returnCode = ExitGrammarError
		return
	}

	if err := run(programPath, *flagGrammar, outDirFor(*flagOutDir, programPath)); err != nil {
		log.Printf("ERROR: %s", err.Error())
		returnCode = exitCodeFor(err)
		pterm.Error.Println(err.Error())
		return
	}

	pterm.Success.Println("compiled " + programPath)
}

func outDirFor(flagValue, programPath string) string {
	if flagValue != "" {
		return flagValue
	}
	return filepath.Dir(programPath)
}

// run loads the grammar, scans source, parses it, and writes the token
// table and parse tree output files (spec §6) into outDir.
func run(programPath, grammarPath, outDir string) error {
	source, err := os.ReadFile(programPath)
	if err != nil {
		return fmt.Errorf("read program: %w", err)
	}

	grammarFile, err := os.Open(grammarPath)
	if err != nil {
		return fmt.Errorf("open grammar: %w", err)
	}
	defer grammarFile.Close()

	g, err := grammar.Parse(grammarFile)
	if err != nil {
		return fmt.Errorf("load grammar: %w", err)
	}
	table, err := g.LLParseTable()
	if err != nil {
		return fmt.Errorf("build parsing table: %w", err)
	}
	if *flagDumpTable {
		fmt.Println(output.RenderTable(table.Rows()))
	}

	result, scanErr := lex.Scan(string(source))

	stem := strings.TrimSuffix(filepath.Base(programPath), filepath.Ext(programPath))
	if err := writeTokenFile(outDir, stem, result, scanErr); err != nil {
		return fmt.Errorf("write token output: %w", err)
	}
	if scanErr != nil {
		return scanErr
	}

	tree, parseErr := parse.Parse(g, table, result.Tokens)
	if parseErr != nil {
		if *flagTrace {
			if synErr, ok := parseErr.(*parse.SyntaxError); ok {
				fmt.Fprint(os.Stderr, synErr.FullMessage())
			}
		}
		return parseErr
	}

	if err := writeParseTreeFile(outDir, stem, tree); err != nil {
		return fmt.Errorf("write parse tree output: %w", err)
	}

	return nil
}

func writeTokenFile(outDir, stem string, result lex.Result, scanErr error) error {
	path := filepath.Join(outDir, stem+".tokens.txt")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return output.WriteTokens(f, result, scanErr)
}

func writeParseTreeFile(outDir, stem string, tree *parse.Tree) error {
	path := filepath.Join(outDir, stem+".tree.txt")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return output.WriteParseTree(f, tree)
}

func exitCodeFor(err error) int {
	var lexErr *lex.LexError
	var formatErr *grammar.FormatError
	var ll1Err *grammar.ErrNotLL1
	var synErr *parse.SyntaxError

	switch {
	case errors.As(err, &lexErr):
		return ExitLexError
	case errors.As(err, &formatErr), errors.As(err, &ll1Err):
		return ExitGrammarError
	case errors.As(err, &synErr):
		return ExitSyntaxError
	default:
		return ExitIOError
	}
}
