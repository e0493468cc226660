package lex

import (
	"strings"

	"github.com/dekarrin/olive/internal/olive/automaton"
)

// letterAlphabet lists every symbol accepted by the identifier DFA: the
// 52 ASCII letters, per spec's non-goal ruling out Unicode-class
// identifiers.
func letterAlphabet() []rune {
	letters := make([]rune, 0, 52)
	for c := 'a'; c <= 'z'; c++ {
		letters = append(letters, c)
	}
	for c := 'A'; c <= 'Z'; c++ {
		letters = append(letters, c)
	}
	return letters
}

// bodyAlphabet lists every symbol accepted inside a string/char literal
// body: letters, digits, and space. It excludes the quote and backslash
// characters, which are handled as distinct transitions by the literal
// DFAs.
func bodyAlphabet() []rune {
	body := letterAlphabet()
	for c := '0'; c <= '9'; c++ {
		body = append(body, c)
	}
	body = append(body, ' ')
	return body
}

func symbolToken(r rune) string {
	if r == ' ' {
		return `\s`
	}
	return string(r)
}

// buildIdentifierDFADef renders the DFA-file-format definition of the
// identifier automaton: q0 --letter--> q1 --letter--> q1 (final), i.e. one
// or more letters and nothing else.
func buildIdentifierDFADef() string {
	var sb strings.Builder
	letters := letterAlphabet()

	alphaToks := make([]string, len(letters))
	for i, r := range letters {
		alphaToks[i] = symbolToken(r)
	}
	sb.WriteString(strings.Join(alphaToks, " "))
	sb.WriteString("\n0 1\n0\n1\n")
	for _, r := range letters {
		sb.WriteString("0 " + symbolToken(r) + " 1\n")
		sb.WriteString("1 " + symbolToken(r) + " 1\n")
	}
	return sb.String()
}

// buildNumberDFADef renders the DFA-file-format definition of the number
// automaton. It accepts "0", any unsigned sequence of digits not starting
// with a redundant leading zero, and any such nonzero number prefixed with
// a single '+' or '-' sign ("+0" and "-0" are rejected) — see spec §8's
// accept/reject table.
func buildNumberDFADef() string {
	var sb strings.Builder

	alphaToks := []string{}
	for c := '0'; c <= '9'; c++ {
		alphaToks = append(alphaToks, string(c))
	}
	alphaToks = append(alphaToks, "+", "-")
	sb.WriteString(strings.Join(alphaToks, " "))
	sb.WriteString("\n0 1 2 3 4\n0\n1 2 4\n")

	sb.WriteString("0 0 1\n")
	for c := '1'; c <= '9'; c++ {
		sb.WriteString("0 " + string(c) + " 2\n")
	}
	for c := '0'; c <= '9'; c++ {
		sb.WriteString("2 " + string(c) + " 2\n")
	}
	sb.WriteString("0 + 3\n")
	sb.WriteString("0 - 3\n")
	for c := '1'; c <= '9'; c++ {
		sb.WriteString("3 " + string(c) + " 4\n")
	}
	for c := '0'; c <= '9'; c++ {
		sb.WriteString("4 " + string(c) + " 4\n")
	}
	return sb.String()
}

// buildStringDFADef renders the DFA-file-format definition of the string
// literal automaton: a `"`-delimited run of letters/digits/space with
// `\"` and `\\` escapes, per spec §8's accept/reject table.
func buildStringDFADef() string {
	var sb strings.Builder
	body := bodyAlphabet()

	alphaToks := []string{`"`, `\`}
	for _, r := range body {
		alphaToks = append(alphaToks, symbolToken(r))
	}
	sb.WriteString(strings.Join(alphaToks, " "))
	sb.WriteString("\n0 1 2 3\n0\n2\n")

	sb.WriteString(`0 " 1` + "\n")
	sb.WriteString(`1 " 2` + "\n")
	sb.WriteString(`1 \ 3` + "\n")
	for _, r := range body {
		sb.WriteString("1 " + symbolToken(r) + " 1\n")
	}
	sb.WriteString(`3 " 1` + "\n")
	sb.WriteString(`3 \ 1` + "\n")
	return sb.String()
}

// buildCharDFADef renders the DFA-file-format definition of the char
// literal automaton: a `'`-delimited single letter/digit/space or escaped
// `\'`/`\\`, per spec §8's accept/reject table.
func buildCharDFADef() string {
	var sb strings.Builder
	body := bodyAlphabet()

	alphaToks := []string{`'`, `\`}
	for _, r := range body {
		alphaToks = append(alphaToks, symbolToken(r))
	}
	sb.WriteString(strings.Join(alphaToks, " "))
	sb.WriteString("\n0 1 2 3 4\n0\n4\n")

	sb.WriteString(`0 ' 1` + "\n")
	for _, r := range body {
		sb.WriteString("1 " + symbolToken(r) + " 2\n")
	}
	sb.WriteString(`1 \ 3` + "\n")
	sb.WriteString(`3 ' 2` + "\n")
	sb.WriteString(`3 \ 2` + "\n")
	sb.WriteString(`2 ' 4` + "\n")
	return sb.String()
}

func mustBuildDFA(def string) *automaton.DFA {
	d, err := automaton.ParseString(def)
	if err != nil {
		panic("built-in DFA failed to parse: " + err.Error())
	}
	return d
}

// builtinDFAs holds the four automata the scanner uses to validate
// identifier and literal shapes (spec §4.3).
type builtinDFAs struct {
	identifier *automaton.DFA
	number     *automaton.DFA
	str        *automaton.DFA
	char       *automaton.DFA
}

func newBuiltinDFAs() builtinDFAs {
	return builtinDFAs{
		identifier: mustBuildDFA(buildIdentifierDFADef()),
		number:     mustBuildDFA(buildNumberDFADef()),
		str:        mustBuildDFA(buildStringDFADef()),
		char:       mustBuildDFA(buildCharDFADef()),
	}
}
