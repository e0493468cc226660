package parse

import (
	"fmt"
	"strings"
)

// SyntaxError is the parser's failure mode: no applicable production was
// found, or the next input token did not match the terminal on top of the
// work stack (spec §4.4, §7).
//
// StackTrace is a supplemental diagnostic (grounded on
// original_source/compiler/parser/src/models/parser.rs's
// print_stack_trace): the work stack's symbols at the moment of failure,
// top first.
type SyntaxError struct {
	Message    string
	Line       int
	StackTrace []string
}

func (e *SyntaxError) Error() string {
	return e.Message
}

// FullMessage renders the error together with its stack-trace snapshot,
// one symbol per line, for diagnostic output.
func (e *SyntaxError) FullMessage() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", e.Message)
	sb.WriteString("stack trace (top to bottom):\n")
	for _, sym := range e.StackTrace {
		fmt.Fprintf(&sb, "  %s\n", sym)
	}
	return sb.String()
}

func newSyntaxError(line int, stack []string, format string, args ...any) *SyntaxError {
	return &SyntaxError{
		Message:    fmt.Sprintf(format, args...),
		Line:       line,
		StackTrace: stack,
	}
}
