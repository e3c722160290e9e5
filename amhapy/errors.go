package amhapy

import (
	"fmt"
	"strings"
)

// IndentationError reports a structural violation of the 4-column block
// discipline: indentation that is not a multiple of the block unit, a jump
// of more than one level, or a dedent to a depth never opened.
type IndentationError struct {
	Line      int
	Column    int
	Message   string
	CodeFrame string
}

func (e *IndentationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "indentation error (line %d): %s", e.Line, e.Message)
	if e.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(e.CodeFrame)
	}
	return b.String()
}

// LexError reports source text that no token matcher accepts, such as a
// stray character run or an unterminated string literal.
type LexError struct {
	Line      int
	Column    int
	Message   string
	CodeFrame string
}

func (e *LexError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "lex error (line %d): %s", e.Line, e.Message)
	if e.CodeFrame != "" {
		b.WriteString("\n")
		b.WriteString(e.CodeFrame)
	}
	return b.String()
}

// TranspileError reports a token sequence the transpiler cannot render,
// which for well-formed lexer output only happens when hand-built sequences
// close more blocks than they open.
type TranspileError struct {
	Message string
}

func (e *TranspileError) Error() string {
	return "transpile error: " + e.Message
}
