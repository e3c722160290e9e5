package amhapy

import (
	"fmt"
	"strings"
)

// printSpacingFixes are the textual cleanups applied to each space-joined
// logical line, in this order. They undo the spurious gaps that naive
// joining puts around punctuation. The fixes are not expression-aware: the
// same substrings inside string literals are rewritten too.
var printSpacingFixes = [...][2]string{
	{" :", ":"},
	{" ,", ","},
	{" )", ")"},
	{"( ", "("},
	{"[ ", "["},
	{" ]", "]"},
	{". ", "."},
	{" .", "."},
}

// Transpile walks a lexed token sequence once and re-emits it as Python
// source. Indent and Dedent tokens only move a depth counter; content
// tokens buffer until a Newline closes the logical line, at which point the
// line is assembled with keyword spellings mapped to Python. A line whose
// first mapped token is "print" is rewritten into call form. Consecutive
// blank lines collapse to one.
//
// Token sequences produced by Lex always keep Indent and Dedent balanced; a
// hand-built sequence that closes more blocks than it opens is rejected
// with *TranspileError.
func Transpile(tokens []Token) (string, error) {
	var (
		lines []string
		buf   []Token
		depth int
	)

	flush := func() error {
		line, err := assembleLine(buf, depth)
		if err != nil {
			return err
		}
		lines = append(lines, line)
		buf = buf[:0]
		return nil
	}

	for _, tok := range tokens {
		switch tok.Type {
		case TokenIndent:
			depth++
		case TokenDedent:
			depth--
		case TokenNewline:
			if len(buf) > 0 {
				if err := flush(); err != nil {
					return "", err
				}
				break
			}
			// Blank logical line: keep at most one in a row.
			if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) != "" {
				pad, err := indentation(depth)
				if err != nil {
					return "", err
				}
				lines = append(lines, pad)
			}
		default:
			buf = append(buf, tok)
		}
	}

	// A final line without a trailing Newline still assembles.
	if len(buf) > 0 {
		if err := flush(); err != nil {
			return "", err
		}
	}

	return strings.Join(lines, "\n"), nil
}

func assembleLine(buf []Token, depth int) (string, error) {
	pad, err := indentation(depth)
	if err != nil {
		return "", err
	}
	if len(buf) == 0 {
		return pad, nil
	}

	mapped := make([]string, len(buf))
	for i, tok := range buf {
		if tok.Type == TokenKeyword {
			mapped[i] = PythonSpelling(tok.Literal)
			continue
		}
		mapped[i] = tok.Literal
	}

	if mapped[0] == pythonPrint {
		args := fixSpacing(strings.Join(mapped[1:], " "))
		return pad + pythonPrint + "(" + args + ")", nil
	}
	return pad + fixSpacing(strings.Join(mapped, " ")), nil
}

func fixSpacing(line string) string {
	for _, fix := range printSpacingFixes {
		line = strings.ReplaceAll(line, fix[0], fix[1])
	}
	return line
}

func indentation(depth int) (string, error) {
	if depth < 0 {
		return "", &TranspileError{Message: fmt.Sprintf("unbalanced block markers: depth %d", depth)}
	}
	return strings.Repeat(" ", depth*IndentUnit), nil
}
