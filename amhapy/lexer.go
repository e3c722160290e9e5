package amhapy

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// IndentUnit is the number of columns one block level adds. Tabs in leading
// whitespace expand to stops of this width before measuring.
const IndentUnit = 4

// Lex scans AmhaPy source text into a flat token sequence. Block structure
// is reported through synthesized Indent and Dedent tokens driven by an
// indentation stack, so consumers never re-measure whitespace. Blank lines
// and comment-only lines produce no tokens at all.
//
// Errors are *IndentationError for block-structure violations and *LexError
// for text no matcher accepts; both carry the offending position and a
// rendered code frame.
func Lex(source string) ([]Token, error) {
	l := &lexer{stack: []int{0}}
	return l.run(source)
}

type lexer struct {
	tokens []Token
	stack  []int
	line   int
}

func (l *lexer) run(source string) ([]Token, error) {
	normalized := strings.ReplaceAll(source, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	for i, raw := range strings.Split(normalized, "\n") {
		l.line = i + 1
		if err := l.scanLine(raw); err != nil {
			return nil, err
		}
	}

	// Close every block still open at end of input.
	for len(l.stack) > 1 {
		l.stack = l.stack[:len(l.stack)-1]
		l.emit(TokenDedent, "", Position{Line: l.line, Column: 1})
	}
	return l.tokens, nil
}

func (l *lexer) scanLine(raw string) error {
	width, offset, rest := measureIndent(raw)
	if rest == "" || rest[0] == '#' {
		return nil
	}

	if width%IndentUnit != 0 {
		return l.indentError(raw, offset+1, fmt.Sprintf("indentation must be a multiple of %d spaces", IndentUnit))
	}
	if err := l.resolveIndent(raw, width, offset); err != nil {
		return err
	}

	endCol, err := l.scanTokens(raw, stripComment(rest), offset)
	if err != nil {
		return err
	}
	l.emit(TokenNewline, "\n", Position{Line: l.line, Column: endCol + 1})
	return nil
}

// measureIndent expands leading tabs to IndentUnit-column stops and returns
// the resulting width, the byte offset where content starts (spaces and tabs
// are single bytes, so it doubles as the rune count), and the content.
func measureIndent(raw string) (width, offset int, rest string) {
	for offset < len(raw) {
		switch raw[offset] {
		case ' ':
			width++
		case '\t':
			width += IndentUnit - width%IndentUnit
		default:
			return width, offset, raw[offset:]
		}
		offset++
	}
	return width, offset, ""
}

func (l *lexer) resolveIndent(raw string, width, offset int) error {
	top := l.stack[len(l.stack)-1]
	switch {
	case width > top:
		if width != top+IndentUnit {
			return l.indentError(raw, offset+1, "indentation increased by more than one level")
		}
		l.stack = append(l.stack, width)
		l.emit(TokenIndent, "", Position{Line: l.line, Column: 1})
	case width < top:
		for width < l.stack[len(l.stack)-1] {
			l.stack = l.stack[:len(l.stack)-1]
			l.emit(TokenDedent, "", Position{Line: l.line, Column: 1})
		}
		if width != l.stack[len(l.stack)-1] {
			return l.indentError(raw, offset+1, "indentation decreased to an inconsistent level")
		}
	}
	return nil
}

// stripComment drops everything from the first '#' that is not inside a
// string literal. Quotes respect backslash escapes.
func stripComment(content string) string {
	var quote byte
	for i := 0; i < len(content); i++ {
		switch c := content[i]; {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return content[:i]
		}
	}
	return content
}

func (l *lexer) scanTokens(raw, content string, offset int) (int, error) {
	pos := 0      // byte index into content
	col := offset // runes consumed from the raw line so far

	for pos < len(content) {
		c := content[pos]
		if c == ' ' || c == '\t' {
			pos++
			col++
			continue
		}

		rest := content[pos:]
		var lexeme string
		var tt TokenType

		// Matcher order matters: ">=" must win over ">", "==" over the
		// "=" punctuation mark.
		if c == '"' || c == '\'' {
			s, terminated := scanString(rest)
			if !terminated {
				return 0, l.lexError(raw, col+1, "unterminated string literal")
			}
			lexeme, tt = s, TokenString
		} else if op, ok := matchOperator(rest); ok {
			lexeme, tt = op, TokenOperator
		} else if strings.IndexByte(punctuationChars, c) >= 0 {
			lexeme, tt = rest[:1], TokenPunctuation
		} else if isDigit(c) {
			lexeme, tt = scanDigits(rest), TokenNumber
		} else if r, _ := utf8.DecodeRuneInString(rest); isIdentifierStart(r) {
			lexeme, tt = scanIdentifier(rest), TokenIdentifier
			if IsKeyword(lexeme) {
				tt = TokenKeyword
			}
		} else {
			return 0, l.lexError(raw, col+1, fmt.Sprintf("unexpected characters %q", invalidRun(rest)))
		}

		l.emit(tt, lexeme, Position{Line: l.line, Column: col + 1})
		pos += len(lexeme)
		col += utf8.RuneCountInString(lexeme)
	}
	return col, nil
}

var multiCharOperators = []string{">=", "<=", "==", "!="}

const (
	singleCharOperators = "><+-*/%"
	punctuationChars    = ":(),=[]."
)

func matchOperator(s string) (string, bool) {
	for _, op := range multiCharOperators {
		if strings.HasPrefix(s, op) {
			return op, true
		}
	}
	if strings.IndexByte(singleCharOperators, s[0]) >= 0 {
		return s[:1], true
	}
	return "", false
}

// scanString returns the quoted lexeme including its delimiters. Backslash
// escapes the next byte, so an escaped closing quote does not terminate.
func scanString(s string) (string, bool) {
	quote := s[0]
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case quote:
			return s[:i+1], true
		}
	}
	return "", false
}

func scanDigits(s string) string {
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return s[:end]
}

func scanIdentifier(s string) string {
	end := 0
	for end < len(s) {
		r, width := utf8.DecodeRuneInString(s[end:])
		if !isIdentifierRune(r) {
			break
		}
		end += width
	}
	return s[:end]
}

// invalidRun collects the stray characters up to the next whitespace or the
// next position where some matcher would succeed.
func invalidRun(s string) string {
	end := 0
	for end < len(s) {
		r, width := utf8.DecodeRuneInString(s[end:])
		if r == ' ' || r == '\t' {
			break
		}
		if end > 0 && startsToken(s[end:]) {
			break
		}
		end += width
	}
	return s[:end]
}

func startsToken(s string) bool {
	c := s[0]
	if c == '"' || c == '\'' || isDigit(c) {
		return true
	}
	if _, ok := matchOperator(s); ok {
		return true
	}
	if strings.IndexByte(punctuationChars, c) >= 0 {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return isIdentifierStart(r)
}

// Identifier alphabets: the Ethiopic block (U+1200..U+137F), ASCII letters,
// and underscore, with ASCII digits allowed after the first rune. Alphabets
// may mix within a single identifier.
func isIdentifierStart(r rune) bool {
	return isEthiopic(r) || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentifierRune(r rune) bool {
	return isIdentifierStart(r) || (r >= '0' && r <= '9')
}

func isEthiopic(r rune) bool {
	return r >= 0x1200 && r <= 0x137F
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func (l *lexer) emit(tt TokenType, literal string, pos Position) {
	l.tokens = append(l.tokens, Token{Type: tt, Literal: literal, Pos: pos})
}

func (l *lexer) indentError(raw string, column int, message string) error {
	return &IndentationError{Line: l.line, Column: column, Message: message, CodeFrame: codeFrame(raw, l.line, column)}
}

func (l *lexer) lexError(raw string, column int, message string) error {
	return &LexError{Line: l.line, Column: column, Message: message, CodeFrame: codeFrame(raw, l.line, column)}
}
