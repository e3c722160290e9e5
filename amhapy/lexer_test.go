package amhapy

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func mustLex(t *testing.T, source string) []Token {
	t.Helper()
	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex failed: %v", err)
	}
	return tokens
}

// describe flattens a token stream into one comparable line. Structural
// tokens print as bare type names, content tokens carry their lexeme.
func describe(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		switch tok.Type {
		case TokenNewline, TokenIndent, TokenDedent:
			parts[i] = string(tok.Type)
		default:
			parts[i] = fmt.Sprintf("%s(%s)", tok.Type, tok.Literal)
		}
	}
	return strings.Join(parts, " ")
}

func TestLexSimpleAssignment(t *testing.T) {
	got := describe(mustLex(t, "x = 1\n"))
	want := "IDENTIFIER(x) PUNCTUATION(=) NUMBER(1) NEWLINE"
	if got != want {
		t.Fatalf("unexpected tokens:\n got  %s\n want %s", got, want)
	}
}

func TestLexKeywordClassification(t *testing.T) {
	got := describe(mustLex(t, "ከሆነ x ትልቅ 0:\n"))
	want := "KEYWORD(ከሆነ) IDENTIFIER(x) KEYWORD(ትልቅ) NUMBER(0) PUNCTUATION(:) NEWLINE"
	if got != want {
		t.Fatalf("unexpected tokens:\n got  %s\n want %s", got, want)
	}
}

func TestLexBlockStructure(t *testing.T) {
	source := "ከሆነ x:\n    አሳይ x\ny = 2\n"
	got := describe(mustLex(t, source))
	want := "KEYWORD(ከሆነ) IDENTIFIER(x) PUNCTUATION(:) NEWLINE " +
		"INDENT KEYWORD(አሳይ) IDENTIFIER(x) NEWLINE " +
		"DEDENT IDENTIFIER(y) PUNCTUATION(=) NUMBER(2) NEWLINE"
	if got != want {
		t.Fatalf("unexpected tokens:\n got  %s\n want %s", got, want)
	}
}

func TestLexEOFClosesOpenBlocks(t *testing.T) {
	tokens := mustLex(t, "ከሆነ x:\n    ከሆነ y:\n        አሳይ y")
	if len(tokens) < 2 {
		t.Fatalf("too few tokens: %d", len(tokens))
	}
	last, prev := tokens[len(tokens)-1], tokens[len(tokens)-2]
	if last.Type != TokenDedent || prev.Type != TokenDedent {
		t.Fatalf("expected two trailing dedents, got %s then %s", prev.Type, last.Type)
	}
}

func TestLexIndentDedentAlwaysBalanced(t *testing.T) {
	tokens := mustLex(t, SampleProgram)
	depth := 0
	for _, tok := range tokens {
		switch tok.Type {
		case TokenIndent:
			depth++
		case TokenDedent:
			depth--
		}
		if depth < 0 {
			t.Fatalf("dedent below level zero at line %d", tok.Pos.Line)
		}
	}
	if depth != 0 {
		t.Fatalf("unbalanced blocks: depth %d at end of input", depth)
	}
}

func TestLexSkipsBlankAndCommentLines(t *testing.T) {
	source := "ከሆነ x:\n\n  # stray comment at odd indentation\n    አሳይ x\n\t\n# done\n"
	got := describe(mustLex(t, source))
	want := "KEYWORD(ከሆነ) IDENTIFIER(x) PUNCTUATION(:) NEWLINE " +
		"INDENT KEYWORD(አሳይ) IDENTIFIER(x) NEWLINE DEDENT"
	if got != want {
		t.Fatalf("blank or comment line leaked into the stream:\n got  %s\n want %s", got, want)
	}
}

func TestLexTabsExpandToStops(t *testing.T) {
	tabbed := mustLex(t, "ከሆነ x:\n\tአሳይ x\n")
	spaced := mustLex(t, "ከሆነ x:\n    አሳይ x\n")
	if describe(tabbed) != describe(spaced) {
		t.Fatalf("tab indentation diverged:\n tab    %s\n spaces %s", describe(tabbed), describe(spaced))
	}

	// A space followed by a tab still lands on the 4-column stop.
	mixed := mustLex(t, "ከሆነ x:\n \tአሳይ x\n")
	if describe(mixed) != describe(spaced) {
		t.Fatalf("mixed indentation diverged:\n mixed  %s\n spaces %s", describe(mixed), describe(spaced))
	}
}

func TestLexTrailingCommentStripped(t *testing.T) {
	got := describe(mustLex(t, "x = 1 # ቁጥር\n"))
	want := "IDENTIFIER(x) PUNCTUATION(=) NUMBER(1) NEWLINE"
	if got != want {
		t.Fatalf("comment not stripped:\n got  %s\n want %s", got, want)
	}
}

func TestLexHashInsideStringKept(t *testing.T) {
	tokens := mustLex(t, "አሳይ \"#1\" # real comment\n")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %s", describe(tokens))
	}
	if tokens[1].Type != TokenString || tokens[1].Literal != "\"#1\"" {
		t.Fatalf("string literal mangled: %s(%q)", tokens[1].Type, tokens[1].Literal)
	}
}

func TestLexStringEscapedQuote(t *testing.T) {
	tokens := mustLex(t, `x = "a\"b"` + "\n")
	if tokens[2].Type != TokenString || tokens[2].Literal != `"a\"b"` {
		t.Fatalf("escaped quote terminated the string: %q", tokens[2].Literal)
	}
}

func TestLexSingleQuotedString(t *testing.T) {
	tokens := mustLex(t, "x = 'ሰላም'\n")
	if tokens[2].Type != TokenString || tokens[2].Literal != "'ሰላም'" {
		t.Fatalf("unexpected string token: %s(%q)", tokens[2].Type, tokens[2].Literal)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	_, err := Lex("x = \"abc\n")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexError, got %v", err)
	}
	if lexErr.Line != 1 {
		t.Fatalf("expected error on line 1, got %d", lexErr.Line)
	}
	if !strings.Contains(lexErr.Message, "unterminated") {
		t.Fatalf("unexpected message: %q", lexErr.Message)
	}
}

func TestLexUnexpectedCharacters(t *testing.T) {
	_, err := Lex("x = 1\ny = @$\n")
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("expected LexError, got %v", err)
	}
	if lexErr.Line != 2 || lexErr.Column != 5 {
		t.Fatalf("expected error at 2:5, got %d:%d", lexErr.Line, lexErr.Column)
	}
	if !strings.Contains(lexErr.Message, "@$") {
		t.Fatalf("stray run missing from message: %q", lexErr.Message)
	}
	if !strings.Contains(lexErr.Error(), "--> line 2") {
		t.Fatalf("code frame missing from error: %q", lexErr.Error())
	}
}

func TestLexIndentNotMultipleRejected(t *testing.T) {
	_, err := Lex("ከሆነ x:\n  አሳይ x\n")
	var indentErr *IndentationError
	if !errors.As(err, &indentErr) {
		t.Fatalf("expected IndentationError, got %v", err)
	}
	if indentErr.Line != 2 || indentErr.Column != 3 {
		t.Fatalf("expected error at 2:3, got %d:%d", indentErr.Line, indentErr.Column)
	}
	if !strings.Contains(indentErr.Message, "multiple of 4") {
		t.Fatalf("unexpected message: %q", indentErr.Message)
	}
}

func TestLexIndentJumpRejected(t *testing.T) {
	_, err := Lex("ከሆነ x:\n        አሳይ x\n")
	var indentErr *IndentationError
	if !errors.As(err, &indentErr) {
		t.Fatalf("expected IndentationError, got %v", err)
	}
	if !strings.Contains(indentErr.Message, "more than one level") {
		t.Fatalf("unexpected message: %q", indentErr.Message)
	}
}

func TestLexDedentToUnknownLevelRejected(t *testing.T) {
	_, err := Lex("ከሆነ x:\n    አሳይ x\n  y = 1\n")
	var indentErr *IndentationError
	if !errors.As(err, &indentErr) {
		t.Fatalf("expected IndentationError, got %v", err)
	}
	if indentErr.Line != 3 {
		t.Fatalf("expected error on line 3, got %d", indentErr.Line)
	}
}

func TestLexMultiCharOperatorsWinOverSingle(t *testing.T) {
	got := describe(mustLex(t, "x >= 1\ny == 2\nz != 3\n"))
	want := "IDENTIFIER(x) OPERATOR(>=) NUMBER(1) NEWLINE " +
		"IDENTIFIER(y) OPERATOR(==) NUMBER(2) NEWLINE " +
		"IDENTIFIER(z) OPERATOR(!=) NUMBER(3) NEWLINE"
	if got != want {
		t.Fatalf("operator matching diverged:\n got  %s\n want %s", got, want)
	}
}

func TestLexMixedAlphabetIdentifier(t *testing.T) {
	tokens := mustLex(t, "ስምx_1 = 2\n")
	if tokens[0].Type != TokenIdentifier || tokens[0].Literal != "ስምx_1" {
		t.Fatalf("mixed-alphabet identifier split: %s", describe(tokens))
	}
}

func TestLexKeywordPrefixStaysIdentifier(t *testing.T) {
	// ለ alone is a keyword; ለሁለት is an ordinary identifier.
	tokens := mustLex(t, "ለሁለት = 2\n")
	if tokens[0].Type != TokenIdentifier || tokens[0].Literal != "ለሁለት" {
		t.Fatalf("keyword matching split an identifier: %s", describe(tokens))
	}
}

func TestLexPositions(t *testing.T) {
	tokens := mustLex(t, "አሳይ ስም\nx = 10\n")
	wantPos := []Position{
		{Line: 1, Column: 1}, // አሳይ
		{Line: 1, Column: 5}, // ስም, columns count runes
		{Line: 1, Column: 7}, // newline
		{Line: 2, Column: 1}, // x
		{Line: 2, Column: 3}, // =
		{Line: 2, Column: 5}, // 10
		{Line: 2, Column: 7}, // newline
	}
	if len(tokens) != len(wantPos) {
		t.Fatalf("expected %d tokens, got %s", len(wantPos), describe(tokens))
	}
	for i, want := range wantPos {
		if tokens[i].Pos != want {
			t.Fatalf("token %d (%s %q): got %d:%d, want %d:%d",
				i, tokens[i].Type, tokens[i].Literal,
				tokens[i].Pos.Line, tokens[i].Pos.Column, want.Line, want.Column)
		}
	}
}

func TestLexCRLFInput(t *testing.T) {
	unix := mustLex(t, "ከሆነ x:\n    አሳይ x\n")
	dos := mustLex(t, "ከሆነ x:\r\n    አሳይ x\r\n")
	if describe(unix) != describe(dos) {
		t.Fatalf("CRLF input diverged:\n unix %s\n dos  %s", describe(unix), describe(dos))
	}
}

func TestLexEmptySource(t *testing.T) {
	tokens := mustLex(t, "")
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %s", describe(tokens))
	}
}

func FuzzLexDoesNotPanic(f *testing.F) {
	f.Add("")
	f.Add(SampleProgram)
	f.Add("ከሆነ x:\n  y\n")
	f.Add("x = @@@\n")
	f.Add("x = \"unterminated\n")
	f.Add("\t \t x\n\n#\n        y")
	f.Add("አሳይ \"# not a comment\" # comment\r\n")

	f.Fuzz(func(t *testing.T, source string) {
		tokens, err := Lex(source)
		if err != nil {
			return
		}
		depth := 0
		for _, tok := range tokens {
			switch tok.Type {
			case TokenIndent:
				depth++
			case TokenDedent:
				depth--
			}
			if depth < 0 {
				t.Fatalf("dedent below level zero in %q", source)
			}
		}
		if depth != 0 {
			t.Fatalf("unbalanced indent markers in %q", source)
		}
	})
}
