package amhapy

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	TokenKeyword     TokenType = "KEYWORD"
	TokenIdentifier  TokenType = "IDENTIFIER"
	TokenString      TokenType = "STRING"
	TokenNumber      TokenType = "NUMBER"
	TokenOperator    TokenType = "OPERATOR"
	TokenPunctuation TokenType = "PUNCTUATION"

	// Structural markers synthesized by the lexer. Newline ends every
	// logical line; Indent and Dedent open and close one block level and
	// carry no lexeme.
	TokenNewline TokenType = "NEWLINE"
	TokenIndent  TokenType = "INDENT"
	TokenDedent  TokenType = "DEDENT"
)

// Token captures one lexeme together with where it was scanned.
// String literals keep their quotes and raw escape sequences so the
// transpiler can re-emit them verbatim.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a 1-based line and rune column in the source text.
type Position struct {
	Line   int
	Column int
}
