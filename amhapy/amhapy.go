package amhapy

// Translate converts AmhaPy source text to Python source text. It is the
// composition of Lex and Transpile; the first error encountered is
// returned.
func Translate(source string) (string, error) {
	tokens, err := Lex(source)
	if err != nil {
		return "", err
	}
	return Transpile(tokens)
}
