package amhapy

import "sort"

// keywordMapping pairs an AmhaPy keyword spelling with the Python spelling
// it transpiles to.
type keywordMapping struct {
	amharic string
	python  string
}

// vocabulary is the fixed keyword set. Multi-word concepts use underscores
// so each spelling stays a single lexeme.
var vocabulary = []keywordMapping{
	{"አሳይ", "print"},
	{"ከሆነ", "if"},
	{"ያለበለዚያ", "else"},
	{"ያለበለዚያ_ከሆነ", "elif"},
	{"ለ", "for"},
	{"በ", "in"},
	{"ክልል", "range"},
	{"እስከሆነ", "while"},
	{"ሥራ", "def"},
	{"መመለስ", "return"},
	{"እውነት", "True"},
	{"ሐሰት", "False"},
	{"እና", "and"},
	{"ወይም", "or"},
	{"አይደለም", "not"},
	{"እኩል", "=="},
	{"እኩል_አይደለም", "!="},
	{"ትልቅ", ">"},
	{"ትንሽ", "<"},
	{"ትልቅ_ወይም_እኩል", ">="},
	{"ትንሽ_ወይም_እኩል", "<="},
}

// keywordTable is the lookup shared by the lexer (classification) and the
// transpiler (spelling substitution). Built once at process start.
var keywordTable = buildKeywordTable()

func buildKeywordTable() map[string]string {
	table := make(map[string]string, len(vocabulary))
	for _, kw := range vocabulary {
		table[kw.amharic] = kw.python
	}
	return table
}

// pythonPrint is the mapped spelling that triggers the call rewrite during
// line assembly.
const pythonPrint = "print"

// IsKeyword reports whether lexeme is one of the AmhaPy keyword spellings.
func IsKeyword(lexeme string) bool {
	_, ok := keywordTable[lexeme]
	return ok
}

// PythonSpelling returns the Python spelling for an AmhaPy keyword, or the
// lexeme unchanged when it is not in the vocabulary.
func PythonSpelling(lexeme string) string {
	if python, ok := keywordTable[lexeme]; ok {
		return python
	}
	return lexeme
}

// Keywords returns the AmhaPy keyword spellings in sorted order.
func Keywords() []string {
	spellings := make([]string, 0, len(vocabulary))
	for _, kw := range vocabulary {
		spellings = append(spellings, kw.amharic)
	}
	sort.Strings(spellings)
	return spellings
}
