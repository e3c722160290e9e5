package amhapy

import (
	"fmt"
	"strconv"
	"strings"
)

// codeFrame renders the offending line with a gutter and a caret under the
// reported column. The lexer works line at a time, so callers pass the raw
// line text rather than the whole source. Column counts runes, 1-based.
func codeFrame(lineText string, line, column int) string {
	if line <= 0 {
		return ""
	}

	lineRunes := []rune(lineText)
	if column <= 0 {
		column = 1
	}
	if column > len(lineRunes)+1 {
		column = len(lineRunes) + 1
	}

	lineLabel := strconv.Itoa(line)
	gutterPad := strings.Repeat(" ", len(lineLabel))
	caretPad := strings.Repeat(" ", column-1)

	return fmt.Sprintf(
		"  --> line %d, column %d\n %s | %s\n %s | %s^",
		line,
		column,
		lineLabel,
		lineText,
		gutterPad,
		caretPad,
	)
}
