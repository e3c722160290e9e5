// Package pyexec hands generated Python source to a host Python facility:
// gpython for in-process syntax validation and a python3 interpreter for
// execution. Failures surface as *ExecError, a category separate from the
// translator's own lexing and transpiling errors.
package pyexec

import (
	"fmt"
	"strings"

	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"
)

// Stages an ExecError can originate from.
const (
	StageSyntax  = "syntax"
	StageExecute = "execute"
)

// ExecError reports a failure raised by the host Python facility rather
// than by the translator.
type ExecError struct {
	Stage   string
	Message string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("python %s error: %s", e.Stage, e.Message)
}

// CheckSyntax parses source as a Python module without executing it, so
// malformed generated code is caught before any interpreter process is
// spawned.
func CheckSyntax(source string) error {
	if _, err := parser.Parse(strings.NewReader(source), "<amhapy>", py.ExecMode); err != nil {
		return &ExecError{Stage: StageSyntax, Message: err.Error()}
	}
	return nil
}
