package pyexec

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultInterpreter is the interpreter binary used when none is named.
const DefaultInterpreter = "python3"

// Runner executes Python source with a host interpreter and captures what
// the program writes to standard output.
type Runner struct {
	interpreter string
}

// NewRunner resolves the interpreter binary on PATH, falling back to
// DefaultInterpreter when name is empty. It fails when the binary is not
// installed so callers can degrade to transpile-only behavior up front.
func NewRunner(name string) (*Runner, error) {
	if name == "" {
		name = DefaultInterpreter
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("locate python interpreter: %w", err)
	}
	return &Runner{interpreter: path}, nil
}

// Run feeds source to the interpreter over stdin and returns the captured
// standard output. A non-zero exit becomes an *ExecError carrying the
// interpreter's stderr text; output produced before the failure is still
// returned alongside it.
func (r *Runner) Run(ctx context.Context, source string) (string, error) {
	cmd := exec.CommandContext(ctx, r.interpreter, "-")
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return stdout.String(), ctx.Err()
		}
		message := strings.TrimSpace(stderr.String())
		if message == "" {
			message = err.Error()
		}
		return stdout.String(), &ExecError{Stage: StageExecute, Message: message}
	}
	return stdout.String(), nil
}
