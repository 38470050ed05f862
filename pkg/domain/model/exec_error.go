package model

import (
	"fmt"
	"strings"
)

// ExecError is the single failure kind for external command execution. It
// carries everything an operator needs to reproduce the failure: the program,
// its arguments, the exit code, and the combined stdout/stderr output.
type ExecError struct {
	Program  string
	Args     []string
	ExitCode int
	Output   string
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("command %q failed with exit code %d", e.CommandLine(), e.ExitCode)
}

// CommandLine renders the failing invocation as a single line
func (e *ExecError) CommandLine() string {
	return strings.Join(append([]string{e.Program}, e.Args...), " ")
}

// Redacted returns a new ExecError with every occurrence of secret replaced
// by placeholder, in both the argument list and the captured output. The
// receiver is left untouched.
func (e *ExecError) Redacted(secret, placeholder string) *ExecError {
	args := make([]string, len(e.Args))
	for i, arg := range e.Args {
		if secret != "" && arg == secret {
			args[i] = placeholder
			continue
		}
		args[i] = arg
	}
	output := e.Output
	if secret != "" {
		output = strings.ReplaceAll(output, secret, placeholder)
	}
	return &ExecError{
		Program:  e.Program,
		Args:     args,
		ExitCode: e.ExitCode,
		Output:   output,
	}
}
