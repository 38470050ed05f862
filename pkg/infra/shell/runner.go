package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/m-mizutani/ctxlog"

	"github.com/joshuaeveleth/condaci/pkg/domain/model"
)

var echoColor = color.New(color.FgCyan)

// Runner executes external commands via os/exec, one child process per call.
// Combined stdout/stderr is always captured; verbose mode additionally echoes
// the command line and the captured output to the runner's writer.
type Runner struct {
	out io.Writer
}

// Option customizes a Runner
type Option func(*Runner)

// WithWriter sets the destination for verbose echo output (default: stdout)
func WithWriter(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// New creates a Runner
func New(opts ...Option) *Runner {
	r := &Runner{
		out: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a single command and returns its combined output. A non-zero
// exit or spawn failure surfaces as *model.ExecError carrying the captured
// output.
func (r *Runner) Run(ctx context.Context, cmd model.Command, verbose bool) (string, error) {
	if verbose {
		_, _ = echoColor.Fprintf(r.out, "> %s\n", cmd.String())
	}

	proc := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	out, err := proc.CombinedOutput()

	if verbose && len(out) > 0 {
		_, _ = r.out.Write(out)
	}

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return "", &model.ExecError{
			Program:  cmd.Program,
			Args:     cmd.Args,
			ExitCode: exitCode,
			Output:   string(out),
		}
	}

	return string(out), nil
}

// RunSequence executes commands in order, verbosely, and stops at the first
// failure. The failing command's captured output is logged for operator
// visibility before the error is returned unchanged; remaining commands are
// never started. Side effects of already-completed commands are not undone.
func (r *Runner) RunSequence(ctx context.Context, cmds ...model.Command) error {
	for _, cmd := range cmds {
		if _, err := r.Run(ctx, cmd, true); err != nil {
			var execErr *model.ExecError
			if errors.As(err, &execErr) {
				ctxlog.From(ctx).Error("command failed",
					"command", execErr.CommandLine(),
					"exit_code", execErr.ExitCode,
					"output", execErr.Output,
				)
			}
			return err
		}
	}
	return nil
}
