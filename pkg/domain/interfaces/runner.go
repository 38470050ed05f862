package interfaces

import (
	"context"

	"github.com/joshuaeveleth/condaci/pkg/domain/model"
)

// Runner executes external commands. Implementations block until the child
// process exits; there is no timeout or cancellation beyond what the caller
// installs on the context.
type Runner interface {
	// Run executes a single command and returns its combined stdout/stderr
	// output. When verbose, the command line is echoed before execution and
	// the captured output after. A non-zero exit surfaces as *model.ExecError.
	Run(ctx context.Context, cmd model.Command, verbose bool) (string, error)

	// RunSequence executes commands in order, verbosely, stopping at the
	// first failure. Commands after the failure point are never started.
	RunSequence(ctx context.Context, cmds ...model.Command) error
}

// ArtifactLocator resolves the on-disk path of the package that a build of
// the given source path produces
type ArtifactLocator interface {
	Locate(ctx context.Context, path string) (string, error)
}

// CIStateSource provides the CI platform's build metadata snapshot
type CIStateSource interface {
	Snapshot() (model.CIState, error)
}
