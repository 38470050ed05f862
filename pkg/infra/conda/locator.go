package conda

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/joshuaeveleth/condaci/pkg/domain/interfaces"
	"github.com/joshuaeveleth/condaci/pkg/domain/model"
)

// Locator resolves the on-disk path of a built package by asking conda-build
// itself, via `conda build --output`. The build step does not report where it
// writes the artifact, so the upload path has to be resolved independently.
type Locator struct {
	runner    interfaces.Runner
	condaPath string
}

// NewLocator creates a Locator using the given conda binary
func NewLocator(runner interfaces.Runner, condaPath string) *Locator {
	return &Locator{
		runner:    runner,
		condaPath: condaPath,
	}
}

// Locate returns the path of the package that building the recipe at path
// produces. conda prints the path on the last line of its output.
func (l *Locator) Locate(ctx context.Context, path string) (string, error) {
	out, err := l.runner.Run(ctx, model.NewCommand(l.condaPath, "build", "--output", path), false)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve built package path", goerr.V("path", path))
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	artifact := strings.TrimSpace(lines[len(lines)-1])
	if artifact == "" {
		return "", goerr.New("conda reported no package path", goerr.V("path", path))
	}
	return artifact, nil
}
