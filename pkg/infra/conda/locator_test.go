package conda_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/joshuaeveleth/condaci/pkg/domain/model"
	"github.com/joshuaeveleth/condaci/pkg/infra/conda"
)

type fakeRunner struct {
	calls  []model.Command
	out    string
	failed *model.ExecError
}

func (r *fakeRunner) Run(ctx context.Context, cmd model.Command, verbose bool) (string, error) {
	r.calls = append(r.calls, cmd)
	if r.failed != nil {
		return "", r.failed
	}
	return r.out, nil
}

func (r *fakeRunner) RunSequence(ctx context.Context, cmds ...model.Command) error {
	for _, cmd := range cmds {
		if _, err := r.Run(ctx, cmd, true); err != nil {
			return err
		}
	}
	return nil
}

func TestLocate(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{out: "/opt/miniconda/conda-bld/linux-64/pkg-1.0-0.tar.bz2\n"}

	artifact, err := conda.NewLocator(runner, "/opt/miniconda/bin/conda").Locate(ctx, "/pkg")
	gt.NoError(t, err)
	gt.Equal(t, artifact, "/opt/miniconda/conda-bld/linux-64/pkg-1.0-0.tar.bz2")

	gt.Equal(t, len(runner.calls), 1)
	gt.Equal(t, runner.calls[0],
		model.NewCommand("/opt/miniconda/bin/conda", "build", "--output", "/pkg"))
}

func TestLocate_UsesLastLine(t *testing.T) {
	ctx := context.Background()
	// conda-build sometimes prints notices before the package path
	runner := &fakeRunner{out: "WARNING: something deprecated\n/bld/pkg.tar.bz2\n"}

	artifact, err := conda.NewLocator(runner, "conda").Locate(ctx, "/pkg")
	gt.NoError(t, err)
	gt.Equal(t, artifact, "/bld/pkg.tar.bz2")
}

func TestLocate_CommandFailure(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{failed: &model.ExecError{
		Program:  "conda",
		Args:     []string{"build", "--output", "/pkg"},
		ExitCode: 1,
		Output:   "no recipe found",
	}}

	_, err := conda.NewLocator(runner, "conda").Locate(ctx, "/pkg")
	gt.Error(t, err)
}

func TestLocate_EmptyOutput(t *testing.T) {
	ctx := context.Background()
	runner := &fakeRunner{out: "\n"}

	_, err := conda.NewLocator(runner, "conda").Locate(ctx, "/pkg")
	gt.Error(t, err)
}
