package usecase

import (
	"context"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/joshuaeveleth/condaci/pkg/domain/interfaces"
	"github.com/joshuaeveleth/condaci/pkg/domain/model"
)

const installerFile = "miniconda.sh"

type setupUseCase struct {
	runner  interfaces.Runner
	prefix  string
	plugins []string
}

// NewSetup creates a SetupUseCase that installs miniconda under prefix and
// provisions the given build plugins
func NewSetup(runner interfaces.Runner, prefix string, plugins []string) interfaces.SetupUseCase {
	return &setupUseCase{
		runner:  runner,
		prefix:  prefix,
		plugins: plugins,
	}
}

// Provision downloads the installer, installs miniconda in batch mode,
// updates conda, installs the build plugins, and optionally registers an
// extra channel. Commands run in order and stop at the first failure; there
// is no rollback of already-completed steps.
func (uc *setupUseCase) Provision(ctx context.Context, url, channel string) error {
	logger := ctxlog.From(ctx)

	logger.Info("setting up miniconda",
		"url", url,
		"prefix", uc.prefix,
	)

	conda := filepath.Join(uc.prefix, "bin", "conda")

	// TODO: download with Go's http client so setup works on Windows agents.
	cmds := []model.Command{
		model.NewCommand("wget", "-nv", url, "-O", installerFile),
		model.NewCommand("python", installerFile, "-b", "-p", uc.prefix),
		model.NewCommand(conda, "update", "-q", "--yes", "conda"),
		model.NewCommand(conda, append([]string{"install", "-q", "--yes"}, uc.plugins...)...),
	}

	if channel != "" {
		logger.Info("registering extra channel for dependencies", "channel", channel)
		cmds = append(cmds, model.NewCommand(conda, "config", "--add", "channels", channel))
	} else {
		logger.Info("no channel configured, all dependencies must be sourceable from the default channel")
	}

	if err := uc.runner.RunSequence(ctx, cmds...); err != nil {
		return goerr.Wrap(err, "failed to provision miniconda", goerr.V("url", url))
	}
	return nil
}
