package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/joshuaeveleth/condaci/pkg/cli/config"
	"github.com/joshuaeveleth/condaci/pkg/domain/types"
	condainfra "github.com/joshuaeveleth/condaci/pkg/infra/conda"
	"github.com/joshuaeveleth/condaci/pkg/infra/shell"
	"github.com/joshuaeveleth/condaci/pkg/infra/travis"
	"github.com/joshuaeveleth/condaci/pkg/usecase"
)

func cmdBuild() *cli.Command {
	var (
		condaCfg   config.Conda
		binstarCfg config.Binstar
		path       string
	)

	flags := append(condaCfg.Flags(), binstarCfg.Flags()...)
	flags = append(flags,
		&cli.StringFlag{
			Name:        "path",
			Aliases:     []string{"p"},
			Usage:       "Path to the conda build recipe",
			Destination: &path,
		},
	)

	return &cli.Command{
		Name:  "build",
		Usage: "Build a conda package and upload it when CI state permits",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			settings, err := condaCfg.Resolve()
			if err != nil {
				return err
			}

			runner := shell.New()
			uc := usecase.NewBuild(
				runner,
				condainfra.NewLocator(runner, settings.CondaBin()),
				travis.New(),
				settings.CondaBin(),
				settings.BinstarBin(),
			)
			return uc.BuildAndUpload(ctx, path, binstarCfg.User, types.Secret(binstarCfg.Key))
		},
	}
}
