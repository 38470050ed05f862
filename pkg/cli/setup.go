package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/joshuaeveleth/condaci/pkg/cli/config"
	"github.com/joshuaeveleth/condaci/pkg/infra/shell"
	"github.com/joshuaeveleth/condaci/pkg/usecase"
)

func cmdSetup() *cli.Command {
	var (
		condaCfg config.Conda
		url      string
		channel  string
	)

	flags := append(condaCfg.Flags(),
		&cli.StringFlag{
			Name:        "url",
			Usage:       "URL to download the miniconda installer from",
			Destination: &url,
			Sources:     cli.EnvVars("CONDACI_MINICONDA_URL"),
		},
		&cli.StringFlag{
			Name:        "channel",
			Aliases:     []string{"c"},
			Usage:       "Extra channel to register for dependency resolution",
			Destination: &channel,
		},
	)

	return &cli.Command{
		Name:  "setup",
		Usage: "Provision the miniconda runtime on this agent",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if url == "" {
				return goerr.New("a miniconda installer URL is required for setup")
			}

			settings, err := condaCfg.Resolve()
			if err != nil {
				return err
			}

			uc := usecase.NewSetup(shell.New(), settings.Prefix, settings.Plugins)
			return uc.Provision(ctx, url, channel)
		},
	}
}
