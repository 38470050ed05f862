package config

import "github.com/urfave/cli/v3"

// Binstar holds the publishing credentials. Both are optional; omitting
// either disables the upload after a successful build.
type Binstar struct {
	User string
	Key  string
}

// Flags returns CLI flags for binstar configuration
func (c *Binstar) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "user",
			Aliases:     []string{"u"},
			Usage:       "Binstar user to upload to",
			Destination: &c.User,
			Sources:     cli.EnvVars("BINSTAR_USER"),
		},
		&cli.StringFlag{
			Name:        "key",
			Aliases:     []string{"k"},
			Usage:       "Binstar key for uploading",
			Destination: &c.Key,
			Sources:     cli.EnvVars("BINSTAR_KEY"),
		},
	}
}
