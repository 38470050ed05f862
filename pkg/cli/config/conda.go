package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// defaultPlugins are the conda packages required for building and uploading
var defaultPlugins = []string{"conda-build", "jinja2", "binstar"}

// Conda holds the conda installation configuration. Values resolve with
// CLI flags taking precedence over the optional TOML defaults file, which
// takes precedence over the built-in defaults.
type Conda struct {
	Prefix     string
	ConfigFile string
}

// Flags returns CLI flags for conda configuration
func (c *Conda) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "prefix",
			Usage:       "Miniconda install directory (default: ~/miniconda)",
			Destination: &c.Prefix,
			Sources:     cli.EnvVars("CONDACI_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to the condaci defaults file",
			Value:       "condaci.toml",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("CONDACI_CONFIG"),
		},
	}
}

// CondaSettings is the resolved conda configuration
type CondaSettings struct {
	Prefix  string
	Plugins []string
}

// CondaBin returns the path of the conda binary under the install prefix
func (s *CondaSettings) CondaBin() string {
	return filepath.Join(s.Prefix, "bin", "conda")
}

// BinstarBin returns the path of the binstar binary under the install prefix
func (s *CondaSettings) BinstarBin() string {
	return filepath.Join(s.Prefix, "bin", "binstar")
}

type condaFile struct {
	Prefix  string   `toml:"prefix"`
	Plugins []string `toml:"plugins"`
}

// Resolve merges flag values, the defaults file, and built-in defaults into
// the effective settings. A missing defaults file is not an error.
func (c *Conda) Resolve() (*CondaSettings, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to resolve home directory")
	}

	settings := &CondaSettings{
		Prefix:  filepath.Join(home, "miniconda"),
		Plugins: defaultPlugins,
	}

	raw, err := os.ReadFile(c.ConfigFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, goerr.Wrap(err, "failed to read defaults file", goerr.V("path", c.ConfigFile))
		}
	} else {
		var file condaFile
		if err := toml.Unmarshal(raw, &file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse defaults file", goerr.V("path", c.ConfigFile))
		}
		if file.Prefix != "" {
			settings.Prefix = file.Prefix
		}
		if len(file.Plugins) > 0 {
			settings.Plugins = file.Plugins
		}
	}

	if c.Prefix != "" {
		settings.Prefix = c.Prefix
	}

	return settings, nil
}
