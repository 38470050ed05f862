package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/joshuaeveleth/condaci/pkg/cli/config"
)

func TestConda_Resolve_Defaults(t *testing.T) {
	cfg := &config.Conda{ConfigFile: filepath.Join(t.TempDir(), "missing.toml")}

	settings, err := cfg.Resolve()
	gt.NoError(t, err)

	home, err := os.UserHomeDir()
	gt.NoError(t, err)
	gt.Equal(t, settings.Prefix, filepath.Join(home, "miniconda"))
	gt.Equal(t, settings.Plugins, []string{"conda-build", "jinja2", "binstar"})
	gt.Equal(t, settings.CondaBin(), filepath.Join(home, "miniconda", "bin", "conda"))
	gt.Equal(t, settings.BinstarBin(), filepath.Join(home, "miniconda", "bin", "binstar"))
}

func TestConda_Resolve_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "condaci.toml")
	gt.NoError(t, os.WriteFile(file, []byte(
		"prefix = \"/opt/miniconda\"\nplugins = [\"conda-build\"]\n"), 0o644))

	cfg := &config.Conda{ConfigFile: file}

	settings, err := cfg.Resolve()
	gt.NoError(t, err)
	gt.Equal(t, settings.Prefix, "/opt/miniconda")
	gt.Equal(t, settings.Plugins, []string{"conda-build"})
}

func TestConda_Resolve_FlagBeatsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "condaci.toml")
	gt.NoError(t, os.WriteFile(file, []byte("prefix = \"/opt/miniconda\"\n"), 0o644))

	cfg := &config.Conda{Prefix: "/srv/conda", ConfigFile: file}

	settings, err := cfg.Resolve()
	gt.NoError(t, err)
	gt.Equal(t, settings.Prefix, "/srv/conda")
}

func TestConda_Resolve_BrokenFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "condaci.toml")
	gt.NoError(t, os.WriteFile(file, []byte("prefix = [broken"), 0o644))

	cfg := &config.Conda{ConfigFile: file}

	_, err := cfg.Resolve()
	gt.Error(t, err)
}
