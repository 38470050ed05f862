package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/joshuaeveleth/condaci/pkg/domain/model"
)

func TestCommand(t *testing.T) {
	cmd := model.NewCommand("conda", "build", "-q", "/pkg")

	gt.Equal(t, cmd.Program, "conda")
	gt.Equal(t, cmd.Tokens(), []string{"conda", "build", "-q", "/pkg"})
	gt.Equal(t, cmd.String(), "conda build -q /pkg")
}

func TestCommand_NoArgs(t *testing.T) {
	cmd := model.NewCommand("wget")

	gt.Equal(t, cmd.Tokens(), []string{"wget"})
	gt.Equal(t, cmd.String(), "wget")
}
