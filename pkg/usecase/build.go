package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/joshuaeveleth/condaci/pkg/domain/interfaces"
	"github.com/joshuaeveleth/condaci/pkg/domain/model"
	"github.com/joshuaeveleth/condaci/pkg/domain/types"
)

type buildUseCase struct {
	runner      interfaces.Runner
	locator     interfaces.ArtifactLocator
	ciState     interfaces.CIStateSource
	condaPath   string
	binstarPath string
}

// NewBuild creates a BuildUseCase using the given conda and binstar binaries
func NewBuild(
	runner interfaces.Runner,
	locator interfaces.ArtifactLocator,
	ciState interfaces.CIStateSource,
	condaPath, binstarPath string,
) interfaces.BuildUseCase {
	return &buildUseCase{
		runner:      runner,
		locator:     locator,
		ciState:     ciState,
		condaPath:   condaPath,
		binstarPath: binstarPath,
	}
}

// BuildAndUpload builds the package at path, then uploads it when both
// credentials are present and the CI state permits. Missing credentials and
// ineligible builds are both a no-op success, not a failure; only the former
// announces itself.
func (uc *buildUseCase) BuildAndUpload(ctx context.Context, path, user string, key types.Secret) error {
	logger := ctxlog.From(ctx)

	logger.Info("building package", "path", path)
	if err := uc.build(ctx, path); err != nil {
		return err
	}

	if key == "" {
		logger.Info("no binstar key provided")
	}
	if user == "" {
		logger.Info("no binstar user provided")
	}
	if user == "" || key == "" {
		logger.Info("unable to upload to binstar")
		return nil
	}

	st, err := uc.ciState.Snapshot()
	if err != nil {
		return goerr.Wrap(err, "failed to read CI state")
	}

	if !CanUpload(ctx, st) {
		return nil
	}

	channel := ResolveChannel(ctx, st)

	artifact, err := uc.locator.Locate(ctx, path)
	if err != nil {
		return err
	}

	logger.Info("uploading package",
		"user", user,
		"channel", channel,
		"artifact", artifact,
	)
	return uc.publish(ctx, model.UploadTarget{
		Key:      key,
		User:     user,
		Channel:  channel,
		Artifact: artifact,
	})
}

func (uc *buildUseCase) build(ctx context.Context, path string) error {
	if err := uc.runner.RunSequence(ctx, model.NewCommand(uc.condaPath, "build", "-q", path)); err != nil {
		return goerr.Wrap(err, "failed to build package", goerr.V("path", path))
	}
	return nil
}

// publish uploads the artifact with forced overwrite. On failure the returned
// error is a fresh ExecError with the key scrubbed from its argument list and
// output; the original error value is not mutated.
func (uc *buildUseCase) publish(ctx context.Context, target model.UploadTarget) error {
	cmd := model.NewCommand(uc.binstarPath,
		"-t", string(target.Key),
		"upload", "--force",
		"-u", target.User,
		"-c", target.Channel,
		target.Artifact,
	)

	if _, err := uc.runner.Run(ctx, cmd, false); err != nil {
		var execErr *model.ExecError
		if errors.As(err, &execErr) {
			return execErr.Redacted(string(target.Key), types.KeyPlaceholder)
		}
		return err
	}
	return nil
}
