package interfaces

import (
	"context"

	"github.com/joshuaeveleth/condaci/pkg/domain/types"
)

// SetupUseCase defines the miniconda environment provisioning operation
type SetupUseCase interface {
	// Provision downloads and installs the miniconda runtime, updates conda,
	// installs the build plugins, and optionally registers an extra channel
	Provision(ctx context.Context, url, channel string) error
}

// BuildUseCase defines the build-and-conditional-upload operation
type BuildUseCase interface {
	// BuildAndUpload builds the package at path and, when credentials are
	// present and the CI state permits, uploads the artifact
	BuildAndUpload(ctx context.Context, path, user string, key types.Secret) error
}
