package model

import "github.com/joshuaeveleth/condaci/pkg/domain/types"

// CIState is a read-only snapshot of the CI platform's build metadata.
// Fields are kept as opaque strings; decision logic compares them verbatim
// and never validates or normalizes them.
type CIState struct {
	PullRequest string // Pull-request indicator as reported, e.g. "true" or "false"
	Branch      string // Branch name under build
	Tag         string // Tag name, empty when the build is not tagged
}

// UploadTarget is the full set of values needed for a single publish call.
// It is assembled immediately before the upload and never stored.
type UploadTarget struct {
	Key      types.Secret
	User     string
	Channel  string
	Artifact string // On-disk path of the built package
}
