package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"

	"github.com/joshuaeveleth/condaci/pkg/domain/model"
	"github.com/joshuaeveleth/condaci/pkg/domain/types"
)

// CanUpload reports whether an upload is permitted for the given CI state.
// Only pull-request builds are blocked, and a build counts as a pull request
// only when the indicator is exactly the string "true". Any other value,
// including "false", "1", or empty, permits the upload.
func CanUpload(ctx context.Context, st model.CIState) bool {
	isPR := st.PullRequest == "true"
	canUpload := !isPR

	ctxlog.From(ctx).Info("resolved upload eligibility",
		"can_upload", canUpload,
		"pull_request", st.PullRequest,
	)
	return canUpload
}

// ResolveChannel picks the upload channel from the CI state. A non-empty tag
// equal to the branch marks a tagged release and resolves to the release
// channel; everything else resolves to the branch name verbatim, even when
// the branch is empty.
func ResolveChannel(ctx context.Context, st model.CIState) string {
	logger := ctxlog.From(ctx)
	logger.Info("resolving upload channel",
		"branch", st.Branch,
		"tag", st.Tag,
	)

	if st.Tag != "" && st.Branch == st.Tag {
		logger.Info("on a tagged release", "channel", types.ReleaseChannel)
		return types.ReleaseChannel
	}

	logger.Info("not on a tagged release, uploading to the branch channel", "channel", st.Branch)
	return st.Branch
}
