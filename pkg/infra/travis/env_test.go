package travis_test

import (
	"os"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/joshuaeveleth/condaci/pkg/domain/types"
	"github.com/joshuaeveleth/condaci/pkg/infra/travis"
)

func TestSnapshot(t *testing.T) {
	t.Setenv(types.EnvPullRequest, "false")
	t.Setenv(types.EnvBranch, "release")
	t.Setenv(types.EnvTag, "release")

	st, err := travis.New().Snapshot()
	gt.NoError(t, err)
	gt.Equal(t, st.PullRequest, "false")
	gt.Equal(t, st.Branch, "release")
	gt.Equal(t, st.Tag, "release")
}

func TestSnapshot_EmptyValuesAreValid(t *testing.T) {
	t.Setenv(types.EnvPullRequest, "false")
	t.Setenv(types.EnvBranch, "master")
	t.Setenv(types.EnvTag, "")

	st, err := travis.New().Snapshot()
	gt.NoError(t, err)
	gt.Equal(t, st.Tag, "")
}

func TestSnapshot_MissingVariableIsFatal(t *testing.T) {
	// t.Setenv registers the restore, os.Unsetenv makes the variable absent
	t.Setenv(types.EnvPullRequest, "false")
	t.Setenv(types.EnvBranch, "master")
	t.Setenv(types.EnvTag, "")
	gt.NoError(t, os.Unsetenv(types.EnvBranch))

	_, err := travis.New().Snapshot()
	gt.Error(t, err)
}
