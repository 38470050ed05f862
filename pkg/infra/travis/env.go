package travis

import (
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/joshuaeveleth/condaci/pkg/domain/model"
	"github.com/joshuaeveleth/condaci/pkg/domain/types"
)

// Source reads the CI build metadata from the process environment. It is the
// only place that touches environment variables; decision logic receives the
// snapshot as an explicit value.
type Source struct{}

// New creates a Source
func New() *Source {
	return &Source{}
}

// Snapshot reads the pull-request indicator, branch, and tag. Every variable
// must be present; on a build agent they always are, so absence is fatal.
func (s *Source) Snapshot() (model.CIState, error) {
	pr, err := lookup(types.EnvPullRequest)
	if err != nil {
		return model.CIState{}, err
	}
	branch, err := lookup(types.EnvBranch)
	if err != nil {
		return model.CIState{}, err
	}
	tag, err := lookup(types.EnvTag)
	if err != nil {
		return model.CIState{}, err
	}

	return model.CIState{
		PullRequest: pr,
		Branch:      branch,
		Tag:         tag,
	}, nil
}

func lookup(name string) (string, error) {
	v, ok := os.LookupEnv(name)
	if !ok {
		return "", goerr.New("required CI environment variable is not set", goerr.V("name", name))
	}
	return v, nil
}
