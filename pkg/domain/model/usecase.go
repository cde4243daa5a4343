package model

import (
	"net/url"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ProgressFunc is called after each file of a deploy is fetched and classified.
type ProgressFunc func(done, total int, entry FileEntry)

type DeployInput struct {
	RepositoryRef
	Branch types.BranchName `json:"branch"`

	// BinaryBaseURL replaces the raw content host in URLs of binary files. The
	// raw content host is used when empty.
	BinaryBaseURL string `json:"binary_base_url"`

	Progress ProgressFunc `json:"-"`
}

// IsResolved returns true if owner, repo and branch are all set. Deploy does
// nothing for an unresolved input.
func (x *DeployInput) IsResolved() bool {
	return x.RepositoryRef.IsComplete() && x.Branch != ""
}

func (x *DeployInput) Validate() error {
	if err := x.RepositoryRef.Validate(); err != nil {
		return err
	}
	if x.Branch == "" {
		return goerr.Wrap(types.ErrValidationFailed, "branch is empty", goerr.V("repo", x.RepositoryRef))
	}
	if x.BinaryBaseURL != "" {
		u, err := url.Parse(x.BinaryBaseURL)
		if err != nil {
			return goerr.Wrap(types.ErrValidationFailed, "invalid binary base URL", goerr.V("url", x.BinaryBaseURL))
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return goerr.Wrap(types.ErrValidationFailed, "binary base URL must be http or https", goerr.V("url", x.BinaryBaseURL))
		}
	}
	return nil
}
