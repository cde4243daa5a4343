package model

import (
	"log/slog"
	"strings"

	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// RepositoryRef identifies a GitHub repository by owner (user or organization) and name.
type RepositoryRef struct {
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
}

// NewRepositoryRef trims surrounding spaces of owner and repo as a form input does.
func NewRepositoryRef(owner, repo string) RepositoryRef {
	return RepositoryRef{
		Owner: strings.TrimSpace(owner),
		Repo:  strings.TrimSpace(repo),
	}
}

// IsComplete returns true if both owner and repo are set.
func (x RepositoryRef) IsComplete() bool {
	return x.Owner != "" && x.Repo != ""
}

func (x RepositoryRef) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "owner is empty")
	}
	if x.Repo == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repo is empty", goerr.V("owner", x.Owner))
	}
	if strings.Contains(x.Owner, "/") || strings.Contains(x.Repo, "/") {
		return goerr.Wrap(types.ErrValidationFailed, "owner and repo must not contain '/'",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.Repo),
		)
	}
	return nil
}

func (x RepositoryRef) String() string {
	return x.Owner + "/" + x.Repo
}

func (x RepositoryRef) LogValue() slog.Value {
	return slog.StringValue(x.String())
}
