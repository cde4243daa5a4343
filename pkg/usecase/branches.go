package usecase

import (
	"context"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ListBranches looks up branches of the repository once and selects the default branch.
func (x *UseCase) ListBranches(ctx context.Context, ref model.RepositoryRef) (*model.BranchSelection, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	branches, err := x.clients.GitHub().ListBranches(ctx, ref)
	if err != nil {
		return nil, goerr.Wrap(types.ErrLookup, "failed to list branches",
			goerr.V("repo", ref),
			goerr.V("cause", err),
		)
	}

	return model.NewBranchSelection(branches), nil
}
