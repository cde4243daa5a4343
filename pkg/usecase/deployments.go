package usecase

import (
	"context"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
)

// ListDeployments returns deployment history of the repository, newest first.
// It returns an empty list when no history repository is configured.
func (x *UseCase) ListDeployments(ctx context.Context, ref model.RepositoryRef, limit int) ([]*model.Deployment, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	repo := x.clients.DeploymentRepository()
	if repo == nil {
		return []*model.Deployment{}, nil
	}

	return repo.ListDeployments(ctx, ref, limit)
}
