package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

type deploymentRepository struct {
	mu    sync.RWMutex
	repos map[string][]*model.Deployment
}

func copyDeployment(d *model.Deployment) *model.Deployment {
	copied := *d
	return &copied
}

func (r *deploymentRepository) PutDeployment(ctx context.Context, deployment *model.Deployment) error {
	ref := deployment.Ref()
	if !ref.IsComplete() || deployment.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "deployment has no repository or ID",
			goerr.V("repo", ref),
			goerr.V("id", deployment.ID),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := ref.String()
	for i, d := range r.repos[key] {
		if d.ID == deployment.ID {
			r.repos[key][i] = copyDeployment(deployment)
			return nil
		}
	}
	r.repos[key] = append(r.repos[key], copyDeployment(deployment))

	return nil
}

func (r *deploymentRepository) GetDeployment(ctx context.Context, ref model.RepositoryRef, id types.DeploymentID) (*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, d := range r.repos[ref.String()] {
		if d.ID == id {
			return copyDeployment(d), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found",
		goerr.V("repo", ref),
		goerr.V("id", id),
	)
}

func (r *deploymentRepository) ListDeployments(ctx context.Context, ref model.RepositoryRef, limit int) ([]*model.Deployment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	deployments := make([]*model.Deployment, 0, len(r.repos[ref.String()]))
	for _, d := range r.repos[ref.String()] {
		deployments = append(deployments, copyDeployment(d))
	}

	sort.SliceStable(deployments, func(i, j int) bool {
		return deployments[i].CreatedAt.After(deployments[j].CreatedAt)
	})

	if limit > 0 && len(deployments) > limit {
		deployments = deployments[:limit]
	}

	return deployments, nil
}
