package interfaces

import (
	"context"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . DeploymentRepository

// DeploymentRepository stores history of successful deploys
type DeploymentRepository interface {
	PutDeployment(ctx context.Context, deployment *model.Deployment) error
	GetDeployment(ctx context.Context, ref model.RepositoryRef, id types.DeploymentID) (*model.Deployment, error)
	// ListDeployments returns deployments of the repository, newest first. limit <= 0 means no limit.
	ListDeployments(ctx context.Context, ref model.RepositoryRef, limit int) ([]*model.Deployment, error)
}
