package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
)

type UseCase interface {
	ListBranches(ctx context.Context, ref model.RepositoryRef) (*model.BranchSelection, error)
	Deploy(ctx context.Context, input *model.DeployInput) (*model.SandboxResult, error)
	ListDeployments(ctx context.Context, ref model.RepositoryRef, limit int) ([]*model.Deployment, error)
}
