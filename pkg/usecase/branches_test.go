package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/ghbox/pkg/domain/mock"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/infra"
	"github.com/m-mizutani/ghbox/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestListBranches(t *testing.T) {
	t.Run("select master", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, ref model.RepositoryRef) ([]types.BranchName, error) {
				return []types.BranchName{"main", "master"}, nil
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		sel := gt.R1(uc.ListBranches(context.Background(), octocat)).NoError(t)
		gt.V(t, sel.Branches).Equal([]types.BranchName{"main", "master"})
		gt.V(t, sel.Selected).Equal(types.BranchName("master"))
	})

	t.Run("lookup failure", func(t *testing.T) {
		gh := &mock.GitHubMock{
			ListBranchesFunc: func(ctx context.Context, ref model.RepositoryRef) ([]types.BranchName, error) {
				return nil, types.ErrNotFound
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		_, err := uc.ListBranches(context.Background(), octocat)
		gt.True(t, errors.Is(err, types.ErrLookup))
	})

	t.Run("invalid ref", func(t *testing.T) {
		gh := &mock.GitHubMock{}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		_, err := uc.ListBranches(context.Background(), model.RepositoryRef{Owner: "octocat"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.A(t, gh.ListBranchesCalls()).Length(0)
	})
}
