package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs all test cases for DeploymentRepository.
// This is the main entry point for testing any DeploymentRepository implementation
func TestAll(t *testing.T, repo interfaces.DeploymentRepository) {
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, repo)
	})
	t.Run("ListOrderAndLimit", func(t *testing.T) {
		TestListOrderAndLimit(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, repo)
	})
}

func newRef() model.RepositoryRef {
	return model.RepositoryRef{
		Owner: fmt.Sprintf("owner-%s", uuid.New().String()[:8]),
		Repo:  fmt.Sprintf("repo-%s", uuid.New().String()[:8]),
	}
}

func newDeployment(ref model.RepositoryRef, branch types.BranchName, createdAt time.Time) *model.Deployment {
	return &model.Deployment{
		ID:            types.NewDeploymentID(),
		Owner:         ref.Owner,
		Repo:          ref.Repo,
		Branch:        branch,
		BinaryBaseURL: "https://cdn.example.com",
		SandboxID:     types.SandboxID("sb-" + uuid.New().String()[:8]),
		TextFiles:     3,
		BinaryFiles:   1,
		// Truncated to microseconds as Firestore and PostgreSQL do.
		CreatedAt: createdAt.UTC().Truncate(time.Microsecond),
	}
}

// TestPutAndGet tests that a stored deployment can be retrieved as it was stored
func TestPutAndGet(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()
	ref := newRef()
	d := newDeployment(ref, "feature/foo", time.Now())

	gt.NoError(t, repo.PutDeployment(ctx, d))

	got := gt.R1(repo.GetDeployment(ctx, ref, d.ID)).NoError(t)
	gt.V(t, got.ID).Equal(d.ID)
	gt.V(t, got.Owner).Equal(d.Owner)
	gt.V(t, got.Repo).Equal(d.Repo)
	gt.V(t, got.Branch).Equal(d.Branch)
	gt.V(t, got.BinaryBaseURL).Equal(d.BinaryBaseURL)
	gt.V(t, got.SandboxID).Equal(d.SandboxID)
	gt.V(t, got.TextFiles).Equal(d.TextFiles)
	gt.V(t, got.BinaryFiles).Equal(d.BinaryFiles)
	gt.True(t, got.CreatedAt.Equal(d.CreatedAt))
}

// TestListOrderAndLimit tests that deployments are listed newest first and limited
func TestListOrderAndLimit(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()
	ref := newRef()
	other := newRef()
	base := time.Now().Add(-time.Hour)

	d1 := newDeployment(ref, "master", base)
	d2 := newDeployment(ref, "master", base.Add(time.Minute))
	d3 := newDeployment(ref, "dev", base.Add(2*time.Minute))
	gt.NoError(t, repo.PutDeployment(ctx, d2))
	gt.NoError(t, repo.PutDeployment(ctx, d1))
	gt.NoError(t, repo.PutDeployment(ctx, d3))
	gt.NoError(t, repo.PutDeployment(ctx, newDeployment(other, "master", base)))

	all := gt.R1(repo.ListDeployments(ctx, ref, 0)).NoError(t)
	gt.A(t, all).Length(3)
	gt.V(t, all[0].ID).Equal(d3.ID)
	gt.V(t, all[1].ID).Equal(d2.ID)
	gt.V(t, all[2].ID).Equal(d1.ID)

	limited := gt.R1(repo.ListDeployments(ctx, ref, 2)).NoError(t)
	gt.A(t, limited).Length(2)
	gt.V(t, limited[0].ID).Equal(d3.ID)
	gt.V(t, limited[1].ID).Equal(d2.ID)

	empty := gt.R1(repo.ListDeployments(ctx, newRef(), 0)).NoError(t)
	gt.A(t, empty).Length(0)
}

// TestOverwrite tests that putting a deployment with the same ID replaces it
func TestOverwrite(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()
	ref := newRef()
	d := newDeployment(ref, "master", time.Now())
	gt.NoError(t, repo.PutDeployment(ctx, d))

	updated := *d
	updated.SandboxID = "replaced"
	gt.NoError(t, repo.PutDeployment(ctx, &updated))

	got := gt.R1(repo.GetDeployment(ctx, ref, d.ID)).NoError(t)
	gt.V(t, got.SandboxID).Equal(types.SandboxID("replaced"))

	list := gt.R1(repo.ListDeployments(ctx, ref, 0)).NoError(t)
	gt.A(t, list).Length(1)
}

// TestNotFound tests error cases of lookups and invalid input
func TestNotFound(t *testing.T, repo interfaces.DeploymentRepository) {
	ctx := context.Background()

	_, err := repo.GetDeployment(ctx, newRef(), types.NewDeploymentID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = repo.PutDeployment(ctx, &model.Deployment{ID: types.NewDeploymentID()})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))
}
