package firestore

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionRepo       = "repo"
	collectionDeployment = "deployment"
)

type deploymentRepository struct {
	client *firestore.Client
	prefix string
}

// ToFirestoreID converts owner and repo to a Firestore-safe document ID.
// Colon is used as separator because GitHub owner and repository names cannot contain it.
func ToFirestoreID(owner, repo string) (string, error) {
	if owner == "" || repo == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo is empty",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	if strings.Contains(owner, ":") || strings.Contains(repo, ":") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "owner or repo contains invalid character ':'",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	return owner + ":" + repo, nil
}

func (r *deploymentRepository) deployments(ref model.RepositoryRef) (*firestore.CollectionRef, error) {
	firestoreID, err := ToFirestoreID(ref.Owner, ref.Repo)
	if err != nil {
		return nil, err
	}

	return r.client.Collection(r.prefix + collectionRepo).Doc(firestoreID).Collection(collectionDeployment), nil
}

func (r *deploymentRepository) PutDeployment(ctx context.Context, deployment *model.Deployment) error {
	if deployment.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "deployment ID is empty")
	}

	col, err := r.deployments(deployment.Ref())
	if err != nil {
		return err
	}

	if _, err := col.Doc(deployment.ID.String()).Set(ctx, deployment); err != nil {
		return goerr.Wrap(err, "failed to put deployment",
			goerr.V("repo", deployment.Ref()),
			goerr.V("id", deployment.ID),
		)
	}

	return nil
}

func (r *deploymentRepository) GetDeployment(ctx context.Context, ref model.RepositoryRef, id types.DeploymentID) (*model.Deployment, error) {
	col, err := r.deployments(ref)
	if err != nil {
		return nil, err
	}

	snap, err := col.Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "deployment not found",
				goerr.V("repo", ref),
				goerr.V("id", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get deployment",
			goerr.V("repo", ref),
			goerr.V("id", id),
		)
	}

	var deployment model.Deployment
	if err := snap.DataTo(&deployment); err != nil {
		return nil, goerr.Wrap(err, "failed to decode deployment",
			goerr.V("repo", ref),
			goerr.V("id", id),
		)
	}

	return &deployment, nil
}

func (r *deploymentRepository) ListDeployments(ctx context.Context, ref model.RepositoryRef, limit int) ([]*model.Deployment, error) {
	col, err := r.deployments(ref)
	if err != nil {
		return nil, err
	}

	query := col.OrderBy("created_at", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	deployments := []*model.Deployment{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate deployments",
				goerr.V("repo", ref),
			)
		}

		var deployment model.Deployment
		if err := snap.DataTo(&deployment); err != nil {
			return nil, goerr.Wrap(err, "failed to decode deployment",
				goerr.V("repo", ref),
				goerr.V("docID", snap.Ref.ID),
			)
		}
		deployments = append(deployments, &deployment)
	}

	return deployments, nil
}
