package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type Option func(*deploymentRepository)

// WithCollectionPrefix prepends prefix to the top level collection so that
// several ghbox instances can share one database.
func WithCollectionPrefix(prefix string) Option {
	return func(r *deploymentRepository) {
		r.prefix = prefix
	}
}

// New connects to the Firestore database. The default database is used when
// databaseID is empty. Documents are stored as
// {prefix}repo/{owner}:{repo}/deployment/{id}.
func New(ctx context.Context, projectID, databaseID string, options ...Option) (interfaces.DeploymentRepository, error) {
	if databaseID == "" {
		databaseID = firestore.DefaultDatabaseID
	}

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	repo := &deploymentRepository{client: client}
	for _, opt := range options {
		opt(repo)
	}
	return repo, nil
}
