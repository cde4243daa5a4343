package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub Sandbox BigQuery

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
)

// GitHub is a read-only client of the source host.
type GitHub interface {
	// ListBranches returns branch names of the repository in the order the API returns them.
	ListBranches(ctx context.Context, ref model.RepositoryRef) ([]types.BranchName, error)

	// ListBlobPaths returns paths of all blob entries of the branch's recursive tree, in tree order.
	ListBlobPaths(ctx context.Context, ref model.RepositoryRef, branch types.BranchName) ([]string, error)
}

// Sandbox creates a sandbox from a complete manifest.
type Sandbox interface {
	Define(ctx context.Context, req *model.DefineRequest) (types.SandboxID, error)
}

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}
