package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/model"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/utils/errutil"
	"github.com/m-mizutani/ghbox/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// recordDeployment saves a history record of a created sandbox. Failures are
// reported but do not fail the deploy.
func (x *UseCase) recordDeployment(ctx context.Context, input *model.DeployInput, result *model.SandboxResult, manifest model.Manifest) {
	text, binary := manifest.Count()
	deployment := &model.Deployment{
		ID:            types.NewDeploymentID(),
		Owner:         input.Owner,
		Repo:          input.Repo,
		Branch:        input.Branch,
		BinaryBaseURL: input.BinaryBaseURL,
		SandboxID:     result.ID,
		TextFiles:     text,
		BinaryFiles:   binary,
		CreatedAt:     logging.CtxTime(ctx).UTC(),
	}

	if repo := x.clients.DeploymentRepository(); repo != nil {
		if err := repo.PutDeployment(ctx, deployment); err != nil {
			errutil.HandleError(ctx, "failed to save deployment history", err)
		}
	}

	if bq := x.clients.BigQuery(); bq != nil {
		if err := insertDeployment(ctx, bq, deployment); err != nil {
			errutil.HandleError(ctx, "failed to insert deployment to BigQuery", err)
		}
	}
}

func insertDeployment(ctx context.Context, bq interfaces.BigQuery, deployment *model.Deployment) error {
	schema, err := createOrUpdateBigQueryTable(ctx, bq, deployment)
	if err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, deployment); err != nil {
		return goerr.Wrap(err, "failed to insert deployment", goerr.V("id", deployment.ID))
	}

	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, deployment *model.Deployment) (bigquery.Schema, error) {
	schema, err := bqs.Infer(deployment)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer deployment schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}
