package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghbox/pkg/domain/interfaces"
	"github.com/m-mizutani/ghbox/pkg/domain/types"
	"github.com/m-mizutani/ghbox/pkg/infra/bq"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/option"
)

type BigQuery struct {
	projectID       types.GoogleProjectID
	datasetID       types.BQDatasetID
	tableID         types.BQTableID
	credentialsFile string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID to export deployments (optional)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("GHBOX_BIGQUERY_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("GHBOX_BIGQUERY_DATASET_ID"),
			Destination: (*string)(&x.datasetID),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("GHBOX_BIGQUERY_TABLE_ID"),
			Value:       "deployments",
			Destination: (*string)(&x.tableID),
		},
		&cli.StringFlag{
			Name:        "bigquery-credentials",
			Usage:       "Path to service account JSON file. Application default credentials are used if empty",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("GHBOX_BIGQUERY_CREDENTIALS"),
			Destination: &x.credentialsFile,
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != "" && x.datasetID != ""
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("ProjectID", x.projectID),
		slog.Any("DatasetID", x.datasetID),
		slog.Any("TableID", x.tableID),
		slog.Bool("Credentials", x.credentialsFile != ""),
	)
}

// NewClient returns nil without error when BigQuery is not configured.
func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var options []option.ClientOption
	if x.credentialsFile != "" {
		options = append(options, option.WithCredentialsFile(x.credentialsFile))
	}

	client, err := bq.New(ctx, x.projectID, x.datasetID, x.tableID, options...)
	if err != nil {
		return nil, err
	}
	return client, nil
}
