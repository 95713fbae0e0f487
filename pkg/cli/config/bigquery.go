package config

import (
	"context"
	"log/slog"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/infra/bq"
	"github.com/urfave/cli/v3"
)

type BigQuery struct {
	projectID types.GoogleProjectID
	datasetID types.BQDatasetID
	tableID   types.BQTableID
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "Google Cloud project for run metrics export (optional)",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("MCPSCAN_BIGQUERY_PROJECT_ID"),
			Destination: (*string)(&x.projectID),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("MCPSCAN_BIGQUERY_DATASET_ID"),
			Value:       "mcp_security",
			Destination: (*string)(&x.datasetID),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID for run metrics",
			Category:    "BigQuery",
			Sources:     cli.EnvVars("MCPSCAN_BIGQUERY_TABLE_ID"),
			Value:       "runs",
			Destination: (*string)(&x.tableID),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != ""
}

func (x *BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("projectID", x.projectID),
		slog.Any("datasetID", x.datasetID),
		slog.Any("tableID", x.tableID),
	)
}

func (x *BigQuery) NewClient(ctx context.Context) (interfaces.BigQuery, error) {
	return bq.New(ctx, x.projectID, x.datasetID, x.tableID)
}
