package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// exportRunMetrics appends one row describing the finished run. Export
// is best effort: the run itself already succeeded or failed on its own
// terms, so a missing BigQuery client is a no-op and errors are returned
// for the caller to log, not to fail the batch.
func (x *UseCase) exportRunMetrics(ctx context.Context, metrics *model.RunMetrics) error {
	bq := x.clients.BigQuery()
	if bq == nil {
		return nil
	}

	record := &model.RunRawRecord{
		RunMetrics: *metrics,
		StartedAt:  metrics.StartedAt.UnixMicro(),
		FinishedAt: metrics.FinishedAt.UnixMicro(),
	}

	schema, err := bqs.Infer(record)
	if err != nil {
		return goerr.Wrap(err, "failed to infer run metrics schema")
	}

	if err := x.migrateRunTable(ctx, bq, schema); err != nil {
		return err
	}

	if err := bq.Insert(ctx, schema, record); err != nil {
		return goerr.Wrap(err, "failed to insert run metrics", goerr.V("run_id", metrics.RunID))
	}

	logging.From(ctx).Info("exported run metrics",
		"run_id", metrics.RunID,
		"repos", len(metrics.Repos),
	)
	return nil
}

// migrateRunTable creates the metrics table on first use and widens its
// schema when new columns appear. Existing columns are never dropped.
func (x *UseCase) migrateRunTable(ctx context.Context, bq interfaces.BigQuery, schema bigquery.Schema) error {
	md, err := bq.GetMetadata(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to get table metadata")
	}

	if md == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{Schema: schema}); err != nil {
			return goerr.Wrap(err, "failed to create metrics table")
		}
		return nil
	}

	if bqs.Equal(md.Schema, schema) {
		return nil
	}

	merged, err := bqs.Merge(md.Schema, schema)
	if err != nil {
		return goerr.Wrap(err, "failed to merge metrics schema")
	}
	update := bigquery.TableMetadataToUpdate{Schema: merged}
	if err := bq.UpdateTable(ctx, update, md.ETag); err != nil {
		return goerr.Wrap(err, "failed to update metrics table")
	}
	return nil
}
