package bq_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/gt"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/infra/bq"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/testutil"
)

func testRunMetrics() *model.RunMetrics {
	return &model.RunMetrics{
		RunID:      types.NewRunID(),
		Command:    "process",
		Org:        "mcp-research",
		StartedAt:  time.Now().Add(-time.Minute),
		FinishedAt: time.Now(),
		Succeeded:  2,
		Failed:     1,
		Repos: []*model.RepoMetrics{
			{
				Source:     "acme/widget",
				Fork:       "acme__widget",
				ForkStatus: "created",
				FeaturesOK: 4,
				FeaturesNG: 1,
				CodeTotal:  3,
				CodeHigh:   2,
			},
			{
				Source: "acme/gadget",
				Error:  "fork failed",
			},
		},
	}
}

func TestClient(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

	ctx := context.Background()

	tblName := types.BQTableID(time.Now().Format("insert_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
	gt.NoError(t, err)

	var baseSchema bigquery.Schema

	t.Run("Create base table at first", func(t *testing.T) {
		baseSchema = gt.R1(bqs.Infer(&model.RunRawRecord{})).NoError(t)

		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: baseSchema,
		}))
	})

	t.Run("Insert run record", func(t *testing.T) {
		metrics := testRunMetrics()
		record := &model.RunRawRecord{
			RunMetrics: *metrics,
			StartedAt:  metrics.StartedAt.UnixMicro(),
			FinishedAt: metrics.FinishedAt.UnixMicro(),
		}

		dataSchema := gt.R1(bqs.Infer(record)).NoError(t)
		mergedSchema := gt.R1(bqs.Merge(baseSchema, dataSchema)).NoError(t)

		md := gt.R1(client.GetMetadata(ctx)).NoError(t)
		gt.NoError(t, client.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
			Schema: mergedSchema,
		}, md.ETag))

		gt.NoError(t, client.Insert(ctx, mergedSchema, record))
	})
}

func TestImpersonation(t *testing.T) {
	projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
	datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")
	serviceAccount := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT")

	ctx := context.Background()

	ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
		TargetPrincipal: serviceAccount,
		Scopes: []string{
			"https://www.googleapis.com/auth/bigquery",
			"https://www.googleapis.com/auth/cloud-platform",
		},
	})
	gt.NoError(t, err)

	tblName := types.BQTableID(time.Now().Format("impersonation_test_20060102_150405"))
	client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName, option.WithTokenSource(ts))
	gt.NoError(t, err)

	msg := struct {
		Msg string
	}{
		Msg: "Hello, BigQuery: " + time.Now().String(),
	}

	schema := gt.R1(bqs.Infer(msg)).NoError(t)

	gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
		Name:   tblName.String(),
		Schema: schema,
	}))

	gt.NoError(t, client.Insert(ctx, schema, msg))
}

func TestClientErrors(t *testing.T) {
	t.Run("GetMetadata on non-existent table returns nil", func(t *testing.T) {
		projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
		datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

		ctx := context.Background()
		nonExistentTable := types.BQTableID("non_existent_table_999999")
		client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), nonExistentTable)
		gt.NoError(t, err)

		md, err := client.GetMetadata(ctx)
		gt.NoError(t, err)
		gt.V(t, md).Equal(nil)
	})

	t.Run("Insert with mismatched schema fails", func(t *testing.T) {
		projectID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_PROJECT_ID")
		datasetID := testutil.GetEnvOrSkip(t, "TEST_BIGQUERY_DATASET_ID")

		ctx := context.Background()
		tblName := types.BQTableID(time.Now().Format("mismatch_test_20060102_150405"))
		client, err := bq.New(ctx, types.GoogleProjectID(projectID), types.BQDatasetID(datasetID), tblName)
		gt.NoError(t, err)

		schema := bigquery.Schema{
			{Name: "field1", Type: bigquery.StringFieldType},
		}
		gt.NoError(t, client.CreateTable(ctx, &bigquery.TableMetadata{
			Name:   tblName.String(),
			Schema: schema,
		}))

		wrongData := struct {
			WrongField int
		}{
			WrongField: 123,
		}

		err = client.Insert(ctx, schema, wrongData)
		gt.Error(t, err)
	})
}

func TestProtoFieldJSONName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "keeps valid names",
			input: "SchemaVersion",
			want:  "SchemaVersion",
		},
		{
			name:  "renames invalid names",
			input: "GitHub Personal Access Token",
			want:  "col_R2l0SHViIFBlcnNvbmFsIEFjY2VzcyBUb2tlbg",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := bq.ProtoFieldJSONName(tc.input); got != tc.want {
				t.Fatalf("unexpected name: want=%s, got=%s", tc.want, got)
			}
		})
	}
}

func TestSanitizeProtoJSON(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"SecretTypes":{"GitHub Personal Access Token":3,"slack_api_token":2}}`)
	sanitized := gt.R1(bq.SanitizeProtoJSON(raw)).NoError(t)

	dec := json.NewDecoder(bytes.NewReader(sanitized))
	dec.UseNumber()
	payload := map[string]any{}
	gt.NoError(t, dec.Decode(&payload))

	st, ok := payload["SecretTypes"].(map[string]any)
	if !ok {
		t.Fatalf("SecretTypes not found in %v", payload)
	}

	renamed := bq.ProtoFieldJSONName("GitHub Personal Access Token")

	if _, ok := st[renamed]; !ok {
		t.Fatalf("sanitized key %s not found: %+v", renamed, st)
	}
	if _, ok := st["GitHub Personal Access Token"]; ok {
		t.Fatalf("unexpected original key remains: %+v", st)
	}
}
