package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/infra"
	"github.com/mcp-research/mcp-security-scans/pkg/repository/memory"
	"github.com/mcp-research/mcp-security-scans/pkg/usecase"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

func TestReportClassifiesRepos(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

	fresh := now.Add(-24 * time.Hour).Format(time.RFC3339)
	props := map[types.RepoName]model.PropertyValues{
		// Fresh and clean.
		"alice__one": {
			model.PropStatusUpdated: fresh,
			model.PropCodeAlerts:    "0",
		},
		// Fresh with a critical code alert.
		"bob__two": {
			model.PropStatusUpdated:      fresh,
			model.PropCodeAlerts:         "3",
			model.PropCodeAlertsCritical: "1",
		},
		// Timestamp long past the window.
		"carol__three": {
			model.PropStatusUpdated: now.Add(-60 * 24 * time.Hour).Format(time.RFC3339),
		},
		// Never scanned.
		"dave__four": {},
	}

	ghMock := analyzeMock([]string{"alice__one", "bob__two", "carol__three", "dave__four"}, props)
	store := memory.New()
	clients := infra.New(infra.WithGitHub(ghMock), infra.WithReportStorage(store))
	uc := usecase.New(clients)

	report := gt.R1(uc.Report(ctx, &model.ReportInput{Org: "mcp-research"})).NoError(t)
	gt.V(t, report.TotalRepos).Equal(4)
	gt.V(t, report.Healthy).Equal(1)
	gt.V(t, report.Attention).Equal(1)
	gt.V(t, report.Stale).Equal(2)
	gt.V(t, report.Coverage).Equal(75.0)

	postures := map[types.RepoName]types.RepoHealth{}
	for _, r := range report.Repos {
		postures[r.Name] = r.Health
	}
	gt.V(t, postures["alice__one"]).Equal(types.RepoHealthHealthy)
	gt.V(t, postures["bob__two"]).Equal(types.RepoHealthAttention)
	gt.V(t, postures["carol__three"]).Equal(types.RepoHealthStale)
	gt.V(t, postures["dave__four"]).Equal(types.RepoHealthStale)
}

func TestReportWritesArtifacts(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

	props := map[types.RepoName]model.PropertyValues{
		"alice__one": {
			model.PropStatusUpdated:      now.Add(-time.Hour).Format(time.RFC3339),
			model.PropSecretAlerts:       "2",
			model.PropSecretAlertsByType: `{"Slack Token":2}`,
		},
	}

	ghMock := analyzeMock([]string{"alice__one"}, props)
	store := memory.New()
	clients := infra.New(infra.WithGitHub(ghMock), infra.WithReportStorage(store))
	uc := usecase.New(clients)

	gt.R1(uc.Report(ctx, &model.ReportInput{Org: "mcp-research"})).NoError(t)

	raw := gt.R1(store.Get(ctx, "ghas_report_mcp-research_20250610.json")).NoError(t)
	var decoded model.OrgReport
	gt.NoError(t, json.Unmarshal(raw, &decoded))
	gt.V(t, decoded.Org).Equal(types.OrgName("mcp-research"))
	gt.V(t, decoded.TotalRepos).Equal(1)
	gt.V(t, decoded.Attention).Equal(1)

	md := gt.R1(store.Get(ctx, "ghas_report_mcp-research_20250610.md")).NoError(t)
	text := string(md)
	gt.S(t, text).Contains("# GHAS Security Report - mcp-research")
	gt.S(t, text).Contains("Slack Token: 2")
	gt.S(t, text).Contains("## Coverage")
}

func TestReportMarkdownWithoutSecretTypes(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

	props := map[types.RepoName]model.PropertyValues{
		"alice__one": {
			model.PropStatusUpdated: now.Add(-time.Hour).Format(time.RFC3339),
		},
	}

	ghMock := analyzeMock([]string{"alice__one"}, props)
	store := memory.New()
	clients := infra.New(infra.WithGitHub(ghMock), infra.WithReportStorage(store))
	uc := usecase.New(clients)

	gt.R1(uc.Report(ctx, &model.ReportInput{Org: "mcp-research"})).NoError(t)

	md := gt.R1(store.Get(ctx, "ghas_report_mcp-research_20250610.md")).NoError(t)
	gt.S(t, string(md)).Contains("No secret scanning alerts found.")
}

func TestReportReadsNothingButProperties(t *testing.T) {
	ctx := context.Background()

	ghMock := analyzeMock([]string{"alice__one"}, map[types.RepoName]model.PropertyValues{
		"alice__one": {},
	})
	store := memory.New()
	clients := infra.New(infra.WithGitHub(ghMock), infra.WithReportStorage(store))
	uc := usecase.New(clients)

	gt.R1(uc.Report(ctx, &model.ReportInput{Org: "mcp-research"})).NoError(t)

	// Report generation is read-only against the org.
	gt.A(t, ghMock.WriteRepoPropertiesCalls()).Length(0)
	gt.A(t, ghMock.UpsertOrgPropertyCalls()).Length(0)
	gt.A(t, ghMock.CreateForkCalls()).Length(0)
	gt.A(t, ghMock.CountCodeAlertsCalls()).Length(0)
}

func TestReportFallsBackToPerRepoProperties(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

	// Bulk listing misses bob__two entirely.
	ghMock := analyzeMock([]string{"alice__one", "bob__two"}, map[types.RepoName]model.PropertyValues{
		"alice__one": {model.PropStatusUpdated: now.Add(-time.Hour).Format(time.RFC3339)},
	})
	ghMock.GetRepoPropertyValuesFunc = func(ctx context.Context, org types.OrgName, name types.RepoName) (model.PropertyValues, error) {
		gt.V(t, name).Equal(types.RepoName("bob__two"))
		return model.PropertyValues{
			model.PropStatusUpdated: now.Add(-2 * time.Hour).Format(time.RFC3339),
		}, nil
	}

	store := memory.New()
	clients := infra.New(infra.WithGitHub(ghMock), infra.WithReportStorage(store))
	uc := usecase.New(clients)

	report := gt.R1(uc.Report(ctx, &model.ReportInput{Org: "mcp-research"})).NoError(t)
	gt.V(t, report.Healthy).Equal(2)
	gt.A(t, ghMock.GetRepoPropertyValuesCalls()).Length(1)
}

func TestReportMarkdownAttentionTable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })
	t.Setenv("CI", "")

	props := map[types.RepoName]model.PropertyValues{
		"alice__one": {
			model.PropStatusUpdated:      now.Add(-time.Hour).Format(time.RFC3339),
			model.PropCodeAlerts:         "5",
			model.PropCodeAlertsCritical: "2",
		},
	}

	ghMock := analyzeMock([]string{"alice__one"}, props)
	store := memory.New()
	clients := infra.New(infra.WithGitHub(ghMock), infra.WithReportStorage(store))
	uc := usecase.New(clients)

	gt.R1(uc.Report(ctx, &model.ReportInput{Org: "mcp-research"})).NoError(t)

	md := gt.R1(store.Get(ctx, "ghas_report_mcp-research_20250610.md")).NoError(t)
	text := string(md)
	gt.True(t, strings.Contains(text, "Top Repositories Needing Attention"))
	gt.True(t, strings.Contains(text, "| alice__one | 5 | 5 | 0 | 0 |"))
}
