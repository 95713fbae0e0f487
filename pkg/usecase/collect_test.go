package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/mock"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/infra"
	"github.com/mcp-research/mcp-security-scans/pkg/usecase"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

func countsMock() *mock.GitHubClientMock {
	return &mock.GitHubClientMock{
		CountCodeAlertsFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.CodeAlertCounts, error) {
			return &model.CodeAlertCounts{Total: 5, Critical: 1, High: 2, Medium: 1, Low: 1}, nil
		},
		CountSecretAlertsFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.SecretAlertCounts, error) {
			return &model.SecretAlertCounts{Total: 2, ByType: map[string]int{"GitHub Personal Access Token": 2}}, nil
		},
		CountDependencyAlertsFunc: func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.DependencyAlertCounts, error) {
			return &model.DependencyAlertCounts{Total: 3, Critical: 0, High: 1, Moderate: 2, Low: 0}, nil
		},
	}
}

func TestCollectAlerts(t *testing.T) {
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return frozen })

	ghMock := countsMock()
	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	counts := gt.R1(uc.CollectAlerts(ctx, "mcp-research", "octocat__hello-world")).NoError(t)
	gt.V(t, counts.Code.Total).Equal(5)
	gt.V(t, counts.Secrets.Total).Equal(2)
	gt.V(t, counts.Dependencies.Total).Equal(3)
	gt.V(t, counts.OpenTotal()).Equal(10)
	gt.V(t, counts.CollectedAt).Equal(frozen)

	gt.A(t, ghMock.CountCodeAlertsCalls()).Length(1)
	gt.A(t, ghMock.CountSecretAlertsCalls()).Length(1)
	gt.A(t, ghMock.CountDependencyAlertsCalls()).Length(1)
}

func TestCollectAlertsFailsOnAnyCollector(t *testing.T) {
	ctx := context.Background()

	ghMock := countsMock()
	ghMock.CountSecretAlertsFunc = func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.SecretAlertCounts, error) {
		return nil, goerr.Wrap(types.ErrTransient, "secret scanning API flaked")
	}

	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))

	_, err := uc.CollectAlerts(ctx, "mcp-research", "octocat__hello-world")
	gt.Error(t, err)
}
