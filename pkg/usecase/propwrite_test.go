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

func testCounts() *model.AlertCounts {
	return &model.AlertCounts{
		Code:         model.CodeAlertCounts{Total: 4, Critical: 1, High: 1, Medium: 1, Low: 1},
		Secrets:      model.SecretAlertCounts{Total: 1, ByType: map[string]int{"Slack Token": 1}},
		Dependencies: model.DependencyAlertCounts{Total: 2, High: 1, Moderate: 1},
	}
}

func TestWriteAlertPropertiesTimestampLast(t *testing.T) {
	frozen := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return frozen })

	ghMock := &mock.GitHubClientMock{
		WriteRepoPropertiesFunc: func(ctx context.Context, org types.OrgName, name types.RepoName, values model.PropertyValues) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))
	gt.NoError(t, uc.WriteAlertProperties(ctx, "mcp-research", "octocat__hello-world", testCounts()))

	calls := ghMock.WriteRepoPropertiesCalls()
	gt.A(t, calls).Length(2)

	// First call carries every count and no timestamp.
	counts := calls[0].Values
	gt.V(t, counts[model.PropCodeAlerts]).Equal("4")
	gt.V(t, counts[model.PropCodeAlertsCritical]).Equal("1")
	gt.V(t, counts[model.PropSecretAlerts]).Equal("1")
	gt.V(t, counts[model.PropSecretAlertsByType]).Equal(`{"Slack Token":1}`)
	gt.V(t, counts[model.PropDependencyAlerts]).Equal("2")
	_, hasStamp := counts.Get(model.PropStatusUpdated)
	gt.False(t, hasStamp)

	// Second call is the timestamp alone.
	stamp := calls[1].Values
	gt.V(t, stamp[model.PropStatusUpdated]).Equal("2025-06-01T12:00:00Z")
	gt.V(t, len(stamp)).Equal(1)
}

func TestWriteAlertPropertiesWithholdsTimestampOnFailure(t *testing.T) {
	ctx := context.Background()

	ghMock := &mock.GitHubClientMock{
		WriteRepoPropertiesFunc: func(ctx context.Context, org types.OrgName, name types.RepoName, values model.PropertyValues) error {
			return goerr.Wrap(types.ErrTransient, "property API unavailable")
		},
	}

	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))
	err := uc.WriteAlertProperties(ctx, "mcp-research", "octocat__hello-world", testCounts())
	gt.Error(t, err)

	// The failed count write must be the only write: no timestamp call.
	calls := ghMock.WriteRepoPropertiesCalls()
	gt.A(t, calls).Length(1)
	_, hasStamp := calls[0].Values.Get(model.PropStatusUpdated)
	gt.False(t, hasStamp)
}

func TestWriteAlertPropertiesEmptySecretTypes(t *testing.T) {
	ctx := context.Background()

	ghMock := &mock.GitHubClientMock{
		WriteRepoPropertiesFunc: func(ctx context.Context, org types.OrgName, name types.RepoName, values model.PropertyValues) error {
			return nil
		},
	}

	counts := testCounts()
	counts.Secrets = model.SecretAlertCounts{}

	uc := usecase.New(infra.New(infra.WithGitHub(ghMock)))
	gt.NoError(t, uc.WriteAlertProperties(ctx, "mcp-research", "octocat__hello-world", counts))

	calls := ghMock.WriteRepoPropertiesCalls()
	gt.A(t, calls).Longer(0)
	gt.V(t, calls[0].Values[model.PropSecretAlertsByType]).Equal("{}")
}
