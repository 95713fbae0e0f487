package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// CollectAlerts gathers open alert counts from the three scanners. Each
// collector pages through every open alert; a scanner that is not
// active on the repository reads as zero open alerts rather than an
// error.
func (x *UseCase) CollectAlerts(ctx context.Context, org types.OrgName, name types.RepoName) (*model.AlertCounts, error) {
	gh := x.clients.GitHub()

	code, err := gh.CountCodeAlerts(ctx, org, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count code scanning alerts", goerr.V("repo", name))
	}

	secrets, err := gh.CountSecretAlerts(ctx, org, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count secret scanning alerts", goerr.V("repo", name))
	}

	deps, err := gh.CountDependencyAlerts(ctx, org, name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to count dependency alerts", goerr.V("repo", name))
	}

	counts := &model.AlertCounts{
		Code:         *code,
		Secrets:      *secrets,
		Dependencies: *deps,
		CollectedAt:  logging.CtxTime(ctx),
	}

	logging.From(ctx).Debug("collected alert counts",
		"repo", name,
		"code", counts.Code.Total,
		"secrets", counts.Secrets.Total,
		"dependencies", counts.Dependencies.Total,
	)

	return counts, nil
}
