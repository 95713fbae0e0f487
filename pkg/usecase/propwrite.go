package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// WriteAlertProperties pushes the collected counts onto the fork's
// custom properties. The freshness timestamp is written in a second
// call, only after every count landed, so a timestamp always vouches
// for a complete snapshot.
func (x *UseCase) WriteAlertProperties(ctx context.Context, org types.OrgName, name types.RepoName, counts *model.AlertCounts) error {
	values, err := model.AlertProperties(counts)
	if err != nil {
		return goerr.Wrap(err, "failed to render alert properties", goerr.V("repo", name))
	}
	if err := values.ValidateKeys(); err != nil {
		return err
	}

	gh := x.clients.GitHub()

	if err := gh.WriteRepoProperties(ctx, org, name, values); err != nil {
		return goerr.Wrap(err, "failed to write alert count properties",
			goerr.V("org", org), goerr.V("repo", name))
	}

	stamp := model.StatusProperty(logging.CtxTime(ctx))
	if err := gh.WriteRepoProperties(ctx, org, name, stamp); err != nil {
		return goerr.Wrap(err, "failed to write freshness timestamp",
			goerr.V("org", org), goerr.V("repo", name))
	}

	logging.From(ctx).Info("updated repository properties",
		"repo", name,
		"open_alerts", counts.OpenTotal(),
	)
	return nil
}
