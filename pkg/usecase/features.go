package usecase

import (
	"context"
	"errors"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// EnableFeatures turns on every security feature for the fork. Features
// are independent: a failure or an unsupported answer is recorded and
// the remaining features are still attempted. Code scanning default
// setup is routinely unsupported on forks without eligible languages.
func (x *UseCase) EnableFeatures(ctx context.Context, org types.OrgName, name types.RepoName) *model.FeatureSummary {
	gh := x.clients.GitHub()
	logger := logging.From(ctx)

	features := []struct {
		feature types.GHASFeature
		enable  func(context.Context) error
	}{
		{types.FeatureVulnerabilityAlerts, func(ctx context.Context) error {
			return gh.EnableVulnerabilityAlerts(ctx, org, name)
		}},
		{types.FeatureSecurityFixes, func(ctx context.Context) error {
			return gh.EnableAutomatedSecurityFixes(ctx, org, name)
		}},
		{types.FeatureSecretScanning, func(ctx context.Context) error {
			return gh.EnableSecretScanning(ctx, org, name)
		}},
		{types.FeaturePushProtection, func(ctx context.Context) error {
			return gh.EnablePushProtection(ctx, org, name)
		}},
		{types.FeatureCodeScanning, func(ctx context.Context) error {
			return gh.EnableCodeScanningDefaultSetup(ctx, org, name)
		}},
	}

	summary := &model.FeatureSummary{Repo: name}

	for _, f := range features {
		if err := ctx.Err(); err != nil {
			summary.Results = append(summary.Results, model.FeatureResult{
				Feature: f.feature,
				Status:  types.FeatureStatusFailed,
				Reason:  err.Error(),
			})
			continue
		}

		err := f.enable(ctx)
		switch {
		case err == nil, errors.Is(err, types.ErrAlreadyExists):
			summary.Results = append(summary.Results, model.FeatureResult{
				Feature: f.feature,
				Status:  types.FeatureStatusEnabled,
			})

		case errors.Is(err, types.ErrUnsupported):
			logger.Info("security feature not supported for repository",
				"repo", name,
				"feature", f.feature,
			)
			summary.Results = append(summary.Results, model.FeatureResult{
				Feature: f.feature,
				Status:  types.FeatureStatusUnsupported,
				Reason:  err.Error(),
			})

		default:
			logger.Warn("failed to enable security feature",
				"repo", name,
				"feature", f.feature,
				"error", err,
			)
			summary.Results = append(summary.Results, model.FeatureResult{
				Feature: f.feature,
				Status:  types.FeatureStatusFailed,
				Reason:  err.Error(),
			})
		}
	}

	hasConfig, err := gh.HasDependabotConfig(ctx, org, name)
	if err != nil {
		logger.Warn("failed to probe dependabot config", "repo", name, "error", err)
	}
	summary.HasDependabotConfig = hasConfig

	return summary
}
