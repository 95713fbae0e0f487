package usecase

import (
	"context"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// Analyze refreshes alert counts for forks already present in the target
// org. Forks scanned within the window are skipped; a missing or
// unparsable freshness timestamp, or the literal Testing marker, forces a
// scan. MaxRepos caps how many forks one run touches.
func (x *UseCase) Analyze(ctx context.Context, input *model.AnalyzeInput) (*model.RunMetrics, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	runID := types.NewRunID()
	logger := logging.From(ctx).With("run_id", runID, "org", input.Org)
	ctx = logging.With(ctx, logger)
	startedAt := logging.CtxTime(ctx)

	window := input.Window
	if window <= 0 {
		window = defaultScanWindow
	}

	if err := x.EnsureSchema(ctx, input.Org); err != nil {
		return nil, goerr.Wrap(err, "failed to ensure property schema", goerr.V("org", input.Org))
	}

	gh := x.clients.GitHub()
	forks, err := gh.ListOrgForks(ctx, input.Org)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list forks", goerr.V("org", input.Org))
	}
	logger.Info("loaded org forks", "forks", len(forks))

	bulk, err := gh.ListOrgPropertyValues(ctx, input.Org)
	if err != nil {
		logger.Warn("bulk property listing failed, falling back to per-repo reads", "error", err)
		bulk = map[types.RepoName]model.PropertyValues{}
	}

	now := logging.CtxTime(ctx)
	due, fresh := x.selectDue(ctx, input.Org, forks, bulk, now, window)
	if input.MaxRepos > 0 && len(due) > input.MaxRepos {
		logger.Info("reached scan limit", "max_repos", input.MaxRepos, "due", len(due))
		due = due[:input.MaxRepos]
	}
	logger.Info("scanning repositories", "due", len(due), "fresh", fresh)

	results := make([]*model.RepoResult, 0, len(due))
	for i, name := range due {
		logger.Info("processing repository",
			"repo", name, "progress", i+1, "of", len(due))
		results = append(results, x.analyzeRepo(ctx, input.Org, name))
	}

	metrics := newRunMetrics(runID, "analyze", input.Org, startedAt, logging.CtxTime(ctx), results)
	metrics.Skipped += fresh

	if err := x.exportRunMetrics(ctx, metrics); err != nil {
		logger.Warn("failed to export run metrics", "error", err)
	}
	x.logRateBudget(ctx, input.Org)

	logger.Info("analyze complete",
		"succeeded", metrics.Succeeded,
		"failed", metrics.Failed,
		"skipped", metrics.Skipped,
	)
	if metrics.Failed > 0 {
		return metrics, goerr.New("analyze completed with failures",
			goerr.V("succeeded", metrics.Succeeded),
			goerr.V("failed", metrics.Failed),
			goerr.V("skipped", metrics.Skipped),
		)
	}
	return metrics, nil
}

// selectDue filters forks down to the ones whose collected data is
// missing, marked for testing, or older than the scan window. The bulk
// property listing backs most lookups; forks it misses are read
// individually.
func (x *UseCase) selectDue(ctx context.Context, org types.OrgName, forks []*github.Repository, bulk map[types.RepoName]model.PropertyValues, now time.Time, window time.Duration) (due []types.RepoName, fresh int) {
	logger := logging.From(ctx)
	gh := x.clients.GitHub()

	for _, fork := range forks {
		name := types.RepoName(fork.GetName())
		props, ok := bulk[name]
		if !ok {
			values, err := gh.GetRepoPropertyValues(ctx, org, name)
			if err != nil {
				logger.Warn("could not read repository properties, treating as due",
					"repo", name, "error", err)
			}
			props = values
		}

		reason, scan := scanReason(props, now, window)
		if !scan {
			logger.Debug("repository is fresh, skipping", "repo", name)
			fresh++
			continue
		}
		logger.Info("repository due for scan", "repo", name, "reason", reason)
		due = append(due, name)
	}
	return due, fresh
}

// scanReason decides whether stored properties call for a new scan and
// names why.
func scanReason(props model.PropertyValues, now time.Time, window time.Duration) (string, bool) {
	raw, ok := props.Get(model.PropStatusUpdated)
	if !ok || raw == "" {
		return "never scanned", true
	}
	if raw == model.StatusTestingMarker {
		return "marked for testing", true
	}
	ts, ok := model.ParseStatusTime(raw)
	if !ok {
		return "unparsable timestamp", true
	}
	if now.Sub(ts) > window {
		return "scan window elapsed", true
	}
	return "", false
}

// analyzeRepo collects and writes back counts for one existing fork.
func (x *UseCase) analyzeRepo(ctx context.Context, org types.OrgName, name types.RepoName) *model.RepoResult {
	logger := logging.From(ctx).With("repo", name)
	ctx = logging.With(ctx, logger)

	result := &model.RepoResult{
		Fork: &model.ForkRecord{
			Org:    org,
			Name:   name,
			Status: types.ForkStatusExists,
		},
	}
	if source, ok := model.ParseForkName(name); ok {
		result.Source = *source
		result.Fork.Source = *source
	}

	counts, err := x.CollectAlerts(ctx, org, name)
	if err != nil {
		result.Err = goerr.Wrap(err, "failed to collect alert counts")
		return result
	}
	result.Counts = counts

	if err := x.WriteAlertProperties(ctx, org, name, counts); err != nil {
		result.Err = goerr.Wrap(err, "failed to write properties")
		return result
	}
	return result
}
