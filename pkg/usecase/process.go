package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// Process runs the full provisioning batch: discover source repositories,
// fork them into the target org, enable GHAS features, collect alert
// counts and write them back as custom properties. Per-repository
// failures are isolated; the batch always runs to completion and the
// returned metrics carry the tally. A non-nil error together with
// metrics means some repositories failed.
func (x *UseCase) Process(ctx context.Context, input *model.ProcessInput) (*model.RunMetrics, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	runID := types.NewRunID()
	logger := logging.From(ctx).With("run_id", runID, "org", input.Org)
	ctx = logging.With(ctx, logger)
	startedAt := logging.CtxTime(ctx)

	repos := x.discover(ctx)
	repos, denied := x.filterByPolicy(ctx, input.Org, repos)
	if input.MaxRepos > 0 && len(repos) > input.MaxRepos {
		logger.Info("capping batch size", "max_repos", input.MaxRepos, "discovered", len(repos))
		repos = repos[:input.MaxRepos]
	}
	logger.Info("starting provisioning batch", "repos", len(repos))

	// The property catalog must exist before any worker writes values.
	if err := x.EnsureSchema(ctx, input.Org); err != nil {
		return nil, goerr.Wrap(err, "failed to ensure property schema", goerr.V("org", input.Org))
	}

	results := x.runWorkers(ctx, input.Workers, repos, func(ctx context.Context, repo *model.GitHubRepo) *model.RepoResult {
		return x.processRepo(ctx, input.Org, repo)
	})

	metrics := newRunMetrics(runID, "process", input.Org, startedAt, logging.CtxTime(ctx), results)
	metrics.Skipped += denied

	if err := x.exportRunMetrics(ctx, metrics); err != nil {
		logger.Warn("failed to export run metrics", "error", err)
	}
	x.logRateBudget(ctx, input.Org)

	logger.Info("provisioning batch complete",
		"succeeded", metrics.Succeeded,
		"failed", metrics.Failed,
		"skipped", metrics.Skipped,
	)
	if metrics.Failed > 0 {
		return metrics, goerr.New("batch completed with failures",
			goerr.V("succeeded", metrics.Succeeded),
			goerr.V("failed", metrics.Failed),
			goerr.V("skipped", metrics.Skipped),
		)
	}
	return metrics, nil
}

// processRepo runs the strictly ordered per-repository pipeline:
// fork, enable, collect, write. Steps after a failed one are skipped.
func (x *UseCase) processRepo(ctx context.Context, org types.OrgName, source *model.GitHubRepo) *model.RepoResult {
	logger := logging.From(ctx).With("repo", source.FullName())
	ctx = logging.With(ctx, logger)
	result := &model.RepoResult{Source: *source}

	fork, err := x.EnsureFork(ctx, org, source)
	if err != nil {
		if errors.Is(err, types.ErrConflict) {
			logger.Warn("fork name is taken by an unrelated repository, skipping",
				"fork", source.ForkName(), "error", err)
			result.Fork = &model.ForkRecord{
				Source: *source,
				Org:    org,
				Name:   source.ForkName(),
				Status: types.ForkStatusConflict,
			}
			return result
		}
		result.Err = goerr.Wrap(err, "failed to provision fork")
		return result
	}
	result.Fork = fork

	result.Features = x.EnableFeatures(ctx, org, fork.Name)

	counts, err := x.CollectAlerts(ctx, org, fork.Name)
	if err != nil {
		result.Err = goerr.Wrap(err, "failed to collect alert counts")
		return result
	}
	result.Counts = counts

	if err := x.WriteAlertProperties(ctx, org, fork.Name, counts); err != nil {
		result.Err = goerr.Wrap(err, "failed to write properties")
		return result
	}
	return result
}

// discover gathers discovery documents from every configured provider in
// order and reduces them to a deduplicated repository list. A failing
// provider is logged and skipped so the others still contribute.
func (x *UseCase) discover(ctx context.Context) []*model.GitHubRepo {
	logger := logging.From(ctx)

	var configs []*model.RepoConfig
	for _, src := range x.clients.Sources() {
		docs, err := src.Configs(ctx)
		if err != nil {
			logger.Warn("config provider failed, continuing without it",
				"provider", src.Name(), "error", err)
			continue
		}
		logger.Info("loaded discovery documents", "provider", src.Name(), "docs", len(docs))
		configs = append(configs, docs...)
	}

	repos, skipped := model.DedupeConfigs(configs)
	for _, cfg := range skipped {
		logger.Warn("dropping discovery document", "origin", cfg.Origin, "name", cfg.Name)
	}
	logger.Info("discovered source repositories", "repos", len(repos), "dropped", len(skipped))
	return repos
}

// filterByPolicy consults the optional mirror policy for each candidate.
// Policy evaluation errors deny the candidate; mirroring a repository the
// policy could not clear is worse than skipping it.
func (x *UseCase) filterByPolicy(ctx context.Context, org types.OrgName, repos []*model.GitHubRepo) (allowed []*model.GitHubRepo, denied int) {
	pol := x.clients.Policy()
	if pol == nil {
		return repos, 0
	}
	logger := logging.From(ctx)

	allowed = make([]*model.GitHubRepo, 0, len(repos))
	for _, repo := range repos {
		decision, err := pol.Evaluate(ctx, &model.MirrorQuery{
			Source:   repo,
			Org:      org,
			ForkName: repo.ForkName(),
		})
		if err != nil {
			logger.Warn("policy evaluation failed, skipping repository",
				"repo", repo.FullName(), "error", err)
			denied++
			continue
		}
		if !decision.Allowed() {
			logger.Info("policy denied repository",
				"repo", repo.FullName(), "reasons", decision.Deny)
			denied++
			continue
		}
		allowed = append(allowed, repo)
	}
	return allowed, denied
}

// runWorkers fans repositories out over a bounded worker pool. Results
// keep the input order regardless of completion order.
func (x *UseCase) runWorkers(ctx context.Context, workers int, repos []*model.GitHubRepo, fn func(context.Context, *model.GitHubRepo) *model.RepoResult) []*model.RepoResult {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if workers > len(repos) {
		workers = len(repos)
	}

	results := make([]*model.RepoResult, len(repos))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = fn(ctx, repos[idx])
			}
		}()
	}
	for idx := range repos {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return results
}

// newRunMetrics folds per-repository results into the exportable run row.
// Conflict outcomes count as skipped, not failed.
func newRunMetrics(runID types.RunID, command string, org types.OrgName, startedAt, finishedAt time.Time, results []*model.RepoResult) *model.RunMetrics {
	m := &model.RunMetrics{
		RunID:      runID,
		Command:    command,
		Org:        string(org),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}
	for _, r := range results {
		m.Repos = append(m.Repos, r.Metrics())
		switch {
		case r.Failed():
			m.Failed++
		case r.Fork != nil && r.Fork.Status == types.ForkStatusConflict:
			m.Skipped++
		default:
			m.Succeeded++
		}
	}
	return m
}

// logRateBudget records how much of the shared API budget the run left
// behind. Best effort only.
func (x *UseCase) logRateBudget(ctx context.Context, org types.OrgName) {
	info, err := x.clients.GitHub().RateLimitSnapshot(ctx, org)
	if err != nil {
		logging.From(ctx).Debug("could not read rate limit budget", "error", err)
		return
	}
	logging.From(ctx).Info("rate limit budget",
		"remaining", info.Remaining,
		"limit", info.Limit,
		"reset", info.Reset,
	)
}
