package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

const (
	forkReadyProbes       = 5
	forkReadyInitialDelay = time.Second
)

// EnsureFork provisions the fork of source inside org idempotently. The
// reserved name is probed first: a matching fork is reused without any
// creation call, and a non-fork (or a fork of a different source) under
// the name is a conflict, never overwritten.
func (x *UseCase) EnsureFork(ctx context.Context, org types.OrgName, source *model.GitHubRepo) (*model.ForkRecord, error) {
	if err := source.Validate(); err != nil {
		return nil, err
	}

	forkName := source.ForkName()
	gh := x.clients.GitHub()

	existing, err := gh.GetRepository(ctx, org, forkName)
	switch {
	case err == nil:
		return verifyExistingFork(source, org, forkName, existing)
	case errors.Is(err, types.ErrNotFound):
		// The name is free, create the fork below.
	default:
		return nil, goerr.Wrap(err, "failed to probe fork",
			goerr.V("org", org), goerr.V("name", forkName))
	}

	logging.From(ctx).Info("creating fork",
		"source", source.FullName(),
		"org", org,
		"fork", forkName,
	)

	created, err := gh.CreateFork(ctx, source, org, forkName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create fork",
			goerr.V("source", source.FullName()), goerr.V("fork", forkName))
	}

	record := &model.ForkRecord{
		Source:        *source,
		Org:           org,
		Name:          forkName,
		Status:        types.ForkStatusCreated,
		DefaultBranch: types.BranchName(created.GetDefaultBranch()),
		HTMLURL:       created.GetHTMLURL(),
	}

	x.waitForkReady(ctx, org, forkName, record)

	return record, nil
}

func verifyExistingFork(source *model.GitHubRepo, org types.OrgName, forkName types.RepoName, repo *github.Repository) (*model.ForkRecord, error) {
	parent := repo.GetParent()
	if !repo.GetFork() || parent == nil || !strings.EqualFold(parent.GetFullName(), source.FullName()) {
		return nil, goerr.Wrap(types.ErrConflict, "repository name is taken by a different repository",
			goerr.V("org", org),
			goerr.V("name", forkName),
			goerr.V("expected_source", source.FullName()),
		)
	}

	return &model.ForkRecord{
		Source:        *source,
		Org:           org,
		Name:          forkName,
		Status:        types.ForkStatusExists,
		DefaultBranch: types.BranchName(repo.GetDefaultBranch()),
		HTMLURL:       repo.GetHTMLURL(),
	}, nil
}

// waitForkReady probes a freshly created fork until it materializes.
// Fork generation is asynchronous and enabling features against a
// half-created repository fails hard, so a short bounded wait saves the
// first run. Gives up quietly; the enable phase surfaces any remaining
// error.
func (x *UseCase) waitForkReady(ctx context.Context, org types.OrgName, name types.RepoName, record *model.ForkRecord) {
	delay := forkReadyInitialDelay

	for attempt := 0; attempt < forkReadyProbes; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
			delay *= 2
		}

		repo, err := x.clients.GitHub().GetRepository(ctx, org, name)
		if err == nil {
			if record.DefaultBranch == "" {
				record.DefaultBranch = types.BranchName(repo.GetDefaultBranch())
			}
			if record.HTMLURL == "" {
				record.HTMLURL = repo.GetHTMLURL()
			}
			return
		}
	}

	logging.From(ctx).Warn("fork still generating after readiness probes",
		"org", org,
		"name", name,
	)
}
