package source

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// Git reads discovery documents from a directory inside a config hub
// repository. The checkout is cloned on first use and pulled on later
// runs; when the pull fails the stale checkout still serves discovery.
type Git struct {
	url      string
	checkout string
	subdir   string
}

var _ interfaces.RepoSource = (*Git)(nil)

// NewGit builds a provider that keeps a checkout of url at the checkout
// path and reads *.json documents from subdir inside it.
func NewGit(url, checkout, subdir string) *Git {
	return &Git{
		url:      url,
		checkout: checkout,
		subdir:   subdir,
	}
}

func (x *Git) Name() string {
	return "git:" + x.url
}

func (x *Git) Configs(ctx context.Context) ([]*model.RepoConfig, error) {
	if err := x.sync(ctx); err != nil {
		return nil, err
	}
	return loadConfigDir(ctx, filepath.Join(x.checkout, x.subdir))
}

func (x *Git) sync(ctx context.Context) error {
	logger := logging.From(ctx)

	repo, err := git.PlainOpen(x.checkout)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		logger.Info("cloning config repository", "url", x.url, "path", x.checkout)
		if _, err := git.PlainCloneContext(ctx, x.checkout, false, &git.CloneOptions{
			URL: x.url,
		}); err != nil {
			return goerr.Wrap(err, "failed to clone config repository", goerr.V("url", x.url))
		}
		return nil
	}
	if err != nil {
		return goerr.Wrap(err, "failed to open config repository checkout", goerr.V("path", x.checkout))
	}

	wt, err := repo.Worktree()
	if err != nil {
		return goerr.Wrap(err, "failed to get worktree", goerr.V("path", x.checkout))
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: "origin", Force: true})
	switch {
	case err == nil:
		logger.Info("updated config repository checkout", "path", x.checkout)
	case errors.Is(err, git.NoErrAlreadyUpToDate):
		logger.Debug("config repository already up to date", "path", x.checkout)
	default:
		logger.Warn("failed to update config repository, using existing checkout",
			"path", x.checkout, "error", err)
	}
	return nil
}
