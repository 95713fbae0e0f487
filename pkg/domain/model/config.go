package model

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

// RepoConfig is one discovery document describing a source repository to
// mirror. Documents come from JSON files in a config directory or from a
// config hub repository checkout.
type RepoConfig struct {
	Name      string `json:"name"`
	GitHubURL string `json:"githubUrl"`

	// Origin is set by the provider that loaded the document (file path or
	// provider name), for logs only.
	Origin string `json:"-"`
}

func (x *RepoConfig) Validate() error {
	if x.GitHubURL == "" {
		return goerr.Wrap(types.ErrValidation, "githubUrl is empty", goerr.V("name", x.Name))
	}
	if _, err := x.SourceRepo(); err != nil {
		return err
	}
	return nil
}

// SourceRepo extracts the owner/repo pair from the document's GitHub URL.
// Accepts https://github.com/{owner}/{repo} with optional .git suffix,
// trailing slashes and extra path segments (tree/blob links).
func (x *RepoConfig) SourceRepo() (*GitHubRepo, error) {
	u, err := url.Parse(strings.TrimSpace(x.GitHubURL))
	if err != nil {
		return nil, goerr.Wrap(types.ErrValidation, "unparsable githubUrl", goerr.V("url", x.GitHubURL))
	}

	host := strings.ToLower(u.Host)
	if host != "github.com" && host != "www.github.com" {
		return nil, goerr.Wrap(types.ErrValidation, "not a github.com URL", goerr.V("url", x.GitHubURL))
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return nil, goerr.Wrap(types.ErrValidation, "URL path has no owner/repo", goerr.V("url", x.GitHubURL))
	}

	repo := &GitHubRepo{
		Owner:    parts[0],
		RepoName: strings.TrimSuffix(parts[1], ".git"),
	}
	if err := repo.Validate(); err != nil {
		return nil, err
	}
	return repo, nil
}

// DedupeConfigs drops case-insensitive duplicates of the same source
// repository, keeping the first occurrence. Invalid documents are dropped
// too; both removals are reported through the returned skipped list.
func DedupeConfigs(configs []*RepoConfig) (repos []*GitHubRepo, skipped []*RepoConfig) {
	seen := map[string]struct{}{}
	for _, cfg := range configs {
		repo, err := cfg.SourceRepo()
		if err != nil {
			skipped = append(skipped, cfg)
			continue
		}
		if _, ok := seen[repo.Key()]; ok {
			skipped = append(skipped, cfg)
			continue
		}
		seen[repo.Key()] = struct{}{}
		repos = append(repos, repo)
	}
	return repos, skipped
}
