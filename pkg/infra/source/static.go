package source

import (
	"context"
	"strings"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
)

// Static yields an explicitly provided repository list, e.g. from
// command line flags. Entries may be full GitHub URLs or owner/repo
// shorthand.
type Static struct {
	name    string
	configs []*model.RepoConfig
}

var _ interfaces.RepoSource = (*Static)(nil)

func NewStatic(name string, repos []string) *Static {
	configs := make([]*model.RepoConfig, 0, len(repos))
	for _, repo := range repos {
		configs = append(configs, &model.RepoConfig{
			GitHubURL: normalizeRepoURL(repo),
			Origin:    name,
		})
	}
	return &Static{name: name, configs: configs}
}

func (x *Static) Name() string {
	return x.name
}

func (x *Static) Configs(ctx context.Context) ([]*model.RepoConfig, error) {
	return x.configs, nil
}

func normalizeRepoURL(repo string) string {
	repo = strings.TrimSpace(repo)
	if strings.Contains(repo, "://") {
		return repo
	}
	return "https://github.com/" + strings.Trim(repo, "/")
}
