package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
)

func requireSources(sources []interfaces.RepoSource) error {
	if len(sources) == 0 {
		return goerr.New("no repository source is configured (set --config-repo, --config-dir or --repo)")
	}
	return nil
}
