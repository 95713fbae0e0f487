package config

import (
	"log/slog"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/infra/ghclient"
	"github.com/urfave/cli/v3"
)

type GitHubApp struct {
	id         types.GitHubAppID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHubApp) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID",
			Category:    "GitHub App",
			Destination: (*int64)(&x.id),
			Sources:     cli.EnvVars("MCPSCAN_GITHUB_APP_ID", "GH_APP_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key (PEM)",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("MCPSCAN_GITHUB_APP_PRIVATE_KEY", "GH_APP_PRIVATE_KEY"),
			Required:    true,
		},
	}
}

func (x GitHubApp) New(options ...ghclient.Option) (*ghclient.Client, error) {
	return ghclient.New(x.id, x.privateKey, options...)
}

func (x GitHubApp) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("ID", int64(x.id)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
