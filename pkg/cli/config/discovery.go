package config

import (
	"log/slog"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/infra/source"
	"github.com/urfave/cli/v3"
)

// Discovery assembles the ordered list of repository config providers.
// The config hub checkout is always first, extra local directories and
// ad-hoc repositories follow in flag order.
type Discovery struct {
	configRepo     string
	configCheckout string
	configSubdir   string
	configDirs     []string
	repos          []string
}

func (x *Discovery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config-repo",
			Usage:       "Git URL of the config hub repository (empty disables it)",
			Category:    "Discovery",
			Value:       "https://github.com/mcp-agents-ai/mcp-agents-hub.git",
			Destination: &x.configRepo,
			Sources:     cli.EnvVars("MCPSCAN_CONFIG_REPO"),
		},
		&cli.StringFlag{
			Name:        "config-checkout",
			Usage:       "Local checkout path for the config hub repository",
			Category:    "Discovery",
			Value:       "./cloned_mcp_agents_hub",
			Destination: &x.configCheckout,
			Sources:     cli.EnvVars("MCPSCAN_CONFIG_CHECKOUT"),
		},
		&cli.StringFlag{
			Name:        "config-repo-path",
			Usage:       "Directory of discovery documents inside the config hub repository",
			Category:    "Discovery",
			Value:       "server/src/data/split",
			Destination: &x.configSubdir,
			Sources:     cli.EnvVars("MCPSCAN_CONFIG_REPO_PATH"),
		},
		&cli.StringSliceFlag{
			Name:        "config-dir",
			Usage:       "Local directory of discovery documents (repeatable)",
			Category:    "Discovery",
			Destination: &x.configDirs,
			Sources:     cli.EnvVars("MCPSCAN_CONFIG_DIR"),
		},
		&cli.StringSliceFlag{
			Name:        "repo",
			Usage:       "Repository to mirror, as owner/name or URL (repeatable)",
			Category:    "Discovery",
			Destination: &x.repos,
			Sources:     cli.EnvVars("MCPSCAN_REPO"),
		},
	}
}

// Sources returns the providers in discovery order.
func (x *Discovery) Sources() []interfaces.RepoSource {
	var sources []interfaces.RepoSource
	if x.configRepo != "" {
		sources = append(sources, source.NewGit(x.configRepo, x.configCheckout, x.configSubdir))
	}
	for _, dir := range x.configDirs {
		sources = append(sources, source.NewDir(dir))
	}
	if len(x.repos) > 0 {
		sources = append(sources, source.NewStatic("flags", x.repos))
	}
	return sources
}

func (x *Discovery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("configRepo", x.configRepo),
		slog.String("configCheckout", x.configCheckout),
		slog.String("configRepoPath", x.configSubdir),
		slog.Any("configDirs", x.configDirs),
		slog.Int("repos", len(x.repos)),
	)
}
