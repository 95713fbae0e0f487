package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/mcp-research/mcp-security-scans/pkg/cli/config"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/infra"
	"github.com/mcp-research/mcp-security-scans/pkg/usecase"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func analyzeCommand() *cli.Command {
	var (
		githubApp config.GitHubApp
		bigQuery  config.BigQuery
		target    config.Target
		numRepos  int64
		verbose   bool
	)

	return &cli.Command{
		Name:    "analyze",
		Aliases: []string{"a"},
		Usage:   "Refresh alert counts for mirror forks whose snapshot is stale",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "num-repos",
				Aliases:     []string{"n"},
				Usage:       "Maximum repositories to scan in one run (0 means all)",
				Value:       10,
				Sources:     cli.EnvVars("MCPSCAN_NUM_REPOS"),
				Destination: &numRepos,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Enable debug logging",
				Destination: &verbose,
			},
		}, githubApp.Flags(), target.Flags(), bigQuery.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if verbose {
				if err := ConfigureLogging(logFormat, "debug", logOutput); err != nil {
					return err
				}
			}
			return runAnalyze(ctx, &githubApp, &bigQuery, &target, int(numRepos))
		},
	}
}

func runAnalyze(ctx context.Context, githubApp *config.GitHubApp, bigQuery *config.BigQuery, target *config.Target, numRepos int) error {
	logging.Default().Info("Starting analyze",
		slog.Any("github_app", githubApp),
		slog.Any("target", target),
		slog.Any("bigquery", bigQuery),
		slog.Int("num_repos", numRepos),
	)

	ghClient, err := githubApp.New()
	if err != nil {
		return goerr.Wrap(err, "failed to create GitHub client")
	}

	clientOpts := []infra.Option{
		infra.WithGitHub(ghClient),
	}

	if bigQuery.Enabled() {
		bqClient, err := bigQuery.NewClient(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to create BigQuery client")
		}
		clientOpts = append(clientOpts, infra.WithBigQuery(bqClient))
	}

	uc := usecase.New(infra.New(clientOpts...))

	if _, err := uc.Analyze(ctx, &model.AnalyzeInput{
		Org:      target.Org(),
		MaxRepos: numRepos,
		Window:   target.ScanWindow(),
	}); err != nil {
		return goerr.Wrap(err, "failed to analyze repositories")
	}

	return nil
}
