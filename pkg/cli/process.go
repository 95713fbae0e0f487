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

func processCommand() *cli.Command {
	var (
		githubApp    config.GitHubApp
		bigQuery     config.BigQuery
		target       config.Target
		discovery    config.Discovery
		mirrorPolicy config.Policy
		numRepos     int64
	)

	return &cli.Command{
		Name:    "process",
		Aliases: []string{"p"},
		Usage:   "Fork discovered repositories, enable security features and record alert counts",
		Flags: slice.Flatten([]cli.Flag{
			&cli.Int64Flag{
				Name:        "num-repos",
				Aliases:     []string{"n"},
				Usage:       "Maximum repositories to touch in one run (0 means all)",
				Sources:     cli.EnvVars("MCPSCAN_NUM_REPOS"),
				Destination: &numRepos,
			},
		}, githubApp.Flags(), target.Flags(), discovery.Flags(), mirrorPolicy.Flags(), bigQuery.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			return runProcess(ctx, &githubApp, &bigQuery, &target, &discovery, &mirrorPolicy, int(numRepos))
		},
	}
}

func runProcess(ctx context.Context, githubApp *config.GitHubApp, bigQuery *config.BigQuery, target *config.Target, discovery *config.Discovery, mirrorPolicy *config.Policy, numRepos int) error {
	logging.Default().Info("Starting process",
		slog.Any("github_app", githubApp),
		slog.Any("target", target),
		slog.Any("discovery", discovery),
		slog.Any("policy", mirrorPolicy),
		slog.Any("bigquery", bigQuery),
		slog.Int("num_repos", numRepos),
	)

	ghClient, err := githubApp.New()
	if err != nil {
		return goerr.Wrap(err, "failed to create GitHub client")
	}

	sources := discovery.Sources()
	if err := requireSources(sources); err != nil {
		return err
	}

	clientOpts := []infra.Option{
		infra.WithGitHub(ghClient),
		infra.WithSources(sources...),
	}

	if bigQuery.Enabled() {
		bqClient, err := bigQuery.NewClient(ctx)
		if err != nil {
			return goerr.Wrap(err, "failed to create BigQuery client")
		}
		clientOpts = append(clientOpts, infra.WithBigQuery(bqClient))
	}

	policyClient, err := mirrorPolicy.New()
	if err != nil {
		return goerr.Wrap(err, "failed to load mirror policy")
	}
	if policyClient != nil {
		clientOpts = append(clientOpts, infra.WithPolicy(policyClient))
	}

	uc := usecase.New(infra.New(clientOpts...))

	if _, err := uc.Process(ctx, &model.ProcessInput{
		Org:      target.Org(),
		Workers:  target.Workers(),
		MaxRepos: numRepos,
	}); err != nil {
		return goerr.Wrap(err, "failed to process repositories")
	}

	return nil
}
