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

func reportCommand() *cli.Command {
	var (
		githubApp config.GitHubApp
		target    config.Target
		storage   config.Storage
		verbose   bool
	)

	return &cli.Command{
		Name:    "report",
		Aliases: []string{"r"},
		Usage:   "Generate JSON and Markdown posture reports for the mirror organization",
		Flags: slice.Flatten([]cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "Enable debug logging",
				Destination: &verbose,
			},
		}, githubApp.Flags(), target.Flags(), storage.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if verbose {
				if err := ConfigureLogging(logFormat, "debug", logOutput); err != nil {
					return err
				}
			}
			return runReport(ctx, &githubApp, &target, &storage)
		},
	}
}

func runReport(ctx context.Context, githubApp *config.GitHubApp, target *config.Target, storage *config.Storage) error {
	logging.Default().Info("Starting report",
		slog.Any("github_app", githubApp),
		slog.Any("target", target),
		slog.Any("storage", storage),
	)

	ghClient, err := githubApp.New()
	if err != nil {
		return goerr.Wrap(err, "failed to create GitHub client")
	}

	store, err := storage.NewStorage(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to create report storage")
	}

	clients := infra.New(
		infra.WithGitHub(ghClient),
		infra.WithReportStorage(store),
	)

	uc := usecase.New(clients)

	if _, err := uc.Report(ctx, &model.ReportInput{
		Org:    target.Org(),
		Window: target.ScanWindow(),
	}); err != nil {
		return goerr.Wrap(err, "failed to generate report")
	}

	return nil
}
