package cli

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/gots/slice"
	"github.com/mcp-research/mcp-security-scans/pkg/cli/config"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/errutil"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

// Root logging flags live at package scope so command actions can
// raise the level (--verbose) without reparsing.
var (
	logLevel  string
	logFormat string
	logOutput string
)

type CLI struct {
}

func New() *CLI {
	return &CLI{}
}

func (x *CLI) Run(argv []string) error {
	var sentryConfig config.Sentry

	app := &cli.Command{
		Name:  "mcp-security-scans",
		Usage: "Mirror MCP repositories and track their GitHub security posture",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("MCPSCAN_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("MCPSCAN_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("MCPSCAN_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "-",
			},
		}, sentryConfig.Flags()),
		Commands: []*cli.Command{
			processCommand(),
			analyzeCommand(),
			reportCommand(),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}
			if err := sentryConfig.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
	}

	ctx := context.Background()
	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		sentry.Flush(2 * time.Second)
		return err
	}

	return nil
}
