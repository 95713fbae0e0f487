package config

import (
	"context"
	"log/slog"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/repository/gcs"
	"github.com/mcp-research/mcp-security-scans/pkg/repository/local"
	"github.com/urfave/cli/v3"
)

// Storage selects where report artifacts go. A bucket takes precedence
// over the local directory.
type Storage struct {
	reportDir    string
	reportBucket string
	reportPrefix string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "report-dir",
			Usage:       "Local directory for report artifacts",
			Category:    "Report",
			Value:       "reports",
			Destination: &x.reportDir,
			Sources:     cli.EnvVars("MCPSCAN_REPORT_DIR"),
		},
		&cli.StringFlag{
			Name:        "report-bucket",
			Usage:       "GCS bucket for report artifacts (overrides --report-dir)",
			Category:    "Report",
			Destination: &x.reportBucket,
			Sources:     cli.EnvVars("MCPSCAN_REPORT_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "report-prefix",
			Usage:       "Object name prefix inside the report bucket",
			Category:    "Report",
			Destination: &x.reportPrefix,
			Sources:     cli.EnvVars("MCPSCAN_REPORT_PREFIX"),
		},
	}
}

func (x *Storage) NewStorage(ctx context.Context) (interfaces.ReportStorage, error) {
	if x.reportBucket != "" {
		return gcs.New(ctx, x.reportBucket, gcs.WithPrefix(x.reportPrefix))
	}
	return local.New(x.reportDir)
}

func (x *Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("reportDir", x.reportDir),
		slog.String("reportBucket", x.reportBucket),
		slog.String("reportPrefix", x.reportPrefix),
	)
}
