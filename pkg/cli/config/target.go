package config

import (
	"log/slog"
	"time"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Target holds the settings shared by every command that touches the
// mirror organization.
type Target struct {
	org      types.OrgName
	scanDays int64
	workers  int64
}

func (x *Target) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "target-org",
			Usage:       "GitHub organization holding the mirror forks",
			Category:    "Target",
			Value:       "mcp-research",
			Destination: (*string)(&x.org),
			Sources:     cli.EnvVars("MCPSCAN_TARGET_ORG", "TARGET_ORG"),
		},
		&cli.Int64Flag{
			Name:        "scan-frequency-days",
			Usage:       "Minimum days between alert scans of the same repository",
			Category:    "Target",
			Value:       7,
			Destination: &x.scanDays,
			Sources:     cli.EnvVars("MCPSCAN_SCAN_FREQUENCY_DAYS", "SCAN_FREQUENCY_DAYS"),
		},
		&cli.Int64Flag{
			Name:        "workers",
			Usage:       "Number of concurrent repository workers",
			Category:    "Target",
			Value:       4,
			Destination: &x.workers,
			Sources:     cli.EnvVars("MCPSCAN_WORKERS"),
		},
	}
}

func (x *Target) Org() types.OrgName {
	return x.org
}

func (x *Target) ScanWindow() time.Duration {
	return time.Duration(x.scanDays) * 24 * time.Hour
}

func (x *Target) Workers() int {
	return int(x.workers)
}

func (x *Target) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("org", x.org),
		slog.Int64("scanFrequencyDays", x.scanDays),
		slog.Int64("workers", x.workers),
	)
}
