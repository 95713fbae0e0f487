package config

import (
	"log/slog"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/infra/policy"
	"github.com/urfave/cli/v3"
)

type Policy struct {
	paths []string
	query string
}

func (x *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "policy",
			Usage:       "Path of a Rego policy file or directory gating mirror candidates (repeatable)",
			Category:    "Policy",
			Destination: &x.paths,
			Sources:     cli.EnvVars("MCPSCAN_POLICY"),
		},
		&cli.StringFlag{
			Name:        "policy-query",
			Usage:       "Rego query entrypoint for the mirror policy",
			Category:    "Policy",
			Value:       "data.mirror",
			Destination: &x.query,
			Sources:     cli.EnvVars("MCPSCAN_POLICY_QUERY"),
		},
	}
}

func (x *Policy) Enabled() bool {
	return len(x.paths) > 0
}

// New loads the configured policy files, or returns nil when no policy
// is configured so every candidate is allowed.
func (x *Policy) New() (interfaces.Policy, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return policy.New(x.paths, policy.WithQuery(x.query))
}

func (x *Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("paths", x.paths),
		slog.String("query", x.query),
	)
}
