package interfaces

import (
	"context"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
)

// RepoSource yields discovery documents describing source repositories to
// mirror. Providers are composed in an explicit ordered list; document
// order within a provider is deterministic.
type RepoSource interface {
	// Name identifies the provider in logs.
	Name() string
	Configs(ctx context.Context) ([]*model.RepoConfig, error)
}

// Policy decides whether a mirror candidate may be processed. A nil
// Policy in the client bundle allows everything.
type Policy interface {
	Evaluate(ctx context.Context, query *model.MirrorQuery) (*model.PolicyDecision, error)
}
