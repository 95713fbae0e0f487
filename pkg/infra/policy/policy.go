// Package policy evaluates mirror candidates against Rego policies. The
// expected entrypoint is the mirror package with a deny rule that yields
// human readable reasons.
package policy

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/opac"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

const defaultQuery = "data.mirror"

type Client struct {
	query  string
	client *opac.Client
}

var _ interfaces.Policy = (*Client)(nil)

type Option func(*Client)

// WithQuery overrides the Rego query entrypoint.
func WithQuery(query string) Option {
	return func(x *Client) {
		x.query = query
	}
}

// New loads Rego policy files from the given file or directory paths.
func New(paths []string, options ...Option) (*Client, error) {
	if len(paths) == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "no policy file paths")
	}

	client, err := opac.New(opac.Files(paths...))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load policy files", goerr.V("paths", paths))
	}

	policy := &Client{
		query:  defaultQuery,
		client: client,
	}
	for _, opt := range options {
		opt(policy)
	}
	return policy, nil
}

func (x *Client) Evaluate(ctx context.Context, query *model.MirrorQuery) (*model.PolicyDecision, error) {
	var decision model.PolicyDecision
	if err := x.client.Query(ctx, x.query, query, &decision); err != nil {
		return nil, goerr.Wrap(err, "failed to evaluate mirror policy",
			goerr.V("source", query.Source.FullName()))
	}
	return &decision, nil
}
