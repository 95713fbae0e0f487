package infra

import (
	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
)

// Clients bundles the external dependencies of the use cases. Every
// field has a mock or in-memory counterpart for tests.
type Clients struct {
	githubClient  interfaces.GitHubClient
	bqClient      interfaces.BigQuery
	policyClient  interfaces.Policy
	sources       []interfaces.RepoSource
	reportStorage interfaces.ReportStorage
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.githubClient
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}

// Policy returns the mirror policy, or nil when no policy is configured.
func (x *Clients) Policy() interfaces.Policy {
	return x.policyClient
}

// Sources returns discovery providers in their configured order.
func (x *Clients) Sources() []interfaces.RepoSource {
	return x.sources
}
func (x *Clients) ReportStorage() interfaces.ReportStorage {
	return x.reportStorage
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithPolicy(client interfaces.Policy) Option {
	return func(x *Clients) {
		x.policyClient = client
	}
}

func WithSources(sources ...interfaces.RepoSource) Option {
	return func(x *Clients) {
		x.sources = append(x.sources, sources...)
	}
}

func WithReportStorage(storage interfaces.ReportStorage) Option {
	return func(x *Clients) {
		x.reportStorage = storage
	}
}
