package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHubClient

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/google/go-github/v75/github"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHubClient is the full GitHub API surface the pipeline needs. Every
// method observes the shared rate budget and returns errors classified
// into the domain taxonomy.
type GitHubClient interface {
	// Repository provisioning
	GetRepository(ctx context.Context, org types.OrgName, name types.RepoName) (*github.Repository, error)
	CreateFork(ctx context.Context, source *model.GitHubRepo, org types.OrgName, name types.RepoName) (*github.Repository, error)
	ListOrgForks(ctx context.Context, org types.OrgName) ([]*github.Repository, error)

	// GHAS feature enablement
	EnableVulnerabilityAlerts(ctx context.Context, org types.OrgName, name types.RepoName) error
	EnableAutomatedSecurityFixes(ctx context.Context, org types.OrgName, name types.RepoName) error
	EnableSecretScanning(ctx context.Context, org types.OrgName, name types.RepoName) error
	EnablePushProtection(ctx context.Context, org types.OrgName, name types.RepoName) error
	EnableCodeScanningDefaultSetup(ctx context.Context, org types.OrgName, name types.RepoName) error
	HasDependabotConfig(ctx context.Context, org types.OrgName, name types.RepoName) (bool, error)

	// Alert collection (fully paginated, open alerts only)
	CountCodeAlerts(ctx context.Context, org types.OrgName, name types.RepoName) (*model.CodeAlertCounts, error)
	CountSecretAlerts(ctx context.Context, org types.OrgName, name types.RepoName) (*model.SecretAlertCounts, error)
	CountDependencyAlerts(ctx context.Context, org types.OrgName, name types.RepoName) (*model.DependencyAlertCounts, error)

	// Org custom properties
	ListOrgProperties(ctx context.Context, org types.OrgName) ([]types.PropertyName, error)
	UpsertOrgProperty(ctx context.Context, org types.OrgName, def *model.PropertyDefinition) error
	ListOrgPropertyValues(ctx context.Context, org types.OrgName) (map[types.RepoName]model.PropertyValues, error)
	GetRepoPropertyValues(ctx context.Context, org types.OrgName, name types.RepoName) (model.PropertyValues, error)
	WriteRepoProperties(ctx context.Context, org types.OrgName, name types.RepoName, values model.PropertyValues) error

	// Budget introspection, for run logging
	RateLimitSnapshot(ctx context.Context, org types.OrgName) (*model.RateLimitInfo, error)
}
