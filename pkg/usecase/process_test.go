package usecase_test

import (
	"context"
	"sync"
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/mock"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/infra"
	"github.com/mcp-research/mcp-security-scans/pkg/infra/source"
	"github.com/mcp-research/mcp-security-scans/pkg/usecase"
)

// pipelineMock simulates a small remote org: forks appear when created
// and the property schema is already in place.
type pipelineMock struct {
	*mock.GitHubClientMock

	mu       sync.Mutex
	existing map[types.RepoName]*github.Repository
}

func newPipelineMock() *pipelineMock {
	p := &pipelineMock{
		GitHubClientMock: &mock.GitHubClientMock{},
		existing:         map[types.RepoName]*github.Repository{},
	}

	enable := func(ctx context.Context, org types.OrgName, name types.RepoName) error { return nil }

	p.GetRepositoryFunc = func(ctx context.Context, org types.OrgName, name types.RepoName) (*github.Repository, error) {
		p.mu.Lock()
		defer p.mu.Unlock()
		if repo, ok := p.existing[name]; ok {
			return repo, nil
		}
		return nil, goerr.Wrap(types.ErrNotFound, "repository not found")
	}
	p.CreateForkFunc = func(ctx context.Context, src *model.GitHubRepo, org types.OrgName, name types.RepoName) (*github.Repository, error) {
		p.mu.Lock()
		defer p.mu.Unlock()
		p.existing[name] = &github.Repository{
			Name:          github.Ptr(string(name)),
			Fork:          github.Ptr(true),
			DefaultBranch: github.Ptr("main"),
			Parent:        &github.Repository{FullName: github.Ptr(src.FullName())},
		}
		return &github.Repository{Name: github.Ptr(string(name))}, nil
	}
	p.EnableVulnerabilityAlertsFunc = enable
	p.EnableAutomatedSecurityFixesFunc = enable
	p.EnableSecretScanningFunc = enable
	p.EnablePushProtectionFunc = enable
	p.EnableCodeScanningDefaultSetupFunc = enable
	p.HasDependabotConfigFunc = func(ctx context.Context, org types.OrgName, name types.RepoName) (bool, error) {
		return false, nil
	}
	p.CountCodeAlertsFunc = func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.CodeAlertCounts, error) {
		return &model.CodeAlertCounts{Total: 1, High: 1}, nil
	}
	p.CountSecretAlertsFunc = func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.SecretAlertCounts, error) {
		return &model.SecretAlertCounts{}, nil
	}
	p.CountDependencyAlertsFunc = func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.DependencyAlertCounts, error) {
		return &model.DependencyAlertCounts{}, nil
	}
	p.ListOrgPropertiesFunc = func(ctx context.Context, org types.OrgName) ([]types.PropertyName, error) {
		var names []types.PropertyName
		for _, def := range model.PropertyCatalog() {
			names = append(names, def.Name)
		}
		return names, nil
	}
	p.WriteRepoPropertiesFunc = func(ctx context.Context, org types.OrgName, name types.RepoName, values model.PropertyValues) error {
		return nil
	}
	p.RateLimitSnapshotFunc = func(ctx context.Context, org types.OrgName) (*model.RateLimitInfo, error) {
		return &model.RateLimitInfo{Limit: 5000, Remaining: 4500}, nil
	}

	return p
}

// addFork seeds an existing, correctly parented fork.
func (x *pipelineMock) addFork(source model.GitHubRepo) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.existing[source.ForkName()] = &github.Repository{
		Name:          github.Ptr(string(source.ForkName())),
		Fork:          github.Ptr(true),
		DefaultBranch: github.Ptr("main"),
		Parent:        &github.Repository{FullName: github.Ptr(source.FullName())},
	}
}

func TestProcessFullRun(t *testing.T) {
	ctx := context.Background()
	ghMock := newPipelineMock()

	clients := infra.New(
		infra.WithGitHub(ghMock),
		infra.WithSources(source.NewStatic("flags", []string{"alice/one", "bob/two"})),
	)
	uc := usecase.New(clients)

	metrics := gt.R1(uc.Process(ctx, &model.ProcessInput{Org: "mcp-research"})).NoError(t)
	gt.V(t, metrics.Succeeded).Equal(2)
	gt.V(t, metrics.Failed).Equal(0)
	gt.V(t, metrics.Skipped).Equal(0)
	gt.A(t, metrics.Repos).Length(2)

	gt.A(t, ghMock.CreateForkCalls()).Length(2)
	// Two property writes per repo: counts, then timestamp.
	gt.A(t, ghMock.WriteRepoPropertiesCalls()).Length(4)
	// The schema was already complete, so nothing was created.
	gt.A(t, ghMock.UpsertOrgPropertyCalls()).Length(0)
}

func TestProcessSecondRunCreatesNothing(t *testing.T) {
	ctx := context.Background()

	ghMock := newPipelineMock()
	clients := infra.New(
		infra.WithGitHub(ghMock),
		infra.WithSources(source.NewStatic("flags", []string{"alice/one", "bob/two"})),
	)

	uc := usecase.New(clients)
	input := &model.ProcessInput{Org: "mcp-research"}

	first := gt.R1(uc.Process(ctx, input)).NoError(t)
	gt.V(t, first.Succeeded).Equal(2)
	gt.A(t, ghMock.CreateForkCalls()).Length(2)

	second := gt.R1(uc.Process(ctx, input)).NoError(t)
	gt.V(t, second.Succeeded).Equal(2)
	// Forks existed after the first run: zero additional creation calls.
	gt.A(t, ghMock.CreateForkCalls()).Length(2)
}

func TestProcessConflictIsSkippedNotFailed(t *testing.T) {
	ctx := context.Background()

	ghMock := newPipelineMock()
	// alice__one is occupied by a repository that is not our fork.
	ghMock.mu.Lock()
	ghMock.existing["alice__one"] = &github.Repository{
		Name: github.Ptr("alice__one"),
		Fork: github.Ptr(false),
	}
	ghMock.mu.Unlock()

	clients := infra.New(
		infra.WithGitHub(ghMock),
		infra.WithSources(source.NewStatic("flags", []string{"alice/one", "bob/two"})),
	)
	uc := usecase.New(clients)

	metrics := gt.R1(uc.Process(ctx, &model.ProcessInput{Org: "mcp-research"})).NoError(t)
	gt.V(t, metrics.Succeeded).Equal(1)
	gt.V(t, metrics.Failed).Equal(0)
	gt.V(t, metrics.Skipped).Equal(1)

	gt.A(t, metrics.Repos).Length(2)
	gt.V(t, metrics.Repos[0].ForkStatus).Equal(string(types.ForkStatusConflict))
	gt.A(t, ghMock.CreateForkCalls()).Length(1)
}

func TestProcessRepoFailureIsIsolated(t *testing.T) {
	ctx := context.Background()

	ghMock := newPipelineMock()
	ghMock.CountCodeAlertsFunc = func(ctx context.Context, org types.OrgName, name types.RepoName) (*model.CodeAlertCounts, error) {
		if name == "alice__one" {
			return nil, goerr.Wrap(types.ErrTransient, "scanning backend down")
		}
		return &model.CodeAlertCounts{}, nil
	}

	clients := infra.New(
		infra.WithGitHub(ghMock),
		infra.WithSources(source.NewStatic("flags", []string{"alice/one", "bob/two"})),
	)
	uc := usecase.New(clients)

	metrics, err := uc.Process(ctx, &model.ProcessInput{Org: "mcp-research"})
	gt.Error(t, err)
	gt.V(t, metrics.Failed).Equal(1)
	gt.V(t, metrics.Succeeded).Equal(1)

	// Both repositories were attempted despite the failure.
	gt.A(t, metrics.Repos).Length(2)
	gt.A(t, ghMock.CreateForkCalls()).Length(2)
}

func TestProcessPolicyDeniesRepo(t *testing.T) {
	ctx := context.Background()

	ghMock := newPipelineMock()
	policy := &denyListPolicy{deny: map[string][]string{
		"alice/one": {"archived upstream"},
	}}

	clients := infra.New(
		infra.WithGitHub(ghMock),
		infra.WithPolicy(policy),
		infra.WithSources(source.NewStatic("flags", []string{"alice/one", "bob/two"})),
	)
	uc := usecase.New(clients)

	metrics := gt.R1(uc.Process(ctx, &model.ProcessInput{Org: "mcp-research"})).NoError(t)
	gt.V(t, metrics.Succeeded).Equal(1)
	gt.V(t, metrics.Skipped).Equal(1)
	gt.A(t, metrics.Repos).Length(1)

	// The denied repository was never touched.
	gt.A(t, ghMock.CreateForkCalls()).Length(1)
	gt.V(t, string(ghMock.CreateForkCalls()[0].Name)).Equal("bob__two")
}

func TestProcessDeduplicatesSources(t *testing.T) {
	ctx := context.Background()

	ghMock := newPipelineMock()
	clients := infra.New(
		infra.WithGitHub(ghMock),
		infra.WithSources(
			source.NewStatic("a", []string{"alice/one"}),
			source.NewStatic("b", []string{"Alice/One", "bob/two"}),
		),
	)
	uc := usecase.New(clients)

	metrics := gt.R1(uc.Process(ctx, &model.ProcessInput{Org: "mcp-research"})).NoError(t)
	gt.V(t, metrics.Succeeded).Equal(2)
	gt.A(t, ghMock.CreateForkCalls()).Length(2)
}

func TestProcessMaxReposCap(t *testing.T) {
	ctx := context.Background()

	ghMock := newPipelineMock()
	clients := infra.New(
		infra.WithGitHub(ghMock),
		infra.WithSources(source.NewStatic("flags", []string{"alice/one", "bob/two", "carol/three"})),
	)
	uc := usecase.New(clients)

	metrics := gt.R1(uc.Process(ctx, &model.ProcessInput{Org: "mcp-research", MaxRepos: 1})).NoError(t)
	gt.V(t, metrics.Succeeded).Equal(1)
	gt.A(t, metrics.Repos).Length(1)
	gt.V(t, metrics.Repos[0].Source).Equal("alice/one")
}

func TestProcessExportsRunMetrics(t *testing.T) {
	ctx := context.Background()

	ghMock := newPipelineMock()
	bqMock := &mock.BigQueryMock{
		GetMetadataFunc: func(ctx context.Context) (*bigquery.TableMetadata, error) {
			return nil, nil
		},
		CreateTableFunc: func(ctx context.Context, md *bigquery.TableMetadata) error {
			return nil
		},
		InsertFunc: func(ctx context.Context, schema bigquery.Schema, data any) error {
			record, ok := data.(*model.RunRawRecord)
			gt.True(t, ok)
			gt.V(t, record.Command).Equal("process")
			gt.V(t, record.Succeeded).Equal(1)
			return nil
		},
	}

	clients := infra.New(
		infra.WithGitHub(ghMock),
		infra.WithBigQuery(bqMock),
		infra.WithSources(source.NewStatic("flags", []string{"alice/one"})),
	)
	uc := usecase.New(clients)

	gt.R1(uc.Process(ctx, &model.ProcessInput{Org: "mcp-research"})).NoError(t)
	gt.A(t, bqMock.InsertCalls()).Length(1)
	gt.A(t, bqMock.CreateTableCalls()).Length(1)
}

func TestProcessValidatesInput(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(infra.New(infra.WithGitHub(newPipelineMock())))

	_, err := uc.Process(ctx, &model.ProcessInput{})
	gt.Error(t, err)

	_, err = uc.Process(ctx, &model.ProcessInput{Org: "mcp-research", Workers: -1})
	gt.Error(t, err)
}

// denyListPolicy denies sources listed in deny, allowing the rest.
type denyListPolicy struct {
	deny map[string][]string
}

func (x *denyListPolicy) Evaluate(ctx context.Context, query *model.MirrorQuery) (*model.PolicyDecision, error) {
	return &model.PolicyDecision{Deny: x.deny[query.Source.FullName()]}, nil
}
