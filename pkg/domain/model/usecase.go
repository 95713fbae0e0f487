package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

// ProcessInput drives the full provisioning batch. MaxRepos of zero
// means no cap.
type ProcessInput struct {
	Org      types.OrgName
	Workers  int
	MaxRepos int
}

func (x *ProcessInput) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "target org is empty")
	}
	if x.Workers < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "workers must not be negative", goerr.V("workers", x.Workers))
	}
	if x.MaxRepos < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "max repos must not be negative", goerr.V("max_repos", x.MaxRepos))
	}
	return nil
}

// AnalyzeInput drives an alert-count refresh over existing forks.
type AnalyzeInput struct {
	Org      types.OrgName
	MaxRepos int
	Window   time.Duration
}

func (x *AnalyzeInput) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "target org is empty")
	}
	if x.MaxRepos < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "max repos must not be negative", goerr.V("max_repos", x.MaxRepos))
	}
	if x.Window < 0 {
		return goerr.Wrap(types.ErrInvalidOption, "scan window must not be negative")
	}
	return nil
}

// ReportInput drives posture report generation.
type ReportInput struct {
	Org    types.OrgName
	Window time.Duration
}

func (x *ReportInput) Validate() error {
	if x.Org == "" {
		return goerr.Wrap(types.ErrInvalidOption, "target org is empty")
	}
	return nil
}

// RepoResult is the per-repository outcome of a process run.
type RepoResult struct {
	Source   GitHubRepo
	Fork     *ForkRecord
	Features *FeatureSummary
	Counts   *AlertCounts
	Err      error
}

func (x *RepoResult) Failed() bool {
	return x.Err != nil
}

// Metrics flattens the result for the BigQuery export.
func (x *RepoResult) Metrics() *RepoMetrics {
	m := &RepoMetrics{
		Source: x.Source.FullName(),
	}
	if x.Fork != nil {
		m.Fork = string(x.Fork.Name)
		m.ForkStatus = string(x.Fork.Status)
	}
	if x.Features != nil {
		m.FeaturesOK = x.Features.EnabledCount()
		m.FeaturesNG = x.Features.FailedCount()
	}
	if x.Counts != nil {
		m.CodeTotal = x.Counts.Code.Total
		m.CodeCritical = x.Counts.Code.Critical
		m.CodeHigh = x.Counts.Code.High
		m.SecretTotal = x.Counts.Secrets.Total
		m.DepTotal = x.Counts.Dependencies.Total
		m.DepCritical = x.Counts.Dependencies.Critical
		m.DepHigh = x.Counts.Dependencies.High
	}
	if x.Err != nil {
		m.Error = x.Err.Error()
	}
	return m
}

// MirrorQuery is the policy input for one mirror candidate.
type MirrorQuery struct {
	Source   *GitHubRepo    `json:"source"`
	Org      types.OrgName  `json:"org"`
	ForkName types.RepoName `json:"fork_name"`
}

// PolicyDecision is the policy output. An empty Deny list allows the
// candidate.
type PolicyDecision struct {
	Deny []string `json:"deny"`
}

func (x *PolicyDecision) Allowed() bool {
	return len(x.Deny) == 0
}
