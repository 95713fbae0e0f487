package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

// GitHubRepo identifies a source repository on github.com.
type GitHubRepo struct {
	Owner    string `json:"owner"`
	RepoName string `json:"repo_name"`
}

func (x *GitHubRepo) FullName() string {
	return x.Owner + "/" + x.RepoName
}

// ForkName is the flattened name the source takes inside the target
// organization, e.g. octocat/hello-world -> octocat__hello-world.
func (x *GitHubRepo) ForkName() types.RepoName {
	return types.RepoName(x.Owner + "__" + x.RepoName)
}

// Key is the case-insensitive identity used for deduplication.
func (x *GitHubRepo) Key() string {
	return strings.ToLower(x.FullName())
}

// ParseForkName recovers the source owner/repo from a flattened fork
// name. GitHub owner names cannot contain underscores, so the first
// double underscore is always the separator. Reports false for names
// that were not produced by ForkName.
func ParseForkName(name types.RepoName) (*GitHubRepo, bool) {
	owner, repo, ok := strings.Cut(string(name), "__")
	if !ok || owner == "" || repo == "" {
		return nil, false
	}
	return &GitHubRepo{Owner: owner, RepoName: repo}, true
}

func (x *GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidation, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrValidation, "repo name is empty")
	}
	if strings.ContainsAny(x.Owner, "/ ") || strings.ContainsAny(x.RepoName, "/ ") {
		return goerr.Wrap(types.ErrValidation, "invalid repository identifier", goerr.V("repo", x.FullName()))
	}
	return nil
}

// ForkRecord is the result of idempotent fork provisioning.
type ForkRecord struct {
	Source        GitHubRepo
	Org           types.OrgName
	Name          types.RepoName
	Status        types.ForkStatus
	DefaultBranch types.BranchName
	HTMLURL       string
}

func (x *ForkRecord) Existed() bool {
	return x.Status == types.ForkStatusExists
}

// RateLimitInfo is a point-in-time view of the REST API core budget.
type RateLimitInfo struct {
	Limit     int
	Remaining int
	Reset     time.Time
}
