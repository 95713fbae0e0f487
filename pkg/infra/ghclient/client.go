package ghclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/cenkalti/backoff"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/interfaces"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

const dependabotConfigPath = ".github/dependabot.yml"

// Client talks to the GitHub REST API as a GitHub App. Installation
// tokens are resolved per owner and cached, and every request runs
// through the shared rate gate with bounded retries.
type Client struct {
	appID      types.GitHubAppID
	privateKey types.GitHubAppPrivateKey

	gate *RateGate

	mu       sync.Mutex
	appCli   *github.Client
	installs map[string]*github.Client
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client)

// WithRateGate replaces the default gate, mainly to share one budget
// across clients or to loosen limits in tests.
func WithRateGate(gate *RateGate) Option {
	return func(x *Client) {
		x.gate = gate
	}
}

func New(appID types.GitHubAppID, privateKey types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	client := &Client{
		appID:      appID,
		privateKey: privateKey,
		gate:       defaultRateGate(),
		installs:   map[string]*github.Client{},
	}

	for _, opt := range options {
		opt(client)
	}

	if client.appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App ID is not set")
	}
	if client.privateKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub App private key is not set")
	}

	return client, nil
}

// Gate exposes the shared budget guard, e.g. for run summary logging.
func (x *Client) Gate() *RateGate {
	return x.gate
}

func (x *Client) appClient() (*github.Client, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	if x.appCli != nil {
		return x.appCli, nil
	}

	tr, err := ghinstallation.NewAppsTransport(http.DefaultTransport, int64(x.appID), []byte(x.privateKey))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create GitHub App transport", goerr.V("appID", x.appID))
	}

	x.appCli = github.NewClient(&http.Client{Transport: tr})
	return x.appCli, nil
}

// clientForOrg returns a REST client authenticated with the App
// installation of the given owner, creating and caching it on first use.
func (x *Client) clientForOrg(ctx context.Context, org types.OrgName) (*github.Client, error) {
	x.mu.Lock()
	cached, ok := x.installs[org.String()]
	x.mu.Unlock()
	if ok {
		return cached, nil
	}

	installID, err := x.findInstallation(ctx, org.String())
	if err != nil {
		return nil, err
	}

	tr, err := ghinstallation.New(http.DefaultTransport, int64(x.appID), int64(installID), []byte(x.privateKey))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create installation transport",
			goerr.V("org", org), goerr.V("installID", installID))
	}

	client := github.NewClient(&http.Client{Transport: tr})

	x.mu.Lock()
	x.installs[org.String()] = client
	x.mu.Unlock()

	return client, nil
}

// findInstallation resolves the App installation for an owner, falling
// back from organization to user installations for personal accounts.
func (x *Client) findInstallation(ctx context.Context, owner string) (types.GitHubAppInstallID, error) {
	appCli, err := x.appClient()
	if err != nil {
		return 0, err
	}

	var installID types.GitHubAppInstallID
	err = x.call(ctx, "apps.find_installation", func(ctx context.Context) (*github.Response, error) {
		install, resp, err := appCli.Apps.FindOrganizationInstallation(ctx, owner)
		if err == nil {
			installID = types.GitHubAppInstallID(install.GetID())
			return resp, nil
		}

		if resp != nil && resp.StatusCode == http.StatusNotFound {
			install, userResp, userErr := appCli.Apps.FindUserInstallation(ctx, owner)
			if userErr == nil {
				installID = types.GitHubAppInstallID(install.GetID())
			}
			return userResp, userErr
		}

		return resp, err
	})
	if err != nil {
		return 0, goerr.Wrap(err, "no GitHub App installation for owner", goerr.V("owner", owner))
	}

	logging.From(ctx).Debug("resolved GitHub App installation",
		"owner", owner,
		"installID", installID,
	)
	return installID, nil
}

// call runs one API operation under the rate gate with bounded retries.
// The op must return the response so the gate can observe the remaining
// budget; classified permanent errors stop the retry loop immediately.
func (x *Client) call(ctx context.Context, name string, op func(ctx context.Context) (*github.Response, error)) error {
	operation := func() error {
		if err := x.gate.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}

		resp, err := op(ctx)
		x.gate.Observe(resp)
		if err == nil {
			return nil
		}

		var rateErr *github.RateLimitError
		if errors.As(err, &rateErr) {
			x.gate.PauseUntil(rateErr.Rate.Reset.Time)
		}
		var abuseErr *github.AbuseRateLimitError
		if errors.As(err, &abuseErr) {
			if wait := abuseErr.GetRetryAfter(); wait > 0 {
				x.gate.PauseUntil(time.Now().Add(wait))
			}
		}

		classified := classifyAPIError(err)
		if isPermanent(classified) {
			return backoff.Permanent(classified)
		}

		logging.From(ctx).Debug("retrying GitHub API call",
			"op", name,
			"error", classified.Error(),
		)
		return classified
	}

	if err := backoff.Retry(operation, retryPolicy(ctx)); err != nil {
		return goerr.Wrap(err, "GitHub API call failed", goerr.V("op", name))
	}
	return nil
}

func (x *Client) GetRepository(ctx context.Context, org types.OrgName, name types.RepoName) (*github.Repository, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	var repo *github.Repository
	err = x.call(ctx, "repos.get", func(ctx context.Context) (*github.Response, error) {
		got, resp, err := client.Repositories.Get(ctx, org.String(), name.String())
		if err == nil {
			repo = got
		}
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// CreateFork forks the source repository into the target org under the
// given name. The API answers 202 while the fork is generated in the
// background; that is treated as success.
func (x *Client) CreateFork(ctx context.Context, source *model.GitHubRepo, org types.OrgName, name types.RepoName) (*github.Repository, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	opts := &github.RepositoryCreateForkOptions{
		Organization:      org.String(),
		Name:              name.String(),
		DefaultBranchOnly: false,
	}

	var fork *github.Repository
	err = x.call(ctx, "repos.create_fork", func(ctx context.Context) (*github.Response, error) {
		created, resp, err := client.Repositories.CreateFork(ctx, source.Owner, source.RepoName, opts)
		var accepted *github.AcceptedError
		if errors.As(err, &accepted) {
			err = nil
		}
		if err == nil {
			fork = created
		}
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return fork, nil
}

func (x *Client) ListOrgForks(ctx context.Context, org types.OrgName) ([]*github.Repository, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	opts := &github.RepositoryListByOrgOptions{
		Type:        "forks",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []*github.Repository
	for {
		var page []*github.Repository
		var nextPage int
		err := x.call(ctx, "repos.list_org_forks", func(ctx context.Context) (*github.Response, error) {
			repos, resp, err := client.Repositories.ListByOrg(ctx, org.String(), opts)
			if err == nil {
				page = repos
				if resp != nil {
					nextPage = resp.NextPage
				}
			}
			return resp, err
		})
		if err != nil {
			return nil, err
		}

		all = append(all, page...)
		if nextPage == 0 {
			break
		}
		opts.Page = nextPage
	}

	return all, nil
}

func (x *Client) EnableVulnerabilityAlerts(ctx context.Context, org types.OrgName, name types.RepoName) error {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return err
	}

	return x.call(ctx, "repos.enable_vulnerability_alerts", func(ctx context.Context) (*github.Response, error) {
		return client.Repositories.EnableVulnerabilityAlerts(ctx, org.String(), name.String())
	})
}

func (x *Client) EnableAutomatedSecurityFixes(ctx context.Context, org types.OrgName, name types.RepoName) error {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return err
	}

	return x.call(ctx, "repos.enable_automated_security_fixes", func(ctx context.Context) (*github.Response, error) {
		return client.Repositories.EnableAutomatedSecurityFixes(ctx, org.String(), name.String())
	})
}

func (x *Client) EnableSecretScanning(ctx context.Context, org types.OrgName, name types.RepoName) error {
	return x.editSecurity(ctx, org, name, "repos.enable_secret_scanning", &github.SecurityAndAnalysis{
		SecretScanning: &github.SecretScanning{Status: github.Ptr("enabled")},
	})
}

func (x *Client) EnablePushProtection(ctx context.Context, org types.OrgName, name types.RepoName) error {
	return x.editSecurity(ctx, org, name, "repos.enable_push_protection", &github.SecurityAndAnalysis{
		SecretScanningPushProtection: &github.SecretScanningPushProtection{Status: github.Ptr("enabled")},
	})
}

func (x *Client) editSecurity(ctx context.Context, org types.OrgName, name types.RepoName, op string, sa *github.SecurityAndAnalysis) error {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return err
	}

	return x.call(ctx, op, func(ctx context.Context) (*github.Response, error) {
		_, resp, err := client.Repositories.Edit(ctx, org.String(), name.String(), &github.Repository{
			SecurityAndAnalysis: sa,
		})
		return resp, err
	})
}

func (x *Client) EnableCodeScanningDefaultSetup(ctx context.Context, org types.OrgName, name types.RepoName) error {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return err
	}

	opts := &github.UpdateDefaultSetupConfigurationOptions{
		State: "configured",
	}

	return x.call(ctx, "code_scanning.enable_default_setup", func(ctx context.Context) (*github.Response, error) {
		_, resp, err := client.CodeScanning.UpdateDefaultSetupConfiguration(ctx, org.String(), name.String(), opts)
		var accepted *github.AcceptedError
		if errors.As(err, &accepted) {
			err = nil
		}
		return resp, err
	})
}

// HasDependabotConfig probes for .github/dependabot.yml on the default
// branch. A missing file is a normal answer, not an error.
func (x *Client) HasDependabotConfig(ctx context.Context, org types.OrgName, name types.RepoName) (bool, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return false, err
	}

	err = x.call(ctx, "repos.get_dependabot_config", func(ctx context.Context) (*github.Response, error) {
		_, _, resp, err := client.Repositories.GetContents(ctx, org.String(), name.String(), dependabotConfigPath, nil)
		return resp, err
	})
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// CountCodeAlerts pages through all open code scanning alerts and
// buckets them by severity. A repository without active code scanning
// reads as zero alerts.
func (x *Client) CountCodeAlerts(ctx context.Context, org types.OrgName, name types.RepoName) (*model.CodeAlertCounts, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	counts := &model.CodeAlertCounts{}
	opts := &github.AlertListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		var page []*github.Alert
		var nextPage int
		err := x.call(ctx, "code_scanning.list_alerts", func(ctx context.Context) (*github.Response, error) {
			alerts, resp, err := client.CodeScanning.ListAlertsForRepo(ctx, org.String(), name.String(), opts)
			if err == nil {
				page = alerts
				if resp != nil {
					nextPage = resp.NextPage
				}
			}
			return resp, err
		})
		if err != nil {
			if featureInactive(err) {
				return &model.CodeAlertCounts{}, nil
			}
			return nil, err
		}

		for _, alert := range page {
			counts.Add(codeAlertSeverity(alert))
		}
		if nextPage == 0 {
			break
		}
		opts.ListOptions.Page = nextPage
	}

	return counts, nil
}

// codeAlertSeverity prefers the security severity of the matched rule
// and falls back to the rule severity (error, warning, note).
func codeAlertSeverity(alert *github.Alert) string {
	rule := alert.GetRule()
	if rule == nil {
		return ""
	}
	if level := rule.GetSecuritySeverityLevel(); level != "" {
		return level
	}
	return rule.GetSeverity()
}

// CountSecretAlerts pages through all open secret scanning alerts and
// tallies them by secret type display name.
func (x *Client) CountSecretAlerts(ctx context.Context, org types.OrgName, name types.RepoName) (*model.SecretAlertCounts, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	counts := &model.SecretAlertCounts{}
	opts := &github.SecretScanningAlertListOptions{
		State:       "open",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		var page []*github.SecretScanningAlert
		var nextPage int
		err := x.call(ctx, "secret_scanning.list_alerts", func(ctx context.Context) (*github.Response, error) {
			alerts, resp, err := client.SecretScanning.ListAlertsForRepo(ctx, org.String(), name.String(), opts)
			if err == nil {
				page = alerts
				if resp != nil {
					nextPage = resp.NextPage
				}
			}
			return resp, err
		})
		if err != nil {
			if featureInactive(err) {
				return &model.SecretAlertCounts{}, nil
			}
			return nil, err
		}

		for _, alert := range page {
			counts.Add(secretTypeName(alert))
		}
		if nextPage == 0 {
			break
		}
		opts.ListOptions.Page = nextPage
	}

	return counts, nil
}

func secretTypeName(alert *github.SecretScanningAlert) string {
	if name := alert.GetSecretTypeDisplayName(); name != "" {
		return name
	}
	return alert.GetSecretType()
}

// CountDependencyAlerts pages through all open Dependabot alerts with
// cursor pagination and buckets them by advisory severity.
func (x *Client) CountDependencyAlerts(ctx context.Context, org types.OrgName, name types.RepoName) (*model.DependencyAlertCounts, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	counts := &model.DependencyAlertCounts{}
	opts := &github.ListAlertsOptions{
		State:             github.Ptr("open"),
		ListCursorOptions: github.ListCursorOptions{PerPage: 100},
	}

	for {
		var page []*github.DependabotAlert
		var after string
		err := x.call(ctx, "dependabot.list_alerts", func(ctx context.Context) (*github.Response, error) {
			alerts, resp, err := client.Dependabot.ListRepoAlerts(ctx, org.String(), name.String(), opts)
			if err == nil {
				page = alerts
				if resp != nil {
					after = resp.After
				}
			}
			return resp, err
		})
		if err != nil {
			if featureInactive(err) {
				return &model.DependencyAlertCounts{}, nil
			}
			return nil, err
		}

		for _, alert := range page {
			counts.Add(alert.GetSecurityVulnerability().GetSeverity())
		}
		if after == "" {
			break
		}
		opts.ListCursorOptions.After = after
	}

	return counts, nil
}

func (x *Client) ListOrgProperties(ctx context.Context, org types.OrgName) ([]types.PropertyName, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	var names []types.PropertyName
	err = x.call(ctx, "orgs.list_custom_properties", func(ctx context.Context) (*github.Response, error) {
		props, resp, err := client.Organizations.GetAllCustomProperties(ctx, org.String())
		if err == nil {
			names = names[:0]
			for _, prop := range props {
				names = append(names, types.PropertyName(prop.GetPropertyName()))
			}
		}
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (x *Client) UpsertOrgProperty(ctx context.Context, org types.OrgName, def *model.PropertyDefinition) error {
	if err := def.Validate(); err != nil {
		return err
	}

	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return err
	}

	prop := &github.CustomProperty{
		PropertyName: github.Ptr(def.Name.String()),
		ValueType:    string(def.ValueType),
		Description:  github.Ptr(def.Description),
	}

	return x.call(ctx, "orgs.upsert_custom_property", func(ctx context.Context) (*github.Response, error) {
		_, resp, err := client.Organizations.CreateOrUpdateCustomProperty(ctx, org.String(), def.Name.String(), prop)
		return resp, err
	})
}

// ListOrgPropertyValues fetches custom property values for every
// repository of the org in one paginated sweep.
func (x *Client) ListOrgPropertyValues(ctx context.Context, org types.OrgName) (map[types.RepoName]model.PropertyValues, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	out := map[types.RepoName]model.PropertyValues{}
	opts := &github.ListCustomPropertyValuesOptions{ListOptions: github.ListOptions{PerPage: 100}}

	for {
		var nextPage int
		err := x.call(ctx, "orgs.list_custom_property_values", func(ctx context.Context) (*github.Response, error) {
			values, resp, err := client.Organizations.ListCustomPropertyValues(ctx, org.String(), opts)
			if err == nil {
				for _, repoValues := range values {
					props := model.PropertyValues{}
					for _, value := range repoValues.Properties {
						props[types.PropertyName(value.PropertyName)] = propertyValueString(value.Value)
					}
					out[types.RepoName(repoValues.RepositoryName)] = props
				}
				if resp != nil {
					nextPage = resp.NextPage
				}
			}
			return resp, err
		})
		if err != nil {
			return nil, err
		}
		if nextPage == 0 {
			break
		}
		opts.Page = nextPage
	}

	return out, nil
}

func (x *Client) GetRepoPropertyValues(ctx context.Context, org types.OrgName, name types.RepoName) (model.PropertyValues, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	props := model.PropertyValues{}
	err = x.call(ctx, "repos.get_custom_property_values", func(ctx context.Context) (*github.Response, error) {
		values, resp, err := client.Repositories.GetAllCustomPropertyValues(ctx, org.String(), name.String())
		if err == nil {
			for _, value := range values {
				props[types.PropertyName(value.PropertyName)] = propertyValueString(value.Value)
			}
		}
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	return props, nil
}

func (x *Client) WriteRepoProperties(ctx context.Context, org types.OrgName, name types.RepoName, values model.PropertyValues) error {
	if len(values) == 0 {
		return nil
	}
	if err := values.ValidateKeys(); err != nil {
		return err
	}

	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return err
	}

	// Sorted for a deterministic request payload.
	keys := make([]types.PropertyName, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	payload := make([]*github.CustomPropertyValue, 0, len(keys))
	for _, key := range keys {
		payload = append(payload, &github.CustomPropertyValue{
			PropertyName: key.String(),
			Value:        values[key],
		})
	}

	return x.call(ctx, "repos.update_custom_property_values", func(ctx context.Context) (*github.Response, error) {
		return client.Repositories.CreateOrUpdateCustomProperties(ctx, org.String(), name.String(), payload)
	})
}

func (x *Client) RateLimitSnapshot(ctx context.Context, org types.OrgName) (*model.RateLimitInfo, error) {
	client, err := x.clientForOrg(ctx, org)
	if err != nil {
		return nil, err
	}

	var info *model.RateLimitInfo
	err = x.call(ctx, "rate_limit.get", func(ctx context.Context) (*github.Response, error) {
		limits, resp, err := client.RateLimit.Get(ctx)
		if err == nil {
			if core := limits.GetCore(); core != nil {
				info = &model.RateLimitInfo{
					Limit:     core.Limit,
					Remaining: core.Remaining,
					Reset:     core.Reset.Time,
				}
			}
		}
		return resp, err
	})
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &model.RateLimitInfo{}
	}
	return info, nil
}

// propertyValueString flattens the API's string-or-list property value
// into the single string representation the pipeline works with.
func propertyValueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, ",")
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(v)
	}
}
