package types

import "log/slog"

type (
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	OrgName             string
	RepoName            string
	BranchName          string
	PropertyName        string
	PropertyValueType   string
)

// Custom property value types accepted by the GitHub org property API.
const (
	PropertyTypeString    PropertyValueType = "string"
	PropertyTypeSingleSel PropertyValueType = "single_select"
	PropertyTypeMultiSel  PropertyValueType = "multi_select"
	PropertyTypeTrueFalse PropertyValueType = "true_false"
)

func (x PropertyValueType) IsValid() bool {
	switch x {
	case PropertyTypeString, PropertyTypeSingleSel, PropertyTypeMultiSel, PropertyTypeTrueFalse:
		return true
	}
	return false
}

// ForkStatus is the outcome of an idempotent fork provisioning attempt.
type ForkStatus string

const (
	ForkStatusCreated  ForkStatus = "created"
	ForkStatusExists   ForkStatus = "exists"
	ForkStatusConflict ForkStatus = "conflict"
)

// GHASFeature names one of the security features enabled per fork.
type GHASFeature string

const (
	FeatureVulnerabilityAlerts GHASFeature = "vulnerability_alerts"
	FeatureSecurityFixes       GHASFeature = "automated_security_fixes"
	FeatureSecretScanning      GHASFeature = "secret_scanning"
	FeaturePushProtection      GHASFeature = "secret_scanning_push_protection"
	FeatureCodeScanning        GHASFeature = "code_scanning_default_setup"
)

// FeatureStatus is the per-feature outcome of GHAS enablement.
type FeatureStatus string

const (
	FeatureStatusEnabled     FeatureStatus = "enabled"
	FeatureStatusFailed      FeatureStatus = "failed"
	FeatureStatusUnsupported FeatureStatus = "unsupported"
)

// RepoHealth is the classification used by the posture report.
type RepoHealth string

const (
	RepoHealthHealthy   RepoHealth = "healthy"
	RepoHealthAttention RepoHealth = "attention_needed"
	RepoHealthStale     RepoHealth = "stale"
)

func (x OrgName) String() string      { return string(x) }
func (x RepoName) String() string     { return string(x) }
func (x PropertyName) String() string { return string(x) }

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
