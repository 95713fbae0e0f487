package model

import "github.com/mcp-research/mcp-security-scans/pkg/domain/types"

// FeatureResult records the outcome of enabling one GHAS feature.
type FeatureResult struct {
	Feature types.GHASFeature
	Status  types.FeatureStatus
	Reason  string // failure or unsupported detail, empty on success
}

// FeatureSummary is the per-repository enablement record. Features are
// independent: one failing never blocks the rest.
type FeatureSummary struct {
	Repo                types.RepoName
	Results             []FeatureResult
	HasDependabotConfig bool
}

func (x *FeatureSummary) Status(f types.GHASFeature) types.FeatureStatus {
	for _, r := range x.Results {
		if r.Feature == f {
			return r.Status
		}
	}
	return ""
}

func (x *FeatureSummary) EnabledCount() int {
	var n int
	for _, r := range x.Results {
		if r.Status == types.FeatureStatusEnabled {
			n++
		}
	}
	return n
}

func (x *FeatureSummary) FailedCount() int {
	var n int
	for _, r := range x.Results {
		if r.Status == types.FeatureStatusFailed {
			n++
		}
	}
	return n
}
