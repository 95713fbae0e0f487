package model

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

// ParseStatusTime parses a GHAS_Status_Updated property value. The second
// return is false for missing, unparsable or marker values; such repos
// classify as stale and analyze treats them as due.
func ParseStatusTime(s string) (time.Time, bool) {
	if s == "" || s == StatusTestingMarker {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CountsFromProperties reads alert counts back from stored property
// values. Absent or malformed values count as zero; the report must never
// fail on a half-written repository.
func CountsFromProperties(props PropertyValues) *AlertCounts {
	atoi := func(name types.PropertyName) int {
		v, ok := props.Get(name)
		if !ok {
			return 0
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return 0
		}
		return n
	}

	counts := &AlertCounts{
		Code: CodeAlertCounts{
			Total:    atoi(PropCodeAlerts),
			Critical: atoi(PropCodeAlertsCritical),
			High:     atoi(PropCodeAlertsHigh),
			Medium:   atoi(PropCodeAlertsMedium),
			Low:      atoi(PropCodeAlertsLow),
		},
		Secrets: SecretAlertCounts{
			Total: atoi(PropSecretAlerts),
		},
		Dependencies: DependencyAlertCounts{
			Total:    atoi(PropDependencyAlerts),
			Critical: atoi(PropDependencyAlertsCritical),
			High:     atoi(PropDependencyAlertsHigh),
			Moderate: atoi(PropDependencyAlertsModerate),
			Low:      atoi(PropDependencyAlertsLow),
		},
	}

	if raw, ok := props.Get(PropSecretAlertsByType); ok && raw != "" && raw != "{}" {
		byType := map[string]int{}
		if err := json.Unmarshal([]byte(raw), &byType); err == nil {
			counts.Secrets.ByType = byType
		}
	}

	return counts
}

// RepoPosture is one repository's entry in the org report.
type RepoPosture struct {
	Name         types.RepoName        `json:"name"`
	Health       types.RepoHealth      `json:"health"`
	UpdatedAt    time.Time             `json:"updated_at"`
	HasTimestamp bool                  `json:"has_timestamp"`
	Code         CodeAlertCounts       `json:"code"`
	Secrets      SecretAlertCounts     `json:"secrets"`
	Dependencies DependencyAlertCounts `json:"dependencies"`
}

// OpenTotal is the repository's open alert count across all three sources.
func (x *RepoPosture) OpenTotal() int {
	return x.Code.Total + x.Secrets.Total + x.Dependencies.Total
}

// NeedsAttention reports whether fresh data still shows risk: any critical
// or high severity finding, or any secret alert at all.
func (x *RepoPosture) NeedsAttention() bool {
	return x.Code.Critical+x.Code.High > 0 ||
		x.Dependencies.Critical+x.Dependencies.High > 0 ||
		x.Secrets.Total > 0
}

// PostureOf classifies one repository from its stored properties.
// Freshness is judged against now minus the scan window: data older than
// the window, or no parsable timestamp at all, makes the repo stale.
func PostureOf(name types.RepoName, props PropertyValues, now time.Time, window time.Duration) *RepoPosture {
	posture := &RepoPosture{Name: name}

	raw, _ := props.Get(PropStatusUpdated)
	posture.UpdatedAt, posture.HasTimestamp = ParseStatusTime(raw)

	counts := CountsFromProperties(props)
	posture.Code = counts.Code
	posture.Secrets = counts.Secrets
	posture.Dependencies = counts.Dependencies

	switch {
	case !posture.HasTimestamp || now.Sub(posture.UpdatedAt) > window:
		posture.Health = types.RepoHealthStale
	case posture.NeedsAttention():
		posture.Health = types.RepoHealthAttention
	default:
		posture.Health = types.RepoHealthHealthy
	}

	return posture
}

// ReportTotals aggregates counts over every repository in the report.
type ReportTotals struct {
	Code         CodeAlertCounts       `json:"code"`
	Secrets      SecretAlertCounts     `json:"secrets"`
	Dependencies DependencyAlertCounts `json:"dependencies"`
}

// OrgReport is the full posture report for the target organization.
type OrgReport struct {
	Org         types.OrgName  `json:"org"`
	RunID       types.RunID    `json:"run_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	TotalRepos  int            `json:"total_repos"`
	Healthy     int            `json:"healthy"`
	Attention   int            `json:"attention_needed"`
	Stale       int            `json:"stale"`
	Coverage    float64        `json:"coverage_percent"`
	Totals      ReportTotals   `json:"totals"`
	Repos       []*RepoPosture `json:"repositories"`
}

// BuildOrgReport aggregates per-repo postures. Coverage is the share of
// repositories carrying any collection timestamp, fresh or not.
func BuildOrgReport(org types.OrgName, runID types.RunID, repos []*RepoPosture, now time.Time) *OrgReport {
	report := &OrgReport{
		Org:         org,
		RunID:       runID,
		GeneratedAt: now,
		TotalRepos:  len(repos),
		Repos:       repos,
	}

	var withTimestamp int
	for _, r := range repos {
		switch r.Health {
		case types.RepoHealthHealthy:
			report.Healthy++
		case types.RepoHealthAttention:
			report.Attention++
		default:
			report.Stale++
		}
		if r.HasTimestamp {
			withTimestamp++
		}

		report.Totals.Code.Total += r.Code.Total
		report.Totals.Code.Critical += r.Code.Critical
		report.Totals.Code.High += r.Code.High
		report.Totals.Code.Medium += r.Code.Medium
		report.Totals.Code.Low += r.Code.Low

		report.Totals.Dependencies.Total += r.Dependencies.Total
		report.Totals.Dependencies.Critical += r.Dependencies.Critical
		report.Totals.Dependencies.High += r.Dependencies.High
		report.Totals.Dependencies.Moderate += r.Dependencies.Moderate
		report.Totals.Dependencies.Low += r.Dependencies.Low

		report.Totals.Secrets.Total += r.Secrets.Total
		for typ, n := range r.Secrets.ByType {
			if report.Totals.Secrets.ByType == nil {
				report.Totals.Secrets.ByType = map[string]int{}
			}
			report.Totals.Secrets.ByType[typ] += n
		}
	}

	if report.TotalRepos > 0 {
		report.Coverage = float64(withTimestamp) / float64(report.TotalRepos) * 100
	}

	return report
}

// AttentionRepos returns the attention-needed repositories ordered by open
// alert count descending, name ascending on ties.
func (x *OrgReport) AttentionRepos() []*RepoPosture {
	var repos []*RepoPosture
	for _, r := range x.Repos {
		if r.Health == types.RepoHealthAttention {
			repos = append(repos, r)
		}
	}
	sort.Slice(repos, func(i, j int) bool {
		if repos[i].OpenTotal() != repos[j].OpenTotal() {
			return repos[i].OpenTotal() > repos[j].OpenTotal()
		}
		return repos[i].Name < repos[j].Name
	})
	return repos
}

// SecretTypesDescending returns org-wide secret types sorted by count
// descending, type ascending on ties.
func (x *OrgReport) SecretTypesDescending() []SecretTypeCount {
	var out []SecretTypeCount
	for typ, n := range x.Totals.Secrets.ByType {
		out = append(out, SecretTypeCount{Type: typ, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}

type SecretTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}
