package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// CodeAlertCounts holds open code scanning alerts bucketed by severity.
// Severities outside the known set still count toward Total.
type CodeAlertCounts struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// Add counts one alert. Tool severities warning/note fold into low and
// error into medium, matching how code scanning rules report non-security
// severities.
func (x *CodeAlertCounts) Add(severity string) {
	x.Total++
	switch strings.ToLower(severity) {
	case "critical":
		x.Critical++
	case "high":
		x.High++
	case "medium", "error":
		x.Medium++
	case "low", "warning", "note":
		x.Low++
	}
}

// SecretAlertCounts holds open secret scanning alerts grouped by secret
// type display name.
type SecretAlertCounts struct {
	Total  int            `json:"total"`
	ByType map[string]int `json:"by_type"`
}

// Add counts one alert under the given secret type. Empty types are
// grouped as Unknown.
func (x *SecretAlertCounts) Add(secretType string) {
	x.Total++
	if secretType == "" {
		secretType = "Unknown"
	}
	if x.ByType == nil {
		x.ByType = map[string]int{}
	}
	x.ByType[secretType]++
}

// TypesJSON renders the by-type map as a JSON object string, "{}" when no
// alerts exist. This is the wire format of the SecretAlerts_By_Type custom
// property.
func (x *SecretAlertCounts) TypesJSON() (string, error) {
	if len(x.ByType) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(x.ByType)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal secret types")
	}
	return string(raw), nil
}

// DependencyAlertCounts holds open Dependabot alerts bucketed by advisory
// severity. GitHub reports "moderate" for this API; "medium" folds into
// the same bucket.
type DependencyAlertCounts struct {
	Total    int `json:"total"`
	Critical int `json:"critical"`
	High     int `json:"high"`
	Moderate int `json:"moderate"`
	Low      int `json:"low"`
}

func (x *DependencyAlertCounts) Add(severity string) {
	x.Total++
	switch strings.ToLower(severity) {
	case "critical":
		x.Critical++
	case "high":
		x.High++
	case "moderate", "medium":
		x.Moderate++
	case "low":
		x.Low++
	}
}

// AlertCounts is the full collection result for one repository.
type AlertCounts struct {
	Code         CodeAlertCounts       `json:"code"`
	Secrets      SecretAlertCounts     `json:"secrets"`
	Dependencies DependencyAlertCounts `json:"dependencies"`
	CollectedAt  time.Time             `json:"collected_at"`
}

func (x *AlertCounts) OpenTotal() int {
	return x.Code.Total + x.Secrets.Total + x.Dependencies.Total
}
