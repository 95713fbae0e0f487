package model

import (
	"time"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

// RunMetrics is one exported BigQuery row per batch run, with nested
// per-repository outcomes.
type RunMetrics struct {
	RunID      types.RunID    `bigquery:"run_id" json:"run_id"`
	Command    string         `bigquery:"command" json:"command"`
	Org        string         `bigquery:"org" json:"org"`
	StartedAt  time.Time      `bigquery:"started_at" json:"started_at"`
	FinishedAt time.Time      `bigquery:"finished_at" json:"finished_at"`
	Succeeded  int            `bigquery:"succeeded" json:"succeeded"`
	Failed     int            `bigquery:"failed" json:"failed"`
	Skipped    int            `bigquery:"skipped" json:"skipped"`
	Repos      []*RepoMetrics `bigquery:"repos" json:"repos"`
}

// RepoMetrics flattens one repository's outcome for export. Maps are not
// exportable, so secret types stay behind in the report artifacts.
type RepoMetrics struct {
	Source       string `bigquery:"source" json:"source"`
	Fork         string `bigquery:"fork" json:"fork"`
	ForkStatus   string `bigquery:"fork_status" json:"fork_status"`
	FeaturesOK   int    `bigquery:"features_ok" json:"features_ok"`
	FeaturesNG   int    `bigquery:"features_ng" json:"features_ng"`
	CodeTotal    int    `bigquery:"code_total" json:"code_total"`
	CodeCritical int    `bigquery:"code_critical" json:"code_critical"`
	CodeHigh     int    `bigquery:"code_high" json:"code_high"`
	SecretTotal  int    `bigquery:"secret_total" json:"secret_total"`
	DepTotal     int    `bigquery:"dep_total" json:"dep_total"`
	DepCritical  int    `bigquery:"dep_critical" json:"dep_critical"`
	DepHigh      int    `bigquery:"dep_high" json:"dep_high"`
	Error        string `bigquery:"error" json:"error"`
}

// RunRawRecord overrides the time columns with unix micros for the
// managedwriter append path.
type RunRawRecord struct {
	RunMetrics
	StartedAt  int64 `bigquery:"started_at" json:"started_at"`
	FinishedAt int64 `bigquery:"finished_at" json:"finished_at"`
}
