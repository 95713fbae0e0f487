package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mcp-research/mcp-security-scans/pkg/domain/model"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
	"github.com/mcp-research/mcp-security-scans/pkg/utils/logging"
)

// Report builds the org-wide security posture report from stored custom
// properties and writes the JSON and Markdown artifacts through the
// configured report store. It never mutates remote state.
func (x *UseCase) Report(ctx context.Context, input *model.ReportInput) (*model.OrgReport, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	runID := types.NewRunID()
	logger := logging.From(ctx).With("run_id", runID, "org", input.Org)
	ctx = logging.With(ctx, logger)

	window := input.Window
	if window <= 0 {
		window = defaultScanWindow
	}

	gh := x.clients.GitHub()
	forks, err := gh.ListOrgForks(ctx, input.Org)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list forks", goerr.V("org", input.Org))
	}

	bulk, err := gh.ListOrgPropertyValues(ctx, input.Org)
	if err != nil {
		logger.Warn("bulk property listing failed, falling back to per-repo reads", "error", err)
		bulk = map[types.RepoName]model.PropertyValues{}
	}

	now := logging.CtxTime(ctx)
	postures := make([]*model.RepoPosture, 0, len(forks))
	for _, fork := range forks {
		name := types.RepoName(fork.GetName())
		props, ok := bulk[name]
		if !ok {
			values, err := gh.GetRepoPropertyValues(ctx, input.Org, name)
			if err != nil {
				logger.Warn("could not read repository properties", "repo", name, "error", err)
			}
			props = values
		}
		postures = append(postures, model.PostureOf(name, props, now, window))
	}

	report := model.BuildOrgReport(input.Org, runID, postures, now)
	logger.Info("built posture report",
		"repos", report.TotalRepos,
		"healthy", report.Healthy,
		"attention_needed", report.Attention,
		"stale", report.Stale,
	)

	if err := x.writeReportArtifacts(ctx, report); err != nil {
		return nil, err
	}
	x.logRateBudget(ctx, input.Org)

	return report, nil
}

// writeReportArtifacts renders and stores the JSON and Markdown outputs,
// and appends the Markdown to the workflow step summary when running
// under GitHub Actions.
func (x *UseCase) writeReportArtifacts(ctx context.Context, report *model.OrgReport) error {
	logger := logging.From(ctx)
	store := x.clients.ReportStorage()
	if store == nil {
		return goerr.Wrap(types.ErrInvalidOption, "report generation requires a report store")
	}
	date := report.GeneratedAt.Format("20060102")

	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode report")
	}
	jsonName := fmt.Sprintf("ghas_report_%s_%s.json", report.Org, date)
	if err := store.Put(ctx, jsonName, raw); err != nil {
		return goerr.Wrap(err, "failed to store JSON report", goerr.V("name", jsonName))
	}
	logger.Info("stored report artifact", "name", jsonName)

	md := renderMarkdown(report, os.Getenv("CI") != "")
	mdName := fmt.Sprintf("ghas_report_%s_%s.md", report.Org, date)
	if err := store.Put(ctx, mdName, md); err != nil {
		return goerr.Wrap(err, "failed to store Markdown report", goerr.V("name", mdName))
	}
	logger.Info("stored report artifact", "name", mdName)

	if summaryPath := os.Getenv("GITHUB_STEP_SUMMARY"); summaryPath != "" {
		if err := appendStepSummary(summaryPath, md); err != nil {
			logger.Warn("failed to append workflow step summary", "error", err)
		}
	}
	return nil
}

// renderMarkdown writes the human-readable rendering. The per-repository
// detail tables are suppressed in CI where the summary lands on a public
// workflow page.
func renderMarkdown(report *model.OrgReport, inCI bool) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "# GHAS Security Report - %s\n\n", report.Org)
	fmt.Fprintf(&b, "*Report generated on: %s*\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "- **Organization:** %s\n", report.Org)
	fmt.Fprintf(&b, "- **Total Repositories:** %d\n", report.TotalRepos)
	fmt.Fprintf(&b, "- **Healthy:** %d\n", report.Healthy)
	fmt.Fprintf(&b, "- **Needing Attention:** %d\n", report.Attention)
	fmt.Fprintf(&b, "- **Stale:** %d\n", report.Stale)
	total := report.Totals.Code.Total + report.Totals.Secrets.Total + report.Totals.Dependencies.Total
	fmt.Fprintf(&b, "- **Total Alerts:** %d\n", total)
	fmt.Fprintf(&b, "  - Code Scanning Alerts: %d\n", report.Totals.Code.Total)
	fmt.Fprintf(&b, "  - Secret Scanning Alerts: %d\n", report.Totals.Secrets.Total)
	fmt.Fprintf(&b, "  - Dependency Alerts: %d\n\n", report.Totals.Dependencies.Total)

	fmt.Fprintf(&b, "## Code Scanning Alerts by Severity\n\n")
	fmt.Fprintf(&b, "- Critical: %d\n", report.Totals.Code.Critical)
	fmt.Fprintf(&b, "- High: %d\n", report.Totals.Code.High)
	fmt.Fprintf(&b, "- Medium: %d\n", report.Totals.Code.Medium)
	fmt.Fprintf(&b, "- Low: %d\n\n", report.Totals.Code.Low)

	fmt.Fprintf(&b, "## Dependency Alerts by Severity\n\n")
	fmt.Fprintf(&b, "- Critical: %d\n", report.Totals.Dependencies.Critical)
	fmt.Fprintf(&b, "- High: %d\n", report.Totals.Dependencies.High)
	fmt.Fprintf(&b, "- Moderate: %d\n", report.Totals.Dependencies.Moderate)
	fmt.Fprintf(&b, "- Low: %d\n\n", report.Totals.Dependencies.Low)

	fmt.Fprintf(&b, "## Secret Scanning Alerts by Type\n\n")
	switch secretTypes := report.SecretTypesDescending(); {
	case len(secretTypes) > 0:
		for _, st := range secretTypes {
			fmt.Fprintf(&b, "- %s: %d\n", st.Type, st.Count)
		}
	case report.Totals.Secrets.Total > 0:
		fmt.Fprintf(&b, "Secrets found but types not categorized.\n")
	default:
		fmt.Fprintf(&b, "No secret scanning alerts found.\n")
	}
	fmt.Fprintf(&b, "\n")

	fmt.Fprintf(&b, "## Coverage\n\n")
	fmt.Fprintf(&b, "- **Scan Coverage:** %.1f%%\n", report.Coverage)

	if !inCI {
		writeAttentionTable(&b, report)
	}

	return b.Bytes()
}

func writeAttentionTable(b *bytes.Buffer, report *model.OrgReport) {
	attention := report.AttentionRepos()
	if len(attention) > 10 {
		attention = attention[:10]
	}

	fmt.Fprintf(b, "\n## Top Repositories Needing Attention\n\n")
	if len(attention) == 0 {
		fmt.Fprintf(b, "No repositories need attention.\n")
		return
	}

	fmt.Fprintf(b, "| Repository | Total Alerts | Code Alerts | Secret Alerts | Dependency Alerts | Last Scanned |\n")
	fmt.Fprintf(b, "|------------|-------------|------------|--------------|-------------------|-------------|\n")
	for _, r := range attention {
		fmt.Fprintf(b, "| %s | %d | %d | %d | %d | %s |\n",
			r.Name, r.OpenTotal(), r.Code.Total, r.Secrets.Total,
			r.Dependencies.Total, r.UpdatedAt.Format("2006-01-02"))
	}
}

func appendStepSummary(path string, md []byte) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return goerr.Wrap(err, "failed to open step summary", goerr.V("path", path))
	}
	defer f.Close()

	if _, err := f.Write(append(md, '\n', '\n')); err != nil {
		return goerr.Wrap(err, "failed to append step summary")
	}
	return nil
}
