package repotools

import (
	"context"
	"fmt"
	"strings"

	"github.com/reposcout/mcp-scout-server/internal/domain"
)

// maxIndexedFileKB is GitHub's approximate per-file size limit for
// search indexing; larger files exist in the repo but never match.
const maxIndexedFileKB = 384

// baselineProbeQuery returns the fixed minimal query used to test whether
// the repository's search index is reachable and populated, independent
// of whatever the user actually searched for.
func baselineProbeQuery(ext string, id domain.RepositoryIdentity) string {
	return "extension:" + ext + " repo:" + id.Slug()
}

// RunDiagnostics probes the repository once, synchronously: first the
// metadata fetch, then a baseline search with page size 1. A metadata
// failure is terminal and recorded on the report; the baseline probe is
// then skipped entirely. A baseline failure is recorded as data and never
// aborts the diagnosis.
func RunDiagnostics(ctx context.Context, api GitHubAPI, id domain.RepositoryIdentity, probeExt string) *domain.DiagnosticReport {
	report := &domain.DiagnosticReport{}

	info, err := api.GetRepository(ctx)
	if err != nil {
		report.Err = err
		return report
	}
	report.RepoSizeKB = info.SizeKB
	report.IsPrivate = info.Private
	report.DefaultBranch = info.DefaultBranch

	baseline, err := api.SearchCode(ctx, baselineProbeQuery(probeExt, id), 0, 1)
	if err != nil {
		return report
	}
	report.BaselineSearchWorked = true
	report.BaselineResultCount = baseline.Total
	return report
}

// RenderNoResultsReport explains a zero-result search using a completed
// diagnostic report. Every branch ends with the generic search tips.
func RenderNoResultsReport(report *domain.DiagnosticReport, id domain.RepositoryIdentity, failedQuery string) string {
	var sb strings.Builder

	switch report.Classification() {
	case domain.SystemProbeFailure:
		sb.WriteString("## Search Diagnostics Failed\n\n")
		sb.WriteString(fmt.Sprintf("Could not inspect repository %s: %s\n\n", id.Slug(), report.Err))
		sb.WriteString("This looks like a system issue (authentication or network), not a property of your query.\n")

	case domain.RepositoryNotIndexed:
		sb.WriteString("## Repository May Not Be Indexed\n\n")
		sb.WriteString(fmt.Sprintf("A baseline search of %s returned no results, so code search may not cover this repository at all. Possible causes:\n", id.Slug()))
		sb.WriteString("- The repository was created recently and indexing has not caught up yet\n")
		if report.ExceedsIndexingCeiling() {
			sb.WriteString(fmt.Sprintf("- The repository is %.1f GB, above the %d GB ceiling beyond which GitHub does not build a search index\n",
				report.SizeGB(), domain.IndexingCeilingGB))
		}
		if report.IsPrivate {
			sb.WriteString("- Private repositories are sometimes indexed with extra delay or restrictions\n")
		}
		sb.WriteString(fmt.Sprintf("\nVerify directly on https://github.com/%s and run the diagnose_search tool for a standalone health check.\n", id.Slug()))

	case domain.GenuinelyNoMatch:
		sb.WriteString("## No Matches Found\n\n")
		sb.WriteString("The repository is indexed and searchable, but this query found nothing:\n\n")
		sb.WriteString(fmt.Sprintf("    %s\n\n", failedQuery))
		sb.WriteString(fmt.Sprintf("- Repository: %s (%s)\n", id.Slug(), visibility(report.IsPrivate)))
		sb.WriteString(fmt.Sprintf("- Size: %d KB\n", report.RepoSizeKB))
		sb.WriteString(fmt.Sprintf("- Default branch: %s (only the default branch is searchable)\n", report.DefaultBranch))
		sb.WriteString(fmt.Sprintf("- Baseline probe found %d file(s)\n\n", report.BaselineResultCount))
		sb.WriteString("Likely reasons:\n")
		sb.WriteString("- The term does not appear in the repository\n")
		sb.WriteString("- The content lives on a non-default branch\n")
		sb.WriteString(fmt.Sprintf("- The matching files exceed the ~%d KB per-file indexing limit\n", maxIndexedFileKB))
	}

	sb.WriteString(searchTips())
	return sb.String()
}

// RenderHealthReport formats the standalone diagnose_search output, which
// runs the same probes unconditionally rather than after a failed search.
func RenderHealthReport(report *domain.DiagnosticReport, id domain.RepositoryIdentity, probeQuery string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Search Health: %s\n\n", id.Slug()))

	if report.Classification() == domain.SystemProbeFailure {
		sb.WriteString(fmt.Sprintf("Repository probe failed: %s\n\n", report.Err))
		sb.WriteString("Fix credentials or connectivity before relying on search results.\n")
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("- Visibility: %s\n", visibility(report.IsPrivate)))
	sb.WriteString(fmt.Sprintf("- Size: %d KB (%.2f GB)\n", report.RepoSizeKB, report.SizeGB()))
	sb.WriteString(fmt.Sprintf("- Default branch: %s\n", report.DefaultBranch))
	if report.ExceedsIndexingCeiling() {
		sb.WriteString(fmt.Sprintf("- Warning: size exceeds the %d GB indexing ceiling; code search will not cover this repository\n",
			domain.IndexingCeilingGB))
	}

	sb.WriteString(fmt.Sprintf("\nBaseline probe: `%s`\n", probeQuery))
	if !report.BaselineSearchWorked {
		sb.WriteString("- Probe failed; the search index may be unreachable for this repository\n")
	} else if report.BaselineResultCount == 0 {
		sb.WriteString("- Probe found no files; the repository may not be indexed (or holds no files of the probed type)\n")
	} else {
		sb.WriteString(fmt.Sprintf("- Probe found %d file(s); the search index covers this repository\n", report.BaselineResultCount))
	}

	return sb.String()
}

// searchTips is the fixed guidance block appended to every zero-result
// diagnostic branch.
func searchTips() string {
	return "\n### Search Tips\n" +
		"- Try each search mode: filename, path, content, all\n" +
		"- Quote multi-word phrases: \"exact phrase\"\n" +
		"- Use wildcards for partial names: *.md\n" +
		"- Simplify the query to a single distinctive term\n"
}

func visibility(private bool) string {
	if private {
		return "private"
	}
	return "public"
}
