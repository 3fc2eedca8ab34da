package repotools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reposcout/mcp-scout-server/internal/domain"
)

func TestRunDiagnostics_RepoProbeFailureShortCircuits(t *testing.T) {
	baselineCalled := false
	api := &fakeAPI{
		getRepository: func(ctx context.Context) (*domain.RepositoryInfo, error) {
			return nil, errors.New("boom")
		},
		searchCode: func(ctx context.Context, query string, page, perPage int) (*domain.CodeSearchResult, error) {
			baselineCalled = true
			return &domain.CodeSearchResult{}, nil
		},
	}

	report := RunDiagnostics(context.Background(), api, testIdentity, "md")

	if report.Classification() != domain.SystemProbeFailure {
		t.Errorf("Expected SystemProbeFailure, got %v", report.Classification())
	}
	if baselineCalled {
		t.Error("Baseline probe must not run after a repository probe failure")
	}
}

func TestRunDiagnostics_BaselineQueryAndPageSize(t *testing.T) {
	var gotQuery string
	var gotPerPage int
	api := &fakeAPI{
		getRepository: func(ctx context.Context) (*domain.RepositoryInfo, error) {
			return &domain.RepositoryInfo{SizeKB: 10, DefaultBranch: "main"}, nil
		},
		searchCode: func(ctx context.Context, query string, page, perPage int) (*domain.CodeSearchResult, error) {
			gotQuery = query
			gotPerPage = perPage
			return &domain.CodeSearchResult{Total: 3}, nil
		},
	}

	report := RunDiagnostics(context.Background(), api, testIdentity, "md")

	if gotQuery != "extension:md repo:owner/repo" {
		t.Errorf("Unexpected baseline query: %q", gotQuery)
	}
	if gotPerPage != 1 {
		t.Errorf("Expected baseline page size 1, got %d", gotPerPage)
	}
	if !report.BaselineSearchWorked || report.BaselineResultCount != 3 {
		t.Errorf("Baseline probe not recorded: %+v", report)
	}
	if report.Classification() != domain.GenuinelyNoMatch {
		t.Errorf("Expected GenuinelyNoMatch, got %v", report.Classification())
	}
}

func TestRunDiagnostics_BaselineErrorDoesNotAbort(t *testing.T) {
	api := &fakeAPI{
		getRepository: func(ctx context.Context) (*domain.RepositoryInfo, error) {
			return &domain.RepositoryInfo{SizeKB: 10, DefaultBranch: "main"}, nil
		},
		searchCode: func(ctx context.Context, query string, page, perPage int) (*domain.CodeSearchResult, error) {
			return nil, errors.New("search unavailable")
		},
	}

	report := RunDiagnostics(context.Background(), api, testIdentity, "md")

	if report.Err != nil {
		t.Errorf("Baseline failure must not set the terminal error: %v", report.Err)
	}
	if report.BaselineSearchWorked {
		t.Error("Expected BaselineSearchWorked=false")
	}
	if report.Classification() != domain.RepositoryNotIndexed {
		t.Errorf("Expected RepositoryNotIndexed, got %v", report.Classification())
	}
	if report.DefaultBranch != "main" {
		t.Errorf("Repository metadata lost: %+v", report)
	}
}

func TestRenderNoResultsReport_NotIndexedMentionsCeiling(t *testing.T) {
	report := &domain.DiagnosticReport{
		RepoSizeKB:           60 * 1024 * 1024, // 60 GB
		BaselineSearchWorked: true,
		BaselineResultCount:  0,
	}

	if !report.ExceedsIndexingCeiling() {
		t.Fatal("A 60 GB repository must exceed the indexing ceiling")
	}

	out := RenderNoResultsReport(report, testIdentity, "x repo:owner/repo")
	if !strings.Contains(out, "Repository May Not Be Indexed") {
		t.Errorf("Expected not-indexed branch, got:\n%s", out)
	}
	if !strings.Contains(out, "50 GB") {
		t.Errorf("Expected 50 GB ceiling mention, got:\n%s", out)
	}
}

func TestRenderNoResultsReport_NotIndexedPrivateQuirk(t *testing.T) {
	report := &domain.DiagnosticReport{
		RepoSizeKB:           1024,
		IsPrivate:            true,
		BaselineSearchWorked: false,
	}

	out := RenderNoResultsReport(report, testIdentity, "q")
	if !strings.Contains(out, "Private repositories") {
		t.Errorf("Expected private-repo cause, got:\n%s", out)
	}
}

func TestRenderNoResultsReport_SystemIssue(t *testing.T) {
	report := &domain.DiagnosticReport{Err: errors.New("token rejected")}

	out := RenderNoResultsReport(report, testIdentity, "q")
	if !strings.Contains(out, "token rejected") {
		t.Errorf("Expected raw error surfaced, got:\n%s", out)
	}
	if strings.Contains(out, "Repository May Not Be Indexed") {
		t.Errorf("System issue must not render the not-indexed branch:\n%s", out)
	}
}

func TestRenderNoResultsReport_GenuinelyEmpty(t *testing.T) {
	report := &domain.DiagnosticReport{
		RepoSizeKB:           2048,
		DefaultBranch:        "main",
		BaselineSearchWorked: true,
		BaselineResultCount:  12,
	}

	out := RenderNoResultsReport(report, testIdentity, "ghost-term in:file,path repo:owner/repo")

	for _, want := range []string{
		"No Matches Found",
		"ghost-term in:file,path repo:owner/repo",
		"main (only the default branch is searchable)",
		"Baseline probe found 12 file(s)",
		"384 KB",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in searched-but-empty report:\n%s", want, out)
		}
	}
}

func TestRenderNoResultsReport_AlwaysAppendsTips(t *testing.T) {
	reports := []*domain.DiagnosticReport{
		{Err: errors.New("x")},
		{BaselineSearchWorked: false},
		{BaselineSearchWorked: true, BaselineResultCount: 1},
	}

	for _, report := range reports {
		out := RenderNoResultsReport(report, testIdentity, "q")
		if !strings.Contains(out, "Search Tips") {
			t.Errorf("Tips block missing for classification %v:\n%s", report.Classification(), out)
		}
	}
}

func TestRenderHealthReport_Indexed(t *testing.T) {
	report := &domain.DiagnosticReport{
		RepoSizeKB:           4096,
		DefaultBranch:        "main",
		BaselineSearchWorked: true,
		BaselineResultCount:  7,
	}

	out := RenderHealthReport(report, testIdentity, "extension:md repo:owner/repo")
	for _, want := range []string{"Search Health: owner/repo", "public", "main", "7 file(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in health report:\n%s", want, out)
		}
	}
}

func TestRenderHealthReport_ProbeFailure(t *testing.T) {
	report := &domain.DiagnosticReport{Err: errors.New("network down")}

	out := RenderHealthReport(report, testIdentity, "extension:md repo:owner/repo")
	if !strings.Contains(out, "network down") {
		t.Errorf("Expected probe error surfaced:\n%s", out)
	}
}
