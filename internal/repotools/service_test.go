package repotools

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reposcout/mcp-scout-server/internal/config"
	"github.com/reposcout/mcp-scout-server/internal/domain"
)

// fakeAPI implements GitHubAPI with overridable function fields. Methods
// without an override return a generic error.
type fakeAPI struct {
	getRepository   func(ctx context.Context) (*domain.RepositoryInfo, error)
	getFileContents func(ctx context.Context, path string) (string, error)
	searchCode      func(ctx context.Context, query string, page, perPage int) (*domain.CodeSearchResult, error)
	searchIssues    func(ctx context.Context, query string) (*domain.IssueSearchResult, error)
	listCommits     func(ctx context.Context, since time.Time, author string, page, perPage int) ([]domain.CommitRecord, error)
	getCommit       func(ctx context.Context, sha string) (*domain.CommitRecord, error)
}

var errFakeUnset = errors.New("fake method not configured")

var testIdentity = domain.RepositoryIdentity{Owner: "owner", Name: "repo"}

func (f *fakeAPI) GetRepository(ctx context.Context) (*domain.RepositoryInfo, error) {
	if f.getRepository == nil {
		return nil, errFakeUnset
	}
	return f.getRepository(ctx)
}

func (f *fakeAPI) GetFileContents(ctx context.Context, path string) (string, error) {
	if f.getFileContents == nil {
		return "", errFakeUnset
	}
	return f.getFileContents(ctx, path)
}

func (f *fakeAPI) SearchCode(ctx context.Context, query string, page, perPage int) (*domain.CodeSearchResult, error) {
	if f.searchCode == nil {
		return nil, errFakeUnset
	}
	return f.searchCode(ctx, query, page, perPage)
}

func (f *fakeAPI) SearchIssues(ctx context.Context, query string) (*domain.IssueSearchResult, error) {
	if f.searchIssues == nil {
		return nil, errFakeUnset
	}
	return f.searchIssues(ctx, query)
}

func (f *fakeAPI) ListCommits(ctx context.Context, since time.Time, author string, page, perPage int) ([]domain.CommitRecord, error) {
	if f.listCommits == nil {
		return nil, errFakeUnset
	}
	return f.listCommits(ctx, since, author, page, perPage)
}

func (f *fakeAPI) GetCommit(ctx context.Context, sha string) (*domain.CommitRecord, error) {
	if f.getCommit == nil {
		return nil, errFakeUnset
	}
	return f.getCommit(ctx, sha)
}

// newTestService builds a Service over the fake, panicking on setup errors.
func newTestService(t *testing.T, api GitHubAPI) *Service {
	t.Helper()
	settings := &config.GitHubSettings{
		Token:          "test-token",
		Owner:          "owner",
		Repo:           "repo",
		ProbeExtension: "md",
	}
	svc, err := NewService(settings, api)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

// newTestServiceWithProbe is newTestService with a custom probe extension.
func newTestServiceWithProbe(t *testing.T, api GitHubAPI, probeExt string) *Service {
	t.Helper()
	settings := &config.GitHubSettings{
		Token:          "test-token",
		Owner:          "owner",
		Repo:           "repo",
		ProbeExtension: probeExt,
	}
	svc, err := NewService(settings, api)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

// resultText extracts the concatenated text content of a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	text := ""
	for _, c := range result.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			text += tc.Text
		}
	}
	return text
}

func TestNewService_NilSettings(t *testing.T) {
	if _, err := NewService(nil, &fakeAPI{}); err == nil {
		t.Error("Expected error for nil settings")
	}
}

func TestNewService_NilAPI(t *testing.T) {
	settings := &config.GitHubSettings{Token: "t", Owner: "o", Repo: "r"}
	if _, err := NewService(settings, nil); err == nil {
		t.Error("Expected error for nil api client")
	}
}

func TestService_Identity(t *testing.T) {
	svc := newTestService(t, &fakeAPI{})
	if got := svc.Identity().Slug(); got != "owner/repo" {
		t.Errorf("Expected identity slug 'owner/repo', got %q", got)
	}
}

func TestService_ProbeExtension_Default(t *testing.T) {
	settings := &config.GitHubSettings{Token: "t", Owner: "o", Repo: "r"}
	svc, err := NewService(settings, &fakeAPI{})
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	if got := svc.ProbeExtension(); got != "md" {
		t.Errorf("Expected default probe extension 'md', got %q", got)
	}
}
