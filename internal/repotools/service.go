package repotools

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reposcout/mcp-scout-server/internal/config"
	"github.com/reposcout/mcp-scout-server/internal/domain"
)

// GitHubAPI is the remote-repository contract the tool handlers depend
// on. The production implementation lives in internal/githubapi; tests
// substitute fakes.
type GitHubAPI interface {
	GetRepository(ctx context.Context) (*domain.RepositoryInfo, error)
	GetFileContents(ctx context.Context, path string) (string, error)
	SearchCode(ctx context.Context, query string, page, perPage int) (*domain.CodeSearchResult, error)
	SearchIssues(ctx context.Context, query string) (*domain.IssueSearchResult, error)
	ListCommits(ctx context.Context, since time.Time, author string, page, perPage int) ([]domain.CommitRecord, error)
	GetCommit(ctx context.Context, sha string) (*domain.CommitRecord, error)
}

// Service carries the repository identity and API client shared by all
// tool handlers. It holds no mutable state; every invocation is
// request-scoped.
type Service struct {
	settings *config.GitHubSettings
	identity domain.RepositoryIdentity
	api      GitHubAPI
}

// NewService creates a new repository tools service.
func NewService(settings *config.GitHubSettings, api GitHubAPI) (*Service, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	if api == nil {
		return nil, fmt.Errorf("api client cannot be nil")
	}
	return &Service{
		settings: settings,
		identity: domain.RepositoryIdentity{Owner: settings.Owner, Name: settings.Repo},
		api:      api,
	}, nil
}

// Identity returns the configured repository identity.
func (s *Service) Identity() domain.RepositoryIdentity {
	return s.identity
}

// API returns the remote API client.
func (s *Service) API() GitHubAPI {
	return s.api
}

// ProbeExtension returns the file-extension filter for the diagnostics
// baseline search.
func (s *Service) ProbeExtension() string {
	if s.settings.ProbeExtension == "" {
		return "md"
	}
	return s.settings.ProbeExtension
}

// textResult wraps display text in a successful MCP result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// errorResult wraps readable failure text in an MCP error result. Tool
// failures are reported this way rather than as Go errors so they stay
// inside the invocation boundary.
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
		IsError: true,
	}
}
