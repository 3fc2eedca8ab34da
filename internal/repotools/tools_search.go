package repotools

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reposcout/mcp-scout-server/internal/domain"
	"github.com/reposcout/mcp-scout-server/internal/githubapi"
)

// SearchFilesArgument defines file-search parameters.
type SearchFilesArgument struct {
	Query    string `json:"query" jsonschema_description:"Search query. May be empty to match all files in the repository"`
	SearchIn string `json:"search_in,omitempty" jsonschema_description:"Where to search: filename, path, content, or all (default all)"`
	Page     int    `json:"page,omitempty" jsonschema_description:"Result page, starting at 0"`
	PerPage  int    `json:"per_page,omitempty" jsonschema_description:"Results per page, 1-100 (default 100)"`
}

// SearchFilesHandler handles the search_files MCP tool.
type SearchFilesHandler struct {
	service *Service
}

// NewSearchFilesHandler creates a new file-search handler.
func NewSearchFilesHandler(service *Service) *SearchFilesHandler {
	return &SearchFilesHandler{
		service: service,
	}
}

// Handle builds the qualified query, executes the search, and formats the
// results. A zero-result search always runs the full diagnostics pass
// before returning; it never emits a bare "Found 0 files" message.
func (h *SearchFilesHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchFilesArgument) (*mcp.CallToolResult, any, error) {
	mode := domain.SearchModeAll
	if args.SearchIn != "" {
		if !domain.ValidSearchMode(args.SearchIn) {
			return errorResult(fmt.Sprintf("search_in must be one of filename, path, content, all; got %q", args.SearchIn)), nil, nil
		}
		mode = domain.SearchMode(args.SearchIn)
	}

	if args.Page < 0 {
		return errorResult("page cannot be negative"), nil, nil
	}

	perPage := args.PerPage
	if perPage == 0 {
		perPage = 100
	}
	if perPage < 1 || perPage > 100 {
		return errorResult("per_page must be between 1 and 100"), nil, nil
	}

	qualified := BuildSearchQuery(args.Query, mode, h.service.Identity())

	result, err := h.service.API().SearchCode(ctx, qualified, args.Page, perPage)
	if err != nil {
		return errorResult(searchFailureText(err, qualified)), nil, nil
	}

	if result.Total == 0 {
		report := RunDiagnostics(ctx, h.service.API(), h.service.Identity(), h.service.ProbeExtension())
		return textResult(RenderNoResultsReport(report, h.service.Identity(), qualified)), nil, nil
	}

	return textResult(FormatSearchResults(result, mode, args.Query)), nil, nil
}

// searchFailureText maps known search-API failures to targeted guidance.
// Anything unrecognized surfaces as the uniformly wrapped remote error.
func searchFailureText(err error, query string) string {
	switch {
	case githubapi.IsQuerySyntaxError(err):
		return fmt.Sprintf("%s\n\nGitHub rejected the query syntax:\n\n    %s\n\nRemove unsupported qualifiers or quote special characters.", err, query)
	case githubapi.IsRateLimited(err):
		return fmt.Sprintf("%s\n\nThe search API rate limit is exhausted. Wait a minute before retrying; the limit resets quickly.", err)
	case githubapi.IsAuthError(err):
		return fmt.Sprintf("%s\n\nThe token was rejected. Check that it is valid and has read access to this repository.", err)
	default:
		return err.Error()
	}
}

// GetToolDefinition returns the MCP tool definition.
func (h *SearchFilesHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_files",
		Description: "Search the configured repository for files by filename, path, or content",
	}
}

// RegisterSearchFilesTool registers the search_files tool with an MCP server.
func RegisterSearchFilesTool(server *mcp.Server, service *Service) {
	handler := NewSearchFilesHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
