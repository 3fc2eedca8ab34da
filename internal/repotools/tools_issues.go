package repotools

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchIssuesArgument defines issue-search parameters.
type SearchIssuesArgument struct {
	Query string `json:"query" jsonschema_description:"Search query for issues and pull requests"`
}

// SearchIssuesHandler handles the search_issues MCP tool.
type SearchIssuesHandler struct {
	service *Service
}

// NewSearchIssuesHandler creates a new issue-search handler.
func NewSearchIssuesHandler(service *Service) *SearchIssuesHandler {
	return &SearchIssuesHandler{
		service: service,
	}
}

// Handle searches issues and pull requests scoped to the repository.
func (h *SearchIssuesHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchIssuesArgument) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Query) == "" {
		return errorResult("Query cannot be empty"), nil, nil
	}

	qualified := args.Query + " repo:" + h.service.Identity().Slug()

	result, err := h.service.API().SearchIssues(ctx, qualified)
	if err != nil {
		return errorResult(searchFailureText(err, qualified)), nil, nil
	}

	if result.Total == 0 {
		return textResult(fmt.Sprintf("No issues or pull requests found for: %s", args.Query)), nil, nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues and pull requests:\n\n", result.Total))
	for _, item := range result.Items {
		kind := "issue"
		if item.IsPullRequest {
			kind = "PR"
		}
		sb.WriteString(fmt.Sprintf("- #%d [%s, %s] **%s** by %s (%s)\n  %s\n",
			item.Number, kind, item.State, item.Title, item.Author, item.CreatedAt, item.URL))
	}
	if result.Total > len(result.Items) {
		sb.WriteString(fmt.Sprintf("\nShowing %d of %d matches.\n", len(result.Items), result.Total))
	}

	return textResult(sb.String()), nil, nil
}

// GetToolDefinition returns the MCP tool definition.
func (h *SearchIssuesHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "search_issues",
		Description: "Search issues and pull requests in the configured repository",
	}
}

// RegisterSearchIssuesTool registers the search_issues tool with an MCP server.
func RegisterSearchIssuesTool(server *mcp.Server, service *Service) {
	handler := NewSearchIssuesHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
