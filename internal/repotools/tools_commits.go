package repotools

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/reposcout/mcp-scout-server/internal/domain"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxCommits = 25

	// maxPatchChars caps a single file patch; diffs of generated or
	// vendored files can otherwise dominate the whole response.
	maxPatchChars = 8000

	patchTruncationMarker = "\n... [patch truncated at 8000 characters]"
)

// CommitHistoryArgument defines commit-history parameters.
type CommitHistoryArgument struct {
	Days         int    `json:"days" jsonschema_description:"How many days back to look, 1-365"`
	IncludeDiffs *bool  `json:"include_diffs,omitempty" jsonschema_description:"Fetch full per-commit diffs (default true)"`
	Author       string `json:"author,omitempty" jsonschema_description:"Filter commits by author login or email"`
	MaxCommits   int    `json:"max_commits,omitempty" jsonschema_description:"Maximum commits to report, 1-50 (default 25)"`
	Page         int    `json:"page,omitempty" jsonschema_description:"Commit list page, starting at 0"`
}

// CommitHistoryHandler handles the get_commit_history MCP tool.
type CommitHistoryHandler struct {
	service *Service

	// now is replaceable for deterministic tests.
	now func() time.Time
}

// NewCommitHistoryHandler creates a new commit-history handler.
func NewCommitHistoryHandler(service *Service) *CommitHistoryHandler {
	return &CommitHistoryHandler{
		service: service,
		now:     time.Now,
	}
}

// Handle lists commits since now-days, optionally enriching each with its
// full diff. Detail fetches run concurrently; any single failure fails
// the whole batch.
func (h *CommitHistoryHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args CommitHistoryArgument) (*mcp.CallToolResult, any, error) {
	if args.Days < 1 || args.Days > 365 {
		return errorResult("days must be between 1 and 365"), nil, nil
	}

	includeDiffs := true
	if args.IncludeDiffs != nil {
		includeDiffs = *args.IncludeDiffs
	}

	maxCommits := args.MaxCommits
	if maxCommits == 0 {
		maxCommits = defaultMaxCommits
	}
	if maxCommits < 1 || maxCommits > 50 {
		return errorResult("max_commits must be between 1 and 50"), nil, nil
	}

	if args.Page < 0 {
		return errorResult("page cannot be negative"), nil, nil
	}

	since := h.now().UTC().Add(-time.Duration(args.Days) * 24 * time.Hour)

	commits, err := h.service.API().ListCommits(ctx, since, args.Author, args.Page, maxCommits)
	if err != nil {
		return errorResult(err.Error()), nil, nil
	}

	if len(commits) == 0 {
		return textResult(fmt.Sprintf("No commits found in the last %d days since %s.",
			args.Days, since.Format(time.RFC3339))), nil, nil
	}

	if len(commits) > maxCommits {
		commits = commits[:maxCommits]
	}

	if includeDiffs {
		detailed, err := h.fetchDetails(ctx, commits)
		if err != nil {
			return errorResult(fmt.Sprintf("failed to fetch commit details: %s", err)), nil, nil
		}
		commits = detailed
	}

	return textResult(formatCommitHistory(commits, args.Days, includeDiffs)), nil, nil
}

// fetchDetails fetches full per-commit detail concurrently and awaits the
// batch jointly. No partial results: one failure fails all.
func (h *CommitHistoryHandler) fetchDetails(ctx context.Context, commits []domain.CommitRecord) ([]domain.CommitRecord, error) {
	detailed := make([]domain.CommitRecord, len(commits))
	g, gctx := errgroup.WithContext(ctx)
	for i, commit := range commits {
		g.Go(func() error {
			rec, err := h.service.API().GetCommit(gctx, commit.SHA)
			if err != nil {
				return err
			}
			detailed[i] = *rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return detailed, nil
}

func formatCommitHistory(commits []domain.CommitRecord, days int, includeDiffs bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d commits in the last %d days:\n\n", len(commits), days))

	for _, c := range commits {
		sb.WriteString(fmt.Sprintf("### %s %s\n", shortSHA(c.SHA), firstLine(c.Message)))
		sb.WriteString(fmt.Sprintf("**Author**: %s <%s>\n", c.Author, c.AuthorEmail))
		sb.WriteString(fmt.Sprintf("**Date**: %s\n", c.Date.UTC().Format(time.RFC3339)))

		if includeDiffs {
			sb.WriteString(fmt.Sprintf("**Changes**: +%d -%d across %d file(s)\n", c.Additions, c.Deletions, len(c.Files)))
			for _, f := range c.Files {
				sb.WriteString(fmt.Sprintf("\n`%s` (%s, +%d -%d)\n", f.Path, f.Status, f.Additions, f.Deletions))
				if f.Patch != "" {
					sb.WriteString("```diff\n")
					sb.WriteString(truncatePatch(f.Patch))
					sb.WriteString("\n```\n")
				}
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// truncatePatch keeps the first maxPatchChars bytes of a patch and
// appends a marker when anything was cut. The cut point backs up to a
// rune boundary so the output never ends in a broken rune.
func truncatePatch(patch string) string {
	if len(patch) <= maxPatchChars {
		return patch
	}
	cut := maxPatchChars
	for cut > 0 && !utf8.RuneStart(patch[cut]) {
		cut--
	}
	return patch[:cut] + patchTruncationMarker
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// GetToolDefinition returns the MCP tool definition.
func (h *CommitHistoryHandler) GetToolDefinition() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_commit_history",
		Description: "List recent commits in the configured repository, optionally with diffs",
	}
}

// RegisterCommitHistoryTool registers the get_commit_history tool with an MCP server.
func RegisterCommitHistoryTool(server *mcp.Server, service *Service) {
	handler := NewCommitHistoryHandler(service)
	mcp.AddTool(server, handler.GetToolDefinition(), handler.Handle)
}
