package githubapi

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v68/github"
	"github.com/reposcout/mcp-scout-server/internal/domain"
	"golang.org/x/oauth2"
)

// Client is a thin adapter over the GitHub REST API, scoped to a single
// repository. Every failure is wrapped with a uniform prefix so callers
// can present remote errors consistently; the original error chain is
// preserved for typed inspection.
type Client struct {
	gh    *github.Client
	owner string
	repo  string
}

// NewClient creates a client authenticated with the given bearer token.
func NewClient(token, owner, repo string) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(context.Background(), ts)
	return &Client{
		gh:    github.NewClient(tc),
		owner: owner,
		repo:  repo,
	}
}

func wrapErr(err error) error {
	return fmt.Errorf("GitHub API error: %w", err)
}

// GetRepository fetches the metadata subset the diagnostics engine needs.
func (c *Client) GetRepository(ctx context.Context) (*domain.RepositoryInfo, error) {
	r, _, err := c.gh.Repositories.Get(ctx, c.owner, c.repo)
	if err != nil {
		return nil, wrapErr(err)
	}
	return &domain.RepositoryInfo{
		FullName:      r.GetFullName(),
		SizeKB:        r.GetSize(),
		Private:       r.GetPrivate(),
		DefaultBranch: r.GetDefaultBranch(),
	}, nil
}

// GetFileContents fetches a file's decoded text content. A directory
// response has no text body and is reported as an error.
func (c *Client) GetFileContents(ctx context.Context, path string) (string, error) {
	fileContent, _, _, err := c.gh.Repositories.GetContents(ctx, c.owner, c.repo, path, nil)
	if err != nil {
		return "", wrapErr(err)
	}
	if fileContent == nil {
		return "", fmt.Errorf("path is a directory, not a file: %s", path)
	}
	decoded, err := fileContent.GetContent()
	if err != nil {
		return "", fmt.Errorf("failed to decode file content: %w", err)
	}
	return decoded, nil
}

// SearchCode runs a code search with the given qualified query.
func (c *Client) SearchCode(ctx context.Context, query string, page, perPage int) (*domain.CodeSearchResult, error) {
	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}
	res, _, err := c.gh.Search.Code(ctx, query, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	out := &domain.CodeSearchResult{Total: res.GetTotal()}
	for _, item := range res.CodeResults {
		out.Items = append(out.Items, domain.SearchResultItem{
			FileName: item.GetName(),
			FilePath: item.GetPath(),
		})
	}
	return out, nil
}

// SearchIssues runs an issue/PR search with the given qualified query.
func (c *Client) SearchIssues(ctx context.Context, query string) (*domain.IssueSearchResult, error) {
	res, _, err := c.gh.Search.Issues(ctx, query, &github.SearchOptions{})
	if err != nil {
		return nil, wrapErr(err)
	}
	out := &domain.IssueSearchResult{Total: res.GetTotal()}
	for _, issue := range res.Issues {
		out.Items = append(out.Items, domain.IssueItem{
			Number:        issue.GetNumber(),
			Title:         issue.GetTitle(),
			State:         issue.GetState(),
			Author:        issue.GetUser().GetLogin(),
			URL:           issue.GetHTMLURL(),
			IsPullRequest: issue.IsPullRequest(),
			CreatedAt:     issue.GetCreatedAt().Format(time.RFC3339),
		})
	}
	return out, nil
}

// ListCommits fetches a page of commits since the given timestamp. The
// returned records carry no file details; use GetCommit for diffs.
func (c *Client) ListCommits(ctx context.Context, since time.Time, author string, page, perPage int) ([]domain.CommitRecord, error) {
	opts := &github.CommitsListOptions{
		Since:       since,
		Author:      author,
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}
	commits, _, err := c.gh.Repositories.ListCommits(ctx, c.owner, c.repo, opts)
	if err != nil {
		return nil, wrapErr(err)
	}
	out := make([]domain.CommitRecord, 0, len(commits))
	for _, rc := range commits {
		out = append(out, convertCommit(rc))
	}
	return out, nil
}

// GetCommit fetches full detail for one commit, including file patches.
func (c *Client) GetCommit(ctx context.Context, sha string) (*domain.CommitRecord, error) {
	rc, _, err := c.gh.Repositories.GetCommit(ctx, c.owner, c.repo, sha, nil)
	if err != nil {
		return nil, wrapErr(err)
	}
	rec := convertCommit(rc)
	return &rec, nil
}

func convertCommit(rc *github.RepositoryCommit) domain.CommitRecord {
	rec := domain.CommitRecord{
		SHA:         rc.GetSHA(),
		Message:     rc.GetCommit().GetMessage(),
		Author:      rc.GetCommit().GetAuthor().GetName(),
		AuthorEmail: rc.GetCommit().GetAuthor().GetEmail(),
		Date:        rc.GetCommit().GetAuthor().GetDate().Time,
		Additions:   rc.GetStats().GetAdditions(),
		Deletions:   rc.GetStats().GetDeletions(),
	}
	for _, f := range rc.Files {
		rec.Files = append(rec.Files, domain.FileChange{
			Path:      f.GetFilename(),
			Status:    f.GetStatus(),
			Additions: f.GetAdditions(),
			Deletions: f.GetDeletions(),
			Patch:     f.GetPatch(),
		})
	}
	return rec
}
