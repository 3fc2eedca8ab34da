package domain

// SearchMode selects which part of a file a search query targets.
type SearchMode string

const (
	SearchModeFilename SearchMode = "filename"
	SearchModePath     SearchMode = "path"
	SearchModeContent  SearchMode = "content"
	SearchModeAll      SearchMode = "all"
)

// ValidSearchMode reports whether s names a known search mode.
func ValidSearchMode(s string) bool {
	switch SearchMode(s) {
	case SearchModeFilename, SearchModePath, SearchModeContent, SearchModeAll:
		return true
	}
	return false
}

// MatchReason labels which part of a file (name, path, or content) is
// believed to have caused a search hit. For explicit search modes the
// reason is authoritative; for "all" mode it is a best-effort inference,
// since the search API does not report which qualifier matched.
type MatchReason string

const (
	MatchReasonFilename MatchReason = "filename"
	MatchReasonPath     MatchReason = "path"
	MatchReasonContent  MatchReason = "content"
)

// Icon returns the display icon for the reason.
func (m MatchReason) Icon() string {
	switch m {
	case MatchReasonFilename:
		return "📝"
	case MatchReasonPath:
		return "📁"
	default:
		return "📄"
	}
}

// Label returns the human-readable annotation for the reason.
func (m MatchReason) Label() string {
	switch m {
	case MatchReasonFilename:
		return "filename match"
	case MatchReasonPath:
		return "path match"
	default:
		return "content match"
	}
}

// SearchResultItem is a single code-search hit.
type SearchResultItem struct {
	FileName string
	FilePath string
}

// CodeSearchResult is one page of code-search hits. Total may exceed
// len(Items) when the result set spans multiple pages.
type CodeSearchResult struct {
	Total int
	Items []SearchResultItem
}

// IssueItem is a single issue or pull-request search hit.
type IssueItem struct {
	Number        int
	Title         string
	State         string
	Author        string
	URL           string
	IsPullRequest bool
	CreatedAt     string
}

// IssueSearchResult is one page of issue/PR search hits.
type IssueSearchResult struct {
	Total int
	Items []IssueItem
}
