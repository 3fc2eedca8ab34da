package repotools

import (
	"fmt"
	"strings"

	"github.com/reposcout/mcp-scout-server/internal/domain"
)

// ClassifyMatch derives the reason a search hit matched. For explicit
// modes the reason is the mode itself, regardless of item content. For
// "all" mode the API does not report which qualifier matched, so the
// reason is inferred case-insensitively from the item: filename first,
// then path, defaulting to content. The tie-break order is deliberate;
// do not reorder it.
func ClassifyMatch(item domain.SearchResultItem, mode domain.SearchMode, rawQuery string) domain.MatchReason {
	switch mode {
	case domain.SearchModeFilename:
		return domain.MatchReasonFilename
	case domain.SearchModePath:
		return domain.MatchReasonPath
	case domain.SearchModeContent:
		return domain.MatchReasonContent
	}

	q := strings.ToLower(rawQuery)
	switch {
	case strings.Contains(strings.ToLower(item.FileName), q):
		return domain.MatchReasonFilename
	case strings.Contains(strings.ToLower(item.FilePath), q):
		return domain.MatchReasonPath
	default:
		return domain.MatchReasonContent
	}
}

// FormatSearchResults renders a non-empty result page, preserving the
// API's item order. Zero-result searches are routed to the diagnostics
// engine instead and must never reach this function.
func FormatSearchResults(result *domain.CodeSearchResult, mode domain.SearchMode, rawQuery string) string {
	var sb strings.Builder

	if mode == domain.SearchModeAll {
		sb.WriteString(fmt.Sprintf("Found %d files:\n", result.Total))
	} else {
		sb.WriteString(fmt.Sprintf("Found %d files searching in %s:\n", result.Total, mode))
	}

	for _, item := range result.Items {
		reason := ClassifyMatch(item, mode, rawQuery)
		sb.WriteString(fmt.Sprintf("- **%s** (%s) %s %s\n", item.FileName, item.FilePath, reason.Icon(), reason.Label()))
	}

	if result.Total > len(result.Items) {
		sb.WriteString(fmt.Sprintf("\nShowing %d of %d matches.\n", len(result.Items), result.Total))
	}

	return sb.String()
}
