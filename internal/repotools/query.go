package repotools

import (
	"strings"

	"github.com/reposcout/mcp-scout-server/internal/domain"
)

// BuildSearchQuery maps a raw query and search mode to a fully qualified
// GitHub search query scoped to the configured repository. The output
// always ends with the repo: qualifier.
//
// An empty rawQuery is valid and matches all files in the repository
// scope. No validation happens here; the remote API validates tokens
// itself and the caller surfaces its errors.
func BuildSearchQuery(rawQuery string, mode domain.SearchMode, id domain.RepositoryIdentity) string {
	scope := "repo:" + id.Slug()

	switch mode {
	case domain.SearchModeFilename:
		// The filename qualifier treats unquoted multi-word input as
		// conjunctive tokens, which breaks exact-filename intent.
		token := rawQuery
		if strings.Contains(rawQuery, " ") {
			token = `"` + rawQuery + `"`
		}
		return "filename:" + token + " " + scope
	case domain.SearchModePath:
		// in:path matches anywhere in the full path, filename included.
		return rawQuery + " in:path " + scope
	case domain.SearchModeContent:
		// A bare term already defaults to file-content scope.
		return rawQuery + " " + scope
	default:
		// "all": the query grammar has no OR across qualifier sets, so
		// union content and path matching; path subsumes filename.
		return rawQuery + " in:file,path " + scope
	}
}
