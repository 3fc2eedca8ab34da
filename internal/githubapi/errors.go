package githubapi

import (
	"errors"
	"net/http"

	"github.com/google/go-github/v68/github"
)

// IsRateLimited reports whether err is a rate-limit rejection, either the
// primary quota or the secondary abuse limiter.
func IsRateLimited(err error) bool {
	var rle *github.RateLimitError
	var arle *github.AbuseRateLimitError
	return errors.As(err, &rle) || errors.As(err, &arle)
}

// IsQuerySyntaxError reports whether err is a 422 validation failure,
// which the search API returns for malformed query syntax.
func IsQuerySyntaxError(err error) bool {
	var er *github.ErrorResponse
	return errors.As(err, &er) && er.Response != nil &&
		er.Response.StatusCode == http.StatusUnprocessableEntity
}

// IsAuthError reports whether err is a credential or scope rejection.
func IsAuthError(err error) bool {
	var er *github.ErrorResponse
	if !errors.As(err, &er) || er.Response == nil {
		return false
	}
	code := er.Response.StatusCode
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}
