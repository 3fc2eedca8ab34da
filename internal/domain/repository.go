package domain

// RepositoryIdentity identifies the single GitHub repository this server
// fronts. It is resolved once at startup and never mutated afterwards.
type RepositoryIdentity struct {
	// Owner is the user or organization that owns the repository.
	Owner string

	// Name is the repository name without the owner prefix.
	Name string
}

// Slug returns the "owner/name" form used in search qualifiers and URLs.
func (r RepositoryIdentity) Slug() string {
	return r.Owner + "/" + r.Name
}

// RepositoryInfo is the subset of repository metadata the diagnostics
// engine inspects.
type RepositoryInfo struct {
	// FullName is the "owner/name" identifier as reported by the API.
	FullName string

	// SizeKB is the repository size in kilobytes.
	SizeKB int

	// Private reports repository visibility.
	Private bool

	// DefaultBranch is the only branch GitHub code search covers.
	DefaultBranch string
}
