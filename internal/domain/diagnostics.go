package domain

// IndexingCeilingGB is the repository size above which GitHub does not
// build a code-search index.
const IndexingCeilingGB = 50

// DiagnosticClassification is the outcome of a zero-result diagnosis.
type DiagnosticClassification int

const (
	// SystemProbeFailure means the repository metadata fetch itself failed,
	// so nothing can be said about the search index.
	SystemProbeFailure DiagnosticClassification = iota

	// RepositoryNotIndexed means the repository is reachable but a baseline
	// search found nothing, so the index likely does not cover it.
	RepositoryNotIndexed

	// GenuinelyNoMatch means the index is populated and the original query
	// simply matched nothing.
	GenuinelyNoMatch
)

// DiagnosticReport is computed fresh on every zero-result search and never
// cached. Probe failures are recorded as data here rather than thrown.
type DiagnosticReport struct {
	RepoSizeKB           int
	IsPrivate            bool
	DefaultBranch        string
	BaselineSearchWorked bool
	BaselineResultCount  int

	// Err is set only when the repository probe failed outright.
	Err error
}

// Classification derives the report outcome. Pure function of the two
// probes' recorded results.
func (r *DiagnosticReport) Classification() DiagnosticClassification {
	switch {
	case r.Err != nil:
		return SystemProbeFailure
	case !r.BaselineSearchWorked || r.BaselineResultCount == 0:
		return RepositoryNotIndexed
	default:
		return GenuinelyNoMatch
	}
}

// SizeGB converts the reported kilobyte size to gigabytes.
func (r *DiagnosticReport) SizeGB() float64 {
	return float64(r.RepoSizeKB) / (1024 * 1024)
}

// ExceedsIndexingCeiling reports whether the repository is too large for
// GitHub to index at all.
func (r *DiagnosticReport) ExceedsIndexingCeiling() bool {
	return r.SizeGB() > IndexingCeilingGB
}
