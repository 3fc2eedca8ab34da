package domain

import "time"

// FileChange describes one file touched by a commit.
type FileChange struct {
	Path      string
	Status    string
	Additions int
	Deletions int
	Patch     string
}

// CommitRecord is a pass-through commit shape from the hosting API.
// Files and the aggregate counters are only populated when the full
// commit detail has been fetched.
type CommitRecord struct {
	SHA         string
	Message     string
	Author      string
	AuthorEmail string
	Date        time.Time
	Additions   int
	Deletions   int
	Files       []FileChange
}
