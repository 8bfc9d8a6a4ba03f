// Package vcs abstracts the subprocess-heavy version-control access the
// rest of the scanning pipeline needs behind a small capability interface,
// so tests can supply a fixture instead of real repository state (§9).
package vcs

import "context"

// Metadata is populated best-effort for reports (§3). All fields default
// to a placeholder on failure; a Metadata lookup never aborts a scan.
type Metadata struct {
	RepoName   string
	Branch     string
	CommitHash string
	Author     string
	Timestamp  string
}

// Unknown is the placeholder used for any Metadata field that could not
// be determined.
const Unknown = "unknown"

// PlaceholderMetadata is returned whenever repository metadata cannot be
// read at all.
func PlaceholderMetadata() Metadata {
	return Metadata{
		RepoName:   Unknown,
		Branch:     Unknown,
		CommitHash: Unknown,
		Author:     Unknown,
		Timestamp:  Unknown,
	}
}

// Client is the capability interface the orchestrator and file selector
// depend on. Production code is backed by go-git (see Open); tests supply
// a Fake.
type Client interface {
	// ListTracked returns every tracked file in the repository.
	ListTracked(ctx context.Context) ([]string, error)

	// ListPendingPush returns paths that differ between the current
	// branch tip and its upstream. Returns ErrNoUpstream (via
	// apperr.ErrVcsNoUpstream wrapping) when no upstream is configured.
	ListPendingPush(ctx context.Context) ([]string, error)

	// DiffUnstaged returns a zero-context unified diff of pending-push
	// changes as raw text, ready for diffparse.Parse.
	DiffUnstaged(ctx context.Context) (string, error)

	// ShowIndex returns the raw bytes of path as staged in the index.
	ShowIndex(ctx context.Context, path string) ([]byte, error)

	// Metadata returns best-effort repository metadata.
	Metadata(ctx context.Context) Metadata
}
