package vcs

import (
	"context"
	"errors"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
)

var errNoUpstream = apperr.ErrVcsNoUpstream
var errBlobMissing = errors.New("vcs: blob not found")

// Fake is an in-memory Client used by tests in selector, scanner, and
// hooks. It never touches a real repository.
type Fake struct {
	Tracked     []string
	PendingPush []string
	Diff        string
	Blobs       map[string][]byte
	Meta        Metadata

	NoUpstream bool
}

func NewFake() *Fake {
	return &Fake{Blobs: map[string][]byte{}, Meta: PlaceholderMetadata()}
}

func (f *Fake) ListTracked(ctx context.Context) ([]string, error) {
	return f.Tracked, nil
}

func (f *Fake) ListPendingPush(ctx context.Context) ([]string, error) {
	if f.NoUpstream {
		return nil, errNoUpstream
	}
	return f.PendingPush, nil
}

func (f *Fake) DiffUnstaged(ctx context.Context) (string, error) {
	if f.NoUpstream {
		return "", errNoUpstream
	}
	return f.Diff, nil
}

func (f *Fake) ShowIndex(ctx context.Context, path string) ([]byte, error) {
	b, ok := f.Blobs[path]
	if !ok {
		return nil, errBlobMissing
	}
	return b, nil
}

func (f *Fake) Metadata(ctx context.Context) Metadata {
	return f.Meta
}
