package vcs

import (
	"context"
	"errors"
	"testing"
)

func TestPlaceholderMetadata_AllFieldsUnknown(t *testing.T) {
	m := PlaceholderMetadata()
	if m.RepoName != Unknown || m.Branch != Unknown || m.CommitHash != Unknown ||
		m.Author != Unknown || m.Timestamp != Unknown {
		t.Fatalf("expected all fields to be %q, got %+v", Unknown, m)
	}
}

func TestFake_ListTracked(t *testing.T) {
	f := NewFake()
	f.Tracked = []string{"a.go", "b.go"}

	got, err := f.ListTracked(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d paths, want 2", len(got))
	}
}

func TestFake_ListPendingPush_NoUpstream(t *testing.T) {
	f := NewFake()
	f.NoUpstream = true

	_, err := f.ListPendingPush(context.Background())
	if !errors.Is(err, errNoUpstream) {
		t.Fatalf("expected ErrVcsNoUpstream, got %v", err)
	}
}

func TestFake_ShowIndex_MissingBlob(t *testing.T) {
	f := NewFake()

	_, err := f.ShowIndex(context.Background(), "missing.go")
	if err == nil {
		t.Fatalf("expected error for missing blob")
	}
}

func TestFake_ShowIndex_ReturnsStoredBytes(t *testing.T) {
	f := NewFake()
	f.Blobs["a.go"] = []byte("package a\n")

	got, err := f.ShowIndex(context.Background(), "a.go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "package a\n" {
		t.Fatalf("got %q", got)
	}
}

func TestFake_Metadata_ReturnsConfigured(t *testing.T) {
	f := NewFake()
	f.Meta = Metadata{RepoName: "demo", Branch: "main"}

	got := f.Metadata(context.Background())
	if got.RepoName != "demo" || got.Branch != "main" {
		t.Fatalf("got %+v", got)
	}
}

func TestRepoNameFromURL(t *testing.T) {
	cases := map[string]string{
		"git@github.com:acme/widget.git": "widget",
		"https://github.com/acme/widget":  "widget",
		"https://github.com/acme/widget.git/": "widget",
	}
	for url, want := range cases {
		if got := repoNameFromURL(url); got != want {
			t.Errorf("repoNameFromURL(%q) = %q, want %q", url, got, want)
		}
	}
}
