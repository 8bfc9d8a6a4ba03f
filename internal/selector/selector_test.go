package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/secretsentry/secretsentry-cli/internal/logging"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

func TestSelector_ListStagedForPush_FallsBackWithoutUpstream(t *testing.T) {
	f := vcs.NewFake()
	f.NoUpstream = true
	f.Tracked = []string{"a.go", "b.go"}

	s := New(f, "", &logging.Logger{})
	got, err := s.ListStagedForPush(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %v, want fallback to tracked files", got)
	}
}

func TestSelector_ListStagedForPush_PropagatesOtherErrors(t *testing.T) {
	f := &failingClient{err: errors.New("boom")}
	s := New(f, "", &logging.Logger{})

	_, err := s.ListStagedForPush(context.Background())
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
}

func TestSelector_ReadText_DecodesUTF8(t *testing.T) {
	f := vcs.NewFake()
	f.Blobs["a.go"] = []byte("package a\n")

	s := New(f, "", &logging.Logger{})
	got := s.ReadText(context.Background(), "a.go")
	if got.Status != ReadOK || got.Text != "package a\n" {
		t.Fatalf("got %+v", got)
	}
}

func TestSelector_ReadText_DetectsBinary(t *testing.T) {
	f := vcs.NewFake()
	f.Blobs["bin"] = []byte{0x00, 0x01, 0x02, 0x03}

	s := New(f, "", &logging.Logger{})
	got := s.ReadText(context.Background(), "bin")
	if got.Status != ReadBinary {
		t.Fatalf("got status %v, want ReadBinary", got.Status)
	}
}

func TestSelector_ReadText_FallsBackOnLatin1(t *testing.T) {
	f := vcs.NewFake()
	// 0xE9 alone is invalid UTF-8 but is "é" under Latin-1.
	f.Blobs["a.txt"] = []byte{0x68, 0x69, 0xE9}

	s := New(f, "", &logging.Logger{})
	got := s.ReadText(context.Background(), "a.txt")
	if got.Status != ReadOK {
		t.Fatalf("got status %v, want ReadOK", got.Status)
	}
	if got.Text != "hié" {
		t.Fatalf("got %q", got.Text)
	}
}

type failingClient struct {
	err error
}

func (f *failingClient) ListTracked(ctx context.Context) ([]string, error)     { return nil, f.err }
func (f *failingClient) ListPendingPush(ctx context.Context) ([]string, error) { return nil, f.err }
func (f *failingClient) DiffUnstaged(ctx context.Context) (string, error)      { return "", f.err }
func (f *failingClient) ShowIndex(ctx context.Context, path string) ([]byte, error) {
	return nil, f.err
}
func (f *failingClient) Metadata(ctx context.Context) vcs.Metadata { return vcs.PlaceholderMetadata() }
