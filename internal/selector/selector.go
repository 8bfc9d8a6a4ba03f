// Package selector enumerates candidate files for a scan — either every
// tracked file in the repository, or the files that differ from the
// current branch's upstream — and decodes their text content (§4.2).
package selector

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/catalog"
	"github.com/secretsentry/secretsentry-cli/internal/logging"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

// ReadStatus classifies the outcome of ReadText.
type ReadStatus int

const (
	ReadOK ReadStatus = iota
	ReadBinary
	ReadError
)

// ReadResult is the outcome of reading and decoding one file.
type ReadResult struct {
	Text   string
	Status ReadStatus
}

// Selector enumerates and filters candidate paths and reads their text.
// Root is the repository working directory, used as the working-tree
// fallback when the index copy cannot be read.
type Selector struct {
	Client vcs.Client
	Root   string
	Log    *logging.Logger
}

func New(client vcs.Client, root string, log *logging.Logger) *Selector {
	return &Selector{Client: client, Root: root, Log: log}
}

// ListRepository returns every tracked file in the repository.
func (s *Selector) ListRepository(ctx context.Context) ([]string, error) {
	return s.Client.ListTracked(ctx)
}

// ListStagedForPush returns paths pending push against the upstream
// branch, falling back to every tracked file when no upstream exists.
func (s *Selector) ListStagedForPush(ctx context.Context) ([]string, error) {
	paths, err := s.Client.ListPendingPush(ctx)
	if errors.Is(err, apperr.ErrVcsNoUpstream) {
		return s.Client.ListTracked(ctx)
	}
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// Filter applies the exclusion policy and is pure: same input, same
// output, regardless of input order.
func Filter(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !isExcluded(p) {
			out = append(out, p)
		}
	}
	return out
}

func isExcluded(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := catalog.ExcludedExtensions[ext]; ok {
		return true
	}

	for _, component := range strings.Split(filepath.ToSlash(path), "/") {
		if _, ok := catalog.ExcludedDirTokens[strings.ToLower(component)]; ok {
			return true
		}
	}

	base := strings.ToLower(filepath.Base(path))
	for _, sub := range catalog.ExcludedFilenameSubstrings {
		if strings.Contains(base, sub) {
			return true
		}
	}
	return false
}

// ReadText reads path as staged in the index, falling back to the
// working-tree copy on failure. Content is decoded as UTF-8; on decode
// error it is retried as Latin-1. Binary content is reported as such
// rather than propagated as an error.
func (s *Selector) ReadText(ctx context.Context, path string) ReadResult {
	raw, err := s.Client.ShowIndex(ctx, path)
	if err != nil {
		raw, err = os.ReadFile(filepath.Join(s.Root, path))
		if err != nil {
			s.Log.Logf(path, "read failed: %v", err)
			return ReadResult{Status: ReadError}
		}
	}

	if looksBinary(raw) {
		return ReadResult{Status: ReadBinary}
	}

	if utf8.Valid(raw) {
		return ReadResult{Text: string(raw), Status: ReadOK}
	}
	return ReadResult{Text: decodeLatin1(raw), Status: ReadOK}
}

// looksBinary reports whether raw contains a NUL byte in its first 8000
// bytes, the same heuristic git itself uses to classify a blob as binary.
func looksBinary(raw []byte) bool {
	n := len(raw)
	if n > 8000 {
		n = 8000
	}
	return bytes.IndexByte(raw[:n], 0) >= 0
}

// decodeLatin1 maps each byte to its Unicode code point, the behavior of
// Latin-1 (ISO-8859-1) decoding.
func decodeLatin1(raw []byte) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, c := range raw {
		b.WriteRune(rune(c))
	}
	return b.String()
}
