// Package scanner drives file selection and detection: it is the glue
// between selector, diffparse, and detect, exposing the three entry
// points the hook layer and CLI commands call (§4.5, C5).
package scanner

import (
	"context"
	"runtime"
	"sync"

	"github.com/secretsentry/secretsentry-cli/internal/detect"
	"github.com/secretsentry/secretsentry-cli/internal/diffparse"
	"github.com/secretsentry/secretsentry-cli/internal/logging"
	"github.com/secretsentry/secretsentry-cli/internal/selector"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

// Scanner drives selection and detection, fanning file-level work out
// across a bounded worker pool while keeping output deterministic.
type Scanner struct {
	Selector *selector.Selector
	Log      *logging.Logger
}

func New(sel *selector.Selector, log *logging.Logger) *Scanner {
	return &Scanner{Selector: sel, Log: log}
}

// ScanRepository scans every tracked, non-excluded file in the
// repository and returns its findings, deterministically ordered.
func (s *Scanner) ScanRepository(ctx context.Context) ([]detect.Finding, error) {
	paths, err := s.Selector.ListRepository(ctx)
	if err != nil {
		return nil, err
	}
	return s.ScanFiles(ctx, paths)
}

// ScanChangedLines scans only the added lines of a pending-push diff,
// parsed via diffparse, against the detection engine.
func (s *Scanner) ScanChangedLines(ctx context.Context, client vcs.Client) ([]detect.Finding, error) {
	diffText, err := client.DiffUnstaged(ctx)
	if err != nil {
		return nil, err
	}
	added := diffparse.Parse(diffText, s.Log)

	engine := detect.NewEngine(s.Log)
	var findings []detect.Finding
	for _, a := range added {
		if ctx.Err() != nil {
			break
		}
		if f := engine.DetectLine(a.Path, a.LineNumber, a.Text); f != nil {
			findings = append(findings, *f)
		}
	}
	detect.SortFindings(findings)
	return findings, nil
}

// ScanFiles applies the exclusion policy to paths, reads and scans each
// surviving file concurrently, and returns deduplicated, deterministically
// ordered findings.
func (s *Scanner) ScanFiles(ctx context.Context, paths []string) ([]detect.Finding, error) {
	candidates := selector.Filter(paths)
	if len(candidates) == 0 {
		return nil, nil
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > len(candidates) {
		numWorkers = len(candidates)
	}

	pathCh := make(chan string, len(candidates))
	for _, p := range candidates {
		pathCh <- p
	}
	close(pathCh)

	engine := detect.NewEngine(s.Log)
	var mu sync.Mutex
	var findings []detect.Finding
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range pathCh {
				if ctx.Err() != nil {
					return
				}
				fs := s.scanOneFile(ctx, engine, path)
				if len(fs) > 0 {
					mu.Lock()
					findings = append(findings, fs...)
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	detect.SortFindings(findings)
	return findings, ctx.Err()
}

// ScanContent scans in-memory text as if it were read from path, without
// touching the selector or version control. Useful for one-off checks and
// for tests that need to exercise the detection pipeline directly.
func (s *Scanner) ScanContent(text, path string) []detect.Finding {
	engine := detect.NewEngine(s.Log)
	return scanLines(engine, path, text)
}

func (s *Scanner) scanOneFile(ctx context.Context, engine *detect.Engine, path string) []detect.Finding {
	result := s.Selector.ReadText(ctx, path)
	if result.Status != selector.ReadOK {
		return nil
	}
	return scanLines(engine, path, result.Text)
}

func scanLines(engine *detect.Engine, path, text string) []detect.Finding {
	var findings []detect.Finding
	lineNumber := 0
	start := 0
	for i := 0; i <= len(text); i++ {
		if i == len(text) || text[i] == '\n' {
			line := text[start:i]
			lineNumber++
			if f := engine.DetectLine(path, lineNumber, line); f != nil {
				findings = append(findings, *f)
			}
			start = i + 1
		}
	}
	return findings
}
