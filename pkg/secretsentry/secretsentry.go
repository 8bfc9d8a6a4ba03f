// Package secretsentry is the public, embeddable surface of the scan
// engine: a thin facade over internal/scanner, internal/vcs and
// internal/report for callers that want to run a scan from Go code
// instead of the command line.
package secretsentry

import (
	"context"
	"fmt"

	"github.com/secretsentry/secretsentry-cli/internal/detect"
	"github.com/secretsentry/secretsentry-cli/internal/logging"
	"github.com/secretsentry/secretsentry-cli/internal/report"
	"github.com/secretsentry/secretsentry-cli/internal/scanner"
	"github.com/secretsentry/secretsentry-cli/internal/selector"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

// Finding is a potential secret found in a file, re-exported so callers
// never need to import internal/detect directly.
type Finding = detect.Finding

// Result is the outcome of a repository or diff scan.
type Result struct {
	DiffFindings []Finding
	RepoFindings []Finding
	Metadata     vcs.Metadata
}

// ScanRepository opens the git repository rooted at dir and scans every
// tracked file for credentials.
func ScanRepository(ctx context.Context, dir string) (Result, error) {
	client, err := vcs.Open(dir)
	if err != nil {
		return Result{}, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	sc := scanner.New(selector.New(client, dir, &logging.Logger{}), &logging.Logger{})
	findings, err := sc.ScanRepository(ctx)
	if err != nil {
		return Result{}, err
	}

	return Result{RepoFindings: findings, Metadata: client.Metadata(ctx)}, nil
}

// ScanPendingPush opens the git repository rooted at dir and scans only
// the lines that differ from its upstream.
func ScanPendingPush(ctx context.Context, dir string) (Result, error) {
	client, err := vcs.Open(dir)
	if err != nil {
		return Result{}, fmt.Errorf("open repository at %s: %w", dir, err)
	}

	sc := scanner.New(selector.New(client, dir, &logging.Logger{}), &logging.Logger{})
	findings, err := sc.ScanChangedLines(ctx, client)
	if err != nil {
		return Result{}, err
	}

	return Result{DiffFindings: findings, Metadata: client.Metadata(ctx)}, nil
}

// ScanText scans raw file content in isolation, with no repository in
// scope, useful for scanning content a caller already has in memory.
func ScanText(text, path string) []Finding {
	sc := scanner.New(nil, &logging.Logger{})
	return sc.ScanContent(text, path)
}

// RenderReport writes an HTML report for the given result to outputPath.
func RenderReport(result Result, generatedAt, outputPath string) error {
	return report.RenderToFile(outputPath, result.DiffFindings, result.RepoFindings, result.Metadata, generatedAt, "")
}
