// Package hooks implements the thin glue the pre-push and post-commit
// entry points run: drive the scanner in the right mode, hand results to
// the validation adapter and report renderer, and pass state between the
// two hook stages via a JSON handoff file (§4.8, C8).
package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/detect"
	"github.com/secretsentry/secretsentry-cli/internal/scanner"
	"github.com/secretsentry/secretsentry-cli/internal/validation"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

// handoffSchemaVersion guards against a post-hook reading a handoff file
// written by an incompatible future version of this package.
const handoffSchemaVersion = 1

// findingRecord is one entry of the JSON array printed to stdout and
// stored in the handoff file. ID gives each finding a stable identity
// across the pre/post handoff.
type findingRecord struct {
	ID         string `json:"id"`
	File       string `json:"file"`
	LineNumber int    `json:"line_number"`
	Line       string `json:"line"`
	Pattern    string `json:"pattern"`
	Detection  string `json:"detection"`
}

// Handoff is the JSON object written by PrePush and read by
// PostCommit/PostPush.
type Handoff struct {
	SchemaVersion    int                      `json:"schema_version"`
	SecretsFound     []findingRecord          `json:"secrets_found"`
	ValidationResult *validation.Decision     `json:"validation_results"`
}

// HandoffPath is the well-known location of the handoff file, under the
// repository's hooks directory.
func HandoffPath(hooksDir string) string {
	return filepath.Join(hooksDir, "secretsentry-handoff.json")
}

func toRecords(findings []detect.Finding) []findingRecord {
	out := make([]findingRecord, 0, len(findings))
	for _, f := range findings {
		out = append(out, findingRecord{
			ID:         uuid.NewString(),
			File:       f.Path,
			LineNumber: f.LineNumber,
			Line:       f.LineText,
			Pattern:    f.Kind,
			Detection:  f.Detection.String(),
		})
	}
	return out
}

// PrePush scans the files about to be pushed. If findings exist, it
// consults adapter; a proceed=false decision is surfaced as
// apperr.ErrValidationAbort. On proceed=true, findings and the decision
// are written to the handoff file at hooksDir for the post stage.
func PrePush(ctx context.Context, sc *scanner.Scanner, client vcs.Client, adapter validation.Adapter, hooksDir string) error {
	findings, err := sc.ScanChangedLines(ctx, client)
	if err != nil {
		return err
	}

	var decision validation.Decision
	if len(findings) > 0 {
		decision, err = adapter.Classify(validation.GroupByKind(findings))
		if err != nil {
			return err
		}
		if !decision.Proceed {
			return apperr.ErrValidationAbort
		}
	} else {
		decision = validation.Decision{Proceed: true, Classification: validation.ClassificationFalsePositive}
	}

	handoff := Handoff{
		SchemaVersion:    handoffSchemaVersion,
		SecretsFound:     toRecords(findings),
		ValidationResult: &decision,
	}
	return writeHandoff(HandoffPath(hooksDir), handoff)
}

// PostCommit scans the full repository, merges in whatever the pre-push
// stage handed off (if present), and returns the combined result along
// with the decision recorded at handoff time (zero value if there was
// none). The handoff file is deleted once read.
func PostCommit(ctx context.Context, sc *scanner.Scanner, hooksDir string) (repoFindings, diffFindings []detect.Finding, decision validation.Decision, err error) {
	repoFindings, err = sc.ScanRepository(ctx)
	if err != nil {
		return nil, nil, validation.Decision{}, err
	}

	path := HandoffPath(hooksDir)
	handoff, readErr := readHandoff(path)
	if readErr == nil {
		diffFindings = fromRecords(handoff.SecretsFound)
		if handoff.ValidationResult != nil {
			decision = *handoff.ValidationResult
		}
		_ = os.Remove(path)
	}

	return repoFindings, diffFindings, decision, nil
}

func fromRecords(records []findingRecord) []detect.Finding {
	out := make([]detect.Finding, 0, len(records))
	for _, r := range records {
		out = append(out, detect.Finding{
			Path:       r.File,
			LineNumber: r.LineNumber,
			LineText:   r.Line,
			Kind:       r.Pattern,
		})
	}
	return out
}

func writeHandoff(path string, h Handoff) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}
	raw, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode handoff file: %w", err)
	}
	return os.WriteFile(path, raw, 0o644)
}

func readHandoff(path string) (Handoff, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Handoff{}, err
	}
	var h Handoff
	if err := json.Unmarshal(raw, &h); err != nil {
		return Handoff{}, fmt.Errorf("parse handoff file: %w", err)
	}
	return h, nil
}

// FindingsJSON renders findings as the {file, line_number, line,
// pattern, detection} array printed to stdout by the standalone
// command-line surface (§6).
func FindingsJSON(findings []detect.Finding) ([]byte, error) {
	return json.Marshal(toRecords(findings))
}
