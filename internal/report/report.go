// Package report renders a self-contained HTML document from scan
// findings: two result sections (pre-push, repository), a git metadata
// header, and a disclaimer (§4.7, C7).
//
// html/template is used deliberately: no third-party HTML templating
// library appears anywhere in the example corpus this module is
// grounded on, so this is the one component that falls back to the
// standard library rather than an ecosystem package.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"sort"

	"github.com/secretsentry/secretsentry-cli/internal/apperr"
	"github.com/secretsentry/secretsentry-cli/internal/detect"
	"github.com/secretsentry/secretsentry-cli/internal/vcs"
)

// maskWidth is k in mask(s, k): the number of unmasked characters kept
// at each end of a masked span.
const maskWidth = 3

// Mask returns s unchanged if it is too short to partially hide; otherwise
// it keeps maskWidth characters at each end and replaces the middle with
// asterisks.
func Mask(s string) string {
	k := maskWidth
	if len(s) <= 2*k {
		return s
	}
	middle := make([]byte, len(s)-2*k)
	for i := range middle {
		middle[i] = '*'
	}
	return s[:k] + string(middle) + s[len(s)-k:]
}

type dedupKey struct {
	path string
	line int
}

// dedupFindings removes duplicate (path, line) entries, keeping the
// first occurrence, preserving input order otherwise.
func dedupFindings(findings []detect.Finding) []detect.Finding {
	seen := make(map[dedupKey]struct{}, len(findings))
	out := make([]detect.Finding, 0, len(findings))
	for _, f := range findings {
		key := dedupKey{f.Path, f.LineNumber}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}

// row is the template-facing, masked view of one finding. SNo is the
// 1-based sequential row number spec.md's S.No/Filename/Line #/Secret
// table contract requires, assigned after sorting so it reflects
// display order rather than scan order.
type row struct {
	SNo          int
	Path         string
	LineNumber   int
	MaskedLine   string
	Kind         string
	Detection    string
	VariableName string
}

func toRows(findings []detect.Finding) []row {
	rows := make([]row, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, row{
			Path:         f.Path,
			LineNumber:   f.LineNumber,
			MaskedLine:   Mask(f.LineText),
			Kind:         f.Kind,
			Detection:    f.Detection.String(),
			VariableName: f.VariableName,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Path != rows[j].Path {
			return rows[i].Path < rows[j].Path
		}
		return rows[i].LineNumber < rows[j].LineNumber
	})
	for i := range rows {
		rows[i].SNo = i + 1
	}
	return rows
}

// documentData feeds the HTML template.
type documentData struct {
	Meta         vcs.Metadata
	GeneratedAt  string
	DiffRows     []row
	RepoRows     []row
	DiffCount    int
	RepoCount    int
}

// Render writes a self-contained HTML report to w. diffFindings and
// repoFindings are each deduplicated on (path, line); the repository
// section additionally unions in diffFindings so a finding present in
// both scans appears once there. templatePath, if non-empty, is used in
// place of the built-in template; a missing or unreadable file falls
// back to the built-in template rather than failing the render.
func Render(w io.Writer, diffFindings, repoFindings []detect.Finding, meta vcs.Metadata, generatedAt, templatePath string) error {
	diff := dedupFindings(diffFindings)
	repoUnion := dedupFindings(append(append([]detect.Finding{}, repoFindings...), diffFindings...))

	data := documentData{
		Meta:        meta,
		GeneratedAt: generatedAt,
		DiffRows:    toRows(diff),
		RepoRows:    toRows(repoUnion),
		DiffCount:   len(diff),
		RepoCount:   len(repoUnion),
	}

	tmpl, err := loadTemplate(templatePath)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	if buf.Len() == 0 {
		return fmt.Errorf("render report: produced an empty document")
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// RenderToFile is the C8-facing convenience wrapper: it renders and
// writes the result to path, guaranteeing the postcondition that the
// file exists and is non-empty on success.
func RenderToFile(path string, diffFindings, repoFindings []detect.Finding, meta vcs.Metadata, generatedAt, templatePath string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := Render(f, diffFindings, repoFindings, meta, generatedAt, templatePath); err != nil {
		return err
	}
	return nil
}

func loadTemplate(templatePath string) (*template.Template, error) {
	if templatePath == "" {
		return template.New("report").Parse(builtinTemplate)
	}
	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return template.New("report").Parse(builtinTemplate)
	}
	tmpl, err := template.New("report").Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrTemplateMissing, err)
	}
	return tmpl, nil
}
