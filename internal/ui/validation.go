package ui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/secretsentry/secretsentry-cli/internal/detect"
	"github.com/secretsentry/secretsentry-cli/internal/validation"
)

// ScanReport summarizes one scan run (repository or diff mode) for
// terminal display, ahead of the HTML report written to disk.
type ScanReport struct {
	Mode     string // "repository" or "changed lines"
	Findings []detect.Finding
	Decision *validation.Decision // nil if no classification occurred
}

// FindingsUI renders ScanReport summaries, the terminal counterpart to
// the HTML report: short, boxed, exit-code-adjacent output a reviewer
// glances at before opening the full report.
type FindingsUI struct {
	writer io.Writer
	quiet  bool
}

// NewFindingsUI creates a UI handler for scan/diff/hook output.
func NewFindingsUI(w io.Writer, quiet bool) *FindingsUI {
	return &FindingsUI{writer: w, quiet: quiet}
}

// PrintReport renders a boxed summary of a scan's findings.
func (v *FindingsUI) PrintReport(report ScanReport) {
	if v.quiet {
		return
	}

	var output strings.Builder

	if len(report.Findings) == 0 {
		output.WriteString(Success.Bold(true).Render("✓ No secrets found"))
	} else {
		output.WriteString(Error.Bold(true).Render(fmt.Sprintf("✗ %d potential secret(s) found", len(report.Findings))))
	}
	output.WriteString("\n\n")

	output.WriteString(FormatKeyValue("Scope", report.Mode))
	output.WriteString("\n")

	if len(report.Findings) > 0 {
		output.WriteString("\n")
		output.WriteString(v.renderByKind(report.Findings))
	}

	if report.Decision != nil {
		output.WriteString("\n\n")
		output.WriteString(v.renderDecision(*report.Decision))
	}

	var boxed string
	if len(report.Findings) == 0 {
		boxed = SuccessBox.Render(output.String())
	} else {
		boxed = ErrorBox.Render(output.String())
	}
	fmt.Fprintln(v.writer, boxed)
}

func (v *FindingsUI) renderByKind(findings []detect.Finding) string {
	byKind := validation.GroupByKind(findings)
	kinds := make([]string, 0, len(byKind))
	for k := range byKind {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("By pattern"))
	sb.WriteString("\n")
	for _, k := range kinds {
		group := byKind[k]
		sb.WriteString(fmt.Sprintf("  %s %s %s\n", GetCrossMark(), Highlight.Render(k), Dim.Render(fmt.Sprintf("(%d)", len(group)))))
		for _, f := range group {
			sb.WriteString(fmt.Sprintf("      %s\n", Dim.Render(fmt.Sprintf("%s:%d", f.Path, f.LineNumber))))
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (v *FindingsUI) renderDecision(d validation.Decision) string {
	var sb strings.Builder
	sb.WriteString(SectionHeader.Render("Reviewer decision"))
	sb.WriteString("\n")
	status := "blocked"
	if d.Proceed {
		status = "proceeded"
	}
	sb.WriteString(FormatKeyValue("Outcome", status))
	sb.WriteString("\n")
	sb.WriteString(FormatKeyValue("Classification", string(d.Classification)))
	if d.Justification != "" {
		sb.WriteString("\n")
		sb.WriteString(FormatKeyValue("Justification", d.Justification))
	}
	return sb.String()
}

// PrintSimpleReport prints a minimal, non-boxed text report for quiet
// terminals or CI logs.
func (v *FindingsUI) PrintSimpleReport(report ScanReport) {
	if len(report.Findings) == 0 {
		fmt.Fprintf(v.writer, "%s no secrets found (%s)\n", GetCheckMark(), report.Mode)
		return
	}
	fmt.Fprintf(v.writer, "%s %d potential secret(s) found (%s)\n", GetCrossMark(), len(report.Findings), report.Mode)
	for _, f := range report.Findings {
		fmt.Fprintf(v.writer, "  %s:%d  %s\n", f.Path, f.LineNumber, f.Kind)
	}
}
