// Package logging provides a tiny opt-in logger shared by the scanning
// pipeline. It replaces the ad hoc package-level io.Writer globals the
// teacher used per component with one injected logger handle, so no
// component carries process-wide mutable logging state (§9).
package logging

import (
	"fmt"
	"io"
	"strings"
)

// ansiReset ends a color escape sequence started by a Logger's
// PrefixColor. Logging stays a leaf package (no dependency on internal/ui,
// which itself depends on higher-level packages like validation/report)
// by doing its own minimal ANSI wrapping rather than calling ui.Color.
const ansiReset = "\033[0m"

// Logger is a tiny opt-in logger used across internal packages.
// When Writer is nil, logging is disabled.
//
// The output format is:
//
//	<ColoredPrefix> subject=<path> <formattedMessage>\n
//
// where <path> is trimmed and defaults to "-".
type Logger struct {
	Writer io.Writer

	PrefixText  string
	PrefixColor string

	// OmitSubject controls whether the subject (path) field is written.
	// When false (default), output includes: "subject=<path>".
	OmitSubject bool
}

func (l *Logger) SetWriter(w io.Writer) { l.Writer = w }

func (l *Logger) Enabled() bool { return l != nil && l.Writer != nil }

// Logf writes one log line. subject is typically a file path; pass "" for
// scan-wide messages with no single file in scope.
func (l *Logger) Logf(subject string, format string, args ...any) {
	if l == nil || l.Writer == nil {
		return
	}
	prefix := l.PrefixText
	if prefix == "" {
		prefix = "Log:"
	}
	if l.PrefixColor != "" {
		prefix = l.PrefixColor + prefix + ansiReset
	}
	msg := fmt.Sprintf(format, args...)
	if l.OmitSubject {
		fmt.Fprintf(l.Writer, "%s %s\n", prefix, msg)
		return
	}

	s := strings.TrimSpace(subject)
	if s == "" {
		s = "-"
	}
	fmt.Fprintf(l.Writer, "%s subject=%s %s\n", prefix, s, msg)
}
