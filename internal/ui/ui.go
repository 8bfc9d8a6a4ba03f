package ui

import (
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
)

// FangColorScheme adapts fang's default help/error theme to this
// application's palette, keeping fang's light/dark adaptive base and
// only retinting the accents that carry brand identity.
func FangColorScheme(c lipgloss.LightDarkFunc) fang.ColorScheme {
	scheme := fang.DefaultColorScheme(c)
	scheme.Program = ColorPrimary
	scheme.Command = ColorSecondary
	scheme.Flag = ColorHighlight
	scheme.QuotedString = ColorSuccess
	return scheme
}

// Basic ANSI color codes (legacy - used by logging package).
// New code should use lipgloss styles from styles.go instead.
const (
	Reset = "\033[0m"
	// LegacyBold is the raw ANSI code for bold text
	LegacyBold = "\033[1m"
	FgCyan     = "\033[36m"
	FgGreen    = "\033[32m"
	FgMagenta  = "\033[35m"
	FgYellow   = "\033[33m"
	FgRed      = "\033[31m"
)

// Enabled reports whether ANSI color codes should be emitted. Tests and
// --no-color flag handling flip it via Init.
var Enabled = true

// Init sets the color Enabled flag. noColor true disables colored output
// (e.g. --no-color, non-tty stdout, NO_COLOR env).
func Init(noColor bool) {
	Enabled = !noColor
}

// Color wraps a string with the given ANSI code when Enabled.
// Deprecated: Use lipgloss styles from styles.go instead.
func Color(s string, code string) string {
	if !Enabled {
		return s
	}
	return code + s + Reset
}
