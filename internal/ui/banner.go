package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// BannerASCII is the figure printed above the root command's help text.
const BannerASCII = `
 ███████╗███████╗ ██████╗██████╗ ███████╗████████╗
 ██╔════╝██╔════╝██╔════╝██╔══██╗██╔════╝╚══██╔══╝
 ███████╗█████╗  ██║     ██████╔╝█████╗     ██║
 ╚════██║██╔══╝  ██║     ██╔══██╗██╔══╝     ██║
 ███████║███████╗╚██████╗██║  ██║███████╗   ██║
 ╚══════╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚══════╝   ╚═╝
          SENTRY · secret detection
`

// RenderGradientBanner colors banner line-by-line along a gradient
// between ColorPrimary and ColorSecondary, so the ASCII art reads as a
// single continuous sweep rather than flat single-color text.
func RenderGradientBanner(banner string) string {
	lines := strings.Split(strings.Trim(banner, "\n"), "\n")
	if len(lines) == 0 {
		return banner
	}

	start, _ := colorful.Hex("#7C3AED")
	end, _ := colorful.Hex("#06B6D4")

	var out strings.Builder
	n := len(lines)
	for i, line := range lines {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := start.BlendLuv(end, t)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true)
		out.WriteString(style.Render(line))
		if i < n-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}
