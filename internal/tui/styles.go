package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// TitleStyle renders section headings in the CLI output.
	TitleStyle = lipgloss.NewStyle().Bold(true)

	// SuccessStyle renders confirmation lines.
	SuccessStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	// ErrorStyle renders failure lines.
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

	// HintStyle renders secondary guidance.
	HintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	// DimStyle renders de-emphasized detail lines.
	DimStyle = lipgloss.NewStyle().Faint(true)

	// panelStyle frames the rendered plan.
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("10")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

// Panel wraps content in a titled, rounded border box.
func Panel(title, content string) string {
	return panelTitleStyle.Render(title) + "\n" + panelStyle.Render(content)
}

// ApplyGradient colors each rune of text along a gradient between two hex
// colors.
func ApplyGradient(text, from, to string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return text
	}

	var out string
	for i, r := range runes {
		pos := 0.0
		if len(runes) > 1 {
			pos = float64(i) / float64(len(runes)-1)
		}
		color := interpolateColor(from, to, pos)
		out += lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r))
	}
	return out
}

// interpolateColor blends between two hex colors based on position (0.0 to
// 1.0).
func interpolateColor(colorA, colorB string, pos float64) string {
	r1, g1, b1 := parseHexColor(colorA)
	r2, g2, b2 := parseHexColor(colorB)

	r := uint8(float64(r1)*(1-pos) + float64(r2)*pos)
	g := uint8(float64(g1)*(1-pos) + float64(g2)*pos)
	b := uint8(float64(b1)*(1-pos) + float64(b2)*pos)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// parseHexColor extracts RGB values from a #RRGGBB string.
func parseHexColor(hex string) (uint8, uint8, uint8) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint8
	if len(hex) == 6 {
		_, _ = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	}

	return r, g, b
}
