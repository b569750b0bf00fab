package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const pageWidth = 54

var (
	dividerStyle = lipgloss.NewStyle().Faint(true)
	bodyStyle    = lipgloss.NewStyle().PaddingLeft(2)
)

// renderPage lays out a screen: title, divider, body, divider and the hot
// key line. An empty body is drawn as a single dash.
func renderPage(title, body, hotKeys string) string {
	divider := bodyStyle.Render(dividerStyle.Render(strings.Repeat("─", pageWidth)))
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	help := "ctrl+c: quit"
	if strings.TrimSpace(hotKeys) != "" {
		help = hotKeys + " │ " + help
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		divider,
		"",
		bodyStyle.Render(body),
		"",
		divider,
		bodyStyle.Render(helpStyle.Render(help)),
	)
}

// fitText truncates v to max bytes, marking the cut with an ellipsis.
func fitText(v string, max int) string {
	switch {
	case max <= 0 || len(v) <= max:
		return v
	case max <= 3:
		return v[:max]
	default:
		return v[:max-3] + "..."
	}
}
