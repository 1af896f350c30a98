package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Version is printed under the logo; set by the browse command
var Version = "dev"

const logo = `▄▖▄▖▄
▌▌▙▖▌▌
▛▌▌ ▙▘`

func renderHeader(width int, title string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true)

	versionStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim))

	logoBlock := lipgloss.JoinVertical(lipgloss.Right,
		logoStyle.Render(logo),
		versionStyle.Render(Version),
	)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	if title == "" {
		return headerPadding.Render(lipgloss.NewStyle().
			Width(width - 2).
			Align(lipgloss.Right).
			Render(logoBlock))
	}

	// title on the version row, logo on the right
	titleRendered := titleStyle.Render(strings.Repeat("\n", 3) + title)
	gap := width - 2 - lipgloss.Width(titleRendered) - lipgloss.Width(logoBlock)
	if gap < 1 {
		gap = 1
	}

	return headerPadding.Render(lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		strings.Repeat(" ", gap),
		logoBlock,
	))
}
