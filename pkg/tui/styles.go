package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241"
	ColorVeryDim  = "242"
	ColorWarning  = "214" // Orange for orphans and warnings
	ColorSuccess  = "28"
	ColorWhite    = "255"
	ColorDark     = "235"
	ColorEntity   = "33"  // Blue, entity marker
	ColorAttr     = "35"  // Green, attribute marker
	ColorCodelist = "99"  // Indigo, codelist references
	ColorMatch    = "226" // Yellow, highlighted search matches
	ColorError    = "196"
)

var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	CodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))

	EntityMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorEntity)).
				Bold(true)

	AttributeMarkerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorAttr))

	OrphanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	CodelistRefStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorCodelist))

	MatchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDark)).
			Background(lipgloss.Color(ColorMatch))

	CountBadgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Background(lipgloss.Color(ColorSelected)).
			Padding(0, 1)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim)).
			Italic(true)

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess))

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))

	// Filter chips in the filter line
	FilterLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	FilterValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorActive)).
				Bold(true)
)

// GetActiveHeaderStyle returns the pane header style for the focus state
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}

// GetBorderStyle returns the pane border for the focus state
func GetBorderStyle(isActive bool) lipgloss.Style {
	if isActive {
		return ActiveBorderStyle
	}
	return InactiveBorderStyle
}

// DatatypeBadgeStyle renders a datatype label as a chip in its datatype color
func DatatypeBadgeStyle(code string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(models.DatatypeColor(code))).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, 1)
}
