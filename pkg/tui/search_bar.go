package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// SearchBar is the query input of the browser. It shows the active search
// mode next to the input and turns red when the term does not compile.
type SearchBar struct {
	input    textinput.Model
	isActive bool
	invalid  bool
	mode     models.SearchMode
	width    int
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Zoek op naam, omschrijving of code..."
	ti.CharLimit = 200
	ti.Width = 50

	return &SearchBar{
		input: ti,
		mode:  models.ModeLiteral,
	}
}

// SetActive sets whether the search bar is the active pane
func (s *SearchBar) SetActive(active bool) {
	s.isActive = active
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// IsActive reports whether the search bar has focus
func (s *SearchBar) IsActive() bool {
	return s.isActive
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// borders, padding, icon and the mode badge
	w := width - 12 - lipgloss.Width(s.modeBadge())
	if w < 10 {
		w = 10
	}
	s.input.Width = w
}

// SetMode sets the search mode shown in the bar
func (s *SearchBar) SetMode(mode models.SearchMode) {
	s.mode = mode
	s.SetWidth(s.width)
}

// SetInvalid marks the current term as a pattern that does not compile
func (s *SearchBar) SetInvalid(invalid bool) {
	s.invalid = invalid
}

// Value returns the current search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the search text
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
	s.input.CursorEnd()
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *SearchBar) modeBadge() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Render("[" + s.mode.Label() + "]")
}

// View renders the search bar
func (s *SearchBar) View() string {
	borderColor := ColorInactive
	if s.isActive {
		borderColor = ColorActive
	}
	if s.invalid {
		borderColor = ColorError
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(s.width - 4).
		Padding(0, 1)

	var searchIcon string
	if s.isActive {
		searchIcon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	} else {
		// same width as the active icon
		searchIcon = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true).
			Render(" ⌕ ")
	}

	searchContent := lipgloss.JoinHorizontal(lipgloss.Center,
		searchIcon, " ", s.input.View(), " ", s.modeBadge())

	return lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Render(searchStyle.Render(searchContent))
}

// Focus focuses the search input
func (s *SearchBar) Focus() tea.Cmd {
	s.isActive = true
	return s.input.Focus()
}

// Blur removes focus from the search input
func (s *SearchBar) Blur() {
	s.isActive = false
	s.input.Blur()
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
	s.invalid = false
}
