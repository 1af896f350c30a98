package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

// openCodelistMsg asks the app to show a codelist
type openCodelistMsg struct {
	id    string
	title string
}

// CodelistModel shows the codes of one codelist with a filter of its own
type CodelistModel struct {
	engine *search.Engine
	id     string
	title  string

	filter textinput.Model
	items  []models.CodeItem
	total  int

	state  *StateManager
	status *StatusManager
	copy   func(string) error

	width  int
	height int
}

// NewCodelistModel creates the codelist view for codelist id
func NewCodelistModel(engine *search.Engine, id, title string, copyFn func(string) error) *CodelistModel {
	ti := textinput.New()
	ti.Placeholder = "Filter codes..."
	ti.CharLimit = 100
	ti.Focus()

	m := &CodelistModel{
		engine: engine,
		id:     id,
		title:  title,
		filter: ti,
		state:  NewStateManager(),
		status: NewStatusManager(),
		copy:   copyFn,
	}
	m.total = len(engine.Codelist(id, ""))
	m.applyFilter()
	return m
}

// ID returns the codelist id
func (m *CodelistModel) ID() string {
	return m.id
}

// Items returns the codes that pass the current filter
func (m *CodelistModel) Items() []models.CodeItem {
	return m.items
}

func (m *CodelistModel) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize sets the view dimensions
func (m *CodelistModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.filter.Width = width - 16
}

func (m *CodelistModel) applyFilter() {
	m.items = m.engine.Codelist(m.id, m.filter.Value())
	m.state.UpdateCount(len(m.items))
}

func (m *CodelistModel) selected() (models.CodeItem, bool) {
	if len(m.items) == 0 {
		return models.CodeItem{}, false
	}
	return m.items[m.state.Cursor], true
}

func (m *CodelistModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearStatusMsg:
		m.status.Clear()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case Shortcuts.Cancel.Get():
			if m.filter.Value() != "" {
				m.filter.SetValue("")
				m.state.ResetCursor()
				m.applyFilter()
				return m, nil
			}
			return m, func() tea.Msg {
				return SwitchViewMsg{view: browserView}
			}

		case Shortcuts.CodelistClear.Get():
			m.filter.SetValue("")
			m.state.ResetCursor()
			m.applyFilter()
			return m, nil

		case "up":
			m.state.MoveCursorUp()
			return m, nil

		case "down":
			m.state.MoveCursorDown()
			return m, nil

		case "pgup":
			m.state.MoveCursor(-m.visibleRows())
			return m, nil

		case "pgdown":
			m.state.MoveCursor(m.visibleRows())
			return m, nil

		case "enter":
			item, ok := m.selected()
			if !ok {
				return m, nil
			}
			if err := m.copy(item.Code); err != nil {
				return m, m.status.ShowError("Kopiëren mislukt: " + err.Error())
			}
			return m, m.status.ShowSuccess(item.Code + " → klembord")
		}

		before := m.filter.Value()
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != before {
			m.state.ResetCursor()
			m.applyFilter()
		}
		return m, cmd
	}

	return m, nil
}

func (m *CodelistModel) visibleRows() int {
	// title, filter box, table header, help and status lines
	rows := m.height - 9
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *CodelistModel) View() string {
	contentWidth := m.width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	var b strings.Builder

	title := fmt.Sprintf("Codelijst %s", m.id)
	if m.title != "" {
		title += " · " + m.title
	}
	b.WriteString(GetActiveHeaderStyle(true).Render(title))
	b.WriteString(DescriptionStyle.Render(fmt.Sprintf("  %d van %d codes", len(m.items), m.total)))
	b.WriteString("\n")

	b.WriteString(ActiveBorderStyle.Width(contentWidth - 2).Padding(0, 1).Render(m.filter.View()))
	b.WriteString("\n")

	b.WriteString(HeaderStyle.Render(fmt.Sprintf("  %-8s %-8s %s", "CODE", "ACTIEF", "OMSCHRIJVING")))
	b.WriteString("\n")

	if len(m.items) == 0 {
		b.WriteString(EmptyStyle.Render("  Geen codes gevonden"))
		b.WriteString("\n")
	}

	height := m.visibleRows()
	m.state.EnsureVisible(height)
	end := m.state.Offset + height
	if end > len(m.items) {
		end = len(m.items)
	}
	for i := m.state.Offset; i < end; i++ {
		item := m.items[i]
		line := truncate(fmt.Sprintf("%-8s %-8s %s", item.Code, activeLabel(item.Active), item.Description), contentWidth-2)
		switch {
		case i == m.state.Cursor:
			b.WriteString(CursorStyle.Render("▸ ") + SelectedStyle.Render(line))
		case item.Active == models.ActiveNo:
			b.WriteString("  " + DescriptionStyle.Render(line))
		default:
			b.WriteString("  " + NormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	footer := HelpStyle.Render(helpLine(
		ShortcutKey{Default: "↑/↓", Help: "navigate"},
		ShortcutKey{Default: "enter", Help: "copy code"},
		Shortcuts.CodelistClear,
		ShortcutKey{Default: "esc", Help: "back"},
	))
	if s := m.status.View(); s != "" {
		footer = s
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Padding(0, 1).Render(b.String()),
		lipgloss.NewStyle().Padding(0, 1).Render(footer),
	)
}

func activeLabel(flag models.ActiveFlag) string {
	switch flag {
	case models.ActiveYes:
		return "ja"
	case models.ActiveNo:
		return "nee"
	default:
		return "-"
	}
}
