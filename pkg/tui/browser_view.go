package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// Fixed heights of the browser chrome
const (
	headerHeight    = 4
	searchBarHeight = 3
	// filter line, suggestion line and help line
	infoLines = 3
)

func (m *BrowserModel) contentHeight() int {
	h := m.height - headerHeight - searchBarHeight - infoLines
	if h < 4 {
		h = 4
	}
	return h
}

// listHeight is the number of result lines that fit in the list pane
func (m *BrowserModel) listHeight() int {
	// border and pane title
	h := m.contentHeight() - 3
	if h < 1 {
		h = 1
	}
	return h
}

func (m *BrowserModel) paneWidths() (list, detail int) {
	if !m.state.ShowDetail {
		return m.width, 0
	}
	list = m.width * 3 / 5
	return list, m.width - list
}

func (m *BrowserModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	sections := []string{
		renderHeader(m.width, "Catalogus"),
		m.searchBar.View(),
		m.renderFilterLine(),
		m.renderSuggestions(),
		m.renderPanes(),
		m.renderHelp(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *BrowserModel) renderFilterLine() string {
	chip := func(label, value string) string {
		return FilterLabelStyle.Render(label+": ") + FilterValueStyle.Render(value)
	}

	datatype := "alle"
	if m.query.HasDatatype() {
		datatype = m.query.Datatype + " " + models.DatatypeLabel(m.query.Datatype)
	}
	entity := "alle"
	if m.query.HasEntity() {
		entity = m.query.Entity + " " + m.store.EntityName(m.query.Entity)
	}

	parts := []string{
		chip(Shortcuts.CycleMode.Get()+" modus", m.query.Mode.Label()),
		chip(Shortcuts.CycleType.Get()+" type", m.query.Type.Label()),
		chip(Shortcuts.NextDatatype.Get()+" datatype", datatype),
		chip(Shortcuts.NextEntity.Get()+" entiteit", fmt.Sprintf("%s (%d)", entity, len(m.result.Entities))),
	}
	line := strings.Join(parts, "  ")
	count := DescriptionStyle.Render(fmt.Sprintf("  %d resultaten", len(m.result.Filtered)))

	return lipgloss.NewStyle().Padding(0, 1).MaxWidth(m.width).Render(line + count)
}

func (m *BrowserModel) renderSuggestions() string {
	style := lipgloss.NewStyle().Padding(0, 1).MaxWidth(m.width)

	if m.parseErr != nil {
		return style.Render(ErrorStyle.Render(m.parseErr.Error()))
	}
	if m.result.MatchErr != nil {
		return style.Render(ErrorStyle.Render("Ongeldig patroon: " + m.result.MatchErr.Error()))
	}
	if len(m.result.Suggestions) == 0 {
		return style.Render("")
	}

	names := make([]string, 0, len(m.result.Suggestions))
	for i, row := range m.result.Suggestions {
		name := row.Common().Name
		if i == m.suggestion {
			names = append(names, SelectedStyle.Render(name))
		} else {
			names = append(names, NormalStyle.Render(name))
		}
	}
	hint := ""
	if m.state.ActivePane == searchPane {
		hint = HelpStyle.Render("  (ctrl+n/ctrl+p, enter)")
	}
	return style.Render(DescriptionStyle.Render("Suggesties: ") + strings.Join(names, DescriptionStyle.Render(" · ")) + hint)
}

func (m *BrowserModel) renderPanes() string {
	listWidth, detailWidth := m.paneWidths()
	height := m.contentHeight()

	list := m.renderList(listWidth-2, height-2)
	listPane := GetBorderStyle(m.state.ActivePane == resultsPane).
		Width(listWidth - 2).
		Height(height - 2).
		Render(list)

	if detailWidth == 0 {
		return listPane
	}

	detailTitle := GetActiveHeaderStyle(m.state.ActivePane == detailPane).Render("Details")
	detailPaneView := GetBorderStyle(m.state.ActivePane == detailPane).
		Width(detailWidth - 2).
		Height(height - 2).
		Render(lipgloss.NewStyle().Padding(0, 1).Render(detailTitle + "\n" + m.detail.View()))

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPaneView)
}

func (m *BrowserModel) renderList(width, height int) string {
	var b strings.Builder

	title := fmt.Sprintf("Resultaten (%d)", len(m.result.Grouped))
	b.WriteString(" " + GetActiveHeaderStyle(m.state.ActivePane == resultsPane).Render(title) + "\n")

	if len(m.lines) == 0 {
		msg := "Geen resultaten"
		if m.query.SearchTerm != "" {
			msg = fmt.Sprintf("Geen resultaten voor %q", m.query.SearchTerm)
		}
		b.WriteString(" " + EmptyStyle.Render(msg))
		return b.String()
	}

	rows := height - 1
	if rows < 1 {
		rows = 1
	}
	m.state.EnsureVisible(rows)

	end := m.state.Offset + rows
	if end > len(m.lines) {
		end = len(m.lines)
	}
	for i := m.state.Offset; i < end; i++ {
		b.WriteString(m.renderLine(m.lines[i], i == m.state.Cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *BrowserModel) renderLine(line listLine, selected bool, width int) string {
	row := line.row
	common := row.Common()

	cursor := "  "
	if selected {
		cursor = CursorStyle.Render("▸ ")
	}

	var fold string
	switch {
	case line.nested:
		fold = "    "
	case line.hasChildren() && line.expanded:
		fold = "▾ "
	case line.hasChildren():
		fold = "▸ "
	default:
		fold = "  "
	}

	var marker, code string
	switch {
	case line.orphan:
		marker = OrphanStyle.Render("◆")
		code = row.Key()
	case row.Kind() == models.KindEntity:
		marker = EntityMarkerStyle.Render("■")
		code = common.EntityCode
	case line.nested:
		marker = AttributeMarkerStyle.Render("●")
		code = models.AttributeCodeOf(row)
	default:
		marker = AttributeMarkerStyle.Render("●")
		code = row.Key()
	}

	name := highlightText(common.Name, m.query)
	if selected {
		name = SelectedStyle.Render(common.Name)
	}

	parts := []string{marker, CodeStyle.Render(code), name}

	if row.Kind() == models.KindAttribute && common.Datatype != "" {
		parts = append(parts, DatatypeBadgeStyle(common.Datatype).Render(common.Datatype))
	}
	if common.CodelistID != "" && m.store.HasCodelist(common.CodelistID) {
		parts = append(parts, CodelistRefStyle.Render("≡ "+common.CodelistID))
	}
	if line.group != nil {
		parts = append(parts, CountBadgeStyle.Render(fmt.Sprintf("%d attributen", line.group.AttributeCount)))
	}
	if line.orphan {
		parts = append(parts, OrphanStyle.Render("(wees)"))
	}
	if m.showDescriptions && common.Description != "" {
		desc := strings.Join(strings.Fields(common.Description), " ")
		parts = append(parts, DescriptionStyle.Render("· "+highlightText(desc, m.query)))
	}

	rendered := cursor + fold + strings.Join(parts, " ")
	return lipgloss.NewStyle().MaxWidth(width).Render(rendered)
}

func (m *BrowserModel) renderHelp() string {
	style := lipgloss.NewStyle().Padding(0, 1).MaxWidth(m.width)
	if s := m.status.View(); s != "" {
		return style.Render(s)
	}

	var help string
	switch m.state.ActivePane {
	case searchPane:
		help = helpLine(
			ShortcutKey{Default: "esc", Help: "clear"},
			ShortcutKey{Default: "enter", Help: "results"},
			ShortcutKey{Default: "ctrl+c", Help: "quit"},
		)
	case detailPane:
		help = helpLine(
			ShortcutKey{Default: "↑/↓", Help: "scroll"},
			Shortcuts.SwitchPane,
			Shortcuts.Codelist,
			Shortcuts.Copy,
			Shortcuts.Quit,
		)
	default:
		help = helpLine(
			Shortcuts.Search,
			Shortcuts.Toggle,
			Shortcuts.ExpandAll,
			Shortcuts.Codelist,
			Shortcuts.Copy,
			Shortcuts.CopyLink,
			Shortcuts.Descriptions,
			Shortcuts.Detail,
			Shortcuts.ResetFilters,
			Shortcuts.Quit,
		)
	}
	return style.Render(HelpStyle.Render(help))
}
