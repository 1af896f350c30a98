package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afdtools/afd-catalog/pkg/models"
)

func TestBrowserInitialState(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	assert.Equal(t, []string{"KLT", "POL"}, lineKeys(m.lines))
	require.NotNil(t, m.Selected())
	assert.Equal(t, "KLT", m.Selected().Key())
	assert.Equal(t, resultsPane, m.state.ActivePane)
	assert.Len(t, m.Result().Entities, 3)
}

func TestBrowserInitialQuery(t *testing.T) {
	q := models.NewQuery()
	q.SearchTerm = "polis"
	m, _ := newTestBrowser(Options{Query: q, ExpandAll: true})

	assert.Equal(t, "polis", m.searchBar.Value())
	assert.Equal(t, []string{"POL", "POL_NR", "POL_KLT"}, lineKeys(m.lines))
}

func TestBrowserTyping(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	press(m, runes("/"))
	assert.Equal(t, searchPane, m.state.ActivePane)
	assert.True(t, m.searchBar.IsActive())

	press(m, runes("klant"))
	assert.Equal(t, "klant", m.Query().SearchTerm)
	assert.Equal(t, []string{"KLT", "POL_KLT"}, lineKeys(m.lines))
	assert.True(t, m.lines[1].orphan)

	// esc clears the term first and leaves search second
	press(m, key(tea.KeyEsc))
	assert.Equal(t, "", m.Query().SearchTerm)
	assert.Equal(t, searchPane, m.state.ActivePane)
	assert.Equal(t, []string{"KLT", "POL"}, lineKeys(m.lines))

	press(m, key(tea.KeyEsc))
	assert.Equal(t, resultsPane, m.state.ActivePane)
	assert.False(t, m.searchBar.IsActive())
}

func TestBrowserSearchFields(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	press(m, runes("/"), runes("type:A naam"))
	assert.Equal(t, models.TypeAttributeOnly, m.Query().Type)
	assert.Equal(t, "naam", m.Query().SearchTerm)
	assert.Equal(t, []string{"KLT_NAAM", "ADR_STR"}, lineKeys(m.lines))

	// cycling the type rewrites the bar so it matches the filter line
	press(m, key(tea.KeyTab), runes("t"))
	assert.Equal(t, models.TypeAll, m.Query().Type)
	assert.Equal(t, "naam", m.searchBar.Value())
}

func TestBrowserSearchFieldError(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	press(m, runes("/"), runes("type:X"))
	assert.Error(t, m.parseErr)
	assert.True(t, errors.Is(m.parseErr, models.ErrInvalidTypeFilter))
	assert.Equal(t, models.TypeAll, m.Query().Type, "query is kept on a parse error")
	assert.Equal(t, "", m.Query().SearchTerm)
}

func TestBrowserInvalidRegex(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	press(m, runes("m"), runes("m"))
	assert.Equal(t, models.ModeRegex, m.Query().Mode)

	press(m, runes("/"), runes("(klant"))
	assert.Error(t, m.Result().MatchErr)
	assert.True(t, m.searchBar.invalid)
	assert.Empty(t, m.lines)
}

func TestBrowserCycleFilters(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	press(m, runes("m"))
	assert.Equal(t, models.ModeWildcard, m.Query().Mode)
	assert.Equal(t, models.ModeWildcard, m.searchBar.mode)

	press(m, runes("t"))
	assert.Equal(t, models.TypeEntityOnly, m.Query().Type)
	for _, line := range m.lines {
		assert.Equal(t, models.KindEntity, line.row.Kind())
	}

	press(m, runes("t"), runes("d"))
	assert.Equal(t, models.TypeAttributeOnly, m.Query().Type)
	assert.Equal(t, "A0", m.Query().Datatype)
	assert.Len(t, m.Result().Filtered, 4)

	press(m, runes("d"), runes("d"))
	assert.Equal(t, models.All, m.Query().Datatype)

	press(m, runes("r"))
	assert.Equal(t, models.TypeAll, m.Query().Type)
	assert.Equal(t, models.ModeWildcard, m.Query().Mode, "reset keeps the mode")
}

func TestBrowserCycleEntity(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	press(m, runes("e"))
	assert.Equal(t, "ADR", m.Query().Entity)
	require.Len(t, m.lines, 1)
	assert.True(t, m.lines[0].orphan)
	assert.Equal(t, "ADR_STR", m.lines[0].row.Key())

	press(m, runes("e"), runes("e"), runes("e"))
	assert.Equal(t, models.All, m.Query().Entity)
}

func TestBrowserEntityFilterReset(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	press(m, runes("e"), runes("e"))
	require.Equal(t, "KLT", m.Query().Entity)

	// KLT has no entity-only rows with datatype JN, so the filter resets
	press(m, runes("/"), runes("dt:JN type:E"))
	assert.Equal(t, models.All, m.Query().Entity)
	require.NotNil(t, m.status.CurrentStatus)
	assert.Equal(t, StatusTypeInfo, m.status.CurrentStatus.Type)
	assert.Contains(t, m.status.CurrentStatus.Message, "KLT")
}

func TestBrowserExpandCollapse(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	press(m, key(tea.KeyEnter))
	assert.Equal(t, []string{"KLT", "KLT_NAAM", "KLT_ACTF", "POL"}, lineKeys(m.lines))

	press(m, key(tea.KeyDown), key(tea.KeyDown))
	assert.Equal(t, "KLT_ACTF", m.Selected().Key())

	press(m, key(tea.KeyLeft))
	assert.Equal(t, []string{"KLT", "POL"}, lineKeys(m.lines))
	assert.Equal(t, "KLT", m.Selected().Key())

	press(m, runes("x"))
	assert.Len(t, m.lines, 6)
	press(m, runes("x"))
	assert.Len(t, m.lines, 2)
}

func TestBrowserNavigation(t *testing.T) {
	m, _ := newTestBrowser(Options{ExpandAll: true})

	press(m, runes("G"))
	assert.Equal(t, "POL_KLT", m.Selected().Key())
	press(m, runes("k"))
	assert.Equal(t, "POL_NR", m.Selected().Key())
	press(m, runes("g"))
	assert.Equal(t, "KLT", m.Selected().Key())

	press(m, key(tea.KeyTab))
	assert.Equal(t, detailPane, m.state.ActivePane)
	press(m, runes("j"))
	assert.Equal(t, "KLT", m.Selected().Key(), "keys scroll the detail pane, not the list")

	press(m, runes("p"))
	assert.False(t, m.state.ShowDetail)
	assert.Equal(t, resultsPane, m.state.ActivePane)
}

func TestBrowserSuggestions(t *testing.T) {
	m, _ := newTestBrowser(Options{})

	press(m, runes("/"), runes("naam"))
	require.Len(t, m.Result().Suggestions, 2)
	assert.Equal(t, "Klantnaam", m.Result().Suggestions[0].Common().Name)

	press(m, key(tea.KeyCtrlN), key(tea.KeyCtrlN))
	assert.Equal(t, 1, m.suggestion)
	press(m, key(tea.KeyCtrlP))
	assert.Equal(t, 0, m.suggestion)

	press(m, key(tea.KeyEnter))
	assert.Equal(t, "Klantnaam", m.Query().SearchTerm)
	assert.Equal(t, "Klantnaam", m.searchBar.Value())
	assert.Equal(t, resultsPane, m.state.ActivePane)
	assert.Equal(t, -1, m.suggestion)
}

func TestBrowserCopy(t *testing.T) {
	m, clip := newTestBrowser(Options{ExpandAll: true})

	press(m, key(tea.KeyDown))
	cmd := press(m, runes("c"))
	assert.NotNil(t, cmd)
	assert.Equal(t, []string{"KLT_NAAM"}, clip.copied)
	require.NotNil(t, m.status.CurrentStatus)
	assert.Equal(t, StatusTypeSuccess, m.status.CurrentStatus.Type)

	clip.err = errors.New("no clipboard")
	press(m, runes("c"))
	assert.Equal(t, StatusTypeError, m.status.CurrentStatus.Type)
}

func TestBrowserCopyLink(t *testing.T) {
	m, clip := newTestBrowser(Options{})
	press(m, runes("y"))
	assert.Empty(t, clip.copied)
	assert.Equal(t, StatusTypeWarning, m.status.CurrentStatus.Type)

	m, clip = newTestBrowser(Options{LinkBase: "https://afd.example/"})
	press(m, runes("y"))
	assert.Equal(t, []string{"https://afd.example/?entity=KLT"}, clip.copied)
}

func TestBrowserOpenCodelist(t *testing.T) {
	m, _ := newTestBrowser(Options{ExpandAll: true})

	// KLT has no codelist
	press(m, runes("l"))
	assert.Equal(t, StatusTypeWarning, m.status.CurrentStatus.Type)

	press(m, key(tea.KeyDown), key(tea.KeyDown))
	require.Equal(t, "KLT_ACTF", m.Selected().Key())
	cmd := press(m, runes("l"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(openCodelistMsg)
	require.True(t, ok)
	assert.Equal(t, "CL1", msg.id)
	assert.Equal(t, "Actief", msg.title)
}

func TestBrowserQuit(t *testing.T) {
	m, _ := newTestBrowser(Options{})
	cmd := press(m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestBrowserView(t *testing.T) {
	m, _ := newTestBrowser(Options{ShowDescriptions: true})
	view := m.View()

	assert.Contains(t, view, "Resultaten (2)")
	assert.Contains(t, view, "Klant")
	assert.Contains(t, view, "Een persoon of organisatie")
	assert.Contains(t, view, "2 attributen")
	assert.Contains(t, view, "Details")

	press(m, runes("/"), runes("zzzz"))
	assert.Contains(t, m.View(), `Geen resultaten voor "zzzz"`)

	m.SetSize(0, 0)
	assert.Equal(t, "Loading...", m.View())
}

func TestBrowserViewFilterLine(t *testing.T) {
	m, _ := newTestBrowser(Options{})
	press(m, runes("e"), runes("e"))

	line := m.renderFilterLine()
	assert.Contains(t, line, "KLT Klant")
	assert.True(t, strings.Contains(line, "resultaten"))
}

func TestNextValue(t *testing.T) {
	options := []string{"A0", "JN"}

	tests := []struct {
		current string
		want    string
	}{
		{models.All, "A0"},
		{"", "A0"},
		{"A0", "JN"},
		{"JN", models.All},
		{"XX", models.All},
	}

	for _, tt := range tests {
		if got := nextValue(options, tt.current); got != tt.want {
			t.Errorf("nextValue(%q) = %q, want %q", tt.current, got, tt.want)
		}
	}

	if got := nextValue(nil, models.All); got != models.All {
		t.Errorf("nextValue(nil) = %q, want %q", got, models.All)
	}
}

func TestNextModeAndType(t *testing.T) {
	mode := models.ModeLiteral
	for _, want := range []models.SearchMode{models.ModeWildcard, models.ModeRegex, models.ModeLiteral} {
		mode = nextMode(mode)
		assert.Equal(t, want, mode)
	}

	typ := models.TypeAll
	for _, want := range []models.TypeFilter{models.TypeEntityOnly, models.TypeAttributeOnly, models.TypeAll} {
		typ = nextType(typ)
		assert.Equal(t, want, typ)
	}
}
