package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

// Options configures the browser
type Options struct {
	// Query is the initial query state
	Query models.Query
	// LinkBase enables direct links in the detail pane when set
	LinkBase         string
	ShowDescriptions bool
	ExpandAll        bool
	// Status is shown in the status bar until replaced
	Status string
	// Clipboard replaces the system clipboard, mainly for tests
	Clipboard func(string) error
}

// BrowserModel is the interactive search view over a catalog
type BrowserModel struct {
	session *search.Session
	store   *catalog.Store

	query  models.Query
	result search.Result
	lines  []listLine

	searchBar *SearchBar
	parser    *search.Parser
	parseErr  error
	// suggestion is the highlighted suggestion, -1 when none is
	suggestion int

	state  *StateManager
	status *StatusManager
	detail viewport.Model

	showDescriptions bool
	linkBase         string
	copy             func(string) error

	width  int
	height int
}

// NewBrowserModel creates a browser over engine
func NewBrowserModel(engine *search.Engine, opts Options) *BrowserModel {
	copyFn := opts.Clipboard
	if copyFn == nil {
		copyFn = clipboard.WriteAll
	}

	m := &BrowserModel{
		session:          search.NewSession(engine),
		store:            engine.Store(),
		query:            opts.Query.Normalize(),
		searchBar:        NewSearchBar(),
		parser:           search.NewParser(),
		suggestion:       -1,
		state:            NewStateManager(),
		status:           NewStatusManager(),
		detail:           viewport.New(40, 10),
		showDescriptions: opts.ShowDescriptions,
		linkBase:         opts.LinkBase,
		copy:             copyFn,
	}
	m.state.SetExpandAll(opts.ExpandAll)
	m.searchBar.SetValue(m.query.SearchTerm)
	m.searchBar.SetMode(m.query.Mode)
	m.refresh()
	return m
}

func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Query returns the effective query, after entity filter reconciliation
func (m *BrowserModel) Query() models.Query {
	return m.query
}

// Result returns the result of the current query
func (m *BrowserModel) Result() search.Result {
	return m.result
}

// SetSize sets the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchBar.SetWidth(width)
	m.updateViewportSizes()
	m.updateDetail()
}

func (m *BrowserModel) updateViewportSizes() {
	_, detailWidth := m.paneWidths()
	// border, padding and the pane title
	m.detail.Width = detailWidth - 4
	if m.detail.Width < 20 {
		m.detail.Width = 20
	}
	m.detail.Height = m.contentHeight() - 3
	if m.detail.Height < 1 {
		m.detail.Height = 1
	}
}

// refresh reruns the query and rebuilds the list. The session only
// recomputes the parts whose inputs changed.
func (m *BrowserModel) refresh() tea.Cmd {
	requested := m.query
	m.parseErr = nil
	m.result = m.session.Run(m.query)
	m.query = m.result.Query
	m.searchBar.SetInvalid(m.result.MatchErr != nil)

	if m.suggestion >= len(m.result.Suggestions) {
		m.suggestion = -1
	}

	m.rebuildLines()

	if requested.HasEntity() && !m.query.HasEntity() {
		return m.status.ShowInfo("Entiteitfilter " + requested.Entity + " niet beschikbaar, teruggezet naar alle")
	}
	return nil
}

func (m *BrowserModel) rebuildLines() {
	m.lines = buildLines(m.result.Grouped, m.state.IsExpanded)
	m.state.UpdateCount(len(m.lines))
	m.updateDetail()
}

func (m *BrowserModel) selectedLine() (listLine, bool) {
	if len(m.lines) == 0 || m.state.Cursor >= len(m.lines) {
		return listLine{}, false
	}
	return m.lines[m.state.Cursor], true
}

// Selected returns the row under the cursor, or nil when the list is empty
func (m *BrowserModel) Selected() models.Row {
	line, ok := m.selectedLine()
	if !ok {
		return nil
	}
	return line.row
}

func (m *BrowserModel) updateDetail() {
	m.detail.SetContent(renderDetail(m.Selected(), m.store, m.query, m.linkBase, m.detail.Width))
	m.detail.GotoTop()
}

func (m *BrowserModel) setQuery(q models.Query) tea.Cmd {
	m.query = q
	m.state.ResetCursor()
	return m.refresh()
}

func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearStatusMsg:
		m.status.Clear()
		return m, nil

	case tea.KeyMsg:
		if m.state.ActivePane == searchPane {
			return m.updateSearch(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.searchBar.Value() != "" {
			m.searchBar.Reset()
			m.suggestion = -1
			q := m.query
			q.SearchTerm = ""
			return m, m.setQuery(q)
		}
		m.exitSearch()
		return m, nil

	case "tab", "down":
		m.exitSearch()
		return m, nil

	case "ctrl+n":
		if n := len(m.result.Suggestions); n > 0 {
			m.suggestion = (m.suggestion + 1) % n
		}
		return m, nil

	case "ctrl+p":
		if n := len(m.result.Suggestions); n > 0 {
			m.suggestion--
			if m.suggestion < 0 {
				m.suggestion = n - 1
			}
		}
		return m, nil

	case "enter":
		if m.suggestion >= 0 && m.suggestion < len(m.result.Suggestions) {
			return m, m.applySuggestion(m.result.Suggestions[m.suggestion])
		}
		m.exitSearch()
		return m, nil
	}

	before := m.searchBar.Value()
	var cmd tea.Cmd
	m.searchBar, cmd = m.searchBar.Update(msg)
	if value := m.searchBar.Value(); value != before {
		m.suggestion = -1
		q, err := m.parser.Parse(value, m.query)
		m.parseErr = err
		if err != nil {
			m.searchBar.SetInvalid(true)
			return m, cmd
		}
		m.searchBar.SetMode(q.Mode)
		return m, tea.Batch(cmd, m.setQuery(q))
	}
	return m, cmd
}

// applyFilters runs q and rewrites the search bar when it spells out
// filters, so the bar never contradicts the filter line
func (m *BrowserModel) applyFilters(q models.Query) tea.Cmd {
	cmd := m.setQuery(q)
	m.searchBar.SetMode(m.query.Mode)
	if m.parser.HasFields(m.searchBar.Value()) {
		m.searchBar.SetValue(search.Format(m.query))
	}
	return cmd
}

// applySuggestion replaces the search term with the suggested row's name
func (m *BrowserModel) applySuggestion(row models.Row) tea.Cmd {
	name := row.Common().Name
	m.searchBar.SetValue(name)
	m.suggestion = -1
	q := m.query
	q.SearchTerm = name
	cmd := m.setQuery(q)
	m.exitSearch()
	return cmd
}

func (m *BrowserModel) exitSearch() {
	m.state.ExitSearch()
	m.searchBar.Blur()
}

func (m *BrowserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.state.ActivePane == detailPane {
		switch key {
		case "up", "k":
			m.detail.LineUp(1)
			return m, nil
		case "down", "j":
			m.detail.LineDown(1)
			return m, nil
		case "pgup":
			m.detail.ViewUp()
			return m, nil
		case "pgdown":
			m.detail.ViewDown()
			return m, nil
		}
	}

	switch key {
	case Shortcuts.Quit.Get():
		return m, tea.Quit

	case Shortcuts.Search.Get():
		m.state.SwitchToSearch()
		return m, m.searchBar.Focus()

	case Shortcuts.SwitchPane.Get():
		m.state.HandleTabNavigation()
		return m, nil

	case Shortcuts.Cancel.Get():
		if m.query.SearchTerm != "" {
			m.searchBar.Reset()
			q := m.query
			q.SearchTerm = ""
			return m, m.setQuery(q)
		}
		return m, nil

	case "up", "k":
		if m.state.MoveCursorUp() {
			m.updateDetail()
		}
	case "down", "j":
		if m.state.MoveCursorDown() {
			m.updateDetail()
		}
	case "pgup":
		m.state.MoveCursor(-m.listHeight())
		m.updateDetail()
	case "pgdown":
		m.state.MoveCursor(m.listHeight())
		m.updateDetail()
	case "home", "g":
		m.state.ResetCursor()
		m.updateDetail()
	case "end", "G":
		m.state.MoveCursor(len(m.lines))
		m.updateDetail()

	case Shortcuts.Toggle.Get(), " ", "right":
		m.toggleSelected()
	case "left":
		m.collapseSelected()

	case Shortcuts.ExpandAll.Get():
		m.state.SetExpandAll(!m.state.ExpandAll)
		m.rebuildLines()

	case Shortcuts.CycleMode.Get():
		q := m.query
		q.Mode = nextMode(q.Mode)
		return m, m.applyFilters(q)

	case Shortcuts.CycleType.Get():
		q := m.query
		q.Type = nextType(q.Type)
		return m, m.applyFilters(q)

	case Shortcuts.NextDatatype.Get():
		q := m.query
		q.Datatype = nextValue(m.store.Datatypes(), q.Datatype)
		return m, m.applyFilters(q)

	case Shortcuts.NextEntity.Get():
		q := m.query
		q.Entity = nextValue(entityCodes(m.result.Entities), q.Entity)
		return m, m.applyFilters(q)

	case Shortcuts.ResetFilters.Get():
		q := models.NewQuery()
		q.SearchTerm = m.query.SearchTerm
		q.Mode = m.query.Mode
		return m, m.applyFilters(q)

	case Shortcuts.Descriptions.Get():
		m.showDescriptions = !m.showDescriptions

	case Shortcuts.Detail.Get():
		m.state.ToggleDetail()
		m.updateViewportSizes()
		m.updateDetail()

	case Shortcuts.Codelist.Get():
		return m, m.openCodelist()

	case Shortcuts.Copy.Get():
		return m, m.copySelected()

	case Shortcuts.CopyLink.Get():
		return m, m.copyLink()
	}

	return m, nil
}

// toggleSelected expands or collapses the entity under the cursor. On a
// nested attribute it collapses the parent entity.
func (m *BrowserModel) toggleSelected() {
	line, ok := m.selectedLine()
	if !ok {
		return
	}
	if line.nested {
		m.collapseSelected()
		return
	}
	if !line.hasChildren() {
		return
	}
	m.state.ToggleExpanded(line.group.Entity.EntityCode)
	m.rebuildLines()
}

func (m *BrowserModel) collapseSelected() {
	line, ok := m.selectedLine()
	if !ok {
		return
	}
	i := m.state.Cursor
	if line.nested {
		i = parentLine(m.lines, m.state.Cursor)
		if i < 0 {
			return
		}
		line = m.lines[i]
	}
	if !line.expanded {
		return
	}
	m.state.ToggleExpanded(line.group.Entity.EntityCode)
	m.state.Cursor = i
	m.rebuildLines()
}

func (m *BrowserModel) openCodelist() tea.Cmd {
	row := m.Selected()
	if row == nil {
		return nil
	}
	common := row.Common()
	if common.CodelistID == "" {
		return m.status.ShowWarning("Geen codelijst bij " + row.Key())
	}
	if !m.store.HasCodelist(common.CodelistID) {
		return m.status.ShowWarning("Codelijst " + common.CodelistID + " is niet geladen")
	}
	id, title := common.CodelistID, common.Name
	return func() tea.Msg {
		return openCodelistMsg{id: id, title: title}
	}
}

func (m *BrowserModel) copySelected() tea.Cmd {
	row := m.Selected()
	if row == nil {
		return nil
	}
	if err := m.copy(row.Key()); err != nil {
		return m.status.ShowError("Kopiëren mislukt: " + err.Error())
	}
	return m.status.ShowSuccess(row.Key() + " → klembord")
}

func (m *BrowserModel) copyLink() tea.Cmd {
	row := m.Selected()
	if row == nil {
		return nil
	}
	if m.linkBase == "" {
		return m.status.ShowWarning("Geen link-basis ingesteld (--link-base)")
	}
	link := search.DirectLink(m.linkBase, row)
	if err := m.copy(link); err != nil {
		return m.status.ShowError("Kopiëren mislukt: " + err.Error())
	}
	return m.status.ShowSuccess("Link → klembord")
}

func nextMode(mode models.SearchMode) models.SearchMode {
	switch mode {
	case models.ModeLiteral:
		return models.ModeWildcard
	case models.ModeWildcard:
		return models.ModeRegex
	default:
		return models.ModeLiteral
	}
}

func nextType(t models.TypeFilter) models.TypeFilter {
	switch t {
	case models.TypeAll:
		return models.TypeEntityOnly
	case models.TypeEntityOnly:
		return models.TypeAttributeOnly
	default:
		return models.TypeAll
	}
}

// nextValue cycles All, options[0], ..., options[n-1] and back to All. A
// current value that is not among options goes back to All.
func nextValue(options []string, current string) string {
	if current == "" || current == models.All {
		if len(options) == 0 {
			return models.All
		}
		return options[0]
	}
	for i, opt := range options {
		if opt == current {
			if i+1 < len(options) {
				return options[i+1]
			}
			return models.All
		}
	}
	return models.All
}

func entityCodes(options []search.EntityOption) []string {
	codes := make([]string, 0, len(options))
	for _, opt := range options {
		codes = append(codes, opt.Code)
	}
	return codes
}
