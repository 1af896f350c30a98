package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/afdtools/afd-catalog/pkg/search"
)

type sessionState int

const (
	browserView sessionState = iota
	codelistView
)

// App is the root model of the catalog browser
type App struct {
	state     sessionState
	engine    *search.Engine
	opts      Options
	browser   *BrowserModel
	codelist  *CodelistModel
	width     int
	height    int
	statusMsg string
}

// NewApp creates the browser app over engine
func NewApp(engine *search.Engine, opts Options) *App {
	return &App{
		state:     browserView,
		engine:    engine,
		opts:      opts,
		browser:   NewBrowserModel(engine, opts),
		statusMsg: opts.Status,
	}
}

// Browser returns the result browser
func (a *App) Browser() *BrowserModel {
	return a.browser
}

func (a *App) Init() tea.Cmd {
	return a.browser.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, a.contentHeight())
		if a.codelist != nil {
			a.codelist.SetSize(msg.Width, a.contentHeight())
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.browser.SetSize(a.width, a.contentHeight())
		return a, nil

	case openCodelistMsg:
		a.state = codelistView
		a.codelist = NewCodelistModel(a.engine, msg.id, msg.title, a.browser.copy)
		a.codelist.SetSize(a.width, a.contentHeight())
		return a, a.codelist.Init()

	case SwitchViewMsg:
		if msg.view == browserView {
			a.state = browserView
			a.codelist = nil
			return a, nil
		}
	}

	var cmd tea.Cmd
	switch a.state {
	case browserView:
		_, cmd = a.browser.Update(msg)
	case codelistView:
		_, cmd = a.codelist.Update(msg)
	}
	return a, cmd
}

// contentHeight leaves room for the status bar
func (a *App) contentHeight() int {
	if a.statusMsg != "" {
		return a.height - 1
	}
	return a.height
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case codelistView:
		content = a.codelist.View()
	default:
		content = a.browser.View()
	}

	if a.statusMsg != "" {
		statusBar := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1).
			Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// StatusMsg sets a persistent message in the status bar
type StatusMsg string

// SwitchViewMsg switches between the browser and the codelist view
type SwitchViewMsg struct {
	view sessionState
}
