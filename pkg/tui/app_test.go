package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afdtools/afd-catalog/pkg/models"
)

func newTestApp(opts Options) *App {
	clip := &fakeClipboard{}
	opts.Clipboard = clip.WriteAll
	opts.Query = models.NewQuery()
	return NewApp(newTestEngine(), opts)
}

func TestAppLoadingView(t *testing.T) {
	app := newTestApp(Options{})
	assert.Equal(t, "Loading...", app.View())

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 100, app.width)
	assert.Equal(t, 30, app.browser.height)
	assert.Contains(t, app.View(), "Resultaten")
}

func TestAppCtrlCQuits(t *testing.T) {
	app := newTestApp(Options{})
	_, cmd := app.Update(key(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestAppStatusMessages(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		msg          tea.Msg
		expectStatus string
	}{
		{
			name:         "initial status from options",
			opts:         Options{Status: "2 issues in catalogus"},
			msg:          nil,
			expectStatus: "2 issues in catalogus",
		},
		{
			name:         "StatusMsg replaces the status",
			opts:         Options{Status: "old"},
			msg:          StatusMsg("new"),
			expectStatus: "new",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(tt.opts)
			app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
			if tt.msg != nil {
				app.Update(tt.msg)
			}

			assert.Equal(t, tt.expectStatus, app.statusMsg)
			assert.Equal(t, 29, app.browser.height, "status bar takes one line")
			assert.Contains(t, app.View(), tt.expectStatus)
		})
	}
}

func TestAppCodelistRoundTrip(t *testing.T) {
	app := newTestApp(Options{})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	app.Update(openCodelistMsg{id: "CL1", title: "Actief"})
	require.Equal(t, codelistView, app.state)
	require.NotNil(t, app.codelist)
	assert.Equal(t, "CL1", app.codelist.ID())
	assert.Contains(t, app.View(), "Codelijst CL1")

	// keys go to the codelist filter, not the browser
	app.Update(runes("q"))
	assert.Equal(t, codelistView, app.state)
	assert.Equal(t, []string{}, nonNil(codes(app.codelist)))

	_, cmd := app.Update(key(tea.KeyEsc))
	assert.Nil(t, cmd)
	_, cmd = app.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, browserView, app.state)
	assert.Nil(t, app.codelist)
}

func TestAppOpensCodelistFromBrowser(t *testing.T) {
	app := newTestApp(Options{ExpandAll: true})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	app.Update(key(tea.KeyDown))
	app.Update(key(tea.KeyDown))
	_, cmd := app.Update(runes("l"))
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Equal(t, codelistView, app.state)
	assert.Equal(t, "CL1", app.codelist.ID())
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
