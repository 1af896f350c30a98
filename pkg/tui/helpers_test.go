package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

func entity(code, name, desc string) *models.Entity {
	return &models.Entity{Fields: models.Fields{EntityCode: code, Name: name, Description: desc}}
}

func attribute(entityCode, code, name, datatype string) *models.Attribute {
	return &models.Attribute{
		Fields:        models.Fields{EntityCode: entityCode, Name: name, Datatype: datatype},
		AttributeCode: code,
	}
}

// newTestEngine returns an engine over two entities with attributes and an
// attribute (ADR_STR) whose entity is missing
func newTestEngine() *search.Engine {
	actief := attribute("KLT", "ACTF", "Actief", "JN")
	actief.CodelistID = "CL1"

	rows := []models.Row{
		entity("KLT", "Klant", "Een persoon of organisatie"),
		attribute("KLT", "NAAM", "Klantnaam", "A0"),
		actief,
		entity("POL", "Polis", "Verzekeringsovereenkomst"),
		attribute("POL", "NR", "Polisnummer", "A0"),
		attribute("POL", "KLT", "Klant van polis", "A0"),
		attribute("ADR", "STR", "Straatnaam", "A0"),
	}
	codelists := models.Codelists{
		"CL1": {
			{Code: "J", Description: "Yes", Active: models.ActiveYes},
			{Code: "N", Description: "No", Active: models.ActiveYes},
			{Code: "O", Description: "Onbekend", Active: models.ActiveNo},
		},
	}
	return search.NewEngine(catalog.NewStoreFromRows(rows, codelists))
}

// fakeClipboard records what was copied
type fakeClipboard struct {
	copied []string
	err    error
}

func (c *fakeClipboard) WriteAll(s string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, s)
	return nil
}

func newTestBrowser(opts Options) (*BrowserModel, *fakeClipboard) {
	clip := &fakeClipboard{}
	opts.Clipboard = clip.WriteAll
	if opts.Query == (models.Query{}) {
		opts.Query = models.NewQuery()
	}
	m := NewBrowserModel(newTestEngine(), opts)
	m.SetSize(120, 40)
	return m, clip
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

// press sends each message to m in order and returns the last command
func press(m tea.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func lineKeys(lines []listLine) []string {
	result := make([]string, 0, len(lines))
	for _, l := range lines {
		result = append(result, l.row.Key())
	}
	return result
}
