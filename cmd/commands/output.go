package commands

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

// RowOutput is the structured form of a catalog row
type RowOutput struct {
	Kind          string `json:"kind" yaml:"kind"`
	Key           string `json:"key" yaml:"key"`
	EntityCode    string `json:"entity_code" yaml:"entity_code"`
	AttributeCode string `json:"attribute_code,omitempty" yaml:"attribute_code,omitempty"`
	Name          string `json:"name" yaml:"name"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	Datatype      string `json:"datatype,omitempty" yaml:"datatype,omitempty"`
	Format        string `json:"format,omitempty" yaml:"format,omitempty"`
	Codelist      string `json:"codelist,omitempty" yaml:"codelist,omitempty"`
}

func newRowOutput(row models.Row) RowOutput {
	common := row.Common()
	return RowOutput{
		Kind:          string(row.Kind()),
		Key:           row.Key(),
		EntityCode:    common.EntityCode,
		AttributeCode: models.AttributeCodeOf(row),
		Name:          common.Name,
		Description:   common.Description,
		Datatype:      common.Datatype,
		Format:        common.Format,
		Codelist:      common.CodelistID,
	}
}

func newRowOutputs(rows []models.Row) []RowOutput {
	result := make([]RowOutput, 0, len(rows))
	for _, row := range rows {
		result = append(result, newRowOutput(row))
	}
	return result
}

var matchStyle = lipgloss.NewStyle().Bold(true).Underline(true)

// highlight marks occurrences of the search term in text output
func highlight(text string, q models.Query) string {
	segments := search.Highlight(text, q.SearchTerm, q.Mode)
	if cli.NoColor() {
		return text
	}
	return search.RenderHighlight(segments, func(s string) string {
		return matchStyle.Render(s)
	})
}
