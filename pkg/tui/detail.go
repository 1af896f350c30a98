package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

// codelistPreviewLimit caps the codes listed in the detail pane
const codelistPreviewLimit = 8

// renderDetail renders the detail pane content for row at the given width
func renderDetail(row models.Row, store *catalog.Store, q models.Query, linkBase string, width int) string {
	if row == nil {
		return EmptyStyle.Render("Niets geselecteerd")
	}
	if width < 20 {
		width = 20
	}

	common := row.Common()
	var b strings.Builder

	marker := EntityMarkerStyle.Render("■ Entiteit")
	if row.Kind() == models.KindAttribute {
		marker = AttributeMarkerStyle.Render("● Attribuut")
	}
	b.WriteString(marker + "  " + CodeStyle.Render(row.Key()) + "\n\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(highlightText(common.Name, q)) + "\n")

	if attr, ok := row.(*models.Attribute); ok {
		entityName := store.EntityName(attr.EntityCode)
		if _, found := store.Entity(attr.EntityCode); !found {
			entityName = OrphanStyle.Render("onbekende entiteit")
		}
		b.WriteString(DescriptionStyle.Render(fmt.Sprintf("%s › %s", attr.EntityCode, attr.AttributeCode)))
		b.WriteString(DescriptionStyle.Render(" (" + entityName + ")"))
		b.WriteString("\n")
	}

	if common.Description != "" {
		b.WriteString("\n")
		b.WriteString(highlightText(wordwrap.String(common.Description, width), q))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if common.Datatype != "" {
		label := models.DatatypeLabel(common.Datatype)
		b.WriteString(detailField("Datatype", DatatypeBadgeStyle(common.Datatype).Render(common.Datatype)+" "+label))
		if info, ok := models.LookupDatatype(common.Datatype); ok && info.Example != "" {
			b.WriteString(detailField("Voorbeeld", info.Example))
		}
	}
	if common.Format != "" {
		b.WriteString(detailField("Formaat", common.Format))
	}

	if group, ok := row.(*models.Entity); ok {
		b.WriteString(detailField("Attributen", fmt.Sprintf("%d", store.AttributeCount(group.EntityCode))))
	}

	if common.CodelistID != "" {
		if !store.HasCodelist(common.CodelistID) {
			b.WriteString(detailField("Codelijst", common.CodelistID+" "+DescriptionStyle.Render("(niet geladen)")))
		} else {
			items := search.LookupCodelist(store.Codelists(), common.CodelistID)
			b.WriteString(detailField("Codelijst", CodelistRefStyle.Render(common.CodelistID)+
				DescriptionStyle.Render(fmt.Sprintf(" (%d codes, %s)", len(items), Shortcuts.Codelist.Get()))))
			b.WriteString(renderCodePreview(items, width))
		}
	}

	if linkBase != "" {
		b.WriteString("\n")
		b.WriteString(detailField("Link", search.DirectLink(linkBase, row)))
	}

	return b.String()
}

func detailField(label, value string) string {
	return HeaderStyle.Render(fmt.Sprintf("%-11s", label+":")) + " " + value + "\n"
}

func renderCodePreview(items []models.CodeItem, width int) string {
	var b strings.Builder
	for i, item := range items {
		if i == codelistPreviewLimit {
			b.WriteString(DescriptionStyle.Render(fmt.Sprintf("  … %d meer", len(items)-codelistPreviewLimit)) + "\n")
			break
		}
		line := fmt.Sprintf("  %-6s %s", item.Code, item.Description)
		if item.Active == models.ActiveNo {
			line = DescriptionStyle.Render(truncate(line+" (inactief)", width))
		} else {
			line = truncate(line, width)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

// highlightText marks the search term in text
func highlightText(text string, q models.Query) string {
	return search.RenderHighlight(search.Highlight(text, q.SearchTerm, q.Mode), func(s string) string {
		return MatchStyle.Render(s)
	})
}

// truncate shortens s to width cells, ending in an ellipsis
func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
