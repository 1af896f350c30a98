package tui

import (
	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

// listLine is one rendered line of the result list
type listLine struct {
	row models.Row
	// nested attributes are indented under their entity
	nested bool
	orphan bool
	// group is set for entity lines
	group    *search.GroupedEntity
	expanded bool
}

// hasChildren reports whether the line is an entity with visible attributes
func (l listLine) hasChildren() bool {
	return l.group != nil && len(l.group.Attributes) > 0
}

// buildLines flattens the grouped view into list lines. Attributes of an
// entity are listed right after it when isExpanded reports true for its
// code.
func buildLines(items []search.GroupedItem, isExpanded func(code string) bool) []listLine {
	lines := make([]listLine, 0, len(items))
	for _, item := range items {
		switch it := item.(type) {
		case *search.GroupedEntity:
			expanded := isExpanded(it.Entity.EntityCode)
			lines = append(lines, listLine{row: it.Entity, group: it, expanded: expanded})
			if !expanded {
				continue
			}
			for _, attr := range it.Attributes {
				lines = append(lines, listLine{row: attr, nested: true})
			}
		case *search.OrphanAttribute:
			lines = append(lines, listLine{row: it.Attribute, orphan: true})
		case *search.FlatRow:
			lines = append(lines, listLine{row: it.Value})
		}
	}
	return lines
}

// parentLine returns the index of the entity line a nested line belongs to
func parentLine(lines []listLine, i int) int {
	for j := i; j >= 0; j-- {
		if j < len(lines) && lines[j].group != nil {
			return j
		}
	}
	return -1
}
