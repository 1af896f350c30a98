package search

import (
	"strings"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// LookupCodelist returns a copy of the items of codelist id, or an empty
// slice when the id is unknown
func LookupCodelist(codelists models.Codelists, id string) []models.CodeItem {
	items := codelists[id]
	result := make([]models.CodeItem, len(items))
	copy(result, items)
	return result
}

// FilterCodeItems keeps the items whose code or description contains term,
// case-insensitively. An empty term keeps every item.
func FilterCodeItems(items []models.CodeItem, term string) []models.CodeItem {
	if term == "" {
		return items
	}

	lowerTerm := strings.ToLower(term)
	result := make([]models.CodeItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Code), lowerTerm) ||
			strings.Contains(strings.ToLower(item.Description), lowerTerm) {
			result = append(result, item)
		}
	}
	return result
}
