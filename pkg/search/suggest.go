package search

import (
	"strings"
	"unicode/utf8"

	"github.com/afdtools/afd-catalog/pkg/models"
)

const (
	// MaxSuggestions caps the number of suggestions
	MaxSuggestions = 5
	// MinSuggestTermLength is the shortest term, in characters, that yields suggestions
	MinSuggestTermLength = 2
)

// Suggest returns up to MaxSuggestions rows whose name contains term but
// does not start with it, compared case-insensitively, in row order. Rows
// that start with the term are already visible as direct matches.
func Suggest(rows []models.Row, term string) []models.Row {
	if utf8.RuneCountInString(term) < MinSuggestTermLength {
		return nil
	}

	lowerTerm := strings.ToLower(term)
	var suggestions []models.Row
	for _, row := range rows {
		name := strings.ToLower(row.Common().Name)
		if name == "" || !strings.Contains(name, lowerTerm) || strings.HasPrefix(name, lowerTerm) {
			continue
		}
		suggestions = append(suggestions, row)
		if len(suggestions) == MaxSuggestions {
			break
		}
	}

	return suggestions
}
