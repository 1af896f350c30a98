package search

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// FieldType is a filter prefix recognized in query input
type FieldType string

const (
	FieldRowType  FieldType = "type"
	FieldDatatype FieldType = "datatype"
	FieldEntity   FieldType = "entity"
	FieldMode     FieldType = "mode"
)

// fieldAliases maps accepted prefixes to their field
var fieldAliases = map[string]FieldType{
	"type":     FieldRowType,
	"t":        FieldRowType,
	"datatype": FieldDatatype,
	"dt":       FieldDatatype,
	"entity":   FieldEntity,
	"ent":      FieldEntity,
	"e":        FieldEntity,
	"mode":     FieldMode,
	"m":        FieldMode,
}

// Parser turns query-bar input such as `type:A dt:A0 klant*` into a Query.
// Tokens with a known field prefix set that filter; everything else is
// joined back together as the search term.
type Parser struct {
	fieldPattern  *regexp.Regexp
	quotedPattern *regexp.Regexp
}

// NewParser creates a new query parser
func NewParser() *Parser {
	return &Parser{
		fieldPattern:  regexp.MustCompile(`^(\w+):(.+)$`),
		quotedPattern: regexp.MustCompile(`^"([^"]*)"$`),
	}
}

// Parse parses input on top of base. Filters not named in input keep the
// value they have in base; the search term is always replaced.
func (p *Parser) Parse(input string, base models.Query) (models.Query, error) {
	q := base.Normalize()
	var terms []string

	for _, token := range p.tokenize(input) {
		field, value, ok := p.splitField(token)
		if !ok {
			terms = append(terms, p.unquote(token))
			continue
		}

		switch field {
		case FieldRowType:
			typ, err := models.ParseTypeFilter(value)
			if err != nil {
				return base, err
			}
			q.Type = typ
		case FieldDatatype:
			q.Datatype = filterValue(value)
		case FieldEntity:
			q.Entity = filterValue(value)
		case FieldMode:
			mode, err := models.ParseSearchMode(value)
			if err != nil {
				return base, err
			}
			q.Mode = mode
		}
	}

	q.SearchTerm = strings.Join(terms, " ")
	return q, nil
}

// HasFields reports whether input contains at least one field:value token
func (p *Parser) HasFields(input string) bool {
	for _, token := range p.tokenize(input) {
		if _, _, ok := p.splitField(token); ok {
			return true
		}
	}
	return false
}

// splitField recognizes field:value tokens. Unknown prefixes are not
// fields, so terms like `http://x` or regexes with a colon pass through.
func (p *Parser) splitField(token string) (FieldType, string, bool) {
	matches := p.fieldPattern.FindStringSubmatch(token)
	if len(matches) != 3 {
		return "", "", false
	}
	field, ok := fieldAliases[strings.ToLower(matches[1])]
	if !ok {
		return "", "", false
	}
	return field, p.unquote(matches[2]), true
}

// tokenize splits the input on spaces outside of double quotes
func (p *Parser) tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// unquote removes quotes from a string if present
func (p *Parser) unquote(s string) string {
	if matches := p.quotedPattern.FindStringSubmatch(s); len(matches) == 2 {
		return matches[1]
	}
	return s
}

func filterValue(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || strings.EqualFold(v, models.All) || v == "*" {
		return models.All
	}
	return v
}

// Format renders q back into query-bar syntax. Filters at their "all"
// value are omitted.
func Format(q models.Query) string {
	q = q.Normalize()
	var parts []string

	if q.Mode != models.ModeLiteral {
		parts = append(parts, fmt.Sprintf("mode:%s", q.Mode))
	}
	if q.Type != models.TypeAll {
		parts = append(parts, fmt.Sprintf("type:%s", q.Type))
	}
	if q.HasDatatype() {
		parts = append(parts, fmt.Sprintf("dt:%s", q.Datatype))
	}
	if q.HasEntity() {
		parts = append(parts, fmt.Sprintf("entity:%s", q.Entity))
	}
	for _, word := range strings.Fields(q.SearchTerm) {
		if _, known := fieldAliases[strings.ToLower(strings.SplitN(word, ":", 2)[0])]; known && strings.Contains(word, ":") {
			word = `"` + word + `"`
		}
		parts = append(parts, word)
	}

	return strings.Join(parts, " ")
}
