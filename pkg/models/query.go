package models

import (
	"errors"
	"fmt"
	"strings"
)

// All is the "no restriction" value of the datatype and entity filters
const All = "all"

// SearchMode selects the matching grammar for the search term
type SearchMode string

const (
	ModeLiteral  SearchMode = "normal"
	ModeWildcard SearchMode = "wildcard"
	ModeRegex    SearchMode = "regex"
)

// TypeFilter restricts results to one row kind
type TypeFilter string

const (
	TypeAll           TypeFilter = "all"
	TypeEntityOnly    TypeFilter = "E"
	TypeAttributeOnly TypeFilter = "A"
)

var (
	ErrInvalidSearchMode = errors.New("invalid search mode")
	ErrInvalidTypeFilter = errors.New("invalid type filter")
)

// Query is the externally owned query state passed to every engine call.
// It is a value type; the engine never modifies it.
type Query struct {
	SearchTerm string
	Mode       SearchMode
	Type       TypeFilter
	Datatype   string
	Entity     string
}

// NewQuery returns a query with every filter set to its "all" value
func NewQuery() Query {
	return Query{
		Mode:     ModeLiteral,
		Type:     TypeAll,
		Datatype: All,
		Entity:   All,
	}
}

// Normalize fills zero-valued fields with their "all" defaults
func (q Query) Normalize() Query {
	if q.Mode == "" {
		q.Mode = ModeLiteral
	}
	if q.Type == "" {
		q.Type = TypeAll
	}
	if q.Datatype == "" {
		q.Datatype = All
	}
	if q.Entity == "" {
		q.Entity = All
	}
	return q
}

// HasDatatype reports whether a datatype restriction is active
func (q Query) HasDatatype() bool {
	return q.Datatype != "" && q.Datatype != All
}

// HasEntity reports whether an entity restriction is active
func (q Query) HasEntity() bool {
	return q.Entity != "" && q.Entity != All
}

// ParseSearchMode accepts the mode names used on the command line
func ParseSearchMode(s string) (SearchMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal", "literal", "text":
		return ModeLiteral, nil
	case "wildcard", "glob":
		return ModeWildcard, nil
	case "regex", "regexp", "re":
		return ModeRegex, nil
	default:
		return "", fmt.Errorf("%w: %s (must be: normal, wildcard, or regex)", ErrInvalidSearchMode, s)
	}
}

// ParseTypeFilter accepts "all", "E"/"entity" and "A"/"attribute" variants
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return TypeAll, nil
	case "e", "entity", "entities":
		return TypeEntityOnly, nil
	case "a", "attribute", "attributes":
		return TypeAttributeOnly, nil
	default:
		return "", fmt.Errorf("%w: %s (must be: all, entity, or attribute)", ErrInvalidTypeFilter, s)
	}
}

// Label returns the display label of a search mode
func (m SearchMode) Label() string {
	switch m {
	case ModeWildcard:
		return "Wildcard"
	case ModeRegex:
		return "Regex"
	default:
		return "Normaal"
	}
}

// Label returns the display label of a type filter
func (t TypeFilter) Label() string {
	switch t {
	case TypeEntityOnly:
		return "Alleen entiteiten"
	case TypeAttributeOnly:
		return "Alleen attributen"
	default:
		return "Alle types"
	}
}
