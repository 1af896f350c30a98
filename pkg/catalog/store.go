package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// Column names of the catalog source
const (
	ColumnKind          = "Entiteit/Attribuut"
	ColumnEntityCode    = "Entiteitcode"
	ColumnAttributeCode = "Attribuutcode"
	ColumnName          = "Naam"
	ColumnDescription   = "Omschrijving"
	ColumnDatatype      = "Datatype"
	ColumnFormat        = "Formaat"
	ColumnCodelist      = "Codelijst"
)

// RawRow is one parsed catalog record keyed by trimmed column name
type RawRow map[string]string

// CodelistRecord is one parsed codelist record:
// codelist id, code, description, active flag
type CodelistRecord []string

// Stats summarizes the loaded catalog
type Stats struct {
	Total              int `json:"total" yaml:"total"`
	Entities           int `json:"entities" yaml:"entities"`
	Attributes         int `json:"attributes" yaml:"attributes"`
	Codelists          int `json:"codelists" yaml:"codelists"`
	DanglingAttributes int `json:"dangling_attributes" yaml:"dangling_attributes"`
}

// attributeKey identifies an attribute by its entity and attribute code
type attributeKey struct {
	entity, attribute string
}

// Store is the immutable record store
type Store struct {
	rows            []models.Row
	entities        map[string]*models.Entity
	attributes      map[attributeKey]*models.Attribute
	attributeCounts map[string]int
	codelists       models.Codelists
	datatypes       []string
	issues          []Issue
	codes           *CodeIndex
}

// NewStore normalizes raw catalog rows and groups the codelist records.
//
// Rows whose kind column is not "E" or "A" are skipped. Duplicate keys are
// kept in load order; for entity name resolution the first entity with a
// code wins. Both cases are recorded as issues. The first codelist record is
// treated as a header and skipped.
func NewStore(raw []RawRow, codelistRecords []CodelistRecord) *Store {
	var rows []models.Row
	var lines []int
	var issues []Issue

	for i, r := range raw {
		row, err := NormalizeRow(r)
		if err != nil {
			issues = append(issues, Issue{Kind: IssueUnknownKind, Line: i + 1, Message: err.Error()})
			continue
		}
		rows = append(rows, row)
		lines = append(lines, i+1)
	}

	s := NewStoreFromRows(rows, BuildCodelists(codelistRecords))

	// Report positions in the raw input, not in the filtered row slice
	for i := range s.issues {
		s.issues[i].Line = lines[s.issues[i].Line-1]
	}
	s.issues = append(issues, s.issues...)
	return s
}

// NewStoreFromRows builds a store from rows that are already normalized.
// Issue lines refer to positions in rows.
func NewStoreFromRows(rows []models.Row, codelists models.Codelists) *Store {
	if codelists == nil {
		codelists = models.Codelists{}
	}

	s := &Store{
		rows:            rows,
		entities:        make(map[string]*models.Entity),
		attributes:      make(map[attributeKey]*models.Attribute),
		attributeCounts: make(map[string]int),
		codelists:       codelists,
	}

	datatypes := make(map[string]bool)
	for i, row := range rows {
		common := row.Common()
		if common.Datatype != "" {
			datatypes[common.Datatype] = true
		}
		if common.EntityCode == "" {
			s.issues = append(s.issues, Issue{
				Kind:    IssueMissingCode,
				Line:    i + 1,
				Message: fmt.Sprintf("%s %q has no entity code", row.Kind(), common.Name),
			})
		}

		switch r := row.(type) {
		case *models.Entity:
			if _, exists := s.entities[r.EntityCode]; exists {
				s.issues = append(s.issues, Issue{
					Kind:    IssueDuplicateEntity,
					Key:     r.Key(),
					Line:    i + 1,
					Message: fmt.Sprintf("entity %s defined more than once; keeping the first", r.EntityCode),
				})
				continue
			}
			s.entities[r.EntityCode] = r
		case *models.Attribute:
			s.attributeCounts[r.EntityCode]++
			if r.AttributeCode == "" {
				s.issues = append(s.issues, Issue{
					Kind:    IssueMissingCode,
					Key:     r.Key(),
					Line:    i + 1,
					Message: fmt.Sprintf("attribute %q of entity %s has no attribute code", r.Name, r.EntityCode),
				})
			}
			k := attributeKey{r.EntityCode, r.AttributeCode}
			if _, exists := s.attributes[k]; exists {
				s.issues = append(s.issues, Issue{
					Kind:    IssueDuplicateAttribute,
					Key:     r.Key(),
					Line:    i + 1,
					Message: fmt.Sprintf("attribute %s defined more than once; keeping the first", r.Key()),
				})
				continue
			}
			s.attributes[k] = r
		}
	}

	for dt := range datatypes {
		s.datatypes = append(s.datatypes, dt)
	}
	sort.Strings(s.datatypes)

	s.codes = newCodeIndex(s)
	return s
}

// NormalizeRow converts a raw record into its typed variant
func NormalizeRow(raw RawRow) (models.Row, error) {
	fields := models.Fields{
		EntityCode:  value(raw, ColumnEntityCode),
		Name:        value(raw, ColumnName),
		Description: value(raw, ColumnDescription),
		Datatype:    value(raw, ColumnDatatype),
		Format:      value(raw, ColumnFormat),
		CodelistID:  value(raw, ColumnCodelist),
	}

	switch kind := value(raw, ColumnKind); models.Kind(strings.ToUpper(kind)) {
	case models.KindEntity:
		return &models.Entity{Fields: fields}, nil
	case models.KindAttribute:
		return &models.Attribute{Fields: fields, AttributeCode: value(raw, ColumnAttributeCode)}, nil
	default:
		return nil, fmt.Errorf("unknown row kind %q for %q", kind, fields.Name)
	}
}

func value(raw RawRow, column string) string {
	return strings.TrimSpace(raw[column])
}

// BuildCodelists groups codelist records by their first column. The first
// record is a header and is skipped. Item order follows the source.
func BuildCodelists(records []CodelistRecord) models.Codelists {
	codelists := models.Codelists{}
	if len(records) <= 1 {
		return codelists
	}

	for _, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		id := strings.TrimSpace(rec[0])
		codelists[id] = append(codelists[id], models.CodeItem{
			Code:        column(rec, 1),
			Description: column(rec, 2),
			Active:      models.ParseActiveFlag(column(rec, 3)),
		})
	}

	return codelists
}

func column(rec CodelistRecord, i int) string {
	if i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// Rows returns every row in load order. The slice is shared; callers must
// not modify it.
func (s *Store) Rows() []models.Row {
	return s.rows
}

// Entity returns the first entity row with the given code
func (s *Store) Entity(code string) (*models.Entity, bool) {
	e, ok := s.entities[code]
	return e, ok
}

// Attribute returns the first attribute row with the given key pair
func (s *Store) Attribute(entityCode, attributeCode string) (*models.Attribute, bool) {
	a, ok := s.attributes[attributeKey{entityCode, attributeCode}]
	return a, ok
}

// EntityName resolves the display name for an entity code, falling back to
// the code itself when no entity row exists
func (s *Store) EntityName(code string) string {
	if e, ok := s.entities[code]; ok {
		return e.Name
	}
	return code
}

// AttributeCount returns the number of attribute rows referencing code,
// regardless of any filter
func (s *Store) AttributeCount(code string) int {
	return s.attributeCounts[code]
}

// Codelists returns the codelist index. The map is shared; callers must
// not modify it.
func (s *Store) Codelists() models.Codelists {
	return s.codelists
}

// HasCodelist reports whether the id references a non-empty codelist
func (s *Store) HasCodelist(id string) bool {
	return id != "" && len(s.codelists[id]) > 0
}

// CodelistIDs returns every codelist id, sorted
func (s *Store) CodelistIDs() []string {
	ids := make([]string, 0, len(s.codelists))
	for id := range s.codelists {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Datatypes returns the distinct non-empty datatypes, sorted
func (s *Store) Datatypes() []string {
	return s.datatypes
}

// Codes returns the prefix index over entity, datatype and codelist codes
func (s *Store) Codes() *CodeIndex {
	return s.codes
}

// Issues returns the data quality problems found while building the store
func (s *Store) Issues() []Issue {
	return s.issues
}

// Stats returns row and codelist counts
func (s *Store) Stats() Stats {
	stats := Stats{
		Total:     len(s.rows),
		Codelists: len(s.codelists),
	}
	for _, row := range s.rows {
		switch r := row.(type) {
		case *models.Entity:
			stats.Entities++
		case *models.Attribute:
			stats.Attributes++
			if _, ok := s.entities[r.EntityCode]; !ok {
				stats.DanglingAttributes++
			}
		}
	}
	return stats
}
