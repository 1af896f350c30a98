package catalog

import (
	"sort"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// CodelistUsage lists the rows that reference one codelist
type CodelistUsage struct {
	ID     string       `json:"id" yaml:"id"`
	Loaded bool         `json:"loaded" yaml:"loaded"`
	Codes  int          `json:"codes" yaml:"codes"`
	Rows   []models.Row `json:"-" yaml:"-"`
}

// Count is the number of referencing rows
func (u CodelistUsage) Count() int {
	return len(u.Rows)
}

// CodelistUsages returns one entry per codelist id that is loaded or
// referenced by a row, sorted by id. Rows keep load order.
func (s *Store) CodelistUsages() []CodelistUsage {
	byID := make(map[string]*CodelistUsage)
	get := func(id string) *CodelistUsage {
		u, ok := byID[id]
		if !ok {
			items, loaded := s.codelists[id]
			u = &CodelistUsage{ID: id, Loaded: loaded, Codes: len(items)}
			byID[id] = u
		}
		return u
	}

	for id := range s.codelists {
		get(id)
	}
	for _, row := range s.rows {
		if id := row.Common().CodelistID; id != "" {
			u := get(id)
			u.Rows = append(u.Rows, row)
		}
	}

	usages := make([]CodelistUsage, 0, len(byID))
	for _, u := range byID {
		usages = append(usages, *u)
	}
	sort.Slice(usages, func(i, j int) bool {
		return usages[i].ID < usages[j].ID
	})
	return usages
}

// CodelistUsage returns the usage of one codelist. ok is false when the id
// is neither loaded nor referenced.
func (s *Store) CodelistUsage(id string) (CodelistUsage, bool) {
	items, loaded := s.codelists[id]
	usage := CodelistUsage{ID: id, Loaded: loaded, Codes: len(items)}
	for _, row := range s.rows {
		if row.Common().CodelistID == id {
			usage.Rows = append(usage.Rows, row)
		}
	}
	return usage, loaded || len(usage.Rows) > 0
}
