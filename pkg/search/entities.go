package search

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
)

// EntityOption is one entry of the entity selector
type EntityOption struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

// AvailableEntities returns the distinct entity codes reachable under the
// type, datatype and search constraints of q. The entity filter itself is
// ignored so the current selection never eliminates itself.
//
// Names come from the entity row with that code anywhere in the store, or
// fall back to the code. Options are sorted by code using the collation
// rules of locale.
func AvailableEntities(store *catalog.Store, q models.Query, locale language.Tag) []EntityOption {
	seen := make(map[string]bool)
	var options []EntityOption

	for _, row := range PreFilter(store.Rows(), q) {
		code := row.Common().EntityCode
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		options = append(options, EntityOption{Code: code, Name: store.EntityName(code)})
	}

	coll := collate.New(locale)
	sort.SliceStable(options, func(i, j int) bool {
		return coll.CompareString(options[i].Code, options[j].Code) < 0
	})

	return options
}

// ReconcileEntityFilter resets q's entity filter to All when the selected
// entity is no longer among options. Callers run it after recomputing the
// available entities.
func ReconcileEntityFilter(q models.Query, options []EntityOption) models.Query {
	if !q.HasEntity() {
		return q
	}
	for _, opt := range options {
		if opt.Code == q.Entity {
			return q
		}
	}
	q.Entity = models.All
	return q
}
