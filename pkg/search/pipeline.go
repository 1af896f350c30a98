package search

import (
	"github.com/afdtools/afd-catalog/pkg/models"
)

// predicate is one stage of the filter pipeline
type predicate func(row models.Row) bool

// Filter applies the type, datatype, search and entity constraints of q, in
// that order, and returns the surviving rows in load order. The result never
// aliases rows.
func Filter(rows []models.Row, q models.Query) []models.Row {
	q = q.Normalize()
	stages := preStages(q)
	if q.HasEntity() {
		entity := q.Entity
		stages = append(stages, func(row models.Row) bool {
			return row.Common().EntityCode == entity
		})
	}
	return apply(rows, stages)
}

// PreFilter applies every constraint of q except the entity filter. It is
// the input of the entity resolver, which must not eliminate the entity
// that is currently selected.
func PreFilter(rows []models.Row, q models.Query) []models.Row {
	return apply(rows, preStages(q.Normalize()))
}

// preStages builds the type, datatype and search stages
func preStages(q models.Query) []predicate {
	var stages []predicate

	if q.Type != models.TypeAll {
		kind := models.Kind(q.Type)
		stages = append(stages, func(row models.Row) bool {
			return row.Kind() == kind
		})
	}

	if q.HasDatatype() {
		datatype := q.Datatype
		stages = append(stages, func(row models.Row) bool {
			return row.Common().Datatype == datatype
		})
	}

	if q.SearchTerm != "" {
		matcher := CompileMatcher(q.SearchTerm, q.Mode)
		stages = append(stages, matcher.Match)
	}

	return stages
}

// apply runs all stages over rows in a single pass
func apply(rows []models.Row, stages []predicate) []models.Row {
	result := make([]models.Row, 0, len(rows))

rowLoop:
	for _, row := range rows {
		for _, keep := range stages {
			if !keep(row) {
				continue rowLoop
			}
		}
		result = append(result, row)
	}

	return result
}
