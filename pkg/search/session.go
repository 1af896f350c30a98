package search

import (
	"github.com/afdtools/afd-catalog/pkg/models"
)

// preKey holds the query fields the entity resolver depends on
type preKey struct {
	term     string
	mode     models.SearchMode
	typ      models.TypeFilter
	datatype string
}

// Session memoizes the results of Engine.Run for one caller. Each derived
// value is recomputed only when a query field it depends on changes. A
// Session is not safe for concurrent use.
type Session struct {
	engine *Engine

	hasEntities bool
	entitiesKey preKey
	entities    []EntityOption

	hasFiltered bool
	filteredKey models.Query
	filtered    []models.Row
	grouped     []GroupedItem
	matchErr    error

	hasSuggest bool
	suggestKey string
	suggest    []models.Row

	computed struct {
		entities, filtered, suggest int
	}
}

// NewSession creates a memoizing session over engine
func NewSession(engine *Engine) *Session {
	return &Session{engine: engine}
}

// Engine returns the session's engine
func (s *Session) Engine() *Engine {
	return s.engine
}

// Run returns the same result as Engine.Run, reusing cached values
func (s *Session) Run(q models.Query) Result {
	q = q.Normalize()

	key := preKey{term: q.SearchTerm, mode: q.Mode, typ: q.Type, datatype: q.Datatype}
	if !s.hasEntities || s.entitiesKey != key {
		s.entities = s.engine.AvailableEntities(q)
		s.entitiesKey = key
		s.hasEntities = true
		s.computed.entities++
	}

	q = ReconcileEntityFilter(q, s.entities)

	// Grouping depends on the filtered rows plus type, term and entity,
	// all of which are part of the filter key
	if !s.hasFiltered || s.filteredKey != q {
		s.filtered = s.engine.Filter(q)
		s.grouped = s.engine.Group(s.filtered, q)
		s.matchErr = CompileMatcher(q.SearchTerm, q.Mode).Err()
		s.filteredKey = q
		s.hasFiltered = true
		s.computed.filtered++
	}

	if !s.hasSuggest || s.suggestKey != q.SearchTerm {
		s.suggest = s.engine.Suggest(q.SearchTerm)
		s.suggestKey = q.SearchTerm
		s.hasSuggest = true
		s.computed.suggest++
	}

	return Result{
		Query:       q,
		Filtered:    s.filtered,
		Grouped:     s.grouped,
		Entities:    s.entities,
		Suggestions: s.suggest,
		MatchErr:    s.matchErr,
	}
}
