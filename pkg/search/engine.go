package search

import (
	"golang.org/x/text/language"

	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
)

// Engine binds the query operations to one store
type Engine struct {
	store  *catalog.Store
	locale language.Tag
}

// Option configures an Engine
type Option func(*Engine)

// WithLocale sets the collation locale used to sort entity options
func WithLocale(tag language.Tag) Option {
	return func(e *Engine) {
		e.locale = tag
	}
}

// NewEngine creates an engine over store. The default locale is Dutch.
func NewEngine(store *catalog.Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		locale: language.Dutch,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ParseLocale parses a BCP 47 tag, falling back to Dutch when it is invalid
func ParseLocale(s string) language.Tag {
	if s == "" {
		return language.Dutch
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Dutch
	}
	return tag
}

// Store returns the underlying store
func (e *Engine) Store() *catalog.Store {
	return e.store
}

// Locale returns the collation locale
func (e *Engine) Locale() language.Tag {
	return e.locale
}

// Filter runs the full filter pipeline
func (e *Engine) Filter(q models.Query) []models.Row {
	return Filter(e.store.Rows(), q)
}

// AvailableEntities returns the entity selector options for q
func (e *Engine) AvailableEntities(q models.Query) []EntityOption {
	return AvailableEntities(e.store, q, e.locale)
}

// Group groups already filtered rows
func (e *Engine) Group(filtered []models.Row, q models.Query) []GroupedItem {
	return Group(filtered, e.store, q)
}

// Suggest returns name suggestions for term
func (e *Engine) Suggest(term string) []models.Row {
	return Suggest(e.store.Rows(), term)
}

// Codelist returns the items of codelist id filtered by term
func (e *Engine) Codelist(id, term string) []models.CodeItem {
	return FilterCodeItems(LookupCodelist(e.store.Codelists(), id), term)
}

// Result bundles everything derived from one query
type Result struct {
	// Query is the effective query after entity filter reconciliation
	Query       models.Query
	Filtered    []models.Row
	Grouped     []GroupedItem
	Entities    []EntityOption
	Suggestions []models.Row
	// MatchErr is set when the search term does not compile in its mode
	MatchErr error
}

// Run derives the full result for q. The entity filter is reset to All
// first when it is not among the available entities.
func (e *Engine) Run(q models.Query) Result {
	q = q.Normalize()
	entities := e.AvailableEntities(q)
	q = ReconcileEntityFilter(q, entities)
	filtered := e.Filter(q)

	return Result{
		Query:       q,
		Filtered:    filtered,
		Grouped:     e.Group(filtered, q),
		Entities:    entities,
		Suggestions: e.Suggest(q.SearchTerm),
		MatchErr:    CompileMatcher(q.SearchTerm, q.Mode).Err(),
	}
}
