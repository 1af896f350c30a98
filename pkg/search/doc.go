// Package search implements the query side of the catalog: matching rows
// against a search term, the filter pipeline, entity resolution for the
// entity selector, grouping of entities with their attributes, name
// suggestions and codelist lookups.
//
// Every function in this package is a pure function of its arguments. The
// only stateful type is Session, which memoizes derived results for a
// single caller.
package search
