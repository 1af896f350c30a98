package search

import (
	"regexp"
	"strings"
	"time"

	"github.com/dlclark/regexp2"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// RegexTimeout bounds a single regex evaluation. A match that runs out of
// time counts as no match.
var RegexTimeout = 250 * time.Millisecond

// Matcher tests rows against one compiled search term
type Matcher struct {
	term  string
	mode  models.SearchMode
	match func(text string) bool
	err   error
}

// CompileMatcher compiles term for the given mode. It never fails: a term
// that does not compile yields a matcher that matches nothing, and the
// compile error is available through Err.
func CompileMatcher(term string, mode models.SearchMode) *Matcher {
	m := &Matcher{term: term, mode: mode}

	if term == "" {
		m.match = func(string) bool { return true }
		return m
	}

	switch mode {
	case models.ModeRegex:
		re, err := regexp2.Compile(term, regexp2.IgnoreCase|regexp2.ECMAScript)
		if err != nil {
			m.err = err
			m.match = func(string) bool { return false }
			return m
		}
		re.MatchTimeout = RegexTimeout
		m.match = func(text string) bool {
			ok, err := re.MatchString(text)
			return err == nil && ok
		}

	case models.ModeWildcard:
		// Searchable text is already lower-cased; folding the term the same
		// way keeps wildcard and literal matching in agreement.
		re, err := regexp.Compile(WildcardPattern(strings.ToLower(term)))
		if err != nil {
			m.err = err
			m.match = func(string) bool { return false }
			return m
		}
		m.match = re.MatchString

	default:
		lowerTerm := strings.ToLower(term)
		m.match = func(text string) bool {
			return strings.Contains(text, lowerTerm)
		}
	}

	return m
}

// Match reports whether row's searchable text matches the term
func (m *Matcher) Match(row models.Row) bool {
	return m.match(SearchableText(row))
}

// Err returns the compile error of the term, if any
func (m *Matcher) Err() error {
	return m.err
}

// Term returns the raw search term
func (m *Matcher) Term() string {
	return m.term
}

// Matches compiles term and tests a single row. Prefer CompileMatcher when
// testing many rows against the same term.
func Matches(row models.Row, term string, mode models.SearchMode) bool {
	return CompileMatcher(term, mode).Match(row)
}

// SearchableText joins name, description, entity code and attribute code
// with single spaces, skipping empty fields, and lower-cases the result
func SearchableText(row models.Row) string {
	common := row.Common()
	parts := make([]string, 0, 4)
	for _, field := range []string{common.Name, common.Description, common.EntityCode, models.AttributeCodeOf(row)} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// WildcardPattern translates a shell-style pattern into an unanchored
// regular expression. Metacharacters are escaped first so the inserted
// ".*" and "." tokens are not escaped again.
func WildcardPattern(term string) string {
	escaped := regexp.QuoteMeta(term)
	escaped = strings.ReplaceAll(escaped, `\*`, ".*")
	return strings.ReplaceAll(escaped, `\?`, ".")
}
