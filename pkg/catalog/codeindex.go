package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// CodeKind selects which code namespace to complete
type CodeKind int

const (
	CodeEntity CodeKind = iota
	CodeDatatype
	CodeCodelist
)

// CodeCompletion is a completion candidate with a short description
type CodeCompletion struct {
	Code        string
	Description string
}

// CodeIndex answers case-insensitive prefix queries over catalog codes
type CodeIndex struct {
	tries map[CodeKind]*patricia.Trie
}

func newCodeIndex(s *Store) *CodeIndex {
	ci := &CodeIndex{
		tries: map[CodeKind]*patricia.Trie{
			CodeEntity:   patricia.NewTrie(),
			CodeDatatype: patricia.NewTrie(),
			CodeCodelist: patricia.NewTrie(),
		},
	}

	for _, row := range s.rows {
		code := row.Common().EntityCode
		if code == "" {
			continue
		}
		ci.insert(CodeEntity, code, s.EntityName(code))
	}
	for _, dt := range s.datatypes {
		ci.insert(CodeDatatype, dt, models.DatatypeLabel(dt))
	}
	for id, items := range s.codelists {
		ci.insert(CodeCodelist, id, pluralize(len(items), "item"))
	}

	return ci
}

// insert keeps the first description seen for a code. Codes differing
// only in case share a trie key and are stored side by side.
func (ci *CodeIndex) insert(kind CodeKind, code, description string) {
	key := patricia.Prefix(strings.ToLower(code))
	trie := ci.tries[kind]

	var entries []CodeCompletion
	if item := trie.Get(key); item != nil {
		entries = item.([]CodeCompletion)
	}
	for _, e := range entries {
		if e.Code == code {
			return
		}
	}
	trie.Set(key, append(entries, CodeCompletion{Code: code, Description: description}))
}

// Complete returns the codes of the given kind starting with prefix,
// sorted by code
func (ci *CodeIndex) Complete(kind CodeKind, prefix string) []CodeCompletion {
	trie, ok := ci.tries[kind]
	if !ok {
		return nil
	}

	var results []CodeCompletion
	trie.VisitSubtree(patricia.Prefix(strings.ToLower(prefix)), func(_ patricia.Prefix, item patricia.Item) error {
		results = append(results, item.([]CodeCompletion)...)
		return nil
	})

	sort.Slice(results, func(i, j int) bool {
		return results[i].Code < results[j].Code
	})
	return results
}

func pluralize(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
