package files

import (
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/afdtools/afd-catalog/pkg/catalog"
)

var issueKinds = []catalog.IssueKind{
	catalog.IssueUnknownKind,
	catalog.IssueMissingCode,
	catalog.IssueDuplicateEntity,
	catalog.IssueDuplicateAttribute,
}

// LoadStore reads the catalog and codelist sources and builds a store.
// A catalog that cannot be read is an error. Codelists are optional: a
// missing or broken codelist file is logged and the store is built
// without codelists.
func LoadStore(catalogPath, codelistsPath string, logger *log.Logger) (*catalog.Store, error) {
	raw, err := ReadCatalogFile(catalogPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("catalog loaded", "path", catalogPath, "rows", len(raw))

	var records []catalog.CodelistRecord
	if codelistsPath != "" {
		records, err = ReadCodelistFile(codelistsPath)
		if err != nil {
			logger.Warn("codelists could not be loaded", "path", codelistsPath, "err", err)
			records = nil
		} else {
			logger.Debug("codelists loaded", "path", codelistsPath, "records", len(records))
		}
	}

	store := catalog.NewStore(raw, records)

	for _, issue := range store.Issues() {
		logger.Debug("catalog issue", "kind", issue.Kind, "key", issue.Key, "line", issue.Line)
	}
	counts := catalog.CountIssues(store.Issues())
	for _, kind := range issueKinds {
		if n := counts[kind]; n > 0 {
			logger.Warn("catalog rows flagged", "kind", kind, "count", n)
		}
	}

	return store, nil
}

// ResolvePath makes a relative data path relative to the directory of the
// settings file it came from
func ResolvePath(settingsPath, path string) string {
	if path == "" || filepath.IsAbs(path) || settingsPath == "" {
		return path
	}
	return filepath.Join(filepath.Dir(settingsPath), path)
}
