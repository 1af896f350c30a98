package examples

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/afdtools/afd-catalog/pkg/files"
	"github.com/afdtools/afd-catalog/pkg/models"
)

// ExampleSet is a small catalog that can be written to disk to try afd
type ExampleSet struct {
	Category     string
	Name         string
	Description  string
	CatalogFile  string
	CodelistFile string
	Rows         []ExampleRow
	Codelists    []ExampleCode
}

// ExampleRow is one catalog row of an example set
type ExampleRow struct {
	Kind          string
	EntityCode    string
	AttributeCode string
	Name          string
	Description   string
	Datatype      string
	Format        string
	Codelist      string
}

// ExampleCode is one codelist item of an example set
type ExampleCode struct {
	Codelist    string
	Code        string
	Description string
	Active      string
}

// Categories lists the valid arguments of GetExamples
var Categories = []string{"insurance", "datatypes", "all"}

// GetExamples returns example sets for the given category
func GetExamples(category string) []ExampleSet {
	switch category {
	case "insurance":
		sets := getInsuranceExamples()
		for i := range sets {
			sets[i].Category = "insurance"
		}
		return sets
	case "datatypes":
		sets := getDatatypeExamples()
		for i := range sets {
			sets[i].Category = "datatypes"
		}
		return sets
	case "all":
		var all []ExampleSet
		all = append(all, GetExamples("insurance")...)
		all = append(all, GetExamples("datatypes")...)
		return all
	default:
		return []ExampleSet{}
	}
}

type exampleFile struct {
	name      string
	records   [][]string
	delimiter rune
}

// Install writes the catalog and codelist files of set into dir. Existing
// files are kept unless force is set. It returns the written paths.
func Install(dir string, set ExampleSet, force bool) ([]string, error) {
	targets := []exampleFile{{set.CatalogFile, files.CatalogRecords(set.catalogRows()), ','}}
	if set.CodelistFile != "" {
		ids, codelists := set.codelists()
		targets = append(targets, exampleFile{set.CodelistFile, files.CodelistRecords(ids, codelists), files.CodelistDelimiter})
	}

	if !force {
		for _, t := range targets {
			if _, err := os.Stat(filepath.Join(dir, t.name)); err == nil {
				return nil, fmt.Errorf("%s already exists", t.name)
			}
		}
	}

	var written []string
	for _, t := range targets {
		path := filepath.Join(dir, t.name)
		if err := files.WriteRecords(path, t.records, t.delimiter); err != nil {
			return written, err
		}
		written = append(written, path)
	}

	return written, nil
}

func (set ExampleSet) catalogRows() []models.Row {
	rows := make([]models.Row, 0, len(set.Rows))
	for _, r := range set.Rows {
		fields := models.Fields{
			EntityCode:  r.EntityCode,
			Name:        r.Name,
			Description: r.Description,
			Datatype:    r.Datatype,
			Format:      r.Format,
			CodelistID:  r.Codelist,
		}
		if r.Kind == string(models.KindEntity) {
			rows = append(rows, &models.Entity{Fields: fields})
		} else {
			rows = append(rows, &models.Attribute{Fields: fields, AttributeCode: r.AttributeCode})
		}
	}
	return rows
}

// codelists groups the example codes, keeping the ids in first-seen order
func (set ExampleSet) codelists() ([]string, models.Codelists) {
	var ids []string
	codelists := models.Codelists{}
	for _, c := range set.Codelists {
		if _, ok := codelists[c.Codelist]; !ok {
			ids = append(ids, c.Codelist)
		}
		codelists[c.Codelist] = append(codelists[c.Codelist], models.CodeItem{
			Code:        c.Code,
			Description: c.Description,
			Active:      models.ParseActiveFlag(c.Active),
		})
	}
	return ids, codelists
}
