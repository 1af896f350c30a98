package examples

import (
	"sort"

	"github.com/afdtools/afd-catalog/pkg/models"
)

// getDatatypeExamples builds one attribute per known datatype, so every
// datatype badge and label can be seen in the browser
func getDatatypeExamples() []ExampleSet {
	codes := make([]string, 0, len(models.KnownDatatypes))
	for code := range models.KnownDatatypes {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := []ExampleRow{
		{Kind: "E", EntityCode: "DT", Name: "Datatypen", Description: "Een attribuut per bekend datatype"},
	}
	for _, code := range codes {
		info := models.KnownDatatypes[code]
		rows = append(rows, ExampleRow{
			Kind:          "A",
			EntityCode:    "DT",
			AttributeCode: code,
			Name:          info.Label + " " + code,
			Description:   info.Description,
			Datatype:      code,
			Format:        info.Example,
		})
	}

	return []ExampleSet{
		{
			Name:        "Datatypen",
			Description: "Alle bekende datatypen met hun label en voorbeeld",
			CatalogFile: "datatypes.csv",
			Rows:        rows,
		},
	}
}
