package search

import (
	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
)

func entity(code, name, desc string) *models.Entity {
	return &models.Entity{Fields: models.Fields{EntityCode: code, Name: name, Description: desc}}
}

func attribute(entityCode, code, name, datatype string) *models.Attribute {
	return &models.Attribute{
		Fields:        models.Fields{EntityCode: entityCode, Name: name, Datatype: datatype},
		AttributeCode: code,
	}
}

// testRows returns a small catalog: two entities with attributes and one
// attribute (ADR_STR) whose entity does not exist
func testRows() []models.Row {
	actief := attribute("KLT", "ACTF", "Actief", "JN")
	actief.CodelistID = "CL1"

	return []models.Row{
		entity("KLT", "Klant", "Een persoon of organisatie"),
		attribute("KLT", "NAAM", "Klantnaam", "A0"),
		actief,
		entity("POL", "Polis", "Verzekeringsovereenkomst"),
		attribute("POL", "NR", "Polisnummer", "A0"),
		attribute("POL", "KLT", "Klant van polis", "A0"),
		attribute("ADR", "STR", "Straatnaam", "A0"),
	}
}

func testCodelists() models.Codelists {
	return models.Codelists{
		"CL1": {
			{Code: "J", Description: "Yes", Active: models.ActiveYes},
			{Code: "N", Description: "No", Active: models.ActiveYes},
		},
	}
}

func newTestStore() *catalog.Store {
	return catalog.NewStoreFromRows(testRows(), testCodelists())
}

func keys(rows []models.Row) []string {
	result := make([]string, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.Key())
	}
	return result
}
