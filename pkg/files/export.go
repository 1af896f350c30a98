package files

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
)

// CatalogHeader is the column order written by the export functions
var CatalogHeader = []string{
	catalog.ColumnKind,
	catalog.ColumnEntityCode,
	catalog.ColumnAttributeCode,
	catalog.ColumnName,
	catalog.ColumnDescription,
	catalog.ColumnDatatype,
	catalog.ColumnFormat,
	catalog.ColumnCodelist,
}

// CodelistHeader is the header row written before codelist records
var CodelistHeader = []string{"Codelijst", "Code", "Omschrijving", "Actief"}

// CatalogRecords converts rows to records in CatalogHeader order, header
// first
func CatalogRecords(rows []models.Row) [][]string {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, CatalogHeader)
	for _, row := range rows {
		c := row.Common()
		records = append(records, []string{
			string(row.Kind()),
			c.EntityCode,
			models.AttributeCodeOf(row),
			c.Name,
			c.Description,
			c.Datatype,
			c.Format,
			c.CodelistID,
		})
	}
	return records
}

// CodelistRecords converts the codelists named by ids to records, header
// first. Unknown ids are skipped.
func CodelistRecords(ids []string, codelists models.Codelists) [][]string {
	records := [][]string{CodelistHeader}
	for _, id := range ids {
		for _, item := range codelists[id] {
			records = append(records, []string{id, item.Code, item.Description, activeFlagValue(item.Active)})
		}
	}
	return records
}

func activeFlagValue(a models.ActiveFlag) string {
	switch a {
	case models.ActiveYes:
		return "J"
	case models.ActiveNo:
		return "N"
	default:
		return ""
	}
}

// WriteRecords writes records to path. The format follows the extension:
// xlsx files get a single sheet, CSV files use delimiter.
func WriteRecords(path string, records [][]string, delimiter rune) error {
	format, err := DetectFormat(path)
	if err != nil {
		return err
	}

	if format == FormatXLSX {
		return writeSheet(path, records)
	}

	var buf bytes.Buffer
	if err := EncodeRecords(&buf, records, delimiter); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return WriteFile(path, buf.String())
}

// EncodeRecords writes records as delimited text
func EncodeRecords(w io.Writer, records [][]string, delimiter rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = delimiter
	return cw.WriteAll(records)
}
