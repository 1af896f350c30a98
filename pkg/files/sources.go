package files

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/afdtools/afd-catalog/pkg/catalog"
)

// DelimitersToGuess are the catalog delimiters tried in order of preference
var DelimitersToGuess = []rune{',', '\t', '|', ';'}

// CodelistDelimiter separates codelist columns
const CodelistDelimiter = ';'

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Format identifies a source file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat picks the format from the file extension
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt", ".tsv":
		return FormatCSV, nil
	case ".xlsx", ".xlsm":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ReadCatalogFile reads catalog rows from a CSV or xlsx file
func ReadCatalogFile(path string) ([]catalog.RawRow, error) {
	records, err := readSource(path, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	return recordsToRawRows(records)
}

// ReadCatalog parses a delimited catalog with a header row. The delimiter
// is guessed from the header; header names are trimmed.
func ReadCatalog(r io.Reader) ([]catalog.RawRow, error) {
	records, err := readDelimited(r, 0)
	if err != nil {
		return nil, err
	}
	return recordsToRawRows(records)
}

// ReadCodelistFile reads codelist records from a CSV or xlsx file
func ReadCodelistFile(path string) ([]catalog.CodelistRecord, error) {
	records, err := readSource(path, CodelistDelimiter)
	if err != nil {
		return nil, fmt.Errorf("failed to read codelists %s: %w", path, err)
	}
	return toCodelistRecords(records), nil
}

// ReadCodelists parses `;`-separated codelist records. The header row is
// returned too; catalog.BuildCodelists skips it.
func ReadCodelists(r io.Reader) ([]catalog.CodelistRecord, error) {
	records, err := readDelimited(r, CodelistDelimiter)
	if err != nil {
		return nil, err
	}
	return toCodelistRecords(records), nil
}

// readSource reads the records of a CSV or xlsx file. A zero delimiter
// is guessed from the first line.
func readSource(path string, delimiter rune) ([][]string, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	if format == FormatXLSX {
		return readFirstSheet(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readDelimited(f, delimiter)
}

// GuessDelimiter returns the candidate that occurs most often in line
// outside of quotes. Ties go to the earlier candidate; a line without any
// candidate yields a comma.
func GuessDelimiter(line string) rune {
	counts := make(map[rune]int, len(DelimitersToGuess))
	inQuotes := false
	for _, r := range line {
		if r == '"' {
			inQuotes = !inQuotes
			continue
		}
		if !inQuotes {
			counts[r]++
		}
	}

	best, bestCount := DelimitersToGuess[0], 0
	for _, d := range DelimitersToGuess {
		if counts[d] > bestCount {
			best, bestCount = d, counts[d]
		}
	}
	return best
}

func firstLine(content []byte) string {
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) != "" {
			return strings.TrimRight(line, "\r")
		}
	}
	return ""
}

// readDelimited reads all records, skipping blank lines. A zero delimiter
// is guessed from the first line.
func readDelimited(r io.Reader, delimiter rune) ([][]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	content = bytes.TrimPrefix(content, utf8BOM)
	if delimiter == 0 {
		delimiter = GuessDelimiter(firstLine(content))
	}

	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		if isBlank(record) {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// recordsToRawRows keys each record by the trimmed header names
func recordsToRawRows(records [][]string) ([]catalog.RawRow, error) {
	if len(records) == 0 {
		return nil, ErrEmptySource
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}

	rows := make([]catalog.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		if isBlank(record) {
			continue
		}
		row := make(catalog.RawRow, len(header))
		for i, value := range record {
			if i < len(header) && header[i] != "" {
				row[header[i]] = value
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func toCodelistRecords(records [][]string) []catalog.CodelistRecord {
	result := make([]catalog.CodelistRecord, 0, len(records))
	for _, record := range records {
		if isBlank(record) {
			continue
		}
		result = append(result, catalog.CodelistRecord(record))
	}
	return result
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
