package files

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/afdtools/afd-catalog/pkg/catalog"
)

func TestGuessDelimiter(t *testing.T) {
	tests := []struct {
		name string
		line string
		want rune
	}{
		{name: "comma", line: "Entiteit/Attribuut,Entiteitcode,Naam", want: ','},
		{name: "tab", line: "Entiteit/Attribuut\tEntiteitcode\tNaam", want: '\t'},
		{name: "pipe", line: "Entiteit/Attribuut|Entiteitcode|Naam", want: '|'},
		{name: "semicolon", line: "Entiteit/Attribuut;Entiteitcode;Naam", want: ';'},
		{name: "quoted commas ignored", line: `"a,b,c";d;e`, want: ';'},
		{name: "tie goes to earlier candidate", line: "a,b;c", want: ','},
		{name: "no delimiter", line: "Naam", want: ','},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GuessDelimiter(tt.line); got != tt.want {
				t.Errorf("GuessDelimiter(%q) = %q, want %q", tt.line, got, tt.want)
			}
		})
	}
}

func TestReadCatalog(t *testing.T) {
	input := "\ufeff Entiteit/Attribuut ;Entiteitcode;Attribuutcode;Naam;Omschrijving;Datatype\n" +
		"E;KLT;;Klant;\"Een klant; of prospect\";\n" +
		"\n" +
		"A;KLT;NAAM;Klantnaam;;A0\n" +
		";;;;;\n" +
		"A;KLT;ACTF;Actief\n"

	rows, err := ReadCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCatalog failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	if got := rows[0][catalog.ColumnKind]; got != "E" {
		t.Errorf("kind column = %q, header should be trimmed and BOM removed", got)
	}
	if got := rows[0][catalog.ColumnDescription]; got != "Een klant; of prospect" {
		t.Errorf("description = %q", got)
	}
	if got := rows[1][catalog.ColumnDatatype]; got != "A0" {
		t.Errorf("datatype = %q", got)
	}
	if _, ok := rows[2][catalog.ColumnDatatype]; ok {
		t.Error("short record should not have a datatype column")
	}
}

func TestReadCatalogEmpty(t *testing.T) {
	_, err := ReadCatalog(strings.NewReader("\n\n"))
	if !errors.Is(err, ErrEmptySource) {
		t.Errorf("expected ErrEmptySource, got %v", err)
	}
}

func TestReadCodelists(t *testing.T) {
	input := "Codelijst;Code;Omschrijving;Actief\nCL1;J;Ja;J\n\nCL1;N;Nee;N\nCL2;01\n"

	records, err := ReadCodelists(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadCodelists failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("got %d records, want 4 (header included)", len(records))
	}

	codelists := catalog.BuildCodelists(records)
	if len(codelists["CL1"]) != 2 || len(codelists["CL2"]) != 1 {
		t.Errorf("unexpected codelists %v", codelists)
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "data.csv", want: FormatCSV},
		{path: "DATA.TSV", want: FormatCSV},
		{path: "afd.xlsx", want: FormatXLSX},
		{path: "afd.json", wantErr: true},
		{path: "noext", wantErr: true},
	}

	for _, tt := range tests {
		got, err := DetectFormat(tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("DetectFormat(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("DetectFormat(%q) = %v, %v", tt.path, got, err)
		}
	}
}

func TestReadCatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	content := "Entiteit/Attribuut\tEntiteitcode\tNaam\nE\tKLT\tKlant\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadCatalogFile(path)
	if err != nil {
		t.Fatalf("ReadCatalogFile failed: %v", err)
	}
	if len(rows) != 1 || rows[0][catalog.ColumnName] != "Klant" {
		t.Errorf("unexpected rows %v", rows)
	}

	if _, err := ReadCatalogFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
