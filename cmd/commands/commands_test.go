package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestQueryCommands(t *testing.T) {
	setupCatalogDir(t, testCatalogCSV)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "search groups attributes under their entity",
			args:     []string{"search", "polis"},
			contains: []string{"Search Results for: polis", "POL", "Polis (2 attributes)", "Polisnummer", "Klant van polis", "Total: 3 results"},
			excludes: []string{"Klantnaam"},
		},
		{
			name:     "search lists attributes without their entity separately",
			args:     []string{"search", "klant"},
			contains: []string{"KLT", "Klantnaam", "POL_KLT", "[entity not shown]"},
			excludes: []string{"Polisnummer"},
		},
		{
			name:     "type filter from the query",
			args:     []string{"search", "type:E"},
			contains: []string{"Klant", "Polis", "Total: 2 results"},
			excludes: []string{"Straatnaam"},
		},
		{
			name:     "datatype and entity flags",
			args:     []string{"search", "--datatype", "JN", "--entity", "KLT"},
			contains: []string{"ACTF", "Total: 1 results"},
			excludes: []string{"NAAM"},
		},
		{
			name:     "wildcard mode",
			args:     []string{"search", "mode:wildcard", "*nummer"},
			contains: []string{"Polisnummer", "Total: 1 results"},
		},
		{
			name:     "no results",
			args:     []string{"search", "zzz"},
			contains: []string{"No results found for query: zzz"},
		},
		{
			name:     "limit",
			args:     []string{"search", "--limit", "1"},
			contains: []string{"Showing the first 1 of"},
		},
		{
			name:     "entities",
			args:     []string{"entities"},
			contains: []string{"ADR", "KLT", "Klant", "POL", "Polis", "Total: 3 entities"},
		},
		{
			name:     "entities follow the type filter",
			args:     []string{"entities", "type:E"},
			contains: []string{"KLT", "POL", "Total: 2 entities"},
			excludes: []string{"ADR"},
		},
		{
			name:     "suggest",
			args:     []string{"suggest", "naam"},
			contains: []string{"KLT_NAAM", "Klantnaam", "ADR_STR", "Straatnaam"},
		},
		{
			name:     "suggest needs two characters",
			args:     []string{"suggest", "n"},
			contains: []string{"No suggestions for: n"},
		},
		{
			name:     "codelist overview",
			args:     []string{"codelist"},
			contains: []string{"Codelist", "CL1", "3"},
		},
		{
			name:     "codelist items",
			args:     []string{"codelist", "CL1"},
			contains: []string{"Codelist: CL1", "Onbekend", "yes", "no", "Total: 3 codes"},
		},
		{
			name:     "codelist filter",
			args:     []string{"codelist", "CL1", "--filter", "nee"},
			contains: []string{"Nee", "Total: 1 codes"},
			excludes: []string{"Onbekend"},
		},
		{
			name:     "show entity",
			args:     []string{"show", "KLT"},
			contains: []string{"Entity: KLT", "Name:        Klant", "Een persoon of organisatie", "Attributes (2):", "ACTF"},
		},
		{
			name:     "show attribute with codelist",
			args:     []string{"show", "KLT_ACTF", "--link-base", "https://afd.example/"},
			contains: []string{"Attribute: KLT_ACTF", "Entity:      KLT (Klant)", "Ja/Nee", "CL1 (3 codes)", "Codes of CL1:", "https://afd.example/?attribute=ACTF&entity=KLT"},
		},
		{
			name:     "show resolves a direct link",
			args:     []string{"show", "--link", "https://afd.example/?entity=POL&attribute=NR"},
			contains: []string{"Attribute: POL_NR", "Polisnummer"},
		},
		{
			name:     "stats",
			args:     []string{"stats"},
			contains: []string{"Rows:", "7", "Entities:", "Attributes:", "Without entity:", "Codelists:"},
			excludes: []string{"Issues:"},
		},
		{
			name:     "datatypes",
			args:     []string{"datatypes"},
			contains: []string{"A0", "JN", "Ja/Nee", "4"},
		},
		{
			name:     "version",
			args:     []string{"version"},
			contains: []string{"afd version test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, tt.args...)
			require.NoError(t, err)

			for _, expected := range tt.contains {
				assert.Contains(t, output, expected, "output should contain %q", expected)
			}
			for _, unexpected := range tt.excludes {
				assert.NotContains(t, output, unexpected, "output should not contain %q", unexpected)
			}
		})
	}
}

func TestCommandErrors(t *testing.T) {
	setupCatalogDir(t, testCatalogCSV)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown key", []string{"show", "XYZ"}, "no entity or attribute found"},
		{"show needs a key", []string{"show"}, "accepts 1 arg"},
		{"unknown codelist", []string{"codelist", "CL9"}, "codelist 'CL9' not found"},
		{"unknown datatype", []string{"search", "--datatype", "ZZ"}, "ZZ"},
		{"invalid type flag", []string{"search", "--type", "x"}, "invalid type filter"},
		{"invalid output format", []string{"search", "-o", "xml"}, "xml"},
		{"missing catalog", []string{"search", "--catalog", "missing.csv"}, "catalog not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSearchStructuredOutput(t *testing.T) {
	setupCatalogDir(t, testCatalogCSV)

	output, err := execute(t, "search", "polis", "-o", "json")
	require.NoError(t, err)

	var result SearchResultOutput
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, "polis", result.Query.Term)
	assert.Equal(t, "normal", result.Query.Mode)
	assert.Equal(t, 3, result.Count)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "POL", result.Results[0].Key)
	assert.Equal(t, 2, result.Results[0].AttributeCount)
	require.Len(t, result.Results[0].Attributes, 2)
	assert.Equal(t, "POL_NR", result.Results[0].Attributes[0].Key)

	output, err = execute(t, "search", "klant", "-o", "yaml")
	require.NoError(t, err)

	var yamlResult SearchResultOutput
	require.NoError(t, yaml.Unmarshal([]byte(output), &yamlResult))
	require.NotEmpty(t, yamlResult.Results)

	var orphan *SearchGroupOutput
	for i := range yamlResult.Results {
		if yamlResult.Results[i].Key == "POL_KLT" {
			orphan = &yamlResult.Results[i]
		}
	}
	require.NotNil(t, orphan, "POL_KLT should be listed on its own")
	assert.True(t, orphan.Orphan)
}

func TestStatsReportsIssues(t *testing.T) {
	setupCatalogDir(t, testCatalogCSV+"E,KLT,,Klant dubbel,,,,\nX,KLT,Z,Onbekend soort,,,,\n")

	output, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, output, "Issues: 2")
	assert.Contains(t, output, "duplicate_entity")
	assert.Contains(t, output, "afd stats --issues")

	output, err = execute(t, "stats", "--issues")
	require.NoError(t, err)
	assert.Contains(t, output, "entity KLT defined more than once")
}

func TestInitCommand(t *testing.T) {
	tempDir := t.TempDir()

	output, err := execute(t, "init", tempDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Created")

	content, err := os.ReadFile(filepath.Join(tempDir, ".afd.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "data.csv")
	assert.Contains(t, string(content), "Codelist.afm.csv")

	// an existing file is only overwritten after confirmation
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".afd.yaml"), []byte("custom: true\n"), 0644))
	output, err = execute(t, "init", tempDir)
	require.NoError(t, err)
	assert.Contains(t, output, "Keeping existing settings")

	content, err = os.ReadFile(filepath.Join(tempDir, ".afd.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "custom: true\n", string(content))

	_, err = execute(t, "init", tempDir, "--yes")
	require.NoError(t, err)
	content, err = os.ReadFile(filepath.Join(tempDir, ".afd.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "data.csv")
}

func TestSettingsFileIsUsed(t *testing.T) {
	dir := setupCatalogDir(t, testCatalogCSV)
	require.NoError(t, os.Rename(filepath.Join(dir, "data.csv"), filepath.Join(dir, "afd.csv")))

	settings := "data:\n  catalog: afd.csv\nsearch:\n  mode: wildcard\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".afd.yaml"), []byte(settings), 0644))

	output, err := execute(t, "search", "*nummer", "-o", "json")
	require.NoError(t, err)

	var result SearchResultOutput
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, "wildcard", result.Query.Mode)
	assert.Equal(t, 1, result.Count)
}
