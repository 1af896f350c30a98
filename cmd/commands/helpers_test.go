package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/internal/logger"
)

const testCatalogCSV = `Entiteit/Attribuut,Entiteitcode,Attribuutcode,Naam,Omschrijving,Datatype,Formaat,Codelijst
E,KLT,,Klant,Een persoon of organisatie,,,
A,KLT,NAAM,Klantnaam,,A0,,
A,KLT,ACTF,Actief,,JN,,CL1
E,POL,,Polis,Verzekeringsovereenkomst,,,
A,POL,NR,Polisnummer,,A0,,
A,POL,KLT,Klant van polis,,A0,,
A,ADR,STR,Straatnaam,,A0,,
`

const testCodelistsCSV = `Codelijst;Code;Omschrijving;Actief
CL1;J;Ja;J
CL1;N;Nee;J
CL1;O;Onbekend;N
`

// setupCatalogDir writes the test catalog into a temporary directory and
// makes it the working directory for the rest of the test
func setupCatalogDir(t *testing.T, catalogCSV string) string {
	t.Helper()

	tempDir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "data.csv"), []byte(catalogCSV), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tempDir, "Codelist.afm.csv"), []byte(testCodelistsCSV), 0644))

	return tempDir
}

// chdirTemp makes a fresh temporary directory the working directory
func chdirTemp(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	originalDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() {
		os.Chdir(originalDir)
	})
	return tempDir
}

// execute runs the afd command tree with args and returns everything it
// printed, including status lines
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	cli.SetOutput(strings.NewReader(""), buf, buf)
	logger.SetOutput(buf)
	t.Cleanup(func() {
		cli.SetOutput(os.Stdin, os.Stdout, os.Stderr)
		cli.SetGlobalFlags(false, false, false)
		logger.SetOutput(os.Stderr)
	})

	cmd := NewRootCommand("test")
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return buf.String(), err
}
