package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/files"
	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

var (
	exportFlags     cli.QueryFlags
	exportToFile    string
	exportCodelists string
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [query]",
		Short: "Export matching rows as a catalog file",
		Long: `Export the rows matching a query in the catalog source layout.

The query uses the same syntax and flags as 'afd search'; without a query
every row is exported. Rows keep their catalog order.

By default the rows are written to stdout as CSV. With --file the format
follows the extension (.csv or .xlsx). The codelists referenced by the
exported rows can be written alongside with --codelists.

Examples:
  # Export everything about policies to stdout
  afd export polis

  # Export the attributes of entity KLT to a workbook
  afd export --entity KLT --type attribute --file klt.xlsx

  # Export a subset together with its codelists
  afd export dt:JN --file subset.csv --codelists subset-codes.csv

  # Export as JSON
  afd export entity:POL -o json`,
		RunE: runExport,
	}

	exportFlags.Register(cmd)
	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Export to file instead of stdout (.csv or .xlsx)")
	cmd.Flags().StringVar(&exportCodelists, "codelists", "", "Also write the referenced codelists to this file")
	cli.RegisterQueryCompletions(cmd)

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	base, err := ctx.BuildQuery("", exportFlags)
	if err != nil {
		return err
	}
	q, err := search.NewParser().Parse(strings.Join(args, " "), base)
	if err != nil {
		return err
	}
	if err := cli.ValidateDatatype(engine.Store(), q.Datatype); err != nil {
		return err
	}

	result := engine.Run(q)
	if result.MatchErr != nil {
		return fmt.Errorf("invalid %s pattern %q: %w", q.Mode, q.SearchTerm, result.MatchErr)
	}
	rows := result.Filtered

	if exportCodelists != "" {
		ids := referencedCodelists(rows, engine.Store().HasCodelist)
		records := files.CodelistRecords(ids, engine.Store().Codelists())
		if err := files.WriteRecords(exportCodelists, records, files.CodelistDelimiter); err != nil {
			return fmt.Errorf("failed to export codelists: %w", err)
		}
		cli.PrintSuccess("%d codelists exported to: %s", len(ids), exportCodelists)
	}

	if exportToFile != "" {
		if err := files.WriteRecords(exportToFile, files.CatalogRecords(rows), ','); err != nil {
			return fmt.Errorf("failed to export rows: %w", err)
		}
		cli.PrintSuccess("%d rows exported to: %s", len(rows), exportToFile)
		return nil
	}

	if cli.IsStructured(ctx.OutputFormat()) {
		return cli.OutputResults(cmd.OutOrStdout(), ctx.OutputFormat(), newRowOutputs(rows))
	}
	return files.EncodeRecords(cmd.OutOrStdout(), files.CatalogRecords(rows), ',')
}

// referencedCodelists returns the loaded codelist ids used by rows, in
// first-use order
func referencedCodelists(rows []models.Row, loaded func(string) bool) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, row := range rows {
		id := row.Common().CodelistID
		if id == "" || seen[id] || !loaded(id) {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}
