package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/catalog"
)

// StatsOutput summarizes the loaded catalog
type StatsOutput struct {
	Catalog   string          `json:"catalog" yaml:"catalog"`
	Codelists string          `json:"codelists" yaml:"codelists"`
	Stats     catalog.Stats   `json:"stats" yaml:"stats"`
	Datatypes int             `json:"datatypes" yaml:"datatypes"`
	Issues    []catalog.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
}

var statsShowIssues bool

// NewStatsCommand creates the stats command
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics and data quality issues",
		Long: `Show the number of rows, entities, attributes and codelists in the catalog.

Rows that were skipped or flagged while loading (unknown row type, missing
codes, duplicate keys) are counted; use --issues to list them.`,
		Args: cobra.NoArgs,
		RunE: runStats,
	}

	cmd.Flags().BoolVar(&statsShowIssues, "issues", false, "List every data quality issue")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	store, err := ctx.Store()
	if err != nil {
		return err
	}

	output := StatsOutput{
		Catalog:   ctx.CatalogPath(),
		Codelists: ctx.CodelistsPath(),
		Stats:     store.Stats(),
		Datatypes: len(store.Datatypes()),
	}
	if statsShowIssues || cli.IsStructured(ctx.OutputFormat()) {
		output.Issues = store.Issues()
	}

	if cli.IsStructured(ctx.OutputFormat()) {
		return cli.OutputResults(cmd.OutOrStdout(), ctx.OutputFormat(), output)
	}

	w := cmd.OutOrStdout()
	s := output.Stats
	table := cli.NewTableFormatter(w)
	table.Row("Catalog:", output.Catalog)
	table.Row("Rows:", fmt.Sprintf("%d", s.Total))
	table.Row("Entities:", fmt.Sprintf("%d", s.Entities))
	table.Row("Attributes:", fmt.Sprintf("%d", s.Attributes))
	table.Row("Without entity:", fmt.Sprintf("%d", s.DanglingAttributes))
	table.Row("Datatypes:", fmt.Sprintf("%d", output.Datatypes))
	table.Row("Codelists:", fmt.Sprintf("%d", s.Codelists))
	table.Flush()

	issues := store.Issues()
	if len(issues) == 0 {
		return nil
	}

	counts := catalog.CountIssues(issues)
	fmt.Fprintf(w, "\nIssues: %d\n", len(issues))
	for _, kind := range []catalog.IssueKind{
		catalog.IssueUnknownKind,
		catalog.IssueMissingCode,
		catalog.IssueDuplicateEntity,
		catalog.IssueDuplicateAttribute,
	} {
		if n := counts[kind]; n > 0 {
			fmt.Fprintf(w, "  %-20s %d\n", kind, n)
		}
	}

	if statsShowIssues {
		fmt.Fprintln(w)
		for _, issue := range issues {
			fmt.Fprintf(w, "  %s\n", issue)
		}
	} else {
		cli.PrintInfo("Run 'afd stats --issues' to list them")
	}

	return nil
}
