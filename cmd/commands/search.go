package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Query       QueryOutput         `json:"query" yaml:"query"`
	Count       int                 `json:"count" yaml:"count"`
	Results     []SearchGroupOutput `json:"results" yaml:"results"`
	Suggestions []RowOutput         `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// QueryOutput is the effective query after filter reconciliation
type QueryOutput struct {
	Term     string `json:"term" yaml:"term"`
	Mode     string `json:"mode" yaml:"mode"`
	Type     string `json:"type" yaml:"type"`
	Datatype string `json:"datatype" yaml:"datatype"`
	Entity   string `json:"entity" yaml:"entity"`
}

// SearchGroupOutput is one top-level result: an entity with its matching
// attributes, an orphan attribute, or a flat attribute row
type SearchGroupOutput struct {
	RowOutput      `yaml:",inline"`
	Orphan         bool        `json:"orphan,omitempty" yaml:"orphan,omitempty"`
	AttributeCount int         `json:"attribute_count,omitempty" yaml:"attribute_count,omitempty"`
	Attributes     []RowOutput `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

var (
	searchFlags  cli.QueryFlags
	searchLimit  int
	searchNoDesc bool
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search entities and attributes",
		Long: `Search the catalog by name, description, entity code and attribute code.

Attributes are grouped under their entity. Attributes whose entity is not
part of the result are listed separately.

Query Syntax:
  klant                - Rows containing "klant" (case-insensitive)
  type:A               - Only attributes (type:E for entities)
  dt:A0                - Only rows with datatype A0
  entity:KLT           - Only rows of entity KLT
  mode:wildcard k*naam - Wildcard search (* and ?)
  mode:regex ^klant    - Regular expression search

Filters in the query override the corresponding flags.

Examples:
  # Find everything about customers
  afd search klant

  # Attributes with datatype A0 of entity KLT
  afd search --type attribute --datatype A0 --entity KLT

  # Wildcard search, as JSON
  afd search "mode:wildcard *nummer" -o json`,
		RunE: runSearch,
	}

	searchFlags.Register(cmd)
	cmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "Show at most this many results (0 = all)")
	cmd.Flags().BoolVar(&searchNoDesc, "no-descriptions", false, "Hide descriptions in text output")
	cli.RegisterQueryCompletions(cmd)

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	base, err := ctx.BuildQuery("", searchFlags)
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
		cli.PrintWarning("invalid %s pattern %q: %v", q.Mode, q.SearchTerm, result.MatchErr)
	}
	if q.HasEntity() && !result.Query.HasEntity() {
		cli.PrintWarning("entity %s has no matching rows, entity filter ignored", q.Entity)
	}

	output := newSearchResultOutput(result, searchLimit)

	if cli.IsStructured(ctx.OutputFormat()) {
		return cli.OutputResults(cmd.OutOrStdout(), ctx.OutputFormat(), output)
	}
	showDesc := ctx.Settings.UI.ShowDescriptions && !searchNoDesc
	return outputSearchText(cmd.OutOrStdout(), result, output, showDesc)
}

func newSearchResultOutput(result search.Result, limit int) SearchResultOutput {
	q := result.Query
	output := SearchResultOutput{
		Query: QueryOutput{
			Term:     q.SearchTerm,
			Mode:     string(q.Mode),
			Type:     string(q.Type),
			Datatype: q.Datatype,
			Entity:   q.Entity,
		},
		Count:       len(result.Filtered),
		Results:     []SearchGroupOutput{},
		Suggestions: newRowOutputs(result.Suggestions),
	}

	for i, item := range result.Grouped {
		if limit > 0 && i >= limit {
			break
		}
		group := SearchGroupOutput{RowOutput: newRowOutput(item.Row())}
		switch it := item.(type) {
		case *search.GroupedEntity:
			group.AttributeCount = it.AttributeCount
			for _, attr := range it.Attributes {
				group.Attributes = append(group.Attributes, newRowOutput(attr))
			}
		case *search.OrphanAttribute:
			group.Orphan = true
		}
		output.Results = append(output.Results, group)
	}

	return output
}

func outputSearchText(w io.Writer, result search.Result, output SearchResultOutput, showDesc bool) error {
	q := result.Query

	if output.Count == 0 {
		cli.PrintInfo("No results found for query: %s", search.Format(q))
		printSuggestions(w, result.Suggestions)
		return nil
	}

	fmt.Fprintf(w, "\nSearch Results for: %s\n", search.Format(q))
	fmt.Fprintln(w, strings.Repeat("-", 80))

	table := cli.NewTableFormatter(w)
	table.Header("Code", "Name", "Datatype", "Codelist")

	for i, item := range result.Grouped {
		if searchLimit > 0 && i >= searchLimit {
			break
		}
		switch it := item.(type) {
		case *search.GroupedEntity:
			name := fmt.Sprintf("%s (%d attributes)", highlight(it.Entity.Name, q), it.AttributeCount)
			table.Row(highlight(it.Entity.EntityCode, q), name, "", "")
			if showDesc && it.Entity.Description != "" {
				table.Row("", "  "+cli.TruncateString(it.Entity.Description, 70), "", "")
			}
			for _, attr := range it.Attributes {
				table.Row("  └─ "+highlight(attr.AttributeCode, q), highlight(attr.Name, q),
					cli.Dash(cli.ColorizeDatatype(attr.Datatype)), cli.Dash(attr.CodelistID))
			}
		case *search.OrphanAttribute:
			attr := it.Attribute
			table.Row(highlight(attr.Key(), q), highlight(attr.Name, q)+" [entity not shown]",
				cli.Dash(cli.ColorizeDatatype(attr.Datatype)), cli.Dash(attr.CodelistID))
		case *search.FlatRow:
			row := it.Value
			table.Row(highlight(row.Key(), q), highlight(row.Common().Name, q),
				cli.Dash(cli.ColorizeDatatype(row.Common().Datatype)), cli.Dash(row.Common().CodelistID))
		}
	}
	table.Flush()

	fmt.Fprintf(w, "\nTotal: %d results\n", output.Count)
	if searchLimit > 0 && len(result.Grouped) > searchLimit {
		fmt.Fprintf(w, "Showing the first %d of %d groups (use --limit 0 for all)\n", searchLimit, len(result.Grouped))
	}
	printSuggestions(w, result.Suggestions)

	return nil
}

func printSuggestions(w io.Writer, suggestions []models.Row) {
	if len(suggestions) == 0 {
		return
	}
	names := make([]string, 0, len(suggestions))
	for _, row := range suggestions {
		names = append(names, fmt.Sprintf("%s (%s)", row.Common().Name, row.Key()))
	}
	fmt.Fprintf(w, "Also contains the term: %s\n", strings.Join(names, ", "))
}
