package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
)

// CodelistOutput is a codelist with its (filtered) items
type CodelistOutput struct {
	ID    string            `json:"id" yaml:"id"`
	Count int               `json:"count" yaml:"count"`
	Items []models.CodeItem `json:"items" yaml:"items"`
}

// CodelistSummary is one line of the codelist overview
type CodelistSummary struct {
	ID    string `json:"id" yaml:"id"`
	Items int    `json:"items" yaml:"items"`
}

var codelistFilter string

// NewCodelistCommand creates the codelist command
func NewCodelistCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "codelist [id]",
		Short: "List codelists or show the codes of one codelist",
		Long: `Without an argument, list all codelists with their number of codes.
With a codelist id, show its codes, optionally filtered on code or
description.

Examples:
  # Overview
  afd codelist

  # Codes of codelist CL1 containing "ja"
  afd codelist CL1 --filter ja`,
		Aliases:           []string{"cl"},
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cli.CodeCompletionFunc(catalog.CodeCodelist),
		RunE:              runCodelist,
	}

	cmd.Flags().StringVarP(&codelistFilter, "filter", "f", "", "Only codes whose code or description contains this text")

	return cmd
}

func runCodelist(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	store := engine.Store()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		summaries := []CodelistSummary{}
		for _, id := range store.CodelistIDs() {
			summaries = append(summaries, CodelistSummary{ID: id, Items: len(store.Codelists()[id])})
		}
		if cli.IsStructured(ctx.OutputFormat()) {
			return cli.OutputResults(out, ctx.OutputFormat(), summaries)
		}
		if len(summaries) == 0 {
			cli.PrintInfo("No codelists loaded")
			return nil
		}
		table := cli.NewTableFormatter(out)
		table.Header("Codelist", "Codes")
		for _, s := range summaries {
			table.Row(s.ID, fmt.Sprintf("%d", s.Items))
		}
		table.Flush()
		return nil
	}

	id := args[0]
	if !store.HasCodelist(id) {
		return fmt.Errorf("codelist '%s' not found", id)
	}

	items := engine.Codelist(id, codelistFilter)
	output := CodelistOutput{ID: id, Count: len(items), Items: items}

	if cli.IsStructured(ctx.OutputFormat()) {
		return cli.OutputResults(out, ctx.OutputFormat(), output)
	}

	fmt.Fprintf(out, "\nCodelist: %s\n", id)
	fmt.Fprintln(out, "--------")
	if len(items) == 0 {
		cli.PrintInfo("No codes match: %s", codelistFilter)
		return nil
	}

	printCodeItems(cli.NewTableFormatter(out), items)
	fmt.Fprintf(out, "\nTotal: %d codes\n", len(items))
	return nil
}

func printCodeItems(table *cli.TableFormatter, items []models.CodeItem) {
	table.Header("Code", "Description", "Active")
	for _, item := range items {
		table.Row(item.Code, cli.Dash(item.Description), activeLabel(item.Active))
	}
	table.Flush()
}

func activeLabel(a models.ActiveFlag) string {
	switch a {
	case models.ActiveYes:
		return "yes"
	case models.ActiveNo:
		return "no"
	default:
		return "-"
	}
}
