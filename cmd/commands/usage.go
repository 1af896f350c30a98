package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/catalog"
)

// UsageResult represents the output structure for the usage command
type UsageResult struct {
	Codelist string      `json:"codelist" yaml:"codelist"`
	Loaded   bool        `json:"loaded" yaml:"loaded"`
	Codes    int         `json:"codes" yaml:"codes"`
	Count    int         `json:"count" yaml:"count"`
	Usage    []RowOutput `json:"usage" yaml:"usage"`
}

var (
	usageMissing bool
	usageUnused  bool
)

// NewUsageCommand creates the usage command
func NewUsageCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usage [codelist]",
		Short: "Show which attributes use a codelist",
		Long: `Show the attributes that reference a codelist.

Without an argument every codelist is listed with the number of
referencing rows. Codelists that are referenced but not loaded, and
loaded codelists nobody references, are marked.

Examples:
  # Overview of all codelists
  afd usage

  # Attributes using codelist CL1
  afd usage CL1

  # Referenced codelists missing from the codelist file
  afd usage --missing

  # Output as JSON
  afd usage CL1 -o json`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cli.CodeCompletionFunc(catalog.CodeCodelist),
		RunE:              runUsage,
	}

	cmd.Flags().BoolVar(&usageMissing, "missing", false, "Only referenced codelists that are not loaded")
	cmd.Flags().BoolVar(&usageUnused, "unused", false, "Only loaded codelists without references")

	return cmd
}

func runUsage(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	store, err := ctx.Store()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		usage, ok := store.CodelistUsage(args[0])
		if !ok {
			return fmt.Errorf("codelist '%s' is not loaded or referenced", args[0])
		}
		result := newUsageResult(usage)
		if cli.IsStructured(ctx.OutputFormat()) {
			return cli.OutputResults(cmd.OutOrStdout(), ctx.OutputFormat(), result)
		}
		return printUsageTable(cmd.OutOrStdout(), result)
	}

	results := []UsageResult{}
	for _, usage := range store.CodelistUsages() {
		if usageMissing && usage.Loaded {
			continue
		}
		if usageUnused && (!usage.Loaded || usage.Count() > 0) {
			continue
		}
		results = append(results, newUsageResult(usage))
	}

	if cli.IsStructured(ctx.OutputFormat()) {
		return cli.OutputResults(cmd.OutOrStdout(), ctx.OutputFormat(), results)
	}

	if len(results) == 0 {
		cli.PrintInfo("No codelists found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Codelist", "Codes", "Used by", "Status")
	for _, r := range results {
		table.Row(r.Codelist, fmt.Sprintf("%d", r.Codes), fmt.Sprintf("%d", r.Count), usageStatus(r))
	}
	table.Flush()
	return nil
}

func newUsageResult(usage catalog.CodelistUsage) UsageResult {
	return UsageResult{
		Codelist: usage.ID,
		Loaded:   usage.Loaded,
		Codes:    usage.Codes,
		Count:    usage.Count(),
		Usage:    newRowOutputs(usage.Rows),
	}
}

func usageStatus(r UsageResult) string {
	switch {
	case !r.Loaded:
		return "not loaded"
	case r.Count == 0:
		return "unused"
	default:
		return "ok"
	}
}

func printUsageTable(w io.Writer, result UsageResult) error {
	fmt.Fprintf(w, "Codelist: %s\n", result.Codelist)
	fmt.Fprintf(w, "Status: %s\n", usageStatus(result))
	if result.Loaded {
		fmt.Fprintf(w, "Codes: %d\n", result.Codes)
	}
	fmt.Fprintln(w)

	if result.Count == 0 {
		fmt.Fprintln(w, "No attributes are using this codelist.")
		return nil
	}

	fmt.Fprintf(w, "Used by %d row(s):\n\n", result.Count)
	table := cli.NewTableFormatter(w)
	table.Header("Key", "Name", "Datatype")
	for _, row := range result.Usage {
		table.Row(row.Key, row.Name, cli.Dash(cli.ColorizeDatatype(row.Datatype)))
	}
	table.Flush()
	return nil
}
