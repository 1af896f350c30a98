package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/search"
)

// NewSuggestCommand creates the suggest command
func NewSuggestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <term>",
		Short: "Show names that contain a term but do not start with it",
		Long: fmt.Sprintf(`Suggest related rows: names that contain the term somewhere after the
start. Names starting with the term are regular matches and are left out.

At most %d suggestions are shown; terms shorter than %d characters give none.

Examples:
  afd suggest naam`, search.MaxSuggestions, search.MinSuggestTermLength),
		Args: cobra.MinimumNArgs(1),
		RunE: runSuggest,
	}

	return cmd
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	term := strings.Join(args, " ")
	suggestions := newRowOutputs(engine.Suggest(term))

	if cli.IsStructured(ctx.OutputFormat()) {
		return cli.OutputResults(cmd.OutOrStdout(), ctx.OutputFormat(), suggestions)
	}

	if len(suggestions) == 0 {
		cli.PrintInfo("No suggestions for: %s", term)
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Key", "Name", "Kind")
	for _, s := range suggestions {
		table.Row(s.Key, s.Name, s.Kind)
	}
	table.Flush()
	return nil
}
