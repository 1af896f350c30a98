package commands

import (
	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
)

// NewRootCommand builds the afd command tree. Running afd without a
// subcommand opens the interactive browser.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:     "afd",
		Short:   "Search and browse an AFD data catalog",
		Version: version,
		Long: `afd searches an AFD data catalog of entities and attributes, with their
datatypes and codelists. Catalogs are read from CSV or xlsx files.

Settings are read from .afd.yaml in the current directory (see 'afd init').
Running afd without a command opens the interactive browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			quiet, _ := cmd.Flags().GetBool(cli.FlagQuiet)
			noColor, _ := cmd.Flags().GetBool(cli.FlagNoColor)
			yes, _ := cmd.Flags().GetBool(cli.FlagYes)
			cli.SetGlobalFlags(quiet, noColor, yes)
		},
		RunE: runBrowse,
	}

	pf := root.PersistentFlags()
	pf.String(cli.FlagCatalog, "", "Catalog file (.csv or .xlsx), overrides data.catalog")
	pf.String(cli.FlagCodelists, "", "Codelist file (.csv or .xlsx), overrides data.codelists")
	pf.String(cli.FlagConfig, "", "Settings file (default .afd.yaml)")
	pf.StringP(cli.FlagOutput, "o", "text", "Output format: text, json, or yaml")
	pf.BoolP(cli.FlagQuiet, "q", false, "Only print results and errors")
	pf.Bool(cli.FlagNoColor, false, "Disable colored output")
	pf.BoolP(cli.FlagVerbose, "v", false, "Log loading details")
	pf.BoolP(cli.FlagYes, "y", false, "Answer yes to confirmation prompts")

	root.AddCommand(
		NewInitCommand(),
		NewSearchCommand(),
		NewEntitiesCommand(),
		NewSuggestCommand(),
		NewCodelistCommand(),
		NewShowCommand(),
		NewStatsCommand(),
		NewDatatypesCommand(),
		NewBrowseCommand(),
		NewExportCommand(),
		NewUsageCommand(),
		NewExamplesCommand(),
		NewVersionCommand(version),
	)

	return root
}
