package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/examples"
)

// NewExamplesCommand creates the examples command
func NewExamplesCommand() *cobra.Command {
	var listOnly bool
	var force bool

	cmd := &cobra.Command{
		Use:   "examples [category]",
		Short: "Write example catalogs to the current directory",
		Long: `Write small example catalogs to try afd without your own data.

Categories:
  insurance    - Customers, policies and coverages with codelists (default)
  datatypes    - One attribute per known datatype
  all          - Every example

The insurance example is written to data.csv and Codelist.afm.csv, the
default sources, so 'afd' opens it directly.`,
		Example: `  # Write the insurance example
  afd examples

  # List the examples without writing them
  afd examples --list

  # Browse the datatype example
  afd examples datatypes
  afd --catalog datatypes.csv`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: examples.Categories,
		RunE: func(cmd *cobra.Command, args []string) error {
			category := "insurance"
			if len(args) > 0 {
				category = args[0]
			} else if listOnly {
				category = "all"
			}

			if !cli.Contains(examples.Categories, category) {
				return fmt.Errorf("invalid category '%s'. Valid categories: %s",
					category, strings.Join(examples.Categories, ", "))
			}

			if listOnly {
				return listExamples(cmd, category)
			}
			return installExamples(cmd, category, force)
		},
	}

	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List available examples without writing them")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing files")

	return cmd
}

func listExamples(cmd *cobra.Command, category string) error {
	w := cmd.OutOrStdout()
	for _, set := range examples.GetExamples(category) {
		fmt.Fprintf(w, "[%s] %s\n", set.Category, set.Name)
		fmt.Fprintf(w, "   %s\n", set.Description)
		fmt.Fprintf(w, "   %d rows in %s", len(set.Rows), set.CatalogFile)
		if set.CodelistFile != "" {
			fmt.Fprintf(w, ", %d codes in %s", len(set.Codelists), set.CodelistFile)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w)
	}
	cli.PrintInfo("To write an example, run: afd examples <category>")
	return nil
}

func installExamples(cmd *cobra.Command, category string, force bool) error {
	skipped := 0
	for _, set := range examples.GetExamples(category) {
		written, err := examples.Install(".", set, force)
		if err != nil {
			if !force && strings.Contains(err.Error(), "already exists") {
				skipped++
				cli.PrintWarning("Skipped %s: %v (use --force to overwrite)", set.Name, err)
				continue
			}
			return fmt.Errorf("failed to write example %s: %w", set.Name, err)
		}
		for _, path := range written {
			cli.PrintSuccess("Wrote %s", path)
		}
	}

	if skipped == 0 {
		cli.PrintInfo("Run 'afd' to browse the example")
	}
	return nil
}
