package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/search"
)

var entitiesFlags cli.QueryFlags

// NewEntitiesCommand creates the entities command
func NewEntitiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entities [query]",
		Short: "List the entities that have matching rows",
		Long: `List the entity codes reachable under the given search term and filters,
sorted by code. The entity filter itself is ignored, so this shows every
entity that could be selected next.

Examples:
  # All entities
  afd entities

  # Entities with attributes of datatype JN
  afd entities --datatype JN

  # Entities with something about "adres"
  afd entities adres`,
		Aliases: []string{"ent"},
		RunE:    runEntities,
	}

	entitiesFlags.Register(cmd)
	cli.RegisterQueryCompletions(cmd)

	return cmd
}

func runEntities(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	base, err := ctx.BuildQuery("", entitiesFlags)
	if err != nil {
		return err
	}
	q, err := search.NewParser().Parse(strings.Join(args, " "), base)
	if err != nil {
		return err
	}

	options := engine.AvailableEntities(q)
	if options == nil {
		options = []search.EntityOption{}
	}

	if cli.IsStructured(ctx.OutputFormat()) {
		return cli.OutputResults(cmd.OutOrStdout(), ctx.OutputFormat(), options)
	}

	if len(options) == 0 {
		cli.PrintInfo("No entities found")
		return nil
	}

	store := engine.Store()
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Code", "Name", "Attributes")
	for _, opt := range options {
		table.Row(opt.Code, opt.Name, fmt.Sprintf("%d", store.AttributeCount(opt.Code)))
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d entities\n", len(options))
	return nil
}
