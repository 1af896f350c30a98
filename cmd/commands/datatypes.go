package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/models"
)

// DatatypeOutput is a datatype with its usage in the catalog
type DatatypeOutput struct {
	models.DatatypeInfo `yaml:",inline"`
	Known               bool `json:"known" yaml:"known"`
	Rows                int  `json:"rows" yaml:"rows"`
}

var datatypesAll bool

// NewDatatypesCommand creates the datatypes command
func NewDatatypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datatypes",
		Short: "List the datatypes used in the catalog",
		Long: `List the distinct datatypes in the catalog with their meaning, an example
value and the number of rows using them.

Use --all to include known datatypes that the catalog does not use.`,
		Aliases: []string{"dt"},
		Args:    cobra.NoArgs,
		RunE:    runDatatypes,
	}

	cmd.Flags().BoolVarP(&datatypesAll, "all", "a", false, "Include known datatypes that are not used")

	return cmd
}

func runDatatypes(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	store, err := ctx.Store()
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, row := range store.Rows() {
		if dt := row.Common().Datatype; dt != "" {
			counts[dt]++
		}
	}

	codes := store.Datatypes()
	if datatypesAll {
		for code := range models.KnownDatatypes {
			if counts[code] == 0 {
				codes = append(codes, code)
			}
		}
		sort.Strings(codes)
	}

	output := make([]DatatypeOutput, 0, len(codes))
	for _, code := range codes {
		info, known := models.LookupDatatype(code)
		if !known {
			info = models.DatatypeInfo{Code: code, Label: code}
		}
		output = append(output, DatatypeOutput{DatatypeInfo: info, Known: known, Rows: counts[code]})
	}

	if cli.IsStructured(ctx.OutputFormat()) {
		return cli.OutputResults(cmd.OutOrStdout(), ctx.OutputFormat(), output)
	}

	if len(output) == 0 {
		cli.PrintInfo("No datatypes found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("Code", "Label", "Example", "Rows")
	for _, dt := range output {
		table.Row(cli.ColorizeDatatype(dt.Code), dt.Label, cli.Dash(dt.Example), fmt.Sprintf("%d", dt.Rows))
	}
	table.Flush()
	return nil
}
