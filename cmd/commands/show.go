package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/catalog"
	"github.com/afdtools/afd-catalog/pkg/models"
	"github.com/afdtools/afd-catalog/pkg/search"
)

// ShowOutput is the detail view of one row
type ShowOutput struct {
	RowOutput     `yaml:",inline"`
	DatatypeLabel string            `json:"datatype_label,omitempty" yaml:"datatype_label,omitempty"`
	EntityName    string            `json:"entity_name,omitempty" yaml:"entity_name,omitempty"`
	Attributes    []RowOutput       `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	CodelistItems []models.CodeItem `json:"codelist_items,omitempty" yaml:"codelist_items,omitempty"`
	Link          string            `json:"link,omitempty" yaml:"link,omitempty"`
}

var (
	showLink     string
	showLinkBase string
	showCopy     bool
	showWidth    int
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <key>",
		Short: "Display an entity or attribute",
		Long: `Display the details of an entity (KLT) or attribute (KLT_NAAM).

For entities, all attributes are listed. For attributes with a codelist,
the codes are listed when the codelist is loaded.

A direct link (?entity=KLT&attribute=NAAM) can be given instead of a key.

Examples:
  # Show an entity
  afd show KLT

  # Show an attribute and copy its key to the clipboard
  afd show KLT_NAAM --copy

  # Resolve a direct link
  afd show --link "https://afd.example/?entity=KLT&attribute=NAAM"

  # Print a direct link for sharing
  afd show KLT_NAAM --link-base https://afd.example/`,
		Args: func(cmd *cobra.Command, args []string) error {
			if showLink != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		ValidArgsFunction: cli.CodeCompletionFunc(catalog.CodeEntity),
		RunE:              runShow,
	}

	cmd.Flags().StringVar(&showLink, "link", "", "Resolve a direct link instead of a key")
	cmd.Flags().StringVar(&showLinkBase, "link-base", "", "Print a direct link with this base URL")
	cmd.Flags().BoolVarP(&showCopy, "copy", "c", false, "Copy the key to the clipboard")
	cmd.Flags().IntVarP(&showWidth, "width", "w", 80, "Wrap descriptions at this width")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	store, err := ctx.Store()
	if err != nil {
		return err
	}

	var row models.Row
	if showLink != "" {
		row, err = search.ResolveLink(store, showLink)
	} else {
		row, err = search.ParseKey(store, args[0])
	}
	if err != nil {
		return err
	}

	output := newShowOutput(store, row)
	if showLinkBase != "" {
		output.Link = search.DirectLink(showLinkBase, row)
	}

	if showCopy {
		if err := clipboard.WriteAll(row.Key()); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied %s to clipboard", row.Key())
	}

	if cli.IsStructured(ctx.OutputFormat()) {
		return cli.OutputResults(cmd.OutOrStdout(), ctx.OutputFormat(), output)
	}
	return outputShowText(cmd.OutOrStdout(), output)
}

func newShowOutput(store *catalog.Store, row models.Row) ShowOutput {
	common := row.Common()
	output := ShowOutput{
		RowOutput: newRowOutput(row),
	}
	if common.Datatype != "" {
		output.DatatypeLabel = models.DatatypeLabel(common.Datatype)
	}

	switch row.Kind() {
	case models.KindEntity:
		for _, r := range store.Rows() {
			if attr, ok := r.(*models.Attribute); ok && attr.EntityCode == common.EntityCode {
				output.Attributes = append(output.Attributes, newRowOutput(attr))
			}
		}
	case models.KindAttribute:
		output.EntityName = store.EntityName(common.EntityCode)
	}

	if common.CodelistID != "" && store.HasCodelist(common.CodelistID) {
		output.CodelistItems = search.LookupCodelist(store.Codelists(), common.CodelistID)
	}

	return output
}

func outputShowText(w io.Writer, o ShowOutput) error {
	kind := "Entity"
	if o.Kind == string(models.KindAttribute) {
		kind = "Attribute"
	}

	fmt.Fprintf(w, "%s: %s\n", kind, o.Key)
	fmt.Fprintln(w, strings.Repeat("-", 40))
	fmt.Fprintf(w, "Name:        %s\n", o.Name)
	if o.AttributeCode != "" {
		fmt.Fprintf(w, "Entity:      %s (%s)\n", o.EntityCode, o.EntityName)
	}
	if o.Datatype != "" {
		fmt.Fprintf(w, "Datatype:    %s - %s\n", cli.ColorizeDatatype(o.Datatype), o.DatatypeLabel)
	}
	if o.Format != "" {
		fmt.Fprintf(w, "Format:      %s\n", o.Format)
	}
	if o.Codelist != "" {
		status := "not loaded"
		if o.CodelistItems != nil {
			status = fmt.Sprintf("%d codes", len(o.CodelistItems))
		}
		fmt.Fprintf(w, "Codelist:    %s (%s)\n", o.Codelist, status)
	}
	if o.Link != "" {
		fmt.Fprintf(w, "Link:        %s\n", o.Link)
	}

	if o.Description != "" {
		width := showWidth
		if width <= 0 {
			width = 80
		}
		fmt.Fprintf(w, "\n%s\n", wordwrap.String(o.Description, width))
	}

	if o.Kind == string(models.KindEntity) {
		fmt.Fprintf(w, "\nAttributes (%d):\n", len(o.Attributes))
		if len(o.Attributes) > 0 {
			table := cli.NewTableFormatter(w)
			table.Header("Code", "Name", "Datatype", "Codelist")
			for _, a := range o.Attributes {
				table.Row(a.AttributeCode, a.Name, cli.Dash(cli.ColorizeDatatype(a.Datatype)), cli.Dash(a.Codelist))
			}
			table.Flush()
		}
	}

	if len(o.CodelistItems) > 0 {
		fmt.Fprintf(w, "\nCodes of %s:\n", o.Codelist)
		printCodeItems(cli.NewTableFormatter(w), o.CodelistItems)
	}

	return nil
}
