package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/search"
	"github.com/afdtools/afd-catalog/pkg/tui"
)

var (
	browseFlags    cli.QueryFlags
	browseLinkBase string
	browseExpand   bool
)

// NewBrowseCommand creates the browse command
func NewBrowseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "browse [query]",
		Aliases: []string{"ui"},
		Short:   "Open the interactive catalog browser",
		Long: `Open the interactive catalog browser.

The optional query uses the same syntax as 'afd search' and becomes the
initial state of the browser.

Keys:
  /        focus the search bar (type:, dt:, entity: and mode: work here too)
  m t d e  cycle search mode, type, datatype and entity filters
  enter    expand or collapse an entity
  x        expand or collapse all entities
  l        open the codelist of the selected row
  c        copy the selected code
  y        copy a direct link (needs --link-base)
  esc      clear the search, or close the codelist
  q        quit`,
		RunE: runBrowse,
	}

	browseFlags.Register(cmd)
	cmd.Flags().StringVar(&browseLinkBase, "link-base", "", "Base URL for direct links")
	cmd.Flags().BoolVarP(&browseExpand, "expand", "x", false, "Start with all entities expanded")
	cli.RegisterQueryCompletions(cmd)

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}

	opts, err := newBrowseOptions(ctx, engine, args)
	if err != nil {
		return err
	}

	tui.Version = cmd.Root().Version
	p := tea.NewProgram(tui.NewApp(engine, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}

// newBrowseOptions builds the initial browser state from flags, settings
// and the query arguments
func newBrowseOptions(ctx *cli.CommandContext, engine *search.Engine, args []string) (tui.Options, error) {
	base, err := ctx.BuildQuery("", browseFlags)
	if err != nil {
		return tui.Options{}, err
	}
	q, err := search.NewParser().Parse(strings.Join(args, " "), base)
	if err != nil {
		return tui.Options{}, err
	}
	if err := cli.ValidateDatatype(engine.Store(), q.Datatype); err != nil {
		return tui.Options{}, err
	}

	opts := tui.Options{
		Query:            q,
		LinkBase:         browseLinkBase,
		ShowDescriptions: ctx.Settings.UI.ShowDescriptions,
		ExpandAll:        ctx.Settings.UI.ExpandAll || browseExpand,
		Clipboard:        clipboard.WriteAll,
	}
	if n := len(engine.Store().Issues()); n > 0 {
		opts.Status = fmt.Sprintf("%d problemen in de catalogus, zie 'afd stats --issues'", n)
	}
	return opts, nil
}
