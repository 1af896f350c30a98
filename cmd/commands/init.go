package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/afdtools/afd-catalog/internal/cli"
	"github.com/afdtools/afd-catalog/pkg/files"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a default .afd.yaml settings file",
		Long: `Creates a .afd.yaml settings file in the given directory (default: the
current directory). Edit it to point data.catalog and data.codelists at
your catalog sources.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to determine directory: %w", err)
	}

	force := false
	if _, err := os.Stat(filepath.Join(abs, files.SettingsFile)); err == nil {
		ok, err := cli.Confirm(fmt.Sprintf("%s already exists in %s. Overwrite?", files.SettingsFile, abs), false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Keeping existing settings")
			return nil
		}
		force = true
	}

	path, err := files.InitProject(abs, force)
	if err != nil {
		return fmt.Errorf("failed to initialize settings: %w", err)
	}

	cli.PrintSuccess("Created %s", path)
	cli.PrintInfo("Point data.catalog at your catalog file, then run 'afd' to start browsing.")
	return nil
}
