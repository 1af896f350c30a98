package main

import (
	"os"

	"github.com/afdtools/afd-catalog/cmd/commands"
	"github.com/afdtools/afd-catalog/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	if err := commands.NewRootCommand(version).Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
